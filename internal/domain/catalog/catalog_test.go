package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackagesFor(t *testing.T) {
	for _, pt := range []string{ProjectTypeWeb, ProjectTypeMobile, ProjectTypeEcommerce, ProjectTypeSupport, ProjectTypeCustom} {
		t.Run(pt, func(t *testing.T) {
			list := PackagesFor(pt)
			require.NotEmpty(t, list)
			for i := 1; i < len(list); i++ {
				assert.LessOrEqual(t, list[i-1].Price, list[i].Price)
			}
		})
	}

	assert.Equal(t, PackagesFor(ProjectTypeCustom), PackagesFor("Spaceship"))
}

func TestPackagesFor_ReturnsCopies(t *testing.T) {
	list := PackagesFor(ProjectTypeWeb)
	list[0].Price = 1
	list[0].Features[0] = "mutated"

	fresh := PackagesFor(ProjectTypeWeb)
	assert.Equal(t, 20000.0, fresh[0].Price)
	assert.Equal(t, "Responsive UI", fresh[0].Features[0])
}

func TestAddOns(t *testing.T) {
	list := AddOns()
	require.Len(t, list, 3)
	assert.Equal(t, "addon_mobile", list[0].ID)
	assert.Equal(t, 25000.0, list[0].Price)
}

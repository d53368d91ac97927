package lead

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"budget of $50k", 50_000, true},
		{"about $75,000 total", 75_000, true},
		{"$1.5 million", 1_500_000, true},
		{"around 40 thousand", 40_000, true},
		{"maybe 30k", 30_000, true},
		{"20000 usd", 20_000, true},
		{"no idea", 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := parseAmount(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.InDelta(t, tc.want, got, 0.001)
		})
	}
}

func TestParseDuration(t *testing.T) {
	cases := []struct {
		in     string
		text   string
		months float64
	}{
		{"a timeline of 3 months", "3 months", 3},
		{"3-6 months", "3-6 months", 6},
		{"2 to 4 weeks", "2-4 weeks", 4 * 12.0 / 52},
		{"within 1 year", "1 year", 12},
		{"in 45 days", "45 days", 1.5},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			d, ok := parseDuration(tc.in)
			assert.True(t, ok)
			assert.Equal(t, tc.text, d.text)
			assert.InDelta(t, tc.months, d.months, 0.001)
		})
	}

	_, ok := parseDuration("soon")
	assert.False(t, ok)
}

func TestBudgetRange(t *testing.T) {
	assert.Equal(t, "Under $25,000", budgetRange(10_000))
	assert.Equal(t, "$25,000 - $50,000", budgetRange(25_000))
	assert.Equal(t, "$50,000 - $100,000", budgetRange(50_000))
	assert.Equal(t, "Over $100,000", budgetRange(100_000))
}

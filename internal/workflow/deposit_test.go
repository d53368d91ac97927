package workflow

import (
	"testing"

	"agentops_intake/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpfrontRatio(t *testing.T) {
	tests := []struct {
		terms string
		want  float64
		ok    bool
	}{
		{"50% upfront, 50% on completion", 0.5, true},
		{"30% Up-Front, balance on delivery", 0.3, true},
		{"25 % deposit", 0.25, true},
		{"100% in advance", 1, true},
		{"12.5% on signing", 0.125, true},
		{"Net 30", 0, false},
		{"0% upfront", 0, false},
		{"150% upfront", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.terms, func(t *testing.T) {
			got, ok := UpfrontRatio(tt.terms)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestBeginDeposit_RatioFollowsPaymentTerms(t *testing.T) {
	send := func(t *testing.T, terms string) *Session {
		t.Helper()
		s, _, _ := withLead(t)
		_, err := s.GenerateProposal()
		require.NoError(t, err)
		_, err = s.UpdateProposal(entities.ProposalPatch{PaymentTerms: &terms})
		require.NoError(t, err)
		_, err = s.SendProposal()
		require.NoError(t, err)
		return s
	}

	t.Run("terms name the share", func(t *testing.T) {
		s := send(t, "100% upfront")
		q, err := s.BeginDeposit(0.5)
		require.NoError(t, err)
		assert.Equal(t, 45000.0, q.Amount)
	})

	t.Run("terms silent falls back to ratio", func(t *testing.T) {
		s := send(t, "Net 30 from invoice")
		q, err := s.BeginDeposit(0.5)
		require.NoError(t, err)
		assert.Equal(t, 22500.0, q.Amount)
	})

	t.Run("invalid ratio rejected even when terms name one", func(t *testing.T) {
		s := send(t, "100% upfront")
		_, err := s.BeginDeposit(0)
		require.ErrorIs(t, err, entities.ErrValidation)
	})
}

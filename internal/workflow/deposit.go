package workflow

import (
	"regexp"
	"strconv"

	"agentops_intake/internal/domain/entities"

	"go.uber.org/zap"
)

// DepositQuote is what a caller needs to charge the deposit of a sent
// proposal.
type DepositQuote struct {
	ProposalID string
	LeadEmail  string
	Title      string
	Amount     float64
}

var upfrontRe = regexp.MustCompile(`(?i)(\d{1,3}(?:\.\d+)?)\s*%\s*(?:up[- ]?front|deposit|in advance|advance|on signing|on signature)`)

// UpfrontRatio reads the upfront share named by payment terms such as
// "50% upfront, 50% on completion". It reports false when the terms name none.
func UpfrontRatio(terms string) (float64, bool) {
	m := upfrontRe.FindStringSubmatch(terms)
	if m == nil {
		return 0, false
	}
	pct, err := strconv.ParseFloat(m[1], 64)
	if err != nil || pct <= 0 || pct > 100 {
		return 0, false
	}
	return pct / 100, true
}

// BeginDeposit reserves the deposit slot of the sent proposal and returns the
// amount to charge. The share comes from the proposal payment terms; ratio is
// used only when the terms name no upfront percentage. The reservation holds
// until CompleteDeposit or AbortDeposit; a second BeginDeposit in between
// fails.
func (s *Session) BeginDeposit(ratio float64) (DepositQuote, error) {
	var q DepositQuote
	err := s.do(func() error {
		if s.abandoned {
			return entities.ErrSessionAbandoned
		}
		if ratio <= 0 || ratio > 1 {
			return entities.ErrInvalidDepositRatio
		}
		if s.proposal == nil {
			return entities.ErrProposalMissing
		}
		if s.proposal.Status != entities.ProposalStatusSent {
			return entities.ErrProposalNotSent
		}
		if s.depositInFlight {
			return entities.ErrDepositInFlight
		}
		if s.deposit != nil && s.deposit.Status != entities.DepositStatusRejected {
			return entities.ErrDepositAlreadyCollected
		}
		if r, ok := UpfrontRatio(s.proposal.Pricing.PaymentTerms); ok {
			ratio = r
		}
		s.depositInFlight = true
		q = DepositQuote{
			ProposalID: s.proposal.ID,
			Title:      s.proposal.Title,
			Amount:     roundCents(s.proposal.Pricing.TotalPrice * ratio),
		}
		if s.lead != nil {
			q.LeadEmail = s.lead.Email
		}
		return nil
	})
	return q, err
}

// CompleteDeposit records the provider outcome and releases the reservation.
func (s *Session) CompleteDeposit(d entities.Deposit) {
	_ = s.do(func() error {
		s.depositInFlight = false
		s.deposit = &d
		s.logger.Info("deposit recorded",
			zap.String("deposit_id", d.ID),
			zap.String("status", string(d.Status)),
			zap.Float64("amount", d.Amount),
		)
		s.emit(entities.EventDepositCollected, map[string]any{
			"deposit_id":          d.ID,
			"proposal_id":         d.ProposalID,
			"amount":              d.Amount,
			"status":              string(d.Status),
			"provider_payment_id": d.ProviderPaymentID,
		})
		return nil
	})
}

// AbortDeposit releases the reservation without recording anything.
func (s *Session) AbortDeposit() {
	_ = s.do(func() error {
		s.depositInFlight = false
		return nil
	})
}

func (s *Session) Deposit() (entities.Deposit, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.deposit == nil {
		return entities.Deposit{}, false
	}
	return *s.deposit, true
}

func roundCents(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}

package workflow

import (
	"agentops_intake/internal/domain/entities"
	"agentops_intake/internal/domain/pricing"
	"agentops_intake/internal/domain/proposal"

	"go.uber.org/zap"
)

// SetRequiresApproval flips the review switch. A draft proposal picks up the
// new setting immediately; the approval threshold still applies.
func (s *Session) SetRequiresApproval(required bool) error {
	return s.do(func() error {
		if s.abandoned {
			return entities.ErrSessionAbandoned
		}
		s.requiresApproval = required
		if s.proposal != nil && s.proposal.Editable() {
			s.refreshApprovalRequirement()
		}
		return nil
	})
}

// GenerateProposal drafts a proposal from the lead and moves to the proposal
// step. A draft or rejected proposal is replaced; one that is under review,
// approved or sent is kept and the call fails.
func (s *Session) GenerateProposal() (entities.Proposal, error) {
	var out entities.Proposal
	err := s.do(func() error {
		if s.abandoned {
			return entities.ErrSessionAbandoned
		}
		if s.lead == nil {
			return entities.ErrLeadMissing
		}
		if s.proposal != nil && !s.proposal.Editable() && s.proposal.Status != entities.ProposalStatusRejected {
			return entities.ErrProposalImmutable
		}

		p := proposal.Generate(*s.lead, proposal.Options{
			ProposalID:        "prop_" + s.newID(),
			Now:               s.clock.Now(),
			RequiresApproval:  s.requiresApproval,
			ApprovalThreshold: s.cfg.ApprovalThreshold,
			ValidFor:          s.cfg.ProposalValidFor,
			PaymentTerms:      s.cfg.PaymentTerms,
		})
		s.proposal = &p
		s.step = entities.WorkflowStepProposal
		out = cloneProposal(p)

		s.logger.Info("proposal generated",
			zap.String("proposal_id", p.ID),
			zap.Float64("total_price", p.Pricing.TotalPrice),
			zap.Bool("requires_approval", p.RequiresApproval),
		)
		s.emit(entities.EventProposalGenerated, map[string]any{
			"proposal_id":       p.ID,
			"lead_id":           p.LeadID,
			"total_price":       p.Pricing.TotalPrice,
			"requires_approval": p.RequiresApproval,
		})
		return nil
	})
	return out, err
}

// UpdateProposal applies a partial edit to the draft proposal.
func (s *Session) UpdateProposal(patch entities.ProposalPatch) (entities.Proposal, error) {
	return s.mutateDraft(func(p entities.Proposal) (entities.Proposal, error) {
		return patch.Apply(p), nil
	})
}

func (s *Session) TogglePackage(id string) (entities.Proposal, error) {
	return s.mutateDraft(func(p entities.Proposal) (entities.Proposal, error) {
		return pricing.ToggleOnProposal(p, pricing.KindPackage, id)
	})
}

func (s *Session) ToggleAddOn(id string) (entities.Proposal, error) {
	return s.mutateDraft(func(p entities.Proposal) (entities.Proposal, error) {
		return pricing.ToggleOnProposal(p, pricing.KindAddOn, id)
	})
}

func (s *Session) mutateDraft(change func(entities.Proposal) (entities.Proposal, error)) (entities.Proposal, error) {
	var out entities.Proposal
	err := s.do(func() error {
		if s.abandoned {
			return entities.ErrSessionAbandoned
		}
		if s.proposal == nil {
			return entities.ErrProposalMissing
		}
		if !s.proposal.Editable() {
			return entities.ErrProposalImmutable
		}
		p, err := change(cloneProposal(*s.proposal))
		if err != nil {
			return err
		}
		p.UpdatedAt = s.clock.Now()
		s.proposal = &p
		s.refreshApprovalRequirement()
		out = cloneProposal(*s.proposal)

		s.emit(entities.EventProposalUpdated, map[string]any{
			"proposal_id": p.ID,
			"total_price": s.proposal.Pricing.TotalPrice,
		})
		return nil
	})
	return out, err
}

func (s *Session) refreshApprovalRequirement() {
	s.proposal.RequiresApproval = s.requiresApproval || proposal.OverThreshold(*s.proposal, s.cfg.ApprovalThreshold)
}

// SendProposal marks the proposal as sent to the client. A proposal that
// requires approval can only be sent once approved.
func (s *Session) SendProposal() (entities.Proposal, error) {
	var out entities.Proposal
	err := s.do(func() error {
		if s.abandoned {
			return entities.ErrSessionAbandoned
		}
		if s.proposal == nil {
			return entities.ErrProposalMissing
		}
		switch s.proposal.Status {
		case entities.ProposalStatusDraft:
			if s.proposal.RequiresApproval {
				return entities.ErrApprovalOutstanding
			}
		case entities.ProposalStatusReviewed:
			return entities.ErrApprovalOutstanding
		case entities.ProposalStatusApproved:
		default:
			return entities.ErrProposalImmutable
		}

		now := s.clock.Now()
		s.proposal.Status = entities.ProposalStatusSent
		s.proposal.UpdatedAt = now
		if s.lead != nil && s.lead.ID == s.proposal.LeadID {
			s.lead.Status = entities.LeadStatusProposalSent
			s.lead.UpdatedAt = now
		}
		out = cloneProposal(*s.proposal)

		s.logger.Info("proposal sent", zap.String("proposal_id", out.ID))
		s.emit(entities.EventProposalSent, map[string]any{
			"proposal_id": out.ID,
			"total_price": out.Pricing.TotalPrice,
		})
		return nil
	})
	return out, err
}

package workflow

import (
	"fmt"

	"agentops_intake/internal/domain/approval"
	"agentops_intake/internal/domain/entities"
	"agentops_intake/internal/domain/proposal"

	"go.uber.org/zap"
)

// RequestApproval submits the draft proposal for review and moves to the
// approvals step. The proposal is locked in the reviewed status until the
// approval is decided.
func (s *Session) RequestApproval() (entities.AdminApproval, error) {
	var out entities.AdminApproval
	err := s.do(func() error {
		if s.abandoned {
			return entities.ErrSessionAbandoned
		}
		if s.proposal == nil {
			return entities.ErrProposalMissing
		}
		if !s.proposal.RequiresApproval {
			return entities.ErrApprovalNotRequired
		}
		for _, a := range s.approvals {
			if a.ProposalID == s.proposal.ID && a.Status == entities.ApprovalStatusPending {
				return entities.ErrApprovalPending
			}
		}
		if !s.proposal.Editable() {
			return entities.ErrProposalImmutable
		}

		now := s.clock.Now()
		note := "Manual review requested"
		if proposal.OverThreshold(*s.proposal, s.cfg.ApprovalThreshold) {
			note = "High-value proposal requires management review"
		}
		a := approval.Request("approval_"+s.newID(), *s.proposal, s.cfg.Requester, note, now)
		s.approvals = append(s.approvals, a)
		s.proposal.Status = entities.ProposalStatusReviewed
		s.proposal.UpdatedAt = now
		s.step = entities.WorkflowStepApprovals
		out = a

		s.logger.Info("approval requested", zap.String("approval_id", a.ID), zap.String("proposal_id", a.ProposalID))
		s.emit(entities.EventApprovalRequested, map[string]any{
			"approval_id": a.ID,
			"proposal_id": a.ProposalID,
			"note":        note,
		})
		return nil
	})
	return out, err
}

// Approve records a positive review and marks the owning proposal approved.
func (s *Session) Approve(approvalID, comments string) (entities.AdminApproval, error) {
	return s.review(approvalID, entities.EventApprovalApproved, func(a entities.AdminApproval) (entities.AdminApproval, error) {
		return approval.Approve(a, s.cfg.Reviewer, comments, s.clock.Now())
	})
}

// Reject records a negative review with a mandatory reason and marks the
// owning proposal rejected.
func (s *Session) Reject(approvalID, reason string) (entities.AdminApproval, error) {
	return s.review(approvalID, entities.EventApprovalRejected, func(a entities.AdminApproval) (entities.AdminApproval, error) {
		return approval.Reject(a, s.cfg.Reviewer, reason, s.clock.Now())
	})
}

func (s *Session) review(
	approvalID string,
	event entities.WorkflowEventType,
	decide func(entities.AdminApproval) (entities.AdminApproval, error),
) (entities.AdminApproval, error) {
	var out entities.AdminApproval
	err := s.do(func() error {
		if s.abandoned {
			return entities.ErrSessionAbandoned
		}
		idx := -1
		for i, a := range s.approvals {
			if a.ID == approvalID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("%w: %q", entities.ErrApprovalNotFound, approvalID)
		}

		decided, err := decide(s.approvals[idx])
		if err != nil {
			return err
		}
		s.approvals[idx] = decided
		if status, ok := approval.ProposalStatusFor(decided); ok && s.proposal != nil && s.proposal.ID == decided.ProposalID {
			s.proposal.Status = status
			s.proposal.UpdatedAt = *decided.ReviewedAt
		}
		out = decided

		s.logger.Info("approval reviewed",
			zap.String("approval_id", decided.ID),
			zap.String("status", string(decided.Status)),
			zap.String("reviewed_by", decided.ReviewedBy),
		)
		s.emit(event, map[string]any{
			"approval_id": decided.ID,
			"proposal_id": decided.ProposalID,
			"reviewed_by": decided.ReviewedBy,
			"comments":    decided.Comments,
			"reason":      decided.Reason,
		})
		return nil
	})
	return out, err
}

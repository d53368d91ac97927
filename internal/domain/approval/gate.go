// Package approval implements the review gate for proposals that need
// sign-off before they are sent.
package approval

import (
	"strings"
	"time"

	"agentops_intake/internal/domain/entities"
)

// Request opens a pending approval for a proposal.
func Request(id string, proposal entities.Proposal, requestedBy, note string, now time.Time) entities.AdminApproval {
	return entities.AdminApproval{
		ID:          id,
		ProposalID:  proposal.ID,
		RequestedBy: requestedBy,
		RequestedAt: now,
		RequestNote: note,
		Status:      entities.ApprovalStatusPending,
	}
}

// Approve records a positive review. Comments are optional.
func Approve(a entities.AdminApproval, reviewer, comments string, now time.Time) (entities.AdminApproval, error) {
	if a.Terminal() {
		return a, entities.ErrApprovalAlreadyReviewed
	}
	a.Status = entities.ApprovalStatusApproved
	a.ReviewedBy = reviewer
	a.ReviewedAt = &now
	a.Comments = strings.TrimSpace(comments)
	return a, nil
}

// Reject records a negative review. The reason is mandatory.
func Reject(a entities.AdminApproval, reviewer, reason string, now time.Time) (entities.AdminApproval, error) {
	if a.Terminal() {
		return a, entities.ErrApprovalAlreadyReviewed
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return a, entities.ErrEmptyRejectionReason
	}
	a.Status = entities.ApprovalStatusRejected
	a.ReviewedBy = reviewer
	a.ReviewedAt = &now
	a.Reason = reason
	return a, nil
}

// ProposalStatusFor maps a terminal review onto the owning proposal.
func ProposalStatusFor(a entities.AdminApproval) (entities.ProposalStatus, bool) {
	switch a.Status {
	case entities.ApprovalStatusApproved:
		return entities.ProposalStatusApproved, true
	case entities.ApprovalStatusRejected:
		return entities.ProposalStatusRejected, true
	}
	return "", false
}

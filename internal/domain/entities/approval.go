package entities

import "time"

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

// AdminApproval is a review request gating a proposal send-out.
// It is terminal once Status leaves pending.
type AdminApproval struct {
	ID          string         `json:"id"`
	ProposalID  string         `json:"proposal_id"`
	RequestedBy string         `json:"requested_by"`
	RequestedAt time.Time      `json:"requested_at"`
	RequestNote string         `json:"request_note,omitempty"`
	Status      ApprovalStatus `json:"status"`
	ReviewedBy  string         `json:"reviewed_by,omitempty"`
	ReviewedAt  *time.Time     `json:"reviewed_at,omitempty"`
	Comments    string         `json:"comments,omitempty"`
	Reason      string         `json:"reason,omitempty"`
}

func (a AdminApproval) Terminal() bool {
	return a.Status != ApprovalStatusPending
}

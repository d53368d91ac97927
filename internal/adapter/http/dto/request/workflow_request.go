package request

import (
	"strings"

	"agentops_intake/internal/domain/entities"
)

type SubmitMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

type NavigateRequest struct {
	Step string `json:"step" binding:"required"`
}

func (r NavigateRequest) ResolveStep() entities.WorkflowStep {
	return entities.WorkflowStep(strings.ToLower(strings.TrimSpace(r.Step)))
}

type ApprovalRequirementRequest struct {
	RequiresApproval *bool `json:"requires_approval" binding:"required"`
}

// UpdateProposalRequest is a partial edit; absent fields are left untouched.
type UpdateProposalRequest struct {
	Title            *string  `json:"title"`
	ExecutiveSummary *string  `json:"executive_summary"`
	ProjectScope     *string  `json:"project_scope"`
	Deliverables     []string `json:"deliverables"`
	Timeline         *string  `json:"timeline"`
	Terms            []string `json:"terms"`
	NextSteps        []string `json:"next_steps"`
	PaymentTerms     *string  `json:"payment_terms"`
}

func (r UpdateProposalRequest) ToPatch() entities.ProposalPatch {
	return entities.ProposalPatch{
		Title:            r.Title,
		ExecutiveSummary: r.ExecutiveSummary,
		ProjectScope:     r.ProjectScope,
		Deliverables:     r.Deliverables,
		Timeline:         r.Timeline,
		Terms:            r.Terms,
		NextSteps:        r.NextSteps,
		PaymentTerms:     r.PaymentTerms,
	}
}

func (r UpdateProposalRequest) Empty() bool {
	return r.Title == nil && r.ExecutiveSummary == nil && r.ProjectScope == nil &&
		r.Deliverables == nil && r.Timeline == nil && r.Terms == nil &&
		r.NextSteps == nil && r.PaymentTerms == nil
}

type ApproveRequest struct {
	Comments string `json:"comments"`
}

type RejectRequest struct {
	Reason string `json:"reason" binding:"required"`
}

package entities

import "time"

// WorkflowStep is the coordinator state; it doubles as the UI tab.
type WorkflowStep string

const (
	WorkflowStepChat      WorkflowStep = "chat"
	WorkflowStepLead      WorkflowStep = "lead"
	WorkflowStepProposal  WorkflowStep = "proposal"
	WorkflowStepApprovals WorkflowStep = "approvals"
)

func (s WorkflowStep) Valid() bool {
	switch s {
	case WorkflowStepChat, WorkflowStepLead, WorkflowStepProposal, WorkflowStepApprovals:
		return true
	}
	return false
}

type WorkflowEventType string

const (
	EventSessionStarted    WorkflowEventType = "session.started"
	EventLeadExtracted     WorkflowEventType = "lead.extracted"
	EventProposalGenerated WorkflowEventType = "proposal.generated"
	EventProposalUpdated   WorkflowEventType = "proposal.updated"
	EventProposalSent      WorkflowEventType = "proposal.sent"
	EventApprovalRequested WorkflowEventType = "approval.requested"
	EventApprovalApproved  WorkflowEventType = "approval.approved"
	EventApprovalRejected  WorkflowEventType = "approval.rejected"
	EventDepositCollected  WorkflowEventType = "deposit.collected"
	EventSessionAbandoned  WorkflowEventType = "session.abandoned"
)

// WorkflowEvent is published after every coordinator transition.
type WorkflowEvent struct {
	ID         string            `json:"id"`
	SessionID  string            `json:"session_id"`
	Type       WorkflowEventType `json:"type"`
	Step       WorkflowStep      `json:"step"`
	OccurredAt time.Time         `json:"occurred_at"`
	Payload    map[string]any    `json:"payload,omitempty"`
}

// WorkflowSnapshot is a read-only copy of one session's state.
type WorkflowSnapshot struct {
	SessionID        string          `json:"session_id"`
	Step             WorkflowStep    `json:"step"`
	RequiresApproval bool            `json:"requires_approval"`
	Conversation     Conversation    `json:"conversation"`
	Lead             *LeadRecord     `json:"lead,omitempty"`
	Proposal         *Proposal       `json:"proposal,omitempty"`
	Approvals        []AdminApproval `json:"approvals"`
	Deposit          *Deposit        `json:"deposit,omitempty"`
}

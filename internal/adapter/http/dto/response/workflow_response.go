package response

import (
	"time"

	"agentops_intake/internal/domain/entities"
)

type TurnResponse struct {
	ID               string    `json:"id"`
	Role             string    `json:"role"`
	Text             string    `json:"text"`
	Timestamp        time.Time `json:"timestamp"`
	SuggestedReplies []string  `json:"suggested_replies,omitempty"`
	Confidence       *float64  `json:"confidence,omitempty"`
}

func FromTurn(t entities.ConversationTurn) TurnResponse {
	res := TurnResponse{
		ID:        t.ID,
		Role:      string(t.Role),
		Text:      t.Text,
		Timestamp: t.Timestamp,
	}
	if t.Metadata != nil {
		res.SuggestedReplies = t.Metadata.SuggestedReplies
		res.Confidence = t.Metadata.Confidence
	}
	return res
}

type LeadResponse struct {
	entities.LeadRecord
	QualificationLabel string `json:"qualification_label"`
}

type ProposalResponse struct {
	entities.Proposal
	Editable bool `json:"editable"`
}

func FromProposal(p entities.Proposal) ProposalResponse {
	return ProposalResponse{Proposal: p, Editable: p.Editable()}
}

type ApprovalResponse struct {
	entities.AdminApproval
}

func FromApproval(a entities.AdminApproval) ApprovalResponse {
	return ApprovalResponse{AdminApproval: a}
}

type SessionResponse struct {
	SessionID        string             `json:"session_id"`
	Step             string             `json:"step"`
	RequiresApproval bool               `json:"requires_approval"`
	Busy             bool               `json:"busy"`
	Turns            []TurnResponse     `json:"turns"`
	Lead             *LeadResponse      `json:"lead,omitempty"`
	Proposal         *ProposalResponse  `json:"proposal,omitempty"`
	Approvals        []ApprovalResponse `json:"approvals"`
	Deposit          *DepositResponse   `json:"deposit,omitempty"`
}

func FromSnapshot(s entities.WorkflowSnapshot) SessionResponse {
	res := SessionResponse{
		SessionID:        s.SessionID,
		Step:             string(s.Step),
		RequiresApproval: s.RequiresApproval,
		Busy:             s.Conversation.Busy,
		Turns:            make([]TurnResponse, 0, len(s.Conversation.Turns)),
		Approvals:        make([]ApprovalResponse, 0, len(s.Approvals)),
	}
	for _, t := range s.Conversation.Turns {
		res.Turns = append(res.Turns, FromTurn(t))
	}
	for _, a := range s.Approvals {
		res.Approvals = append(res.Approvals, FromApproval(a))
	}
	if s.Lead != nil {
		res.Lead = &LeadResponse{LeadRecord: *s.Lead, QualificationLabel: s.Lead.QualificationLabel()}
	}
	if s.Proposal != nil {
		p := FromProposal(*s.Proposal)
		res.Proposal = &p
	}
	if s.Deposit != nil {
		d := FromDeposit(*s.Deposit)
		res.Deposit = &d
	}
	return res
}

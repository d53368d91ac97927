package response

import (
	"encoding/json"
	"testing"
	"time"

	"agentops_intake/internal/domain/entities"
)

func TestFromSnapshot(t *testing.T) {
	now := time.Now().UTC()
	conf := 0.85
	snap := entities.WorkflowSnapshot{
		SessionID: "sess_1",
		Step:      entities.WorkflowStepProposal,
		Conversation: entities.Conversation{
			Turns: []entities.ConversationTurn{
				{ID: "t1", Role: entities.TurnRoleAgent, Text: "Hi", Timestamp: now,
					Metadata: &entities.TurnMetadata{SuggestedReplies: []string{"a"}, Confidence: &conf}},
				{ID: "t2", Role: entities.TurnRoleUser, Text: "web", Timestamp: now},
			},
		},
		Lead:     &entities.LeadRecord{ID: "lead_1", QualificationScore: 65},
		Proposal: &entities.Proposal{ID: "prop_1", Status: entities.ProposalStatusDraft},
	}

	res := FromSnapshot(snap)
	if res.SessionID != "sess_1" || res.Step != "proposal" {
		t.Fatalf("unexpected header: %+v", res)
	}
	if len(res.Turns) != 2 || res.Turns[0].Confidence == nil || *res.Turns[0].Confidence != 0.85 {
		t.Fatalf("unexpected turns: %+v", res.Turns)
	}
	if res.Lead == nil || res.Lead.QualificationLabel != "Qualified" {
		t.Fatalf("unexpected lead: %+v", res.Lead)
	}
	if res.Proposal == nil || !res.Proposal.Editable {
		t.Fatalf("expected editable proposal: %+v", res.Proposal)
	}
	if res.Approvals == nil || res.Deposit != nil {
		t.Fatalf("expected empty approvals and no deposit: %+v", res)
	}

	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var body map[string]any
	_ = json.Unmarshal(b, &body)
	lead, _ := body["lead"].(map[string]any)
	if lead["id"] != "lead_1" || lead["qualification_label"] != "Qualified" {
		t.Fatalf("expected flattened lead json, got %s", b)
	}
}

func TestFromDeposit(t *testing.T) {
	now := time.Now().UTC()
	d := entities.Deposit{
		ID:                 "dep_1",
		ProposalID:         "prop_1",
		Amount:             22500,
		Status:             entities.DepositStatusApproved,
		ProviderPaymentID:  "987",
		CreatedAt:          now,
		ProviderPayloadRaw: json.RawMessage(`{"id":987}`),
		ProviderPayload:    map[string]interface{}{"id": 987.0},
	}

	res := FromDeposit(d)
	if res.DepositID != "dep_1" || res.ProposalID != "prop_1" || res.Amount != 22500 {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Status != "approved" || res.MPPayloadRaw != `{"id":987}` {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected date: %+v", res)
	}
}

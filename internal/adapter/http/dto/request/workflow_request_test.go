package request

import (
	"encoding/json"
	"testing"

	"agentops_intake/internal/domain/entities"
)

func TestNavigateRequest_ResolveStep(t *testing.T) {
	r := NavigateRequest{Step: "  Proposal "}
	if got := r.ResolveStep(); got != entities.WorkflowStepProposal {
		t.Fatalf("expected proposal, got %q", got)
	}
}

func TestUpdateProposalRequest_ToPatch(t *testing.T) {
	var r UpdateProposalRequest
	if err := json.Unmarshal([]byte(`{"title":"New title","next_steps":["call"]}`), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Empty() {
		t.Fatalf("expected non-empty request")
	}

	p := r.ToPatch().Apply(entities.Proposal{Title: "Old", Timeline: "3 months"})
	if p.Title != "New title" || p.Timeline != "3 months" {
		t.Fatalf("unexpected patched proposal: %+v", p)
	}
	if len(p.NextSteps) != 1 || p.NextSteps[0] != "call" {
		t.Fatalf("unexpected next steps: %v", p.NextSteps)
	}

	if !(UpdateProposalRequest{}).Empty() {
		t.Fatalf("expected zero request to be empty")
	}
}

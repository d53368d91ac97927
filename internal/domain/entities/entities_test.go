package entities

import (
	"errors"
	"testing"
)

func TestQualificationLabel(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{100, "Highly Qualified"},
		{80, "Highly Qualified"},
		{79, "Qualified"},
		{60, "Qualified"},
		{59, "Needs Qualification"},
		{0, "Needs Qualification"},
	}
	for _, tc := range cases {
		got := LeadRecord{QualificationScore: tc.score}.QualificationLabel()
		if got != tc.want {
			t.Errorf("score %d: expected %q, got %q", tc.score, tc.want, got)
		}
	}
}

func TestClampQualificationScore(t *testing.T) {
	for in, want := range map[int]int{-5: 0, 0: 0, 42: 42, 100: 100, 130: 100} {
		if got := ClampQualificationScore(in); got != want {
			t.Errorf("ClampQualificationScore(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestWorkflowStepValid(t *testing.T) {
	for _, s := range []WorkflowStep{WorkflowStepChat, WorkflowStepLead, WorkflowStepProposal, WorkflowStepApprovals} {
		if !s.Valid() {
			t.Errorf("expected %q to be valid", s)
		}
	}
	if WorkflowStep("deposit").Valid() {
		t.Error("expected unknown step to be invalid")
	}
}

func TestConversationHelpers(t *testing.T) {
	conv := Conversation{ID: "conv_1", Turns: []ConversationTurn{
		{ID: "t0", Role: TurnRoleAgent, Text: "hello"},
		{ID: "t1", Role: TurnRoleUser, Text: "first"},
		{ID: "t2", Role: TurnRoleAgent, Text: "ok"},
		{ID: "t3", Role: TurnRoleUser, Text: "second"},
	}}

	last, ok := conv.LastUserTurn()
	if !ok || last.ID != "t3" {
		t.Fatalf("expected last user turn t3, got %+v (ok=%v)", last, ok)
	}
	if got := conv.UserTexts(); len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Fatalf("unexpected user texts: %v", got)
	}

	clone := conv.Clone()
	clone.Turns[0].Text = "changed"
	if conv.Turns[0].Text != "hello" {
		t.Fatal("expected clone not to alias the original turns")
	}

	if _, ok := (Conversation{Turns: conv.Turns[:1]}).LastUserTurn(); ok {
		t.Fatal("expected no user turn in a greeting-only conversation")
	}
}

func TestProposalPatchApply(t *testing.T) {
	title := "New title"
	terms := "100% upfront"
	p := Proposal{
		Title:        "Old",
		Timeline:     "3 months",
		Deliverables: []string{"a"},
		Pricing:      ProposalPricing{PaymentTerms: "50/50"},
		Status:       ProposalStatusDraft,
	}
	deliverables := []string{"x", "y"}

	got := ProposalPatch{Title: &title, Deliverables: deliverables, PaymentTerms: &terms}.Apply(p)

	if got.Title != title || got.Timeline != "3 months" {
		t.Errorf("unexpected scalar fields: %q %q", got.Title, got.Timeline)
	}
	if got.Pricing.PaymentTerms != terms {
		t.Errorf("expected payment terms %q, got %q", terms, got.Pricing.PaymentTerms)
	}
	deliverables[0] = "mutated"
	if got.Deliverables[0] != "x" {
		t.Error("expected patched deliverables to be copied")
	}
	if p.Title != "Old" {
		t.Error("expected Apply to leave the input untouched")
	}
}

func TestProposalEditableAndApprovalTerminal(t *testing.T) {
	if !(Proposal{Status: ProposalStatusDraft}).Editable() {
		t.Error("draft should be editable")
	}
	for _, s := range []ProposalStatus{ProposalStatusSent, ProposalStatusReviewed, ProposalStatusApproved, ProposalStatusRejected} {
		if (Proposal{Status: s}).Editable() {
			t.Errorf("%s should not be editable", s)
		}
	}
	if (AdminApproval{Status: ApprovalStatusPending}).Terminal() {
		t.Error("pending approval should not be terminal")
	}
	if !(AdminApproval{Status: ApprovalStatusRejected}).Terminal() {
		t.Error("rejected approval should be terminal")
	}
}

func TestErrorKinds(t *testing.T) {
	cases := map[error]error{
		ErrAgentBusy:           ErrStateConflict,
		ErrLeadMissing:         ErrPrecondition,
		ErrApprovalOutstanding: ErrPrecondition,
		ErrProposalImmutable:   ErrStateConflict,
		ErrApprovalNotFound:    ErrNotFound,
	}
	for err, kind := range cases {
		if !errors.Is(err, kind) {
			t.Errorf("expected %v to wrap %v", err, kind)
		}
	}
}

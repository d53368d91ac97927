package workflow

import "agentops_intake/internal/domain/entities"

func (s *Session) Step() entities.WorkflowStep {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

func (s *Session) RequiresApproval() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requiresApproval
}

func (s *Session) Conversation() entities.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conv.Clone()
}

func (s *Session) Lead() (entities.LeadRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lead == nil {
		return entities.LeadRecord{}, false
	}
	return cloneLead(*s.lead), true
}

func (s *Session) Proposal() (entities.Proposal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.proposal == nil {
		return entities.Proposal{}, false
	}
	return cloneProposal(*s.proposal), true
}

func (s *Session) Approvals() []entities.AdminApproval {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.AdminApproval(nil), s.approvals...)
}

func (s *Session) Abandoned() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.abandoned
}

// Snapshot returns a copy of the whole session that shares no memory with it.
func (s *Session) Snapshot() entities.WorkflowSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := entities.WorkflowSnapshot{
		SessionID:        s.id,
		Step:             s.step,
		RequiresApproval: s.requiresApproval,
		Conversation:     s.conv.Clone(),
		Approvals:        append([]entities.AdminApproval{}, s.approvals...),
	}
	if s.lead != nil {
		l := cloneLead(*s.lead)
		snap.Lead = &l
	}
	if s.proposal != nil {
		p := cloneProposal(*s.proposal)
		snap.Proposal = &p
	}
	if s.deposit != nil {
		d := *s.deposit
		snap.Deposit = &d
	}
	return snap
}

func cloneLead(l entities.LeadRecord) entities.LeadRecord {
	recs := make([]entities.PackageRecommendation, len(l.RecommendedPackages))
	for i, r := range l.RecommendedPackages {
		r.Features = append([]string(nil), r.Features...)
		recs[i] = r
	}
	l.RecommendedPackages = recs
	l.ExtractedRequirements = append([]string(nil), l.ExtractedRequirements...)
	l.PainPoints = append([]string(nil), l.PainPoints...)
	l.DecisionMakers = append([]string(nil), l.DecisionMakers...)
	return l
}

func cloneProposal(p entities.Proposal) entities.Proposal {
	p.Deliverables = append([]string(nil), p.Deliverables...)
	p.Terms = append([]string(nil), p.Terms...)
	p.NextSteps = append([]string(nil), p.NextSteps...)
	p.Pricing = p.Pricing.Clone()
	return p
}

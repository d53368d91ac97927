package workflow

import (
	"context"

	"agentops_intake/internal/domain/entities"
	"agentops_intake/internal/domain/lead"

	"go.uber.org/zap"
)

// SubmitUtterance appends the user turn and schedules the agent reply after
// the typing delay. While a reply is pending further submissions fail with
// entities.ErrAgentBusy; nothing is queued.
func (s *Session) SubmitUtterance(text string) (entities.ConversationTurn, error) {
	var turn entities.ConversationTurn
	err := s.do(func() error {
		if s.abandoned {
			return entities.ErrSessionAbandoned
		}
		conv, t, err := s.engine.Submit(s.conv, text)
		if err != nil {
			return err
		}
		s.conv = conv
		turn = t
		s.replied = make(chan struct{})
		s.cancelReply = s.scheduler.AfterFunc(s.cfg.TypingDelay, func() { s.deliverReply(text) })
		s.logger.Debug("utterance accepted", zap.String("turn_id", t.ID), zap.Int("turns", len(conv.Turns)))
		return nil
	})
	return turn, err
}

// deliverReply runs on the scheduler once the typing delay has elapsed. The
// first reply whose utterance qualifies the lead moves the session from chat
// to lead; later qualifying utterances leave the existing lead alone.
func (s *Session) deliverReply(utterance string) {
	_ = s.do(func() error {
		defer s.releaseReplyWaiters()
		if s.abandoned || !s.conv.Busy {
			return nil
		}
		conv, agent := s.engine.Reply(s.conv, utterance)
		s.conv = conv
		s.cancelReply = nil
		s.logger.Debug("agent replied", zap.String("turn_id", agent.ID))

		if s.lead != nil || !lead.ShouldExtract(utterance) {
			return nil
		}
		l, err := lead.Extract(s.conv)
		if err != nil {
			s.logger.Warn("lead extraction failed", zap.Error(err))
			return nil
		}
		s.lead = &l
		if s.step == entities.WorkflowStepChat {
			s.step = entities.WorkflowStepLead
		}
		s.logger.Info("lead extracted",
			zap.String("lead_id", l.ID),
			zap.Int("qualification_score", l.QualificationScore),
			zap.String("project_type", l.ProjectType),
		)
		s.emit(entities.EventLeadExtracted, map[string]any{
			"lead_id":             l.ID,
			"qualification_score": l.QualificationScore,
			"project_type":        l.ProjectType,
			"budget_range":        l.BudgetRange,
		})
		return nil
	})
}

// Navigate switches the visible step. Navigation never creates data; actions
// that need upstream records still fail with a precondition error.
func (s *Session) Navigate(step entities.WorkflowStep) error {
	return s.do(func() error {
		if !step.Valid() {
			return entities.ErrInvalidStep
		}
		s.step = step
		return nil
	})
}

// Abandon discards the session. A pending agent reply is cancelled and every
// later action fails with entities.ErrSessionAbandoned.
func (s *Session) Abandon() {
	_ = s.do(func() error {
		if s.abandoned {
			return nil
		}
		if s.cancelReply != nil {
			s.cancelReply()
			s.cancelReply = nil
		}
		s.abandoned = true
		s.releaseReplyWaiters()
		s.emit(entities.EventSessionAbandoned, nil)
		return nil
	})
}

// AwaitReply blocks until the pending agent reply has landed, the session is
// abandoned or ctx is done. It returns at once when no reply is pending.
func (s *Session) AwaitReply(ctx context.Context) error {
	s.mu.Lock()
	ch := s.replied
	s.mu.Unlock()
	if ch == nil {
		return nil
	}
	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// releaseReplyWaiters must be called with s.mu held.
func (s *Session) releaseReplyWaiters() {
	if s.replied != nil {
		close(s.replied)
		s.replied = nil
	}
}

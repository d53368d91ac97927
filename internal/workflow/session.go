// Package workflow coordinates one intake session: chat, lead, proposal and
// approvals.
//
// A Session owns exactly one conversation, at most one lead and one proposal,
// and the approvals raised for that proposal. All state changes go through
// Session methods; each method validates its preconditions and either applies
// the whole change or returns an error leaving state untouched.
package workflow

import (
	"sync"
	"time"

	"agentops_intake/internal/domain/conversation"
	"agentops_intake/internal/domain/entities"
	"agentops_intake/internal/infrastructure/clock"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Config struct {
	// TypingDelay is how long the agent "types" before its reply lands.
	TypingDelay time.Duration
	// RequiresApproval is the initial position of the review switch.
	RequiresApproval bool
	// ApprovalThreshold forces review once a proposal total reaches it.
	ApprovalThreshold float64
	Requester         string
	Reviewer          string
	ProposalValidFor  time.Duration
	PaymentTerms      string
}

func DefaultConfig() Config {
	return Config{
		TypingDelay:       1500 * time.Millisecond,
		ApprovalThreshold: 100000,
		Requester:         "intake-agent",
		Reviewer:          "admin",
		ProposalValidFor:  30 * 24 * time.Hour,
		PaymentTerms:      "50% upfront, 50% on completion",
	}
}

// Notifier receives workflow events after the change that produced them is
// applied, one at a time and in transition order. It is never called with
// the state lock held, but it must not call back into the session.
type Notifier func(entities.WorkflowEvent)

type Option func(*Session)

func WithNotifier(n Notifier) Option {
	return func(s *Session) { s.notify = n }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.logger = l }
}

func WithIDGenerator(f func() string) Option {
	return func(s *Session) { s.newID = f }
}

func WithEngine(e *conversation.Engine) Option {
	return func(s *Session) { s.engine = e }
}

type Session struct {
	mu sync.Mutex
	// deliver serialises outbox drains so events reach the notifier in the
	// order they were emitted.
	deliver sync.Mutex

	id        string
	cfg       Config
	clock     clock.Clock
	scheduler clock.Scheduler
	engine    *conversation.Engine
	newID     func() string
	notify    Notifier
	logger    *zap.Logger

	step             entities.WorkflowStep
	requiresApproval bool
	conv             entities.Conversation
	lead             *entities.LeadRecord
	proposal         *entities.Proposal
	approvals        []entities.AdminApproval
	deposit          *entities.Deposit
	depositInFlight  bool
	cancelReply      clock.Cancel
	replied          chan struct{}
	abandoned        bool

	outbox []entities.WorkflowEvent
}

// New starts a session in the chat step with the agent greeting in place.
func New(id string, cfg Config, c clock.Clock, sched clock.Scheduler, opts ...Option) *Session {
	s := &Session{
		id:               id,
		cfg:              cfg,
		clock:            c,
		scheduler:        sched,
		newID:            uuid.NewString,
		notify:           func(entities.WorkflowEvent) {},
		logger:           zap.NewNop(),
		step:             entities.WorkflowStepChat,
		requiresApproval: cfg.RequiresApproval,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.engine == nil {
		s.engine = conversation.NewEngine(c)
	}
	s.logger = s.logger.With(zap.String("session_id", id))

	s.conv = s.engine.Start("conv_" + id)
	s.emit(entities.EventSessionStarted, map[string]any{"conversation_id": s.conv.ID})
	s.flush()
	return s
}

func (s *Session) ID() string {
	return s.id
}

// do runs fn under the session lock and delivers the events it queued once
// the lock is released.
func (s *Session) do(fn func() error) error {
	s.mu.Lock()
	err := fn()
	s.mu.Unlock()
	s.flush()
	return err
}

func (s *Session) emit(t entities.WorkflowEventType, payload map[string]any) {
	s.outbox = append(s.outbox, entities.WorkflowEvent{
		ID:         s.newID(),
		SessionID:  s.id,
		Type:       t,
		Step:       s.step,
		OccurredAt: s.clock.Now(),
		Payload:    payload,
	})
}

func (s *Session) flush() {
	s.deliver.Lock()
	defer s.deliver.Unlock()

	s.mu.Lock()
	events := s.outbox
	s.outbox = nil
	s.mu.Unlock()
	for _, e := range events {
		s.notify(e)
	}
}

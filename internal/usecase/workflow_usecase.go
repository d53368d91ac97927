package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"agentops_intake/internal/domain/entities"
	"agentops_intake/internal/infrastructure/clock"
	"agentops_intake/internal/usecase/interfaces"
	"agentops_intake/internal/workflow"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const publishTimeout = 5 * time.Second

var ErrInvalidSessionID = errors.New("invalid session id")

//go:generate mockgen -source=workflow_usecase.go -destination=../adapter/http/handlers/mocks/mock_workflow_usecase.go -package=mocks

// IWorkflowUseCase drives intake sessions on behalf of the HTTP and CLI
// adapters. Every call addresses one session by id.
type IWorkflowUseCase interface {
	StartSession(ctx context.Context) (entities.WorkflowSnapshot, error)
	GetSession(ctx context.Context, sessionID string) (entities.WorkflowSnapshot, error)
	AbandonSession(ctx context.Context, sessionID string) error

	SubmitMessage(ctx context.Context, sessionID, text string) (entities.ConversationTurn, error)
	Navigate(ctx context.Context, sessionID string, step entities.WorkflowStep) (entities.WorkflowSnapshot, error)
	SetRequiresApproval(ctx context.Context, sessionID string, required bool) (entities.WorkflowSnapshot, error)

	GenerateProposal(ctx context.Context, sessionID string) (entities.Proposal, error)
	UpdateProposal(ctx context.Context, sessionID string, patch entities.ProposalPatch) (entities.Proposal, error)
	TogglePackage(ctx context.Context, sessionID, itemID string) (entities.Proposal, error)
	ToggleAddOn(ctx context.Context, sessionID, itemID string) (entities.Proposal, error)
	SendProposal(ctx context.Context, sessionID string) (entities.Proposal, error)

	RequestApproval(ctx context.Context, sessionID string) (entities.AdminApproval, error)
	Approve(ctx context.Context, sessionID, approvalID, comments string) (entities.AdminApproval, error)
	Reject(ctx context.Context, sessionID, approvalID, reason string) (entities.AdminApproval, error)
}

type WorkflowUseCase struct {
	repo      interfaces.ISessionRepository
	publisher interfaces.IEventPublisher
	cfg       workflow.Config
	clock     clock.Clock
	scheduler clock.Scheduler
	logger    *zap.Logger
	newID     func() string
}

var _ IWorkflowUseCase = (*WorkflowUseCase)(nil)

type WorkflowOption func(*WorkflowUseCase)

// WithSessionIDGenerator replaces the random session id source.
func WithSessionIDGenerator(f func() string) WorkflowOption {
	return func(u *WorkflowUseCase) { u.newID = f }
}

func NewWorkflowUseCase(
	repo interfaces.ISessionRepository,
	publisher interfaces.IEventPublisher,
	cfg workflow.Config,
	c clock.Clock,
	sched clock.Scheduler,
	logger *zap.Logger,
	opts ...WorkflowOption,
) *WorkflowUseCase {
	u := &WorkflowUseCase{
		repo:      repo,
		publisher: publisher,
		cfg:       cfg,
		clock:     c,
		scheduler: sched,
		logger:    logger.Named("usecase"),
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *WorkflowUseCase) StartSession(ctx context.Context) (entities.WorkflowSnapshot, error) {
	id := "sess_" + u.newID()
	s := workflow.New(id, u.cfg, u.clock, u.scheduler,
		workflow.WithNotifier(u.publish),
		workflow.WithLogger(u.logger.Named("workflow")),
	)
	if err := u.repo.Save(ctx, s); err != nil {
		u.logger.Error("session save failed", zap.String("session_id", id), zap.Error(err))
		s.Abandon()
		return entities.WorkflowSnapshot{}, err
	}
	u.logger.Info("session started", zap.String("session_id", id))
	return s.Snapshot(), nil
}

func (u *WorkflowUseCase) GetSession(ctx context.Context, sessionID string) (entities.WorkflowSnapshot, error) {
	s, err := u.load(ctx, sessionID)
	if err != nil {
		return entities.WorkflowSnapshot{}, err
	}
	return s.Snapshot(), nil
}

func (u *WorkflowUseCase) AbandonSession(ctx context.Context, sessionID string) error {
	s, err := u.load(ctx, sessionID)
	if err != nil {
		return err
	}
	s.Abandon()
	if err := u.repo.Delete(ctx, s.ID()); err != nil {
		u.logger.Error("session delete failed", zap.String("session_id", s.ID()), zap.Error(err))
		return err
	}
	u.logger.Info("session abandoned", zap.String("session_id", s.ID()))
	return nil
}

func (u *WorkflowUseCase) SubmitMessage(ctx context.Context, sessionID, text string) (entities.ConversationTurn, error) {
	s, err := u.load(ctx, sessionID)
	if err != nil {
		return entities.ConversationTurn{}, err
	}
	return s.SubmitUtterance(text)
}

func (u *WorkflowUseCase) Navigate(ctx context.Context, sessionID string, step entities.WorkflowStep) (entities.WorkflowSnapshot, error) {
	s, err := u.load(ctx, sessionID)
	if err != nil {
		return entities.WorkflowSnapshot{}, err
	}
	if err := s.Navigate(step); err != nil {
		return entities.WorkflowSnapshot{}, err
	}
	return s.Snapshot(), nil
}

func (u *WorkflowUseCase) SetRequiresApproval(ctx context.Context, sessionID string, required bool) (entities.WorkflowSnapshot, error) {
	s, err := u.load(ctx, sessionID)
	if err != nil {
		return entities.WorkflowSnapshot{}, err
	}
	if err := s.SetRequiresApproval(required); err != nil {
		return entities.WorkflowSnapshot{}, err
	}
	return s.Snapshot(), nil
}

func (u *WorkflowUseCase) GenerateProposal(ctx context.Context, sessionID string) (entities.Proposal, error) {
	s, err := u.load(ctx, sessionID)
	if err != nil {
		return entities.Proposal{}, err
	}
	return s.GenerateProposal()
}

func (u *WorkflowUseCase) UpdateProposal(ctx context.Context, sessionID string, patch entities.ProposalPatch) (entities.Proposal, error) {
	s, err := u.load(ctx, sessionID)
	if err != nil {
		return entities.Proposal{}, err
	}
	return s.UpdateProposal(patch)
}

func (u *WorkflowUseCase) TogglePackage(ctx context.Context, sessionID, itemID string) (entities.Proposal, error) {
	s, err := u.load(ctx, sessionID)
	if err != nil {
		return entities.Proposal{}, err
	}
	return s.TogglePackage(itemID)
}

func (u *WorkflowUseCase) ToggleAddOn(ctx context.Context, sessionID, itemID string) (entities.Proposal, error) {
	s, err := u.load(ctx, sessionID)
	if err != nil {
		return entities.Proposal{}, err
	}
	return s.ToggleAddOn(itemID)
}

func (u *WorkflowUseCase) SendProposal(ctx context.Context, sessionID string) (entities.Proposal, error) {
	s, err := u.load(ctx, sessionID)
	if err != nil {
		return entities.Proposal{}, err
	}
	return s.SendProposal()
}

func (u *WorkflowUseCase) RequestApproval(ctx context.Context, sessionID string) (entities.AdminApproval, error) {
	s, err := u.load(ctx, sessionID)
	if err != nil {
		return entities.AdminApproval{}, err
	}
	return s.RequestApproval()
}

func (u *WorkflowUseCase) Approve(ctx context.Context, sessionID, approvalID, comments string) (entities.AdminApproval, error) {
	s, err := u.load(ctx, sessionID)
	if err != nil {
		return entities.AdminApproval{}, err
	}
	return s.Approve(strings.TrimSpace(approvalID), comments)
}

func (u *WorkflowUseCase) Reject(ctx context.Context, sessionID, approvalID, reason string) (entities.AdminApproval, error) {
	s, err := u.load(ctx, sessionID)
	if err != nil {
		return entities.AdminApproval{}, err
	}
	return s.Reject(strings.TrimSpace(approvalID), reason)
}

func (u *WorkflowUseCase) load(ctx context.Context, sessionID string) (*workflow.Session, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}
	s, err := u.repo.GetByID(ctx, sessionID)
	if err != nil {
		u.logger.Error("session load failed", zap.String("session_id", sessionID), zap.Error(err))
		return nil, err
	}
	if s == nil {
		return nil, entities.ErrSessionNotFound
	}
	return s, nil
}

// publish forwards a session event. It runs on whichever goroutine produced
// the event, including scheduler callbacks, so it carries its own deadline.
// Failures are logged and never undo the transition.
func (u *WorkflowUseCase) publish(event entities.WorkflowEvent) {
	if u.publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	if err := u.publisher.Publish(ctx, event); err != nil {
		u.logger.Warn("event publish failed",
			zap.String("session_id", event.SessionID),
			zap.String("type", string(event.Type)),
			zap.Error(err),
		)
	}
}

package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"agentops_intake/internal/infrastructure/clock"
	"agentops_intake/internal/usecase/interfaces"
	"agentops_intake/internal/workflow"

	"go.uber.org/zap"
)

var ErrNilSession = errors.New("session must not be nil")

// SessionMemoryRepository keeps live sessions in process memory. Sessions do
// not survive a restart. Every Save and GetByID marks the session as touched;
// Sweep evicts the ones left idle.
type SessionMemoryRepository struct {
	mu       sync.Mutex
	clock    clock.Clock
	sessions map[string]*storedSession
}

type storedSession struct {
	session *workflow.Session
	touched time.Time
}

var _ interfaces.ISessionRepository = (*SessionMemoryRepository)(nil)

type RepositoryOption func(*SessionMemoryRepository)

// WithClock sets the time source used for idle tracking.
func WithClock(c clock.Clock) RepositoryOption {
	return func(r *SessionMemoryRepository) { r.clock = c }
}

func NewSessionMemoryRepository(opts ...RepositoryOption) *SessionMemoryRepository {
	r := &SessionMemoryRepository{
		clock:    clock.System{},
		sessions: map[string]*storedSession{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *SessionMemoryRepository) Save(ctx context.Context, s *workflow.Session) error {
	if s == nil {
		return ErrNilSession
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID()] = &storedSession{session: s, touched: r.clock.Now()}
	return nil
}

func (r *SessionMemoryRepository) GetByID(ctx context.Context, id string) (*workflow.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	st.touched = r.clock.Now()
	return st.session, nil
}

func (r *SessionMemoryRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

func (r *SessionMemoryRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep removes sessions untouched for at least idle and abandons them, which
// cancels any pending agent reply. It returns the evicted ids.
func (r *SessionMemoryRepository) Sweep(idle time.Duration) []string {
	r.mu.Lock()
	cutoff := r.clock.Now().Add(-idle)
	var evicted []*workflow.Session
	for id, st := range r.sessions {
		if !st.touched.After(cutoff) {
			evicted = append(evicted, st.session)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	ids := make([]string, 0, len(evicted))
	for _, s := range evicted {
		s.Abandon()
		ids = append(ids, s.ID())
	}
	return ids
}

// RunJanitor sweeps every interval until ctx is done.
func (r *SessionMemoryRepository) RunJanitor(ctx context.Context, idle, interval time.Duration, logger *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if ids := r.Sweep(idle); len(ids) > 0 {
				logger.Info("idle sessions evicted",
					zap.Int("count", len(ids)),
					zap.Strings("session_ids", ids),
					zap.Int("remaining", r.Len()),
				)
			}
		}
	}
}

package interfaces

import (
	"context"

	"agentops_intake/internal/workflow"
)

//go:generate mockgen -source=session_repository_interface.go -destination=mocks/mock_session_repository_interface.go -package=mock_interfaces

// ISessionRepository keeps live workflow sessions.
//
// GetByID returns (nil, nil) when the id is unknown.
type ISessionRepository interface {
	Save(ctx context.Context, s *workflow.Session) error
	GetByID(ctx context.Context, id string) (*workflow.Session, error)
	Delete(ctx context.Context, id string) error
}

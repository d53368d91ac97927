package interfaces

import (
	"context"

	"agentops_intake/internal/domain/entities"
)

//go:generate mockgen -source=event_publisher_interface.go -destination=mocks/mock_event_publisher_interface.go -package=mock_interfaces

// IEventPublisher ships workflow events to downstream consumers.
type IEventPublisher interface {
	Publish(ctx context.Context, event entities.WorkflowEvent) error
}

package messaging

import (
	"context"

	"agentops_intake/internal/domain/entities"

	"go.uber.org/zap"
)

// LogPublisher records events in the log. It is used when no brokers are
// configured.
type LogPublisher struct {
	logger *zap.Logger
}

func NewLogPublisher(logger *zap.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.Named("events")}
}

func (p *LogPublisher) Publish(_ context.Context, event entities.WorkflowEvent) error {
	p.logger.Info("workflow event",
		zap.String("event_id", event.ID),
		zap.String("session_id", event.SessionID),
		zap.String("type", string(event.Type)),
		zap.String("step", string(event.Step)),
		zap.Any("payload", event.Payload),
	)
	return nil
}

func (p *LogPublisher) Close() error { return nil }

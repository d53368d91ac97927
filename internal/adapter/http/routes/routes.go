package routes

import (
	"context"
	"fmt"
	"io"
	"time"

	_ "agentops_intake/docs"
	"agentops_intake/internal/adapter/http/handlers"
	"agentops_intake/internal/adapter/persistence/repository"
	"agentops_intake/internal/config"
	"agentops_intake/internal/infrastructure/clock"
	"agentops_intake/internal/infrastructure/messaging"
	"agentops_intake/internal/infrastructure/payments"
	"agentops_intake/internal/usecase"
	"agentops_intake/internal/usecase/interfaces"
	"agentops_intake/internal/workflow"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Dependencies are the collaborators the HTTP API is assembled from.
type Dependencies struct {
	Workflow usecase.IWorkflowUseCase
	Deposit  usecase.IDepositUseCase
	Logger   *zap.Logger
}

// Run wires the service from cfg and serves HTTP until the listener fails.
func Run(cfg *config.Config, logger *zap.Logger) error {
	deps, closer, err := Build(cfg, logger)
	if err != nil {
		return err
	}
	defer closer.Close()

	router := NewRouter(deps)
	logger.Info("http server starting", zap.String("port", cfg.HTTP.Port))
	if err := router.Run(":" + cfg.HTTP.Port); err != nil {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}

// Build assembles the use cases. The returned closer stops the idle session
// janitor and releases the event publisher.
func Build(cfg *config.Config, logger *zap.Logger) (Dependencies, io.Closer, error) {
	publisher := newPublisher(cfg, logger)

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments.AccessToken, cfg.Payments.Mock, logger)
	if err != nil {
		logger.Warn("mercado pago gateway not configured", zap.Error(err))
	} else {
		gateway = mpGateway
	}

	sys := clock.System{}
	sessions := repository.NewSessionMemoryRepository(repository.WithClock(sys))
	wfCfg := workflow.DefaultConfig()
	wfCfg.TypingDelay = cfg.Workflow.TypingDelay
	wfCfg.RequiresApproval = cfg.Workflow.RequiresApproval
	wfCfg.ApprovalThreshold = cfg.Workflow.ApprovalThreshold
	wfCfg.Reviewer = cfg.Workflow.Reviewer

	deps := Dependencies{
		Workflow: usecase.NewWorkflowUseCase(sessions, publisher, wfCfg, sys, sys, logger),
		Deposit:  usecase.NewDepositUseCase(sessions, gateway, cfg.Workflow.DepositRatio, sys, logger),
		Logger:   logger,
	}

	sd := &shutdown{publisher: publisher, janitorDone: make(chan struct{})}
	ctx, cancel := context.WithCancel(context.Background())
	sd.cancel = cancel
	if ttl := cfg.Workflow.SessionIdleTTL; ttl > 0 {
		logger.Info("idle session eviction enabled", zap.Duration("ttl", ttl))
		go func() {
			defer close(sd.janitorDone)
			sessions.RunJanitor(ctx, ttl, janitorInterval(ttl), logger)
		}()
	} else {
		close(sd.janitorDone)
	}
	return deps, sd, nil
}

func janitorInterval(ttl time.Duration) time.Duration {
	if every := ttl / 4; every > time.Second {
		return every
	}
	return time.Second
}

type shutdown struct {
	cancel      context.CancelFunc
	janitorDone chan struct{}
	publisher   io.Closer
}

func (s *shutdown) Close() error {
	s.cancel()
	<-s.janitorDone
	return s.publisher.Close()
}

type eventPublisher interface {
	interfaces.IEventPublisher
	io.Closer
}

func newPublisher(cfg *config.Config, logger *zap.Logger) eventPublisher {
	if len(cfg.Kafka.Brokers) == 0 {
		logger.Info("no kafka brokers configured; workflow events go to the log")
		return messaging.NewLogPublisher(logger)
	}
	logger.Info("publishing workflow events to kafka",
		zap.Strings("brokers", cfg.Kafka.Brokers),
		zap.String("topic", cfg.Kafka.EventsTopic),
	)
	return messaging.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.EventsTopic, logger)
}

// NewRouter builds the gin engine with every public route under /v1.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, deps.Logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	workflowHandler := handlers.NewWorkflowHandler(deps.Workflow, deps.Logger)
	depositHandler := handlers.NewDepositHandler(deps.Deposit, deps.Logger)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSessionRoutes(v1, workflowHandler, depositHandler)
	return router
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(500)
	}))
}

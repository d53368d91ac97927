package main

import (
	"log"

	_ "agentops_intake/docs"
	"agentops_intake/internal/adapter/http/routes"
	"agentops_intake/internal/config"
	"agentops_intake/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Intake Workflow API
// @version         1.0
// @description     Conversational intake: chat, lead qualification, proposal pricing and admin approvals.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

//go:generate swag init -d ../../ -g cmd/api/main.go -o ../../docs

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	l, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer func() { _ = l.Sync() }()

	if err := routes.Run(cfg, l); err != nil {
		l.Fatal("server stopped", zap.Error(err))
	}
}

package main

import (
	"agentops_intake/internal/config"
	"agentops_intake/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "intakectl",
		Short:         "Run an intake session from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "path to config.yaml")

	load := func() (*config.Config, *zap.Logger, error) {
		cfg, err := config.LoadFrom(configPath)
		if err != nil {
			return nil, nil, err
		}
		l, err := logger.New(cfg.LogLevel)
		if err != nil {
			return nil, nil, err
		}
		return cfg, l, nil
	}

	root.AddCommand(newChatCmd(load))
	return root
}

// Package config loads service settings from defaults, an optional
// config.yaml and environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const DefaultPath = "config.yaml"

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Workflow WorkflowConfig `yaml:"workflow"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Payments PaymentsConfig `yaml:"payments"`
	LogLevel string         `yaml:"log_level"`
}

type HTTPConfig struct {
	Port string `yaml:"port"`
}

type WorkflowConfig struct {
	TypingDelay       time.Duration `yaml:"typing_delay"`
	RequiresApproval  bool          `yaml:"requires_approval"`
	ApprovalThreshold float64       `yaml:"approval_threshold"`
	DepositRatio      float64       `yaml:"deposit_ratio"`
	Reviewer          string        `yaml:"reviewer"`
	// SessionIdleTTL evicts sessions untouched for this long. Zero keeps
	// them until deleted.
	SessionIdleTTL time.Duration `yaml:"session_idle_ttl"`
}

type KafkaConfig struct {
	Brokers     []string `yaml:"brokers"`
	EventsTopic string   `yaml:"events_topic"`
}

type PaymentsConfig struct {
	AccessToken string `yaml:"access_token"`
	Mock        bool   `yaml:"mock"`
}

func Default() *Config {
	return &Config{
		HTTP: HTTPConfig{Port: "8080"},
		Workflow: WorkflowConfig{
			TypingDelay:       1500 * time.Millisecond,
			ApprovalThreshold: 100000,
			DepositRatio:      0.5,
			Reviewer:          "admin",
			SessionIdleTTL:    2 * time.Hour,
		},
		Kafka: KafkaConfig{
			EventsTopic: "intake-workflow-events",
		},
		LogLevel: "info",
	}
}

// Load reads DefaultPath when present and applies environment overrides.
func Load() (*Config, error) {
	return LoadFrom(DefaultPath)
}

// LoadFrom is Load with an explicit YAML path. A missing file is not an
// error.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("HTTP_PORT"); v != "" {
		cfg.HTTP.Port = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TYPING_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("TYPING_DELAY: %w", err)
		}
		cfg.Workflow.TypingDelay = d
	}
	if v := os.Getenv("REQUIRES_APPROVAL"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("REQUIRES_APPROVAL: %w", err)
		}
		cfg.Workflow.RequiresApproval = b
	}
	if v := os.Getenv("APPROVAL_THRESHOLD"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("APPROVAL_THRESHOLD: %w", err)
		}
		cfg.Workflow.ApprovalThreshold = f
	}
	if v := os.Getenv("DEPOSIT_RATIO"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("DEPOSIT_RATIO: %w", err)
		}
		cfg.Workflow.DepositRatio = f
	}
	if v := os.Getenv("DEFAULT_REVIEWER"); v != "" {
		cfg.Workflow.Reviewer = v
	}
	if v := os.Getenv("SESSION_IDLE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("SESSION_IDLE_TTL: %w", err)
		}
		cfg.Workflow.SessionIdleTTL = d
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = splitList(v)
	}
	if v := os.Getenv("KAFKA_EVENTS_TOPIC"); v != "" {
		cfg.Kafka.EventsTopic = v
	}
	if v := os.Getenv("MERCADOPAGO_ACCESS_TOKEN"); v != "" {
		cfg.Payments.AccessToken = v
	}
	if v := os.Getenv("PAYMENT_GATEWAY_MOCK"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("PAYMENT_GATEWAY_MOCK: %w", err)
		}
		cfg.Payments.Mock = b
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Workflow.TypingDelay < 0 {
		return fmt.Errorf("typing_delay must not be negative")
	}
	if c.Workflow.DepositRatio <= 0 || c.Workflow.DepositRatio > 1 {
		return fmt.Errorf("deposit_ratio must be in (0, 1], got %v", c.Workflow.DepositRatio)
	}
	if c.Workflow.ApprovalThreshold < 0 {
		return fmt.Errorf("approval_threshold must not be negative")
	}
	if c.Workflow.SessionIdleTTL < 0 {
		return fmt.Errorf("session_idle_ttl must not be negative")
	}
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

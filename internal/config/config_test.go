package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFrom_YAMLThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yml := `
http:
  port: "9090"
workflow:
  typing_delay: 2s
  approval_threshold: 50000
  session_idle_ttl: 30m
kafka:
  brokers: ["kafka-1:9092"]
log_level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))

	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("KAFKA_BROKERS", "a:9092, b:9092")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTP.Port)
	assert.Equal(t, 2*time.Second, cfg.Workflow.TypingDelay)
	assert.Equal(t, 50000.0, cfg.Workflow.ApprovalThreshold)
	assert.Equal(t, 0.5, cfg.Workflow.DepositRatio)
	assert.Equal(t, 30*time.Minute, cfg.Workflow.SessionIdleTTL)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.Payments.Mock)
}

func TestLoadFrom_InvalidValues(t *testing.T) {
	dir := t.TempDir()

	t.Run("bad yaml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("http: [unclosed"), 0o600))
		_, err := LoadFrom(path)
		assert.Error(t, err)
	})

	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("TYPING_DELAY", "soon")
		_, err := LoadFrom(filepath.Join(dir, "none.yaml"))
		assert.ErrorContains(t, err, "TYPING_DELAY")
	})

	t.Run("unreadable path", func(t *testing.T) {
		_, err := LoadFrom(dir)
		assert.ErrorContains(t, err, "read "+dir)
	})

	t.Run("bad idle ttl", func(t *testing.T) {
		t.Setenv("SESSION_IDLE_TTL", "-1m")
		_, err := LoadFrom(filepath.Join(dir, "none.yaml"))
		assert.ErrorContains(t, err, "session_idle_ttl")
	})

	t.Run("ratio out of range", func(t *testing.T) {
		t.Setenv("DEPOSIT_RATIO", "1.5")
		_, err := LoadFrom(filepath.Join(dir, "none.yaml"))
		assert.ErrorContains(t, err, "deposit_ratio")
	})
}

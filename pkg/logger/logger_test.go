package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/noah-isme/university-records/pkg/config"
)

func TestNewHonoursLevel(t *testing.T) {
	cfg := &config.Config{Env: config.EnvProduction, Log: config.LogConfig{Level: "warn", Format: "console"}}
	l, err := New(cfg, "registrar")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
}

func TestNewFallsBackToInfo(t *testing.T) {
	cfg := &config.Config{Env: config.EnvDevelopment, Log: config.LogConfig{Level: "loud"}}
	l, err := New(cfg, "")
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestNewNamesComponent(t *testing.T) {
	cfg := &config.Config{Env: config.EnvDevelopment, University: config.UniversityConfig{Name: "KPI"}}
	l, err := New(cfg, "registrar")
	require.NoError(t, err)
	entry := l.Check(zapcore.InfoLevel, "student registered")
	require.NotNil(t, entry)
	assert.Equal(t, "registrar", entry.LoggerName)
}

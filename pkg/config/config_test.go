package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate clears every key Load reads and moves into an empty directory so
// neither the host environment nor a stray .env leaks into the result.
func isolate(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ENV", "LOG_LEVEL", "LOG_FORMAT", "UNIVERSITY_NAME", "ID_SEED",
		"DEFAULT_CONTACT_EMAIL", "DEFAULT_CONTACT_PHONE", "REPORT_FORMAT", "REPORT_TITLE",
	} {
		t.Setenv(key, "")
	}
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "Open University", cfg.University.Name)
	assert.Equal(t, 1, cfg.University.IDSeed)
	assert.Equal(t, ContactConfig{Email: "info@university.com", Phone: "+380955555555"}, cfg.Contact)
	assert.Equal(t, "csv", cfg.Reports.Format)
}

func TestLoadFromEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("ENV", EnvProduction)
	t.Setenv("UNIVERSITY_NAME", "Kyiv Polytechnic")
	t.Setenv("ID_SEED", "1000")
	t.Setenv("DEFAULT_CONTACT_EMAIL", "registrar@kpi.ua")
	t.Setenv("REPORT_FORMAT", " PDF ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, EnvProduction, cfg.Env)
	assert.Equal(t, "Kyiv Polytechnic", cfg.University.Name)
	assert.Equal(t, 1000, cfg.University.IDSeed)
	assert.Equal(t, "registrar@kpi.ua", cfg.Contact.Email)
	assert.Equal(t, "+380955555555", cfg.Contact.Phone)
	assert.Equal(t, "pdf", cfg.Reports.Format)
}

func TestLoadReadsDotEnvFile(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile(".env", []byte("ENV=production\nID_SEED=50\n"), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, EnvProduction, cfg.Env)
	assert.Equal(t, 50, cfg.University.IDSeed)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	isolate(t)
	t.Run("format", func(t *testing.T) {
		t.Setenv("REPORT_FORMAT", "xlsx")
		_, err := Load()
		assert.ErrorContains(t, err, "REPORT_FORMAT")
	})
	t.Run("seed", func(t *testing.T) {
		t.Setenv("ID_SEED", "0")
		_, err := Load()
		assert.ErrorContains(t, err, "ID_SEED")
	})
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "db_agricultura_sc", cfg.Database.Name)
	assert.Equal(t, "postgres", cfg.Database.User)
	assert.Equal(t, "123456", cfg.Database.Password)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 10*time.Second, cfg.Database.ConnectTimeout)
	assert.Equal(t, "", cfg.RedisURL)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "relatorio_proprietarios.xlsx", cfg.ExportPath)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("AGRO_DB_HOST", "db.internal")
	t.Setenv("AGRO_DB_PORT", "6543")
	t.Setenv("AGRO_DB_CONNECT_TIMEOUT", "3s")
	t.Setenv("AGRO_REDIS_URL", " redis://localhost:6379/0 ")
	t.Setenv("AGRO_LOG_LEVEL", "DEBUG")
	t.Setenv("AGRO_EXPORT_PATH", "  ")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, 3*time.Second, cfg.Database.ConnectTimeout)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "relatorio_proprietarios.xlsx", cfg.ExportPath)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("AGRO_DB_PORT", "70000")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PORT")
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("SEARCH_DEFAULT_LIMIT", "")
	t.Setenv("GIGACHAT_API_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Search.DefaultLimit)
	assert.Equal(t, 20, cfg.Search.MaxLimit)
	assert.Equal(t, 5*time.Minute, cfg.Search.RefreshInterval)
	assert.False(t, cfg.GigaChat.Enabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SEARCH_DEFAULT_LIMIT", "8")
	t.Setenv("SEARCH_REFRESH_SECONDS", "30")
	t.Setenv("DB_MAX_CONNS", "25")
	t.Setenv("GIGACHAT_API_KEY", "secret")
	t.Setenv("GIGACHAT_INSECURE_SKIP_VERIFY", "yes")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 8, cfg.Search.DefaultLimit)
	assert.Equal(t, 30*time.Second, cfg.Search.RefreshInterval)
	assert.Equal(t, int32(25), cfg.Database.MaxConns)
	assert.True(t, cfg.GigaChat.Enabled())
	assert.True(t, cfg.GigaChat.InsecureSkipVerify)
}

func TestGetEnvInt_InvalidFallsBack(t *testing.T) {
	t.Setenv("SOME_INT", "abc")
	assert.Equal(t, 7, getEnvInt("SOME_INT", 7))
}

package config

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_DefaultsAndYAML(t *testing.T) {
	path := writeConfig(t, `
env: prod
serverAddr: ":9090"
databaseConfig:
  dsn: "postgres://localhost/food"
jwt:
  accessSecret: "access"
  refreshSecret: "refresh"
  accessTokenTTL: 5m
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ServerAddr)
	assert.Equal(t, 5*time.Minute, cfg.JWT.AccessTokenTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshTokenTTL)
	assert.Equal(t, 30*time.Second, cfg.Realtime.PingTimeout)
	assert.Equal(t, "refreshToken", cfg.Cookie.Name)
	assert.Equal(t, "/api/auth", cfg.Cookie.Path)
	assert.True(t, cfg.Cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cfg.Cookie.SameSiteMode())
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
databaseConfig:
  dsn: "postgres://localhost/food"
jwt:
  accessSecret: "access"
  refreshSecret: "refresh"
`)
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("FRONTEND_URL", "http://localhost:3000")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.JWT.AccessSecret)
	assert.Equal(t, "http://localhost:3000", cfg.CORS.AllowedOrigin)
	assert.Equal(t, EnvLocal, cfg.Env)
	assert.False(t, cfg.Cookie.Secure)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "missing secrets",
			body: "databaseConfig:\n  dsn: x\n",
		},
		{
			name: "equal secrets",
			body: "databaseConfig:\n  dsn: x\njwt:\n  accessSecret: s\n  refreshSecret: s\n",
		},
		{
			name: "unknown env",
			body: "env: staging\ndatabaseConfig:\n  dsn: x\njwt:\n  accessSecret: a\n  refreshSecret: b\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

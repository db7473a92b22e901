package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const fullConfig = `
port: 8080
mongoUri: mongodb://localhost:27017
dbName: identity_test
jwtSecret: super-secret
clientUrl: http://localhost:3000
environment: production
smtp:
  host: smtp.example.com
  port: 2525
  username: mailer
  password: hunter2
  from: no-reply@example.com
`

func TestLoadConfigFromFile(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, fullConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "identity_test", cfg.DBName)
	assert.Equal(t, "super-secret", cfg.JWTSecret)
	assert.Equal(t, "http://localhost:3000", cfg.ClientURL)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "smtp.example.com", cfg.SMTP.Host)
	assert.Equal(t, 2525, cfg.SMTP.Port)
	assert.Equal(t, "no-reply@example.com", cfg.SMTP.From)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `
mongoUri: mongodb://localhost:27017
jwtSecret: super-secret
clientUrl: http://localhost:3000
`))
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, "identity", cfg.DBName)
	assert.Equal(t, "development", cfg.Environment)
	assert.False(t, cfg.IsProduction())
	assert.Empty(t, cfg.SMTP.Host)
	assert.Equal(t, 587, cfg.SMTP.Port)
}

func TestLoadConfigMissingRequired(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing mongoUri", "jwtSecret: s\nclientUrl: http://localhost:3000\n"},
		{"missing jwtSecret", "mongoUri: mongodb://localhost:27017\nclientUrl: http://localhost:3000\n"},
		{"missing clientUrl", "mongoUri: mongodb://localhost:27017\njwtSecret: s\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigFromEnvironmentOnly(t *testing.T) {
	t.Setenv("IDENTITY_MONGOURI", "mongodb://db:27017")
	t.Setenv("IDENTITY_JWTSECRET", "env-secret")
	t.Setenv("IDENTITY_CLIENTURL", "https://app.example.com")
	t.Setenv("IDENTITY_PORT", "9090")
	t.Setenv("IDENTITY_SMTP_HOST", "smtp.env.example.com")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.Equal(t, "env-secret", cfg.JWTSecret)
	assert.Equal(t, "https://app.example.com", cfg.ClientURL)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "smtp.env.example.com", cfg.SMTP.Host)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	t.Setenv("IDENTITY_PORT", "7000")

	cfg, err := LoadConfig(writeConfig(t, fullConfig))
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Port)
}

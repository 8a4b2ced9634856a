package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func validServerConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "postgres://localhost/beichen", MaxOpenConns: 5}},
		Server:  Server{HTTPAddress: ":8891", RequestTimeout: time.Second, ShutdownTimeout: time.Second},
		Log:     Log{Level: "info"},
	}
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder[StructuredConfig]("", serverFileConfig).build(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder[StructuredConfig]("", serverFileConfig)
	b.err = assert.AnError

	cfg, err := b.build(nil)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that a later non-zero field overrides an
// earlier one while zero fields keep the earlier value.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder[StructuredConfig]("", serverFileConfig)
	b.configs = append(b.configs,
		&StructuredConfig{App: App{TokenIssuer: "env"}, Server: Server{HTTPAddress: "localhost:1"}},
		&StructuredConfig{App: App{TokenIssuer: "flags"}},
	)

	cfg, err := b.build(nil)
	require.NoError(t, err)
	assert.Equal(t, "flags", cfg.App.TokenIssuer)
	assert.Equal(t, "localhost:1", cfg.Server.HTTPAddress)
}

func TestBuild_RunsValidation(t *testing.T) {
	b := newConfigBuilder[StructuredConfig]("", serverFileConfig)
	b.configs = append(b.configs, &StructuredConfig{})

	cfg, err := b.build((*StructuredConfig).validate)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestWithFile_UsesLastPath(t *testing.T) {
	p := writeTempFile(t, "c.json", `{"server":{"http_address":"localhost:9000"}}`)

	b := newConfigBuilder[StructuredConfig]("", serverFileConfig)
	b.configs = append(b.configs,
		&StructuredConfig{ConfigFilePath: "/does/not/exist.json"},
		&StructuredConfig{ConfigFilePath: p},
	)
	b.withFile(func(c *StructuredConfig) string { return c.ConfigFilePath })

	cfg, err := b.build(nil)
	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress)
}

func TestWithFile_MissingFile(t *testing.T) {
	b := newConfigBuilder[StructuredConfig]("", serverFileConfig)
	b.configs = append(b.configs, &StructuredConfig{ConfigFilePath: "/does/not/exist.json"})
	b.withFile(func(c *StructuredConfig) string { return c.ConfigFilePath })

	_, err := b.build(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a config file")
}

func TestWithFlags_Error(t *testing.T) {
	b := newConfigBuilder[StructuredConfig]("", serverFileConfig).
		withFlags(func() (*StructuredConfig, error) { return ParseFlags([]string{"-unknown"}) })

	_, err := b.build(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing flags")
}

func TestWithDotEnv_LoadsFile(t *testing.T) {
	p := writeTempFile(t, ".env", "BEICHEN_TEST_DOTENV_VALUE=from-dotenv\n")
	t.Cleanup(func() { os.Unsetenv("BEICHEN_TEST_DOTENV_VALUE") })

	b := newConfigBuilder[StructuredConfig]("", serverFileConfig)
	b.dotEnv = []string{p, filepath.Join(t.TempDir(), "missing.env")}
	b.withDotEnv()

	require.NoError(t, b.err)
	assert.Equal(t, "from-dotenv", os.Getenv("BEICHEN_TEST_DOTENV_VALUE"))
}

// ── entry points ──────────────────────────────────────────────────────────────

func TestGetStructuredConfig_Layering(t *testing.T) {
	p := writeTempFile(t, "server.yaml", "server:\n  request_timeout: 5s\nlog:\n  level: debug\n")

	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://env/db")
	t.Setenv("SERVER_ADDRESS", "localhost:7000")
	t.Setenv("APP_TOKEN_ISSUER", "env-issuer")

	cfg, err := GetStructuredConfig([]string{"-a", "127.0.0.1:8000", "-c", p})
	require.NoError(t, err)

	assert.Equal(t, "postgres://env/db", cfg.Storage.DB.DSN)
	assert.Equal(t, "127.0.0.1:8000", cfg.Server.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "env-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.App.AuthEnabled())
}

func TestGetStructuredConfig_MissingDSN(t *testing.T) {
	t.Setenv("STORAGE_DB_DATABASE_URI", "")

	cfg, err := GetStructuredConfig(nil)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestGetClientConfig_Defaults(t *testing.T) {
	cfg, err := GetClientConfig("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8891", cfg.Adapter.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "admin@beichen.com", cfg.Credentials.Email)
	assert.Equal(t, "/api/auth/login", cfg.Endpoints.Login)
	assert.Equal(t, "/api/users?role=TEACHER&pageSize=1000", cfg.Endpoints.Teachers)
	assert.Equal(t, "beichen-client.db", cfg.Storage.TokenDSN)
}

func TestGetClientConfig_EnvAndFile(t *testing.T) {
	p := writeTempFile(t, "client.json", `{
		"adapter": {"base_url": "https://beichen.example.com", "request_timeout": "3s"},
		"endpoints": {"daily_observation": "/api/records/daily-observation"}
	}`)
	t.Setenv("BEICHEN_AUTH_EMAIL", "teacher@beichen.com")

	cfg, err := GetClientConfig(p)
	require.NoError(t, err)

	assert.Equal(t, "https://beichen.example.com", cfg.Adapter.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "teacher@beichen.com", cfg.Credentials.Email)
	assert.Equal(t, "/api/records/daily-observation", cfg.Endpoints.DailyObservation)
	assert.Equal(t, "/api/duty-reports", cfg.Endpoints.DutyReport)
}

func TestGetClientConfig_InvalidBaseURL(t *testing.T) {
	t.Setenv("BEICHEN_ADAPTER_BASE_URL", "not a url")

	cfg, err := GetClientConfig("")
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.App.TokenSignKey = "secret"
	cfg.Storage.DB.DSN = "postgres://localhost/notes"
	return cfg
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_PriorityOrder(t *testing.T) {
	b := newConfigBuilder()
	b.defaults = validConfig()
	b.json = &StructuredConfig{App: App{TokenIssuer: "json", Version: "json-version"}}
	b.env = &StructuredConfig{App: App{TokenIssuer: "env"}, Server: Server{HTTPAddress: "env:1"}}
	b.flags = &StructuredConfig{Server: Server{HTTPAddress: "flags:2"}}

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "env", cfg.App.TokenIssuer)
	assert.Equal(t, "json-version", cfg.App.Version)
	assert.Equal(t, "flags:2", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration, "defaults survive when no source overrides them")
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("APP_TOKEN_ISSUER", "env-issuer")

	b := newConfigBuilder().withEnv()

	require.NoError(t, b.err)
	require.NotNil(t, b.env)
	assert.Equal(t, "env-version", b.env.App.Version)
	assert.Equal(t, "env-issuer", b.env.App.TokenIssuer)
}

func TestWithEnv_InvalidValueSetsError(t *testing.T) {
	t.Setenv("APP_TOKEN_DURATION", "not-a-duration")

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Nil(t, b.env)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_UnknownFlagSetsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-unknown"})
	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.env = &StructuredConfig{}
	b.withJSON()
	assert.NoError(t, b.err)
	assert.Nil(t, b.json)
}

func TestWithJSON_FlagPathWinsOverEnvPath(t *testing.T) {
	envPath := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "from-env-file"}})
	flagPath := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "from-flag-file"}})

	b := newConfigBuilder()
	b.env = &StructuredConfig{JSONFilePath: envPath}
	b.flags = &StructuredConfig{JSONFilePath: flagPath}
	b.withJSON()

	require.NoError(t, b.err)
	require.NotNil(t, b.json)
	assert.Equal(t, "from-flag-file", b.json.App.Version)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.env = &StructuredConfig{JSONFilePath: "/definitely/not/here.json"}
	b.withJSON()
	assert.Error(t, b.err)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_EndToEnd(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":     map[string]any{"token_sign_key": "json-key", "lockout_window": "30m"},
		"storage": map[string]any{"db": map[string]any{"dsn": "postgres://json/notes"}},
	})
	t.Setenv("CONFIG", path)
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://env/notes")

	cfg, err := GetStructuredConfig([]string{"-a", "127.0.0.1:9999", "-hash-cost", "12"})
	require.NoError(t, err)

	assert.Equal(t, "json-key", cfg.App.TokenSignKey)
	assert.Equal(t, 30*time.Minute, cfg.App.LockoutWindow)
	assert.Equal(t, "postgres://env/notes", cfg.Storage.DB.DSN)
	assert.Equal(t, "127.0.0.1:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, 12, cfg.App.PasswordHashCost)
	assert.Equal(t, 3, cfg.App.LockoutThreshold)
}

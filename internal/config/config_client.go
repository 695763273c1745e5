package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL or host:port of the notes server.
	// Env: CLIENT_SERVER_ADDRESS
	HTTPAddress string `env:"SERVER_ADDRESS"`
	// RequestTimeout is the default timeout for outbound client requests.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file that keeps the session token.
	// Env: CLIENT_DB_DSN
	DSN string `env:"DSN"`
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB `envPrefix:"DB_"`
}

// ClientLog configures where the CLI writes its structured log.
type ClientLog struct {
	// FilePath is the log file. Env: CLIENT_LOG_FILE
	FilePath string `env:"LOG_FILE"`
}

// ClientConfig is the top-level client configuration.
type ClientConfig struct {
	Adapter ClientAdapter `envPrefix:"CLIENT_"`
	Storage ClientStorage `envPrefix:"CLIENT_"`
	Log     ClientLog     `envPrefix:"CLIENT_"`
}

// GetClientConfig builds the client configuration from defaults and
// environment variables. Command-line overrides are applied by the CLI on
// top of the returned value, followed by [ClientConfig.Validate].
func GetClientConfig() (*ClientConfig, error) {
	cfg := defaultClientConfig()

	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}

	if err := mergeClient(cfg, envCfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultClientConfig() *ClientConfig {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	dir = filepath.Join(dir, "go-notes-keeper")

	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: filepath.Join(dir, "session.db")},
		},
		Log: ClientLog{
			FilePath: filepath.Join(dir, "client.log"),
		},
	}
}

func mergeClient(dst, src *ClientConfig) error {
	if err := mergeOverride(dst, src); err != nil {
		return fmt.Errorf("error merging client configs: %w", err)
	}
	return nil
}

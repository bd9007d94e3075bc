package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds client configuration (env + Viper).
type Config struct {
	APIBaseURL          string // backend origin, including the /api prefix
	CredentialsDBPath   string
	CredentialsRedisURL string // when set, tokens live in Redis instead of the local file
	HTTPTimeout         time.Duration
	LogLevel            string

	StubPort        string
	StubDatabaseURL string // Postgres URL for the stub backend; SQLite when empty
}

// Load loads config from env and optional .env file.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	base := viper.GetString("API_BASE_URL")
	if base == "" {
		base = "https://ethiostocklink-lite-1.onrender.com/api"
	}

	dbPath := viper.GetString("CREDENTIALS_DB_PATH")
	if dbPath == "" {
		dbPath = "credentials.db"
	}

	timeout := viper.GetInt("HTTP_TIMEOUT_SECONDS")
	if timeout <= 0 {
		timeout = 15
	}

	level := viper.GetString("LOG_LEVEL")
	if level == "" {
		level = "info"
	}

	stubPort := viper.GetString("STUB_PORT")
	if stubPort == "" {
		stubPort = "8080"
	}

	return &Config{
		APIBaseURL:          base,
		CredentialsDBPath:   dbPath,
		CredentialsRedisURL: viper.GetString("CREDENTIALS_REDIS_URL"),
		HTTPTimeout:         time.Duration(timeout) * time.Second,
		LogLevel:            level,
		StubPort:            stubPort,
		StubDatabaseURL:     viper.GetString("STUB_DATABASE_URL"),
	}, nil
}

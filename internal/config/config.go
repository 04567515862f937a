package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Database holds the PostgreSQL connection settings.
type Database struct {
	Host           string
	Port           int
	Name           string
	User           string
	Password       string
	SSLMode        string
	ConnectTimeout time.Duration
}

// Config holds application configuration (.env + AGRO_* env via Viper).
type Config struct {
	Env        string
	Database   Database
	RedisURL   string // empty disables usage counters
	LogLevel   string
	LogFile    string // empty logs to stderr
	ExportPath string // default target of the XLSX report export
}

const envPrefix = "AGRO"

// Load loads config from env and optional .env file. Unset keys fall back to the
// settings the portal has always shipped with.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	_ = viper.ReadInConfig()

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 5432)
	viper.SetDefault("DB_NAME", "db_agricultura_sc")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "123456")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DB_CONNECT_TIMEOUT", "10s")
	viper.SetDefault("LOG_LEVEL", "warn")
	viper.SetDefault("EXPORT_PATH", "relatorio_proprietarios.xlsx")

	port := viper.GetInt("DB_PORT")
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("config: invalid DB_PORT %q", viper.GetString("DB_PORT"))
	}
	timeout := viper.GetDuration("DB_CONNECT_TIMEOUT")
	if timeout <= 0 {
		return nil, fmt.Errorf("config: invalid DB_CONNECT_TIMEOUT %q", viper.GetString("DB_CONNECT_TIMEOUT"))
	}

	return &Config{
		Env: viper.GetString("APP_ENV"),
		Database: Database{
			Host:           viper.GetString("DB_HOST"),
			Port:           port,
			Name:           viper.GetString("DB_NAME"),
			User:           viper.GetString("DB_USER"),
			Password:       viper.GetString("DB_PASSWORD"),
			SSLMode:        viper.GetString("DB_SSLMODE"),
			ConnectTimeout: timeout,
		},
		RedisURL:   strings.TrimSpace(viper.GetString("REDIS_URL")),
		LogLevel:   strings.ToLower(viper.GetString("LOG_LEVEL")),
		LogFile:    strings.TrimSpace(viper.GetString("LOG_FILE")),
		ExportPath: exportPath(viper.GetString("EXPORT_PATH")),
	}, nil
}

func exportPath(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "relatorio_proprietarios.xlsx"
	}
	return s
}

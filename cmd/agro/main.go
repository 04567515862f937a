package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"agro-portal/internal/application/ownership"
	"agro-portal/internal/application/production"
	"agro-portal/internal/application/properties"
	"agro-portal/internal/application/usage"
	"agro-portal/internal/config"
	"agro-portal/internal/health"
	"agro-portal/internal/infrastructure/database"
	"agro-portal/internal/interfaces/console"
	"agro-portal/internal/logging"

	"github.com/mattn/go-isatty"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config load: "+err.Error())
		os.Exit(1)
	}
	logOut, closeLog, err := logging.Open(cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	defer closeLog()
	logging.Configure(cfg.LogLevel, logOut)

	conn := database.NewConnector(cfg.Database)
	log.Info().Str("env", cfg.Env).Str("dsn", database.Redact(database.DSN(cfg.Database))).Msg("database configured")

	var recorder usage.Recorder = usage.NopRecorder{}
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		rec, err := usage.NewRedisRecorder(cfg.RedisURL)
		if err != nil {
			log.Warn().Err(err).Msg("invalid REDIS_URL, usage counters disabled")
		} else {
			recorder = rec
			rdb = rec.Rdb
			defer rdb.Close()
		}
	}

	fd := os.Stdout.Fd()
	menu := &console.Menu{
		Console:    console.NewConsole(os.Stdin, os.Stdout, isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)),
		Properties: &properties.Service{Conn: conn},
		Production: &production.Service{Conn: conn},
		Ownership:  &ownership.Service{Conn: conn},
		Recorder:   recorder,
		DB:         health.SessionPinger{Conn: conn},
		Rdb:        rdb,
		StartedAt:  time.Now(),
		ExportPath: cfg.ExportPath,
	}
	if err := menu.Run(context.Background()); err != nil {
		log.Error().Err(err).Msg("menu stopped")
	}
}

package database

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"agro-portal/internal/config"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Opener opens a database session for a single operation. Callers release it with Close.
type Opener interface {
	Open(ctx context.Context) (*gorm.DB, error)
}

// Connector opens a fresh GORM session per call. It never pools across operations:
// each session is capped at one connection and closed by the caller.
type Connector struct {
	Dialector func() gorm.Dialector
}

// NewConnector returns a Connector for the PostgreSQL server in cfg.
// PreferSimpleProtocol disables prepared statement caching, matching how the
// sessions are used: a handful of statements, then closed.
func NewConnector(cfg config.Database) *Connector {
	dsn := DSN(cfg)
	return &Connector{
		Dialector: func() gorm.Dialector {
			return postgres.New(postgres.Config{
				DSN:                  dsn,
				PreferSimpleProtocol: true,
			})
		},
	}
}

// DSN renders cfg as a libpq key=value connection string.
func DSN(cfg config.Database) string {
	parts := []string{
		"host=" + quote(cfg.Host),
		fmt.Sprintf("port=%d", cfg.Port),
		"dbname=" + quote(cfg.Name),
		"user=" + quote(cfg.User),
		"password=" + quote(cfg.Password),
	}
	if cfg.SSLMode != "" {
		parts = append(parts, "sslmode="+quote(cfg.SSLMode))
	}
	if secs := int(cfg.ConnectTimeout.Seconds()); secs > 0 {
		parts = append(parts, fmt.Sprintf("connect_timeout=%d", secs))
	}
	return strings.Join(parts, " ")
}

// quote escapes a DSN value per libpq rules when it is empty or has spaces/quotes.
func quote(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

// Open opens and pings a new session. Failures wrap ErrConnection.
func (c *Connector) Open(ctx context.Context) (*gorm.DB, error) {
	db, err := gorm.Open(c.Dialector(), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		return nil, fmt.Errorf("%w: %w", ErrConnection, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnection, err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		log.Error().Err(err).Msg("database ping failed")
		return nil, fmt.Errorf("%w: %w", ErrConnection, err)
	}
	return db.WithContext(ctx), nil
}

// Close releases the session opened by Open. Nil-safe.
func Close(db *gorm.DB) {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Warn().Err(err).Msg("database close failed")
	}
}

// Redact hides the password in a DSN for log output.
func Redact(dsn string) string {
	if u, err := url.Parse(dsn); err == nil && u.Scheme != "" {
		return u.Redacted()
	}
	fields := strings.Fields(dsn)
	for i, f := range fields {
		if strings.HasPrefix(f, "password=") {
			fields[i] = "password=xxxxx"
		}
	}
	return strings.Join(fields, " ")
}

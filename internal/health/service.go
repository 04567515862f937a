package health

import (
	"context"
	"runtime"
	"time"

	"agro-portal/internal/application/usage"
	"agro-portal/internal/infrastructure/database"

	"github.com/redis/go-redis/v9"
)

// DBPinger is optional for the status check. If nil, database is reported as disconnected.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// SessionPinger checks the database by opening and releasing a session.
type SessionPinger struct {
	Conn database.Opener
}

func (p SessionPinger) Ping(ctx context.Context) error {
	db, err := p.Conn.Open(ctx)
	if err != nil {
		return err
	}
	database.Close(db)
	return nil
}

// Result is what the status screen prints.
type Result struct {
	Status        string
	Dependencies  map[string]DepStatus
	Usage         []usage.Stats
	LastOperation string
	Runtime       RuntimeInfo
}

type DepStatus struct {
	Status string
	PingMs *int64
	Error  string
}

type RuntimeInfo struct {
	UptimeSeconds int64
	HeapMB        int
	Platform      string
	GoVersion     string
}

// Collect gathers database and Redis status plus usage counters. Redis is optional:
// overall status is "ok" whenever the database answers.
func Collect(ctx context.Context, db DBPinger, rdb *redis.Client, startedAt time.Time) Result {
	result := Result{Dependencies: make(map[string]DepStatus)}

	dbStatus := DepStatus{Status: "disconnected"}
	if db != nil {
		start := time.Now()
		if err := db.Ping(ctx); err == nil {
			ms := time.Since(start).Milliseconds()
			dbStatus = DepStatus{Status: "connected", PingMs: &ms}
		} else {
			dbStatus = DepStatus{Status: "error", Error: database.Describe(err)}
		}
	}
	result.Dependencies["database"] = dbStatus

	redisStatus := DepStatus{Status: "disabled"}
	if rdb != nil {
		start := time.Now()
		if err := rdb.Ping(ctx).Err(); err == nil {
			ms := time.Since(start).Milliseconds()
			redisStatus = DepStatus{Status: "connected", PingMs: &ms}
			if stats, last, err := usage.Snapshot(ctx, rdb); err == nil {
				result.Usage = stats
				result.LastOperation = last
			}
		} else {
			redisStatus = DepStatus{Status: "error", Error: err.Error()}
		}
	}
	result.Dependencies["redis"] = redisStatus

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	uptime := int64(time.Since(startedAt).Seconds())
	if startedAt.IsZero() || uptime < 0 {
		uptime = 0
	}
	result.Runtime = RuntimeInfo{
		UptimeSeconds: uptime,
		HeapMB:        int(m.HeapInuse / 1024 / 1024),
		Platform:      runtime.GOOS + " (" + runtime.GOARCH + ")",
		GoVersion:     runtime.Version(),
	}

	if dbStatus.Status == "connected" {
		result.Status = "ok"
	} else {
		result.Status = "issue"
	}
	return result
}

package usage

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Redis keys for usage counters; <op> is the menu operation name.
const (
	keyPrefix     = "agro:usage:"
	KeyLastOp     = keyPrefix + "last_operation"
	KeyOperations = keyPrefix + "operations"
)

// recordTimeout bounds one Record call against a slow or silent Redis.
const recordTimeout = 500 * time.Millisecond

func keyTotal(op string) string    { return keyPrefix + op + ":total" }
func keyErrors(op string) string   { return keyPrefix + op + ":errors" }
func keyDuration(op string) string { return keyPrefix + op + ":ms_total" }

// Event is one finished menu operation.
type Event struct {
	TraceID   string
	Operation string
	Duration  time.Duration
	Failed    bool
	At        time.Time
}

// Recorder stores usage events. Implementations must not fail the operation.
type Recorder interface {
	Record(ctx context.Context, ev Event)
}

// NopRecorder drops events; used when no Redis URL is configured.
type NopRecorder struct{}

func (NopRecorder) Record(context.Context, Event) {}

// RedisRecorder keeps per-operation counters in Redis.
type RedisRecorder struct {
	Rdb *redis.Client
}

// NewRedisRecorder parses url and returns a recorder with its client.
func NewRedisRecorder(url string) (*RedisRecorder, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	opt.ContextTimeoutEnabled = true
	return &RedisRecorder{Rdb: redis.NewClient(opt)}, nil
}

func (r *RedisRecorder) Record(ctx context.Context, ev Event) {
	ctx, cancel := context.WithTimeout(ctx, recordTimeout)
	defer cancel()

	last, _ := json.Marshal(map[string]interface{}{
		"trace_id":  ev.TraceID,
		"operation": ev.Operation,
		"ms":        ev.Duration.Milliseconds(),
		"failed":    ev.Failed,
		"time":      ev.At,
	})
	pipe := r.Rdb.TxPipeline()
	pipe.SAdd(ctx, KeyOperations, ev.Operation)
	pipe.Incr(ctx, keyTotal(ev.Operation))
	pipe.IncrBy(ctx, keyDuration(ev.Operation), ev.Duration.Milliseconds())
	if ev.Failed {
		pipe.Incr(ctx, keyErrors(ev.Operation))
	}
	pipe.Set(ctx, KeyLastOp, last, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		log.Warn().Err(err).Str("trace_id", ev.TraceID).Msg("usage counters not recorded")
	}
}

// Stats are the counters of one operation.
type Stats struct {
	Operation string
	Total     int
	Failed    int
	AvgMs     float64
}

// Snapshot reads the counters of every operation seen so far, plus the last event JSON.
func Snapshot(ctx context.Context, rdb *redis.Client) ([]Stats, string, error) {
	ops, err := rdb.SMembers(ctx, KeyOperations).Result()
	if err != nil {
		return nil, "", err
	}
	sort.Strings(ops)

	stats := make([]Stats, 0, len(ops))
	for _, op := range ops {
		vals, err := rdb.MGet(ctx, keyTotal(op), keyErrors(op), keyDuration(op)).Result()
		if err != nil {
			return nil, "", err
		}
		s := Stats{Operation: op, Total: atoi(vals[0]), Failed: atoi(vals[1])}
		if s.Total > 0 {
			s.AvgMs = float64(atoi(vals[2])) / float64(s.Total)
		}
		stats = append(stats, s)
	}

	last, err := rdb.Get(ctx, KeyLastOp).Result()
	if err == redis.Nil {
		err = nil
	}
	return stats, last, err
}

func atoi(v interface{}) int {
	s, _ := v.(string)
	n, _ := strconv.Atoi(s)
	return n
}

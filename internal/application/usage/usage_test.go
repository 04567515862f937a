package usage

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRecorder_CountsPerOperation(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	rec, err := NewRedisRecorder("redis://" + mr.Addr() + "/0")
	require.NoError(t, err)
	defer rec.Rdb.Close()
	ctx := context.Background()

	rec.Record(ctx, Event{TraceID: "a", Operation: "register_production", Duration: 30 * time.Millisecond})
	rec.Record(ctx, Event{TraceID: "b", Operation: "register_production", Duration: 10 * time.Millisecond, Failed: true})
	rec.Record(ctx, Event{TraceID: "c", Operation: "ownership_report", Duration: 5 * time.Millisecond})

	stats, last, err := Snapshot(ctx, rec.Rdb)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, "ownership_report", stats[0].Operation)
	assert.Equal(t, 1, stats[0].Total)
	assert.Equal(t, 0, stats[0].Failed)

	assert.Equal(t, "register_production", stats[1].Operation)
	assert.Equal(t, 2, stats[1].Total)
	assert.Equal(t, 1, stats[1].Failed)
	assert.InDelta(t, 20.0, stats[1].AvgMs, 0.001)

	assert.Contains(t, last, `"trace_id":"c"`)
}

func TestSnapshot_Empty(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	stats, last, err := Snapshot(context.Background(), rdb)
	require.NoError(t, err)
	assert.Empty(t, stats)
	assert.Equal(t, "", last)
}

func TestRedisRecorder_UnreachableDoesNotPanic(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	rec := &RedisRecorder{Rdb: redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})}
	defer rec.Rdb.Close()
	mr.Close()

	assert.NotPanics(t, func() {
		rec.Record(context.Background(), Event{Operation: "list_properties"})
	})
}

func TestNewRedisRecorder_BadURL(t *testing.T) {
	_, err := NewRedisRecorder("not a url")
	assert.Error(t, err)
}

func TestNopRecorder(t *testing.T) {
	var r Recorder = NopRecorder{}
	assert.NotPanics(t, func() { r.Record(context.Background(), Event{Operation: "x"}) })
}

// silentServer accepts connections and never answers.
func silentServer(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	var mu sync.Mutex
	var conns []net.Conn
	go func() {
		for {
			c, err := ln.Accept()
			if err != nil {
				return
			}
			mu.Lock()
			conns = append(conns, c)
			mu.Unlock()
		}
	}()
	t.Cleanup(func() {
		ln.Close()
		mu.Lock()
		defer mu.Unlock()
		for _, c := range conns {
			c.Close()
		}
	})
	return ln.Addr().String()
}

func TestRedisRecorder_SilentServerIsBounded(t *testing.T) {
	rec, err := NewRedisRecorder("redis://" + silentServer(t))
	require.NoError(t, err)
	defer rec.Rdb.Close()

	start := time.Now()
	rec.Record(context.Background(), Event{TraceID: "slow", Operation: "ownership_report", Duration: time.Millisecond})
	assert.Less(t, time.Since(start), 2*time.Second)
}

package query_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/sync/errgroup"

	"github.com/datakit-io/sqlkit/pkg/query"
)

type recordedStat struct {
	operation string
	failed    bool
}

type fakeStats struct {
	mu       sync.Mutex
	observed []recordedStat
}

func (s *fakeStats) ObserveQuery(operation string, _ time.Duration, failed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observed = append(s.observed, recordedStat{operation: operation, failed: failed})
}

func TestExecutorRecordsSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	db := &fakeDB{rows: rowsOf([]any{int64(1), "a"})}
	ex := query.NewExecutor(db, query.WithTracer(tp.Tracer("sqlkit")))

	_, err := ex.Query(context.Background(), "SELECT id, name FROM users", nil)
	require.NoError(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "sqlkit.query", spans[0].Name())
}

func TestExecutorLogsFailures(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)

	db := &fakeDB{execErr: errors.New("relation does not exist")}
	ex := query.NewExecutor(db, query.WithLogger(zap.New(core)))

	_, err := ex.Exec(context.Background(), "UPDATE nothing SET x = 1", nil)
	require.Error(t, err)

	entries := logs.FilterMessage("statement failed").All()
	require.Len(t, entries, 1)
}

func TestExecutorObservesStats(t *testing.T) {
	stats := &fakeStats{}

	db := &fakeDB{execAffected: 1, rows: rowsOf()}
	ex := query.NewExecutor(db, query.WithStats(stats))

	_, _ = ex.Exec(context.Background(), "DELETE FROM sessions", nil)
	rows, err := ex.Query(context.Background(), "SELECT 1", nil)
	require.NoError(t, err)
	_ = rows.Close()

	require.Len(t, stats.observed, 2)
	assert.Equal(t, "exec", stats.observed[0].operation)
	assert.False(t, stats.observed[0].failed)
	assert.Equal(t, "query", stats.observed[1].operation)
}

func TestExecutorStatsRecordFailure(t *testing.T) {
	stats := &fakeStats{}

	db := &fakeDB{execErr: errors.New("boom")}
	ex := query.NewExecutor(db, query.WithStats(stats))

	_, err := ex.Exec(context.Background(), "UPDATE x SET y = 1", nil)
	require.Error(t, err)

	require.Len(t, stats.observed, 1)
	assert.True(t, stats.observed[0].failed)
}

// Concurrent calls share nothing but the immutable Executor; this must be
// race-free.
func TestExecutorConcurrentCalls(t *testing.T) {
	stats := &fakeStats{}
	ex := query.NewExecutor(concurrentDB{}, query.WithStats(stats))

	g, ctx := errgroup.WithContext(context.Background())
	for i := 0; i < 16; i++ {
		g.Go(func() error {
			_, err := ex.Exec(ctx, "UPDATE counters SET n = n + 1", nil)
			return err
		})
	}
	require.NoError(t, g.Wait())

	assert.Len(t, stats.observed, 16)
}

// concurrentDB is a stateless adapter safe for parallel use, unlike fakeDB
// which records calls without locking.
type concurrentDB struct{}

func (concurrentDB) Exec(context.Context, string, query.Args) (int64, error) { return 1, nil }
func (concurrentDB) Query(context.Context, string, query.Args) (query.Rows, error) {
	return rowsOf(), nil
}
func (concurrentDB) QueryRow(context.Context, string, query.Args) query.Row { return errRow{} }

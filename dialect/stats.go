package dialect

import (
	"context"
	"fmt"
	"iter"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

// OpStats holds store operation statistics. All counters are safe for
// concurrent use.
type OpStats struct {
	// TotalReads is the number of lookups and scans executed.
	TotalReads atomic.Int64
	// TotalWrites is the number of creates, updates and deletes executed.
	TotalWrites atomic.Int64
	// TotalDuration is the total time spent in store operations.
	TotalDuration atomic.Int64 // nanoseconds
	// SlowOps is the count of operations exceeding the slow threshold.
	SlowOps atomic.Int64
	// Errors is the count of failed operations.
	Errors atomic.Int64
}

// Stats returns a snapshot of the current statistics.
func (s *OpStats) Stats() StatsSnapshot {
	return StatsSnapshot{
		TotalReads:    s.TotalReads.Load(),
		TotalWrites:   s.TotalWrites.Load(),
		TotalDuration: time.Duration(s.TotalDuration.Load()),
		SlowOps:       s.SlowOps.Load(),
		Errors:        s.Errors.Load(),
	}
}

// Reset resets all statistics to zero.
func (s *OpStats) Reset() {
	s.TotalReads.Store(0)
	s.TotalWrites.Store(0)
	s.TotalDuration.Store(0)
	s.SlowOps.Store(0)
	s.Errors.Store(0)
}

// StatsSnapshot is a point-in-time snapshot of operation statistics.
type StatsSnapshot struct {
	TotalReads    int64
	TotalWrites   int64
	TotalDuration time.Duration
	SlowOps       int64
	Errors        int64
}

// AvgDuration returns the average operation duration.
func (s StatsSnapshot) AvgDuration() time.Duration {
	total := s.TotalReads + s.TotalWrites
	if total == 0 {
		return 0
	}
	return s.TotalDuration / time.Duration(total)
}

// String returns a human-readable summary of the statistics.
func (s StatsSnapshot) String() string {
	return fmt.Sprintf(
		"reads=%d writes=%d duration=%s avg=%s slow=%d errors=%d",
		s.TotalReads, s.TotalWrites, s.TotalDuration, s.AvgDuration(),
		s.SlowOps, s.Errors,
	)
}

// SlowHook is called when an operation exceeds the slow threshold. The
// label is empty for operations addressing a vertex by id.
type SlowHook func(ctx context.Context, op, label string, duration time.Duration)

// StatsGraph wraps a Graph with operation statistics collection. Scan
// durations cover the full consumption of the sequence, not just its
// construction.
type StatsGraph struct {
	g             Graph
	stats         *OpStats
	slowThreshold time.Duration
	slowHook      SlowHook
	mu            sync.RWMutex
}

var _ Graph = (*StatsGraph)(nil)

// StatsOption configures the StatsGraph.
type StatsOption func(*StatsGraph)

// WithSlowThreshold sets the threshold for slow operation detection.
// Default is 100ms.
func WithSlowThreshold(d time.Duration) StatsOption {
	return func(s *StatsGraph) {
		s.slowThreshold = d
	}
}

// WithSlowHook sets a callback invoked for every slow operation.
func WithSlowHook(hook SlowHook) StatsOption {
	return func(s *StatsGraph) {
		s.slowHook = hook
	}
}

// WithSlowLog logs slow operations to the given logger at warn level.
// This is a convenience wrapper around WithSlowHook.
func WithSlowLog(l *log.Logger) StatsOption {
	return WithSlowHook(func(_ context.Context, op, label string, duration time.Duration) {
		l.Warn("slow store operation", "op", op, "label", label, "duration", duration)
	})
}

// NewStatsGraph wraps a store with statistics collection.
//
// Example:
//
//	store, _ := sqlgraph.Open(dialect.SQLite, dsn)
//	g := dialect.NewStatsGraph(store,
//	    dialect.WithSlowThreshold(200*time.Millisecond),
//	    dialect.WithSlowLog(log.Default()),
//	)
//
//	// Later, check statistics:
//	fmt.Println(g.OpStats().Stats())
func NewStatsGraph(g Graph, opts ...StatsOption) *StatsGraph {
	s := &StatsGraph{
		g:             g,
		stats:         &OpStats{},
		slowThreshold: 100 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OpStats returns the underlying OpStats for reading statistics.
func (s *StatsGraph) OpStats() *OpStats {
	return s.stats
}

// SlowThreshold returns the current slow operation threshold.
func (s *StatsGraph) SlowThreshold() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.slowThreshold
}

// SetSlowThreshold updates the slow operation threshold.
func (s *StatsGraph) SetSlowThreshold(threshold time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slowThreshold = threshold
}

// CreateVertex creates a vertex and records statistics.
func (s *StatsGraph) CreateVertex(ctx context.Context, label string, id *ID, properties map[string]any) (Vertex, error) {
	start := time.Now()
	v, err := s.g.CreateVertex(ctx, label, id, properties)
	s.record(ctx, "create", label, start, err, true)
	return v, err
}

// Vertex loads a vertex and records statistics.
func (s *StatsGraph) Vertex(ctx context.Context, id ID) (Vertex, error) {
	start := time.Now()
	v, err := s.g.Vertex(ctx, id)
	s.record(ctx, "read", "", start, err, false)
	return v, err
}

// VerticesByLabel scans a label and records statistics once the
// sequence is consumed.
func (s *StatsGraph) VerticesByLabel(ctx context.Context, label string) iter.Seq2[Vertex, error] {
	seq := s.g.VerticesByLabel(ctx, label)
	return func(yield func(Vertex, error) bool) {
		start := time.Now()
		var firstErr error
		for v, err := range seq {
			if err != nil && firstErr == nil {
				firstErr = err
			}
			if !yield(v, err) {
				break
			}
		}
		s.record(ctx, "scan", label, start, firstErr, false)
	}
}

// ReplaceProperties replaces vertex properties and records statistics.
func (s *StatsGraph) ReplaceProperties(ctx context.Context, id ID, properties map[string]any) error {
	start := time.Now()
	err := s.g.ReplaceProperties(ctx, id, properties)
	s.record(ctx, "update", "", start, err, true)
	return err
}

// DeleteVertex deletes a vertex and records statistics.
func (s *StatsGraph) DeleteVertex(ctx context.Context, id ID) error {
	start := time.Now()
	err := s.g.DeleteVertex(ctx, id)
	s.record(ctx, "delete", "", start, err, true)
	return err
}

// Close closes the underlying store. Close is not counted.
func (s *StatsGraph) Close() error {
	return s.g.Close()
}

func (s *StatsGraph) record(ctx context.Context, op, label string, start time.Time, err error, write bool) {
	duration := time.Since(start)
	if write {
		s.stats.TotalWrites.Add(1)
	} else {
		s.stats.TotalReads.Add(1)
	}
	s.stats.TotalDuration.Add(int64(duration))

	if err != nil {
		s.stats.Errors.Add(1)
	}

	s.mu.RLock()
	threshold := s.slowThreshold
	hook := s.slowHook
	s.mu.RUnlock()

	if duration > threshold {
		s.stats.SlowOps.Add(1)
		if hook != nil {
			hook(ctx, op, label, duration)
		}
	}
}

// DebugGraph wraps a Graph and logs every operation at debug level.
type DebugGraph struct {
	g   Graph
	log *log.Logger
}

var _ Graph = (*DebugGraph)(nil)

// NewDebugGraph wraps a store with operation logging. A nil logger
// falls back to the default logger.
func NewDebugGraph(g Graph, l *log.Logger) *DebugGraph {
	if l == nil {
		l = log.Default()
	}
	return &DebugGraph{g: g, log: l}
}

// CreateVertex creates a vertex and logs it.
func (d *DebugGraph) CreateVertex(ctx context.Context, label string, id *ID, properties map[string]any) (Vertex, error) {
	d.log.Debug("create vertex", "label", label, "properties", len(properties))
	return d.g.CreateVertex(ctx, label, id, properties)
}

// Vertex loads a vertex and logs it.
func (d *DebugGraph) Vertex(ctx context.Context, id ID) (Vertex, error) {
	d.log.Debug("read vertex", "id", id)
	return d.g.Vertex(ctx, id)
}

// VerticesByLabel scans a label and logs it.
func (d *DebugGraph) VerticesByLabel(ctx context.Context, label string) iter.Seq2[Vertex, error] {
	d.log.Debug("scan label", "label", label)
	return d.g.VerticesByLabel(ctx, label)
}

// ReplaceProperties replaces vertex properties and logs it.
func (d *DebugGraph) ReplaceProperties(ctx context.Context, id ID, properties map[string]any) error {
	d.log.Debug("replace properties", "id", id, "properties", len(properties))
	return d.g.ReplaceProperties(ctx, id, properties)
}

// DeleteVertex deletes a vertex and logs it.
func (d *DebugGraph) DeleteVertex(ctx context.Context, id ID) error {
	d.log.Debug("delete vertex", "id", id)
	return d.g.DeleteVertex(ctx, id)
}

// Close closes the underlying store.
func (d *DebugGraph) Close() error {
	return d.g.Close()
}

package metadata

import (
	"context"
	"log/slog"
	"time"
)

/*
Metadata Collected
- Query invocations (arguments, duration, exit status)
- Failure causes
- Final report summary

Metadata is write-only.
No component may read metadata to influence the report.
Nothing recorded here is ever written to stdout or stderr by the recorder
itself; where events go is decided by the injected logger.
*/

/*
Recorder captures structured report events.
It must not:
- perform I/O decisions
- affect control flow
- impose a logging backend
Events are kept in the order they are received.
*/
type Recorder struct {
	logger  *slog.Logger
	queries []QueryEvent
	errors  []ErrorRecord
	stats   *reportStats
}

// NewRecorder returns a Recorder tagged with runId.
// A nil logger drops every event after it has been kept in memory.
func NewRecorder(runId string, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Recorder{
		logger: logger.With(slog.String("run_id", runId)),
	}
}

func (r *Recorder) RecordQuery(
	query string,
	args []string,
	duration time.Duration,
	exitCode int,
	outcome QueryOutcome,
) {
	r.queries = append(r.queries, QueryEvent{
		query:    query,
		args:     append([]string(nil), args...),
		duration: duration,
		exitCode: exitCode,
		outcome:  outcome,
	})

	r.logger.LogAttrs(context.Background(), slog.LevelDebug, "query",
		slog.String(string(AttrQuery), query),
		slog.Any("args", args),
		slog.Duration("duration", duration),
		slog.Int(string(AttrExitCode), exitCode),
		slog.String("outcome", string(outcome)),
	)
}

func (r *Recorder) RecordError(
	observedAt time.Time,
	packageName string,
	action string,
	cause ErrorCause,
	errorString string,
	attrs []Attribute,
) {
	r.errors = append(r.errors, ErrorRecord{
		packageName: packageName,
		action:      action,
		cause:       cause,
		errorString: errorString,
		observedAt:  observedAt,
		attrs:       attrs,
	})

	logAttrs := []slog.Attr{
		slog.Time("observed_at", observedAt),
		slog.String("package", packageName),
		slog.String("action", action),
		slog.String("cause", cause.String()),
		slog.String("error", errorString),
	}
	for _, a := range attrs {
		logAttrs = append(logAttrs, slog.String(string(a.Key), a.Value))
	}
	r.logger.LogAttrs(context.Background(), slog.LevelWarn, "error", logAttrs...)
}

/*
RecordFinalReport records the terminal summary of a report run.

Contract:
  - MUST be called exactly once per report.
  - MUST be called only after the last query has returned.
  - Recorded stats MUST NOT influence the exit status or output.
*/
func (r *Recorder) RecordFinalReport(
	succeeded bool,
	queryCount int,
	duration time.Duration,
) {
	r.stats = &reportStats{
		succeeded:  succeeded,
		queryCount: queryCount,
		durationMs: duration.Milliseconds(),
	}

	r.logger.LogAttrs(context.Background(), slog.LevelDebug, "report",
		slog.Bool("succeeded", succeeded),
		slog.Int("queries", queryCount),
		slog.Int64("duration_ms", r.stats.durationMs),
	)
}

// Queries returns the recorded query events, oldest first.
func (r *Recorder) Queries() []QueryEvent {
	return append([]QueryEvent(nil), r.queries...)
}

// Errors returns the recorded error records, oldest first.
func (r *Recorder) Errors() []ErrorRecord {
	return append([]ErrorRecord(nil), r.errors...)
}

// Finalized reports whether RecordFinalReport has been called, and its outcome.
func (r *Recorder) Finalized() (recorded bool, succeeded bool) {
	if r.stats == nil {
		return false, false
	}
	return true, r.stats.succeeded
}

type MetadataSink interface {
	RecordQuery(
		query string,
		args []string,
		duration time.Duration,
		exitCode int,
		outcome QueryOutcome,
	)
	RecordError(
		observedAt time.Time,
		packageName string,
		action string,
		cause ErrorCause,
		details string,
		attrs []Attribute,
	)
}

type ReportFinalizer interface {
	RecordFinalReport(
		succeeded bool,
		queryCount int,
		duration time.Duration,
	)
}

// NoopSink implements MetadataSink and ReportFinalizer but does nothing.
// Callers (or tests) decide whether to inject a Recorder or a NoopSink.
type NoopSink struct{}

func (n *NoopSink) RecordQuery(
	query string,
	args []string,
	duration time.Duration,
	exitCode int,
	outcome QueryOutcome,
) {
}

func (n *NoopSink) RecordError(
	observedAt time.Time,
	packageName string,
	action string,
	cause ErrorCause,
	errorString string,
	attrs []Attribute,
) {
}

func (n *NoopSink) RecordFinalReport(succeeded bool, queryCount int, duration time.Duration) {}

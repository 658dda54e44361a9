package vcs

import (
	"errors"
	"fmt"

	"github.com/rohmanhakim/gitrev/internal/metadata"
	"github.com/rohmanhakim/gitrev/pkg/failure"
)

type QueryErrorCause string

const (
	ErrCauseToolMissing = "tool could not be started"
	ErrCauseToolFailed  = "tool exited with failure"
	ErrCauseTimeout     = "timeout"
	ErrCauseCanceled    = "canceled"
	ErrCauseUnknown     = "unknown"
)

// RunError is returned by ExecRunner when a command does not complete successfully.
type RunError struct {
	Binary   string
	Cause    QueryErrorCause
	ExitCode int
	Err      error
}

func (e *RunError) Error() string {
	if e.Cause == ErrCauseToolFailed {
		return fmt.Sprintf("run error: %s: %s (exit status %d)", e.Binary, e.Cause, e.ExitCode)
	}
	return fmt.Sprintf("run error: %s: %s", e.Binary, e.Cause)
}

func (e *RunError) Unwrap() error {
	return e.Err
}

func (e *RunError) Severity() failure.Severity {
	return failure.SeverityFatal
}

// QueryError is returned by GitOracle when a query cannot be answered.
type QueryError struct {
	Query    Query
	Message  string
	Cause    QueryErrorCause
	ExitCode int
	Err      error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("vcs error: %s: %s", e.Query, e.Cause)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// No query is ever retried.
func (e *QueryError) Severity() failure.Severity {
	return failure.SeverityFatal
}

func newQueryError(q Query, err error) *QueryError {
	var runErr *RunError
	if errors.As(err, &runErr) {
		return &QueryError{
			Query:    q,
			Message:  runErr.Error(),
			Cause:    runErr.Cause,
			ExitCode: runErr.ExitCode,
			Err:      err,
		}
	}
	return &QueryError{
		Query:    q,
		Message:  err.Error(),
		Cause:    ErrCauseUnknown,
		ExitCode: -1,
		Err:      err,
	}
}

// MapErrorToMetadataCause maps vcs-local error semantics
// to the canonical metadata.ErrorCause table.
//
// This mapping is observational only and MUST NOT be used
// to derive control-flow decisions.
func MapErrorToMetadataCause(err error) metadata.ErrorCause {
	var cause QueryErrorCause
	var queryErr *QueryError
	var runErr *RunError
	switch {
	case errors.As(err, &queryErr):
		cause = queryErr.Cause
	case errors.As(err, &runErr):
		cause = runErr.Cause
	default:
		return metadata.CauseUnknown
	}

	switch cause {
	case ErrCauseToolMissing:
		return metadata.CauseToolUnavailable
	case ErrCauseToolFailed:
		return metadata.CauseQueryFailed
	case ErrCauseTimeout, ErrCauseCanceled:
		return metadata.CauseTimeout
	default:
		return metadata.CauseUnknown
	}
}

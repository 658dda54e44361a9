package reporter

import (
	"errors"
	"fmt"

	"github.com/rohmanhakim/gitrev/internal/vcs"
	"github.com/rohmanhakim/gitrev/pkg/failure"
)

// ErrUnavailable is the single failure every report collapses to.
var ErrUnavailable = errors.New("version information unavailable")

type ReportErrorCause string

const (
	ErrCauseNotWorkingTree = "not inside a working tree"
	ErrCauseQueryFailed    = "query failed"
)

// ReportError keeps the failing step and its underlying error for
// diagnostics. It always matches ErrUnavailable.
type ReportError struct {
	Step  vcs.Query
	Cause ReportErrorCause
	Err   error
}

func (e *ReportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("reporter error: %s: %s: %v", e.Step, e.Cause, e.Err)
	}
	return fmt.Sprintf("reporter error: %s: %s", e.Step, e.Cause)
}

func (e *ReportError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrUnavailable}
	}
	return []error{ErrUnavailable, e.Err}
}

func (e *ReportError) Severity() failure.Severity {
	return failure.SeverityFatal
}

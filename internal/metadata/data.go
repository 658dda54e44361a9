package metadata

import (
	"time"
)

// QueryOutcome is how a single external query ended.
type QueryOutcome string

const (
	OutcomeSucceeded QueryOutcome = "succeeded"
	OutcomeFailed    QueryOutcome = "failed"
)

// QueryEvent describes one invocation of the version-control tool.
type QueryEvent struct {
	query    string
	args     []string
	duration time.Duration
	exitCode int
	outcome  QueryOutcome
}

func (q QueryEvent) Query() string           { return q.query }
func (q QueryEvent) Args() []string          { return q.args }
func (q QueryEvent) Duration() time.Duration { return q.duration }
func (q QueryEvent) ExitCode() int           { return q.exitCode }
func (q QueryEvent) Outcome() QueryOutcome   { return q.outcome }

/*
reportStats
  - Terminal summary of one report run
  - Recorded exactly once, after the last query
  - Never read back by the reporter
*/
type reportStats struct {
	succeeded  bool
	queryCount int
	durationMs int64
}

/*
	ErrorCause is a closed classification used only for observability.

	Rules:
	 - ErrorCause MUST NOT influence control flow.
	 - Every failure surfaces to the user the same way regardless of cause.
	 - Packages MAY map their local errors to ErrorCause,
	   but MUST NOT invent new meanings.

If a failure does not clearly match a defined cause, CauseUnknown MUST be used.
*/
type ErrorCause int

/*
Canonical ErrorCause Table

# CauseUnknown

  - The failure does not map cleanly to any known category.

# CauseToolUnavailable

  - The version-control binary could not be started.
  - Missing from PATH, not executable, resolved relative to the working directory.

# CauseNotWorkingTree

  - The working directory is not inside a tracked working tree.

# CauseQueryFailed

  - The tool started but exited with a nonzero status.
  - Empty repository with no HEAD, corrupt repository.

# CauseTimeout

  - A query did not finish before its deadline.
*/
const (
	CauseUnknown ErrorCause = iota
	CauseToolUnavailable
	CauseNotWorkingTree
	CauseQueryFailed
	CauseTimeout
)

func (c ErrorCause) String() string {
	switch c {
	case CauseToolUnavailable:
		return "tool_unavailable"
	case CauseNotWorkingTree:
		return "not_working_tree"
	case CauseQueryFailed:
		return "query_failed"
	case CauseTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

type ErrorRecord struct {
	packageName string
	action      string
	cause       ErrorCause
	errorString string
	observedAt  time.Time
	attrs       []Attribute
}

func (e ErrorRecord) PackageName() string   { return e.packageName }
func (e ErrorRecord) Action() string        { return e.action }
func (e ErrorRecord) Cause() ErrorCause     { return e.cause }
func (e ErrorRecord) ErrorString() string   { return e.errorString }
func (e ErrorRecord) ObservedAt() time.Time { return e.observedAt }
func (e ErrorRecord) Attrs() []Attribute    { return e.attrs }

type Attribute struct {
	Key   AttributeKey
	Value string
}

func NewAttr(key AttributeKey, val string) Attribute {
	return Attribute{
		Key:   key,
		Value: val,
	}
}

type AttributeKey string

const (
	AttrQuery    AttributeKey = "query"
	AttrStep     AttributeKey = "step"
	AttrBinary   AttributeKey = "binary"
	AttrWorkDir  AttributeKey = "work_dir"
	AttrExitCode AttributeKey = "exit_code"
)

// Package vcs asks a version-control tool about the working tree.
package vcs

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rohmanhakim/gitrev/internal/metadata"
)

// Oracle answers the three questions needed to stamp a revision.
// Implementations treat the underlying tool as opaque and do not
// validate what it prints beyond trimming whitespace.
type Oracle interface {
	// IsWorkingTree reports whether the working directory is inside a
	// tracked working tree. A negative answer is not an error; an error
	// means the tool itself could not be asked.
	IsWorkingTree(ctx context.Context) (bool, error)
	// CommitCount returns the number of commits reachable from HEAD, as text.
	CommitCount(ctx context.Context) (string, error)
	// ShortHash returns the abbreviated identifier of HEAD.
	ShortHash(ctx context.Context) (string, error)
}

// GitOracle implements Oracle by running git.
type GitOracle struct {
	runner CommandRunner
	sink   metadata.MetadataSink
}

func NewGitOracle(runner CommandRunner, sink metadata.MetadataSink) *GitOracle {
	if sink == nil {
		sink = &metadata.NoopSink{}
	}
	return &GitOracle{
		runner: runner,
		sink:   sink,
	}
}

func (g *GitOracle) IsWorkingTree(ctx context.Context) (bool, error) {
	_, err := g.query(ctx, QueryIsWorkingTree)
	if err == nil {
		return true, nil
	}

	var queryErr *QueryError
	if errors.As(err, &queryErr) && queryErr.Cause == ErrCauseToolFailed {
		return false, nil
	}
	return false, err
}

func (g *GitOracle) CommitCount(ctx context.Context) (string, error) {
	return g.query(ctx, QueryCommitCount)
}

func (g *GitOracle) ShortHash(ctx context.Context) (string, error) {
	return g.query(ctx, QueryShortHash)
}

func (g *GitOracle) query(ctx context.Context, q Query) (string, error) {
	args := GitArgs(q)

	start := time.Now()
	out, err := g.runner.Run(ctx, args...)
	duration := time.Since(start)

	if err != nil {
		queryErr := newQueryError(q, err)
		g.sink.RecordQuery(string(q), args, duration, queryErr.ExitCode, metadata.OutcomeFailed)
		return "", queryErr
	}

	g.sink.RecordQuery(string(q), args, duration, 0, metadata.OutcomeSucceeded)
	return strings.TrimSpace(string(out)), nil
}

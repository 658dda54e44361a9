package reporter

import (
	"context"
	"time"

	"github.com/rohmanhakim/gitrev/internal/build"
	"github.com/rohmanhakim/gitrev/internal/config"
	"github.com/rohmanhakim/gitrev/internal/metadata"
	"github.com/rohmanhakim/gitrev/internal/vcs"
	"github.com/rohmanhakim/gitrev/pkg/failure"
)

/*
 Reporter asks the oracle three questions, strictly in order, and turns
 the answers into a Revision.

 - Each query starts only after the previous one has returned.
 - The first failure ends the report; later queries are never made.
 - Every failure, whatever its cause, is returned as ErrUnavailable.
   Causes are recorded to metadata and never change the outcome.
 - Answers are used verbatim apart from whitespace trimming done by the oracle.
*/
type Reporter struct {
	oracle       vcs.Oracle
	metadataSink metadata.MetadataSink
	finalizer    metadata.ReportFinalizer
	errorAttrs   []metadata.Attribute
}

// NewReporter wires a git-backed Reporter from cfg.
func NewReporter(cfg config.Config, recorder *metadata.Recorder) Reporter {
	if recorder == nil {
		recorder = metadata.NewRecorder("", nil)
	}
	runner := vcs.NewExecRunner(cfg)
	oracle := vcs.NewGitOracle(runner, recorder)
	r := NewReporterWithDeps(oracle, recorder, recorder)
	r.errorAttrs = []metadata.Attribute{
		metadata.NewAttr(metadata.AttrBinary, cfg.Binary()),
		metadata.NewAttr(metadata.AttrWorkDir, cfg.WorkDir()),
	}
	return r
}

func NewReporterWithDeps(
	oracle vcs.Oracle,
	metadataSink metadata.MetadataSink,
	finalizer metadata.ReportFinalizer,
) Reporter {
	if metadataSink == nil {
		metadataSink = &metadata.NoopSink{}
	}
	if finalizer == nil {
		finalizer = &metadata.NoopSink{}
	}
	return Reporter{
		oracle:       oracle,
		metadataSink: metadataSink,
		finalizer:    finalizer,
	}
}

// Report returns the revision of the working tree's HEAD.
func (r *Reporter) Report(ctx context.Context) (build.Revision, failure.ClassifiedError) {
	start := time.Now()
	queries := 0

	fail := func(step vcs.Query, cause ReportErrorCause, err error) (build.Revision, failure.ClassifiedError) {
		reportErr := &ReportError{Step: step, Cause: cause, Err: err}
		r.recordError(reportErr)
		r.finalizer.RecordFinalReport(false, queries, time.Since(start))
		return build.Revision{}, reportErr
	}

	queries++
	inside, err := r.oracle.IsWorkingTree(ctx)
	if err != nil {
		return fail(vcs.QueryIsWorkingTree, ErrCauseQueryFailed, err)
	}
	if !inside {
		return fail(vcs.QueryIsWorkingTree, ErrCauseNotWorkingTree, nil)
	}

	queries++
	count, err := r.oracle.CommitCount(ctx)
	if err != nil {
		return fail(vcs.QueryCommitCount, ErrCauseQueryFailed, err)
	}

	queries++
	hash, err := r.oracle.ShortHash(ctx)
	if err != nil {
		return fail(vcs.QueryShortHash, ErrCauseQueryFailed, err)
	}

	r.finalizer.RecordFinalReport(true, queries, time.Since(start))
	return build.Revision{Count: count, Hash: hash}, nil
}

func (r *Reporter) recordError(err *ReportError) {
	cause := metadata.CauseNotWorkingTree
	if err.Cause != ErrCauseNotWorkingTree {
		cause = vcs.MapErrorToMetadataCause(err.Err)
	}
	attrs := []metadata.Attribute{
		metadata.NewAttr(metadata.AttrStep, string(err.Step)),
	}
	attrs = append(attrs, r.errorAttrs...)

	r.metadataSink.RecordError(
		time.Now(),
		"reporter",
		"Reporter.Report",
		cause,
		err.Error(),
		attrs,
	)
}

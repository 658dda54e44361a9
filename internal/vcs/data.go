package vcs

// Query names one of the three questions asked of the version-control tool.
type Query string

const (
	QueryIsWorkingTree Query = "is_working_tree"
	QueryCommitCount   Query = "commit_count"
	QueryShortHash     Query = "short_hash"
)

// gitArgs holds the git invocation answering each query.
var gitArgs = map[Query][]string{
	QueryIsWorkingTree: {"rev-parse", "--is-inside-work-tree"},
	QueryCommitCount:   {"rev-list", "--count", "HEAD"},
	QueryShortHash:     {"rev-parse", "--short", "HEAD"},
}

// GitArgs returns the git arguments used for q, or nil for an unknown query.
func GitArgs(q Query) []string {
	args, ok := gitArgs[q]
	if !ok {
		return nil
	}
	return append([]string(nil), args...)
}

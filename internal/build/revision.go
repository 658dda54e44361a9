package build

// Revision identifies a commit by its ancestry depth and short hash.
// Both values are kept exactly as the version-control tool reported them.
type Revision struct {
	Count string
	Hash  string
}

// String returns the revision stamp.
// Format: "r<Count>.<Hash>" (e.g., "r482.a1b2c3d")
func (r Revision) String() string {
	return FormatRevision(r.Count, r.Hash)
}

// FormatRevision joins a commit count and a short hash into a revision stamp.
func FormatRevision(count, hash string) string {
	return "r" + count + "." + hash
}

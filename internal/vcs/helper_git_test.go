package vcs_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// requireBinary skips the test when name is not on PATH.
func requireBinary(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not available: %v", name, err)
	}
}

// isolateFromParentRepos stops git from discovering a repository above dir.
func isolateFromParentRepos(t *testing.T, dir string) {
	t.Helper()
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(dir))
}

// runGit runs git in dir with a fixed identity and returns trimmed stdout.
func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	full := append([]string{
		"-c", "user.name=gitrev",
		"-c", "user.email=gitrev@example.com",
		"-c", "commit.gpgsign=false",
		"-c", "init.defaultBranch=main",
	}, args...)
	cmd := exec.Command("git", full...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_NOSYSTEM=1", "HOME="+dir)
	out, err := cmd.Output()
	if err != nil {
		t.Fatalf("git %s: %v", strings.Join(args, " "), err)
	}
	return strings.TrimSpace(string(out))
}

// newRepoWithCommits creates a repository holding n empty commits.
func newRepoWithCommits(t *testing.T, n int) string {
	t.Helper()
	requireBinary(t, "git")

	dir := t.TempDir()
	isolateFromParentRepos(t, dir)
	runGit(t, dir, "init", "-q")
	for i := 0; i < n; i++ {
		runGit(t, dir, "commit", "-q", "--allow-empty", "-m", "commit")
	}
	return dir
}

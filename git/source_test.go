package git_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/fwojciec/lineview"
	"github.com/fwojciec/lineview/git"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Compile-time check that Source implements lineview.Source.
var _ lineview.Source = (*git.Source)(nil)

// setupTestRepo creates a temporary git repository with a committed file
// and an uncommitted edit in the worktree.
func setupTestRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	runGit(t, dir, "init", "-b", "main")
	runGit(t, dir, "config", "user.email", "test@example.com")
	runGit(t, dir, "config", "user.name", "Test User")

	writeFile(t, dir, "file.txt", "committed line\n")
	runGit(t, dir, "add", ".")
	runGit(t, dir, "commit", "-m", "Initial commit")

	writeFile(t, dir, "file.txt", "edited line\n")

	return dir
}

// runGit executes a git command in the given directory.
func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command git %v failed: %s", args, string(output))
	return string(output)
}

// writeFile creates a file with the given content.
func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)
}

func TestSource_Load(t *testing.T) {
	t.Parallel()

	dir := setupTestRepo(t)

	oldText, newText, err := git.NewSource(dir, "HEAD", "file.txt").Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "committed line\n", oldText)
	assert.Equal(t, "edited line\n", newText)
}

func TestSource_Load_UnknownRevision(t *testing.T) {
	t.Parallel()

	dir := setupTestRepo(t)

	_, _, err := git.NewSource(dir, "nonexistent-rev", "file.txt").Load(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "git show failed")
}

func TestSource_Load_MissingWorktreeFile(t *testing.T) {
	t.Parallel()

	dir := setupTestRepo(t)

	_, _, err := git.NewSource(dir, "HEAD", "missing.txt").Load(context.Background())

	require.Error(t, err)
}

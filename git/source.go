// Package git provides a text source backed by git, via shell commands.
package git

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/fwojciec/lineview"
)

// Compile-time interface verification.
var _ lineview.Source = (*Source)(nil)

// Source compares a committed version of a file against the worktree.
// The old text is read from the given revision with git show; the new
// text is the current file content on disk.
type Source struct {
	RepoPath string // Repository root, "." for the current directory
	Rev      string // Revision to read the old version from, e.g. "HEAD~1"
	Path     string // File path relative to the repository root
}

// NewSource creates a Source for the given repository, revision and path.
func NewSource(repoPath, rev, path string) *Source {
	return &Source{RepoPath: repoPath, Rev: rev, Path: path}
}

// Load returns the committed version and the worktree version of the file.
func (s *Source) Load(ctx context.Context) (string, string, error) {
	oldText, err := s.show(ctx)
	if err != nil {
		return "", "", err
	}

	data, err := os.ReadFile(filepath.Join(s.RepoPath, s.Path))
	if err != nil {
		return "", "", fmt.Errorf("reading worktree file: %w", err)
	}

	return oldText, string(data), nil
}

// show returns the file content at the configured revision.
func (s *Source) show(ctx context.Context) (string, error) {
	args := []string{"-C", s.RepoPath, "show", fmt.Sprintf("%s:%s", s.Rev, s.Path)}
	cmd := exec.CommandContext(ctx, "git", args...)
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("git show failed: %s", string(exitErr.Stderr))
		}
		return "", fmt.Errorf("git show failed: %w", err)
	}
	return string(output), nil
}

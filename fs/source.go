// Package fs provides a text source backed by the local filesystem.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/lineview"
	"golang.org/x/sync/errgroup"
)

// Compile-time interface verification.
var _ lineview.Source = (*Source)(nil)

// Source loads the old and new text from two files on disk.
type Source struct {
	OldPath string
	NewPath string
}

// NewSource creates a Source reading oldPath and newPath.
func NewSource(oldPath, newPath string) *Source {
	return &Source{OldPath: oldPath, NewPath: newPath}
}

// Load reads both files, in parallel.
func (s *Source) Load(ctx context.Context) (string, string, error) {
	var oldText, newText string

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		data, err := os.ReadFile(s.OldPath)
		if err != nil {
			return fmt.Errorf("reading old file: %w", err)
		}
		oldText = string(data)
		return nil
	})
	g.Go(func() error {
		data, err := os.ReadFile(s.NewPath)
		if err != nil {
			return fmt.Errorf("reading new file: %w", err)
		}
		newText = string(data)
		return nil
	})

	if err := g.Wait(); err != nil {
		return "", "", err
	}
	return oldText, newText, nil
}

// DefaultCommentsDir returns the default directory for comment files.
// Uses XDG_CACHE_HOME if set, otherwise falls back to ~/.cache/lineview,
// or system temp directory if home is unavailable.
func DefaultCommentsDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "lineview")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(os.TempDir(), "lineview")
	}
	return filepath.Join(home, ".cache", "lineview")
}

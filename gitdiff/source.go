// Package gitdiff provides a text source backed by a unified diff patch,
// using bluekeyes/go-gitdiff.
package gitdiff

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bluekeyes/go-gitdiff/gitdiff"
	"github.com/fwojciec/lineview"
)

// ErrFileNotInPatch is returned when the patch contains no entry for the
// requested file.
var ErrFileNotInPatch = errors.New("file not found in patch")

// Compile-time interface verification.
var _ lineview.Source = (*Source)(nil)

// Source reconstructs the old and new version of a file from a patch.
// The old text is read from disk and must match the patch preimage; the
// new text is produced by applying the patch to it.
type Source struct {
	PatchPath string // Path to the unified diff file
	FilePath  string // File within the patch to reconstruct
}

// NewSource creates a Source for the given patch and file.
func NewSource(patchPath, filePath string) *Source {
	return &Source{PatchPath: patchPath, FilePath: filePath}
}

// Load parses the patch, locates the file entry and returns the preimage
// together with the patched result.
func (s *Source) Load(ctx context.Context) (string, string, error) {
	patch, err := os.Open(s.PatchPath)
	if err != nil {
		return "", "", fmt.Errorf("opening patch: %w", err)
	}
	defer patch.Close()

	files, _, err := gitdiff.Parse(patch)
	if err != nil {
		return "", "", fmt.Errorf("parsing patch: %w", err)
	}

	file := findFile(files, s.FilePath)
	if file == nil {
		return "", "", fmt.Errorf("%w: %s", ErrFileNotInPatch, s.FilePath)
	}

	oldText := ""
	if !file.IsNew {
		data, err := os.ReadFile(oldName(file))
		if err != nil {
			return "", "", fmt.Errorf("reading preimage: %w", err)
		}
		oldText = string(data)
	}

	var out bytes.Buffer
	if err := gitdiff.Apply(&out, strings.NewReader(oldText), file); err != nil {
		return "", "", fmt.Errorf("applying patch: %w", err)
	}

	return oldText, out.String(), nil
}

// findFile locates the patch entry whose old or new name matches path.
func findFile(files []*gitdiff.File, path string) *gitdiff.File {
	for _, f := range files {
		if f.OldName == path || f.NewName == path {
			return f
		}
	}
	return nil
}

func oldName(f *gitdiff.File) string {
	if f.OldName != "" {
		return f.OldName
	}
	return f.NewName
}

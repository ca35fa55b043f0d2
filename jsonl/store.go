// Package jsonl persists comments as JSON Lines files.
package jsonl

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/lineview"
)

// Compile-time interface verification.
var _ lineview.CommentStore = (*Store)(nil)

// Store persists and retrieves Comment records as JSONL.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads comments from a JSONL file. Returns nil if the file doesn't exist.
func (s *Store) Load(path string) ([]lineview.Comment, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var comments []lineview.Comment
	scanner := bufio.NewScanner(f)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var c lineview.Comment
		if err := json.Unmarshal([]byte(line), &c); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		comments = append(comments, c)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}

// Save writes comments to a JSONL file, creating parent directories if needed.
func (s *Store) Save(path string, comments []lineview.Comment) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, c := range comments {
		data, err := json.Marshal(c)
		if err != nil {
			return err
		}
		if _, err := f.Write(data); err != nil {
			return err
		}
		if _, err := f.WriteString("\n"); err != nil {
			return err
		}
	}

	return nil
}

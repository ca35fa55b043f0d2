// Package lineview provides domain types for aligning and viewing two
// versions of a text side by side.
package lineview

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Kind classifies a row side relative to the other text.
type Kind int

// Side classifications.
const (
	Same Kind = iota
	Added
	Removed
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	default:
		return "same"
	}
}

// Side is one half of an aligned row.
type Side struct {
	Value      string // Original line content, never normalized
	LineNumber int    // 1-based position in the source text (offset applied)
	Kind       Kind
}

// Row pairs at most one old-side line with at most one new-side line.
// A nil side is a placeholder for a change on the other side. A row with
// both sides nil is a gap row, inserted by the view layer to make room
// for a comment overlay; the alignment engine never emits one.
type Row struct {
	Left  *Side
	Right *Side
}

// Changed reports whether the row describes any addition, removal or
// modification. Gap rows are not changes.
func (r Row) Changed() bool {
	if r.Left == nil && r.Right == nil {
		return false
	}
	if r.Left == nil || r.Right == nil {
		return true
	}
	return r.Left.Kind != Same || r.Right.Kind != Same
}

// Modified reports whether the row pairs a removed old line with an added
// new line.
func (r Row) Modified() bool {
	return r.Left != nil && r.Right != nil &&
		r.Left.Kind == Removed && r.Right.Kind == Added
}

// Gap reports whether the row is a synthetic spacer with no content.
func (r Row) Gap() bool {
	return r.Left == nil && r.Right == nil
}

// Alignment is the complete result of aligning two texts.
type Alignment struct {
	Rows []Row
	// ChangedRows holds the indices of every row that is not a pure
	// unchanged row, in emission order, without duplicates. The view
	// layer derives fold boundaries from it.
	ChangedRows []int
}

// Aligner converts two texts into an ordered sequence of aligned rows.
type Aligner interface {
	// Align partitions oldText and newText into aligned rows. The
	// lineOffset is added to every reported line number; a negative
	// offset is a contract violation and returns an error.
	Align(oldText, newText string, lineOffset int) (*Alignment, error)
}

// Viewer displays an alignment with its attached comments.
type Viewer interface {
	View(ctx context.Context, alignment *Alignment, comments []Comment) error
}

// Source loads the two texts to be aligned.
type Source interface {
	// Load returns the old and new text. Implementations may read
	// files, invoke git, or reconstruct a version from a patch.
	Load(ctx context.Context) (oldText, newText string, err error)
}

// Clipboard writes content to the system clipboard.
type Clipboard interface {
	Copy(content string) error
}

// LineID returns the stable identifier for a line on one side of the
// alignment, e.g. "L-12" for old line 12 or "R-7" for new line 7.
// These identifiers anchor comments and highlight flags.
func LineID(k Kind, lineNumber int) string {
	if k == Added {
		return fmt.Sprintf("R-%d", lineNumber)
	}
	if k == Removed {
		return fmt.Sprintf("L-%d", lineNumber)
	}
	return fmt.Sprintf("R-%d", lineNumber)
}

// ParseLineID splits a line identifier into its side prefix and line
// number. The prefix is "L" for the old side and "R" for the new side.
func ParseLineID(id string) (prefix string, lineNumber int, err error) {
	prefix, num, ok := strings.Cut(id, "-")
	if !ok || (prefix != "L" && prefix != "R") {
		return "", 0, fmt.Errorf("invalid line id %q", id)
	}
	n, err := strconv.Atoi(num)
	if err != nil || n < 1 {
		return "", 0, fmt.Errorf("invalid line id %q", id)
	}
	return prefix, n, nil
}

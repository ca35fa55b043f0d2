package lineview

import (
	"context"
	"fmt"
	"time"
)

// Comment is a note anchored to one line of the alignment.
type Comment struct {
	Line      string    `json:"line"` // Anchor line id, e.g. "R-12"
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentStore persists and retrieves comment threads.
type CommentStore interface {
	// Load reads comments from path. A missing file is not an error
	// and yields an empty result.
	Load(path string) ([]Comment, error)
	Save(path string, comments []Comment) error
}

// CommentGenerator produces review comments for an alignment.
type CommentGenerator interface {
	Generate(ctx context.Context, alignment *Alignment) ([]Comment, error)
}

// RowForLine returns the index of the row carrying the given line id,
// searching the left side for "L-" ids and the right side for "R-" ids.
func (a *Alignment) RowForLine(id string) (int, bool) {
	prefix, num, err := ParseLineID(id)
	if err != nil {
		return 0, false
	}
	for i, row := range a.Rows {
		if prefix == "L" && row.Left != nil && row.Left.LineNumber == num {
			return i, true
		}
		if prefix == "R" && row.Right != nil && row.Right.LineNumber == num {
			return i, true
		}
	}
	return 0, false
}

// ValidationReason identifies why a comment anchor is invalid.
type ValidationReason string

// Validation error reasons.
const (
	ErrInvalidLineID ValidationReason = "invalid_line_id"
	ErrLineNotFound  ValidationReason = "line_not_found"
)

// ValidationError describes a single invalid comment anchor.
type ValidationError struct {
	Comment int              // Index of the comment in the input slice
	Line    string           // The problematic line id
	Reason  ValidationReason // Why the anchor is invalid
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	switch e.Reason {
	case ErrInvalidLineID:
		return fmt.Sprintf("comment %d: line id %q is malformed", e.Comment, e.Line)
	case ErrLineNotFound:
		return fmt.Sprintf("comment %d: line %q not present in alignment", e.Comment, e.Line)
	default:
		return fmt.Sprintf("comment %d: unknown error for line %q", e.Comment, e.Line)
	}
}

// ValidateComments checks that every comment anchors to a line that exists
// in the alignment. Returns a slice of validation errors, or nil if all
// comments are valid.
func ValidateComments(alignment *Alignment, comments []Comment) []ValidationError {
	var errs []ValidationError
	for i, c := range comments {
		if _, _, err := ParseLineID(c.Line); err != nil {
			errs = append(errs, ValidationError{Comment: i, Line: c.Line, Reason: ErrInvalidLineID})
			continue
		}
		if _, ok := alignment.RowForLine(c.Line); !ok {
			errs = append(errs, ValidationError{Comment: i, Line: c.Line, Reason: ErrLineNotFound})
		}
	}
	return errs
}

// Package align implements the line alignment engine: it partitions two
// texts into an ordered sequence of aligned rows using a longest-common-
// subsequence edit script over their lines.
package align

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/fwojciec/lineview"
)

// Compile-time interface verification.
var _ lineview.Aligner = (*Aligner)(nil)

// Aligner computes line alignments. The zero value is ready to use; every
// call is independent and safe to run concurrently with others.
type Aligner struct{}

// New creates a new Aligner.
func New() *Aligner {
	return &Aligner{}
}

// Align partitions oldText and newText into aligned rows. The lineOffset
// is added to every reported line number. The call is pure and
// synchronous; it never fails for any pair of texts, only for a negative
// offset, which violates the caller contract.
func (a *Aligner) Align(oldText, newText string, lineOffset int) (*lineview.Alignment, error) {
	if lineOffset < 0 {
		return nil, fmt.Errorf("align: negative line offset %d", lineOffset)
	}

	oldLines := splitLines(oldText)
	newLines := splitLines(newText)

	ops := editScript(oldLines, newLines)
	return buildRows(oldLines, newLines, ops, lineOffset), nil
}

// splitLines trims trailing whitespace from the end of the whole text and
// splits the remainder on newlines. Trimming the whole text (not each
// line) avoids fabricating a spurious empty line from a final newline.
func splitLines(text string) []string {
	trimmed := strings.TrimRightFunc(text, unicode.IsSpace)
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}

// equivalent reports whether two lines should be treated as the same line
// for matching purposes. Lines are equivalent when they are identical
// after stripping trailing whitespace, which also makes any two blank
// lines equivalent. Displayed values are never normalized; this relaxation
// applies to matching only.
func equivalent(a, b string) bool {
	return strings.TrimRightFunc(a, unicode.IsSpace) == strings.TrimRightFunc(b, unicode.IsSpace)
}

// opKind is one step of the edit script.
type opKind int

const (
	opMatch  opKind = iota // consume one line from each side
	opDelete               // consume one old line
	opInsert               // consume one new line
)

// op is a single edit-script operation with the line indices it consumes.
type op struct {
	kind   opKind
	oldIdx int // valid for opMatch and opDelete
	newIdx int // valid for opMatch and opInsert
}

// editScript computes the edit script between two line sequences.
//
// It fills a standard O(n·m) LCS table (table[i][j] is the LCS length of
// oldLines[:i] and newLines[:j], stored as a flat slice to keep it a
// single allocation), backtracks from (m,n) to (0,0), and reverses the
// collected operations into display order.
func editScript(oldLines, newLines []string) []op {
	m, n := len(oldLines), len(newLines)

	stride := n + 1
	table := make([]int, (m+1)*(n+1))
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if equivalent(oldLines[i-1], newLines[j-1]) {
				table[i*stride+j] = table[(i-1)*stride+j-1] + 1
			} else if table[(i-1)*stride+j] > table[i*stride+j-1] {
				table[i*stride+j] = table[(i-1)*stride+j]
			} else {
				table[i*stride+j] = table[i*stride+j-1]
			}
		}
	}

	ops := make([]op, 0, m+n)
	i, j := m, n
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && equivalent(oldLines[i-1], newLines[j-1]):
			ops = append(ops, op{kind: opMatch, oldIdx: i - 1, newIdx: j - 1})
			i--
			j--
		case j == 0:
			ops = append(ops, op{kind: opDelete, oldIdx: i - 1})
			i--
		case i == 0:
			ops = append(ops, op{kind: opInsert, newIdx: j - 1})
			j--
		default:
			del := table[(i-1)*stride+j]
			ins := table[i*stride+j-1]
			switch {
			case del > ins:
				ops = append(ops, op{kind: opDelete, oldIdx: i - 1})
				i--
			case ins > del:
				ops = append(ops, op{kind: opInsert, newIdx: j - 1})
				j--
			case i > 1 && equivalent(oldLines[i-2], newLines[j-1]):
				// On a score tie, deleting the current old line is
				// preferred when it enables an immediate match.
				// Without this, two identical lines separated by
				// unequal amounts of surrounding change can be
				// misreported as an unrelated delete+insert pair.
				ops = append(ops, op{kind: opDelete, oldIdx: i - 1})
				i--
			default:
				ops = append(ops, op{kind: opInsert, newIdx: j - 1})
				j--
			}
		}
	}

	// Backtracking collects operations in reverse order.
	for left, right := 0, len(ops)-1; left < right; left, right = left+1, right-1 {
		ops[left], ops[right] = ops[right], ops[left]
	}
	return ops
}

// buildRows converts an edit script into aligned rows, pairing adjacent
// delete+insert operations into modified rows and appending defensive
// backfill rows for any line the script failed to consume.
func buildRows(oldLines, newLines []string, ops []op, offset int) *lineview.Alignment {
	rows := make([]lineview.Row, 0, len(ops))
	var changed []int

	consumedOld, consumedNew := 0, 0

	emit := func(row lineview.Row) {
		if row.Changed() {
			changed = append(changed, len(rows))
		}
		rows = append(rows, row)
	}

	for k := 0; k < len(ops); k++ {
		o := ops[k]
		switch o.kind {
		case opMatch:
			emit(lineview.Row{
				Left:  &lineview.Side{Value: oldLines[o.oldIdx], LineNumber: offset + o.oldIdx + 1, Kind: lineview.Same},
				Right: &lineview.Side{Value: newLines[o.newIdx], LineNumber: offset + o.newIdx + 1, Kind: lineview.Same},
			})
			consumedOld++
			consumedNew++

		case opDelete:
			if k+1 < len(ops) && ops[k+1].kind == opInsert {
				next := ops[k+1]
				oldVal := oldLines[o.oldIdx]
				newVal := newLines[next.newIdx]

				// A delete immediately followed by an insert is a
				// modified line, unless the pair turns out to be
				// equivalent, in which case the whitespace-only edit
				// is not flagged as a change.
				kind := lineview.Removed
				rightKind := lineview.Added
				if equivalent(oldVal, newVal) {
					kind = lineview.Same
					rightKind = lineview.Same
				}
				emit(lineview.Row{
					Left:  &lineview.Side{Value: oldVal, LineNumber: offset + o.oldIdx + 1, Kind: kind},
					Right: &lineview.Side{Value: newVal, LineNumber: offset + next.newIdx + 1, Kind: rightKind},
				})
				consumedOld++
				consumedNew++
				k++
				continue
			}
			emit(lineview.Row{
				Left: &lineview.Side{Value: oldLines[o.oldIdx], LineNumber: offset + o.oldIdx + 1, Kind: lineview.Removed},
			})
			consumedOld++

		case opInsert:
			emit(lineview.Row{
				Right: &lineview.Side{Value: newLines[o.newIdx], LineNumber: offset + o.newIdx + 1, Kind: lineview.Added},
			})
			consumedNew++
		}
	}

	// Backfill: the edit script consumes every line by construction, but
	// a missing line must degrade to a visible added/removed row rather
	// than silent data loss.
	for idx := consumedOld; idx < len(oldLines); idx++ {
		emit(lineview.Row{
			Left: &lineview.Side{Value: oldLines[idx], LineNumber: offset + idx + 1, Kind: lineview.Removed},
		})
	}
	for idx := consumedNew; idx < len(newLines); idx++ {
		emit(lineview.Row{
			Right: &lineview.Side{Value: newLines[idx], LineNumber: offset + idx + 1, Kind: lineview.Added},
		})
	}

	return &lineview.Alignment{Rows: rows, ChangedRows: changed}
}

package lineview

// Fold describes a contiguous range of unchanged rows that the view can
// collapse. Start and End are row indices into Alignment.Rows, inclusive.
type Fold struct {
	Start int
	End   int
}

// Len returns the number of rows hidden when the fold is collapsed.
func (f Fold) Len() int {
	return f.End - f.Start + 1
}

// ComputeFolds derives collapsible unchanged blocks from the changed-row
// indices of an alignment. The margin is the number of unchanged context
// rows kept visible on each edge of a block that touches a change; edges
// at the start or end of the row sequence keep no margin. Blocks that
// would hide fewer than two rows are not folded.
func ComputeFolds(rowCount int, changedRows []int, margin int) []Fold {
	if rowCount == 0 {
		return nil
	}
	if margin < 0 {
		margin = 0
	}

	changed := make(map[int]bool, len(changedRows))
	for _, idx := range changedRows {
		changed[idx] = true
	}

	var folds []Fold
	for i := 0; i < rowCount; i++ {
		if changed[i] {
			continue
		}

		// Maximal run of unchanged rows starting at i.
		start := i
		for i+1 < rowCount && !changed[i+1] {
			i++
		}
		end := i

		// Keep margin rows visible next to surrounding changes.
		if start > 0 {
			start += margin
		}
		if end < rowCount-1 {
			end -= margin
		}

		if end-start+1 >= 2 {
			folds = append(folds, Fold{Start: start, End: end})
		}
	}
	return folds
}

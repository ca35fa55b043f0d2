package lineview

// ColorPair represents a foreground and background color combination.
// Colors should be hex strings in "#RRGGBB" format (e.g., "#ff0000" for red).
// Empty strings are valid and indicate no color override (use terminal default).
type ColorPair struct {
	Foreground string
	Background string
}

// Styles contains color pairs for all visual elements in an aligned view.
type Styles struct {
	Added         ColorPair // Style for added lines
	Removed       ColorPair // Style for removed lines
	Context       ColorPair // Style for unchanged lines
	LineNumber    ColorPair // Style for line numbers in the gutter
	AddedGutter   ColorPair // Style for the gutter of added lines
	RemovedGutter ColorPair // Style for the gutter of removed lines
	Placeholder   ColorPair // Style for the empty half of a one-sided row
	Fold          ColorPair // Style for the collapsed unchanged-block marker
	Highlight     ColorPair // Style for explicitly highlighted lines
	Comment       ColorPair // Style for comment overlay rows
}

// Theme provides styles for rendering an alignment.
// Different implementations can provide light/dark variants.
type Theme interface {
	Styles() Styles
}

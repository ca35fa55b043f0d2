package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/lineview"
)

// minGutterWidth is the minimum width of each line number column in the gutter.
const minGutterWidth = 4

// tabWidth is the number of columns per tab stop.
const tabWidth = 8

// renderConfig holds all rendering parameters for renderRows.
type renderConfig struct {
	alignment *lineview.Alignment
	styles    lineview.Styles
	renderer  *lipgloss.Renderer
	width     int

	split       bool            // Side-by-side layout instead of inline
	showNumbers bool            // Render the line number gutter
	highlights  map[string]bool // Line ids to highlight
	folds       []lineview.Fold // Collapsible unchanged blocks
	expanded    map[int]bool    // Folds (keyed by Start) currently expanded

	commentsByRow map[int][]lineview.Comment
}

// renderRows converts an alignment to a styled string.
// If renderer is nil, the default lipgloss renderer is used.
// Width is the terminal width for full-width backgrounds.
func renderRows(cfg renderConfig) string {
	if cfg.alignment == nil || len(cfg.alignment.Rows) == 0 {
		return ""
	}
	rows := cfg.alignment.Rows

	gutterWidth := calculateGutterWidth(cfg.alignment)

	contextStyle := styleFromColorPair(cfg.styles.Context, cfg.renderer)
	foldStyle := styleFromColorPair(cfg.styles.Fold, cfg.renderer)
	commentStyle := styleFromColorPair(cfg.styles.Comment, cfg.renderer)

	foldAt := make(map[int]lineview.Fold, len(cfg.folds))
	for _, f := range cfg.folds {
		foldAt[f.Start] = f
	}

	var sb strings.Builder
	for i := 0; i < len(rows); i++ {
		if f, ok := foldAt[i]; ok && !cfg.expanded[f.Start] {
			marker := fmt.Sprintf("⋯ %d unchanged lines", f.Len())
			sb.WriteString(foldStyle.Render(padLine(marker, cfg.width)))
			sb.WriteString("\n")
			i = f.End
			continue
		}

		row := rows[i]
		if row.Gap() {
			sb.WriteString(contextStyle.Render(padLine("", cfg.width)))
			sb.WriteString("\n")
			continue
		}

		if cfg.split {
			sb.WriteString(renderSplitRow(row, gutterWidth, cfg))
		} else {
			sb.WriteString(renderInlineRow(row, gutterWidth, cfg))
		}

		// Comment overlay: a blank gap line followed by the comment
		// body, both full width so they read as attached to the row.
		for _, c := range cfg.commentsByRow[i] {
			sb.WriteString(commentStyle.Render(padLine("", cfg.width)))
			sb.WriteString("\n")
			text := "┃ " + c.Body
			if c.Author != "" {
				text = "┃ " + c.Author + ": " + c.Body
			}
			sb.WriteString(commentStyle.Render(padLine(text, cfg.width)))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// renderInlineRow renders a row as unified-diff style lines. A modified
// row becomes two lines, the removed one first.
func renderInlineRow(row lineview.Row, gutterWidth int, cfg renderConfig) string {
	var sb strings.Builder
	if row.Left != nil && row.Left.Kind == lineview.Removed {
		sb.WriteString(renderInlineLine(row.Left, nil, gutterWidth, cfg))
		sb.WriteString("\n")
		if row.Right != nil {
			sb.WriteString(renderInlineLine(nil, row.Right, gutterWidth, cfg))
			sb.WriteString("\n")
		}
		return sb.String()
	}
	if row.Left == nil {
		sb.WriteString(renderInlineLine(nil, row.Right, gutterWidth, cfg))
		sb.WriteString("\n")
		return sb.String()
	}
	// Unchanged row: both sides present, identical classification.
	sb.WriteString(renderInlineLine(row.Left, row.Right, gutterWidth, cfg))
	sb.WriteString("\n")
	return sb.String()
}

// renderInlineLine renders a single inline line with a two-column gutter.
func renderInlineLine(left, right *lineview.Side, gutterWidth int, cfg renderConfig) string {
	prefix := " "
	side := left
	gutterStyle := styleFromColorPair(cfg.styles.LineNumber, cfg.renderer)
	lineStyle := styleFromColorPair(cfg.styles.Context, cfg.renderer)

	switch {
	case left != nil && left.Kind == lineview.Removed:
		prefix = "-"
		gutterStyle = styleFromColorPair(cfg.styles.RemovedGutter, cfg.renderer)
		lineStyle = styleFromColorPair(cfg.styles.Removed, cfg.renderer)
	case right != nil && right.Kind == lineview.Added:
		prefix = "+"
		side = right
		gutterStyle = styleFromColorPair(cfg.styles.AddedGutter, cfg.renderer)
		lineStyle = styleFromColorPair(cfg.styles.Added, cfg.renderer)
	case left == nil:
		side = right
	}

	highlighted := (left != nil && cfg.highlights[paneLineID(true, left.LineNumber)]) ||
		(right != nil && cfg.highlights[paneLineID(false, right.LineNumber)])
	if highlighted {
		lineStyle = styleFromColorPair(cfg.styles.Highlight, cfg.renderer)
	}

	var sb strings.Builder
	if cfg.showNumbers {
		oldNum, newNum := 0, 0
		if left != nil {
			oldNum = left.LineNumber
		}
		if right != nil {
			newNum = right.LineNumber
		}
		sb.WriteString(formatGutter(oldNum, newNum, gutterWidth, gutterStyle))
	}

	value := ""
	if side != nil {
		value = ExpandTabs(side.Value, 0)
	}
	sb.WriteString(lineStyle.Render(padLine(prefix+value, cfg.width-lipgloss.Width(sb.String()))))
	return sb.String()
}

// renderSplitRow renders a row as two panes separated by a divider.
func renderSplitRow(row lineview.Row, gutterWidth int, cfg renderConfig) string {
	paneWidth := (cfg.width - 1) / 2

	divider := styleFromColorPair(cfg.styles.LineNumber, cfg.renderer).Render("│")

	left := renderPane(row.Left, true, gutterWidth, paneWidth, cfg)
	right := renderPane(row.Right, false, gutterWidth, paneWidth, cfg)

	return left + divider + right + "\n"
}

// renderPane renders one half of a split row. A nil side renders as an
// empty placeholder pane.
func renderPane(side *lineview.Side, isLeft bool, gutterWidth, paneWidth int, cfg renderConfig) string {
	if side == nil {
		style := styleFromColorPair(cfg.styles.Placeholder, cfg.renderer)
		return style.Render(strings.Repeat(" ", paneWidth))
	}

	gutterStyle := styleFromColorPair(cfg.styles.LineNumber, cfg.renderer)
	lineStyle := styleFromColorPair(cfg.styles.Context, cfg.renderer)
	switch side.Kind {
	case lineview.Added:
		gutterStyle = styleFromColorPair(cfg.styles.AddedGutter, cfg.renderer)
		lineStyle = styleFromColorPair(cfg.styles.Added, cfg.renderer)
	case lineview.Removed:
		gutterStyle = styleFromColorPair(cfg.styles.RemovedGutter, cfg.renderer)
		lineStyle = styleFromColorPair(cfg.styles.Removed, cfg.renderer)
	}
	if cfg.highlights[paneLineID(isLeft, side.LineNumber)] {
		lineStyle = styleFromColorPair(cfg.styles.Highlight, cfg.renderer)
	}

	var sb strings.Builder
	contentWidth := paneWidth
	if cfg.showNumbers {
		sb.WriteString(gutterStyle.Render(formatLineNum(side.LineNumber, gutterWidth) + " "))
		contentWidth -= gutterWidth + 1
	}
	value := truncateLine(ExpandTabs(side.Value, 0), contentWidth)
	sb.WriteString(lineStyle.Render(padLine(value, contentWidth)))
	return sb.String()
}

// paneLineID returns the positional line id for a row side: "L-" ids
// refer to old-side line numbers and "R-" ids to new-side ones.
func paneLineID(isLeft bool, lineNumber int) string {
	if isLeft {
		return fmt.Sprintf("L-%d", lineNumber)
	}
	return fmt.Sprintf("R-%d", lineNumber)
}

// calculateGutterWidth determines the appropriate gutter width for an
// alignment based on the maximum line number present in any row.
func calculateGutterWidth(a *lineview.Alignment) int {
	maxLineNum := 0
	for _, row := range a.Rows {
		if row.Left != nil && row.Left.LineNumber > maxLineNum {
			maxLineNum = row.Left.LineNumber
		}
		if row.Right != nil && row.Right.LineNumber > maxLineNum {
			maxLineNum = row.Right.LineNumber
		}
	}
	width := digitWidth(maxLineNum)
	if width < minGutterWidth {
		return minGutterWidth
	}
	return width
}

// formatGutter formats the gutter column with old and new line numbers.
// A zero line number renders as empty space; the color transition
// provides visual separation, no divider character is used.
func formatGutter(oldLineNum, newLineNum, width int, style lipgloss.Style) string {
	gutter := fmt.Sprintf("%s %s ", formatLineNum(oldLineNum, width), formatLineNum(newLineNum, width))
	return style.Render(gutter)
}

// formatLineNum formats a line number for the gutter.
// Returns right-aligned number or empty space for zero (missing) line numbers.
func formatLineNum(num, width int) string {
	if num == 0 {
		return fmt.Sprintf("%*s", width, "")
	}
	return fmt.Sprintf("%*d", width, num)
}

// styleFromColorPair creates a lipgloss style from a ColorPair.
// If renderer is nil, the default lipgloss renderer is used.
func styleFromColorPair(cp lineview.ColorPair, renderer *lipgloss.Renderer) lipgloss.Style {
	var style lipgloss.Style
	if renderer != nil {
		style = renderer.NewStyle()
	} else {
		style = lipgloss.NewStyle()
	}
	if cp.Foreground != "" {
		style = style.Foreground(lipgloss.Color(cp.Foreground))
	}
	if cp.Background != "" {
		style = style.Background(lipgloss.Color(cp.Background))
	}
	return style
}

// padLine pads a line with spaces to the specified display width.
// Uses lipgloss.Width() to correctly handle multi-byte Unicode characters.
// If the line is already wider, it is returned unchanged.
func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth >= width {
		return line
	}
	return line + strings.Repeat(" ", width-lineWidth)
}

// truncateLine cuts a line down to the specified display width.
func truncateLine(line string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(line) <= width {
		return line
	}
	var sb strings.Builder
	col := 0
	for _, r := range line {
		w := lipgloss.Width(string(r))
		if col+w > width {
			break
		}
		sb.WriteRune(r)
		col += w
	}
	return sb.String()
}

// digitWidth returns the number of digits needed to display n.
func digitWidth(n int) int {
	if n <= 0 {
		return 1
	}
	width := 0
	for n > 0 {
		width++
		n /= 10
	}
	return width
}

// Package bubbletea provides a terminal UI viewer for aligned texts using
// the Bubble Tea framework.
package bubbletea

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/lineview"
)

// DefaultFoldMargin is the number of unchanged context rows kept visible
// around each change when folding.
const DefaultFoldMargin = 3

// Options configures the viewer's initial display state.
type Options struct {
	Split           bool               // Side-by-side layout instead of inline
	ShowLineNumbers bool               // Render the line number gutter
	Highlights      []string           // Line ids to highlight, e.g. "L-3"
	FoldMargin      int                // Context rows kept visible around changes
	Clipboard       lineview.Clipboard // Optional, enables copy-new-text
}

// Model is the Bubble Tea model for viewing an alignment.
type Model struct {
	alignment *lineview.Alignment
	styles    lineview.Styles
	opts      Options
	keymap    KeyMap
	renderer  *lipgloss.Renderer

	folds         []lineview.Fold
	foldsExpanded bool
	highlights    map[string]bool
	commentsByRow map[int][]lineview.Comment
	pendingKey    string

	viewport viewport.Model
	ready    bool
	width    int
}

// NewModel creates a new Model for the given alignment and comments.
// Comments with anchors not present in the alignment are ignored.
func NewModel(alignment *lineview.Alignment, comments []lineview.Comment, styles lineview.Styles, opts Options) Model {
	highlights := make(map[string]bool, len(opts.Highlights))
	for _, id := range opts.Highlights {
		highlights[id] = true
	}

	commentsByRow := make(map[int][]lineview.Comment)
	for _, c := range comments {
		if idx, ok := alignment.RowForLine(c.Line); ok {
			commentsByRow[idx] = append(commentsByRow[idx], c)
		}
	}

	margin := opts.FoldMargin
	if margin == 0 {
		margin = DefaultFoldMargin
	}

	return Model{
		alignment:     alignment,
		styles:        styles,
		opts:          opts,
		keymap:        DefaultKeyMap(),
		folds:         lineview.ComputeFolds(len(alignment.Rows), alignment.ChangedRows, margin),
		highlights:    highlights,
		commentsByRow: commentsByRow,
	}
}

// SetRenderer overrides the lipgloss renderer, primarily for tests that
// need a fixed color profile.
func (m *Model) SetRenderer(r *lipgloss.Renderer) {
	m.renderer = r
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Handle multi-key sequences (gg for go to top)
		if m.pendingKey == "g" && key.Matches(msg, m.keymap.GotoTop) {
			m.viewport.GotoTop()
			m.pendingKey = ""
			return m, nil
		}
		if key.Matches(msg, m.keymap.GotoTop) {
			m.pendingKey = "g"
			return m, nil
		}
		m.pendingKey = ""

		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keymap.GotoBottom):
			m.viewport.GotoBottom()
		case key.Matches(msg, m.keymap.HalfPageUp):
			m.viewport.HalfPageUp()
		case key.Matches(msg, m.keymap.HalfPageDown):
			m.viewport.HalfPageDown()
		case key.Matches(msg, m.keymap.Up):
			m.viewport.ScrollUp(1)
		case key.Matches(msg, m.keymap.Down):
			m.viewport.ScrollDown(1)
		case key.Matches(msg, m.keymap.ToggleLayout):
			m.opts.Split = !m.opts.Split
			m.refreshContent()
		case key.Matches(msg, m.keymap.ToggleNumbers):
			m.opts.ShowLineNumbers = !m.opts.ShowLineNumbers
			m.refreshContent()
		case key.Matches(msg, m.keymap.ExpandFolds):
			m.foldsExpanded = !m.foldsExpanded
			m.refreshContent()
		case key.Matches(msg, m.keymap.CopyNewText):
			if m.opts.Clipboard != nil {
				// Copy failures are not fatal to the viewer.
				_ = m.opts.Clipboard.Copy(m.newText())
			}
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height
		}
		m.refreshContent()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return m.viewport.View()
}

// refreshContent re-renders the rows into the viewport.
func (m *Model) refreshContent() {
	if !m.ready {
		return
	}
	expanded := make(map[int]bool, len(m.folds))
	if m.foldsExpanded {
		for _, f := range m.folds {
			expanded[f.Start] = true
		}
	}
	m.viewport.SetContent(renderRows(renderConfig{
		alignment:     m.alignment,
		styles:        m.styles,
		renderer:      m.renderer,
		width:         m.width,
		split:         m.opts.Split,
		showNumbers:   m.opts.ShowLineNumbers,
		highlights:    m.highlights,
		folds:         m.folds,
		expanded:      expanded,
		commentsByRow: m.commentsByRow,
	}))
}

// newText reconstructs the new-side text from the alignment rows.
func (m Model) newText() string {
	var sb strings.Builder
	for _, row := range m.alignment.Rows {
		if row.Right != nil {
			sb.WriteString(row.Right.Value)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Compile-time interface verification.
var _ lineview.Viewer = (*Viewer)(nil)

// Viewer implements lineview.Viewer using a Bubble Tea TUI.
type Viewer struct {
	theme lineview.Theme
	opts  Options
}

// NewViewer creates a new Viewer with the given theme and options.
func NewViewer(theme lineview.Theme, opts Options) *Viewer {
	return &Viewer{theme: theme, opts: opts}
}

// View displays the alignment and blocks until the user exits.
func (v *Viewer) View(_ context.Context, alignment *lineview.Alignment, comments []lineview.Comment) error {
	m := NewModel(alignment, comments, v.theme.Styles(), v.opts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}

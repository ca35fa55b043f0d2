package bubbletea_test

import (
	"bytes"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/fwojciec/lineview"
	"github.com/fwojciec/lineview/bubbletea"
	"github.com/fwojciec/lineview/lipgloss"
	"github.com/fwojciec/lineview/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Compile-time check that Viewer implements lineview.Viewer.
var _ lineview.Viewer = (*bubbletea.Viewer)(nil)

// sameRow builds an unchanged row with the same line number on both sides.
func sameRow(value string, num int) lineview.Row {
	return lineview.Row{
		Left:  &lineview.Side{Value: value, LineNumber: num, Kind: lineview.Same},
		Right: &lineview.Side{Value: value, LineNumber: num, Kind: lineview.Same},
	}
}

// modifiedAlignment returns a small alignment with one modified row.
func modifiedAlignment() *lineview.Alignment {
	return &lineview.Alignment{
		Rows: []lineview.Row{
			sameRow("alpha", 1),
			{
				Left:  &lineview.Side{Value: "foo", LineNumber: 2, Kind: lineview.Removed},
				Right: &lineview.Side{Value: "bar", LineNumber: 2, Kind: lineview.Added},
			},
			sameRow("omega", 3),
		},
		ChangedRows: []int{1},
	}
}

// foldableAlignment returns an alignment with one change followed by a
// long run of unchanged rows, enough to produce a fold.
func foldableAlignment() *lineview.Alignment {
	rows := []lineview.Row{
		{Right: &lineview.Side{Value: "added-head", LineNumber: 1, Kind: lineview.Added}},
	}
	for i := 0; i < 20; i++ {
		rows = append(rows, lineview.Row{
			Left:  &lineview.Side{Value: fmt.Sprintf("ctx-%d", i), LineNumber: i + 1, Kind: lineview.Same},
			Right: &lineview.Side{Value: fmt.Sprintf("ctx-%d", i), LineNumber: i + 2, Kind: lineview.Same},
		})
	}
	return &lineview.Alignment{Rows: rows, ChangedRows: []int{0}}
}

func defaultStyles() lineview.Styles {
	return lipgloss.DefaultTheme().Styles()
}

func TestModel_Init(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel(modifiedAlignment(), nil, defaultStyles(), bubbletea.Options{})
	cmd := m.Init()

	assert.Nil(t, cmd, "Init should return nil command")
}

func TestModel_ViewBeforeReady(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel(&lineview.Alignment{}, nil, defaultStyles(), bubbletea.Options{})

	view := m.View()

	assert.Contains(t, view, "Loading", "View should show loading state before WindowSizeMsg")
}

func TestModel_ShowsModifiedRow(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel(modifiedAlignment(), nil, defaultStyles(), bubbletea.Options{ShowLineNumbers: true})
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 24),
	)

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("-foo")) && bytes.Contains(out, []byte("+bar"))
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(0))
}

func TestModel_SplitLayoutShowsDivider(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel(modifiedAlignment(), nil, defaultStyles(), bubbletea.Options{Split: true})
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 24),
	)

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("│")) &&
			bytes.Contains(out, []byte("foo")) &&
			bytes.Contains(out, []byte("bar"))
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(0))
}

func TestModel_ToggleLayout(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel(modifiedAlignment(), nil, defaultStyles(), bubbletea.Options{})
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 24),
	)

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("-foo"))
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("│"))
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(0))
}

func TestModel_FoldsUnchangedBlock(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel(foldableAlignment(), nil, defaultStyles(), bubbletea.Options{})
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 24),
	)

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("unchanged lines"))
	})

	// Expanding the folds reveals the hidden rows.
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("ctx-10"))
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(0))
}

func TestModel_ShowsCommentOverlay(t *testing.T) {
	t.Parallel()

	comments := []lineview.Comment{
		{Line: "R-2", Author: "reviewer", Body: "is this rename intentional?"},
	}
	m := bubbletea.NewModel(modifiedAlignment(), comments, defaultStyles(), bubbletea.Options{})
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 24),
	)

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("reviewer: is this rename intentional?"))
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(0))
}

func TestModel_CopyNewText(t *testing.T) {
	t.Parallel()

	var copied string
	clip := &mock.Clipboard{
		CopyFn: func(content string) error {
			copied = content
			return nil
		},
	}
	m := bubbletea.NewModel(modifiedAlignment(), nil, defaultStyles(), bubbletea.Options{Clipboard: clip})

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	updated, _ = updated.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	_ = updated

	require.Equal(t, "alpha\nbar\nomega\n", copied)
}

func TestModel_QuitOnCtrlC(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel(&lineview.Alignment{}, nil, defaultStyles(), bubbletea.Options{})
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 24),
	)

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})

	tm.WaitFinished(t, teatest.WithFinalTimeout(0))
}

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fwojciec/lineview"
	"github.com/fwojciec/lineview/align"
	"github.com/fwojciec/lineview/bubbletea"
	"github.com/fwojciec/lineview/clipboard"
	"github.com/fwojciec/lineview/fs"
	"github.com/fwojciec/lineview/gemini"
	"github.com/fwojciec/lineview/git"
	"github.com/fwojciec/lineview/gitdiff"
	"github.com/fwojciec/lineview/jsonl"
	"github.com/fwojciec/lineview/lipgloss"
)

const usage = `Usage:
  lineview [flags] OLD NEW          compare two files
  lineview [flags] -git REV FILE    compare FILE at REV against the worktree
  lineview [flags] -patch DIFF FILE compare FILE before and after applying DIFF

Flags:
  -split        side-by-side layout instead of inline
  -no-numbers   hide the line number gutter
  -offset N     first line number (default 1)
  -fold N       context rows kept around changes when folding (default 3)
  -highlight L  comma-separated line ids to highlight, e.g. L-3,R-7
  -light        use the light theme
  -comments P   JSONL file to load and save comments from
  -review       generate review comments with Gemini (needs GEMINI_API_KEY)
`

// App encapsulates the application logic for testing.
type App struct {
	Source    lineview.Source
	Aligner   lineview.Aligner
	Viewer    lineview.Viewer
	Store     lineview.CommentStore
	Generator lineview.CommentGenerator

	CommentsPath string
	LineOffset   int
	Stderr       io.Writer
}

// Run loads the two texts, aligns them, gathers comments and displays the
// result.
func (a *App) Run(ctx context.Context) error {
	oldText, newText, err := a.Source.Load(ctx)
	if err != nil {
		return err
	}

	alignment, err := a.Aligner.Align(oldText, newText, a.LineOffset)
	if err != nil {
		return err
	}

	comments, err := a.loadComments(alignment)
	if err != nil {
		return err
	}

	if a.Generator != nil {
		generated, err := a.Generator.Generate(ctx, alignment)
		if err != nil {
			return fmt.Errorf("generating review comments: %w", err)
		}
		comments = append(comments, generated...)
		if a.Store != nil && a.CommentsPath != "" && len(generated) > 0 {
			if err := a.Store.Save(a.CommentsPath, comments); err != nil {
				return fmt.Errorf("saving comments: %w", err)
			}
		}
	}

	return a.Viewer.View(ctx, alignment, comments)
}

// loadComments reads stored comments and drops the ones whose anchors do
// not resolve, reporting each dropped comment on stderr.
func (a *App) loadComments(alignment *lineview.Alignment) ([]lineview.Comment, error) {
	if a.Store == nil || a.CommentsPath == "" {
		return nil, nil
	}

	comments, err := a.Store.Load(a.CommentsPath)
	if err != nil {
		return nil, fmt.Errorf("loading comments: %w", err)
	}

	errs := lineview.ValidateComments(alignment, comments)
	if len(errs) == 0 {
		return comments, nil
	}

	invalid := make(map[int]bool, len(errs))
	for _, e := range errs {
		invalid[e.Comment] = true
		fmt.Fprintf(a.Stderr, "warning: dropping comment: %s\n", e.Error())
	}

	valid := make([]lineview.Comment, 0, len(comments))
	for i, c := range comments {
		if !invalid[i] {
			valid = append(valid, c)
		}
	}
	return valid, nil
}

// splitHighlights parses the -highlight flag value into line ids.
func splitHighlights(s string) []string {
	if s == "" {
		return nil
	}
	var ids []string
	for _, id := range strings.Split(s, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func main() {
	split := flag.Bool("split", false, "side-by-side layout instead of inline")
	noNumbers := flag.Bool("no-numbers", false, "hide the line number gutter")
	offset := flag.Int("offset", 0, "first line number offset")
	foldMargin := flag.Int("fold", bubbletea.DefaultFoldMargin, "context rows kept around changes when folding")
	highlight := flag.String("highlight", "", "comma-separated line ids to highlight")
	light := flag.Bool("light", false, "use the light theme")
	commentsPath := flag.String("comments", "", "JSONL file to load and save comments from")
	review := flag.Bool("review", false, "generate review comments with Gemini")
	gitRev := flag.String("git", "", "revision to compare FILE against")
	patchPath := flag.String("patch", "", "unified diff to reconstruct FILE from")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	args := flag.Args()
	var source lineview.Source
	switch {
	case *gitRev != "" && len(args) == 1:
		source = git.NewSource(".", *gitRev, args[0])
	case *patchPath != "" && len(args) == 1:
		source = gitdiff.NewSource(*patchPath, args[0])
	case *gitRev == "" && *patchPath == "" && len(args) == 2:
		source = fs.NewSource(args[0], args[1])
	default:
		flag.Usage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	theme := lineview.Theme(lipgloss.DefaultTheme())
	if *light {
		theme = lipgloss.LightTheme()
	}

	app := &App{
		Source:  source,
		Aligner: align.New(),
		Viewer: bubbletea.NewViewer(theme, bubbletea.Options{
			Split:           *split,
			ShowLineNumbers: !*noNumbers,
			Highlights:      splitHighlights(*highlight),
			FoldMargin:      *foldMargin,
			Clipboard:       clipboard.NewPBCopy(),
		}),
		Store:        jsonl.NewStore(),
		CommentsPath: *commentsPath,
		LineOffset:   *offset,
		Stderr:       os.Stderr,
	}

	if *review {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(os.Stderr, "lineview: -review requires GEMINI_API_KEY")
			os.Exit(1)
		}
		client, err := gemini.NewClient(ctx, apiKey)
		if err != nil {
			fmt.Fprintln(os.Stderr, "lineview:", err)
			os.Exit(1)
		}
		app.Generator = gemini.NewReviewer(client, gemini.DefaultModel)
	}

	if err := app.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "lineview:", err)
		os.Exit(1)
	}
}

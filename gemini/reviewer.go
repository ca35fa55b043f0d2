// Package gemini generates review comments using Google Gemini.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/lineview"
)

// Compile-time interface verification.
var _ lineview.CommentGenerator = (*Reviewer)(nil)

// Author is the author name attached to generated comments.
const Author = "gemini"

// Reviewer implements lineview.CommentGenerator using Google Gemini.
type Reviewer struct {
	client GenerativeClient
	model  string
}

// NewReviewer creates a new Reviewer.
func NewReviewer(client GenerativeClient, model string) *Reviewer {
	return &Reviewer{client: client, model: model}
}

// reviewComment is the JSON shape Gemini is asked to produce.
type reviewComment struct {
	Line string `json:"line"`
	Body string `json:"body"`
}

// Generate produces review comments for the changed lines of an alignment.
// Comments whose anchors do not resolve to a line in the alignment are
// dropped.
func (r *Reviewer) Generate(ctx context.Context, alignment *lineview.Alignment) ([]lineview.Comment, error) {
	if len(alignment.ChangedRows) == 0 {
		return nil, nil
	}

	prompt := BuildPrompt(alignment)

	contents := []*Content{{
		Parts: []*Part{{Text: prompt}},
	}}

	resp, err := r.client.GenerateContent(ctx, r.model, contents, BuildConfig())
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, fmt.Errorf("gemini: returned nil response")
	}

	var raw []reviewComment
	if err := json.Unmarshal([]byte(resp.Text), &raw); err != nil {
		return nil, fmt.Errorf("gemini: failed to parse response: %w", err)
	}

	now := time.Now().UTC()
	var comments []lineview.Comment
	for _, rc := range raw {
		if _, ok := alignment.RowForLine(rc.Line); !ok {
			continue
		}
		comments = append(comments, lineview.Comment{
			Line:      rc.Line,
			Author:    Author,
			Body:      rc.Body,
			CreatedAt: now,
		})
	}

	return comments, nil
}

// BuildPrompt creates the user prompt for the Gemini API. Each changed line
// is tagged with its line id so the model can anchor comments to it.
func BuildPrompt(alignment *lineview.Alignment) string {
	var sb strings.Builder
	sb.WriteString("You are reviewing a change between two versions of a file.\n\n")
	sb.WriteString("## Changed lines\n\n")

	for _, i := range alignment.ChangedRows {
		row := alignment.Rows[i]
		if row.Left != nil && row.Left.Kind == lineview.Removed {
			fmt.Fprintf(&sb, "[%s] - %s\n", lineview.LineID(row.Left.Kind, row.Left.LineNumber), row.Left.Value)
		}
		if row.Right != nil && row.Right.Kind == lineview.Added {
			fmt.Fprintf(&sb, "[%s] + %s\n", lineview.LineID(row.Right.Kind, row.Right.LineNumber), row.Right.Value)
		}
	}

	sb.WriteString("\n## Task\n\n")
	sb.WriteString("Write short review comments for the lines that deserve one. ")
	sb.WriteString("Anchor each comment to a line using the bracketed id shown before it.\n\n")
	sb.WriteString("Respond with a JSON array matching this schema:\n")
	sb.WriteString(`[{"line": "R-12", "body": "One or two sentences of feedback"}]
`)

	return sb.String()
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *GenerateContentConfig {
	temp := float32(0.4)
	return &GenerateContentConfig{
		SystemInstruction: &Content{
			Parts: []*Part{{
				Text: `You are a code reviewer. You receive the changed lines of a file, each tagged with a line id, and produce concise, actionable review comments anchored to those ids.

Comment only where you have something useful to say. Keep each comment to one or two sentences.`,
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
}

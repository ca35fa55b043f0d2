package gemini_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/lineview"
	"github.com/fwojciec/lineview/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Compile-time check that Reviewer implements lineview.CommentGenerator.
var _ lineview.CommentGenerator = (*gemini.Reviewer)(nil)

// modifiedAlignment is a three-row alignment with one modified row in the
// middle: "foo" became "bar" on line 2.
func modifiedAlignment() *lineview.Alignment {
	return &lineview.Alignment{
		Rows: []lineview.Row{
			{
				Left:  &lineview.Side{Value: "alpha", LineNumber: 1, Kind: lineview.Same},
				Right: &lineview.Side{Value: "alpha", LineNumber: 1, Kind: lineview.Same},
			},
			{
				Left:  &lineview.Side{Value: "foo", LineNumber: 2, Kind: lineview.Removed},
				Right: &lineview.Side{Value: "bar", LineNumber: 2, Kind: lineview.Added},
			},
			{
				Left:  &lineview.Side{Value: "omega", LineNumber: 3, Kind: lineview.Same},
				Right: &lineview.Side{Value: "omega", LineNumber: 3, Kind: lineview.Same},
			},
		},
		ChangedRows: []int{1},
	}
}

func TestReviewer_Generate(t *testing.T) {
	t.Parallel()

	client := &gemini.MockGenerativeClient{
		GenerateContentFn: func(ctx context.Context, model string, contents []*gemini.Content, config *gemini.GenerateContentConfig) (*gemini.GenerateContentResponse, error) {
			assert.Equal(t, gemini.DefaultModel, model)
			require.Len(t, contents, 1)
			prompt := contents[0].Parts[0].Text
			assert.Contains(t, prompt, "[L-2] - foo")
			assert.Contains(t, prompt, "[R-2] + bar")
			assert.NotContains(t, prompt, "alpha")
			assert.Equal(t, "application/json", config.ResponseMIMEType)
			return &gemini.GenerateContentResponse{
				Text: `[{"line": "R-2", "body": "Consider a more descriptive name."}]`,
			}, nil
		},
	}

	comments, err := gemini.NewReviewer(client, gemini.DefaultModel).Generate(context.Background(), modifiedAlignment())

	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "R-2", comments[0].Line)
	assert.Equal(t, gemini.Author, comments[0].Author)
	assert.Equal(t, "Consider a more descriptive name.", comments[0].Body)
	assert.False(t, comments[0].CreatedAt.IsZero())
}

func TestReviewer_Generate_DropsUnresolvableAnchors(t *testing.T) {
	t.Parallel()

	client := &gemini.MockGenerativeClient{
		GenerateContentFn: func(ctx context.Context, model string, contents []*gemini.Content, config *gemini.GenerateContentConfig) (*gemini.GenerateContentResponse, error) {
			return &gemini.GenerateContentResponse{
				Text: `[{"line": "R-99", "body": "nope"}, {"line": "L-2", "body": "keep"}]`,
			}, nil
		},
	}

	comments, err := gemini.NewReviewer(client, gemini.DefaultModel).Generate(context.Background(), modifiedAlignment())

	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "L-2", comments[0].Line)
}

func TestReviewer_Generate_NoChanges(t *testing.T) {
	t.Parallel()

	called := false
	client := &gemini.MockGenerativeClient{
		GenerateContentFn: func(ctx context.Context, model string, contents []*gemini.Content, config *gemini.GenerateContentConfig) (*gemini.GenerateContentResponse, error) {
			called = true
			return nil, nil
		},
	}

	alignment := &lineview.Alignment{
		Rows: []lineview.Row{{
			Left:  &lineview.Side{Value: "same", LineNumber: 1, Kind: lineview.Same},
			Right: &lineview.Side{Value: "same", LineNumber: 1, Kind: lineview.Same},
		}},
	}

	comments, err := gemini.NewReviewer(client, gemini.DefaultModel).Generate(context.Background(), alignment)

	require.NoError(t, err)
	assert.Nil(t, comments)
	assert.False(t, called)
}

func TestReviewer_Generate_ClientError(t *testing.T) {
	t.Parallel()

	client := &gemini.MockGenerativeClient{
		GenerateContentFn: func(ctx context.Context, model string, contents []*gemini.Content, config *gemini.GenerateContentConfig) (*gemini.GenerateContentResponse, error) {
			return nil, errors.New("boom")
		},
	}

	_, err := gemini.NewReviewer(client, gemini.DefaultModel).Generate(context.Background(), modifiedAlignment())

	require.Error(t, err)
}

func TestReviewer_Generate_MalformedResponse(t *testing.T) {
	t.Parallel()

	client := &gemini.MockGenerativeClient{
		GenerateContentFn: func(ctx context.Context, model string, contents []*gemini.Content, config *gemini.GenerateContentConfig) (*gemini.GenerateContentResponse, error) {
			return &gemini.GenerateContentResponse{Text: "not json"}, nil
		},
	}

	_, err := gemini.NewReviewer(client, gemini.DefaultModel).Generate(context.Background(), modifiedAlignment())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse response")
}

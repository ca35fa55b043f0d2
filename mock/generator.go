package mock

import (
	"context"

	"github.com/fwojciec/lineview"
)

// Compile-time interface verification.
var _ lineview.CommentGenerator = (*CommentGenerator)(nil)

// CommentGenerator is a mock implementation of lineview.CommentGenerator.
type CommentGenerator struct {
	GenerateFn func(ctx context.Context, alignment *lineview.Alignment) ([]lineview.Comment, error)
}

func (g *CommentGenerator) Generate(ctx context.Context, alignment *lineview.Alignment) ([]lineview.Comment, error) {
	return g.GenerateFn(ctx, alignment)
}

package mock

import (
	"context"

	"github.com/fwojciec/lineview"
)

// Compile-time interface verification.
var _ lineview.Viewer = (*Viewer)(nil)

// Viewer is a mock implementation of lineview.Viewer.
type Viewer struct {
	ViewFn func(ctx context.Context, alignment *lineview.Alignment, comments []lineview.Comment) error
}

func (v *Viewer) View(ctx context.Context, alignment *lineview.Alignment, comments []lineview.Comment) error {
	return v.ViewFn(ctx, alignment, comments)
}

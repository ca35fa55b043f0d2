package mock

import (
	"context"

	"github.com/fwojciec/lineview"
)

// Compile-time interface verification.
var _ lineview.Source = (*Source)(nil)

// Source is a mock implementation of lineview.Source.
type Source struct {
	LoadFn func(ctx context.Context) (oldText, newText string, err error)
}

func (s *Source) Load(ctx context.Context) (string, string, error) {
	return s.LoadFn(ctx)
}

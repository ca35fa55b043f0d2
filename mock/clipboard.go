package mock

import (
	"github.com/fwojciec/lineview"
)

// Compile-time interface verification.
var _ lineview.Clipboard = (*Clipboard)(nil)

// Clipboard is a mock implementation of lineview.Clipboard.
type Clipboard struct {
	CopyFn func(content string) error
}

func (c *Clipboard) Copy(content string) error {
	return c.CopyFn(content)
}

// Package mock provides hand-written mocks for the lineview interfaces.
package mock

import (
	"github.com/fwojciec/lineview"
)

// Compile-time interface verification.
var _ lineview.Aligner = (*Aligner)(nil)

// Aligner is a mock implementation of lineview.Aligner.
type Aligner struct {
	AlignFn func(oldText, newText string, lineOffset int) (*lineview.Alignment, error)
}

func (a *Aligner) Align(oldText, newText string, lineOffset int) (*lineview.Alignment, error) {
	return a.AlignFn(oldText, newText, lineOffset)
}

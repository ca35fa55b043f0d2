package mock

import (
	"github.com/fwojciec/lineview"
)

// Compile-time interface verification.
var _ lineview.CommentStore = (*CommentStore)(nil)

// CommentStore is a mock implementation of lineview.CommentStore.
type CommentStore struct {
	LoadFn func(path string) ([]lineview.Comment, error)
	SaveFn func(path string, comments []lineview.Comment) error
}

func (s *CommentStore) Load(path string) ([]lineview.Comment, error) {
	return s.LoadFn(path)
}

func (s *CommentStore) Save(path string, comments []lineview.Comment) error {
	return s.SaveFn(path, comments)
}

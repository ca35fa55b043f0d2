package jsonl_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/lineview"
	"github.com/fwojciec/lineview/jsonl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Compile-time check that Store implements lineview.CommentStore.
var _ lineview.CommentStore = (*jsonl.Store)(nil)

func TestStore_SaveAndLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "comments.jsonl")
	comments := []lineview.Comment{
		{Line: "R-3", Author: "alice", Body: "rename this", CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
		{Line: "L-7", Author: "bob", Body: "dead code?", CreatedAt: time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)},
	}

	store := jsonl.NewStore()
	require.NoError(t, store.Save(path, comments))

	loaded, err := store.Load(path)
	require.NoError(t, err)
	assert.Equal(t, comments, loaded)
}

func TestStore_Load_MissingFile(t *testing.T) {
	t.Parallel()

	loaded, err := jsonl.NewStore().Load(filepath.Join(t.TempDir(), "missing.jsonl"))

	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestStore_Load_SkipsBlankLines(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "comments.jsonl")
	content := `{"line":"R-1","author":"alice","body":"first"}

{"line":"R-2","author":"alice","body":"second"}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	loaded, err := jsonl.NewStore().Load(path)

	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "first", loaded[0].Body)
	assert.Equal(t, "second", loaded[1].Body)
}

func TestStore_Load_InvalidJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "comments.jsonl")
	content := `{"line":"R-1","author":"alice","body":"ok"}
not json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := jsonl.NewStore().Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

package memory

import (
	"context"
	"io"
	"strings"
	"testing"

	"animal-rescue/internal/ports/blob"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_PutGet(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	info, err := s.Put(ctx, "reports/a.jpg", strings.NewReader("jpeg-bytes"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, int64(10), info.Size)

	got, rc, err := s.Get(ctx, "reports/a.jpg")
	require.NoError(t, err)
	defer rc.Close()

	body, _ := io.ReadAll(rc)
	assert.Equal(t, "jpeg-bytes", string(body))
	assert.Equal(t, "image/jpeg", got.ContentType)
}

func TestStore_CreateOnlyAndNotFound(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	_, err := s.Put(ctx, "k", strings.NewReader("1"), "")
	require.NoError(t, err)
	_, err = s.Put(ctx, "k", strings.NewReader("2"), "")
	assert.Error(t, err)

	_, _, err = s.Get(ctx, "missing")
	assert.ErrorIs(t, err, blob.ErrNotFound)
}

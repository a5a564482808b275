package storage

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalBackendRoundTrip(t *testing.T) {
	b := NewLocalBackend(t.TempDir(), "http://localhost:8080/photos/")
	ctx := context.Background()

	content := []byte("fake jpeg bytes")
	key := "relations/user-1/1700000000000.jpg"

	require.NoError(t, b.Upload(ctx, key, bytes.NewReader(content), int64(len(content))))

	exists, err := b.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, exists)

	r, size, err := b.Download(ctx, key)
	require.NoError(t, err)
	defer r.Close()
	assert.Equal(t, int64(len(content)), size)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	require.NoError(t, b.Delete(ctx, key))
	exists, err = b.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalBackendRejectsTraversal(t *testing.T) {
	b := NewLocalBackend(t.TempDir(), "http://localhost:8080/photos")
	ctx := context.Background()

	err := b.Upload(ctx, "../escape.jpg", bytes.NewReader([]byte("x")), 1)
	assert.Error(t, err)

	_, _, err = b.Download(ctx, "relations/../../etc/passwd")
	assert.Error(t, err)
}

func TestLocalBackendPublicURL(t *testing.T) {
	b := NewLocalBackend(t.TempDir(), "http://localhost:8080/photos/")
	assert.Equal(t,
		"http://localhost:8080/photos/memories/rel-1/1.jpg",
		b.PublicURL("memories/rel-1/1.jpg"))
}

func TestLocalBackendOverwrite(t *testing.T) {
	b := NewLocalBackend(t.TempDir(), "http://localhost:8080/photos")
	ctx := context.Background()
	key := "profilePhotos/profile_user-1.jpg"

	require.NoError(t, b.Upload(ctx, key, bytes.NewReader([]byte("old")), 3))
	require.NoError(t, b.Upload(ctx, key, bytes.NewReader([]byte("new!")), 4))

	r, size, err := b.Download(ctx, key)
	require.NoError(t, err)
	defer r.Close()
	assert.Equal(t, int64(4), size)
}

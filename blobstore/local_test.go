package blobstore

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore(t *testing.T) {
	tmpDir := t.TempDir()
	data := []byte("Jerusalem\n31.77-35.21\n")
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "data.txt"), data, 0o644))

	store := NewLocalStore(tmpDir)
	ctx := context.Background()

	t.Run("ReadAt", func(t *testing.T) {
		blob, err := store.Open(ctx, "data.txt")
		require.NoError(t, err)
		defer blob.Close()

		require.Equal(t, int64(len(data)), blob.Size())

		buf := make([]byte, 5)
		n, err := blob.ReadAt(ctx, buf, 10)
		require.NoError(t, err)
		assert.Equal(t, 5, n)
		assert.Equal(t, "31.77", string(buf))

		_, err = blob.ReadAt(ctx, buf, blob.Size())
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("ReadRange", func(t *testing.T) {
		blob, err := store.Open(ctx, "data.txt")
		require.NoError(t, err)
		defer blob.Close()

		rc, err := blob.ReadRange(ctx, 0, 9)
		require.NoError(t, err)
		got, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "Jerusalem", string(got))

		rc, err = NewReader(ctx, blob)
		require.NoError(t, err)
		got, err = io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, data, got)
	})

	t.Run("AbsolutePath", func(t *testing.T) {
		other := NewLocalStore(t.TempDir())
		blob, err := other.Open(ctx, filepath.Join(tmpDir, "data.txt"))
		require.NoError(t, err)
		assert.Equal(t, int64(len(data)), blob.Size())
		require.NoError(t, blob.Close())
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := store.Open(ctx, "missing.txt")
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("Directory", func(t *testing.T) {
		require.NoError(t, os.Mkdir(filepath.Join(tmpDir, "dir"), 0o755))
		_, err := store.Open(ctx, "dir")
		assert.Error(t, err)
	})

	t.Run("Canceled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := store.Open(cctx, "data.txt")
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("DefaultRoot", func(t *testing.T) {
		assert.Equal(t, ".", NewLocalStore("").Root())
	})
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	src := []byte("Eilat\n29.55-34.95\n")
	store.Put("south/data.txt", src)
	store.Put("north/data.txt", []byte("Metula\n33.28-35.58\n"))
	src[0] = 'X' // Put must copy

	assert.Equal(t, []string{"north/data.txt", "south/data.txt"}, store.List(""))
	assert.Equal(t, []string{"south/data.txt"}, store.List("south/"))

	blob, err := store.Open(ctx, "south/data.txt")
	require.NoError(t, err)
	defer blob.Close()

	rc, err := NewReader(ctx, blob)
	require.NoError(t, err)
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "Eilat\n29.55-34.95\n", string(got))

	buf := make([]byte, 64)
	n, err := blob.ReadAt(ctx, buf, 6)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "29.55-34.95\n", string(buf[:n]))

	rc, err = blob.ReadRange(ctx, 100, 5)
	require.NoError(t, err)
	got, err = io.ReadAll(rc)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = store.Open(ctx, "east/data.txt")
	assert.ErrorIs(t, err, ErrNotFound)
}

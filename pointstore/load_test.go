package pointstore

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hupe1980/citysearch/blobstore"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const citiesTxt = "Tel Aviv\n32.08-34.78\nHaifa\n32.79-34.99\n"

func TestLoad(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	store.Put("data.txt", []byte(citiesTxt))

	reg, err := Load(ctx, store, "data.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"Haifa", "Tel Aviv"}, reg.Names())
}

func TestLoad_Compressed(t *testing.T) {
	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = enc.Write([]byte(citiesTxt))
	require.NoError(t, err)
	require.NoError(t, enc.Close())

	store := blobstore.NewMemoryStore()
	store.Put("data.txt.zst", buf.Bytes())

	reg, err := Load(context.Background(), store, "data.txt.zst")
	require.NoError(t, err)
	assert.Equal(t, 2, reg.Len())
}

func TestLoad_SourceUnavailable(t *testing.T) {
	_, err := Load(context.Background(), blobstore.NewMemoryStore(), "data.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceUnavailable)
	assert.ErrorIs(t, err, blobstore.ErrNotFound)

	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "data.txt", le.Source)
	assert.Contains(t, err.Error(), "failed to read data.txt")
}

func TestLoad_MalformedCarriesSource(t *testing.T) {
	store := blobstore.NewMemoryStore()
	store.Put("bad.txt", []byte("A\n1-1\nOrphan\n"))

	_, err := Load(context.Background(), store, "bad.txt")
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, MalformedRecord, le.Kind)
	assert.Equal(t, "bad.txt", le.Source)
	assert.Equal(t, "Orphan", le.City)
}

func TestLoad_Canceled(t *testing.T) {
	store := blobstore.NewMemoryStore()
	store.Put("data.txt", []byte(citiesTxt))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, store, "data.txt")
	assert.ErrorIs(t, err, ErrSourceUnavailable)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(path, []byte(citiesTxt), 0o644))

	reg, err := LoadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 2, reg.Len())

	_, err = LoadFile(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}

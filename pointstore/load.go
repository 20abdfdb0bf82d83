package pointstore

import (
	"context"

	"github.com/hupe1980/citysearch/blobstore"
	"github.com/hupe1980/citysearch/internal/compress"
)

// Load opens name in store, decompresses it if needed and parses it.
// The blob is closed before Load returns.
func Load(ctx context.Context, store blobstore.BlobStore, name string) (reg *Registry, err error) {
	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, &LoadError{Kind: SourceUnavailable, Source: name, cause: err}
	}
	defer func() {
		if cerr := blob.Close(); cerr != nil && err == nil {
			reg, err = nil, &LoadError{Kind: SourceUnavailable, Source: name, cause: cerr}
		}
	}()

	rc, err := blobstore.NewReader(ctx, blob)
	if err != nil {
		return nil, &LoadError{Kind: SourceUnavailable, Source: name, cause: err}
	}
	defer rc.Close()

	dec, err := compress.NewReader(name, rc)
	if err != nil {
		return nil, &LoadError{Kind: SourceUnavailable, Source: name, cause: err}
	}
	defer dec.Close()

	return parse(ctx, name, dec)
}

// LoadFile loads a local file. Relative paths resolve against the working directory.
func LoadFile(ctx context.Context, path string) (*Registry, error) {
	return Load(ctx, blobstore.NewLocalStore("."), path)
}

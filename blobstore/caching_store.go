package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/singleflight"
)

// CachingStore wraps a BlobStore and mirrors every opened blob into a local
// directory. Later opens of the same name are served from disk until the
// copy is older than the configured max age.
type CachingStore struct {
	inner  BlobStore
	local  *LocalStore
	dir    string
	maxAge time.Duration
	group  singleflight.Group
	now    func() time.Time
}

// NewCachingStore creates a new CachingStore caching into dir.
// maxAge <= 0 keeps cached copies forever.
func NewCachingStore(inner BlobStore, dir string, maxAge time.Duration) (*CachingStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("blobstore: cache dir: %w", err)
	}
	return &CachingStore{
		inner:  inner,
		local:  NewLocalStore(dir),
		dir:    dir,
		maxAge: maxAge,
		now:    time.Now,
	}, nil
}

// Dir returns the cache directory.
func (s *CachingStore) Dir() string {
	return s.dir
}

func (s *CachingStore) cacheName(name string) string {
	return url.PathEscape(name)
}

// Open returns the cached copy of name, fetching it from the inner store on
// a miss. Concurrent misses for one name share a single fetch.
func (s *CachingStore) Open(ctx context.Context, name string) (Blob, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cached := s.cacheName(name)
	if s.fresh(cached) {
		return s.local.Open(ctx, cached)
	}

	_, err, _ := s.group.Do(cached, func() (any, error) {
		return nil, s.fetch(ctx, name, cached)
	})
	if err != nil {
		return nil, err
	}
	return s.local.Open(ctx, cached)
}

// Invalidate drops the cached copy of name, if any.
func (s *CachingStore) Invalidate(name string) error {
	err := os.Remove(filepath.Join(s.dir, s.cacheName(name)))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (s *CachingStore) fresh(cached string) bool {
	info, err := os.Stat(filepath.Join(s.dir, cached))
	if err != nil || info.IsDir() {
		return false
	}
	if s.maxAge <= 0 {
		return true
	}
	return s.now().Sub(info.ModTime()) < s.maxAge
}

func (s *CachingStore) fetch(ctx context.Context, name, cached string) (err error) {
	b, err := s.inner.Open(ctx, name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := b.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	rc, err := NewReader(ctx, b)
	if err != nil {
		return err
	}
	defer rc.Close()

	tmp, err := os.CreateTemp(s.dir, ".fetch-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = io.Copy(tmp, rc); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}

	// Rename is atomic, readers never see a partial copy.
	return os.Rename(tmpName, filepath.Join(s.dir, cached))
}

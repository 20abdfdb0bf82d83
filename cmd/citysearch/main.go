// Command citysearch loads a list of named points and answers interactive
// radius queries around a selected city.
//
// Usage:
//
//	citysearch [-data data.txt] [-env .env] [-refresh]
//
// The data source, storage backend and logging are configured through the
// environment (see internal/config); -data overrides CITYSEARCH_DATA.
// -refresh drops the cached copy of a remote source before loading.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/hupe1980/citysearch"
	"github.com/hupe1980/citysearch/blobstore"
	"github.com/hupe1980/citysearch/blobstore/minio"
	"github.com/hupe1980/citysearch/blobstore/s3"
	"github.com/hupe1980/citysearch/internal/config"
	"github.com/hupe1980/citysearch/session"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("citysearch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	dataFlag := fs.String("data", "", "data source name (overrides CITYSEARCH_DATA)")
	envFlag := fs.String("env", ".env", "path of an optional .env file")
	refreshFlag := fs.Bool("refresh", false, "refetch a cached remote source")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*envFlag)
	if err != nil {
		printError(stderr, err)
		return 1
	}
	if *dataFlag != "" {
		cfg.Data = *dataFlag
	}
	if err := cfg.Validate(); err != nil {
		printError(stderr, err)
		return 1
	}

	logger := newLogger(cfg, stderr)

	store, err := openStore(ctx, cfg)
	if err != nil {
		printError(stderr, err)
		return 1
	}

	if err := prepareCache(ctx, store, cfg.Data, *refreshFlag, logger); err != nil {
		printError(stderr, err)
		return 1
	}

	atlas, err := citysearch.Open(ctx, cfg.Data,
		citysearch.WithBlobStore(store),
		citysearch.WithLogger(logger.WithBackend(cfg.Source)),
	)
	if err != nil {
		// A data file that cannot be loaded ends the program normally.
		printError(stderr, err)
		return 0
	}

	if err := session.New(atlas, stdin, stdout, stderr).Run(ctx); err != nil {
		logger.DebugContext(ctx, "session ended", "error", err)
		if ctx.Err() == nil {
			printError(stderr, err)
			return 1
		}
	}
	return 0
}

func openStore(ctx context.Context, cfg *config.Config) (blobstore.BlobStore, error) {
	if !cfg.Remote() {
		return blobstore.NewLocalStore(cfg.Root), nil
	}

	var (
		store blobstore.BlobStore
		err   error
	)
	if cfg.Source == config.SourceMinIO {
		store, err = minio.Dial(cfg.Endpoint, cfg.AccessKey, cfg.SecretKey, cfg.Secure, cfg.Bucket, cfg.Prefix)
	} else {
		store, err = s3.New(ctx, cfg.Bucket, s3.WithPrefix(cfg.Prefix))
	}
	if err != nil {
		return nil, err
	}

	if cfg.CacheDir != "" {
		return blobstore.NewCachingStore(store, cfg.CacheDir, cfg.CacheTTL)
	}
	return store, nil
}

// prepareCache reports the cache location and drops the cached copy of name
// when refresh is set. Stores without a cache are left alone.
func prepareCache(ctx context.Context, store blobstore.BlobStore, name string, refresh bool, logger *citysearch.Logger) error {
	cache, ok := store.(*blobstore.CachingStore)
	if !ok {
		return nil
	}
	logger.DebugContext(ctx, "source cache", "dir", cache.Dir(), "refresh", refresh)
	if !refresh {
		return nil
	}
	return cache.Invalidate(name)
}

func newLogger(cfg *config.Config, w io.Writer) *citysearch.Logger {
	if cfg.LogFormat == "json" {
		return citysearch.NewJSONLogger(w, cfg.LogLevel)
	}
	return citysearch.NewTextLogger(w, cfg.LogLevel)
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s%v\n", session.ErrorPrefix, err)
}

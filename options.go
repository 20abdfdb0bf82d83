package citysearch

import (
	"github.com/hupe1980/citysearch/blobstore"
)

type options struct {
	store   blobstore.BlobStore
	logger  *Logger
	metrics MetricsCollector
}

// Option configures Open and New.
type Option func(*options)

// WithBlobStore sets the store the data source is read from.
//
// If nil is passed, a local store rooted at the working directory is used.
func WithBlobStore(store blobstore.BlobStore) Option {
	return func(o *options) {
		if store == nil {
			store = blobstore.NewLocalStore(".")
		}
		o.store = store
	}
}

// WithLogger sets the logger.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the collector notified on load and search.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

func applyOptions(optFns []Option) options {
	opts := options{
		store:   blobstore.NewLocalStore("."),
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return opts
}

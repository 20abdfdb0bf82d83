package citysearch

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/citysearch/distance"
	"github.com/hupe1980/citysearch/model"
	"github.com/hupe1980/citysearch/pointstore"
	"github.com/hupe1980/citysearch/searcher"
)

// Result is the outcome of a search.
type Result = searcher.Result

// Atlas is a loaded, read-only set of cities.
// Atlas is safe for concurrent use.
type Atlas struct {
	reg      *pointstore.Registry
	searcher *searcher.Searcher
	logger   *Logger
	metrics  MetricsCollector
	source   string
}

// Open loads the named source and builds its coordinate indexes.
//
// Load failures are *pointstore.LoadError values.
func Open(ctx context.Context, name string, optFns ...Option) (*Atlas, error) {
	opts := applyOptions(optFns)

	start := time.Now()
	reg, err := pointstore.Load(ctx, opts.store, name)
	if err != nil {
		opts.metrics.RecordLoad(0, time.Since(start), err)
		opts.logger.LogLoad(ctx, name, 0, 0, err)
		return nil, translateError(err)
	}
	opts.metrics.RecordLoad(reg.Len(), time.Since(start), nil)
	opts.logger.LogLoad(ctx, name, reg.Len(), reg.Duplicates(), nil)
	if reg.Len() > 0 {
		opts.logger.LogIndex(ctx, name, reg.XIndex().Stats(), reg.YIndex().Stats())
	}

	a := New(reg, optFns...)
	a.source = name
	return a, nil
}

// New wraps an already built registry.
func New(reg *pointstore.Registry, optFns ...Option) *Atlas {
	opts := applyOptions(optFns)
	return &Atlas{
		reg:      reg,
		searcher: searcher.New(reg),
		logger:   opts.logger,
		metrics:  opts.metrics,
	}
}

// Source returns the name the atlas was loaded from, or "" for New.
func (a *Atlas) Source() string {
	return a.source
}

// Len returns the number of cities.
func (a *Atlas) Len() int {
	return a.reg.Len()
}

// Registry returns the underlying registry.
func (a *Atlas) Registry() *pointstore.Registry {
	return a.reg
}

// Lookup returns the named city or ErrCityNotFound.
func (a *Atlas) Lookup(name string) (model.City, error) {
	p, ok := a.reg.Lookup(name)
	if !ok {
		return model.City{}, fmt.Errorf("%w: %q", ErrCityNotFound, name)
	}
	return model.City{Name: name, Point: p}, nil
}

// Search returns the cities within radius of the named city under metric,
// and the cities strictly north of it.
func (a *Atlas) Search(ctx context.Context, name string, radius float64, metric distance.Metric) (*Result, error) {
	start := time.Now()
	logger := a.logger.WithCity(name)

	city, err := a.Lookup(name)
	if err != nil {
		a.metrics.RecordSearch(metric, 0, time.Since(start), err)
		logger.LogSearch(ctx, radius, metric.String(), 0, 0, 0, err)
		return nil, err
	}

	res, err := a.SearchPoint(ctx, searcher.Query{
		Center: city.Point,
		Radius: radius,
		Metric: metric,
	})
	if err != nil {
		a.metrics.RecordSearch(metric, 0, time.Since(start), err)
		logger.LogSearch(ctx, radius, metric.String(), 0, 0, 0, err)
		return nil, err
	}

	a.metrics.RecordSearch(metric, len(res.Matches), time.Since(start), nil)
	logger.LogSearch(ctx, radius, metric.String(), len(res.Matches), len(res.North), res.Candidates, nil)
	return res, nil
}

// SearchPoint runs a query around an arbitrary point.
func (a *Atlas) SearchPoint(ctx context.Context, q searcher.Query) (*Result, error) {
	res, err := a.searcher.Search(ctx, q)
	return res, translateError(err)
}

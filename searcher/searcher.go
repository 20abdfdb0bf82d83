package searcher

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/hupe1980/citysearch/distance"
	"github.com/hupe1980/citysearch/internal/coordindex"
	"github.com/hupe1980/citysearch/model"
	"github.com/hupe1980/citysearch/pointstore"
)

// ErrInvalidRadius is returned for a NaN radius.
var ErrInvalidRadius = errors.New("radius must be a number")

// Query describes a radius search around Center.
type Query struct {
	Center model.Point
	Radius float64
	Metric distance.Metric
}

// Result holds the outcome of a Search.
type Result struct {
	// Matches are the cities within Radius of the center under Metric.
	Matches []string
	// North are the cities with a strictly greater y than the center.
	North []string

	Radius float64
	Metric distance.Metric

	// Candidates is the size of the bounding-box candidate set.
	Candidates int
}

// Searcher runs queries against an immutable Registry.
// Searcher is safe for concurrent use.
type Searcher struct {
	reg *pointstore.Registry
}

// New creates a Searcher over reg.
func New(reg *pointstore.Registry) *Searcher {
	return &Searcher{reg: reg}
}

// Registry returns the underlying registry.
func (s *Searcher) Registry() *pointstore.Registry {
	return s.reg
}

// XRange returns the rows with x in [c.X-r, c.X+r].
func (s *Searcher) XRange(c model.Point, r float64) *coordindex.Bitmap {
	return s.reg.XIndex().Range(c.X-r, c.X+r)
}

// YRange returns the rows with y in [c.Y-r, c.Y+r].
func (s *Searcher) YRange(c model.Point, r float64) *coordindex.Bitmap {
	return s.reg.YIndex().Range(c.Y-r, c.Y+r)
}

// North returns the rows with y strictly greater than c.Y.
func (s *Searcher) North(c model.Point) *coordindex.Bitmap {
	return s.reg.YIndex().Above(c.Y)
}

// BoundingBox returns XRange ∩ YRange.
func (s *Searcher) BoundingBox(c model.Point, r float64) *coordindex.Bitmap {
	box := s.XRange(c, r)
	box.And(s.YRange(c, r))
	return box
}

// Match returns the rows inside the bounding box whose exact distance to c
// under m is at most r.
func (s *Searcher) Match(c model.Point, r float64, m distance.Metric) (*coordindex.Bitmap, error) {
	matches, _, err := s.match(c, r, m)
	return matches, err
}

func (s *Searcher) match(c model.Point, r float64, m distance.Metric) (*coordindex.Bitmap, int, error) {
	fn, err := distance.Provider(m)
	if err != nil {
		return nil, 0, err
	}
	if math.IsNaN(r) {
		return nil, 0, ErrInvalidRadius
	}

	box := s.BoundingBox(c, r)
	matches := coordindex.NewBitmap()
	if box.IsEmpty() {
		return matches, 0, nil
	}
	for row := range box.Iterator() {
		if fn(c, s.reg.Point(row)) <= r {
			matches.Add(row)
		}
	}
	return matches, box.Cardinality(), nil
}

// XRangeCities returns the names with x in [c.X-r, c.X+r].
func (s *Searcher) XRangeCities(c model.Point, r float64) []string {
	return s.reg.NamesOf(s.XRange(c, r))
}

// YRangeCities returns the names with y in [c.Y-r, c.Y+r].
func (s *Searcher) YRangeCities(c model.Point, r float64) []string {
	return s.reg.NamesOf(s.YRange(c, r))
}

// NorthCities returns the names strictly north of c.
func (s *Searcher) NorthCities(c model.Point) []string {
	return s.reg.NamesOf(s.North(c))
}

// MatchingCities returns the names within r of c under m.
func (s *Searcher) MatchingCities(c model.Point, r float64, m distance.Metric) ([]string, error) {
	matches, err := s.Match(c, r, m)
	if err != nil {
		return nil, err
	}
	return s.reg.NamesOf(matches), nil
}

// Search runs the radius query and the north query for q.
func (s *Searcher) Search(ctx context.Context, q Query) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	matches, candidates, err := s.match(q.Center, q.Radius, q.Metric)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	return &Result{
		Matches:    s.reg.NamesOf(matches),
		North:      s.NorthCities(q.Center),
		Radius:     q.Radius,
		Metric:     q.Metric,
		Candidates: candidates,
	}, nil
}

package searcher

import (
	"context"
	"math"
	"testing"

	"github.com/hupe1980/citysearch/distance"
	"github.com/hupe1980/citysearch/model"
	"github.com/hupe1980/citysearch/pointstore"
	"github.com/hupe1980/citysearch/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func abc() *pointstore.Registry {
	return pointstore.FromCities(
		model.City{Name: "A", Point: model.Pt(0, 0)},
		model.City{Name: "B", Point: model.Pt(1, 0)},
		model.City{Name: "C", Point: model.Pt(0, 5)},
	)
}

func TestSearch(t *testing.T) {
	s := New(abc())

	res, err := s.Search(context.Background(), Query{Center: model.Pt(0, 0), Radius: 1, Metric: distance.MetricL2})
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, res.Matches)
	assert.Equal(t, []string{"C"}, res.North)
	assert.Equal(t, 1.0, res.Radius)
	assert.Equal(t, distance.MetricL2, res.Metric)
	assert.Equal(t, 2, res.Candidates)
}

func TestCandidatesCountBoundingBox(t *testing.T) {
	s := New(pointstore.FromCities(
		model.City{Name: "origin", Point: model.Pt(0, 0)},
		model.City{Name: "diag", Point: model.Pt(0.8, 0.8)},
		model.City{Name: "far", Point: model.Pt(3, 3)},
	))

	res, err := s.Search(context.Background(), Query{Center: model.Pt(0, 0), Radius: 1, Metric: distance.MetricL1})
	require.NoError(t, err)

	// diag survives the box prune but fails the exact L1 check.
	assert.Equal(t, []string{"origin"}, res.Matches)
	assert.Equal(t, 2, res.Candidates)
	assert.Equal(t, s.BoundingBox(model.Pt(0, 0), 1).Cardinality(), res.Candidates)
}

func TestRanges(t *testing.T) {
	s := New(abc())
	c := model.Pt(0, 0)

	assert.Equal(t, []string{"A", "B", "C"}, s.XRangeCities(c, 1))
	assert.Equal(t, []string{"A", "B"}, s.YRangeCities(c, 1))
	assert.Equal(t, []string{"C"}, s.NorthCities(c))
	assert.Empty(t, s.NorthCities(model.Pt(0, 5)))
}

func TestMetrics(t *testing.T) {
	reg := pointstore.FromCities(
		model.City{Name: "origin", Point: model.Pt(0, 0)},
		model.City{Name: "diag", Point: model.Pt(0.8, 0.8)},
		model.City{Name: "edge", Point: model.Pt(1, 0)},
	)
	s := New(reg)
	c := model.Pt(0, 0)

	tests := []struct {
		metric distance.Metric
		want   []string
	}{
		// |diag|_2 = 1.13, |diag|_inf = 0.8, |diag|_1 = 1.6
		{distance.MetricL2, []string{"edge", "origin"}},
		{distance.MetricLinf, []string{"diag", "edge", "origin"}},
		{distance.MetricL1, []string{"edge", "origin"}},
	}

	for _, tt := range tests {
		t.Run(tt.metric.String(), func(t *testing.T) {
			got, err := s.MatchingCities(c, 1, tt.metric)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSearchEdgeCases(t *testing.T) {
	s := New(abc())
	ctx := context.Background()

	t.Run("ZeroRadius", func(t *testing.T) {
		res, err := s.Search(ctx, Query{Center: model.Pt(1, 0), Radius: 0, Metric: distance.MetricL1})
		require.NoError(t, err)
		assert.Equal(t, []string{"B"}, res.Matches)
	})

	t.Run("NegativeRadius", func(t *testing.T) {
		res, err := s.Search(ctx, Query{Center: model.Pt(0, 0), Radius: -1, Metric: distance.MetricL2})
		require.NoError(t, err)
		assert.Empty(t, res.Matches)
		assert.Equal(t, []string{"C"}, res.North)
	})

	t.Run("NaNRadius", func(t *testing.T) {
		_, err := s.Search(ctx, Query{Center: model.Pt(0, 0), Radius: math.NaN(), Metric: distance.MetricL2})
		assert.ErrorIs(t, err, ErrInvalidRadius)
	})

	t.Run("InfiniteRadius", func(t *testing.T) {
		res, err := s.Search(ctx, Query{Center: model.Pt(0, 0), Radius: math.Inf(1), Metric: distance.MetricLinf})
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "C"}, res.Matches)
	})

	t.Run("InvalidMetric", func(t *testing.T) {
		_, err := s.Search(ctx, Query{Center: model.Pt(0, 0), Radius: 1, Metric: distance.Metric(7)})
		var metricErr *distance.ErrInvalidMetric
		assert.ErrorAs(t, err, &metricErr)
	})

	t.Run("Canceled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := s.Search(cctx, Query{Center: model.Pt(0, 0), Radius: 1})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestSearchMatchesBruteForce(t *testing.T) {
	rng := testutil.NewRNG(42)
	datasets := map[string][]model.City{
		"uniform":   rng.RandomCities(400, -50, 50),
		"clustered": rng.ClusteredCities(400, 4, 3),
	}
	ctx := context.Background()

	for name, cities := range datasets {
		t.Run(name, func(t *testing.T) {
			s := New(pointstore.FromCities(cities...))

			for i := 0; i < 25; i++ {
				center := rng.Pick(cities).Point
				radius := rng.Float64Range(0, 20)

				box := s.reg.NamesOf(s.BoundingBox(center, radius))
				assert.Equal(t, testutil.BruteForceBox(cities, center, radius), box)

				for _, m := range distance.Metrics {
					fn, err := distance.Provider(m)
					require.NoError(t, err)

					res, err := s.Search(ctx, Query{Center: center, Radius: radius, Metric: m})
					require.NoError(t, err)

					assert.Equal(t, testutil.BruteForceMatches(cities, center, radius, fn), res.Matches, "metric %s", m)
					assert.Equal(t, testutil.BruteForceNorth(cities, center), res.North)
					assert.Subset(t, box, res.Matches)
				}
			}
		})
	}
}

func TestSelfMatch(t *testing.T) {
	rng := testutil.NewRNG(7)
	cities := rng.RandomCities(100, 0, 10)
	s := New(pointstore.FromCities(cities...))

	for _, c := range cities {
		for _, m := range distance.Metrics {
			got, err := s.MatchingCities(c.Point, 0, m)
			require.NoError(t, err)
			assert.Contains(t, got, c.Name)
		}
	}
}

package testutil

import (
	"fmt"
	"math/rand"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/hupe1980/citysearch/model"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64Range returns a pseudo-random number in [minVal, maxVal).
func (r *RNG) Float64Range(minVal, maxVal float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return minVal + r.rand.Float64()*(maxVal-minVal)
}

// RandomCities generates n cities with coordinates uniform in [minVal, maxVal).
// Coordinates are rounded to two decimals so that ties occur.
func (r *RNG) RandomCities(n int, minVal, maxVal float64) []model.City {
	r.mu.Lock()
	defer r.mu.Unlock()

	cities := make([]model.City, n)
	for i := range cities {
		cities[i] = model.City{
			Name:  cityName(i),
			Point: model.Pt(round2(minVal+r.rand.Float64()*(maxVal-minVal)), round2(minVal+r.rand.Float64()*(maxVal-minVal))),
		}
	}
	return cities
}

// ClusteredCities generates n cities around numClusters random centers with
// gaussian spread.
func (r *RNG) ClusteredCities(n, numClusters int, spread float64) []model.City {
	r.mu.Lock()
	defer r.mu.Unlock()

	centers := make([]model.Point, numClusters)
	for i := range centers {
		centers[i] = model.Pt(r.rand.Float64()*200-100, r.rand.Float64()*200-100)
	}

	cities := make([]model.City, n)
	for i := range cities {
		c := centers[i%numClusters]
		cities[i] = model.City{
			Name:  cityName(i),
			Point: model.Pt(round2(c.X+r.rand.NormFloat64()*spread), round2(c.Y+r.rand.NormFloat64()*spread)),
		}
	}
	return cities
}

// Pick returns a random element of cities.
func (r *RNG) Pick(cities []model.City) model.City {
	return cities[r.Intn(len(cities))]
}

// BruteForceMatches returns the sorted names of cities within radius of
// center under dist, by linear scan.
func BruteForceMatches(cities []model.City, center model.Point, radius float64, dist func(a, b model.Point) float64) []string {
	names := []string{}
	for _, c := range cities {
		if dist(center, c.Point) <= radius {
			names = append(names, c.Name)
		}
	}
	slices.Sort(names)
	return names
}

// BruteForceBox returns the sorted names of cities inside the axis-aligned
// square of half-width radius around center.
func BruteForceBox(cities []model.City, center model.Point, radius float64) []string {
	names := []string{}
	for _, c := range cities {
		if c.X >= center.X-radius && c.X <= center.X+radius &&
			c.Y >= center.Y-radius && c.Y <= center.Y+radius {
			names = append(names, c.Name)
		}
	}
	slices.Sort(names)
	return names
}

// BruteForceNorth returns the sorted names of cities with y strictly greater
// than center.Y.
func BruteForceNorth(cities []model.City, center model.Point) []string {
	names := []string{}
	for _, c := range cities {
		if c.Y > center.Y {
			names = append(names, c.Name)
		}
	}
	slices.Sort(names)
	return names
}

// Format renders cities in the data file layout:
//
//	<name>
//	<x>-<y>
func Format(cities []model.City) string {
	var sb strings.Builder
	for _, c := range cities {
		sb.WriteString(c.Name)
		sb.WriteByte('\n')
		sb.WriteString(strconv.FormatFloat(c.X, 'f', -1, 64))
		sb.WriteByte('-')
		sb.WriteString(strconv.FormatFloat(c.Y, 'f', -1, 64))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func cityName(i int) string {
	return fmt.Sprintf("city-%05d", i)
}

func round2(v float64) float64 {
	f, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return f
}

package distance

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hupe1980/citysearch/model"
)

// Euclidean calculates the L2 distance between two points.
func Euclidean(a, b model.Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Chebyshev calculates the L-infinity distance between two points.
func Chebyshev(a, b model.Point) float64 {
	return math.Max(math.Abs(a.X-b.X), math.Abs(a.Y-b.Y))
}

// Manhattan calculates the L1 distance between two points.
func Manhattan(a, b model.Point) float64 {
	return math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y)
}

// Metric represents the distance metric used for point comparison.
type Metric int

const (
	MetricL2 Metric = iota
	MetricLinf
	MetricL1
)

// Metrics lists every supported metric in selector order.
var Metrics = []Metric{MetricL2, MetricLinf, MetricL1}

func (m Metric) String() string {
	switch m {
	case MetricL2:
		return "L2"
	case MetricLinf:
		return "Linf"
	case MetricL1:
		return "L1"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// Name returns the human-readable name of the metric.
func (m Metric) Name() string {
	switch m {
	case MetricL2:
		return "Euclidean"
	case MetricLinf:
		return "Chebyshev"
	case MetricL1:
		return "Manhattan"
	default:
		return m.String()
	}
}

// Valid reports whether m is one of the supported metrics.
func (m Metric) Valid() bool {
	return m >= MetricL2 && m <= MetricL1
}

// ErrInvalidMetric indicates an unsupported metric selector.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidMetric struct {
	Input string
	cause error
}

func (e *ErrInvalidMetric) Error() string {
	return fmt.Sprintf("invalid metric selector: %q", e.Input)
}

func (e *ErrInvalidMetric) Unwrap() error { return e.cause }

// Func is a function type for distance calculation.
type Func func(a, b model.Point) float64

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricL2:
		return Euclidean, nil
	case MetricLinf:
		return Chebyshev, nil
	case MetricL1:
		return Manhattan, nil
	default:
		return nil, &ErrInvalidMetric{Input: strconv.Itoa(int(m))}
	}
}

// ParseMetric parses an integer selector such as "0", "1" or "2".
func ParseMetric(s string) (Metric, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ErrInvalidMetric{Input: s, cause: err}
	}
	m := Metric(n)
	if !m.Valid() {
		return 0, &ErrInvalidMetric{Input: s}
	}
	return m, nil
}

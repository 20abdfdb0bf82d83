package citysearch

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hupe1980/citysearch/distance"
)

// ParseRadius parses a radius token. NaN and non-numeric input are
// ErrInvalidInput; negative and infinite radii are accepted.
func ParseRadius(s string) (float64, error) {
	s = strings.TrimSpace(s)
	r, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(r) {
		return 0, fmt.Errorf("%w: radius %q is not a number", ErrInvalidInput, s)
	}
	return r, nil
}

// ParseMetric parses a metric selector token. Anything but 0, 1 or 2 is an
// *ErrInvalidSelection.
func ParseMetric(s string) (distance.Metric, error) {
	m, err := distance.ParseMetric(s)
	return m, translateError(err)
}

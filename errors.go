package citysearch

import (
	"errors"
	"fmt"

	"github.com/hupe1980/citysearch/distance"
	"github.com/hupe1980/citysearch/searcher"
)

var (
	// ErrCityNotFound is returned when a queried name is not in the registry.
	ErrCityNotFound = errors.New("city not found")

	// ErrInvalidInput is returned for an unparseable or NaN radius.
	ErrInvalidInput = errors.New("invalid input")
)

// ErrInvalidSelection indicates a metric selector outside {0, 1, 2}.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidSelection struct {
	Input string
	cause error
}

func (e *ErrInvalidSelection) Error() string {
	return fmt.Sprintf("invalid selection: %q is not one of 0 (L2), 1 (Linf), 2 (L1)", e.Input)
}

func (e *ErrInvalidSelection) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var im *distance.ErrInvalidMetric
	if errors.As(err, &im) {
		return &ErrInvalidSelection{Input: im.Input, cause: err}
	}
	if errors.Is(err, searcher.ErrInvalidRadius) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return err
}

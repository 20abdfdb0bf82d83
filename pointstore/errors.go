package pointstore

import (
	"errors"
	"fmt"
)

// Kind classifies a load failure.
type Kind int

const (
	// SourceUnavailable means the source could not be opened or read.
	SourceUnavailable Kind = iota + 1
	// MalformedRecord means a record is structurally invalid.
	MalformedRecord
	// InvalidCoordinate means a coordinate is not a finite real number.
	InvalidCoordinate
)

func (k Kind) String() string {
	switch k {
	case SourceUnavailable:
		return "SourceUnavailable"
	case MalformedRecord:
		return "MalformedRecord"
	case InvalidCoordinate:
		return "InvalidCoordinate"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

var (
	// ErrSourceUnavailable matches LoadErrors of kind SourceUnavailable.
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrMalformedRecord matches LoadErrors of kind MalformedRecord.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrInvalidCoordinate matches LoadErrors of kind InvalidCoordinate.
	ErrInvalidCoordinate = errors.New("invalid coordinate")
)

// LoadError describes why a source could not be loaded.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type LoadError struct {
	Kind Kind
	// Source is the blob name, if known.
	Source string
	// Line is the 1-based line number of the offending line, or 0.
	Line int
	// City is set for orphaned name lines.
	City string
	// Text is the offending line.
	Text  string
	cause error
}

func (e *LoadError) Error() string {
	switch e.Kind {
	case SourceUnavailable:
		if e.cause != nil {
			return fmt.Sprintf("failed to read %s: %v", e.source(), e.cause)
		}
		return fmt.Sprintf("failed to read %s", e.source())
	case MalformedRecord:
		if e.City != "" {
			return fmt.Sprintf("incomplete data for city: %s (line %d)", e.City, e.Line)
		}
		if e.cause != nil {
			return fmt.Sprintf("invalid record format at line %d: %v", e.Line, e.cause)
		}
		return fmt.Sprintf("invalid record format at line %d: %s", e.Line, e.Text)
	case InvalidCoordinate:
		return fmt.Sprintf("invalid coordinate value at line %d: %s", e.Line, e.Text)
	default:
		return fmt.Sprintf("load error (%v)", e.Kind)
	}
}

func (e *LoadError) source() string {
	if e.Source == "" {
		return "source"
	}
	return e.Source
}

func (e *LoadError) Unwrap() error { return e.cause }

// Is reports whether target is the sentinel for e.Kind.
func (e *LoadError) Is(target error) bool {
	switch target {
	case ErrSourceUnavailable:
		return e.Kind == SourceUnavailable
	case ErrMalformedRecord:
		return e.Kind == MalformedRecord
	case ErrInvalidCoordinate:
		return e.Kind == InvalidCoordinate
	}
	return false
}

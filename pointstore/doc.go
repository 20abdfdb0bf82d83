// Package pointstore loads named points and holds them in an immutable Registry.
//
// # Source Format
//
// A source is a sequence of two-line records:
//
//	<name>
//	<x>-<y>
//
// The name line is taken verbatim. The coordinate line splits on the first
// '-' that is neither the leading sign of x nor part of an exponent, so
// signed coordinates such as "-3--4" or "1e-3-2" are accepted.
//
// # Registry
//
// Build assigns RowIDs in lexical name order and builds two sealed
// coordinate indexes (x and y). Duplicate names keep the last occurrence;
// the indexes are built from the final name set and never hold stale rows.
//
// # Errors
//
// All failures are *LoadError values. Use errors.Is with ErrSourceUnavailable,
// ErrMalformedRecord or ErrInvalidCoordinate to match the kind.
package pointstore

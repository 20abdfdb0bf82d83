// Package coordindex provides the per-axis coordinate index used for
// bounding-box pruning.
//
// # Architecture
//
// Each Index is a columnar multi-map from coordinate to RowID:
//
//	values: []float64   sorted ascending after Seal
//	rowIDs: []uint32    aligned with values
//
// Range queries binary-search the values column and add the matching
// slice of rowIDs to a Roaring Bitmap in one batch. Callers intersect the
// x and y bitmaps to obtain the bounding-box candidate set.
//
// Duplicate coordinates are permitted; equal values are ordered by RowID.
//
// # Thread Safety
//
// An Index is built by a single goroutine. After Seal it is immutable and
// safe for concurrent readers.
package coordindex

package coordindex

import (
	"math"
	"slices"
	"sort"

	"github.com/hupe1980/citysearch/model"
)

// Stats holds per-index statistics computed on Seal.
type Stats struct {
	Min         float64
	Max         float64
	Cardinality int // number of distinct values
}

// Index provides O(log n + m) range queries over one coordinate axis.
//
// Invariant: len(values) == len(rowIDs)
// Invariant when sealed: values ascending; equal values ordered by rowID.
type Index struct {
	values []float64
	rowIDs []uint32

	sorted bool
	sealed bool
	stats  Stats
}

// New creates a new empty index with room for capacity entries.
func New(capacity int) *Index {
	return &Index{
		values: make([]float64, 0, capacity),
		rowIDs: make([]uint32, 0, capacity),
		sorted: true,
		stats: Stats{
			Min: math.Inf(1),
			Max: math.Inf(-1),
		},
	}
}

// Add inserts a (value, rowID) pair. Add panics after Seal.
func (ix *Index) Add(value float64, rowID model.RowID) {
	if ix.sealed {
		panic("coordindex: Add on sealed index")
	}

	ix.values = append(ix.values, value)
	ix.rowIDs = append(ix.rowIDs, uint32(rowID))

	if value < ix.stats.Min {
		ix.stats.Min = value
	}
	if value > ix.stats.Max {
		ix.stats.Max = value
	}

	// If this breaks sort order, mark as unsorted
	if ix.sorted && len(ix.values) > 1 && value < ix.values[len(ix.values)-2] {
		ix.sorted = false
	}
}

// Seal sorts the columns and freezes the index.
func (ix *Index) Seal() {
	if ix.sealed {
		return
	}
	ix.sort()
	ix.stats.Cardinality = countDistinct(ix.values)
	ix.sealed = true
}

// Len returns the number of entries.
func (ix *Index) Len() int {
	return len(ix.values)
}

// Stats returns min/max/cardinality. Cardinality is only valid after Seal.
func (ix *Index) Stats() Stats {
	return ix.stats
}

// sort orders both columns by value using an indirect sort to keep them aligned.
func (ix *Index) sort() {
	if len(ix.values) == 0 {
		ix.sorted = true
		return
	}

	indices := make([]int, len(ix.values))
	for i := range indices {
		indices[i] = i
	}
	slices.SortFunc(indices, func(a, b int) int {
		va, vb := ix.values[a], ix.values[b]
		if va < vb {
			return -1
		}
		if va > vb {
			return 1
		}
		if ix.rowIDs[a] < ix.rowIDs[b] {
			return -1
		}
		if ix.rowIDs[a] > ix.rowIDs[b] {
			return 1
		}
		return 0
	})

	values := make([]float64, len(ix.values))
	rowIDs := make([]uint32, len(ix.rowIDs))
	for i, idx := range indices {
		values[i] = ix.values[idx]
		rowIDs[i] = ix.rowIDs[idx]
	}
	ix.values = values
	ix.rowIDs = rowIDs
	ix.sorted = true
}

// countDistinct counts distinct values in a sorted slice.
func countDistinct(values []float64) int {
	if len(values) == 0 {
		return 0
	}
	count := 1
	prev := values[0]
	for i := 1; i < len(values); i++ {
		if values[i] != prev {
			count++
			prev = values[i]
		}
	}
	return count
}

// QueryRange adds to dst every rowID whose value lies between minVal and
// maxVal. includeMin and includeMax select closed or open bounds.
//
// Before Seal this falls back to a full column scan.
func (ix *Index) QueryRange(minVal, maxVal float64, includeMin, includeMax bool, dst *Bitmap) {
	if len(ix.values) == 0 {
		return
	}

	if !ix.sorted {
		for i, v := range ix.values {
			if inRange(v, minVal, maxVal, includeMin, includeMax) {
				dst.rb.Add(ix.rowIDs[i])
			}
		}
		return
	}

	lo := ix.lowerBound(minVal, includeMin)
	hi := ix.upperBound(maxVal, includeMax)
	if hi <= lo {
		return // No matches
	}

	dst.AddMany(ix.rowIDs[lo:hi])
}

// QueryAbove adds to dst every rowID whose value is strictly greater than v.
func (ix *Index) QueryAbove(v float64, dst *Bitmap) {
	ix.QueryRange(v, math.Inf(1), false, true, dst)
}

// Range returns a new bitmap holding the rowIDs in [minVal, maxVal].
func (ix *Index) Range(minVal, maxVal float64) *Bitmap {
	dst := NewBitmap()
	ix.QueryRange(minVal, maxVal, true, true, dst)
	return dst
}

// Above returns a new bitmap holding the rowIDs with value > v.
func (ix *Index) Above(v float64) *Bitmap {
	dst := NewBitmap()
	ix.QueryAbove(v, dst)
	return dst
}

// lowerBound returns the first position whose value is >= v (or > v).
func (ix *Index) lowerBound(v float64, inclusive bool) int {
	if inclusive {
		return sort.SearchFloat64s(ix.values, v)
	}
	return sort.Search(len(ix.values), func(i int) bool { return ix.values[i] > v })
}

// upperBound returns the first position whose value is > v (or >= v).
func (ix *Index) upperBound(v float64, inclusive bool) int {
	if inclusive {
		return sort.Search(len(ix.values), func(i int) bool { return ix.values[i] > v })
	}
	return sort.SearchFloat64s(ix.values, v)
}

func inRange(v, minVal, maxVal float64, includeMin, includeMax bool) bool {
	if includeMin {
		if v < minVal {
			return false
		}
	} else if v <= minVal {
		return false
	}
	if includeMax {
		return v <= maxVal
	}
	return v < maxVal
}

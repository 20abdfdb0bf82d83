package coordindex

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/citysearch/model"
)

// Bitmap is a set of RowIDs backed by a 32-bit Roaring Bitmap.
type Bitmap struct {
	rb *roaring.Bitmap
}

// NewBitmap creates a new empty bitmap.
func NewBitmap() *Bitmap {
	return &Bitmap{
		rb: roaring.New(),
	}
}

// Add adds a RowID to the bitmap.
func (b *Bitmap) Add(id model.RowID) {
	b.rb.Add(uint32(id))
}

// AddMany adds a batch of raw row ids.
func (b *Bitmap) AddMany(ids []uint32) {
	b.rb.AddMany(ids)
}

// IsEmpty returns true if the bitmap is empty.
func (b *Bitmap) IsEmpty() bool {
	return b.rb.IsEmpty()
}

// Cardinality returns the number of elements in the bitmap.
func (b *Bitmap) Cardinality() int {
	return int(b.rb.GetCardinality())
}

// And computes the intersection of two bitmaps in place.
func (b *Bitmap) And(other *Bitmap) {
	b.rb.And(other.rb)
}

// Iterator returns an ascending iterator over the bitmap.
func (b *Bitmap) Iterator() iter.Seq[model.RowID] {
	return func(yield func(model.RowID) bool) {
		it := b.rb.Iterator()
		for it.HasNext() {
			if !yield(model.RowID(it.Next())) {
				return
			}
		}
	}
}

// ToSlice returns the RowIDs in ascending order.
func (b *Bitmap) ToSlice() []model.RowID {
	raw := b.rb.ToArray()
	out := make([]model.RowID, len(raw))
	for i, id := range raw {
		out[i] = model.RowID(id)
	}
	return out
}

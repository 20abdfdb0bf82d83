package pointstore

import (
	"iter"
	"slices"

	"github.com/hupe1980/citysearch/internal/coordindex"
	"github.com/hupe1980/citysearch/model"
)

// Registry is an immutable mapping from city name to point, plus the x and
// y coordinate indexes used for range queries.
//
// Registry is safe for concurrent use.
type Registry struct {
	names  []string
	points []model.Point
	rows   map[string]model.RowID
	x      *coordindex.Index
	y      *coordindex.Index

	duplicates int
}

// Len returns the number of cities.
func (r *Registry) Len() int {
	return len(r.names)
}

// Lookup returns the point for name.
func (r *Registry) Lookup(name string) (model.Point, bool) {
	row, ok := r.rows[name]
	if !ok {
		return model.Point{}, false
	}
	return r.points[row], true
}

// Row returns the RowID for name.
func (r *Registry) Row(name string) (model.RowID, bool) {
	row, ok := r.rows[name]
	return row, ok
}

// Name returns the name stored at row.
func (r *Registry) Name(row model.RowID) string {
	return r.names[row]
}

// Point returns the point stored at row.
func (r *Registry) Point(row model.RowID) model.Point {
	return r.points[row]
}

// Names returns all names in lexical order.
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}

// NamesOf resolves a bitmap of rows to names in lexical order.
func (r *Registry) NamesOf(rows *coordindex.Bitmap) []string {
	ids := rows.ToSlice()
	out := make([]string, len(ids))
	for i, row := range ids {
		out[i] = r.names[row]
	}
	return out
}

// Cities iterates over all cities in lexical order.
func (r *Registry) Cities() iter.Seq[model.City] {
	return func(yield func(model.City) bool) {
		for i, name := range r.names {
			if !yield(model.City{Name: name, Point: r.points[i]}) {
				return
			}
		}
	}
}

// XIndex returns the sealed x-coordinate index.
func (r *Registry) XIndex() *coordindex.Index {
	return r.x
}

// YIndex returns the sealed y-coordinate index.
func (r *Registry) YIndex() *coordindex.Index {
	return r.y
}

// Duplicates returns how many records were overwritten by a later record
// with the same name.
func (r *Registry) Duplicates() int {
	return r.duplicates
}

// Builder accumulates records before building a Registry.
// The zero value is not usable; call NewBuilder.
type Builder struct {
	points     map[string]model.Point
	duplicates int
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		points: make(map[string]model.Point),
	}
}

// Add records a city. A later Add with the same name replaces the point and
// reports true.
func (b *Builder) Add(name string, p model.Point) bool {
	_, replaced := b.points[name]
	if replaced {
		b.duplicates++
	}
	b.points[name] = p
	return replaced
}

// Len returns the number of distinct names added so far.
func (b *Builder) Len() int {
	return len(b.points)
}

// Build assigns RowIDs in lexical name order and seals both indexes.
func (b *Builder) Build() *Registry {
	n := len(b.points)

	names := make([]string, 0, n)
	for name := range b.points {
		names = append(names, name)
	}
	slices.Sort(names)

	r := &Registry{
		names:      names,
		points:     make([]model.Point, n),
		rows:       make(map[string]model.RowID, n),
		x:          coordindex.New(n),
		y:          coordindex.New(n),
		duplicates: b.duplicates,
	}

	for i, name := range names {
		row := model.RowID(i)
		p := b.points[name]
		r.points[i] = p
		r.rows[name] = row
		r.x.Add(p.X, row)
		r.y.Add(p.Y, row)
	}

	r.x.Seal()
	r.y.Seal()

	return r
}

// FromCities builds a Registry directly from cities.
func FromCities(cities ...model.City) *Registry {
	b := NewBuilder()
	for _, c := range cities {
		b.Add(c.Name, c.Point)
	}
	return b.Build()
}

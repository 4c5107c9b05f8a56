/*package particles implements the structure-of-arrays particle tile. A
Tile is the exclusive owner of every attribute array for the particles of
one grid box at one refinement level; all mutation is bulk (append, resize,
reorder) and all access is columnar.*/
package particles

import (
	"github.com/GivenChen/WarpX/lib/error"
)

// Real is the set of floating-point widths particle data may be stored in.
// The width is selected once from configuration, not per call.
type Real interface {
	~float32 | ~float64
}

// Tile stores one particle per row across parallel attribute arrays:
// identifier, position, proper velocity, weight, and any runtime-added
// named real/int components. Every array always has the same length.
type Tile[T Real] struct {
	id         []uint64
	x, y, z    []T
	ux, uy, uz []T
	w          []T

	realNames []string
	extraReal [][]T
	intNames  []string
	extraInt  [][]int32
}

// NewTile creates a tile holding n particles with zeroed attributes and no
// runtime components.
func NewTile[T Real](n int) *Tile[T] {
	return &Tile[T]{
		id: make([]uint64, n),
		x:  make([]T, n), y: make([]T, n), z: make([]T, n),
		ux: make([]T, n), uy: make([]T, n), uz: make([]T, n),
		w: make([]T, n),
	}
}

// Len returns the number of particles in the tile.
func (t *Tile[T]) Len() int { return len(t.id) }

// ID returns the identifier array.
func (t *Tile[T]) ID() []uint64 { return t.id }

// X returns the x position array.
func (t *Tile[T]) X() []T { return t.x }

// Y returns the y position array.
func (t *Tile[T]) Y() []T { return t.y }

// Z returns the z position array.
func (t *Tile[T]) Z() []T { return t.z }

// UX returns the x proper-velocity array.
func (t *Tile[T]) UX() []T { return t.ux }

// UY returns the y proper-velocity array.
func (t *Tile[T]) UY() []T { return t.uy }

// UZ returns the z proper-velocity array.
func (t *Tile[T]) UZ() []T { return t.uz }

// W returns the weight array.
func (t *Tile[T]) W() []T { return t.w }

// AddRealComp adds a runtime real component with the given name, zeroed
// for every particle already in the tile.
func (t *Tile[T]) AddRealComp(name string) {
	for _, prev := range t.realNames {
		if prev == name {
			error.Internal("Tile already has a real component named '%s'.", name)
		}
	}
	t.realNames = append(t.realNames, name)
	t.extraReal = append(t.extraReal, make([]T, t.Len()))
}

// AddIntComp adds a runtime int component with the given name, zeroed for
// every particle already in the tile.
func (t *Tile[T]) AddIntComp(name string) {
	for _, prev := range t.intNames {
		if prev == name {
			error.Internal("Tile already has an int component named '%s'.", name)
		}
	}
	t.intNames = append(t.intNames, name)
	t.extraInt = append(t.extraInt, make([]int32, t.Len()))
}

// RealNames returns the names of the runtime real components in the order
// they were added.
func (t *Tile[T]) RealNames() []string { return t.realNames }

// IntNames returns the names of the runtime int components in the order
// they were added.
func (t *Tile[T]) IntNames() []string { return t.intNames }

// RealComp returns the array of the named runtime real component. Asking
// for a component that was never added is a programming error.
func (t *Tile[T]) RealComp(name string) []T {
	for i := range t.realNames {
		if t.realNames[i] == name {
			return t.extraReal[i]
		}
	}
	error.Internal("Tile has no real component named '%s'.", name)
	return nil
}

// IntComp returns the array of the named runtime int component.
func (t *Tile[T]) IntComp(name string) []int32 {
	for i := range t.intNames {
		if t.intNames[i] == name {
			return t.extraInt[i]
		}
	}
	error.Internal("Tile has no int component named '%s'.", name)
	return nil
}

// Resize grows or shrinks every attribute array to hold n particles. New
// slots are zeroed.
func (t *Tile[T]) Resize(n int) {
	if n < 0 {
		error.Internal("Tile resized to %d particles.", n)
	}
	t.id = resizeUint64s(t.id, n)
	t.x, t.y, t.z = resizeReals(t.x, n), resizeReals(t.y, n), resizeReals(t.z, n)
	t.ux, t.uy, t.uz = resizeReals(t.ux, n), resizeReals(t.uy, n), resizeReals(t.uz, n)
	t.w = resizeReals(t.w, n)
	for i := range t.extraReal {
		t.extraReal[i] = resizeReals(t.extraReal[i], n)
	}
	for i := range t.extraInt {
		t.extraInt[i] = resizeInt32s(t.extraInt[i], n)
	}
}

// Append adds one particle to the end of the tile. Runtime components of
// the new particle are zeroed.
func (t *Tile[T]) Append(id uint64, x, y, z, ux, uy, uz, w T) {
	t.id = append(t.id, id)
	t.x, t.y, t.z = append(t.x, x), append(t.y, y), append(t.z, z)
	t.ux, t.uy, t.uz = append(t.ux, ux), append(t.uy, uy), append(t.uz, uz)
	t.w = append(t.w, w)
	for i := range t.extraReal {
		t.extraReal[i] = append(t.extraReal[i], 0)
	}
	for i := range t.extraInt {
		t.extraInt[i] = append(t.extraInt[i], 0)
	}
}

// CreateLike creates a tile with the same runtime components as t holding
// n zeroed particles.
func (t *Tile[T]) CreateLike(n int) *Tile[T] {
	out := NewTile[T](n)
	for _, name := range t.realNames {
		out.AddRealComp(name)
	}
	for _, name := range t.intNames {
		out.AddIntComp(name)
	}
	return out
}

// Swap exchanges the attribute arrays of two tiles. Both tiles must have
// the same runtime components.
func (t *Tile[T]) Swap(o *Tile[T]) {
	if len(t.extraReal) != len(o.extraReal) || len(t.extraInt) != len(o.extraInt) {
		error.Internal("Tiles with %d/%d real and %d/%d int runtime components swapped.",
			len(t.extraReal), len(o.extraReal), len(t.extraInt), len(o.extraInt))
	}
	*t, *o = *o, *t
}

func resizeReals[T Real](x []T, n int) []T {
	old := len(x)
	if n <= cap(x) {
		x = x[:n]
		for i := old; i < n; i++ {
			x[i] = 0
		}
		return x
	}
	out := make([]T, n)
	copy(out, x)
	return out
}

func resizeUint64s(x []uint64, n int) []uint64 {
	old := len(x)
	if n <= cap(x) {
		x = x[:n]
		for i := old; i < n; i++ {
			x[i] = 0
		}
		return x
	}
	out := make([]uint64, n)
	copy(out, x)
	return out
}

func resizeInt32s(x []int32, n int) []int32 {
	old := len(x)
	if n <= cap(x) {
		x = x[:n]
		for i := old; i < n; i++ {
			x[i] = 0
		}
		return x
	}
	out := make([]int32, n)
	copy(out, x)
	return out
}

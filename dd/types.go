// Package dd core types: constraint rows, the two representations, and
// their validation. Conventions follow the rest of the module: dense []T
// vectors over a field.Field[T], dimensions inferred from vector length.
package dd

import (
	"github.com/katalvlaran/polyhedra/field"
)

// Halfspace is the linear inequality Normal·x ≤ Offset.
type Halfspace[T any] struct {
	Normal []T
	Offset T
}

// Hyperplane is the linear equality Normal·x = Offset.
type Hyperplane[T any] struct {
	Normal []T
	Offset T
}

// HRep describes a polyhedron as an intersection of hyperplanes and
// halfspaces. Hyperplanes are folded before halfspaces; within each group the
// input order is preserved and defines the constraint positions.
type HRep[T any] struct {
	Hyperplanes []Hyperplane[T]
	Halfspaces  []Halfspace[T]
}

// VRep describes a polyhedron by three unordered collections: extreme points,
// extreme rays of the recession cone, and bidirectional free line directions.
type VRep[T any] struct {
	Points [][]T
	Rays   [][]T
	Lines  [][]T
}

// IsEmpty reports whether v describes the empty polyhedron.
// An empty polyhedron has no points, and by definition no rays or lines.
func (v VRep[T]) IsEmpty() bool { return len(v.Points) == 0 }

// dim infers the ambient dimension of h and validates uniformity.
//
// Errors: ErrNoConstraints (no rows at all), ErrDimensionMismatch (differing
// or zero lengths), ErrZeroNormal (an all-zero constraint normal).
func (h HRep[T]) dim(f field.Field[T]) (int, error) {
	var d = 0 // inferred dimension; 0 until the first row is seen
	var check = func(normal []T) error {
		if d == 0 {
			d = len(normal)
		}
		if len(normal) != d || d == 0 {
			return ErrDimensionMismatch
		}
		if field.IsZeroVec(f, normal) {
			return ErrZeroNormal
		}

		return nil
	}

	var i int
	for i = 0; i < len(h.Hyperplanes); i++ {
		if err := check(h.Hyperplanes[i].Normal); err != nil {
			return 0, err
		}
	}
	for i = 0; i < len(h.Halfspaces); i++ {
		if err := check(h.Halfspaces[i].Normal); err != nil {
			return 0, err
		}
	}
	if d == 0 {
		return 0, ErrNoConstraints
	}

	return d, nil
}

// dim infers the ambient dimension of v and validates uniformity.
// The at-least-one-point precondition is checked by the ToHRep facade.
//
// Errors: ErrDimensionMismatch, ErrZeroDirection (zero ray/line direction).
func (v VRep[T]) dim(f field.Field[T]) (int, error) {
	var d = 0
	var i int
	for i = 0; i < len(v.Points); i++ {
		if d == 0 {
			d = len(v.Points[i])
		}
		if len(v.Points[i]) != d || d == 0 {
			return 0, ErrDimensionMismatch
		}
	}
	var checkDir = func(dir []T) error {
		if d == 0 {
			d = len(dir)
		}
		if len(dir) != d || d == 0 {
			return ErrDimensionMismatch
		}
		if field.IsZeroVec(f, dir) {
			return ErrZeroDirection
		}

		return nil
	}
	for i = 0; i < len(v.Rays); i++ {
		if err := checkDir(v.Rays[i]); err != nil {
			return 0, err
		}
	}
	for i = 0; i < len(v.Lines); i++ {
		if err := checkDir(v.Lines[i]); err != nil {
			return 0, err
		}
	}

	return d, nil
}

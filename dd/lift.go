package dd

import (
	"github.com/katalvlaran/polyhedra/field"
)

// dualCone homogenizes v into the constraint system of its polar cone in
// dimension d+1. A valid inequality a·x ≤ β over v is exactly a feasible
// y = (β, a) of this system:
//
//	point p → halfspace  (−1, p)·y ≤ 0   (a·p ≤ β)
//	ray   r → halfspace  ( 0, r)·y ≤ 0   (a·r ≤ 0)
//	line  l → hyperplane ( 0, l)·y = 0   (a·l = 0)
//
// Normals are nonzero by construction: the leading −1 for points, the
// validated nonzero direction for rays and lines.
func dualCone[T any](f field.Field[T], v VRep[T], d int) HRep[T] {
	var h HRep[T]
	var lift = func(lead T, vec []T) []T {
		var row = make([]T, 0, d+1)
		row = append(row, lead)

		return append(row, field.Clone(f, vec)...)
	}

	var i int
	for i = 0; i < len(v.Points); i++ {
		h.Halfspaces = append(h.Halfspaces, Halfspace[T]{
			Normal: lift(f.Neg(f.One()), v.Points[i]),
			Offset: f.Zero(),
		})
	}
	for i = 0; i < len(v.Rays); i++ {
		h.Halfspaces = append(h.Halfspaces, Halfspace[T]{
			Normal: lift(f.Zero(), v.Rays[i]),
			Offset: f.Zero(),
		})
	}
	for i = 0; i < len(v.Lines); i++ {
		h.Hyperplanes = append(h.Hyperplanes, Hyperplane[T]{
			Normal: lift(f.Zero(), v.Lines[i]),
			Offset: f.Zero(),
		})
	}

	return h
}

// readBack interprets the V-representation of the polar cone as constraints:
// each generator y = (β, a) is one valid (in)equality a·x ≤ β, rays one-sided
// and lines two-sided. Generators with an all-zero a encode only the trivial
// 0 ≤ β and are skipped; the cone's points (the origin) carry nothing.
func readBack[T any](f field.Field[T], s *state[T]) HRep[T] {
	var h HRep[T]
	var i int
	for i = 0; i < len(s.rays); i++ {
		var y = s.rays[i].coord
		if field.IsZeroVec(f, y[1:]) {
			continue
		}
		h.Halfspaces = append(h.Halfspaces, Halfspace[T]{
			Normal: field.Clone(f, y[1:]),
			Offset: f.Copy(y[0]),
		})
	}
	for i = 0; i < len(s.lines); i++ {
		var y = s.lines[i]
		if field.IsZeroVec(f, y[1:]) {
			continue
		}
		h.Hyperplanes = append(h.Hyperplanes, Hyperplane[T]{
			Normal: field.Clone(f, y[1:]),
			Offset: f.Copy(y[0]),
		})
	}

	return h
}

package dd

import (
	"github.com/katalvlaran/polyhedra/field"
)

// ToVRep enumerates the points, rays, and lines of the polyhedron described
// by h, over the scalar field f.
//
// The returned representation is minimal up to f's tolerance: no duplicate
// generators, redundant constraints contribute nothing. An empty polyhedron
// comes back as the zero VRep; an unbounded one carries rays and lines.
//
// Errors: ErrNoConstraints, ErrDimensionMismatch, ErrZeroNormal on malformed
// input; ErrInvariant (as an *InvariantError) on an internal numeric defect,
// which for Float64 usually means the tolerance does not suit the data.
func ToVRep[T any](f field.Field[T], h HRep[T]) (VRep[T], error) {
	var d, err = h.dim(f)
	if err != nil {
		return VRep[T]{}, ddErrorf(opToV, err)
	}

	var s = newState(f, d, h)
	var k int
	for k = 0; k < len(s.stages); k++ {
		if err = s.fold(k); err != nil {
			return VRep[T]{}, ddErrorf(opToV, err)
		}
	}
	s.cleanup()

	return s.vrep(), nil
}

// ToHRep enumerates hyperplanes and halfspaces describing the polyhedron
// generated by v, over the scalar field f. It runs the same folding engine on
// the polar cone of v, one dimension up; the cone's rays and lines read back
// as halfspaces and hyperplanes.
//
// A full-space input (for example one point plus d spanning lines) yields an
// HRep with no rows.
//
// Errors: ErrNoPoints (nothing anchors the affine hull), ErrDimensionMismatch,
// ErrZeroDirection on malformed input; ErrInvariant on an internal defect.
func ToHRep[T any](f field.Field[T], v VRep[T]) (HRep[T], error) {
	var d, err = v.dim(f)
	if err != nil {
		return HRep[T]{}, ddErrorf(opToH, err)
	}
	if len(v.Points) == 0 {
		return HRep[T]{}, ddErrorf(opToH, ErrNoPoints)
	}

	var s = newState(f, d+1, dualCone(f, v, d))
	var k int
	for k = 0; k < len(s.stages); k++ {
		if err = s.fold(k); err != nil {
			return HRep[T]{}, ddErrorf(opToH, err)
		}
	}
	s.cleanup()

	return readBack(f, s), nil
}

// vrep assembles the output representation from the post-cleanup active
// sets. Rays are already in canonical scale; line directions are
// re-canonicalized so the enumeration is stable regardless of how they were
// produced.
func (s *state[T]) vrep() VRep[T] {
	var out VRep[T]
	var i int
	for i = 0; i < len(s.points); i++ {
		out.Points = append(out.Points, s.points[i].coord)
	}
	for i = 0; i < len(s.rays); i++ {
		out.Rays = append(out.Rays, s.rays[i].coord)
	}
	for i = 0; i < len(s.lines); i++ {
		out.Lines = append(out.Lines, field.CanonicalizeLine(s.f, s.lines[i]))
	}

	return out
}

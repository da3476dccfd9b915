package dd

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/polyhedra/field"
)

// adjacent reports whether a and b span an edge (a one-degree-of-freedom
// face) of the current intermediate polyhedron. The shared tight-constraint
// count z, restricted to non-purged positions, plus the free-line count must
// reach d−1 for a pair involving a point, d−2 for a ray pair: each tight
// constraint and each free line removes one degree of freedom, a point pins
// one more than a homogeneous ray pair does.
func (s *state[T]) adjacent(a, b *element[T], nlines int) bool {
	var z = int(a.zs.Intersection(b.zs).DifferenceCardinality(s.purged))
	var need = s.dim - 1 - nlines
	if a.kind == kindRay && b.kind == kindRay {
		need = s.dim - 2 - nlines
	}

	return z == need
}

// combine builds the boundary element of constraint position pos from the
// pair (a, b), whose val/sign scratch must hold their evaluations against
// pos. The evaluations must be of definite opposite sign (the combination
// coefficients are positive exactly then); anything else is an internal
// defect reported as an InvariantError.
//
// The result is a ray only when both parents are rays, canonically scaled;
// its zero-set is left empty for the placement walk to rebuild.
func (s *state[T]) combine(a, b *element[T], pos int) (*element[T], error) {
	if a.sign*b.sign != -1 {
		return nil, &InvariantError{Stage: pos, Cutoffs: [2]int{a.cut, b.cut}}
	}

	var e = &element[T]{
		kind: kindPoint,
		zs:   bitset.New(uint(len(s.stages))),
		cut:  activeBucket,
	}
	var i int
	switch {
	case a.kind == kindPoint && b.kind == kindPoint:
		// Affine interpolation b + λ(a−b) with λ = v_b / (v_b − v_a) lands
		// exactly on the boundary, λ ∈ (0, 1).
		var lam = s.f.Div(b.val, s.f.Sub(b.val, a.val))
		e.coord = make([]T, s.dim)
		for i = 0; i < s.dim; i++ {
			e.coord[i] = s.f.Add(b.coord[i], s.f.Mul(lam, s.f.Sub(a.coord[i], b.coord[i])))
		}
	case a.kind == kindRay && b.kind == kindRay:
		// Positive cone combination (v_b·a − v_a·b)/(v_b − v_a).
		e.kind = kindRay
		var den = s.f.Sub(b.val, a.val)
		e.coord = field.AddScaled(s.f,
			field.Scale(s.f, s.f.Div(b.val, den), a.coord),
			s.f.Neg(s.f.Div(a.val, den)), b.coord)
		field.Canonicalize(s.f, e.coord)
	default:
		// Point shifted along the ray: p + λr with λ = −v_p / v_r > 0.
		var p, r = a, b
		if a.kind == kindRay {
			p, r = b, a
		}
		var lam = s.f.Neg(s.f.Div(p.val, r.val))
		e.coord = field.AddScaled(s.f, p.coord, lam, r.coord)
	}

	return e, nil
}

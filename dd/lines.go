package dd

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/polyhedra/field"
)

// foldLines runs the free-line pass for stage st. The first line with a
// nonzero product against the constraint normal is absorbed (sign-corrected
// so normal·line < 0, the feasible side); every later line with a nonzero
// product is projected along the absorbed direction back onto the constraint
// and kept if it stays nonzero. Lines already orthogonal to the normal pass
// through untouched, which is why every surviving free line has a zero
// product against every earlier constraint.
//
// When a line is absorbed the whole stage resolves here: all active elements
// slide onto the constraint boundary (nothing is excluded), and a halfspace
// additionally materializes the feasible half of the absorbed line as a new
// ray. Returns whether the stage absorbed a line.
func (s *state[T]) foldLines(st *stage[T]) error {
	var kept = s.lines[:0]
	var i int
	for i = 0; i < len(s.lines); i++ {
		var l = s.lines[i]
		var p = field.Dot(s.f, st.normal, l)
		if s.f.Sign(p) == 0 {
			kept = append(kept, l)

			continue
		}
		if st.line == nil {
			if s.f.Sign(p) > 0 {
				var j int
				for j = 0; j < len(l); j++ {
					l[j] = s.f.Neg(l[j])
				}
			}
			st.line = l

			continue
		}
		// Project onto the constraint: normal·(l + λ·line) vanishes when
		// λ = −p / normal·line.
		var lam = s.f.Neg(s.f.Div(p, field.Dot(s.f, st.normal, st.line)))
		l = field.AddScaled(s.f, l, lam, st.line)
		field.CanonicalizeLine(s.f, l)
		if !field.IsZeroVec(s.f, l) {
			kept = append(kept, l)
		}
	}
	s.lines = kept
	st.nlines = len(s.lines)

	if st.line == nil {
		return nil
	}

	s.slideActive(st)
	if !st.hyper {
		return s.materializeRay(st)
	}

	return nil
}

// slideActive moves every active element along the absorbed direction onto
// the boundary of st, then records the whole active set as tight on st.
func (s *state[T]) slideActive(st *stage[T]) {
	var denom = field.Dot(s.f, st.normal, st.line)
	var slide = func(e *element[T]) {
		var v = s.value(e, st.pos)
		if s.f.Sign(v) != 0 {
			var lam = s.f.Neg(s.f.Div(v, denom))
			e.coord = field.AddScaled(s.f, e.coord, lam, st.line)
			if e.kind == kindRay {
				field.Canonicalize(s.f, e.coord)
			}
		}
		e.zs.Set(uint(st.pos))
		st.in = append(st.in, e)
	}

	var i int
	for i = 0; i < len(s.points); i++ {
		slide(s.points[i])
	}
	for i = 0; i < len(s.rays); i++ {
		slide(s.rays[i])
	}
}

// materializeRay turns the feasible half of the line absorbed by halfspace st
// into a ray. The absorbed direction already satisfies normal·line < 0, so the
// new ray is strictly inside st and tight on every earlier surviving
// constraint; the placement walk rebuilds its zero-set accordingly.
func (s *state[T]) materializeRay(st *stage[T]) error {
	var r = &element[T]{
		kind:  kindRay,
		coord: field.Canonicalize(s.f, field.Clone(s.f, st.line)),
		zs:    bitset.New(uint(len(s.stages))),
		cut:   activeBucket,
	}
	var _, err = s.place(r, st.pos, true)

	return err
}

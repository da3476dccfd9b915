package dd

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/polyhedra/field"
)

// elemKind discriminates the two one-directional generator kinds the engine
// tracks per element. Free lines are not elements; they live in state.lines
// until a constraint absorbs them.
type elemKind uint8

const (
	kindPoint elemKind = iota
	kindRay
)

// element is one active or archived generator.
//
// zs is the zero-set: bit h is set iff the element lies on the boundary of
// constraint position h. cut is the archive bucket (the position of the
// constraint that excluded the element), or activeBucket while active.
// val/sign are per-fold scratch, valid only inside one classify pass.
type element[T any] struct {
	kind  elemKind
	coord []T
	zs    *bitset.BitSet
	cut   int

	val  T
	sign int
}

// stage is the per-constraint bookkeeping. One stage per constraint position,
// hyperplanes first, then halfspaces in input order.
type stage[T any] struct {
	pos    int
	normal []T
	offset T
	hyper  bool

	// line is the free direction this constraint absorbed, sign-corrected so
	// normal·line < 0; nil when the line pass found nothing to absorb.
	line []T
	// nlines is the number of free lines remaining after this constraint's
	// line pass, used by the adjacency threshold.
	nlines int

	// cutPoints/cutRays archive the elements this constraint excluded.
	cutPoints []*element[T]
	cutRays   []*element[T]
	// in lists the elements on this constraint's boundary, collected while the
	// stage is live; freed marks the bookkeeping as released by cleanup.
	in    []*element[T]
	freed bool
}

// state is the incremental conversion state. After fold(0..k), the active
// points/rays plus the remaining free lines are exactly the V-representation
// of the intersection of constraints 0..k.
type state[T any] struct {
	f   field.Field[T]
	dim int

	stages []*stage[T]
	points []*element[T]
	rays   []*element[T]
	lines  [][]T

	// purged masks constraint positions removed as redundant; adjacency counts
	// zero-set bits outside this mask.
	purged *bitset.BitSet
}

// newState builds the stage list from h and seeds the universal
// V-representation: the origin plus one free line per dimension.
func newState[T any](f field.Field[T], dim int, h HRep[T]) *state[T] {
	var total = len(h.Hyperplanes) + len(h.Halfspaces)
	var s = &state[T]{
		f:      f,
		dim:    dim,
		stages: make([]*stage[T], 0, total),
		purged: bitset.New(uint(total)),
	}

	var i int
	for i = 0; i < len(h.Hyperplanes); i++ {
		s.stages = append(s.stages, &stage[T]{
			pos:    len(s.stages),
			normal: field.Clone(f, h.Hyperplanes[i].Normal),
			offset: f.Copy(h.Hyperplanes[i].Offset),
			hyper:  true,
		})
	}
	for i = 0; i < len(h.Halfspaces); i++ {
		s.stages = append(s.stages, &stage[T]{
			pos:    len(s.stages),
			normal: field.Clone(f, h.Halfspaces[i].Normal),
			offset: f.Copy(h.Halfspaces[i].Offset),
		})
	}

	var origin = make([]T, dim)
	for i = 0; i < dim; i++ {
		origin[i] = f.Zero()
	}
	s.points = append(s.points, &element[T]{
		kind:  kindPoint,
		coord: origin,
		zs:    bitset.New(uint(total)),
		cut:   activeBucket,
	})
	for i = 0; i < dim; i++ {
		s.lines = append(s.lines, field.Unit(f, dim, i))
	}

	return s
}

// value evaluates element e against constraint position k: normal·coord,
// minus the offset for points. Rays and other directions are translation-free
// and ignore the offset.
func (s *state[T]) value(e *element[T], k int) T {
	var v = field.Dot(s.f, s.stages[k].normal, e.coord)
	if e.kind == kindPoint {
		v = s.f.Sub(v, s.stages[k].offset)
	}

	return v
}

// place admits a freshly combined (or materialized) element: it rebuilds the
// zero-set by evaluating every non-purged constraint position 0..upTo,
// re-projects the element onto the boundary of positions that absorbed a line,
// and registers it with the live boundary in-lists. Walking positions in
// ascending order keeps earlier zero-set bits valid across projections, since
// an absorbed line is orthogonal-in-value to every earlier constraint.
//
// A violation at a position with no absorbed line means the element cannot be
// repaired: with strict set this is an internal defect (InvariantError),
// without it the element is silently discarded (cleanup recombination probes
// candidates that may legitimately fall outside). Duplicates of an active
// element of the same kind are discarded in both modes.
//
// Returns whether the element was admitted into the active sets.
func (s *state[T]) place(e *element[T], upTo int, strict bool) (bool, error) {
	var h int
	var st *stage[T]
	for h = 0; h <= upTo; h++ {
		if s.purged.Test(uint(h)) {
			continue
		}
		st = s.stages[h]
		var v = s.value(e, h)
		var sg = s.f.Sign(v)
		var violated = sg > 0 || (st.hyper && sg != 0)
		if violated && st.line != nil {
			// Slide along the absorbed direction onto the boundary:
			// normal·(coord + λ·line) realigns when λ = −v / normal·line.
			var lam = s.f.Neg(s.f.Div(v, field.Dot(s.f, st.normal, st.line)))
			e.coord = field.AddScaled(s.f, e.coord, lam, st.line)
			if e.kind == kindRay {
				field.Canonicalize(s.f, e.coord)
			}
			sg = 0
		} else if violated {
			if strict {
				return false, &InvariantError{Stage: upTo, Cutoffs: [2]int{e.cut, e.cut}}
			}

			return false, nil
		}
		if sg == 0 {
			e.zs.Set(uint(h))
			if !st.freed {
				st.in = append(st.in, e)
			}
		}
	}

	if s.isDuplicate(e) {
		return false, nil
	}
	e.cut = activeBucket
	if e.kind == kindPoint {
		s.points = append(s.points, e)
	} else {
		s.rays = append(s.rays, e)
	}

	return true, nil
}

// isDuplicate reports whether an active element of e's kind already has the
// same coordinates. Rays compare in canonical scale, so componentwise equality
// is the right test for both kinds.
func (s *state[T]) isDuplicate(e *element[T]) bool {
	var pool = s.points
	if e.kind == kindRay {
		pool = s.rays
	}
	var i int
	for i = 0; i < len(pool); i++ {
		if s.sameCoord(pool[i].coord, e.coord) {
			return true
		}
	}

	return false
}

// sameCoord reports componentwise tolerance equality.
func (s *state[T]) sameCoord(a, b []T) bool {
	var i int
	for i = 0; i < len(a); i++ {
		if !s.f.Eq(a[i], b[i]) {
			return false
		}
	}

	return true
}

// release drops the stage's bookkeeping once cleanup is done with it. The
// archived elements stay reachable only through combinations that already
// copied what they needed.
func (s *state[T]) release(st *stage[T]) {
	st.freed = true
	st.in = nil
	st.cutPoints = nil
	st.cutRays = nil
}

// purge removes a redundant constraint position: the mask excludes it from
// adjacency counts and the placement walk, and the bit is cleared from every
// active zero-set.
func (s *state[T]) purge(pos int) {
	s.purged.Set(uint(pos))
	var i int
	for i = 0; i < len(s.points); i++ {
		s.points[i].zs.Clear(uint(pos))
	}
	for i = 0; i < len(s.rays); i++ {
		s.rays[i].zs.Clear(uint(pos))
	}
}

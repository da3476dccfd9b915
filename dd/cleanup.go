package dd

// cleanup runs the backward pass over all constraint positions, halfspaces
// last-to-first and then hyperplanes. A constraint that excluded nothing and
// absorbed no line was redundant: its position is purged from the adjacency
// mask and every active zero-set. Every other constraint gets a recombination
// round before its bookkeeping is released.
//
// A polyhedron with no points left is empty; rays and lines without a point
// anchor describe nothing, so they are dropped with it.
func (s *state[T]) cleanup() {
	var k int
	for k = len(s.stages) - 1; k >= 0; k-- {
		var st = s.stages[k]
		if len(st.cutPoints) == 0 && len(st.cutRays) == 0 && st.line == nil {
			s.purge(k)
		} else {
			s.recombine(st)
		}
		s.release(st)
	}

	if len(s.points) == 0 {
		s.rays = nil
		s.lines = nil
	}
}

// recombine probes boundary pairs of st that earlier folds split across
// cutoff buckets. Once later redundant constraints are purged, such a pair
// can become adjacent again and its combination a missing generator.
//
// Candidates are pairs from st's in-list with distinct cutoff references
// (so at least one is archived). The pair is combined against the later
// bucket j of the two, with freshly recomputed evaluations; only definite
// opposite signs and adjacency under stages[j].nlines qualify. Candidates
// that land outside some other constraint are discarded by the lenient
// placement walk, not reported.
func (s *state[T]) recombine(st *stage[T]) {
	// Snapshot: admitted candidates are appended to st.in by the walk.
	var in = make([]*element[T], len(st.in))
	copy(in, st.in)

	var i, j int
	for i = 0; i < len(in); i++ {
		for j = i + 1; j < len(in); j++ {
			var a, b = in[i], in[j]
			if a.cut == b.cut {
				continue
			}
			var pos = a.cut
			if b.cut > pos {
				pos = b.cut
			}
			a.val = s.value(a, pos)
			a.sign = s.f.Sign(a.val)
			b.val = s.value(b, pos)
			b.sign = s.f.Sign(b.val)
			if a.sign*b.sign != -1 {
				continue
			}
			if !s.adjacent(a, b, s.stages[pos].nlines) {
				continue
			}
			var e, err = s.combine(a, b, pos)
			if err != nil {
				continue
			}
			_, _ = s.place(e, len(s.stages)-1, false)
		}
	}
}

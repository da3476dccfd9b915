package dd

// fold incorporates constraint position k into the state. The free-line pass
// runs first; if it absorbed a line the stage is fully resolved there (every
// active element slid onto the boundary, nothing excluded). Otherwise the
// active elements are classified against the constraint, the excluded ones
// are archived under bucket k, and adjacent (excluded, partner) pairs are
// combined into new boundary elements.
func (s *state[T]) fold(k int) error {
	var st = s.stages[k]
	if err := s.foldLines(st); err != nil {
		return err
	}
	if st.line != nil {
		return nil
	}

	// Classification: excluded elements leave the active sets and land in the
	// stage's cut buckets; boundary elements record the tight position;
	// strictly inside elements are snapshotted as combination partners.
	var inside []*element[T]
	var classify = func(pool []*element[T], bucket *[]*element[T]) []*element[T] {
		var kept = pool[:0]
		var i int
		for i = 0; i < len(pool); i++ {
			var e = pool[i]
			e.val = s.value(e, k)
			e.sign = s.f.Sign(e.val)
			switch {
			case e.sign > 0 || (st.hyper && e.sign != 0):
				e.cut = k
				*bucket = append(*bucket, e)
			case e.sign == 0:
				e.zs.Set(uint(k))
				st.in = append(st.in, e)
				kept = append(kept, e)
			default:
				inside = append(inside, e)
				kept = append(kept, e)
			}
		}

		return kept
	}
	s.points = classify(s.points, &st.cutPoints)
	s.rays = classify(s.rays, &st.cutRays)

	var cut = make([]*element[T], 0, len(st.cutPoints)+len(st.cutRays))
	cut = append(cut, st.cutPoints...)
	cut = append(cut, st.cutRays...)

	var pair = func(a, b *element[T]) error {
		if !s.adjacent(a, b, st.nlines) {
			return nil
		}
		var e, err = s.combine(a, b, k)
		if err != nil {
			return err
		}
		_, err = s.place(e, k, true)

		return err
	}

	var i, j int
	if st.hyper {
		// A hyperplane excludes both open sides; new boundary elements come
		// from excluded pairs straddling it.
		for i = 0; i < len(cut); i++ {
			for j = i + 1; j < len(cut); j++ {
				if cut[i].sign*cut[j].sign != -1 {
					continue
				}
				if err := pair(cut[i], cut[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
	for i = 0; i < len(cut); i++ {
		for j = 0; j < len(inside); j++ {
			if err := pair(cut[i], inside[j]); err != nil {
				return err
			}
		}
	}

	return nil
}

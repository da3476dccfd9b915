package field

// Field is the scalar contract the conversion engine is generic over.
//
// Arithmetic methods must return fresh values and never mutate their
// arguments (pointer-backed fields such as Rat allocate; value-backed fields
// such as Float64 copy for free). The three predicates share one tolerance:
// Sign reports the tolerance trichotomy of a, IsZero is Sign(a) == 0, and
// Eq(a, b) is IsZero(a − b).
type Field[T any] interface {
	// Zero returns the additive identity.
	Zero() T
	// One returns the multiplicative identity.
	One() T
	// Add returns a + b.
	Add(a, b T) T
	// Sub returns a - b.
	Sub(a, b T) T
	// Mul returns a * b.
	Mul(a, b T) T
	// Div returns a / b. The caller must ensure b is not (tolerance) zero.
	Div(a, b T) T
	// Neg returns -a.
	Neg(a T) T
	// Copy returns an independent copy of a.
	Copy(a T) T
	// Sign returns -1, 0, or +1; values within tolerance of zero report 0.
	Sign(a T) int
	// IsZero reports whether a is within tolerance of zero.
	IsZero(a T) bool
	// Eq reports whether a and b are equal within tolerance.
	Eq(a, b T) bool
}

// Dot returns the inner product a·b over f.
// Contract: len(a) == len(b); validated by the callers in dd.
// Complexity: Time O(d), Space O(1) scalar temporaries.
func Dot[T any](f Field[T], a, b []T) T {
	var acc = f.Zero() // running sum
	var i int          // loop iterator
	for i = 0; i < len(a); i++ {
		acc = f.Add(acc, f.Mul(a[i], b[i]))
	}

	return acc
}

// Clone returns a deep copy of v (element-wise Copy, fresh backing slice).
func Clone[T any](f Field[T], v []T) []T {
	var out = make([]T, len(v))
	var i int
	for i = 0; i < len(v); i++ {
		out[i] = f.Copy(v[i])
	}

	return out
}

// AddScaled returns a fresh vector a + c*b.
// Contract: len(a) == len(b).
func AddScaled[T any](f Field[T], a []T, c T, b []T) []T {
	var out = make([]T, len(a))
	var i int
	for i = 0; i < len(a); i++ {
		out[i] = f.Add(a[i], f.Mul(c, b[i]))
	}

	return out
}

// Scale returns a fresh vector c*v.
func Scale[T any](f Field[T], c T, v []T) []T {
	var out = make([]T, len(v))
	var i int
	for i = 0; i < len(v); i++ {
		out[i] = f.Mul(c, v[i])
	}

	return out
}

// IsZeroVec reports whether every component of v is tolerance-zero.
func IsZeroVec[T any](f Field[T], v []T) bool {
	var i int
	for i = 0; i < len(v); i++ {
		if !f.IsZero(v[i]) {
			return false
		}
	}

	return true
}

// Unit returns the i-th canonical basis vector of dimension d.
func Unit[T any](f Field[T], d, i int) []T {
	var out = make([]T, d)
	var j int
	for j = 0; j < d; j++ {
		out[j] = f.Zero()
	}
	out[i] = f.One()

	return out
}

// Canonicalize rescales a ray direction in place to its canonical scale:
// every component is divided by the absolute value of the first nonzero
// component. Only positive scaling is applied, so the direction (and every
// tight-constraint relation) is preserved. Zero vectors pass through
// unchanged. Returns v for chaining.
//
// The canonical scale prevents coefficient growth across many ray-ray
// combinations (exact fields) and keeps float magnitudes comparable.
func Canonicalize[T any](f Field[T], v []T) []T {
	var pivot T    // first nonzero component
	var found bool // whether a pivot exists
	var i int
	for i = 0; i < len(v); i++ {
		if !f.IsZero(v[i]) {
			pivot = v[i]
			found = true

			break
		}
	}
	if !found {
		return v
	}
	if f.Sign(pivot) < 0 {
		pivot = f.Neg(pivot) // |pivot|: keep scaling positive
	}
	for i = 0; i < len(v); i++ {
		v[i] = f.Div(v[i], pivot)
	}

	return v
}

// CanonicalizeLine rescales a line direction in place: canonical scale as in
// Canonicalize, then the overall sign is fixed so the first nonzero component
// is positive. Lines are direction-agnostic, so sign flips are allowed here
// (and only here). Returns v for chaining.
func CanonicalizeLine[T any](f Field[T], v []T) []T {
	Canonicalize(f, v)
	var i int
	for i = 0; i < len(v); i++ {
		if f.IsZero(v[i]) {
			continue
		}
		if f.Sign(v[i]) < 0 {
			var j int
			for j = 0; j < len(v); j++ {
				v[j] = f.Neg(v[j])
			}
		}

		break
	}

	return v
}

// Package field defines the numeric collaborators injected into the Double
// Description engine: a scalar Field abstraction with tolerance predicates,
// dense-vector kernels over any Field, canonical-form normalization for rays
// and lines, and numeric-type promotion.
//
// What
//
//   - Field[T] — the closed arithmetic contract (Add/Sub/Mul/Div/Neg plus
//     Zero/One/Copy) together with the three injected predicates the engine
//     relies on: Sign (tolerance trichotomy), IsZero (approximate zero), and
//     Eq (approximate equality). All three share a single tolerance.
//   - Float64 — Field[float64] with an explicit epsilon; comparisons delegate
//     to mgl64.FloatEqualThreshold.
//   - Rat — Field[*big.Rat] with exact arithmetic and zero tolerance.
//   - Vector kernels: Dot, Clone, AddScaled, Scale, IsZeroVec, Canonicalize,
//     CanonicalizeLine, Unit.
//   - Promotion: RatFromInt64 / RatVec / RatVecs lift machine integers into
//     exact rationals; WidenVec lifts float32 input into float64. Fields that
//     already represent affine combinations without loss pass through
//     unchanged.
//
// Why
//
//	The engine never touches raw arithmetic: every dot product, combination
//	coefficient, and classification goes through a Field value, so the same
//	fold loop runs exactly over *big.Rat and approximately over float64.
//
// Determinism
//
//	All kernels use fixed left-to-right loops; no data-dependent ordering.
package field

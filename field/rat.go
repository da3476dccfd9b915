package field

import "math/big"

// Rat is the exact Field over *big.Rat. Arithmetic allocates fresh values;
// the tolerance is zero, so Sign/IsZero/Eq are exact comparisons.
//
// Rat is the promotion target for machine-integer input: integers cannot
// represent the convex-combination coefficients the engine produces, exact
// rationals can.
type Rat struct{}

// NewRat returns the exact rational field.
func NewRat() Rat { return Rat{} }

// Zero returns a fresh 0/1.
func (Rat) Zero() *big.Rat { return new(big.Rat) }

// One returns a fresh 1/1.
func (Rat) One() *big.Rat { return big.NewRat(1, 1) }

// Add returns a fresh a + b.
func (Rat) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }

// Sub returns a fresh a - b.
func (Rat) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }

// Mul returns a fresh a * b.
func (Rat) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }

// Div returns a fresh a / b. b must be nonzero.
func (Rat) Div(a, b *big.Rat) *big.Rat { return new(big.Rat).Quo(a, b) }

// Neg returns a fresh -a.
func (Rat) Neg(a *big.Rat) *big.Rat { return new(big.Rat).Neg(a) }

// Copy returns an independent copy of a.
func (Rat) Copy(a *big.Rat) *big.Rat { return new(big.Rat).Set(a) }

// Sign returns the exact sign of a.
func (Rat) Sign(a *big.Rat) int { return a.Sign() }

// IsZero reports a == 0 exactly.
func (Rat) IsZero(a *big.Rat) bool { return a.Sign() == 0 }

// Eq reports a == b exactly.
func (Rat) Eq(a, b *big.Rat) bool { return a.Cmp(b) == 0 }

// RatFromInt64 promotes one machine integer to an exact rational.
func RatFromInt64(n int64) *big.Rat { return big.NewRat(n, 1) }

// RatVec promotes an integer vector to an exact rational vector.
func RatVec(v []int64) []*big.Rat {
	var out = make([]*big.Rat, len(v))
	var i int
	for i = 0; i < len(v); i++ {
		out[i] = RatFromInt64(v[i])
	}

	return out
}

// RatVecs promotes a batch of integer vectors to exact rational vectors.
func RatVecs(vs [][]int64) [][]*big.Rat {
	var out = make([][]*big.Rat, len(vs))
	var i int
	for i = 0; i < len(vs); i++ {
		out[i] = RatVec(vs[i])
	}

	return out
}

package field

import "github.com/go-gl/mathgl/mgl64"

// DefaultEps is the shared tolerance used by NewFloat64.
// Inputs whose constraints differ by less than this are indistinguishable.
const DefaultEps = 1e-9

// Float64 is the approximate Field over float64. All three predicates share
// the single Eps tolerance; arithmetic is plain IEEE-754.
//
// The zero value has Eps == 0 (exact comparison) — use NewFloat64 unless a
// strict field is genuinely wanted.
type Float64 struct {
	// Eps is the absolute tolerance for Sign/IsZero/Eq.
	Eps float64
}

// NewFloat64 returns a Float64 field with the default tolerance.
func NewFloat64() Float64 { return Float64{Eps: DefaultEps} }

// NewFloat64Eps returns a Float64 field with an explicit tolerance.
func NewFloat64Eps(eps float64) Float64 { return Float64{Eps: eps} }

// Zero returns 0.
func (f Float64) Zero() float64 { return 0 }

// One returns 1.
func (f Float64) One() float64 { return 1 }

// Add returns a + b.
func (f Float64) Add(a, b float64) float64 { return a + b }

// Sub returns a - b.
func (f Float64) Sub(a, b float64) float64 { return a - b }

// Mul returns a * b.
func (f Float64) Mul(a, b float64) float64 { return a * b }

// Div returns a / b.
func (f Float64) Div(a, b float64) float64 { return a / b }

// Neg returns -a.
func (f Float64) Neg(a float64) float64 { return -a }

// Copy returns a (float64 is a value type).
func (f Float64) Copy(a float64) float64 { return a }

// Sign returns the tolerance trichotomy of a.
func (f Float64) Sign(a float64) int {
	if f.IsZero(a) {
		return 0
	}
	if a > 0 {
		return 1
	}

	return -1
}

// IsZero reports |a| ≤ Eps via mgl64's threshold comparison.
func (f Float64) IsZero(a float64) bool { return mgl64.FloatEqualThreshold(a, 0, f.Eps) }

// Eq reports |a-b| ≤ Eps via mgl64's threshold comparison.
func (f Float64) Eq(a, b float64) bool { return mgl64.FloatEqualThreshold(a, b, f.Eps) }

// WidenVec lifts a float32 vector into float64, the promotion contract for
// narrow float input: a wider float represents the engine's affine
// combinations with less precision loss.
func WidenVec(v []float32) []float64 {
	var out = make([]float64, len(v))
	var i int
	for i = 0; i < len(v); i++ {
		out[i] = float64(v[i])
	}

	return out
}

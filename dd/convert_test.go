// Package dd_test contains unit tests for the H↔V conversion facades.
package dd_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyhedra/dd"
	"github.com/katalvlaran/polyhedra/field"
)

// unitSquare is 0 ≤ x ≤ 1, 0 ≤ y ≤ 1 as four halfspace rows.
func unitSquare() []dd.Halfspace[float64] {
	return []dd.Halfspace[float64]{
		{Normal: []float64{-1, 0}, Offset: 0},
		{Normal: []float64{1, 0}, Offset: 1},
		{Normal: []float64{0, -1}, Offset: 0},
		{Normal: []float64{0, 1}, Offset: 1},
	}
}

// unitCube is the axis-aligned unit cube in dimension d as 2d halfspace rows.
func unitCube(d int) []dd.Halfspace[float64] {
	var rows []dd.Halfspace[float64]
	var i, j int
	for i = 0; i < d; i++ {
		lo := make([]float64, d)
		hi := make([]float64, d)
		for j = 0; j < d; j++ {
			lo[j], hi[j] = 0, 0
		}
		lo[i], hi[i] = -1, 1
		rows = append(rows,
			dd.Halfspace[float64]{Normal: lo, Offset: 0},
			dd.Halfspace[float64]{Normal: hi, Offset: 1})
	}

	return rows
}

// requireFeasible asserts that every enumerated generator satisfies h: points
// within every constraint, rays and lines in (the lineality of) the recession
// cone.
func requireFeasible(t *testing.T, f field.Float64, h dd.HRep[float64], v dd.VRep[float64]) {
	t.Helper()
	for _, p := range v.Points {
		for _, hp := range h.Hyperplanes {
			require.Equal(t, 0, f.Sign(field.Dot(f, hp.Normal, p)-hp.Offset))
		}
		for _, hs := range h.Halfspaces {
			require.LessOrEqual(t, f.Sign(field.Dot(f, hs.Normal, p)-hs.Offset), 0)
		}
	}
	for _, r := range v.Rays {
		for _, hp := range h.Hyperplanes {
			require.Equal(t, 0, f.Sign(field.Dot(f, hp.Normal, r)))
		}
		for _, hs := range h.Halfspaces {
			require.LessOrEqual(t, f.Sign(field.Dot(f, hs.Normal, r)), 0)
		}
	}
	for _, l := range v.Lines {
		for _, hp := range h.Hyperplanes {
			require.Equal(t, 0, f.Sign(field.Dot(f, hp.Normal, l)))
		}
		for _, hs := range h.Halfspaces {
			require.Equal(t, 0, f.Sign(field.Dot(f, hs.Normal, l)))
		}
	}
}

// TestToVRep_UnitSquare enumerates the four corners of the unit square.
func TestToVRep_UnitSquare(t *testing.T) {
	f := field.NewFloat64()
	h := dd.HRep[float64]{Halfspaces: unitSquare()}

	v, err := dd.ToVRep(f, h)
	require.NoError(t, err)
	require.ElementsMatch(t, [][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, v.Points)
	require.Empty(t, v.Rays)
	require.Empty(t, v.Lines)
	requireFeasible(t, f, h, v)
}

// TestToVRep_OrderInvariance folds the square's constraints in several
// different orders and expects the same corner set each time.
func TestToVRep_OrderInvariance(t *testing.T) {
	f := field.NewFloat64()
	base := unitSquare()
	for _, perm := range [][]int{
		{0, 1, 2, 3},
		{3, 2, 1, 0},
		{1, 3, 0, 2},
		{2, 0, 3, 1},
	} {
		rows := make([]dd.Halfspace[float64], len(perm))
		for i, idx := range perm {
			rows[i] = base[idx]
		}
		v, err := dd.ToVRep(f, dd.HRep[float64]{Halfspaces: rows})
		require.NoError(t, err)
		require.ElementsMatch(t, [][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, v.Points,
			"order %v", perm)
		require.Empty(t, v.Rays)
		require.Empty(t, v.Lines)
	}
}

// TestToVRep_RedundantConstraint adds x ≤ 2 (implied by x ≤ 1) in several
// positions; the output must not change.
func TestToVRep_RedundantConstraint(t *testing.T) {
	f := field.NewFloat64()
	extra := dd.Halfspace[float64]{Normal: []float64{1, 0}, Offset: 2}
	for _, at := range []int{0, 2, 4} {
		rows := make([]dd.Halfspace[float64], 0, 5)
		rows = append(rows, unitSquare()[:at]...)
		rows = append(rows, extra)
		rows = append(rows, unitSquare()[at:]...)

		v, err := dd.ToVRep(f, dd.HRep[float64]{Halfspaces: rows})
		require.NoError(t, err)
		require.ElementsMatch(t, [][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, v.Points,
			"redundant row at %d", at)
		require.Empty(t, v.Rays)
		require.Empty(t, v.Lines)
	}
}

// TestToVRep_UnitCube enumerates the eight corners of the 3-cube.
func TestToVRep_UnitCube(t *testing.T) {
	f := field.NewFloat64()
	h := dd.HRep[float64]{Halfspaces: unitCube(3)}

	v, err := dd.ToVRep(f, h)
	require.NoError(t, err)
	require.ElementsMatch(t, [][]float64{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1},
		{1, 1, 0}, {1, 0, 1}, {0, 1, 1}, {1, 1, 1},
	}, v.Points)
	require.Empty(t, v.Rays)
	require.Empty(t, v.Lines)
	requireFeasible(t, f, h, v)
}

// TestToVRep_Triangle checks a non-axis-aligned facet: x ≥ 0, y ≥ 0, x+y ≤ 1.
func TestToVRep_Triangle(t *testing.T) {
	f := field.NewFloat64()
	h := dd.HRep[float64]{Halfspaces: []dd.Halfspace[float64]{
		{Normal: []float64{-1, 0}, Offset: 0},
		{Normal: []float64{0, -1}, Offset: 0},
		{Normal: []float64{1, 1}, Offset: 1},
	}}

	v, err := dd.ToVRep(f, h)
	require.NoError(t, err)
	require.ElementsMatch(t, [][]float64{{0, 0}, {1, 0}, {0, 1}}, v.Points)
	require.Empty(t, v.Rays)
	require.Empty(t, v.Lines)
}

// TestToVRep_Empty converts the infeasible system x ≤ 0 ∧ x ≥ 1.
func TestToVRep_Empty(t *testing.T) {
	f := field.NewFloat64()
	v, err := dd.ToVRep(f, dd.HRep[float64]{Halfspaces: []dd.Halfspace[float64]{
		{Normal: []float64{1}, Offset: 0},
		{Normal: []float64{-1}, Offset: -1},
	}})
	require.NoError(t, err)
	require.True(t, v.IsEmpty())
	require.Empty(t, v.Rays, "an empty polyhedron carries no rays")
	require.Empty(t, v.Lines, "an empty polyhedron carries no lines")
}

// TestToVRep_Halfplane converts the single constraint x ≥ 0 in the plane: one
// anchor point, one ray along +x, one free line along y.
func TestToVRep_Halfplane(t *testing.T) {
	f := field.NewFloat64()
	h := dd.HRep[float64]{Halfspaces: []dd.Halfspace[float64]{
		{Normal: []float64{-1, 0}, Offset: 0},
	}}

	v, err := dd.ToVRep(f, h)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 0}}, v.Points)
	require.Equal(t, [][]float64{{1, 0}}, v.Rays)
	require.Equal(t, [][]float64{{0, 1}}, v.Lines)
	requireFeasible(t, f, h, v)
}

// TestToVRep_HyperplaneSegment intersects the line x+y = 1 with the positive
// quadrant: the segment between (1,0) and (0,1).
func TestToVRep_HyperplaneSegment(t *testing.T) {
	f := field.NewFloat64()
	h := dd.HRep[float64]{
		Hyperplanes: []dd.Hyperplane[float64]{
			{Normal: []float64{1, 1}, Offset: 1},
		},
		Halfspaces: []dd.Halfspace[float64]{
			{Normal: []float64{-1, 0}, Offset: 0},
			{Normal: []float64{0, -1}, Offset: 0},
		},
	}

	v, err := dd.ToVRep(f, h)
	require.NoError(t, err)
	require.ElementsMatch(t, [][]float64{{1, 0}, {0, 1}}, v.Points)
	require.Empty(t, v.Rays)
	require.Empty(t, v.Lines)
	requireFeasible(t, f, h, v)
}

// TestToVRep_Rational runs the square exactly over *big.Rat.
func TestToVRep_Rational(t *testing.T) {
	f := field.NewRat()
	normals := field.RatVecs([][]int64{{-1, 0}, {1, 0}, {0, -1}, {0, 1}})
	offsets := field.RatVec([]int64{0, 1, 0, 1})
	h := dd.HRep[*big.Rat]{}
	for i := range normals {
		h.Halfspaces = append(h.Halfspaces, dd.Halfspace[*big.Rat]{
			Normal: normals[i],
			Offset: offsets[i],
		})
	}

	v, err := dd.ToVRep(f, h)
	require.NoError(t, err)
	require.Empty(t, v.Rays)
	require.Empty(t, v.Lines)

	var got []string
	for _, p := range v.Points {
		got = append(got, p[0].RatString()+","+p[1].RatString())
	}
	require.ElementsMatch(t, []string{"0,0", "1,0", "0,1", "1,1"}, got)
}

// TestToVRep_RationalDegenerate runs the degenerate fixtures exactly: the
// infeasible system x ≤ 0 ∧ x ≥ 1 and the unbounded half-plane x ≥ 0.
func TestToVRep_RationalDegenerate(t *testing.T) {
	f := field.NewRat()

	t.Run("empty", func(t *testing.T) {
		v, err := dd.ToVRep(f, dd.HRep[*big.Rat]{Halfspaces: []dd.Halfspace[*big.Rat]{
			{Normal: field.RatVec([]int64{1}), Offset: field.RatFromInt64(0)},
			{Normal: field.RatVec([]int64{-1}), Offset: field.RatFromInt64(-1)},
		}})
		require.NoError(t, err)
		require.True(t, v.IsEmpty())
		require.Empty(t, v.Rays)
		require.Empty(t, v.Lines)
	})

	t.Run("halfplane", func(t *testing.T) {
		v, err := dd.ToVRep(f, dd.HRep[*big.Rat]{Halfspaces: []dd.Halfspace[*big.Rat]{
			{Normal: field.RatVec([]int64{-1, 0}), Offset: field.RatFromInt64(0)},
		}})
		require.NoError(t, err)
		require.Len(t, v.Points, 1)
		require.Len(t, v.Rays, 1)
		require.Len(t, v.Lines, 1)
		require.Equal(t, "0,0", v.Points[0][0].RatString()+","+v.Points[0][1].RatString())
		require.Equal(t, "1,0", v.Rays[0][0].RatString()+","+v.Rays[0][1].RatString())
		require.Equal(t, "0,1", v.Lines[0][0].RatString()+","+v.Lines[0][1].RatString())
	})
}

// TestToVRep_ValidationErrors covers the input sentinels behind the facade.
func TestToVRep_ValidationErrors(t *testing.T) {
	f := field.NewFloat64()
	for _, tc := range []struct {
		name string
		h    dd.HRep[float64]
		want error
	}{
		{
			name: "no constraints",
			h:    dd.HRep[float64]{},
			want: dd.ErrNoConstraints,
		},
		{
			name: "dimension mismatch",
			h: dd.HRep[float64]{Halfspaces: []dd.Halfspace[float64]{
				{Normal: []float64{1, 0}, Offset: 1},
				{Normal: []float64{1}, Offset: 1},
			}},
			want: dd.ErrDimensionMismatch,
		},
		{
			name: "zero normal",
			h: dd.HRep[float64]{Halfspaces: []dd.Halfspace[float64]{
				{Normal: []float64{0, 0}, Offset: 1},
			}},
			want: dd.ErrZeroNormal,
		},
		{
			name: "zero-length normal",
			h: dd.HRep[float64]{Hyperplanes: []dd.Hyperplane[float64]{
				{Normal: nil, Offset: 0},
			}},
			want: dd.ErrDimensionMismatch,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dd.ToVRep(f, tc.h)
			require.Error(t, err)
			require.True(t, errors.Is(err, tc.want), "got %v", err)
			require.ErrorContains(t, err, "ToVRep")
		})
	}
}

// Package polyhedra converts between the two dual descriptions of a convex
// polyhedron: the H-representation (a finite system of linear equalities and
// inequalities) and the V-representation (its vertices, extreme rays, and
// free line directions).
//
// 🚀 What is polyhedra?
//
//	A small, exact-or-approximate polyhedral computation library built around
//	the Double Description method:
//	  • field/ — pluggable numeric fields: tolerance-based float64 or exact
//	    rationals (*big.Rat), plus dense-vector primitives and canonical forms
//	  • dd/    — the conversion engine: incremental halfspace folding, a
//	    bitset-based combinatorial adjacency test, degenerate line handling,
//	    and a redundancy-cleanup pass
//
// ✨ Why choose polyhedra?
//
//   - Minimal API — two operations: dd.ToVRep and dd.ToHRep
//   - Deterministic — fixed fold order, reproducible output sets
//   - Field-generic — the same engine runs over float64 and *big.Rat
//   - Degeneracy-aware — empty and unbounded polyhedra are results, not errors
//
// Quick ASCII example:
//
//	    (0,1)───(1,1)
//	      │       │        the unit square: four halfspaces in,
//	      │       │        four corner points out
//	    (0,0)───(1,0)
//
// Dive into dd/doc.go for the algorithm walkthrough and field/doc.go for the
// numeric contracts.
//
//	go get github.com/katalvlaran/polyhedra
package polyhedra

// Package dd converts a convex polyhedron between its H-representation
// (hyperplanes and halfspaces) and its V-representation (points, rays, and
// free lines) with the Double Description method.
//
// What
//
//   - ToVRep folds the constraint system one hyperplane/halfspace at a time
//     into an incremental state seeded with the universal V-representation
//     (the origin plus one free line per dimension). After folding constraints
//     0..k, the active points/rays/lines are exactly the V-representation of
//     the intersection of constraints 0..k.
//   - Each fold classifies every active element as inside, on the boundary,
//     or outside. Outside elements are archived under the constraint's cutoff
//     bucket and paired with inside survivors; pairs passing a bitset-based
//     adjacency test are combined into new boundary elements.
//   - Free line directions are handled first: a constraint with a nonzero
//     product against a line absorbs it (at most one per constraint), slides
//     every active element onto its boundary, and — for a halfspace — keeps
//     the feasible half of the line as a new ray.
//   - A backward cleanup pass purges constraints that excluded nothing,
//     recombines boundary pairs split across cutoff buckets, and releases the
//     per-constraint bookkeeping.
//   - ToHRep runs the same engine on the homogenized dual cone: one dimension
//     higher, points become halfspace rows (−1, p), rays (0, r), lines become
//     hyperplane rows (0, l); resulting rays read back as halfspaces a·x ≤ β.
//
// Why
//
//	Every higher-level polyhedral operation (intersection, projection,
//	redundancy testing) reduces to this conversion. The adjacency test
//	substitutes a cheap zero-set intersection cardinality for rank
//	certificates, which is what makes the incremental construction practical.
//
// Adjacency
//
//	Two boundary elements are adjacent iff the number of constraints they are
//	both tight on, plus the free-line count at the combination stage, equals
//	d−1 (pairs involving a point) or d−2 (ray pairs). Zero-sets are bitsets
//	keyed by constraint position; positions 0..e−1 are the hyperplanes
//	(folded first), e..e+m−1 the halfspaces in input order.
//
// Determinism
//
//	Single-threaded batch computation, fixed fold order, no I/O. The output
//	point/ray/line sets do not depend on the constraint order (up to
//	tolerance and canonical scaling); enumeration order is unspecified.
//
// Errors
//
//	Empty and unbounded polyhedra are valid results. ErrNoPoints rejects a
//	pointless V-representation in ToHRep; validation sentinels reject
//	malformed input; InvariantError reports internal numeric defects with the
//	offending constraint position and cutoff references.
//
// Complexity
//
//	Worst case exponential in d like every Double Description variant; the
//	per-pair adjacency test is O(total constraints / word size).
package dd

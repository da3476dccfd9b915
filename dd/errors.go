package dd

import (
	"errors"
	"fmt"
)

// Sentinel errors for conversion input validation and internal defects.
var (
	// ErrNoPoints indicates a V-representation without a single point was
	// passed to ToHRep; there is no anchor for the affine hull.
	ErrNoPoints = errors.New("dd: V-representation must contain at least one point")
	// ErrNoConstraints indicates an H-representation with no rows, from which
	// no ambient dimension can be inferred.
	ErrNoConstraints = errors.New("dd: cannot infer dimension from an empty system")
	// ErrDimensionMismatch indicates constraint or generator vectors of
	// differing (or zero) length.
	ErrDimensionMismatch = errors.New("dd: vectors must share one positive dimension")
	// ErrZeroNormal indicates a halfspace or hyperplane with an all-zero normal.
	ErrZeroNormal = errors.New("dd: constraint normal must be nonzero")
	// ErrZeroDirection indicates a ray or line with an all-zero direction.
	ErrZeroDirection = errors.New("dd: ray and line directions must be nonzero")
	// ErrInvariant indicates combination was invoked on a pair whose
	// evaluations are not of definite opposite sign. This is an internal
	// defect, not a property of the input.
	ErrInvariant = errors.New("dd: combination requires definite opposite signs")
)

// activeBucket is the cutoff sentinel for elements never excluded.
const activeBucket = -1

// InvariantError carries the diagnostic context of an internal invariant
// violation: the constraint position being folded and the cutoff references
// of the offending pair (activeBucket for still-active elements). It matches
// ErrInvariant under errors.Is.
type InvariantError struct {
	// Stage is the constraint position whose fold detected the defect.
	Stage int
	// Cutoffs are the archive buckets of the two offending elements.
	Cutoffs [2]int
}

// Error formats the diagnostic in a stable single-line shape.
func (e *InvariantError) Error() string {
	return fmt.Sprintf("dd: invariant violation at constraint %d (cutoffs %d, %d)",
		e.Stage, e.Cutoffs[0], e.Cutoffs[1])
}

// Unwrap lets errors.Is(err, ErrInvariant) succeed.
func (e *InvariantError) Unwrap() error { return ErrInvariant }

// Operation tags for unified error wrapping at the public facades.
const (
	opToV = "ToVRep"
	opToH = "ToHRep"
)

// ddErrorf wraps err with an operation tag, preserving the cause via %w.
func ddErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

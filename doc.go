// Package airfoil provides the geometry for working with 2D airfoil
// cross-sections: arc-length parameterization of polylines, fixed-count
// resampling, and linear morphing between airfoils.
//
// # Surfaces
//
// An [Airfoil] is stored as two [Polyline] values in chord-normalized
// coordinates, with the leading edge at (0, 0) and the trailing edge at
// (1, 0). The upper surface runs from the trailing edge to the leading edge and
// the lower surface runs back from the leading edge to the trailing edge, so
// that concatenating them (dropping the shared leading edge once) yields the
// conventional coordinate-file ordering. [FromPoints] performs that split for
// a flat list of points and normalizes the trailing edge, reporting every
// coordinate it had to change.
//
// # Resampling
//
// Airfoils from different sources rarely share a point distribution.
// [Polyline.Resample] redistributes a surface to a given number of points at
// uniform fractions of its arc length while keeping its endpoints exact. The
// upper and lower surfaces are resampled independently; the leading edge is
// not assumed to sit at any particular fraction of the combined outline.
//
// # Morphing
//
// [Morph] blends two airfoils whose surfaces have identical point counts,
// typically after resampling both to the same count:
//
//	a, _ = a.Resample(60)
//	b, _ = b.Resample(60)
//	mid, err := airfoil.Morph(a, b, 0.5)
//
// # Errors
//
// Every error wraps one of [ErrInvalidArgument], [ErrShapeMismatch] or
// [ErrMalformedInput].
//
// All functions are free of shared state and safe to call concurrently on
// distinct values. Only [Airfoil.AdjustChord] mutates its receiver.
package airfoil

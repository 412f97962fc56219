package airfoil

import "github.com/pkg/errors"

// Morph linearly blends two airfoils point by point. Each output point is
// a[i] + t·(b[i] − a[i]), so t = 0 yields a's geometry and t = 1 yields b's.
//
// Both airfoils must already share their sampling: a.Upper and b.Upper must
// have the same number of points, as must a.Lower and b.Lower. Morph does not
// resample; use [Airfoil.Resample] first.
//
// The result is a synthetic shape with no name and the default chord.
func Morph(a, b *Airfoil, t float64) (*Airfoil, error) {
	if a == nil || b == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "morph of nil airfoil")
	}
	if !(t >= 0 && t <= 1) {
		return nil, errors.Wrapf(ErrInvalidArgument, "blend factor %g outside [0, 1]", t)
	}
	if len(a.Upper) != len(b.Upper) || len(a.Lower) != len(b.Lower) {
		return nil, errors.Wrapf(ErrShapeMismatch,
			"upper surfaces have %d and %d points, lower surfaces %d and %d",
			len(a.Upper), len(b.Upper), len(a.Lower), len(b.Lower))
	}
	return &Airfoil{
		Chord: DefaultChord,
		Upper: lerpPolyline(a.Upper, b.Upper, t),
		Lower: lerpPolyline(a.Lower, b.Lower, t),
	}, nil
}

// MorphPolyline blends two polylines of equal length point by point.
func MorphPolyline(a, b Polyline, t float64) (Polyline, error) {
	if !(t >= 0 && t <= 1) {
		return nil, errors.Wrapf(ErrInvalidArgument, "blend factor %g outside [0, 1]", t)
	}
	if len(a) != len(b) {
		return nil, errors.Wrapf(ErrShapeMismatch, "polylines have %d and %d points", len(a), len(b))
	}
	return lerpPolyline(a, b, t), nil
}

// lerpPolyline blends two polylines of equal length. At t = 1 it returns a copy
// of b, avoiding the rounding in a + 1·(b − a).
func lerpPolyline(a, b Polyline, t float64) Polyline {
	if t == 1 {
		return b.Clone()
	}
	out := make(Polyline, len(a))
	for i := range a {
		out[i] = a[i].Lerp(b[i], t)
	}
	return out
}

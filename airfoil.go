package airfoil

import (
	"math"

	"github.com/pkg/errors"
)

// DefaultChord is the chord length of an airfoil in normalized coordinates.
const DefaultChord = 1.0

// Surface identifies one of the two surfaces of an airfoil.
type Surface int

const (
	Upper Surface = iota
	Lower
)

func (s Surface) String() string {
	switch s {
	case Upper:
		return "upper"
	case Lower:
		return "lower"
	default:
		return "Surface(?)"
	}
}

// Airfoil is a 2D airfoil cross-section described by two polylines. Upper runs
// from the trailing edge to the leading edge, Lower from the leading edge back
// to the trailing edge; both share the leading-edge point.
//
// An Airfoil exclusively owns its surfaces. Operations other than
// [Airfoil.AdjustChord] return new airfoils and leave their inputs unchanged.
type Airfoil struct {
	Name  string
	Chord float64
	Upper Polyline
	Lower Polyline
}

// New returns an airfoil with the default chord and copies of the given
// surfaces.
func New(name string, upper, lower Polyline) *Airfoil {
	return &Airfoil{
		Name:  name,
		Chord: DefaultChord,
		Upper: upper.Clone(),
		Lower: lower.Clone(),
	}
}

// Clone returns a deep copy of a.
func (a *Airfoil) Clone() *Airfoil {
	return &Airfoil{
		Name:  a.Name,
		Chord: a.Chord,
		Upper: a.Upper.Clone(),
		Lower: a.Lower.Clone(),
	}
}

// Surface returns the polyline for s.
func (a *Airfoil) Surface(s Surface) Polyline {
	if s == Lower {
		return a.Lower
	}
	return a.Upper
}

// Resample returns a new airfoil whose surfaces have each been resampled to
// count points with [Polyline.Resample]. The two surfaces are resampled
// independently, each in its own arc-length space. Name and chord are kept.
func (a *Airfoil) Resample(count int) (*Airfoil, error) {
	upper, err := a.Upper.Resample(count)
	if err != nil {
		return nil, errors.Wrap(err, "upper surface")
	}
	lower, err := a.Lower.Resample(count)
	if err != nil {
		return nil, errors.Wrap(err, "lower surface")
	}
	return &Airfoil{
		Name:  a.Name,
		Chord: a.Chord,
		Upper: upper,
		Lower: lower,
	}, nil
}

// AdjustChord rescales a in place so that its chord becomes chord. Every point
// of both surfaces is multiplied by chord/a.Chord; point counts and order are
// unchanged.
func (a *Airfoil) AdjustChord(chord float64) error {
	if !(chord > 0) || math.IsInf(chord, 0) {
		return errors.Wrapf(ErrInvalidArgument, "chord length %g must be positive and finite", chord)
	}
	if !(a.Chord > 0) || math.IsInf(a.Chord, 0) {
		return errors.Wrapf(ErrInvalidArgument, "current chord length %g must be positive and finite", a.Chord)
	}
	ratio := chord / a.Chord
	aff := Scale(ratio, ratio)
	for i, pt := range a.Upper {
		a.Upper[i] = pt.Transform(aff)
	}
	for i, pt := range a.Lower {
		a.Lower[i] = pt.Transform(aff)
	}
	a.Chord = chord
	return nil
}

// Transform returns a copy of a with aff applied to both surfaces. The chord is
// not updated; use [Airfoil.AdjustChord] for scaling.
func (a *Airfoil) Transform(aff Affine) *Airfoil {
	return &Airfoil{
		Name:  a.Name,
		Chord: a.Chord,
		Upper: a.Upper.Transform(aff),
		Lower: a.Lower.Transform(aff),
	}
}

// BoundingBox returns the smallest rectangle enclosing both surfaces.
func (a *Airfoil) BoundingBox() Rect {
	return a.Upper.BoundingBox().Union(a.Lower.BoundingBox())
}

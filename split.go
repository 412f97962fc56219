package airfoil

import "github.com/pkg/errors"

var (
	// LeadingEdge is the reference point at which a flat coordinate list is
	// split into its two surfaces.
	LeadingEdge = Point{0, 0}
	// TrailingEdge is the canonical trailing-edge point both surfaces end on.
	TrailingEdge = Point{1, 0}
)

// LeadingEdgeTolerance is the per-coordinate tolerance used when searching for
// [LeadingEdge].
const LeadingEdgeTolerance = 1e-9

// Repair records a trailing-edge coordinate that [FromPoints] overwrote. A
// repair usually points at questionable source data and should be surfaced to
// the user.
type Repair struct {
	Surface Surface
	Index   int
	Old     Point
	New     Point
}

// FromPoints builds an airfoil from a flat list of points running from the
// trailing edge over the upper surface to the leading edge and back along the
// lower surface.
//
// The list is split at the first point within [LeadingEdgeTolerance] of
// [LeadingEdge]; that point is shared by both surfaces. The first point of the
// upper surface and the last point of the lower surface are then forced to
// [TrailingEdge]. Each coordinate that changed is reported as a [Repair].
// Points with NaN or infinite coordinates are rejected.
func FromPoints(name string, pts []Point) (*Airfoil, []Repair, error) {
	if len(pts) < 2 {
		return nil, nil, errors.Wrapf(ErrMalformedInput, "airfoil %q has %d points, need at least 2", name, len(pts))
	}
	for i, pt := range pts {
		if !pt.isFinite() {
			return nil, nil, errors.Wrapf(ErrMalformedInput, "airfoil %q: point %d is %s", name, i, pt)
		}
	}
	split := -1
	for i, pt := range pts {
		if pt.Near(LeadingEdge, LeadingEdgeTolerance) {
			split = i
			break
		}
	}
	if split == -1 {
		return nil, nil, errors.Wrapf(ErrMalformedInput, "airfoil %q has no leading edge point %s", name, LeadingEdge)
	}
	if split == 0 || split == len(pts)-1 {
		return nil, nil, errors.Wrapf(ErrMalformedInput,
			"airfoil %q: leading edge at index %d leaves a surface with a single point", name, split)
	}

	a := New(name, pts[:split+1], pts[split:])
	var repairs []Repair
	if old := a.Upper[0]; old != TrailingEdge {
		a.Upper[0] = TrailingEdge
		repairs = append(repairs, Repair{Surface: Upper, Index: 0, Old: old, New: TrailingEdge})
	}
	if n := len(a.Lower) - 1; a.Lower[n] != TrailingEdge {
		repairs = append(repairs, Repair{Surface: Lower, Index: n, Old: a.Lower[n], New: TrailingEdge})
		a.Lower[n] = TrailingEdge
	}
	return a, repairs, nil
}

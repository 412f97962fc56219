package airfoil

import (
	"slices"
	"sort"

	"github.com/pkg/errors"
)

// Polyline is an ordered, piecewise-linear path. Consecutive points may
// coincide, but arc-length operations require at least two points, finite
// coordinates and a strictly positive total length.
type Polyline []Point

// Clone returns a copy of p that shares no memory with it.
func (p Polyline) Clone() Polyline {
	return slices.Clone(p)
}

// Arclens returns the length of each of the len(p)−1 segments and the
// cumulative arc length at each of the len(p) points. cumulative[0] is 0 and
// cumulative[len(p)−1] is the total length. Zero-length segments contribute 0.
func (p Polyline) Arclens() (segments, cumulative []float64) {
	if len(p) == 0 {
		return nil, nil
	}
	segments = make([]float64, len(p)-1)
	cumulative = make([]float64, len(p))
	for i, l := range p.Segments() {
		segments[i] = l.Length()
		cumulative[i+1] = cumulative[i] + segments[i]
	}
	return segments, cumulative
}

// Arclen returns the total length of p.
func (p Polyline) Arclen() float64 {
	var total float64
	for _, l := range p.Segments() {
		total += l.Length()
	}
	return total
}

// BoundingBox returns the smallest rectangle enclosing every point of p. The
// result for an empty polyline is meaningless.
func (p Polyline) BoundingBox() Rect {
	r := emptyRect
	for _, pt := range p {
		r = r.UnionPoint(pt)
	}
	return r
}

// Transform returns a new polyline with aff applied to every point.
func (p Polyline) Transform(aff Affine) Polyline {
	out := make(Polyline, len(p))
	for i, pt := range p {
		out[i] = pt.Transform(aff)
	}
	return out
}

// Resample returns a new polyline of exactly count points spaced at uniform
// arc-length fractions k/(count−1) of p. The first and last points are copied
// from p rather than interpolated, so they are preserved bit for bit.
func (p Polyline) Resample(count int) (Polyline, error) {
	if count < 2 {
		return nil, errors.Wrapf(ErrInvalidArgument, "resample count %d, need at least 2", count)
	}
	segs, cum, err := p.measure()
	if err != nil {
		return nil, err
	}
	total := cum[len(cum)-1]

	out := make(Polyline, count)
	out[0] = p[0]
	for k := 1; k < count-1; k++ {
		frac := float64(k) / float64(count-1)
		out[k] = p.eval(segs, cum, frac*total)
	}
	out[count-1] = p[len(p)-1]
	return out, nil
}

// PointAt returns the point at the given fraction of p's arc length, using the
// same segment selection as [Polyline.Resample].
func (p Polyline) PointAt(fraction float64) (Point, error) {
	if !(fraction >= 0 && fraction <= 1) {
		return Point{}, errors.Wrapf(ErrInvalidArgument, "arc length fraction %g outside [0, 1]", fraction)
	}
	segs, cum, err := p.measure()
	if err != nil {
		return Point{}, err
	}
	switch fraction {
	case 0:
		return p[0], nil
	case 1:
		return p[len(p)-1], nil
	}
	return p.eval(segs, cum, fraction*cum[len(cum)-1]), nil
}

// measure validates p for arc-length sampling and returns its arc lengths.
func (p Polyline) measure() (segs, cum []float64, err error) {
	if len(p) < 2 {
		return nil, nil, errors.Wrapf(ErrMalformedInput, "polyline has %d points, need at least 2", len(p))
	}
	for i, pt := range p {
		if !pt.isFinite() {
			return nil, nil, errors.Wrapf(ErrMalformedInput, "point %d is %s", i, pt)
		}
	}
	segs, cum = p.Arclens()
	if total := cum[len(cum)-1]; !(total > 0) {
		return nil, nil, errors.Wrapf(ErrMalformedInput, "polyline has total length %g", total)
	}
	return segs, cum, nil
}

// eval returns the point at arc length dist. It interpolates within the
// segment that starts at the last cumulative boundary ≤ dist, so a distance
// landing exactly on a boundary resolves to the start of the following
// segment. Distances past the end, which floating-point error can produce for
// the final fractions, are clamped into the last segment.
func (p Polyline) eval(segs, cum []float64, dist float64) Point {
	i := segmentAt(cum, dist)
	if segs[i] == 0 {
		return p[i]
	}
	t := (dist - cum[i]) / segs[i]
	return Line{p[i], p[i+1]}.Eval(max(0, min(t, 1)))
}

// segmentAt returns the index of the segment starting at the last cumulative
// boundary ≤ dist, clamped to [0, len(cum)−2].
func segmentAt(cum []float64, dist float64) int {
	i := sort.Search(len(cum), func(i int) bool { return cum[i] > dist }) - 1
	return max(0, min(i, len(cum)-2))
}

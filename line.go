package airfoil

import "iter"

// Line is a single segment of a [Polyline].
type Line struct {
	P0 Point
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P0.Distance(l.P1)
}

// Eval returns the point at parameter t, with Eval(0) == P0.
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Segments yields the consecutive segments of p. A polyline with fewer than two
// points has no segments.
func (p Polyline) Segments() iter.Seq2[int, Line] {
	return func(yield func(int, Line) bool) {
		for i := 0; i+1 < len(p); i++ {
			if !yield(i, Line{p[i], p[i+1]}) {
				return
			}
		}
	}
}

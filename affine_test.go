package airfoil

import (
	"math"
	"testing"
)

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNear(t, p.Transform(Identity), p, epsilon)
	assertNear(t, p.Transform(Scale(2, 2)), Pt(6, 8), epsilon)
	assertNear(t, p.Transform(Scale(1, -1)), Pt(3, -4), epsilon)
	assertNear(t, p.Transform(Rotate(math.Pi/2)), Pt(-4, 3), epsilon)
	assertNear(t, p.Transform(Identity.ThenTranslate(Vec(5, 6))), Pt(8, 10), epsilon)
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}

	for _, p := range []Point{Pt(1, 0), Pt(0, 1), Pt(1, 1)} {
		assertNear(t, p.Transform(a2).Transform(a1), p.Transform(a1.Mul(a2)), epsilon)
	}
}

func TestAffineThen(t *testing.T) {
	const epsilon = 1e-9
	// Pitch down by 90° about the leading edge, then move to the rib station.
	aff := Scale(2, 2).ThenRotate(math.Pi / 2).ThenTranslate(Vec(0, 5))
	assertNear(t, Pt(1, 0).Transform(aff), Pt(0, 7), epsilon)
	assertNear(t, Pt(0, 0).Transform(aff), Pt(0, 5), epsilon)
}

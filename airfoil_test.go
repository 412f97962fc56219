package airfoil

import (
	"errors"
	"math"
	"testing"
)

// testAirfoil returns a coarse, slightly cambered airfoil.
func testAirfoil() *Airfoil {
	return New("test",
		Polyline{Pt(1, 0), Pt(0.75, 0.04), Pt(0.5, 0.07), Pt(0.25, 0.08), Pt(0.05, 0.04), Pt(0, 0)},
		Polyline{Pt(0, 0), Pt(0.05, -0.03), Pt(0.3, -0.04), Pt(0.7, -0.02), Pt(1, 0)},
	)
}

func TestNewCopiesSurfaces(t *testing.T) {
	upper := Polyline{Pt(1, 0), Pt(0, 0)}
	lower := Polyline{Pt(0, 0), Pt(1, 0)}
	a := New("flat", upper, lower)
	upper[0] = Pt(5, 5)
	lower[1] = Pt(5, 5)
	diff(t, Polyline{Pt(1, 0), Pt(0, 0)}, a.Upper)
	diff(t, Polyline{Pt(0, 0), Pt(1, 0)}, a.Lower)
	diff(t, DefaultChord, a.Chord)
}

func TestAirfoilClone(t *testing.T) {
	a := testAirfoil()
	b := a.Clone()
	diff(t, a, b)
	b.Upper[1] = Pt(9, 9)
	if a.Upper[1] == b.Upper[1] {
		t.Error("clone shares memory with original")
	}
}

func TestAirfoilSurface(t *testing.T) {
	a := testAirfoil()
	diff(t, a.Upper, a.Surface(Upper))
	diff(t, a.Lower, a.Surface(Lower))
	diff(t, "upper", Upper.String())
	diff(t, "lower", Lower.String())
}

func TestAirfoilResample(t *testing.T) {
	a := testAirfoil()
	a.Chord = 2
	r, err := a.Resample(31)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, "test", r.Name)
	diff(t, 2.0, r.Chord)
	if len(r.Upper) != 31 || len(r.Lower) != 31 {
		t.Fatalf("got %d/%d points, want 31/31", len(r.Upper), len(r.Lower))
	}
	diff(t, TrailingEdge, r.Upper[0])
	diff(t, LeadingEdge, r.Upper[30])
	diff(t, LeadingEdge, r.Lower[0])
	diff(t, TrailingEdge, r.Lower[30])
	// Source untouched.
	diff(t, testAirfoil().Upper, a.Upper)

	if _, err := a.Resample(1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got error %v, want %v", err, ErrInvalidArgument)
	}
	a.Lower = Polyline{Pt(0, 0)}
	if _, err := a.Resample(10); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("got error %v, want %v", err, ErrMalformedInput)
	}
}

func TestAdjustChord(t *testing.T) {
	a := testAirfoil()
	nu, nl := len(a.Upper), len(a.Lower)
	if err := a.AdjustChord(2.5); err != nil {
		t.Fatal(err)
	}
	diff(t, 2.5, a.Chord)
	if len(a.Upper) != nu || len(a.Lower) != nl {
		t.Fatalf("point counts changed")
	}
	want := testAirfoil()
	for i := range a.Upper {
		assertNear(t, a.Upper[i], Pt(want.Upper[i].X*2.5, want.Upper[i].Y*2.5), 1e-12)
	}
	for i := range a.Lower {
		assertNear(t, a.Lower[i], Pt(want.Lower[i].X*2.5, want.Lower[i].Y*2.5), 1e-12)
	}

	if err := a.AdjustChord(1); err != nil {
		t.Fatal(err)
	}
	diff(t, want.Upper, a.Upper, approx(1e-12))
	diff(t, want.Lower, a.Lower, approx(1e-12))
}

func TestAdjustChordErrors(t *testing.T) {
	for _, c := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		a := testAirfoil()
		if err := a.AdjustChord(c); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("AdjustChord(%g): got error %v, want %v", c, err, ErrInvalidArgument)
		}
		diff(t, testAirfoil(), a)
	}

	a := testAirfoil()
	a.Chord = 0
	if err := a.AdjustChord(1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got error %v, want %v", err, ErrInvalidArgument)
	}
}

func TestAirfoilTransform(t *testing.T) {
	a := testAirfoil()
	b := a.Transform(Scale(1, -1))
	for i := range a.Upper {
		diff(t, Pt(a.Upper[i].X, -a.Upper[i].Y), b.Upper[i])
	}
	diff(t, a.Chord, b.Chord)
	diff(t, testAirfoil(), a)
}

func TestAirfoilBoundingBox(t *testing.T) {
	r := testAirfoil().BoundingBox()
	diff(t, Rect{X0: 0, Y0: -0.04, X1: 1, Y1: 0.08}, r)
}

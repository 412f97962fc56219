// Package dat reads and writes airfoil coordinate files: a name on the first
// line followed by one whitespace-separated x y pair per line, running from the
// trailing edge over the upper surface to the leading edge and back along the
// lower surface.
package dat

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"honnef.co/go/airfoil"
)

// Read parses a coordinate file and returns its name and flat point list.
// Blank lines are skipped. Parse errors, including NaN or infinite
// coordinates and overlong lines, carry the offending line number and wrap
// [airfoil.ErrMalformedInput]. Errors from r are returned wrapped as they are.
func Read(r io.Reader) (name string, pts []airfoil.Point, err error) {
	sc := bufio.NewScanner(r)
	line := 0
	haveName := false
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if !haveName {
			name = text
			haveName = true
			continue
		}
		pt, err := parsePoint(text)
		if err != nil {
			return "", nil, errors.Wrapf(err, "line %d", line)
		}
		pts = append(pts, pt)
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return "", nil, errors.Wrapf(airfoil.ErrMalformedInput, "line %d longer than %d bytes", line+1, bufio.MaxScanTokenSize)
		}
		return "", nil, errors.Wrap(err, "reading coordinates")
	}
	if !haveName {
		return "", nil, errors.Wrap(airfoil.ErrMalformedInput, "empty coordinate file")
	}
	return name, pts, nil
}

func parsePoint(text string) (airfoil.Point, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return airfoil.Point{}, errors.Wrapf(airfoil.ErrMalformedInput, "got %d columns, want 2", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return airfoil.Point{}, errors.Wrapf(airfoil.ErrMalformedInput, "x coordinate %q", fields[0])
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return airfoil.Point{}, errors.Wrapf(airfoil.ErrMalformedInput, "y coordinate %q", fields[1])
	}
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return airfoil.Point{}, errors.Wrapf(airfoil.ErrMalformedInput, "non-finite coordinates %q %q", fields[0], fields[1])
	}
	return airfoil.Pt(x, y), nil
}

// Load reads a coordinate file and splits it into an airfoil with
// [airfoil.FromPoints]. The returned repairs should be reported to the user.
func Load(r io.Reader) (*airfoil.Airfoil, []airfoil.Repair, error) {
	name, pts, err := Read(r)
	if err != nil {
		return nil, nil, err
	}
	return airfoil.FromPoints(name, pts)
}

// Write writes a in the format understood by [Read]: the upper surface
// followed by the lower surface, emitting the shared leading edge once.
// Coordinates are written as-is; files are expected to hold chord-normalized
// airfoils, and [Load] snaps the trailing edge back to (1, 0).
func Write(w io.Writer, a *airfoil.Airfoil) error {
	bw := bufio.NewWriter(w)
	name := a.Name
	if name == "" {
		name = "Unnamed airfoil"
	}
	fmt.Fprintln(bw, name)
	for _, pt := range a.Upper {
		fmt.Fprintf(bw, "%.6f %.6f\n", pt.X, pt.Y)
	}
	lower := a.Lower
	if len(lower) > 0 && len(a.Upper) > 0 && lower[0] == a.Upper[len(a.Upper)-1] {
		lower = lower[1:]
	}
	for _, pt := range lower {
		fmt.Fprintf(bw, "%.6f %.6f\n", pt.X, pt.Y)
	}
	return errors.Wrap(bw.Flush(), "writing coordinates")
}

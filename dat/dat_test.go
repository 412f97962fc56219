package dat

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/airfoil"
)

const naca0012 = `NACA 0012
1.000000  0.001260
0.500000  0.052940
0.100000  0.046840

0.000000  0.000000
0.100000 -0.046840
0.500000	-0.052940
1.000000 -0.001260
`

func TestRead(t *testing.T) {
	name, pts, err := Read(strings.NewReader(naca0012))
	require.NoError(t, err)
	assert.Equal(t, "NACA 0012", name)
	require.Len(t, pts, 7)
	assert.Equal(t, airfoil.Pt(1, 0.00126), pts[0])
	assert.Equal(t, airfoil.Pt(0, 0), pts[3])
	assert.Equal(t, airfoil.Pt(0.5, -0.05294), pts[5])
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		msg   string
	}{
		{"empty", "", "empty coordinate file"},
		{"blank", "\n  \n", "empty coordinate file"},
		{"one column", "foil\n1.0 0.0\n0.5\n", "line 3"},
		{"three columns", "foil\n1.0 0.0 0.0\n", "line 2"},
		{"bad x", "foil\nabc 0.0\n", `x coordinate "abc"`},
		{"bad y", "foil\n1.0 0,5\n", `y coordinate "0,5"`},
		{"NaN", "foil\n1 0\nnan 0.05\n0 0\n", "line 3: non-finite coordinates"},
		{"Inf", "foil\n1 0\n0 0\n0.5 inf\n", "line 4: non-finite coordinates"},
		{"negative Inf", "foil\n-Inf 0\n", "line 2: non-finite coordinates"},
		{"overlong line", "foil\n1 0\n" + strings.Repeat("0", bufio.MaxScanTokenSize+1) + " 0\n", "line 3 longer than"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Read(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, airfoil.ErrMalformedInput), "error %v", err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoad(t *testing.T) {
	a, repairs, err := Load(strings.NewReader(naca0012))
	require.NoError(t, err)
	assert.Equal(t, "NACA 0012", a.Name)
	assert.Len(t, a.Upper, 4)
	assert.Len(t, a.Lower, 4)
	assert.Equal(t, airfoil.TrailingEdge, a.Upper[0])
	assert.Equal(t, airfoil.TrailingEdge, a.Lower[3])
	require.Len(t, repairs, 2)
	assert.Equal(t, airfoil.Upper, repairs[0].Surface)
	assert.Equal(t, airfoil.Pt(1, 0.00126), repairs[0].Old)
	assert.Equal(t, airfoil.Lower, repairs[1].Surface)
	assert.Equal(t, 3, repairs[1].Index)
}

func TestLoadWithoutLeadingEdge(t *testing.T) {
	_, _, err := Load(strings.NewReader("foil\n1 0\n0.5 0.1\n0.01 0\n1 0\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, airfoil.ErrMalformedInput))
}

func TestWriteRoundTrip(t *testing.T) {
	a, _, err := Load(strings.NewReader(naca0012))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, a))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "NACA 0012", lines[0])
	assert.Equal(t, "1.000000 0.000000", lines[1])
	assert.Equal(t, "0.000000 0.000000", lines[4])

	b, repairs, err := Load(&buf)
	require.NoError(t, err)
	assert.Empty(t, repairs)
	assert.Equal(t, a, b)
}

func TestWriteUnnamed(t *testing.T) {
	a := airfoil.New("",
		airfoil.Polyline{airfoil.Pt(1, 0), airfoil.Pt(0, 0)},
		airfoil.Polyline{airfoil.Pt(0, 0), airfoil.Pt(1, 0)})
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, a))
	assert.Equal(t, "Unnamed airfoil\n1.000000 0.000000\n0.000000 0.000000\n1.000000 0.000000\n", buf.String())
}

package cli

import (
	"math"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"honnef.co/go/airfoil"
)

func (a *app) scaleCmd() *cobra.Command {
	var (
		out    string
		chord  float64
		angle  float64
		offset []float64
	)
	cmd := &cobra.Command{
		Use:   "scale FILE",
		Short: "Scale an airfoil to a chord length and place it in a drawing",
		Long: `
Scale multiplies every coordinate of the airfoil in FILE so that its chord
becomes --chord. Point counts and ordering are unchanged.

--angle then rotates the profile about its leading edge, in degrees,
anti-clockwise, and --offset moves the leading edge to x,y.

Coordinate files carry no chord, and loading a dat file snaps its trailing
edge back to (1, 0). Use --format geojson when the scaled or placed profile
is meant to be read again; GeoJSON output records the chord.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(offset) != 2 {
				return errors.Wrapf(airfoil.ErrInvalidArgument, "offset needs 2 values, got %d", len(offset))
			}
			af, _, err := a.load(args[0])
			if err != nil {
				return err
			}
			if err := af.AdjustChord(chord); err != nil {
				return errors.Wrapf(err, "scaling %s", args[0])
			}
			if angle != 0 || offset[0] != 0 || offset[1] != 0 {
				af = af.Transform(placement(angle, airfoil.Vec(offset[0], offset[1])))
			}
			return a.output(cmd.OutOrStdout(), out, af)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "Output file. Defaults to stdout.")
	cmd.Flags().Float64Var(&chord, "chord", 1, "Target chord length.")
	cmd.Flags().Float64Var(&angle, "angle", 0, "Rotation about the leading edge in degrees.")
	cmd.Flags().Float64SliceVar(&offset, "offset", []float64{0, 0}, "Leading edge position as x,y.")
	return cmd
}

// placement rotates by deg degrees about the leading edge, then moves the
// leading edge to offset.
func placement(deg float64, offset airfoil.Vec2) airfoil.Affine {
	return airfoil.Identity.ThenRotate(deg * math.Pi / 180).ThenTranslate(offset)
}

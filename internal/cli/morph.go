package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"honnef.co/go/airfoil"
)

func (a *app) morphCmd() *cobra.Command {
	var (
		out string
		t   float64
	)
	cmd := &cobra.Command{
		Use:   "morph FROM TO",
		Short: "Blend two airfoils into an intermediate profile",
		Long: `
Morph resamples both airfoils to --points points per surface and blends them
point by point. A blend factor of 0 reproduces FROM, 1 reproduces TO.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := a.loadPair(args[0], args[1])
			if err != nil {
				return err
			}
			m, err := morphNamed(from, to, t)
			if err != nil {
				return err
			}
			return a.output(cmd.OutOrStdout(), out, m)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "Output file. Defaults to stdout.")
	cmd.Flags().Float64VarP(&t, "t", "t", 0.5, "Blend factor in [0, 1].")
	return cmd
}

func (a *app) loadPair(fromPath, toPath string) (*airfoil.Airfoil, *airfoil.Airfoil, error) {
	from, err := a.loadResampled(fromPath)
	if err != nil {
		return nil, nil, err
	}
	to, err := a.loadResampled(toPath)
	if err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

// morphNamed morphs from into to and names the result after both.
func morphNamed(from, to *airfoil.Airfoil, t float64) (*airfoil.Airfoil, error) {
	m, err := airfoil.Morph(from, to, t)
	if err != nil {
		return nil, errors.Wrapf(err, "morphing %q into %q", from.Name, to.Name)
	}
	m.Name = fmt.Sprintf("%s to %s at %g", from.Name, to.Name, t)
	return m, nil
}

package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type surfaceReport struct {
	Points int     `yaml:"points"`
	Arclen float64 `yaml:"arclen"`
}

type boundsReport struct {
	MinX      float64 `yaml:"min_x"`
	MinY      float64 `yaml:"min_y"`
	MaxX      float64 `yaml:"max_x"`
	MaxY      float64 `yaml:"max_y"`
	Span      float64 `yaml:"span"`
	Thickness float64 `yaml:"thickness"`
}

type repairReport struct {
	Surface string     `yaml:"surface"`
	Index   int        `yaml:"index"`
	Old     [2]float64 `yaml:"old,flow"`
	New     [2]float64 `yaml:"new,flow"`
}

type infoReport struct {
	Name    string         `yaml:"name"`
	Chord   float64        `yaml:"chord"`
	Upper   surfaceReport  `yaml:"upper"`
	Lower   surfaceReport  `yaml:"lower"`
	Bounds  boundsReport   `yaml:"bounds"`
	Repairs []repairReport `yaml:"repairs,omitempty"`
}

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE",
		Short: "Describe an airfoil coordinate file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			af, repairs, err := a.load(args[0])
			if err != nil {
				return err
			}
			bb := af.BoundingBox()
			rep := infoReport{
				Name:  af.Name,
				Chord: af.Chord,
				Upper: surfaceReport{Points: len(af.Upper), Arclen: af.Upper.Arclen()},
				Lower: surfaceReport{Points: len(af.Lower), Arclen: af.Lower.Arclen()},
				Bounds: boundsReport{
					MinX:      bb.X0,
					MinY:      bb.Y0,
					MaxX:      bb.X1,
					MaxY:      bb.Y1,
					Span:      bb.Width(),
					Thickness: bb.Height(),
				},
			}
			for _, r := range repairs {
				rep.Repairs = append(rep.Repairs, repairReport{
					Surface: r.Surface.String(),
					Index:   r.Index,
					Old:     [2]float64{r.Old.X, r.Old.Y},
					New:     [2]float64{r.New.X, r.New.Y},
				})
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(rep); err != nil {
				return errors.Wrap(err, "encoding report")
			}
			return errors.Wrap(enc.Close(), "encoding report")
		},
	}
}

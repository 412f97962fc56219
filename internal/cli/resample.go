package cli

import (
	"github.com/spf13/cobra"
)

func (a *app) resampleCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "resample FILE",
		Short: "Redistribute an airfoil's points at uniform arc-length spacing",
		Long: `
Resample splits the airfoil in FILE into its upper and lower surface and
redistributes each surface to --points points at uniform fractions of its arc
length. The trailing and leading edge points are kept exactly.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			af, err := a.loadResampled(args[0])
			if err != nil {
				return err
			}
			return a.output(cmd.OutOrStdout(), out, af)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "Output file. Defaults to stdout.")
	return cmd
}

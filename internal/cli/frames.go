package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"honnef.co/go/airfoil"
)

func (a *app) framesCmd() *cobra.Command {
	var (
		dir   string
		steps int
	)
	cmd := &cobra.Command{
		Use:   "frames FROM TO",
		Short: "Write a sequence of morphs between two airfoils",
		Long: `
Frames writes steps+1 morphs of FROM into TO with blend factors k/steps,
k = 0 … steps, one file per frame in --out-dir. Frames are computed
concurrently.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps < 1 {
				return errors.Wrapf(airfoil.ErrInvalidArgument, "steps %d, need at least 1", steps)
			}
			from, to, err := a.loadPair(args[0], args[1])
			if err != nil {
				return err
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return errors.Wrap(err, "creating output directory")
			}
			paths, err := a.writeFrames(cmd, from, to, dir, steps)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "out-dir", "frames", "Directory to write frames to.")
	cmd.Flags().IntVar(&steps, "steps", 10, "Number of blend intervals.")
	cmd.Flags().Int(keyJobs, 4, "Maximum number of frames computed at once.")
	_ = a.conf.BindPFlag(keyJobs, cmd.Flags().Lookup(keyJobs))
	return cmd
}

// writeFrames morphs and writes every frame, returning the paths in frame
// order. from and to are only read.
func (a *app) writeFrames(cmd *cobra.Command, from, to *airfoil.Airfoil, dir string, steps int) ([]string, error) {
	format := a.conf.GetString(keyFormat)
	paths := make([]string, steps+1)

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(max(1, a.conf.GetInt(keyJobs)))
	for k := range paths {
		paths[k] = filepath.Join(dir, fmt.Sprintf("frame_%04d%s", k, extension(format)))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t := float64(k) / float64(steps)
			m, err := morphNamed(from, to, t)
			if err != nil {
				return err
			}
			b, err := encode(m, format)
			if err != nil {
				return err
			}
			if err := os.WriteFile(paths[k], b, 0o644); err != nil {
				return errors.Wrapf(err, "writing frame %d", k)
			}
			a.log.Debug("frame written", zap.Int("frame", k), zap.Float64("t", t))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	a.log.Info("frames written", zap.String("dir", dir), zap.Int("count", len(paths)))
	return paths, nil
}

// Package cli implements the airfoil command line tool.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Configuration keys shared by the subcommands. Each can be set by flag,
// by an AIRFOIL_* environment variable or in the config file.
const (
	keyConfig   = "config"
	keyLogLevel = "log-level"
	keyPoints   = "points"
	keyFormat   = "format"
	keyJobs     = "jobs"
)

type app struct {
	conf *viper.Viper
	log  *zap.Logger
}

// NewRootCmd returns the airfoil command tree. Every call returns an
// independent tree with its own configuration.
func NewRootCmd() *cobra.Command {
	a := &app{
		conf: viper.New(),
		log:  zap.NewNop(),
	}
	root := &cobra.Command{
		Use:   "airfoil",
		Short: "Resample and morph airfoil coordinate files",
		Long: `
airfoil reads two-column airfoil coordinate files, redistributes their points
at uniform arc-length spacing and blends pairs of airfoils into intermediate
profiles.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	addGlobalFlags(root.PersistentFlags())
	_ = a.conf.BindPFlags(root.PersistentFlags())

	a.conf.SetEnvPrefix("AIRFOIL")
	a.conf.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.conf.AutomaticEnv()

	root.AddCommand(
		a.resampleCmd(),
		a.morphCmd(),
		a.framesCmd(),
		a.scaleCmd(),
		a.infoCmd(),
	)
	return root
}

func addGlobalFlags(flags *flag.FlagSet) {
	flags.String(keyConfig, "",
		"Configuration file. Takes precedence over default values, but is "+
			"overridden by environment variables and flags.")
	flags.String(keyLogLevel, "info", "Log level, one of [debug, info, warn, error].")
	flags.IntP(keyPoints, "n", 60, "Number of points per surface after resampling.")
	flags.String(keyFormat, "dat", "Output format, one of [dat, geojson].")
}

func (a *app) setup(stderr io.Writer) error {
	if file := a.conf.GetString(keyConfig); file != "" {
		a.conf.SetConfigFile(file)
		if err := a.conf.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading config file %s", file)
		}
	}
	log, err := newLogger(a.conf.GetString(keyLogLevel), stderr)
	if err != nil {
		return err
	}
	a.log = log
	a.log.Debug("configuration loaded",
		zap.String("config", a.conf.ConfigFileUsed()),
		zap.Int(keyPoints, a.conf.GetInt(keyPoints)),
		zap.String(keyFormat, a.conf.GetString(keyFormat)))
	return nil
}

// Execute runs the root command and exits non-zero on failure. It is called
// by main.main.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "airfoil:", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/kass/matchmap/pkg/bounds"
	"github.com/kass/matchmap/pkg/config"
	"github.com/kass/matchmap/pkg/logging"
	"github.com/kass/matchmap/pkg/rtree"
	"github.com/kass/matchmap/pkg/timezone"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// app is the state shared by every subcommand, filled in by the root
// command's pre-run
type app struct {
	cfgFile     string
	logLevel    string
	catalogFile string

	cfg    *config.Config
	logger *logrus.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "matchmap",
		Short: "Venue timezones, map markers and map framing for football fixtures",
		Long: `matchmap resolves the timezone of a fixture's venue, renders kick-off times
in that zone, groups matches into one marker per stadium and frames a set of
venues as a map region.

Match input is JSON or YAML, read from a file argument or stdin.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default ./matchmap.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level, overrides config")
	rootCmd.PersistentFlags().StringVar(&a.catalogFile, "catalog", "", "extra venue catalog file written by 'catalog sync'")

	rootCmd.AddCommand(
		a.newResolveCmd(),
		a.newFormatCmd(),
		a.newRelativeCmd(),
		a.newLabelCmd(),
		a.newGroupCmd(),
		a.newBoundsCmd(),
		a.newCatalogCmd(),
		a.newBenchCmd(),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.catalogFile != "" {
		cfg.Catalog.File = a.catalogFile
	}

	logger, err := logging.NewLoggerTo(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	return nil
}

// resolver builds a timezone resolver over the static catalog plus the
// configured catalog file
func (a *app) resolver(opts ...timezone.Option) (*timezone.Resolver, error) {
	opts = append([]timezone.Option{timezone.WithLogger(a.logger)}, opts...)

	if a.cfg.Catalog.File != "" {
		data, err := rtree.LoadFromFile(a.cfg.Catalog.File)
		if err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
		a.logger.WithFields(logrus.Fields{
			"catalog": data.Name,
			"entries": data.Count,
		}).Info("loaded venue catalog")
		opts = append(opts, timezone.WithCatalogEntries(data.Entries))
	}

	return timezone.NewResolver(opts...)
}

func (a *app) calculator() (*bounds.Calculator, error) {
	return bounds.NewCalculator(bounds.WithLogger(a.logger))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-routegraph/pkg/analysis"
	"github.com/dd0wney/cluso-routegraph/pkg/config"
	"github.com/dd0wney/cluso-routegraph/pkg/dataset"
	"github.com/dd0wney/cluso-routegraph/pkg/logging"
	"github.com/dd0wney/cluso-routegraph/pkg/metrics"
	"github.com/dd0wney/cluso-routegraph/pkg/report"
)

// app holds flag values and the state shared by every subcommand of one run
type app struct {
	configPath      string
	cities          string
	routes          string
	format          string
	logLevel        string
	metricsTextfile string
	top             int

	cfg      *config.Config
	logger   logging.Logger
	metrics  *metrics.Registry
	analyzer *analysis.Analyzer
	printer  *report.Printer
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "routegraph",
		Short: "Structural statistics over a flight-route network",
		Long: `routegraph loads an airport list (code|id|name) and a route list
(whitespace separated id pairs) and reports component sizes, degree
rankings, the network diameter, fewest-flights routes and betweenness
centrality.`,
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	flags.StringVar(&a.cities, "cities", "", "airport file (code|id|name), .sz for snappy")
	flags.StringVar(&a.routes, "routes", "", "route file (id id ...), .sz for snappy")
	flags.StringVarP(&a.format, "format", "f", "", "output format: plain or table")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVar(&a.metricsTextfile, "metrics-textfile", "", "write Prometheus metrics to this file after the run")
	flags.IntVarP(&a.top, "top", "n", 0, "number of airports in rankings")

	root.AddCommand(
		a.summaryCmd(),
		a.degreesCmd(),
		a.distributionCmd(),
		a.diameterCmd(),
		a.routeCmd(),
		a.betweennessCmd(),
		a.allCmd(),
	)

	return root
}

// setup loads configuration, applies flag overrides, loads the dataset and
// prepares the analyzer and printer.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("cities") {
		cfg.Dataset.Cities = a.cities
	}
	if flags.Changed("routes") {
		cfg.Dataset.Routes = a.routes
	}
	if flags.Changed("format") {
		cfg.Output.Format = a.format
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("metrics-textfile") {
		cfg.Metrics.Textfile = a.metricsTextfile
	}
	if flags.Changed("top") {
		cfg.TopN = a.top
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	modes, err := cfg.AnalysisModes()
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	a.logger = logging.NewLogger(cmd.ErrOrStderr(), cfg.Log.Level).
		With(logging.RunID(uuid.NewString()), logging.String("command", cmd.Name()))
	a.metrics = metrics.NewRegistry()

	reader := dataset.NewReader(dataset.WithLogger(a.logger), dataset.WithMetrics(a.metrics))
	ds, err := reader.Load(cfg.Dataset.Cities, cfg.Dataset.Routes)
	if err != nil {
		a.logger.Error("dataset load failed", logging.Error(err))
		_ = a.writeMetrics()
		return err
	}

	a.analyzer = analysis.New(ds,
		analysis.WithModes(modes),
		analysis.WithLogger(a.logger),
		analysis.WithMetrics(a.metrics),
	)
	a.printer = report.NewPrinter(cmd.OutOrStdout(), format)
	return nil
}

func (a *app) teardown(_ *cobra.Command, _ []string) error {
	return a.writeMetrics()
}

// writeMetrics writes the textfile if one is configured. Cobra skips the
// post-run hook after an error, so failing paths call it directly.
func (a *app) writeMetrics() error {
	if a.cfg == nil || a.metrics == nil || a.cfg.Metrics.Textfile == "" {
		return nil
	}
	if err := a.metrics.WriteTextfile(a.cfg.Metrics.Textfile); err != nil {
		a.logger.Error("metrics write failed", logging.Path(a.cfg.Metrics.Textfile), logging.Error(err))
		return err
	}
	a.logger.Debug("metrics written", logging.Path(a.cfg.Metrics.Textfile))
	return nil
}

// fail logs err for the run, flushes metrics and returns err for cobra to print
func (a *app) fail(err error) error {
	a.logger.Error("command failed", logging.Error(err))
	_ = a.writeMetrics()
	return fmt.Errorf("routegraph: %w", err)
}

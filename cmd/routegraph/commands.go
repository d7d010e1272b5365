package main

import (
	"github.com/spf13/cobra"
)

func (a *app) summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Count nodes, routes and connected components",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runSummary()
		},
	}
}

func (a *app) degreesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "degrees",
		Aliases: []string{"degree"},
		Short:   "Rank airports of the largest component by number of routes",
		Args:    cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runDegrees()
		},
	}
}

func (a *app) distributionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "distribution",
		Short: "Print the degree distribution of the largest component",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runDistribution()
		},
	}
}

func (a *app) diameterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diameter",
		Short: "Print the diameter and a longest shortest path of the largest component",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runDiameter()
		},
	}
}

func (a *app) routeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "route [FROM TO]",
		Short: "Find the fewest-flights route between two airports",
		Long: `Find the fewest-flights route between two airports given by IATA code.
Without arguments the route.from and route.to configuration values are used.`,
		Args: cobra.MatchAll(
			func(cmd *cobra.Command, args []string) error {
				if len(args) == 1 {
					return cobra.ExactArgs(2)(cmd, args)
				}
				return nil
			},
			cobra.MaximumNArgs(2),
		),
		RunE: func(_ *cobra.Command, args []string) error {
			from, to := a.cfg.Route.From, a.cfg.Route.To
			if len(args) == 2 {
				from, to = args[0], args[1]
			}
			return a.runRoute(from, to)
		},
	}
}

func (a *app) betweennessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "betweenness",
		Short: "Rank airports of the largest component by betweenness centrality",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runBetweenness()
		},
	}
}

func (a *app) allCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run every query in turn",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			steps := []func() error{
				a.runSummary,
				a.runDegrees,
				a.runDistribution,
				a.runDiameter,
				func() error { return a.runRoute(a.cfg.Route.From, a.cfg.Route.To) },
				a.runBetweenness,
			}
			for _, step := range steps {
				if err := step(); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) runSummary() error {
	summary, err := a.analyzer.Summary()
	if err != nil {
		return a.fail(err)
	}
	return a.printer.Summary(summary)
}

func (a *app) runDegrees() error {
	ranking, err := a.analyzer.TopByDegree(a.cfg.TopN)
	if err != nil {
		return a.fail(err)
	}
	return a.printer.Degrees(a.cfg.TopN, ranking)
}

func (a *app) runDistribution() error {
	buckets, err := a.analyzer.DegreeDistribution()
	if err != nil {
		return a.fail(err)
	}
	return a.printer.Distribution(buckets)
}

func (a *app) runDiameter() error {
	result, err := a.analyzer.Diameter()
	if err != nil {
		return a.fail(err)
	}
	return a.printer.Diameter(result)
}

func (a *app) runRoute(from, to string) error {
	result, err := a.analyzer.Route(from, to)
	if err != nil {
		return a.fail(err)
	}
	return a.printer.Route(result)
}

func (a *app) runBetweenness() error {
	ranking, err := a.analyzer.TopByBetweenness(a.cfg.TopN)
	if err != nil {
		return a.fail(err)
	}
	return a.printer.Betweenness(a.cfg.TopN, ranking)
}

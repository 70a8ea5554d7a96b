package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/DChenet/sec-cost-simulator2/core"
	"github.com/DChenet/sec-cost-simulator2/internal/export"
	"github.com/DChenet/sec-cost-simulator2/internal/logging"
	"github.com/DChenet/sec-cost-simulator2/internal/observability"
	"github.com/DChenet/sec-cost-simulator2/internal/sweep"
)

type sweepOpts struct {
	file      string
	scenario  string
	name      string
	stage     int
	param     string
	values    []float64
	initial   int64
	exportDir string
}

func newSweepCommand(log logging.Logger) *cobra.Command {
	var o sweepOpts

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Vary one stage parameter and record total cost curves",
		Example: `  costsim sweep --scenario standalone --stage 0 --param throughput --values 10,20,30,60
  costsim sweep -f scenario.json --stage 1 --param distance_km --values 100,400,700,1200`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep(cmd.Context(), log, o)
		},
	}

	cmd.Flags().StringVarP(&o.file, "file", "f", "", "scenario definition JSON file (overrides --scenario)")
	cmd.Flags().StringVarP(&o.scenario, "scenario", "s", "standalone", "built-in scenario name")
	cmd.Flags().StringVar(&o.name, "name", "", "sweep name used for series and file names (defaults to <scenario>_<param>)")
	cmd.Flags().IntVar(&o.stage, "stage", 0, "index of the stage whose parameter varies")
	cmd.Flags().StringVar(&o.param, "param", "throughput", "parameter to vary: throughput, scale_factor or distance_km")
	cmd.Flags().Float64SliceVar(&o.values, "values", nil, "values to evaluate")
	cmd.Flags().Int64Var(&o.initial, "initial", -1, "override the scenario's initial payload size")
	cmd.Flags().StringVar(&o.exportDir, "export-dir", "", "write one CSV per series under this directory")

	return cmd
}

func runSweep(ctx context.Context, log logging.Logger, o sweepOpts) error {
	scenario, err := loadScenario(o.file, o.scenario)
	if err != nil {
		return err
	}
	initial := scenario.Initial
	if o.initial >= 0 {
		initial = core.DataUnits(o.initial)
	}

	param, err := parseParameter(o.param)
	if err != nil {
		return err
	}
	name := o.name
	if name == "" {
		name = fmt.Sprintf("%s_%s", scenario.Name, param)
	}

	collector, err := observability.NewRunCollector(prometheus.NewRegistry())
	if err != nil {
		return fmt.Errorf("init metrics: %w", err)
	}

	result, err := sweep.Run(sweep.Config{
		Name:      name,
		Initial:   initial,
		Stages:    sweep.TemplatesFromStages(scenario.Runner.Stages()),
		Stage:     o.stage,
		Parameter: param,
		Values:    o.values,
	})
	if err != nil {
		return err
	}
	collector.ObserveSweepPoints(name, len(result.TimeSeries.Points))

	log.Info(ctx, "sweep evaluated",
		logging.String("sweep", name),
		logging.String("parameter", param.String()),
		logging.Int("points", len(result.TimeSeries.Points)),
	)

	printSweep(param, result)

	if o.exportDir != "" {
		paths, err := export.Series(o.exportDir, result.TimeSeries, result.EnergySeries)
		if err != nil {
			return err
		}
		for _, p := range paths {
			log.Info(ctx, "series exported", logging.String("path", p))
		}
	}
	return nil
}

func parseParameter(s string) (sweep.Parameter, error) {
	switch s {
	case "throughput":
		return sweep.ParamThroughput, nil
	case "scale_factor":
		return sweep.ParamScaleFactor, nil
	case "distance_km":
		return sweep.ParamDistanceKm, nil
	default:
		return 0, fmt.Errorf("unknown sweep parameter %q", s)
	}
}

func printSweep(param sweep.Parameter, result *sweep.Result) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\tTOTAL TIME\tTOTAL ENERGY\n", param)
	for i, p := range result.TimeSeries.Points {
		fmt.Fprintf(tw, "%g\t%.4f\t%.4f\n", p.X, p.Y, result.EnergySeries.Points[i].Y)
	}
	tw.Flush()
}

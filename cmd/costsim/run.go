package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/DChenet/sec-cost-simulator2/core"
	"github.com/DChenet/sec-cost-simulator2/internal/export"
	"github.com/DChenet/sec-cost-simulator2/internal/logging"
	"github.com/DChenet/sec-cost-simulator2/internal/observability"
)

type runOpts struct {
	file        string
	scenario    string
	initial     int64
	exportDir   string
	metricsAddr string
}

func newRunCommand(log logging.Logger) *cobra.Command {
	var o runOpts

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Evaluate one scenario and print its per-stage cost table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(cmd.Context(), log, o)
		},
	}

	cmd.Flags().StringVarP(&o.file, "file", "f", "", "scenario definition JSON file (overrides --scenario)")
	cmd.Flags().StringVarP(&o.scenario, "scenario", "s", "standalone", "built-in scenario name")
	cmd.Flags().Int64Var(&o.initial, "initial", -1, "override the scenario's initial payload size")
	cmd.Flags().StringVar(&o.exportDir, "export-dir", "", "write CSV and JSON results under this directory")
	cmd.Flags().StringVar(&o.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address until interrupted")

	return cmd
}

func runScenario(ctx context.Context, log logging.Logger, o runOpts) error {
	scenario, err := loadScenario(o.file, o.scenario)
	if err != nil {
		return err
	}
	initial := scenario.Initial
	if o.initial >= 0 {
		initial = core.DataUnits(o.initial)
	}

	shutdown, err := observability.InitTracing(ctx, observability.TracingConfigFromEnv(), log)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer observability.ShutdownWithTimeout(context.Background(), shutdown, log)

	collector, err := observability.NewRunCollector(prometheus.NewRegistry())
	if err != nil {
		return fmt.Errorf("init metrics: %w", err)
	}

	tracer := otel.Tracer("costsim")
	ctx, span := tracer.Start(ctx, "scenario.run")
	span.SetAttributes(
		attribute.String("scenario", scenario.Name),
		attribute.Int64("initial_data", int64(initial)),
	)

	start := time.Now()
	result, runErr := scenario.Runner.Run(initial)
	elapsed := time.Since(start)
	collector.ObserveRun(scenario.Name, elapsed, totalTime(result), totalEnergy(result), runErr)

	if runErr != nil {
		span.RecordError(runErr)
		span.End()
		return fmt.Errorf("run scenario %q: %w", scenario.Name, runErr)
	}
	span.End()

	log.Info(ctx, "scenario evaluated",
		logging.String("scenario", scenario.Name),
		logging.Int("stages", len(result.Stages)),
		logging.Float64("total_time", result.TotalTime),
		logging.Float64("total_energy", result.TotalEnergy),
	)

	printResult(scenario.Name, initial, result)

	if o.exportDir != "" {
		csvPath, jsonPath, err := export.Results(o.exportDir, scenario.Name, result)
		if err != nil {
			return err
		}
		log.Info(ctx, "results exported",
			logging.String("csv", csvPath),
			logging.String("json", jsonPath),
		)
	}

	if o.metricsAddr != "" {
		return serveMetrics(ctx, log, o.metricsAddr, collector)
	}
	return nil
}

func loadScenario(file, name string) (*core.Scenario, error) {
	if file == "" {
		return builtinScenario(name)
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("open scenario file: %w", err)
	}
	defer f.Close()
	return core.LoadScenario(f)
}

func printResult(name string, initial core.DataUnits, result *core.RunResult) {
	fmt.Printf("scenario %s (initial payload %d)\n\n", name, initial)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STAGE\tKIND\tIN\tTIME\tENERGY\tOUT")
	for _, s := range result.Stages {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.4f\t%.4f\t%d\n",
			s.Name, s.Kind, s.PayloadIn, s.TimeCost, s.EnergyCost, s.PayloadOut)
	}
	fmt.Fprintf(tw, "total\t\t\t%.4f\t%.4f\t%d\n",
		result.TotalTime, result.TotalEnergy, result.FinalPayload)
	tw.Flush()
}

// serveMetrics blocks serving /metrics until the process is interrupted, so a
// scraper can collect the run's counters before the tool exits.
func serveMetrics(ctx context.Context, log logging.Logger, addr string, collector *observability.RunCollector) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	log.Info(ctx, "serving metrics", logging.String("addr", addr))

	select {
	case err := <-errCh:
		return fmt.Errorf("metrics server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func totalTime(r *core.RunResult) float64 {
	if r == nil {
		return 0
	}
	return r.TotalTime
}

func totalEnergy(r *core.RunResult) float64 {
	if r == nil {
		return 0
	}
	return r.TotalEnergy
}

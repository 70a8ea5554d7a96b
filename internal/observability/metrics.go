package observability

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RunCollector bundles Prometheus metrics for scenario evaluations and
// parameter sweeps, and provides a /metrics handler for long batch runs.
type RunCollector struct {
	gatherer prometheus.Gatherer

	Runs         *prometheus.CounterVec
	RunDurations *prometheus.HistogramVec
	SweepPoints  *prometheus.CounterVec

	TotalTimeCost   *prometheus.GaugeVec
	TotalEnergyCost *prometheus.GaugeVec
}

// NewRunCollector registers the simulator metrics against the provided
// registerer, defaulting to the global Prometheus registry when nil.
func NewRunCollector(reg prometheus.Registerer) (*RunCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "costsim_scenario_runs_total",
		Help: "Total number of scenario evaluations, labeled by scenario and outcome.",
	}, []string{"scenario", "outcome"})
	runs, err := registerCounterVec(reg, runs, "costsim_scenario_runs_total")
	if err != nil {
		return nil, err
	}

	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "costsim_scenario_run_duration_seconds",
		Help:    "Wall-clock duration of one scenario evaluation in seconds.",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	}, []string{"scenario"})
	durations, err = registerHistogramVec(reg, durations, "costsim_scenario_run_duration_seconds")
	if err != nil {
		return nil, err
	}

	points := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "costsim_sweep_points_total",
		Help: "Total number of evaluated sweep points, labeled by sweep name.",
	}, []string{"sweep"})
	points, err = registerCounterVec(reg, points, "costsim_sweep_points_total")
	if err != nil {
		return nil, err
	}

	totalTime, err := registerGaugeVec(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "costsim_scenario_total_time_cost",
		Help: "Total time cost of the most recent successful run, per scenario.",
	}, []string{"scenario"}), "costsim_scenario_total_time_cost")
	if err != nil {
		return nil, err
	}
	totalEnergy, err := registerGaugeVec(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "costsim_scenario_total_energy_cost",
		Help: "Total energy cost of the most recent successful run, per scenario.",
	}, []string{"scenario"}), "costsim_scenario_total_energy_cost")
	if err != nil {
		return nil, err
	}

	return &RunCollector{
		gatherer:        gatherer,
		Runs:            runs,
		RunDurations:    durations,
		SweepPoints:     points,
		TotalTimeCost:   totalTime,
		TotalEnergyCost: totalEnergy,
	}, nil
}

// ObserveRun records one scenario evaluation. For successful runs the totals
// gauges are updated as well; failed runs only count towards the error
// outcome, matching the runner's no-partial-totals contract.
func (c *RunCollector) ObserveRun(scenario string, duration time.Duration, totalTime, totalEnergy float64, err error) {
	if c == nil {
		return
	}

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	if c.Runs != nil {
		c.Runs.WithLabelValues(scenario, outcome).Inc()
	}
	if c.RunDurations != nil {
		c.RunDurations.WithLabelValues(scenario).Observe(duration.Seconds())
	}
	if err != nil {
		return
	}
	if c.TotalTimeCost != nil {
		c.TotalTimeCost.WithLabelValues(scenario).Set(totalTime)
	}
	if c.TotalEnergyCost != nil {
		c.TotalEnergyCost.WithLabelValues(scenario).Set(totalEnergy)
	}
}

// ObserveSweepPoints counts evaluated points for a named sweep.
func (c *RunCollector) ObserveSweepPoints(sweep string, points int) {
	if c == nil || c.SweepPoints == nil {
		return
	}
	c.SweepPoints.WithLabelValues(sweep).Add(float64(points))
}

// Handler exposes a ready-to-use /metrics handler.
func (c *RunCollector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerGaugeVec(reg prometheus.Registerer, vec *prometheus.GaugeVec, name string) (*prometheus.GaugeVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.GaugeVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

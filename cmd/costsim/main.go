// Command costsim evaluates space/edge computing cost scenarios: chains of
// computing and transmission stages that transform a payload size and
// accumulate time and energy costs.
package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/DChenet/sec-cost-simulator2/internal/logging"
)

func main() {
	log := logging.NewFromEnv()

	root := &cobra.Command{
		Use:   "costsim",
		Short: "Space/edge computing cost simulator",
		Long: `costsim evaluates processing pipelines made of computing and transmission
stages. Each stage scales the payload flowing through it and contributes a
time cost and an energy cost; the simulator reports per-stage costs and the
chain totals, and can sweep a single stage parameter to produce cost curves.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCommand(log))
	root.AddCommand(newSweepCommand(log))
	root.AddCommand(newScenariosCommand())

	if err := root.Execute(); err != nil {
		log.Error(context.Background(), "command failed", logging.String("error", err.Error()))
		os.Exit(1)
	}
}

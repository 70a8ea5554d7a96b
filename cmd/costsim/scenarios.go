package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newScenariosCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios",
		Short: "List the built-in scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := builtinCatalog()

			tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tSTAGES\tINITIAL")
			for _, name := range c.Names() {
				def := c.Get(name)
				fmt.Fprintf(tw, "%s\t%d\t%d\n", def.Name, len(def.Stages), def.InitialData)
			}
			return tw.Flush()
		},
	}
}

package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/pipeline/steps"
)

func newStagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stages",
		Short: "List the pipeline stages in execution order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "#\tID\tTITLE\tDEPENDS ON")
			for i, def := range steps.StepRegistry {
				deps := "-"
				if len(def.Dependencies) > 0 {
					deps = strings.Join(def.Dependencies, ", ")
				}
				_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i+1, def.Name, def.Title, deps)
			}
			return tw.Flush()
		},
	}
}

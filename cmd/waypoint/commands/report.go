package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/waypoint/internal/app"
)

func (c *CLI) newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Answer every query of the routefile, or the standard eight",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Report(cmd.Context(), c.reportOptions())
		},
	}
}

func (c *CLI) newGraphCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "graph",
		Short: "Show the nodes, edges and fingerprint of the route graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Inspect(cmd.Context(), app.InspectOptions{
				Source:     c.source(),
				OutputMode: c.outputMode,
			})
		},
	}
}

func (c *CLI) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print the report again whenever the routefile changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Watch(cmd.Context(), app.WatchOptions{ReportOptions: c.reportOptions()})
		},
	}
}

// Package commands implements the CLI commands for waypoint.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/waypoint/internal/app"
	"go.trai.ch/waypoint/internal/build"
	"go.trai.ch/waypoint/internal/core/domain"
)

// CLI represents the command line interface for waypoint.
type CLI struct {
	app     Application
	rootCmd *cobra.Command

	file       string
	routes     string
	outputMode string
	jsonLogs   bool
}

// Application represents the application logic interface.
type Application interface {
	Report(ctx context.Context, opts app.ReportOptions) error
	Query(ctx context.Context, opts app.QueryOptions) error
	Inspect(ctx context.Context, opts app.InspectOptions) error
	Watch(ctx context.Context, opts app.WatchOptions) error
	SetLogJSON(enabled bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "waypoint",
		Short: "Answer distance, trip and shortest-route queries over a route graph",
		Long: `waypoint reads a directed, weighted route graph such as "AB5, BC4, CD8"
and answers route queries against it. Without a subcommand it prints the report
for the routefile's queries, or the standard eight questions.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRun: func(*cobra.Command, []string) {
			c.app.SetLogJSON(c.jsonLogs)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Report(cmd.Context(), c.reportOptions())
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.file, "file", "f", "",
		`Route data file: a `+domain.DefaultRoutefile+` routefile, plain route text, or "-" for stdin`)
	flags.StringVarP(&c.routes, "routes", "r", "", `Inline route data, e.g. "AB5, BC4, CD8"`)
	flags.StringVarP(&c.outputMode, "output", "o", "auto", "Output mode: auto, styled, plain, ci, or json")
	flags.BoolVar(&c.jsonLogs, "json-logs", false, "Write log messages as JSON")

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newReportCmd())
	rootCmd.AddCommand(c.newDistanceCmd())
	rootCmd.AddCommand(c.newTripsCmd())
	rootCmd.AddCommand(c.newRoutesCmd())
	rootCmd.AddCommand(c.newShortestCmd())
	rootCmd.AddCommand(c.newGraphCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) source() domain.Source {
	return domain.Source{Path: c.file, Inline: c.routes}
}

func (c *CLI) reportOptions() app.ReportOptions {
	return app.ReportOptions{Source: c.source(), OutputMode: c.outputMode}
}

func (c *CLI) query(cmd *cobra.Command, q domain.Query) error {
	return c.app.Query(cmd.Context(), app.QueryOptions{
		Source:     c.source(),
		Query:      q,
		OutputMode: c.outputMode,
	})
}

package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/waypoint/internal/core/domain"
)

func (c *CLI) newDistanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "distance <route>",
		Short:   "Total distance of an explicit route such as A-B-C",
		Example: "  waypoint distance A-E-B-C-D --routes \"AB5, BC4, CD8, EB3, AE7\"",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			route, err := domain.ParseRoute(args[0])
			if err != nil {
				return err
			}
			return c.query(cmd, domain.DistanceQuery(route))
		},
	}
}

func (c *CLI) newTripsCmd() *cobra.Command {
	var maxStops, exactStops int

	cmd := &cobra.Command{
		Use:   "trips <from> <to>",
		Short: "Count the trips between two nodes by number of stops",
		Example: "  waypoint trips C C --max-stops 3\n" +
			"  waypoint trips A C --exact-stops 4",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to := domain.NewNode(args[0]), domain.NewNode(args[1])
			if cmd.Flags().Changed("exact-stops") {
				return c.query(cmd, domain.ExactStopsQuery(from, to, exactStops))
			}
			return c.query(cmd, domain.MaxStopsQuery(from, to, maxStops))
		},
	}
	cmd.Flags().IntVar(&maxStops, "max-stops", 0, "Count trips with at most this many stops")
	cmd.Flags().IntVar(&exactStops, "exact-stops", 0, "Count trips with exactly this many stops")
	cmd.MarkFlagsMutuallyExclusive("max-stops", "exact-stops")
	cmd.MarkFlagsOneRequired("max-stops", "exact-stops")
	return cmd
}

func (c *CLI) newRoutesCmd() *cobra.Command {
	var maxDistance int

	cmd := &cobra.Command{
		Use:     "routes <from> <to>",
		Short:   "Count the routes between two nodes shorter than a distance",
		Example: "  waypoint routes C C --max-distance 30",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.query(cmd, domain.MaxDistanceQuery(domain.NewNode(args[0]), domain.NewNode(args[1]), maxDistance))
		},
	}
	cmd.Flags().IntVar(&maxDistance, "max-distance", 0, "Count routes strictly shorter than this distance")
	_ = cmd.MarkFlagRequired("max-distance")
	return cmd
}

func (c *CLI) newShortestCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "shortest <from> <to>",
		Short:   "Length of the shortest route between two nodes",
		Example: "  waypoint shortest A C",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.query(cmd, domain.ShortestQuery(domain.NewNode(args[0]), domain.NewNode(args[1])))
		},
	}
}

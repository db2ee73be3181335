package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/dijkstra"
	"github.com/katalvlaran/campusnav/render"
)

// errInvalidBuilding makes the route command exit non-zero once the message is printed.
var errInvalidBuilding = errors.New("invalid building name")

func newRouteCommand(input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Print the shortest path between two buildings",
		Example: `  campusnav route --from "IST Mosque" --to "Main Gate"
  campusnav route -n north.yaml --from Gate --to Lab`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := input.LoadNetwork()
			if err != nil {
				return err
			}
			return runRoute(cmd.OutOrStdout(), n, input.from, input.to, input.SearchOptions()...)
		},
	}
	cmd.Flags().StringVar(&input.from, "from", "", "starting building")
	cmd.Flags().StringVar(&input.to, "to", "", "destination building")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func runRoute(w io.Writer, n *campus.Network, from, to string, opts ...dijkstra.Option) error {
	res := dijkstra.ShortestPath(n.Graph, from, to, opts...)
	if err := render.Write(w, res); err != nil {
		return err
	}
	if res.Status == dijkstra.StatusInvalidInput {
		return fmt.Errorf("%w: %q or %q is not in %s", errInvalidBuilding, from, to, n.Name)
	}

	return nil
}

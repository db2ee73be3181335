package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/dfs"
	"github.com/katalvlaran/campusnav/render"
)

// errStepBudget stops an enumeration that walked more steps than --max-steps.
var errStepBudget = errors.New("route search exceeded its step budget")

// stepBudget aborts dfs.Routes after max node visits; max <= 0 means no budget.
func stepBudget(max int) dfs.Option {
	steps := 0
	return dfs.WithOnVisit(func(string, int) error {
		steps++
		if max > 0 && steps > max {
			return fmt.Errorf("%w of %d steps", errStepBudget, max)
		}
		return nil
	})
}

func newRoutesCommand(ctx context.Context, input *Input) *cobra.Command {
	var limit, maxHops, maxSteps int
	cmd := &cobra.Command{
		Use:   "routes",
		Short: "List the cheapest alternative routes between two buildings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := input.LoadNetwork()
			if err != nil {
				return err
			}
			return listRoutes(ctx, cmd.OutOrStdout(), n, input.from, input.to,
				dfs.WithLimit(limit), dfs.WithMaxHops(maxHops), stepBudget(maxSteps))
		},
	}
	cmd.Flags().StringVar(&input.from, "from", "", "starting building")
	cmd.Flags().StringVar(&input.to, "to", "", "destination building")
	cmd.Flags().IntVarP(&limit, "limit", "k", 3, "number of routes to show")
	cmd.Flags().IntVar(&maxHops, "max-hops", -1, "ignore routes with more walkways than this (-1: no limit)")
	cmd.Flags().IntVar(&maxSteps, "max-steps", 0, "give up after visiting this many nodes (0: no limit)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func listRoutes(ctx context.Context, w io.Writer, n *campus.Network, from, to string, opts ...dfs.Option) error {
	if !n.Graph.HasNode(from) || !n.Graph.HasNode(to) {
		fmt.Fprintln(w, render.InvalidInputMessage)
		return fmt.Errorf("%w: %q or %q is not in %s", errInvalidBuilding, from, to, n.Name)
	}

	routes, err := dfs.Routes(n.Graph, from, to, append(opts, dfs.WithContext(ctx))...)
	if err != nil {
		return err
	}
	if len(routes) == 0 {
		_, err = fmt.Fprintf(w, "No path found from %s to %s\n", from, to)
		return err
	}
	for i, r := range routes {
		if _, err := fmt.Fprintf(w, "%d. %d units: %s\n", i+1, r.Distance, render.PathString(r.Path)); err != nil {
			return err
		}
	}

	return nil
}

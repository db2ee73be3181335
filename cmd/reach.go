package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/campusnav/bfs"
	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/render"
)

func newReachCommand(input *Input) *cobra.Command {
	var (
		maxDepth int
		avoid    []string
	)
	cmd := &cobra.Command{
		Use:   "reach",
		Short: "List buildings within a number of walkways of a start, fewest walkways first",
		Example: `  campusnav reach --from Gym --max-depth 2
  campusnav reach --from Gym --avoid "Block 3" --avoid Lawn`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := input.LoadNetwork()
			if err != nil {
				return err
			}
			return listReach(cmd.OutOrStdout(), n, input.from, maxDepth, avoid)
		},
	}
	cmd.Flags().StringVar(&input.from, "from", "", "starting building")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "stop after this many walkways (0: no limit)")
	cmd.Flags().StringArrayVar(&avoid, "avoid", nil, "building to walk around (repeatable)")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}

// listReach prints "{hops}  {path}" for every building reached from start,
// except start itself.
func listReach(w io.Writer, n *campus.Network, start string, maxDepth int, avoid []string) error {
	blocked := make(map[string]bool, len(avoid))
	for _, id := range append([]string{start}, avoid...) {
		if !n.Graph.HasNode(id) {
			fmt.Fprintln(w, render.InvalidInputMessage)
			return fmt.Errorf("%w: %q is not in %s", errInvalidBuilding, id, n.Name)
		}
	}
	for _, id := range avoid {
		blocked[id] = true
	}

	reach, err := bfs.BFS(n.Graph, start,
		bfs.WithMaxDepth(maxDepth),
		bfs.WithFollow(func(_, to string) bool { return !blocked[to] }),
	)
	if err != nil {
		return err
	}
	for _, id := range reach.Order[1:] {
		path, err := reach.PathTo(id)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%d  %s\n", reach.Hops[id], render.PathString(path)); err != nil {
			return err
		}
	}

	return nil
}

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/campusnav/campus"
)

func newBuildingsCommand(input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buildings",
		Short: "List the buildings of the network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := input.LoadNetwork()
			if err != nil {
				return err
			}
			return listBuildings(cmd.OutOrStdout(), n, input.sorted)
		},
	}
	cmd.Flags().BoolVar(&input.sorted, "sorted", false, "sort names alphabetically instead of file order")

	return cmd
}

func listBuildings(w io.Writer, n *campus.Network, sorted bool) error {
	names := n.Buildings()
	if sorted {
		names = n.Graph.SortedNodes()
	}
	for i, name := range names {
		if _, err := fmt.Fprintf(w, "%d. %s\n", i+1, name); err != nil {
			return err
		}
	}

	return nil
}

package cmd

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/campusnav/server"
)

func newServeCommand(ctx context.Context, input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve route queries and metrics over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			n, err := input.LoadNetwork()
			if err != nil {
				return err
			}
			return server.New(n, log.StandardLogger(), input.SearchOptions()...).ListenAndServe(ctx, input.addr)
		},
	}
	cmd.Flags().StringVar(&input.addr, "addr", ":8080", "listen address")

	return cmd
}

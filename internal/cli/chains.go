package cli

import (
	"github.com/spf13/cobra"
	"github.com/wormhole-demos/xmsg/internal/cli/render"
	"github.com/wormhole-demos/xmsg/internal/usecase"
)

// NewChainsCmd creates the chains command
func NewChainsCmd() *cobra.Command {
	var probe bool

	cmd := &cobra.Command{
		Use:   "chains",
		Short: "List chains from the chains file",
		Long: `List every chain configured in the chains file.

With --probe each RPC endpoint is queried for its EVM chain ID.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer stopProgress(cmd)

			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListChains.Run(cmd.Context(), usecase.ListChainsParams{Probe: probe})
			if err != nil {
				return err
			}
			stopProgress(cmd)

			return output[*usecase.ChainListResult](cmd, app, result, render.NewChainsRenderer(cmd.OutOrStdout()))
		},
	}

	cmd.Flags().BoolVar(&probe, "probe", false, "Query each RPC endpoint for its chain ID")

	return cmd
}

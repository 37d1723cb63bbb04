package cli

import (
	"github.com/spf13/cobra"
	"github.com/wormhole-demos/xmsg/internal/cli/render"
	"github.com/wormhole-demos/xmsg/internal/usecase"
)

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [chain-key]",
		Short: "Show deployed contracts",
		Long: `Show the contracts recorded in the deployed contracts file, optionally
restricted to one chain key.

Examples:
  xmsg show
  xmsg show celo --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer stopProgress(cmd)

			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ShowRegistryParams{}
			if len(args) == 1 {
				params.ChainKey = args[0]
			}

			result, err := app.ShowRegistry.Run(cmd.Context(), params)
			if err != nil {
				return err
			}
			stopProgress(cmd)

			return output[*usecase.RegistryResult](cmd, app, result, render.NewRegistryRenderer(cmd.OutOrStdout()))
		},
	}

	return cmd
}

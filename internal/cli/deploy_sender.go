package cli

import (
	"github.com/spf13/cobra"
	"github.com/wormhole-demos/xmsg/internal/cli/render"
	"github.com/wormhole-demos/xmsg/internal/usecase"
)

// NewDeploySenderCmd creates the deploy-sender command
func NewDeploySenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy-sender",
		Short: "Deploy the MessageSender contract on the source chain",
		Long: `Deploy the MessageSender contract on the source chain with the chain's Wormhole
relayer as constructor argument, then record its address under the source
chain key in the deployed contracts file.

Examples:
  xmsg deploy-sender
  xmsg deploy-sender --source-chain "Sepolia" --source-key sepolia
  xmsg deploy-sender --key-source env`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer stopProgress(cmd)

			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.DeploySender.Run(cmd.Context(), usecase.DeploySenderParams{
				Source: app.Config.Route.Source,
			})
			if err != nil {
				return err
			}
			stopProgress(cmd)

			return output[*usecase.DeployContractResult](cmd, app, result, render.NewDeployRenderer(cmd.OutOrStdout()))
		},
	}

	addSourceFlags(cmd, true, false)

	return cmd
}

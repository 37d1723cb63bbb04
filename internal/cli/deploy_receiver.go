package cli

import (
	"github.com/spf13/cobra"
	"github.com/wormhole-demos/xmsg/internal/cli/render"
	"github.com/wormhole-demos/xmsg/internal/usecase"
)

// NewDeployReceiverCmd creates the deploy-receiver command
func NewDeployReceiverCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy-receiver",
		Short: "Deploy the MessageReceiver contract and register the sender",
		Long: `Deploy the MessageReceiver contract on the target chain, record its address
under the target chain key and register the source chain's MessageSender on it
with setRegisteredSender.

The sender must already be recorded in the deployed contracts file. If the
registration fails after a successful deployment the receiver address is kept;
retry the registration with 'xmsg register-sender'.

Examples:
  xmsg deploy-receiver
  xmsg deploy-receiver --target-chain "Base" --target-key base`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer stopProgress(cmd)

			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.DeployReceiver.Run(cmd.Context(), usecase.DeployReceiverParams{
				Source: app.Config.Route.Source,
				Target: app.Config.Route.Target,
			})
			stopProgress(cmd)
			if result != nil && result.Deployment != nil {
				if rerr := output[*usecase.DeployReceiverResult](cmd, app, result, render.NewReceiverRenderer(cmd.OutOrStdout())); rerr != nil && err == nil {
					err = rerr
				}
			}
			return err
		},
	}

	addSourceFlags(cmd, false, true)
	addTargetFlags(cmd, true, false)

	return cmd
}

package cli

import (
	"github.com/spf13/cobra"
	"github.com/wormhole-demos/xmsg/internal/cli/render"
	"github.com/wormhole-demos/xmsg/internal/config"
	"github.com/wormhole-demos/xmsg/internal/usecase"
)

// NewSendMessageCmd creates the send-message command
func NewSendMessageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send-message",
		Short: "Send a message from the sender to the receiver",
		Long: `Quote the delivery cost with quoteCrossChainCost, then call sendMessage on the
recorded sender with that cost as value. The relayer delivers the message to
the recorded receiver on the target chain.

Examples:
  xmsg send-message
  xmsg send-message --message "gm"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer stopProgress(cmd)

			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.SendMessage.Run(cmd.Context(), usecase.SendMessageParams{
				Source:          app.Config.Route.Source,
				Target:          app.Config.Route.Target,
				Message:         app.Config.Message,
				ExplorerNetwork: app.Config.ExplorerNetwork,
			})
			if err != nil {
				return err
			}
			stopProgress(cmd)

			return output[*usecase.SendMessageResult](cmd, app, result, render.NewMessageRenderer(cmd.OutOrStdout()))
		},
	}

	addSourceFlags(cmd, true, false)
	addTargetFlags(cmd, false, true)
	cmd.Flags().StringP(config.KeyMessage, "m", config.DefaultMessage, "Message to send")
	cmd.Flags().String(config.KeyExplorerNetwork, config.DefaultExplorerNetwork, "Wormholescan network used in the transaction link")

	return cmd
}

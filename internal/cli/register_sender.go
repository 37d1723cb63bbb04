package cli

import (
	"github.com/spf13/cobra"
	"github.com/wormhole-demos/xmsg/internal/cli/render"
	"github.com/wormhole-demos/xmsg/internal/usecase"
)

// NewRegisterSenderCmd creates the register-sender command
func NewRegisterSenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register-sender",
		Short: "Register the recorded sender on the recorded receiver",
		Long: `Call setRegisteredSender on the receiver recorded for the target chain, passing
the source Wormhole chain ID and the recorded sender address.

deploy-receiver already does this; use this command to retry a failed
registration without deploying again.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer stopProgress(cmd)

			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.RegisterSender.Run(cmd.Context(), usecase.RegisterSenderParams{
				Source: app.Config.Route.Source,
				Target: app.Config.Route.Target,
			})
			if err != nil {
				return err
			}
			stopProgress(cmd)

			return output[*usecase.SenderRegistration](cmd, app, result, render.NewRegistrationRenderer(cmd.OutOrStdout()))
		},
	}

	addSourceFlags(cmd, false, true)
	addTargetFlags(cmd, true, false)

	return cmd
}

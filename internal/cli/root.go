package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wormhole-demos/xmsg/internal/adapters/progress"
	"github.com/wormhole-demos/xmsg/internal/app"
	"github.com/wormhole-demos/xmsg/internal/config"
	"github.com/wormhole-demos/xmsg/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
	// sinkKey is the context key for the progress sink
	sinkKey contextKey = "sink"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xmsg",
		Short: "Deploy and exercise Wormhole cross-chain messaging contracts",
		Long: `xmsg deploys a MessageSender and a MessageReceiver contract on two EVM chains,
links them through the Wormhole relayer and sends messages between them.

Chain endpoints come from deploy-config/chains.json and deployed addresses are
recorded in deploy-config/deployedContracts.json.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot, _ := cmd.Flags().GetString(config.KeyProjectRoot)
			if projectRoot == "" {
				var err error
				projectRoot, err = config.FindProjectRoot()
				if err != nil {
					return err
				}
			}

			v := config.SetupViper(projectRoot, cmd)

			var sink usecase.ProgressSink = progress.NewNopSink()
			if !v.GetBool(config.KeyJSON) {
				sink = progress.NewSpinnerProgressSink()
			}

			appInstance, err := app.InitApp(v, sink)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)
			ctx = context.WithValue(ctx, sinkKey, sink)
			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				releaseAfterRun(cmd, cancel)
			}
			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.Bool(config.KeyDebug, false, "Enable debug output")
	flags.Bool(config.KeyNonInteractive, false, "Disable interactive prompts")
	flags.Bool(config.KeyJSON, false, "Output results as JSON")
	flags.String(config.KeyProjectRoot, "", "Project directory (defaults to the nearest directory with deploy-config/chains.json)")
	flags.Duration(config.KeyTimeout, 0, "Abort after this duration (default 5m)")
	flags.String(config.KeyChainsFile, config.DefaultChainsFile, "Chains file, relative to the project root")
	flags.String(config.KeyRegistryFile, config.DefaultRegistryFile, "Deployed contracts file, relative to the project root")
	flags.String(config.KeyArtifactsDir, "", "Foundry artifacts directory (defaults to foundry.toml out)")
	flags.String(config.KeyKeySource, "keystore", "Where the signing key comes from: keystore or env")
	flags.String(config.KeyKeystoreDir, config.DefaultKeystoreDir, "Directory holding encrypted keystores")
	flags.String(config.KeyKeystoreAccount, config.DefaultKeystoreAccount, "Keystore file name")
	flags.String(config.KeyPrivateKeyEnv, config.DefaultPrivateKeyEnv, "Environment variable holding the private key for --key-source env")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "messaging",
		Title: "Messaging Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	for _, cmd := range []*cobra.Command{
		NewDeploySenderCmd(),
		NewDeployReceiverCmd(),
		NewRegisterSenderCmd(),
		NewSendMessageCmd(),
	} {
		cmd.GroupID = "messaging"
		rootCmd.AddCommand(cmd)
	}

	for _, cmd := range []*cobra.Command{
		NewChainsCmd(),
		NewShowCmd(),
	} {
		cmd.GroupID = "management"
		rootCmd.AddCommand(cmd)
	}

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// releaseAfterRun calls release once RunE returns, whether or not it failed.
// PostRun hooks are skipped on error, so the wrap goes around RunE itself.
func releaseAfterRun(cmd *cobra.Command, release func()) {
	run := cmd.RunE
	if run == nil {
		release()
		return
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		defer release()
		return run(cmd, args)
	}
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance, ok := cmd.Context().Value(appKey).(*app.App)
	if !ok || appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return appInstance, nil
}

// stopProgress halts a spinner left running by a failed use case
func stopProgress(cmd *cobra.Command) {
	if s, ok := cmd.Context().Value(sinkKey).(interface{ Stop() }); ok {
		s.Stop()
	}
}

// addSourceFlags registers the flags describing the source end of the route
func addSourceFlags(cmd *cobra.Command, withChain, withWormholeID bool) {
	cmd.Flags().String(config.KeySourceKey, config.DefaultSourceKey, "Registry key of the source chain")
	cmd.Flags().String(config.KeySourceContract, config.DefaultSourceContract, "Sender contract name")
	if withChain {
		cmd.Flags().String(config.KeySourceChain, config.DefaultSourceChain, "Description of the source chain in the chains file")
	}
	if withWormholeID {
		cmd.Flags().String(config.KeySourceWormholeID, config.DefaultSourceWormholeID, "Wormhole chain ID (or name) of the source chain")
	}
}

// addTargetFlags registers the flags describing the target end of the route
func addTargetFlags(cmd *cobra.Command, withChain, withWormholeID bool) {
	cmd.Flags().String(config.KeyTargetKey, config.DefaultTargetKey, "Registry key of the target chain")
	cmd.Flags().String(config.KeyTargetContract, config.DefaultTargetContract, "Receiver contract name")
	if withChain {
		cmd.Flags().String(config.KeyTargetChain, config.DefaultTargetChain, "Description of the target chain in the chains file")
	}
	if withWormholeID {
		cmd.Flags().String(config.KeyTargetWormholeID, config.DefaultTargetWormholeID, "Wormhole chain ID (or name) of the target chain")
	}
}

//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/wormhole-demos/xmsg/internal/adapters"
	"github.com/wormhole-demos/xmsg/internal/config"
	"github.com/wormhole-demos/xmsg/internal/logging"
	"github.com/wormhole-demos/xmsg/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewDeploySender,
		usecase.NewDeployReceiver,
		usecase.NewRegisterSender,
		usecase.NewSendMessage,
		usecase.NewListChains,
		usecase.NewShowRegistry,

		// App
		NewApp,
	)
	return nil, nil
}

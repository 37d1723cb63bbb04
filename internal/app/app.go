package app

import (
	"log/slog"

	"github.com/wormhole-demos/xmsg/internal/domain/config"
	"github.com/wormhole-demos/xmsg/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Use cases
	DeploySender   *usecase.DeploySender
	DeployReceiver *usecase.DeployReceiver
	RegisterSender *usecase.RegisterSender
	SendMessage    *usecase.SendMessage
	ListChains     *usecase.ListChains
	ShowRegistry   *usecase.ShowRegistry
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	deploySender *usecase.DeploySender,
	deployReceiver *usecase.DeployReceiver,
	registerSender *usecase.RegisterSender,
	sendMessage *usecase.SendMessage,
	listChains *usecase.ListChains,
	showRegistry *usecase.ShowRegistry,
) (*App, error) {
	return &App{
		Config:         cfg,
		Log:            log,
		DeploySender:   deploySender,
		DeployReceiver: deployReceiver,
		RegisterSender: registerSender,
		SendMessage:    sendMessage,
		ListChains:     listChains,
		ShowRegistry:   showRegistry,
	}, nil
}

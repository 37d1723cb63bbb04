package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/wormhole-demos/xmsg/internal/domain/config"
)

// DeploySenderParams contains parameters for deploying the sender contract
type DeploySenderParams struct {
	// Source is the chain the sender is deployed on
	Source config.ChainRoute
}

// DeploySender deploys the message sender contract on the source chain and
// records its address in the registry.
type DeploySender struct {
	chains   ChainRepository
	deployer *contractDeployer
	sink     ProgressSink
}

// NewDeploySender creates a new DeploySender use case
func NewDeploySender(
	chains ChainRepository,
	artifacts ArtifactRepository,
	credentials CredentialResolver,
	connector ChainConnector,
	registry DeploymentRegistry,
	sink ProgressSink,
	log *slog.Logger,
) *DeploySender {
	return &DeploySender{
		chains: chains,
		deployer: &contractDeployer{
			artifacts:   artifacts,
			credentials: credentials,
			connector:   connector,
			registry:    registry,
			sink:        sink,
			log:         log.With("component", "DeploySender"),
			now:         time.Now,
		},
		sink: sink,
	}
}

// Run executes the deploy sender use case
func (uc *DeploySender) Run(ctx context.Context, params DeploySenderParams) (*DeployContractResult, error) {
	uc.sink.OnProgress(ctx, ProgressEvent{Stage: StageLoading, Message: "Loading chain configuration", Spinner: true})

	chain, err := uc.chains.FindChain(ctx, params.Source.Description)
	if err != nil {
		return nil, err
	}

	d, err := uc.deployer.deploy(ctx, params.Source, chain)
	if err != nil {
		return nil, err
	}
	defer d.session.Close()

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: StageComplete, Message: "Sender deployed"})
	return d.result, nil
}

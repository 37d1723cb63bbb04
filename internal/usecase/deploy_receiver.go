package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/wormhole-demos/xmsg/internal/domain/config"
)

// DeployReceiverParams contains parameters for deploying the receiver contract
type DeployReceiverParams struct {
	// Source is where the already deployed sender lives
	Source config.ChainRoute
	// Target is the chain the receiver is deployed on
	Target config.ChainRoute
}

// DeployReceiverResult contains the receiver deployment and its sender registration
type DeployReceiverResult struct {
	Deployment   *DeployContractResult `json:"deployment"`
	Registration *SenderRegistration   `json:"registration,omitempty"`
}

// DeployReceiver deploys the message receiver on the target chain, records it
// and registers the source chain's sender on it.
type DeployReceiver struct {
	chains   ChainRepository
	registry DeploymentRegistry
	deployer *contractDeployer
	sink     ProgressSink
	log      *slog.Logger
}

// NewDeployReceiver creates a new DeployReceiver use case
func NewDeployReceiver(
	chains ChainRepository,
	artifacts ArtifactRepository,
	credentials CredentialResolver,
	connector ChainConnector,
	registry DeploymentRegistry,
	sink ProgressSink,
	log *slog.Logger,
) *DeployReceiver {
	log = log.With("component", "DeployReceiver")
	return &DeployReceiver{
		chains:   chains,
		registry: registry,
		deployer: &contractDeployer{
			artifacts:   artifacts,
			credentials: credentials,
			connector:   connector,
			registry:    registry,
			sink:        sink,
			log:         log,
			now:         time.Now,
		},
		sink: sink,
		log:  log,
	}
}

// Run executes the deploy receiver use case. When registration fails after a
// successful deployment, the returned result still carries the deployment.
func (uc *DeployReceiver) Run(ctx context.Context, params DeployReceiverParams) (*DeployReceiverResult, error) {
	uc.sink.OnProgress(ctx, ProgressEvent{Stage: StageLoading, Message: "Loading chain configuration", Spinner: true})

	chain, err := uc.chains.FindChain(ctx, params.Target.Description)
	if err != nil {
		return nil, err
	}

	// The sender must exist before anything is sent on chain
	reg, err := uc.registry.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load deployed contracts: %w", err)
	}
	sender, err := reg.Address(params.Source.Key, params.Source.Contract)
	if err != nil {
		return nil, err
	}

	d, err := uc.deployer.deploy(ctx, params.Target, chain, SetRegisteredSenderMethod)
	if err != nil {
		return nil, err
	}
	defer d.session.Close()

	result := &DeployReceiverResult{Deployment: d.result}

	registration, err := registerSender(ctx, d.session, uc.sink, d.artifact, d.result.Address, params.Source.WormholeChainID, sender)
	if err != nil {
		uc.sink.Error(fmt.Sprintf("%s saved to %s; register it with register-sender", d.result.Address.Hex(), d.result.RegistryPath))
		return result, fmt.Errorf("%s deployed at %s and saved, but: %w", params.Target.Contract, d.result.Address.Hex(), err)
	}
	result.Registration = registration

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: StageComplete, Message: "Receiver deployed"})
	return result, nil
}

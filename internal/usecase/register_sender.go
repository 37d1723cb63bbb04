package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/wormhole-demos/xmsg/internal/domain"
	"github.com/wormhole-demos/xmsg/internal/domain/config"
)

// SetRegisteredSenderMethod is the receiver method that whitelists a sender
const SetRegisteredSenderMethod = "setRegisteredSender"

// SenderRegistration describes a setRegisteredSender transaction
type SenderRegistration struct {
	Receiver      common.Address            `json:"receiver"`
	SourceChainID uint16                    `json:"sourceChainId"`
	Sender        common.Address            `json:"sender"`
	Emitter       common.Hash               `json:"emitter"`
	Transaction   *domain.TransactionResult `json:"transaction"`
}

// registerSender whitelists sender, as seen from the given Wormhole chain,
// on the receiver contract. Callers check receiverABI has the method.
func registerSender(
	ctx context.Context,
	session ChainSession,
	sink ProgressSink,
	receiverABI *domain.Artifact,
	receiver common.Address,
	sourceChainID uint16,
	sender common.Address,
) (*SenderRegistration, error) {
	emitter := domain.EmitterAddress(sender)

	sink.OnProgress(ctx, ProgressEvent{
		Stage:   StageRegistering,
		Message: fmt.Sprintf("Registering sender %s for chain %d", sender.Hex(), sourceChainID),
		Spinner: true,
	})
	tx, err := session.Transact(ctx, domain.ContractCall{
		Address: receiver,
		ABI:     receiverABI.ABI,
		Method:  SetRegisteredSenderMethod,
		Args:    []any{sourceChainID, emitter},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register sender: %w", err)
	}

	sink.Info(fmt.Sprintf("Registered %s (%s) for %s chain (%d)",
		receiverABI.Name, sender.Hex(), domain.WormholeChainID(sourceChainID), sourceChainID))

	return &SenderRegistration{
		Receiver:      receiver,
		SourceChainID: sourceChainID,
		Sender:        sender,
		Emitter:       common.Hash(emitter),
		Transaction:   tx,
	}, nil
}

// RegisterSenderParams contains parameters for registering the sender on the receiver
type RegisterSenderParams struct {
	Source config.ChainRoute
	Target config.ChainRoute
}

// RegisterSender calls setRegisteredSender on an already deployed receiver.
// It retries the last step of DeployReceiver on its own.
type RegisterSender struct {
	chains      ChainRepository
	registry    DeploymentRegistry
	artifacts   ArtifactRepository
	credentials CredentialResolver
	connector   ChainConnector
	sink        ProgressSink
	log         *slog.Logger
}

// NewRegisterSender creates a new RegisterSender use case
func NewRegisterSender(
	chains ChainRepository,
	registry DeploymentRegistry,
	artifacts ArtifactRepository,
	credentials CredentialResolver,
	connector ChainConnector,
	sink ProgressSink,
	log *slog.Logger,
) *RegisterSender {
	return &RegisterSender{
		chains:      chains,
		registry:    registry,
		artifacts:   artifacts,
		credentials: credentials,
		connector:   connector,
		sink:        sink,
		log:         log.With("component", "RegisterSender"),
	}
}

// Run executes the register sender use case
func (uc *RegisterSender) Run(ctx context.Context, params RegisterSenderParams) (*SenderRegistration, error) {
	uc.sink.OnProgress(ctx, ProgressEvent{Stage: StageLoading, Message: "Loading deployed contracts", Spinner: true})

	reg, err := uc.registry.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load deployed contracts: %w", err)
	}
	sender, err := reg.Address(params.Source.Key, params.Source.Contract)
	if err != nil {
		return nil, err
	}
	receiver, err := reg.Address(params.Target.Key, params.Target.Contract)
	if err != nil {
		return nil, err
	}

	chain, err := uc.chains.FindChain(ctx, params.Target.Description)
	if err != nil {
		return nil, err
	}

	artifact, err := uc.artifacts.GetArtifact(ctx, params.Target.Contract)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s artifact: %w", params.Target.Contract, err)
	}
	if !artifact.HasMethod(SetRegisteredSenderMethod) {
		return nil, fmt.Errorf("%s ABI has no %s method", artifact.Name, SetRegisteredSenderMethod)
	}

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: StageCredentials, Message: "Unlocking signer"})
	signer, err := uc.credentials.ResolveSigner(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve signer: %w", err)
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   StageConnecting,
		Message: fmt.Sprintf("Connecting to %s", chain.Description),
		Spinner: true,
	})
	session, err := uc.connector.Connect(ctx, chain, signer)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", chain.Description, err)
	}
	defer session.Close()

	uc.log.Debug("registering sender", "receiver", receiver.Hex(), "sender", sender.Hex())

	registration, err := registerSender(ctx, session, uc.sink, artifact, receiver, params.Source.WormholeChainID, sender)
	if err != nil {
		return nil, err
	}

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: StageComplete, Message: "Sender registered"})
	return registration, nil
}

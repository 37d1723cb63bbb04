package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/wormhole-demos/xmsg/internal/domain"
	"github.com/wormhole-demos/xmsg/internal/domain/config"
)

// Sender contract methods
const (
	QuoteCrossChainCostMethod = "quoteCrossChainCost"
	SendMessageMethod         = "sendMessage"
)

// SendMessageParams contains parameters for sending a cross-chain message
type SendMessageParams struct {
	Source  config.ChainRoute
	Target  config.ChainRoute
	Message string
	// ExplorerNetwork selects the Wormholescan network (TESTNET when empty)
	ExplorerNetwork string
}

// SendMessageResult describes a sent message
type SendMessageResult struct {
	Sender        common.Address            `json:"sender"`
	Receiver      common.Address            `json:"receiver"`
	TargetChainID uint16                    `json:"targetChainId"`
	Message       string                    `json:"message"`
	Cost          *big.Int                  `json:"cost"`
	Transaction   *domain.TransactionResult `json:"transaction"`
	ExplorerURL   string                    `json:"explorerUrl"`
}

// SendMessage quotes the delivery cost on the sender contract and sends a
// message to the receiver, paying exactly the quote.
type SendMessage struct {
	chains      ChainRepository
	registry    DeploymentRegistry
	artifacts   ArtifactRepository
	credentials CredentialResolver
	connector   ChainConnector
	sink        ProgressSink
	log         *slog.Logger
}

// NewSendMessage creates a new SendMessage use case
func NewSendMessage(
	chains ChainRepository,
	registry DeploymentRegistry,
	artifacts ArtifactRepository,
	credentials CredentialResolver,
	connector ChainConnector,
	sink ProgressSink,
	log *slog.Logger,
) *SendMessage {
	return &SendMessage{
		chains:      chains,
		registry:    registry,
		artifacts:   artifacts,
		credentials: credentials,
		connector:   connector,
		sink:        sink,
		log:         log.With("component", "SendMessage"),
	}
}

// Run executes the send message use case
func (uc *SendMessage) Run(ctx context.Context, params SendMessageParams) (*SendMessageResult, error) {
	uc.sink.OnProgress(ctx, ProgressEvent{Stage: StageLoading, Message: "Loading deployed contracts", Spinner: true})

	reg, err := uc.registry.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load deployed contracts: %w", err)
	}

	sender, senderErr := reg.Address(params.Source.Key, params.Source.Contract)
	if senderErr == nil {
		uc.sink.Info("Sender Contract Address: " + sender.Hex())
	}
	receiver, receiverErr := reg.Address(params.Target.Key, params.Target.Contract)
	if receiverErr == nil {
		uc.sink.Info("Receiver Contract Address: " + receiver.Hex())
	}
	if err := errors.Join(senderErr, receiverErr); err != nil {
		return nil, err
	}

	chain, err := uc.chains.FindChain(ctx, params.Source.Description)
	if err != nil {
		return nil, err
	}

	artifact, err := uc.artifacts.GetArtifact(ctx, params.Source.Contract)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s artifact: %w", params.Source.Contract, err)
	}
	for _, method := range []string{QuoteCrossChainCostMethod, SendMessageMethod} {
		if !artifact.HasMethod(method) {
			return nil, fmt.Errorf("%s ABI has no %s method", artifact.Name, method)
		}
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

	targetChainID := params.Target.WormholeChainID

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: StageQuoting, Message: "Quoting delivery cost", Spinner: true})
	out, err := session.Call(ctx, domain.ContractCall{
		Address: sender,
		ABI:     artifact.ABI,
		Method:  QuoteCrossChainCostMethod,
		Args:    []any{targetChainID},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to quote cross-chain cost: %w", err)
	}
	cost, err := quotedCost(out)
	if err != nil {
		return nil, err
	}
	uc.log.Debug("quoted delivery cost", "targetChain", targetChainID, "cost", cost.String())

	uc.sink.Info("Sending message...")
	uc.sink.OnProgress(ctx, ProgressEvent{Stage: StageSending, Message: "Broadcasting and waiting for confirmation", Spinner: true})
	tx, err := session.Transact(ctx, domain.ContractCall{
		Address: sender,
		ABI:     artifact.ABI,
		Method:  SendMessageMethod,
		Args:    []any{targetChainID, receiver, params.Message},
		Value:   cost,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	result := &SendMessageResult{
		Sender:        sender,
		Receiver:      receiver,
		TargetChainID: targetChainID,
		Message:       params.Message,
		Cost:          cost,
		Transaction:   tx,
		ExplorerURL:   domain.WormholescanTxURL(tx.Hash, params.ExplorerNetwork),
	}

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: StageComplete, Message: "Message sent"})
	return result, nil
}

// quotedCost extracts the single uint256 returned by quoteCrossChainCost
func quotedCost(out []any) (*big.Int, error) {
	if len(out) != 1 {
		return nil, fmt.Errorf("%s returned %d values, expected 1", QuoteCrossChainCostMethod, len(out))
	}
	cost, ok := out[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("%s returned %T, expected uint256", QuoteCrossChainCostMethod, out[0])
	}
	return cost, nil
}

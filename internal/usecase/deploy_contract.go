package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/wormhole-demos/xmsg/internal/domain"
	"github.com/wormhole-demos/xmsg/internal/domain/config"
)

// DeployContractResult describes a contract deployed by one of the deploy use cases
type DeployContractResult struct {
	ChainKey     string                    `json:"chainKey"`
	Chain        *domain.Chain             `json:"chain"`
	Contract     string                    `json:"contract"`
	Address      common.Address            `json:"address"`
	Deployer     common.Address            `json:"deployer"`
	Transaction  *domain.TransactionResult `json:"transaction"`
	Entry        *domain.ChainDeployment   `json:"entry"`
	RegistryPath string                    `json:"registryPath"`
}

// contractDeployer runs the shared deploy pipeline: artifact, signer,
// connection, creation transaction and registry entry.
type contractDeployer struct {
	artifacts   ArtifactRepository
	credentials CredentialResolver
	connector   ChainConnector
	registry    DeploymentRegistry
	sink        ProgressSink
	log         *slog.Logger
	now         func() time.Time
}

// deployment is an open session plus what was deployed through it. The
// caller owns closing the session.
type deployment struct {
	result   *DeployContractResult
	artifact *domain.Artifact
	session  ChainSession
}

// deploy fails before unlocking the signer when the artifact lacks any of
// requiredMethods.
func (d *contractDeployer) deploy(ctx context.Context, route config.ChainRoute, chain *domain.Chain, requiredMethods ...string) (*deployment, error) {
	relayer, err := chain.RelayerAddress()
	if err != nil {
		return nil, fmt.Errorf("invalid wormholeRelayer for %s: %w", chain.Description, err)
	}

	d.sink.OnProgress(ctx, ProgressEvent{
		Stage:   StageLoading,
		Message: fmt.Sprintf("Loading %s artifact", route.Contract),
		Spinner: true,
	})
	artifact, err := d.artifacts.GetArtifact(ctx, route.Contract)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s artifact: %w", route.Contract, err)
	}
	if !artifact.HasBytecode() {
		return nil, fmt.Errorf("%s: %w", artifact.Path, domain.ErrMissingBytecode)
	}
	for _, method := range requiredMethods {
		if !artifact.HasMethod(method) {
			return nil, fmt.Errorf("%s ABI has no %s method", artifact.Name, method)
		}
	}

	d.sink.OnProgress(ctx, ProgressEvent{Stage: StageCredentials, Message: "Unlocking signer"})
	signer, err := d.credentials.ResolveSigner(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve signer: %w", err)
	}

	d.sink.OnProgress(ctx, ProgressEvent{
		Stage:   StageConnecting,
		Message: fmt.Sprintf("Connecting to %s", chain.Description),
		Spinner: true,
	})
	session, err := d.connector.Connect(ctx, chain, signer)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", chain.Description, err)
	}

	d.log.Debug("deploying contract",
		"contract", route.Contract,
		"chain", chain.Description,
		"relayer", relayer.Hex(),
		"deployer", signer.Address.Hex())

	d.sink.OnProgress(ctx, ProgressEvent{
		Stage:   StageDeploying,
		Message: fmt.Sprintf("Deploying %s to %s", route.Contract, chain.Description),
		Spinner: true,
	})
	tx, err := session.Deploy(ctx, artifact, relayer)
	if err != nil {
		session.Close()
		return nil, fmt.Errorf("failed to deploy %s: %w", route.Contract, err)
	}
	d.sink.Info(fmt.Sprintf("%s deployed to: %s", route.Contract, tx.ContractAddress.Hex()))

	entry := domain.NewChainDeployment(route.Contract, tx.ContractAddress, d.now())

	d.sink.OnProgress(ctx, ProgressEvent{Stage: StageSaving, Message: "Saving deployed contracts"})
	if err := d.registry.SaveChainDeployment(ctx, route.Key, entry); err != nil {
		session.Close()
		return nil, fmt.Errorf("%s deployed at %s but saving %s failed: %w",
			route.Contract, tx.ContractAddress.Hex(), d.registry.Path(), err)
	}

	return &deployment{
		result: &DeployContractResult{
			ChainKey:     route.Key,
			Chain:        chain,
			Contract:     route.Contract,
			Address:      tx.ContractAddress,
			Deployer:     signer.Address,
			Transaction:  tx,
			Entry:        entry,
			RegistryPath: d.registry.Path(),
		},
		artifact: artifact,
		session:  session,
	}, nil
}

package usecase

import (
	"context"

	"github.com/wormhole-demos/xmsg/internal/domain"
)

// ChainRepository provides access to the chains file
type ChainRepository interface {
	ListChains(ctx context.Context) ([]domain.Chain, error)
	// FindChain returns the first chain whose description contains the given
	// substring, or a domain.ChainNotFoundErr.
	FindChain(ctx context.Context, description string) (*domain.Chain, error)
}

// DeploymentRegistry handles persistence of deployed contract addresses
type DeploymentRegistry interface {
	Load(ctx context.Context) (*domain.Registry, error)
	// SaveChainDeployment replaces the entry of one chain and leaves every
	// other entry untouched.
	SaveChainDeployment(ctx context.Context, chainKey string, entry *domain.ChainDeployment) error
	Path() string
}

// ArtifactRepository loads compiled contracts
type ArtifactRepository interface {
	GetArtifact(ctx context.Context, name string) (*domain.Artifact, error)
}

// CredentialResolver produces the signer used for transactions
type CredentialResolver interface {
	ResolveSigner(ctx context.Context) (*domain.Signer, error)
}

// PasswordPrompter asks the user for a secret
type PasswordPrompter interface {
	PromptPassword(ctx context.Context, label string) (string, error)
}

// ChainConnector opens signing sessions against a chain's RPC endpoint
type ChainConnector interface {
	Connect(ctx context.Context, chain *domain.Chain, signer *domain.Signer) (ChainSession, error)
}

// ChainSession sends transactions from one signer on one chain
type ChainSession interface {
	// Deploy submits a contract creation and waits for it to be mined.
	Deploy(ctx context.Context, artifact *domain.Artifact, args ...any) (*domain.TransactionResult, error)
	// Transact submits a method call and waits for it to be mined.
	Transact(ctx context.Context, call domain.ContractCall) (*domain.TransactionResult, error)
	// Call performs a read-only method call.
	Call(ctx context.Context, call domain.ContractCall) ([]any, error)
	Close()
}

// ChainIDProber reads the EVM chain ID behind an RPC URL
type ChainIDProber interface {
	ProbeChainID(ctx context.Context, rpcURL string) (uint64, error)
}

// Progress tracking interfaces

// Progress stages reported by the use cases
const (
	StageLoading     = "loading"
	StageCredentials = "credentials"
	StageConnecting  = "connecting"
	StageDeploying   = "deploying"
	StageRegistering = "registering"
	StageQuoting     = "quoting"
	StageSending     = "sending"
	StageSaving      = "saving"
	StageProbing     = "probing"
	StageComplete    = "complete"
)

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Current int
	Total   int
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

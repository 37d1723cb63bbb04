package adapters

import (
	"github.com/google/wire"
	"github.com/wormhole-demos/xmsg/internal/adapters/blockchain"
	"github.com/wormhole-demos/xmsg/internal/adapters/credentials"
	"github.com/wormhole-demos/xmsg/internal/adapters/fs"
	"github.com/wormhole-demos/xmsg/internal/adapters/interactive"
	"github.com/wormhole-demos/xmsg/internal/usecase"
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewChainStoreAdapter,
	wire.Bind(new(usecase.ChainRepository), new(*fs.ChainStoreAdapter)),

	fs.NewRegistryStoreAdapter,
	wire.Bind(new(usecase.DeploymentRegistry), new(*fs.RegistryStoreAdapter)),

	fs.NewArtifactLoaderAdapter,
	wire.Bind(new(usecase.ArtifactRepository), new(*fs.ArtifactLoaderAdapter)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewPasswordPrompterAdapter,
	wire.Bind(new(usecase.PasswordPrompter), new(*interactive.PasswordPrompterAdapter)),
)

// CredentialsSet provides signer resolution
var CredentialsSet = wire.NewSet(
	credentials.NewCredentialResolver,
)

// BlockchainSet provides blockchain-based implementations
var BlockchainSet = wire.NewSet(
	blockchain.NewConnectorAdapter,
	wire.Bind(new(usecase.ChainConnector), new(*blockchain.ConnectorAdapter)),

	blockchain.NewCheckerAdapter,
	wire.Bind(new(usecase.ChainIDProber), new(*blockchain.CheckerAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	InteractiveSet,
	CredentialsSet,
	BlockchainSet,
)

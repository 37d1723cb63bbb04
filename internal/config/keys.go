package config

// Configuration keys. Flags, XMSG_* env vars and .xmsg/config.json all use
// these names (env vars with dashes replaced by underscores).
const (
	KeyProjectRoot    = "project-root"
	KeyDebug          = "debug"
	KeyNonInteractive = "non-interactive"
	KeyJSON           = "json"
	KeyTimeout        = "timeout"

	KeyChainsFile   = "chains-file"
	KeyRegistryFile = "registry-file"
	KeyArtifactsDir = "artifacts-dir"

	KeyKeySource        = "key-source"
	KeyKeystoreDir      = "keystore-dir"
	KeyKeystoreAccount  = "keystore-account"
	KeyKeystorePassword = "keystore-password"
	KeyPrivateKeyEnv    = "private-key-env"

	KeySourceKey        = "source-key"
	KeySourceChain      = "source-chain"
	KeySourceWormholeID = "source-wormhole-id"
	KeySourceContract   = "source-contract"
	KeyTargetKey        = "target-key"
	KeyTargetChain      = "target-chain"
	KeyTargetWormholeID = "target-wormhole-id"
	KeyTargetContract   = "target-contract"

	KeyMessage         = "message"
	KeyExplorerNetwork = "explorer-network"
)

// Defaults reproduce the Avalanche -> Celo demo.
const (
	DefaultDataDir         = ".xmsg"
	DefaultChainsFile      = "deploy-config/chains.json"
	DefaultRegistryFile    = "deploy-config/deployedContracts.json"
	DefaultKeystoreDir     = "~/.foundry/keystores"
	DefaultKeystoreAccount = "CELO_AVAX"
	DefaultPrivateKeyEnv   = "PRIVATE_KEY"

	DefaultSourceKey        = "avalanche"
	DefaultSourceChain      = "Avalanche testnet"
	DefaultSourceWormholeID = "6"
	DefaultSourceContract   = "MessageSender"
	DefaultTargetKey        = "celo"
	DefaultTargetChain      = "Celo Testnet"
	DefaultTargetWormholeID = "14"
	DefaultTargetContract   = "MessageReceiver"

	DefaultMessage         = "Hello from Avalanche to Celo!"
	DefaultExplorerNetwork = "TESTNET"
)

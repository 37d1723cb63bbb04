package config

import (
	"path/filepath"
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	DataDir     string

	// Project files
	ChainsFile   string
	RegistryFile string
	ArtifactsDir string

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool // Output in JSON format
	Timeout        time.Duration

	// Signing
	Credentials CredentialConfig

	// What the messaging commands act on
	Route           Route
	Message         string
	ExplorerNetwork string
}

// CredentialSource selects where the signing key comes from
type CredentialSource string

const (
	CredentialSourceKeystore CredentialSource = "keystore"
	CredentialSourceEnv      CredentialSource = "env"
)

// CredentialConfig configures signer resolution
type CredentialConfig struct {
	Source           CredentialSource
	KeystoreDir      string
	KeystoreAccount  string
	KeystorePassword string // only consulted in non-interactive mode
	PrivateKeyEnv    string
}

// KeystorePath returns the full path of the keystore file
func (c CredentialConfig) KeystorePath() string {
	return filepath.Join(c.KeystoreDir, c.KeystoreAccount)
}

// ChainRoute is one end of a messaging route
type ChainRoute struct {
	Key             string // registry key, e.g. "avalanche"
	Description     string // substring matched against chains file descriptions
	WormholeChainID uint16
	Contract        string // artifact name and registry role
}

// Route is the pair of chains the messaging commands operate on
type Route struct {
	Source ChainRoute
	Target ChainRoute
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wormhole-demos/xmsg/internal/domain/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestProvider(t *testing.T) {
	t.Run("defaults reproduce the avalanche to celo demo", func(t *testing.T) {
		root := t.TempDir()

		cfg, err := Provider(SetupViper(root, nil))
		require.NoError(t, err)

		assert.Equal(t, root, cfg.ProjectRoot)
		assert.Equal(t, filepath.Join(root, ".xmsg"), cfg.DataDir)
		assert.Equal(t, filepath.Join(root, "deploy-config", "chains.json"), cfg.ChainsFile)
		assert.Equal(t, filepath.Join(root, "deploy-config", "deployedContracts.json"), cfg.RegistryFile)
		assert.Equal(t, filepath.Join(root, "out"), cfg.ArtifactsDir)
		assert.Equal(t, 5*time.Minute, cfg.Timeout)

		assert.Equal(t, config.CredentialSourceKeystore, cfg.Credentials.Source)
		assert.Equal(t, "CELO_AVAX", cfg.Credentials.KeystoreAccount)
		assert.True(t, filepath.IsAbs(cfg.Credentials.KeystoreDir))
		assert.Equal(t, filepath.Join(".foundry", "keystores"),
			filepath.Join(filepath.Base(filepath.Dir(cfg.Credentials.KeystoreDir)), filepath.Base(cfg.Credentials.KeystoreDir)))
		assert.Equal(t, "PRIVATE_KEY", cfg.Credentials.PrivateKeyEnv)

		assert.Equal(t, config.ChainRoute{
			Key:             "avalanche",
			Description:     "Avalanche testnet",
			WormholeChainID: 6,
			Contract:        "MessageSender",
		}, cfg.Route.Source)
		assert.Equal(t, config.ChainRoute{
			Key:             "celo",
			Description:     "Celo Testnet",
			WormholeChainID: 14,
			Contract:        "MessageReceiver",
		}, cfg.Route.Target)
		assert.Equal(t, "Hello from Avalanche to Celo!", cfg.Message)
		assert.Equal(t, "TESTNET", cfg.ExplorerNetwork)
	})

	t.Run("foundry.toml out directory is used for artifacts", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "foundry.toml"), "[profile.default]\nsrc = \"src\"\nout = \"build/artifacts\"\n")

		cfg, err := Provider(SetupViper(root, nil))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "build", "artifacts"), cfg.ArtifactsDir)
	})

	t.Run("malformed foundry.toml is an error", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "foundry.toml"), "[profile.default\n")

		_, err := Provider(SetupViper(root, nil))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "foundry.toml")
	})

	t.Run("environment overrides route", func(t *testing.T) {
		root := t.TempDir()
		t.Setenv("XMSG_SOURCE_CHAIN", "Sepolia")
		t.Setenv("XMSG_SOURCE_WORMHOLE_ID", "sepolia")
		t.Setenv("XMSG_KEY_SOURCE", "ENV")

		cfg, err := Provider(SetupViper(root, nil))
		require.NoError(t, err)
		assert.Equal(t, "Sepolia", cfg.Route.Source.Description)
		assert.Equal(t, uint16(10002), cfg.Route.Source.WormholeChainID)
		assert.Equal(t, config.CredentialSourceEnv, cfg.Credentials.Source)
	})

	t.Run("config file overrides defaults", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, ".xmsg", "config.json"), `{"message": "gm", "registry-file": "/tmp/registry.json"}`)

		cfg, err := Provider(SetupViper(root, nil))
		require.NoError(t, err)
		assert.Equal(t, "gm", cfg.Message)
		assert.Equal(t, "/tmp/registry.json", cfg.RegistryFile)
	})

	t.Run(".env file is loaded from the project root", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, ".env"), "XMSG_EXPLORER_NETWORK=mainnet\n")
		t.Cleanup(func() { os.Unsetenv("XMSG_EXPLORER_NETWORK") })

		cfg, err := Provider(SetupViper(root, nil))
		require.NoError(t, err)
		assert.Equal(t, "mainnet", cfg.ExplorerNetwork)
	})

	t.Run("unknown key source", func(t *testing.T) {
		root := t.TempDir()
		v := SetupViper(root, nil)
		v.Set(KeyKeySource, "ledger")

		_, err := Provider(v)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown key source")
	})

	t.Run("invalid wormhole chain id", func(t *testing.T) {
		root := t.TempDir()
		v := SetupViper(root, nil)
		v.Set(KeyTargetWormholeID, "not-a-chain")

		_, err := Provider(v)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid target route")
	})

	t.Run("empty route field", func(t *testing.T) {
		root := t.TempDir()
		v := SetupViper(root, nil)
		v.Set(KeySourceKey, "")

		_, err := Provider(v)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid source route")
	})
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "deploy-config", "chains.json"), `{"chains": []}`)
	nested := filepath.Join(root, "script", "nested")
	require.NoError(t, os.MkdirAll(nested, 0755))

	t.Chdir(nested)

	found, err := FindProjectRoot()
	require.NoError(t, err)

	// Resolve symlinks (macOS temp dirs live under /private)
	want, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(found)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		in   string
		want string
	}{
		{in: "~/.foundry/keystores", want: filepath.Join(home, ".foundry", "keystores")},
		{in: "~", want: home},
		{in: "/abs/path", want: "/abs/path"},
		{in: "relative/~", want: "relative/~"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := expandHome(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

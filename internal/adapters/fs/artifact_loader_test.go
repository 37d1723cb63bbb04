package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wormhole-demos/xmsg/internal/domain"
	"github.com/wormhole-demos/xmsg/internal/domain/config"
)

const senderABI = `[
  {"type":"constructor","inputs":[{"name":"_wormholeRelayer","type":"address","internalType":"address"}],"stateMutability":"nonpayable"},
  {"type":"function","name":"quoteCrossChainCost","inputs":[{"name":"targetChain","type":"uint16","internalType":"uint16"}],"outputs":[{"name":"cost","type":"uint256","internalType":"uint256"}],"stateMutability":"view"}
]`

func writeArtifact(t *testing.T, outDir, name, content string) {
	t.Helper()
	dir := filepath.Join(outDir, name+".sol")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".json"), []byte(content), 0644))
}

func TestArtifactLoaderAdapter(t *testing.T) {
	ctx := context.Background()

	t.Run("foundry object bytecode", func(t *testing.T) {
		out := t.TempDir()
		writeArtifact(t, out, "MessageSender", `{"abi": `+senderABI+`, "bytecode": {"object": "0x6080604052", "linkReferences": {}}}`)

		loader := NewArtifactLoaderAdapter(&config.RuntimeConfig{ArtifactsDir: out})
		artifact, err := loader.GetArtifact(ctx, "MessageSender")
		require.NoError(t, err)

		assert.Equal(t, "MessageSender", artifact.Name)
		assert.Equal(t, filepath.Join(out, "MessageSender.sol", "MessageSender.json"), artifact.Path)
		assert.Equal(t, []byte{0x60, 0x80, 0x60, 0x40, 0x52}, artifact.Bytecode)
		assert.True(t, artifact.HasMethod("quoteCrossChainCost"))
		assert.Len(t, artifact.ABI.Constructor.Inputs, 1)
	})

	t.Run("plain string bytecode", func(t *testing.T) {
		out := t.TempDir()
		writeArtifact(t, out, "MessageReceiver", `{"abi": [], "bytecode": "0x60016002"}`)

		artifact, err := NewArtifactLoaderAdapter(&config.RuntimeConfig{ArtifactsDir: out}).GetArtifact(ctx, "MessageReceiver")
		require.NoError(t, err)
		assert.Equal(t, []byte{0x60, 0x01, 0x60, 0x02}, artifact.Bytecode)
	})

	t.Run("interface artifact has no bytecode", func(t *testing.T) {
		out := t.TempDir()
		writeArtifact(t, out, "IWormholeRelayer", `{"abi": [], "bytecode": {"object": "0x"}}`)

		artifact, err := NewArtifactLoaderAdapter(&config.RuntimeConfig{ArtifactsDir: out}).GetArtifact(ctx, "IWormholeRelayer")
		require.NoError(t, err)
		assert.False(t, artifact.HasBytecode())
	})

	t.Run("missing artifact", func(t *testing.T) {
		_, err := NewArtifactLoaderAdapter(&config.RuntimeConfig{ArtifactsDir: t.TempDir()}).GetArtifact(ctx, "MessageSender")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Contains(t, err.Error(), "forge build")
	})

	t.Run("unlinked libraries are rejected", func(t *testing.T) {
		out := t.TempDir()
		writeArtifact(t, out, "Linked", `{"abi": [], "bytecode": {"object": "0x6080__$1234567890abcdef1234567890abcdef12$__"}}`)

		_, err := NewArtifactLoaderAdapter(&config.RuntimeConfig{ArtifactsDir: out}).GetArtifact(ctx, "Linked")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unlinked")
	})

	t.Run("invalid hex", func(t *testing.T) {
		out := t.TempDir()
		writeArtifact(t, out, "Broken", `{"abi": [], "bytecode": "0x60zz"}`)

		_, err := NewArtifactLoaderAdapter(&config.RuntimeConfig{ArtifactsDir: out}).GetArtifact(ctx, "Broken")
		require.Error(t, err)
	})

	t.Run("missing abi", func(t *testing.T) {
		out := t.TempDir()
		writeArtifact(t, out, "NoABI", `{"bytecode": "0x00"}`)

		_, err := NewArtifactLoaderAdapter(&config.RuntimeConfig{ArtifactsDir: out}).GetArtifact(ctx, "NoABI")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no abi")
	})
}

package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/wormhole-demos/xmsg/internal/domain"
	"github.com/wormhole-demos/xmsg/internal/domain/config"
)

// ArtifactLoaderAdapter reads Foundry build output
type ArtifactLoaderAdapter struct {
	outDir string
}

// NewArtifactLoaderAdapter creates a new loader for cfg.ArtifactsDir
func NewArtifactLoaderAdapter(cfg *config.RuntimeConfig) *ArtifactLoaderAdapter {
	return &ArtifactLoaderAdapter{outDir: cfg.ArtifactsDir}
}

// foundryArtifact is the subset of a forge artifact we consume. Bytecode is
// either a hex string or {"object": "0x..."}.
type foundryArtifact struct {
	ABI      json.RawMessage `json:"abi"`
	Bytecode json.RawMessage `json:"bytecode"`
}

// ArtifactPath returns where forge writes the artifact of a contract
func (a *ArtifactLoaderAdapter) ArtifactPath(name string) string {
	return filepath.Join(a.outDir, name+".sol", name+".json")
}

// GetArtifact loads <out>/<name>.sol/<name>.json
func (a *ArtifactLoaderAdapter) GetArtifact(ctx context.Context, name string) (*domain.Artifact, error) {
	path := a.ArtifactPath(name)

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("artifact %s (run `forge build`): %w", path, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact: %w", err)
	}

	var raw foundryArtifact
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse artifact %s: %w", path, err)
	}
	if len(raw.ABI) == 0 {
		return nil, fmt.Errorf("artifact %s has no abi", path)
	}

	parsedABI, err := abi.JSON(bytes.NewReader(raw.ABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI for %s: %w", name, err)
	}

	bytecode, err := decodeBytecode(raw.Bytecode)
	if err != nil {
		return nil, fmt.Errorf("invalid bytecode in %s: %w", path, err)
	}

	return &domain.Artifact{
		Name:     name,
		Path:     path,
		ABI:      parsedABI,
		Bytecode: bytecode,
	}, nil
}

func decodeBytecode(raw json.RawMessage) ([]byte, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var hexCode string
	if err := json.Unmarshal(raw, &hexCode); err != nil {
		var obj struct {
			Object string `json:"object"`
		}
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, fmt.Errorf("expected hex string or object: %w", err)
		}
		hexCode = obj.Object
	}

	// Unlinked library references cannot be deployed as-is
	if strings.Contains(hexCode, "__$") {
		return nil, errors.New("bytecode has unlinked library references")
	}

	trimmed := strings.TrimPrefix(strings.TrimPrefix(hexCode, "0x"), "0X")
	return hexutil.Decode("0x" + trimmed)
}

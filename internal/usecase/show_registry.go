package usecase

import (
	"context"
	"fmt"

	"github.com/wormhole-demos/xmsg/internal/domain"
)

// ShowRegistryParams contains parameters for showing the registry
type ShowRegistryParams struct {
	// ChainKey restricts the output to one entry when set
	ChainKey string
}

// RegistryEntry is one chain's entry of the registry
type RegistryEntry struct {
	ChainKey   string            `json:"chainKey"`
	Contracts  map[string]string `json:"contracts"`
	DeployedAt string            `json:"deployedAt,omitempty"`
}

// RegistryResult contains registry entries sorted by chain key
type RegistryResult struct {
	Path    string          `json:"path"`
	Entries []RegistryEntry `json:"entries"`
}

// ShowRegistry reads the deployed contracts registry
type ShowRegistry struct {
	registry DeploymentRegistry
	sink     ProgressSink
}

// NewShowRegistry creates a new ShowRegistry use case
func NewShowRegistry(registry DeploymentRegistry, sink ProgressSink) *ShowRegistry {
	return &ShowRegistry{
		registry: registry,
		sink:     sink,
	}
}

// Run executes the show registry use case
func (uc *ShowRegistry) Run(ctx context.Context, params ShowRegistryParams) (*RegistryResult, error) {
	uc.sink.OnProgress(ctx, ProgressEvent{Stage: StageLoading, Message: "Loading deployed contracts", Spinner: true})

	reg, err := uc.registry.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load deployed contracts: %w", err)
	}

	result := &RegistryResult{Path: uc.registry.Path(), Entries: []RegistryEntry{}}
	for _, key := range reg.Keys() {
		if params.ChainKey != "" && key != params.ChainKey {
			continue
		}
		entry, _ := reg.Get(key)
		if entry == nil {
			continue
		}
		result.Entries = append(result.Entries, RegistryEntry{
			ChainKey:   key,
			Contracts:  entry.Contracts,
			DeployedAt: entry.DeployedAt,
		})
	}

	if params.ChainKey != "" && len(result.Entries) == 0 {
		return nil, fmt.Errorf("chain %q: %w", params.ChainKey, domain.ErrNotFound)
	}

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: StageComplete, Message: "Loaded deployed contracts"})
	return result, nil
}

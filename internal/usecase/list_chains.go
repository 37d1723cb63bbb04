package usecase

import (
	"context"
	"fmt"

	"github.com/wormhole-demos/xmsg/internal/domain"
)

// ListChainsParams contains parameters for listing chains
type ListChainsParams struct {
	// Probe queries every RPC endpoint for its EVM chain ID
	Probe bool
}

// ChainInfo is a chain descriptor plus what probing its RPC revealed
type ChainInfo struct {
	Chain      domain.Chain `json:"chain"`
	EVMChainID uint64       `json:"evmChainId,omitempty"`
	ProbeError string       `json:"probeError,omitempty"`
}

// ChainListResult contains the result of listing chains
type ChainListResult struct {
	Chains []ChainInfo `json:"chains"`
}

// ListChains lists the chains file, optionally probing each RPC endpoint
type ListChains struct {
	chains ChainRepository
	prober ChainIDProber
	sink   ProgressSink
}

// NewListChains creates a new ListChains use case
func NewListChains(chains ChainRepository, prober ChainIDProber, sink ProgressSink) *ListChains {
	return &ListChains{
		chains: chains,
		prober: prober,
		sink:   sink,
	}
}

// Run executes the list chains use case
func (uc *ListChains) Run(ctx context.Context, params ListChainsParams) (*ChainListResult, error) {
	uc.sink.OnProgress(ctx, ProgressEvent{Stage: StageLoading, Message: "Loading chain configuration", Spinner: true})

	chains, err := uc.chains.ListChains(ctx)
	if err != nil {
		return nil, err
	}

	result := &ChainListResult{Chains: make([]ChainInfo, 0, len(chains))}
	for i, chain := range chains {
		info := ChainInfo{Chain: chain}
		if params.Probe {
			uc.sink.OnProgress(ctx, ProgressEvent{
				Stage:   StageProbing,
				Current: i + 1,
				Total:   len(chains),
				Message: fmt.Sprintf("Probing %s", chain.Description),
				Spinner: true,
			})
			id, err := uc.prober.ProbeChainID(ctx, chain.RPC)
			if err != nil {
				info.ProbeError = err.Error()
			} else {
				info.EVMChainID = id
			}
		}
		result.Chains = append(result.Chains, info)
	}

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: StageComplete, Message: fmt.Sprintf("%d chains", len(chains))})
	return result, nil
}

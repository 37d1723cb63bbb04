package blockchain

import (
	"context"
	"fmt"
	"time"

	"github.com/wormhole-demos/xmsg/internal/usecase"
)

const probeTimeout = 10 * time.Second

// CheckerAdapter reads chain IDs from RPC endpoints
type CheckerAdapter struct {
	dial Dialer
}

// NewCheckerAdapter creates a new chain ID prober
func NewCheckerAdapter() *CheckerAdapter {
	return &CheckerAdapter{dial: DialEthclient}
}

// ProbeChainID connects to rpcURL and returns its EVM chain ID
func (c *CheckerAdapter) ProbeChainID(ctx context.Context, rpcURL string) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	backend, closeFn, err := c.dial(ctx, rpcURL)
	if err != nil {
		return 0, fmt.Errorf("failed to connect to RPC: %w", err)
	}
	defer closeFn()

	chainID, err := backend.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get chain ID: %w", err)
	}
	return chainID.Uint64(), nil
}

var _ usecase.ChainIDProber = (*CheckerAdapter)(nil)

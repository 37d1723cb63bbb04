package blockchain

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/wormhole-demos/xmsg/internal/domain"
	"github.com/wormhole-demos/xmsg/internal/usecase"
)

// Backend is what a session needs from an RPC client
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
}

// Dialer opens a backend for an RPC URL. The returned func releases it.
type Dialer func(ctx context.Context, rpcURL string) (Backend, func(), error)

// DialEthclient dials a JSON-RPC endpoint with ethclient
func DialEthclient(ctx context.Context, rpcURL string) (Backend, func(), error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, nil, err
	}
	return client, client.Close, nil
}

// ConnectorAdapter opens signing sessions on EVM chains
type ConnectorAdapter struct {
	dial Dialer
	log  *slog.Logger
}

// NewConnectorAdapter creates a connector that dials with ethclient
func NewConnectorAdapter(log *slog.Logger) *ConnectorAdapter {
	return NewConnectorAdapterWithDialer(DialEthclient, log)
}

// NewConnectorAdapterWithDialer creates a connector with a custom dialer
func NewConnectorAdapterWithDialer(dial Dialer, log *slog.Logger) *ConnectorAdapter {
	return &ConnectorAdapter{
		dial: dial,
		log:  log.With("component", "ChainConnector"),
	}
}

// Connect dials the chain's RPC and reads its chain ID for transaction signing
func (c *ConnectorAdapter) Connect(ctx context.Context, chain *domain.Chain, signer *domain.Signer) (usecase.ChainSession, error) {
	if chain.RPC == "" {
		return nil, fmt.Errorf("no rpc configured for %s", chain.Description)
	}

	c.log.Debug("dialing rpc", "chain", chain.Description, "rpc", chain.RPC)
	backend, closeFn, err := c.dial(ctx, chain.RPC)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}

	chainID, err := backend.ChainID(ctx)
	if err != nil {
		closeFn()
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}
	c.log.Debug("connected", "chain", chain.Description, "chainId", chainID)

	return newSession(backend, closeFn, chainID, signer, c.log), nil
}

var _ usecase.ChainConnector = (*ConnectorAdapter)(nil)

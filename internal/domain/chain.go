package domain

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Chain is one network entry of the chains file.
type Chain struct {
	Description     string `json:"description" yaml:"description"`
	ChainID         uint16 `json:"chainId,omitempty" yaml:"chainId,omitempty"` // Wormhole chain ID
	RPC             string `json:"rpc" yaml:"rpc"`
	TokenBridge     string `json:"tokenBridge,omitempty" yaml:"tokenBridge,omitempty"`
	WormholeRelayer string `json:"wormholeRelayer" yaml:"wormholeRelayer"`
	Wormhole        string `json:"wormhole,omitempty" yaml:"wormhole,omitempty"`
}

// ChainsConfig is the root document of the chains file.
type ChainsConfig struct {
	Chains []Chain `json:"chains" yaml:"chains"`
}

// Find returns the first chain whose description contains the given substring.
func (c *ChainsConfig) Find(description string) (*Chain, bool) {
	for i := range c.Chains {
		if strings.Contains(c.Chains[i].Description, description) {
			return &c.Chains[i], true
		}
	}
	return nil, false
}

// Descriptions returns the description of every configured chain in file order.
func (c *ChainsConfig) Descriptions() []string {
	out := make([]string, len(c.Chains))
	for i, chain := range c.Chains {
		out[i] = chain.Description
	}
	return out
}

// RelayerAddress parses the chain's Wormhole relayer address.
func (c *Chain) RelayerAddress() (common.Address, error) {
	return ParseAddress(c.WormholeRelayer)
}

// ParseAddress validates a hex-encoded Ethereum address.
func ParseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return common.HexToAddress(s), nil
}

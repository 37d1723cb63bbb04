package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// WormholeChainID identifies a chain in the Wormhole protocol. It is distinct
// from the EVM chain ID returned by eth_chainId.
type WormholeChainID uint16

const (
	WormholeChainSolana    WormholeChainID = 1
	WormholeChainEthereum  WormholeChainID = 2
	WormholeChainBSC       WormholeChainID = 4
	WormholeChainPolygon   WormholeChainID = 5
	WormholeChainAvalanche WormholeChainID = 6
	WormholeChainFantom    WormholeChainID = 10
	WormholeChainKlaytn    WormholeChainID = 13
	WormholeChainCelo      WormholeChainID = 14
	WormholeChainMoonbeam  WormholeChainID = 16
	WormholeChainArbitrum  WormholeChainID = 23
	WormholeChainOptimism  WormholeChainID = 24
	WormholeChainBase      WormholeChainID = 30
	WormholeChainSepolia   WormholeChainID = 10002
)

var wormholeChainNames = map[WormholeChainID]string{
	WormholeChainSolana:    "solana",
	WormholeChainEthereum:  "ethereum",
	WormholeChainBSC:       "bsc",
	WormholeChainPolygon:   "polygon",
	WormholeChainAvalanche: "avalanche",
	WormholeChainFantom:    "fantom",
	WormholeChainKlaytn:    "klaytn",
	WormholeChainCelo:      "celo",
	WormholeChainMoonbeam:  "moonbeam",
	WormholeChainArbitrum:  "arbitrum",
	WormholeChainOptimism:  "optimism",
	WormholeChainBase:      "base",
	WormholeChainSepolia:   "sepolia",
}

func (id WormholeChainID) String() string {
	if name, ok := wormholeChainNames[id]; ok {
		return name
	}
	return strconv.FormatUint(uint64(id), 10)
}

// ParseWormholeChainID accepts either a numeric ID or a known chain name.
func ParseWormholeChainID(s string) (WormholeChainID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidChainID)
	}
	if n, err := strconv.ParseUint(s, 10, 16); err == nil {
		if n == 0 {
			return 0, fmt.Errorf("%w: 0 is reserved", ErrInvalidChainID)
		}
		return WormholeChainID(n), nil
	}
	lower := strings.ToLower(s)
	for id, name := range wormholeChainNames {
		if name == lower {
			return id, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidChainID, s)
}

// EmitterAddress left-pads an EVM address to the 32-byte form Wormhole uses
// for cross-chain addresses.
func EmitterAddress(addr common.Address) [32]byte {
	var out [32]byte
	copy(out[:], common.LeftPadBytes(addr.Bytes(), 32))
	return out
}

// WormholescanTxURL links a source transaction on the Wormhole explorer.
func WormholescanTxURL(hash common.Hash, network string) string {
	if network == "" {
		network = "TESTNET"
	}
	return fmt.Sprintf("https://wormholescan.io/#/tx/%s?network=%s", hash.Hex(), strings.ToUpper(network))
}

package domain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// ContractCall describes a method invocation on a deployed contract.
type ContractCall struct {
	Address common.Address
	ABI     abi.ABI
	Method  string
	Args    []any
	Value   *big.Int // nil for non-payable calls
}

// TransactionResult summarizes a mined transaction.
type TransactionResult struct {
	Hash            common.Hash    `json:"hash"`
	From            common.Address `json:"from"`
	ContractAddress common.Address `json:"contractAddress,omitempty"`
	BlockNumber     uint64         `json:"blockNumber"`
	GasUsed         uint64         `json:"gasUsed"`
	Value           *big.Int       `json:"value,omitempty"`
}

package domain

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Signer holds the unlocked key used to send transactions. It only lives
// for the duration of one command.
type Signer struct {
	Address    common.Address
	PrivateKey *ecdsa.PrivateKey
	Source     string // e.g. "keystore:/home/me/.foundry/keystores/CELO_AVAX"
}

// NewSigner wraps a private key and derives its address.
func NewSigner(key *ecdsa.PrivateKey, source string) *Signer {
	return &Signer{
		Address:    crypto.PubkeyToAddress(key.PublicKey),
		PrivateKey: key,
		Source:     source,
	}
}

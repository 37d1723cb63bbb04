package domain

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Artifact is a compiled contract: its interface and creation bytecode.
type Artifact struct {
	Name     string
	Path     string
	ABI      abi.ABI
	Bytecode []byte
}

// HasBytecode reports whether the artifact can be deployed.
func (a *Artifact) HasBytecode() bool {
	return len(a.Bytecode) > 0
}

// HasMethod reports whether the ABI declares the named method.
func (a *Artifact) HasMethod(name string) bool {
	_, ok := a.ABI.Methods[name]
	return ok
}

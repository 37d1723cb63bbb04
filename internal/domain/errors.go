package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested resource doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidAddress is returned when an Ethereum address is invalid
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidChainID is returned when a Wormhole chain ID is unknown or malformed
	ErrInvalidChainID = errors.New("invalid chain ID")

	// ErrEmptyPassword is returned when the keystore password prompt yields nothing
	ErrEmptyPassword = errors.New("no password provided")

	// ErrMissingPrivateKey is returned when the private key env var is unset or empty
	ErrMissingPrivateKey = errors.New("private key not set")

	// ErrMissingBytecode is returned when an artifact has no deployable bytecode
	ErrMissingBytecode = errors.New("artifact has no bytecode")

	// ErrTransactionFailed is returned when a mined transaction reverted
	ErrTransactionFailed = errors.New("transaction failed")
)

// ChainNotFoundErr is returned when no chain descriptor matches a description
type ChainNotFoundErr struct {
	Description string
	Suggestions []string
}

func (e ChainNotFoundErr) Error() string {
	msg := fmt.Sprintf("%s configuration not found in chains file", e.Description)
	if len(e.Suggestions) == 0 {
		return msg
	}
	return fmt.Sprintf("%s; did you mean one of: %s", msg, strings.Join(e.Suggestions, ", "))
}

func (e ChainNotFoundErr) Is(target error) bool {
	return target == ErrNotFound
}

// MissingDeploymentErr is returned when a prerequisite contract is absent from the registry
type MissingDeploymentErr struct {
	ChainKey string
	Role     string
}

func (e MissingDeploymentErr) Error() string {
	return fmt.Sprintf("%s %s address not found in deployed contracts", e.ChainKey, e.Role)
}

func (e MissingDeploymentErr) Is(target error) bool {
	return target == ErrNotFound
}

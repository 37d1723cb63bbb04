package blockchain

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/wormhole-demos/xmsg/internal/domain"
	"github.com/wormhole-demos/xmsg/internal/usecase"
)

// Session signs and submits transactions for one signer on one chain
type Session struct {
	backend Backend
	closeFn func()
	chainID *big.Int
	signer  *domain.Signer
	log     *slog.Logger
}

func newSession(backend Backend, closeFn func(), chainID *big.Int, signer *domain.Signer, log *slog.Logger) *Session {
	return &Session{
		backend: backend,
		closeFn: closeFn,
		chainID: chainID,
		signer:  signer,
		log:     log,
	}
}

// Close releases the RPC connection
func (s *Session) Close() {
	if s.closeFn != nil {
		s.closeFn()
		s.closeFn = nil
	}
}

func (s *Session) transactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	auth, err := bind.NewKeyedTransactorWithChainID(s.signer.PrivateKey, s.chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	auth.Context = ctx
	return auth, nil
}

// Deploy sends a contract creation with ABI-encoded constructor args and
// waits until it is mined with code at the new address.
func (s *Session) Deploy(ctx context.Context, artifact *domain.Artifact, args ...any) (*domain.TransactionResult, error) {
	if !artifact.HasBytecode() {
		return nil, fmt.Errorf("%s: %w", artifact.Name, domain.ErrMissingBytecode)
	}

	auth, err := s.transactOpts(ctx)
	if err != nil {
		return nil, err
	}

	address, tx, _, err := bind.DeployContract(auth, artifact.ABI, artifact.Bytecode, s.backend, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to send deployment: %w", err)
	}
	s.log.Debug("deployment transaction sent", "contract", artifact.Name, "address", address.Hex(), "tx", tx.Hash().Hex())

	receipt, err := s.waitMined(ctx, tx)
	if err != nil {
		return nil, err
	}

	code, err := s.backend.CodeAt(ctx, address, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read code at %s: %w", address.Hex(), err)
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("no code at %s after deployment: %w", address.Hex(), domain.ErrTransactionFailed)
	}

	result := s.result(tx, receipt)
	result.ContractAddress = address
	return result, nil
}

// Transact sends a method call and waits for it to be mined
func (s *Session) Transact(ctx context.Context, call domain.ContractCall) (*domain.TransactionResult, error) {
	auth, err := s.transactOpts(ctx)
	if err != nil {
		return nil, err
	}
	if call.Value != nil {
		auth.Value = call.Value
	}

	contract := bind.NewBoundContract(call.Address, call.ABI, s.backend, s.backend, s.backend)
	tx, err := contract.Transact(auth, call.Method, call.Args...)
	if err != nil {
		return nil, fmt.Errorf("failed to send %s: %w", call.Method, err)
	}
	s.log.Debug("transaction sent", "method", call.Method, "to", call.Address.Hex(), "tx", tx.Hash().Hex())

	receipt, err := s.waitMined(ctx, tx)
	if err != nil {
		return nil, err
	}
	return s.result(tx, receipt), nil
}

// Call performs a read-only call against the latest state
func (s *Session) Call(ctx context.Context, call domain.ContractCall) ([]any, error) {
	contract := bind.NewBoundContract(call.Address, call.ABI, s.backend, s.backend, s.backend)

	var out []any
	opts := &bind.CallOpts{Context: ctx, From: s.signer.Address}
	if err := contract.Call(opts, &out, call.Method, call.Args...); err != nil {
		return nil, fmt.Errorf("%s call failed: %w", call.Method, err)
	}
	return out, nil
}

func (s *Session) waitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	receipt, err := bind.WaitMined(ctx, s.backend, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to wait for transaction %s: %w", tx.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("transaction %s reverted: %w", tx.Hash().Hex(), domain.ErrTransactionFailed)
	}
	return receipt, nil
}

func (s *Session) result(tx *types.Transaction, receipt *types.Receipt) *domain.TransactionResult {
	result := &domain.TransactionResult{
		Hash:    tx.Hash(),
		From:    s.signer.Address,
		GasUsed: receipt.GasUsed,
		Value:   tx.Value(),
	}
	if receipt.BlockNumber != nil {
		result.BlockNumber = receipt.BlockNumber.Uint64()
	}
	return result
}

var _ usecase.ChainSession = (*Session)(nil)

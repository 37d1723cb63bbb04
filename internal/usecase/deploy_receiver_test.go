package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wormhole-demos/xmsg/internal/domain"
	"github.com/wormhole-demos/xmsg/internal/usecase"
)

func newDeployReceiver(d *deps) *usecase.DeployReceiver {
	return usecase.NewDeployReceiver(d.chains, d.artifacts, d.credentials, d.connector, d.registry, d.sink, discardLogger())
}

func isRegistration(sender common.Address) func(domain.ContractCall) bool {
	return func(call domain.ContractCall) bool {
		return call.Method == "setRegisteredSender" &&
			call.Address == receiverAddress &&
			len(call.Args) == 2 &&
			call.Args[0] == uint16(6) &&
			call.Args[1] == domain.EmitterAddress(sender) &&
			call.Value == nil
	}
}

func TestDeployReceiver(t *testing.T) {
	ctx := context.Background()
	params := usecase.DeployReceiverParams{Source: sourceRoute, Target: targetRoute}

	t.Run("deploys, records, then registers the sender", func(t *testing.T) {
		d := newDeps()
		chain := celoChain()
		artifact := testArtifact(t, "MessageReceiver", receiverABIJSON)
		signer := testSigner(t)
		var order []string

		d.chains.On("FindChain", ctx, "Celo Testnet").Return(chain, nil)
		d.registry.On("Load", ctx).Return(registryWith(map[string]map[string]string{
			"avalanche": {"MessageSender": senderAddress.Hex()},
		}), nil)
		d.artifacts.On("GetArtifact", ctx, "MessageReceiver").Return(artifact, nil)
		d.credentials.On("ResolveSigner", ctx).Return(signer, nil)
		d.connector.On("Connect", ctx, chain, signer).Return(d.session, nil)
		d.session.On("Deploy", ctx, artifact, []any{celoRelayer}).
			Return(&domain.TransactionResult{ContractAddress: receiverAddress}, nil)
		d.registry.On("SaveChainDeployment", ctx, "celo", mock.MatchedBy(func(e *domain.ChainDeployment) bool {
			return e.Contracts["MessageReceiver"] == receiverAddress.Hex() && e.DeployedAt != ""
		})).Run(func(mock.Arguments) { order = append(order, "save") }).Return(nil)
		d.session.On("Transact", ctx, mock.MatchedBy(isRegistration(senderAddress))).
			Run(func(mock.Arguments) { order = append(order, "register") }).
			Return(&domain.TransactionResult{Hash: common.HexToHash("0x01")}, nil)
		d.session.On("Close").Return()

		result, err := newDeployReceiver(d).Run(ctx, params)
		require.NoError(t, err)

		assert.Equal(t, []string{"save", "register"}, order)
		assert.Equal(t, receiverAddress, result.Deployment.Address)
		require.NotNil(t, result.Registration)
		assert.Equal(t, uint16(6), result.Registration.SourceChainID)
		assert.Equal(t, senderAddress, result.Registration.Sender)
		assert.Equal(t,
			"0x0000000000000000000000001111111111111111111111111111111111111111",
			result.Registration.Emitter.Hex())
		assert.Contains(t, d.sink.infos,
			"Registered MessageReceiver ("+senderAddress.Hex()+") for avalanche chain (6)")
		d.assertExpectations(t)
	})

	t.Run("missing sender fails before any transaction", func(t *testing.T) {
		d := newDeps()
		d.chains.On("FindChain", ctx, "Celo Testnet").Return(celoChain(), nil)
		d.registry.On("Load", ctx).Return(domain.NewRegistry(), nil)

		_, err := newDeployReceiver(d).Run(ctx, params)
		require.Error(t, err)

		var missing domain.MissingDeploymentErr
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "avalanche", missing.ChainKey)
		assert.Equal(t, "MessageSender", missing.Role)
		d.artifacts.AssertNotCalled(t, "GetArtifact", mock.Anything, mock.Anything)
		d.assertNoNetwork(t)
	})

	t.Run("sender entry without the sender role", func(t *testing.T) {
		d := newDeps()
		d.chains.On("FindChain", ctx, "Celo Testnet").Return(celoChain(), nil)
		d.registry.On("Load", ctx).Return(registryWith(map[string]map[string]string{
			"avalanche": {"SomethingElse": senderAddress.Hex()},
		}), nil)

		_, err := newDeployReceiver(d).Run(ctx, params)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		d.assertNoNetwork(t)
	})

	t.Run("unknown chain fails before reading the registry", func(t *testing.T) {
		d := newDeps()
		d.chains.On("FindChain", ctx, "Celo Testnet").Return(nil, domain.ChainNotFoundErr{Description: "Celo Testnet"})

		_, err := newDeployReceiver(d).Run(ctx, params)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		d.registry.AssertNotCalled(t, "Load", mock.Anything)
		d.assertNoNetwork(t)
	})

	t.Run("failed registration keeps the recorded deployment", func(t *testing.T) {
		d := newDeps()
		chain := celoChain()
		artifact := testArtifact(t, "MessageReceiver", receiverABIJSON)
		signer := testSigner(t)

		d.chains.On("FindChain", ctx, "Celo Testnet").Return(chain, nil)
		d.registry.On("Load", ctx).Return(registryWith(map[string]map[string]string{
			"avalanche": {"MessageSender": senderAddress.Hex()},
		}), nil)
		d.artifacts.On("GetArtifact", ctx, "MessageReceiver").Return(artifact, nil)
		d.credentials.On("ResolveSigner", ctx).Return(signer, nil)
		d.connector.On("Connect", ctx, chain, signer).Return(d.session, nil)
		d.session.On("Deploy", ctx, artifact, []any{celoRelayer}).
			Return(&domain.TransactionResult{ContractAddress: receiverAddress}, nil)
		d.registry.On("SaveChainDeployment", ctx, "celo", mock.Anything).Return(nil)
		d.session.On("Transact", ctx, mock.Anything).Return(nil, errors.New("execution reverted"))
		d.session.On("Close").Return()

		result, err := newDeployReceiver(d).Run(ctx, params)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "execution reverted")
		assert.Contains(t, err.Error(), receiverAddress.Hex())

		require.NotNil(t, result)
		assert.Equal(t, receiverAddress, result.Deployment.Address)
		assert.Nil(t, result.Registration)
		d.registry.AssertCalled(t, "SaveChainDeployment", ctx, "celo", mock.Anything)
		require.Len(t, d.sink.errors, 1)
		assert.Contains(t, d.sink.errors[0], "register-sender")
	})

	t.Run("receiver ABI without setRegisteredSender fails before deploying", func(t *testing.T) {
		d := newDeps()
		d.chains.On("FindChain", ctx, "Celo Testnet").Return(celoChain(), nil)
		d.registry.On("Load", ctx).Return(registryWith(map[string]map[string]string{
			"avalanche": {"MessageSender": senderAddress.Hex()},
			"celo":      {"MessageReceiver": receiverAddress.Hex()},
		}), nil)
		d.artifacts.On("GetArtifact", ctx, "MessageReceiver").
			Return(testArtifact(t, "MessageReceiver", constructorOnlyABIJSON), nil)

		result, err := newDeployReceiver(d).Run(ctx, params)
		require.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "MessageReceiver ABI has no setRegisteredSender method")
		d.registry.AssertNotCalled(t, "SaveChainDeployment", mock.Anything, mock.Anything, mock.Anything)
		d.assertNoNetwork(t)
	})
}

func TestRegisterSender(t *testing.T) {
	ctx := context.Background()
	params := usecase.RegisterSenderParams{Source: sourceRoute, Target: targetRoute}
	newRegisterSender := func(d *deps) *usecase.RegisterSender {
		return usecase.NewRegisterSender(d.chains, d.registry, d.artifacts, d.credentials, d.connector, d.sink, discardLogger())
	}

	t.Run("registers the recorded sender on the recorded receiver", func(t *testing.T) {
		d := newDeps()
		chain := celoChain()
		artifact := testArtifact(t, "MessageReceiver", receiverABIJSON)
		signer := testSigner(t)

		d.registry.On("Load", ctx).Return(registryWith(map[string]map[string]string{
			"avalanche": {"MessageSender": senderAddress.Hex()},
			"celo":      {"MessageReceiver": receiverAddress.Hex()},
		}), nil)
		d.chains.On("FindChain", ctx, "Celo Testnet").Return(chain, nil)
		d.artifacts.On("GetArtifact", ctx, "MessageReceiver").Return(artifact, nil)
		d.credentials.On("ResolveSigner", ctx).Return(signer, nil)
		d.connector.On("Connect", ctx, chain, signer).Return(d.session, nil)
		d.session.On("Transact", ctx, mock.MatchedBy(isRegistration(senderAddress))).
			Return(&domain.TransactionResult{Hash: common.HexToHash("0x02")}, nil)
		d.session.On("Close").Return()

		result, err := newRegisterSender(d).Run(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, receiverAddress, result.Receiver)
		assert.Equal(t, common.HexToHash("0x02"), result.Transaction.Hash)
		d.assertExpectations(t)
	})

	t.Run("missing receiver", func(t *testing.T) {
		d := newDeps()
		d.registry.On("Load", ctx).Return(registryWith(map[string]map[string]string{
			"avalanche": {"MessageSender": senderAddress.Hex()},
		}), nil)

		_, err := newRegisterSender(d).Run(ctx, params)
		var missing domain.MissingDeploymentErr
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "celo", missing.ChainKey)
		d.chains.AssertNotCalled(t, "FindChain", mock.Anything, mock.Anything)
		d.assertNoNetwork(t)
	})

	t.Run("receiver ABI without setRegisteredSender", func(t *testing.T) {
		d := newDeps()

		d.registry.On("Load", ctx).Return(registryWith(map[string]map[string]string{
			"avalanche": {"MessageSender": senderAddress.Hex()},
			"celo":      {"MessageReceiver": receiverAddress.Hex()},
		}), nil)
		d.chains.On("FindChain", ctx, "Celo Testnet").Return(celoChain(), nil)
		d.artifacts.On("GetArtifact", ctx, "MessageReceiver").Return(testArtifact(t, "MessageReceiver", senderABIJSON), nil)

		_, err := newRegisterSender(d).Run(ctx, params)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no setRegisteredSender method")
		d.assertNoNetwork(t)
	})
}

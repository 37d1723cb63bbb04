package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wormhole-demos/xmsg/internal/domain"
	"github.com/wormhole-demos/xmsg/internal/domain/config"
	"github.com/wormhole-demos/xmsg/internal/usecase"
)

// MockChainRepository is a mock implementation of ChainRepository
type MockChainRepository struct {
	mock.Mock
}

func (m *MockChainRepository) ListChains(ctx context.Context) ([]domain.Chain, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Chain), args.Error(1)
}

func (m *MockChainRepository) FindChain(ctx context.Context, description string) (*domain.Chain, error) {
	args := m.Called(ctx, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Chain), args.Error(1)
}

// MockDeploymentRegistry is a mock implementation of DeploymentRegistry
type MockDeploymentRegistry struct {
	mock.Mock
}

func (m *MockDeploymentRegistry) Load(ctx context.Context) (*domain.Registry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Registry), args.Error(1)
}

func (m *MockDeploymentRegistry) SaveChainDeployment(ctx context.Context, chainKey string, entry *domain.ChainDeployment) error {
	args := m.Called(ctx, chainKey, entry)
	return args.Error(0)
}

func (m *MockDeploymentRegistry) Path() string {
	return "deploy-config/deployedContracts.json"
}

// MockArtifactRepository is a mock implementation of ArtifactRepository
type MockArtifactRepository struct {
	mock.Mock
}

func (m *MockArtifactRepository) GetArtifact(ctx context.Context, name string) (*domain.Artifact, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artifact), args.Error(1)
}

// MockCredentialResolver is a mock implementation of CredentialResolver
type MockCredentialResolver struct {
	mock.Mock
}

func (m *MockCredentialResolver) ResolveSigner(ctx context.Context) (*domain.Signer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Signer), args.Error(1)
}

// MockChainConnector is a mock implementation of ChainConnector
type MockChainConnector struct {
	mock.Mock
}

func (m *MockChainConnector) Connect(ctx context.Context, chain *domain.Chain, signer *domain.Signer) (usecase.ChainSession, error) {
	args := m.Called(ctx, chain, signer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(usecase.ChainSession), args.Error(1)
}

// MockChainSession is a mock implementation of ChainSession
type MockChainSession struct {
	mock.Mock
}

func (m *MockChainSession) Deploy(ctx context.Context, artifact *domain.Artifact, args ...any) (*domain.TransactionResult, error) {
	ret := m.Called(ctx, artifact, args)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).(*domain.TransactionResult), ret.Error(1)
}

func (m *MockChainSession) Transact(ctx context.Context, call domain.ContractCall) (*domain.TransactionResult, error) {
	args := m.Called(ctx, call)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionResult), args.Error(1)
}

func (m *MockChainSession) Call(ctx context.Context, call domain.ContractCall) ([]any, error) {
	args := m.Called(ctx, call)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]any), args.Error(1)
}

func (m *MockChainSession) Close() {
	m.Called()
}

// MockChainIDProber is a mock implementation of ChainIDProber
type MockChainIDProber struct {
	mock.Mock
}

func (m *MockChainIDProber) ProbeChainID(ctx context.Context, rpcURL string) (uint64, error) {
	args := m.Called(ctx, rpcURL)
	return args.Get(0).(uint64), args.Error(1)
}

// MockProgressSink records progress events and messages
type MockProgressSink struct {
	events []usecase.ProgressEvent
	infos  []string
	errors []string
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.events = append(m.events, event)
}

func (m *MockProgressSink) Info(message string) {
	m.infos = append(m.infos, message)
}

func (m *MockProgressSink) Error(message string) {
	m.errors = append(m.errors, message)
}

func (m *MockProgressSink) stages() []string {
	out := make([]string, len(m.events))
	for i, e := range m.events {
		out[i] = e.Stage
	}
	return out
}

const senderABIJSON = `[
	{"type":"constructor","inputs":[{"name":"_wormholeRelayer","type":"address"}],"stateMutability":"nonpayable"},
	{"type":"function","name":"quoteCrossChainCost","inputs":[{"name":"targetChain","type":"uint16"}],"outputs":[{"name":"cost","type":"uint256"}],"stateMutability":"view"},
	{"type":"function","name":"sendMessage","inputs":[{"name":"targetChain","type":"uint16"},{"name":"targetAddress","type":"address"},{"name":"message","type":"string"}],"outputs":[],"stateMutability":"payable"}
]`

const receiverABIJSON = `[
	{"type":"constructor","inputs":[{"name":"_wormholeRelayer","type":"address"}],"stateMutability":"nonpayable"},
	{"type":"function","name":"setRegisteredSender","inputs":[{"name":"sourceChain","type":"uint16"},{"name":"sourceAddress","type":"bytes32"}],"outputs":[],"stateMutability":"nonpayable"}
]`

const constructorOnlyABIJSON = `[
	{"type":"constructor","inputs":[{"name":"_wormholeRelayer","type":"address"}],"stateMutability":"nonpayable"}
]`

var (
	avalancheRelayer = common.HexToAddress("0xA3cF45939bD6260bcFe3D66bc73d60f19e49a8BB")
	celoRelayer      = common.HexToAddress("0x306B68267Deb7c5DfCDa3619E22E9Ca39C374f84")
	senderAddress    = common.HexToAddress("0x1111111111111111111111111111111111111111")
	receiverAddress  = common.HexToAddress("0x2222222222222222222222222222222222222222")

	sourceRoute = config.ChainRoute{Key: "avalanche", Description: "Avalanche testnet", WormholeChainID: 6, Contract: "MessageSender"}
	targetRoute = config.ChainRoute{Key: "celo", Description: "Celo Testnet", WormholeChainID: 14, Contract: "MessageReceiver"}
)

func avalancheChain() *domain.Chain {
	return &domain.Chain{
		Description:     "Avalanche testnet fuji",
		ChainID:         6,
		RPC:             "https://api.avax-test.network/ext/bc/C/rpc",
		WormholeRelayer: avalancheRelayer.Hex(),
	}
}

func celoChain() *domain.Chain {
	return &domain.Chain{
		Description:     "Celo Testnet",
		ChainID:         14,
		RPC:             "https://alfajores-forno.celo-testnet.org",
		WormholeRelayer: celoRelayer.Hex(),
	}
}

func testArtifact(t *testing.T, name, abiJSON string) *domain.Artifact {
	t.Helper()
	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	require.NoError(t, err)
	return &domain.Artifact{
		Name:     name,
		Path:     "out/" + name + ".sol/" + name + ".json",
		ABI:      parsed,
		Bytecode: common.FromHex("0x6080604052"),
	}
}

func testSigner(t *testing.T) *domain.Signer {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	return domain.NewSigner(key, "test")
}

func registryWith(entries map[string]map[string]string) *domain.Registry {
	reg := domain.NewRegistry()
	for key, contracts := range entries {
		reg.Set(key, &domain.ChainDeployment{Contracts: contracts, DeployedAt: "2025-01-01T00:00:00.000Z"})
	}
	return reg
}

// deps bundles the mocks shared by the chain-facing use cases
type deps struct {
	chains      *MockChainRepository
	registry    *MockDeploymentRegistry
	artifacts   *MockArtifactRepository
	credentials *MockCredentialResolver
	connector   *MockChainConnector
	session     *MockChainSession
	sink        *MockProgressSink
}

func newDeps() *deps {
	return &deps{
		chains:      new(MockChainRepository),
		registry:    new(MockDeploymentRegistry),
		artifacts:   new(MockArtifactRepository),
		credentials: new(MockCredentialResolver),
		connector:   new(MockChainConnector),
		session:     new(MockChainSession),
		sink:        &MockProgressSink{},
	}
}

func (d *deps) assertExpectations(t *testing.T) {
	t.Helper()
	d.chains.AssertExpectations(t)
	d.registry.AssertExpectations(t)
	d.artifacts.AssertExpectations(t)
	d.credentials.AssertExpectations(t)
	d.connector.AssertExpectations(t)
	d.session.AssertExpectations(t)
}

// assertNoNetwork checks that no credential or chain interaction happened
func (d *deps) assertNoNetwork(t *testing.T) {
	t.Helper()
	d.credentials.AssertNotCalled(t, "ResolveSigner", mock.Anything)
	d.connector.AssertNotCalled(t, "Connect", mock.Anything, mock.Anything, mock.Anything)
	d.registry.AssertNotCalled(t, "SaveChainDeployment", mock.Anything, mock.Anything, mock.Anything)
}

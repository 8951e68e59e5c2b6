package sui

import (
	"context"
	"encoding/base64"
	"errors"
	"sync"
	"testing"

	"github.com/AlexZinkM/miao-wallet/internal/client"
	"github.com/AlexZinkM/miao-wallet/internal/keys"
	"github.com/AlexZinkM/miao-wallet/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RFC 8032 test vector 1 and its Sui address.
const (
	testSecret    = "suiprivkey1qzwkrvvaal745c96s390fyhv9nzygjw9d9any6gewqa6cqcu4elkqqfr3zg"
	testSeedHex   = "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60"
	testSender    = "0x304af458e90e97c841685b8cbbc59b909f3e2cf150df590ada4c81452c29737d"
	testRecipient = "0x00000000000000000000000000000000000000000000000000000000000000aa"
	testTxBytes   = "AAACAAgAlpgAAAAAAAAgqg=="
)

type fakeNode struct {
	t *testing.T

	mu    sync.Mutex
	calls map[string]int

	coins    []client.Coin
	coinsErr error
	payErr   error
	txBytes  string
	sim      *client.SimulationResult
	dryErr   error
	exec     *client.ExecutionResult
	execErr  error
	names    map[string]string

	lastPay  client.PayRequest
	lastSigs []string
}

func newFakeNode(t *testing.T) *fakeNode {
	return &fakeNode{
		t:     t,
		calls: make(map[string]int),
		coins: []client.Coin{
			{CoinType: client.SUICoinType, CoinObjectID: "0xc01", Balance: 2_000_000_000},
			{CoinType: client.SUICoinType, CoinObjectID: "0xc02", Balance: 5},
		},
		txBytes: testTxBytes,
		sim: &client.SimulationResult{
			Effects: client.Effects{
				Status:  client.ExecutionStatus{Status: "success"},
				GasUsed: client.GasCost{ComputationCost: 1_000_000, StorageCost: 1_976_000, StorageRebate: 978_120},
			},
			BalanceChanges: []client.BalanceChange{
				{Owner: client.Owner{AddressOwner: testSender}, CoinType: client.SUICoinType, Amount: -11_997_880},
				{Owner: client.Owner{AddressOwner: "0xaa"}, CoinType: client.SUICoinType, Amount: 10_000_000},
			},
		},
		exec: &client.ExecutionResult{
			Digest: "7Yb3sDigest",
			Effects: &client.Effects{
				Status:  client.ExecutionStatus{Status: "success"},
				GasUsed: client.GasCost{ComputationCost: 1_000_000, StorageCost: 1_976_000, StorageRebate: 978_120},
			},
			BalanceChanges: []client.BalanceChange{
				{Owner: client.Owner{AddressOwner: testSender}, CoinType: client.SUICoinType, Amount: -11_997_880},
				{Owner: client.Owner{AddressOwner: testRecipient}, CoinType: client.SUICoinType, Amount: 10_000_000},
			},
		},
		names: map[string]string{"alice.sui": "0xaa"},
	}
}

func (n *fakeNode) count(method string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.calls[method]
}

func (n *fakeNode) record(method string) {
	n.mu.Lock()
	n.calls[method]++
	n.mu.Unlock()
}

func (n *fakeNode) GetCoins(_ context.Context, owner string, _ *string, _ int) (*client.CoinPage, error) {
	n.record("getCoins")
	if n.coinsErr != nil {
		return nil, n.coinsErr
	}
	return &client.CoinPage{Data: n.coins}, nil
}

func (n *fakeNode) PaySui(_ context.Context, req client.PayRequest) (string, error) {
	n.record("paySui")
	n.lastPay = req
	if n.payErr != nil {
		return "", n.payErr
	}
	return n.txBytes, nil
}

func (n *fakeNode) DryRun(_ context.Context, txBytes string) (*client.SimulationResult, error) {
	n.record("dryRun")
	assert.Equal(n.t, n.txBytes, txBytes)
	if n.dryErr != nil {
		return nil, n.dryErr
	}
	return n.sim, nil
}

func (n *fakeNode) Execute(_ context.Context, txBytes string, signatures []string) (*client.ExecutionResult, error) {
	n.record("execute")
	n.lastSigs = signatures

	require.Len(n.t, signatures, 1)
	raw, err := base64.StdEncoding.DecodeString(signatures[0])
	require.NoError(n.t, err)
	require.Len(n.t, raw, keys.EnvelopeSize)
	tx, err := base64.StdEncoding.DecodeString(txBytes)
	require.NoError(n.t, err)

	var env keys.SignatureEnvelope
	env.Scheme = keys.Scheme(raw[0])
	copy(env.Signature[:], raw[1:65])
	copy(env.PublicKey[:], raw[65:])
	assert.True(n.t, keys.VerifyEnvelope(tx, env), "broadcast signature must verify")

	if n.execErr != nil {
		return nil, n.execErr
	}
	return n.exec, nil
}

func (n *fakeNode) ResolveNameServiceAddress(_ context.Context, name string) (string, error) {
	n.record("resolve")
	return n.names[name], nil
}

// trackingWallets remembers every secret buffer it hands out
type trackingWallets struct {
	*store.MemoryStore
	handed [][]byte
}

func newWallets(t *testing.T, secrets map[string]string) *trackingWallets {
	t.Helper()
	w := &trackingWallets{MemoryStore: store.NewMemoryStore()}
	for alias, secret := range secrets {
		require.NoError(t, w.MemoryStore.Set(alias, []byte(secret)))
	}
	return w
}

func (w *trackingWallets) Get(alias string) ([]byte, error) {
	b, err := w.MemoryStore.Get(alias)
	if err == nil {
		w.handed = append(w.handed, b)
	}
	return b, err
}

func (w *trackingWallets) assertCleared(t *testing.T) {
	t.Helper()
	require.NotEmpty(t, w.handed, "secret was never requested")
	for _, b := range w.handed {
		assert.Equal(t, make([]byte, len(b)), b, "secret buffer must be cleared")
	}
}

// recordingConfirmer answers with a fixed decision and counts calls
type recordingConfirmer struct {
	answer bool
	err    error
	calls  int
	seen   *Preview
}

func (c *recordingConfirmer) Confirm(_ context.Context, p *Preview) (bool, error) {
	c.calls++
	c.seen = p
	return c.answer, c.err
}

// noSecretWallets fails the test if anything asks for a secret
type noSecretWallets struct {
	t       *testing.T
	address string
}

func (w noSecretWallets) Get(string) ([]byte, error) {
	w.t.Fatal("secret must not be requested")
	return nil, errors.New("unreachable")
}

func (w noSecretWallets) Address(string) (string, error)  { return w.address, nil }
func (w noSecretWallets) SetAddress(string, string) error { return nil }

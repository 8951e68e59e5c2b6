package keys

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RFC 8032 test vector 1.
const (
	testSeedHex   = "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60"
	testPubHex    = "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a"
	testBech32    = "suiprivkey1qzwkrvvaal745c96s390fyhv9nzygjw9d9any6gewqa6cqcu4elkqqfr3zg"
	testSuiAddr   = "0x304af458e90e97c841685b8cbbc59b909f3e2cf150df590ada4c81452c29737d"
	testSolanaAdr = "FVen3X669xLzsi6N2V91DoiyzHzg1uAgqiT8jZ9nS96Z"
)

func decodeT(t *testing.T, s string) *SecretMaterial {
	t.Helper()
	m, err := Decode([]byte(s))
	require.NoError(t, err)
	return m
}

func TestDecode_Bech32(t *testing.T) {
	m := decodeT(t, testBech32)
	assert.Equal(t, SchemeEd25519, m.Scheme())
	assert.Equal(t, testSeedHex, hex.EncodeToString(m.seed[:]))
	assert.Equal(t, testPubHex, hex.EncodeToString(m.PublicKey()))
}

func TestDecode_Hex(t *testing.T) {
	for _, in := range []string{
		testSeedHex,
		"0x" + testSeedHex,
		testSeedHex + testPubHex, // 64-byte keypair form
		"  " + testSeedHex + "\n",
	} {
		m := decodeT(t, in)
		assert.Equal(t, SchemeEd25519, m.Scheme(), in)
		assert.Equal(t, testPubHex, hex.EncodeToString(m.PublicKey()), in)
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := map[string]string{
		"empty":          "",
		"short hex":      "abcd",
		"bad hex":        "zz" + testSeedHex[2:],
		"bad checksum":   "suiprivkey1qzwkrvvaal745c96s390fyhv9nzygjw9d9any6gewqa6cqcu4elkqqfr3zh",
		"short payload":  "suiprivkey1qqqqzqsrqszsvpcgpy9qkrqdpc83qygjzv675acq",
		"secp256k1 flag": "suiprivkey1qxwkrvvaal745c96s390fyhv9nzygjw9d9any6gewqa6cqcu4elkq6kkwpl",
		"wrong hrp":      "suipubkey1qzwkrvvaal745c96s390fyhv9nzygjw9d9any6gewqa6cqcu4elkq693a3z",
	}
	for name, in := range tests {
		_, err := Decode([]byte(in))
		require.Error(t, err, name)
		assert.True(t, errors.Is(err, ErrDecode), "%s: %v", name, err)
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	seed, _ := hex.DecodeString(testSeedHex)
	s, err := Encode(SchemeEd25519, seed)
	require.NoError(t, err)
	assert.Equal(t, testBech32, s)

	_, err = Encode(SchemeEd25519, seed[:31])
	assert.Error(t, err)
}

func TestSuiAddress_Vector(t *testing.T) {
	m := decodeT(t, testBech32)
	addr, err := DeriveAddress(ChainSui, m)
	require.NoError(t, err)
	assert.Equal(t, testSuiAddr, addr)
}

func TestSuiAddress_Deterministic(t *testing.T) {
	a1, err := DeriveAddress(ChainSui, decodeT(t, testBech32))
	require.NoError(t, err)
	a2, err := DeriveAddress(ChainSui, decodeT(t, testBech32))
	require.NoError(t, err)
	a3, err := DeriveAddress(ChainSui, decodeT(t, "0x"+testSeedHex))
	require.NoError(t, err)

	assert.Equal(t, a1, a2)
	assert.Equal(t, a1, a3, "bech32 and hex paths must agree")
}

func TestDeriveAddress_Variants(t *testing.T) {
	sol, err := DeriveAddress(ChainSolana, decodeT(t, testSeedHex))
	require.NoError(t, err)
	assert.Equal(t, testSolanaAdr, sol)

	// secp256k1 scalar 1 has a well-known Ethereum address.
	one := "0000000000000000000000000000000000000000000000000000000000000001"
	evm, err := DeriveAddress(ChainEVM, decodeT(t, one))
	require.NoError(t, err)
	assert.Equal(t, "0x7e5f4552091a69125d5dfcb7b8c2659029395bdf", evm)

	_, err = DeriveAddress(Chain("cosmos"), decodeT(t, one))
	assert.Error(t, err)
}

func TestNormalizeSuiAddress(t *testing.T) {
	got, err := NormalizeSuiAddress("0x2")
	require.NoError(t, err)
	assert.Equal(t, "0x0000000000000000000000000000000000000000000000000000000000000002", got)

	got, err = NormalizeSuiAddress("0X304AF458E90E97C841685B8CBBC59B909F3E2CF150DF590ADA4C81452C29737D")
	require.NoError(t, err)
	assert.Equal(t, testSuiAddr, got)

	for _, bad := range []string{"", "304af4", "0x", "0xzz", "0x" + testSeedHex + "00"} {
		_, err := NormalizeSuiAddress(bad)
		assert.Error(t, err, bad)
	}
}

func TestIntentDigest(t *testing.T) {
	tx := []byte("hello")
	assert.Equal(t, []byte{0, 0, 0, 'h', 'e', 'l', 'l', 'o'}, IntentMessage(tx))

	d1 := IntentDigest(tx)
	d2 := IntentDigest(tx)
	assert.Equal(t, d1, d2)
	assert.Equal(t, "721668b482762a913a793cc6c50fd5354c610c633e87e94975aa0d27ba72fef1", hex.EncodeToString(d1[:]))
}

func TestSignTransaction_Envelope(t *testing.T) {
	m := decodeT(t, testBech32)
	for _, tx := range [][]byte{{}, []byte("x"), make([]byte, 4096)} {
		env, err := SignTransaction(tx, m)
		require.NoError(t, err)

		raw := env.Bytes()
		require.Len(t, raw, EnvelopeSize)
		assert.Equal(t, 97, len(raw))
		assert.Equal(t, byte(SchemeEd25519), raw[0])
		assert.Equal(t, testPubHex, hex.EncodeToString(raw[65:]))
		assert.True(t, VerifyEnvelope(tx, env))
	}
}

func TestSignTransaction_DifferentTxFailsVerify(t *testing.T) {
	m := decodeT(t, testBech32)
	env, err := SignTransaction([]byte("tx-a"), m)
	require.NoError(t, err)
	assert.False(t, VerifyEnvelope([]byte("tx-b"), env))
}

func TestWithSecret_WipesOnSuccessAndError(t *testing.T) {
	var captured *SecretMaterial
	raw := []byte(testBech32)

	err := WithSecret(raw, func(m *SecretMaterial) error {
		captured = m
		_, err := SignTransaction([]byte("tx"), m)
		return err
	})
	require.NoError(t, err)
	assertWiped(t, captured, raw)

	boom := errors.New("boom")
	raw = []byte(testSeedHex)
	err = WithSecret(raw, func(m *SecretMaterial) error {
		captured = m
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assertWiped(t, captured, raw)
}

func TestWithSecret_WipesOnPanic(t *testing.T) {
	var captured *SecretMaterial
	raw := []byte(testBech32)

	assert.Panics(t, func() {
		_ = WithSecret(raw, func(m *SecretMaterial) error {
			captured = m
			panic("signer exploded")
		})
	})
	assertWiped(t, captured, raw)
}

func TestWithSecret_DecodeErrorClearsRaw(t *testing.T) {
	raw := []byte("not-a-key")
	called := false
	err := WithSecret(raw, func(*SecretMaterial) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrDecode)
	assert.False(t, called)
	assert.Equal(t, make([]byte, len(raw)), raw)
}

func TestWipedMaterialIsUnusable(t *testing.T) {
	m := decodeT(t, testBech32)
	m.Wipe()
	m.Wipe()

	_, err := SignTransaction([]byte("tx"), m)
	assert.ErrorIs(t, err, ErrWiped)
	_, err = DeriveAddress(ChainSui, m)
	assert.ErrorIs(t, err, ErrWiped)
}

func TestSecretMaterial_NotPrintable(t *testing.T) {
	m := decodeT(t, testBech32)
	assert.NotContains(t, m.String(), testSeedHex[:8])
	_, err := m.MarshalJSON()
	assert.Error(t, err)
}

func assertWiped(t *testing.T, m *SecretMaterial, raw []byte) {
	t.Helper()
	require.NotNil(t, m)
	assert.True(t, m.Wiped())
	assert.Equal(t, [SeedSize]byte{}, m.seed)
	assert.Equal(t, [PublicKeySize]byte{}, m.publicKey)
	assert.Nil(t, m.signingKey)
	assert.Equal(t, make([]byte, len(raw)), raw, "raw secret buffer must be cleared")
}

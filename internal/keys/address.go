package keys

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/gagliardetto/solana-go"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Chain identifies an address family.
type Chain string

const (
	ChainSui    Chain = "sui"
	ChainSolana Chain = "solana"
	ChainEVM    Chain = "evm"
)

// Deriver computes the canonical address of a key on one chain.
type Deriver interface {
	Chain() Chain
	Address(m *SecretMaterial) (string, error)
}

var derivers = map[Chain]Deriver{}

// Register adds or replaces the deriver for d.Chain().
func Register(d Deriver) {
	derivers[d.Chain()] = d
}

func init() {
	Register(suiDeriver{})
	Register(solanaDeriver{})
	Register(evmDeriver{})
}

// DeriveAddress returns the address of m on chain.
func DeriveAddress(chain Chain, m *SecretMaterial) (string, error) {
	d, ok := derivers[chain]
	if !ok {
		return "", fmt.Errorf("no address deriver for chain %q", chain)
	}
	if m.wiped {
		return "", ErrWiped
	}
	return d.Address(m)
}

// SuiAddress is "0x" + hex(blake2b-256(flag || pubkey)).
func SuiAddress(scheme Scheme, publicKey []byte) string {
	buf := make([]byte, 0, 1+len(publicKey))
	buf = append(buf, byte(scheme))
	buf = append(buf, publicKey...)
	sum := blake2b.Sum256(buf)
	return "0x" + hex.EncodeToString(sum[:])
}

// NormalizeSuiAddress validates a Sui address and returns it lowercase,
// zero-padded to 32 bytes.
func NormalizeSuiAddress(addr string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(addr))
	if !strings.HasPrefix(s, "0x") {
		return "", fmt.Errorf("invalid Sui address %q: missing 0x prefix", addr)
	}
	s = s[2:]
	if len(s) == 0 || len(s) > 64 {
		return "", fmt.Errorf("invalid Sui address %q: bad length", addr)
	}
	s = strings.Repeat("0", 64-len(s)) + s
	if _, err := hex.DecodeString(s); err != nil {
		return "", fmt.Errorf("invalid Sui address %q: not hex", addr)
	}
	return "0x" + s, nil
}

type suiDeriver struct{}

func (suiDeriver) Chain() Chain { return ChainSui }

func (suiDeriver) Address(m *SecretMaterial) (string, error) {
	return SuiAddress(m.scheme, m.publicKey[:]), nil
}

// solanaDeriver uses the same ed25519 key; the address is its base58 form.
type solanaDeriver struct{}

func (solanaDeriver) Chain() Chain { return ChainSolana }

func (solanaDeriver) Address(m *SecretMaterial) (string, error) {
	return solana.PublicKeyFromBytes(m.publicKey[:]).String(), nil
}

// evmDeriver treats the seed as a secp256k1 scalar.
type evmDeriver struct{}

func (evmDeriver) Chain() Chain { return ChainEVM }

func (evmDeriver) Address(m *SecretMaterial) (string, error) {
	priv := secp256k1.PrivKeyFromBytes(m.seed[:])
	defer priv.Zero()

	pub := priv.PubKey().SerializeUncompressed()
	h := sha3.NewLegacyKeccak256()
	h.Write(pub[1:])
	sum := h.Sum(nil)
	return "0x" + hex.EncodeToString(sum[12:]), nil
}

package keys

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

// PrivateKeyHRP is the bech32 human-readable part of exported Sui keys.
const PrivateKeyHRP = "suiprivkey"

// ErrDecode is wrapped by every key decoding failure.
var ErrDecode = errors.New("decode private key")

// Decode parses a bech32 "suiprivkey1..." string or a raw hex seed.
// Hex input always yields SchemeEd25519.
func Decode(raw []byte) (*SecretMaterial, error) {
	in := bytes.TrimSpace(raw)
	if len(in) == 0 {
		return nil, fmt.Errorf("%w: empty secret", ErrDecode)
	}

	if isBech32Key(in) {
		return decodeBech32(in)
	}
	return decodeHex(in)
}

func isBech32Key(in []byte) bool {
	prefix := []byte(PrivateKeyHRP + "1")
	return len(in) > len(prefix) && bytes.EqualFold(in[:len(prefix)], prefix)
}

func decodeBech32(in []byte) (*SecretMaterial, error) {
	// The string copy of the key cannot be wiped.
	// bech32 errors quote input characters, keep them out of the message
	hrp, data5, err := bech32.Decode(string(in))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid bech32 encoding", ErrDecode)
	}
	if hrp != PrivateKeyHRP {
		return nil, fmt.Errorf("%w: unexpected prefix %q", ErrDecode, hrp)
	}

	data8, err := bech32.ConvertBits(data5, 5, 8, false)
	clear(data5)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	defer clear(data8)

	if len(data8) < 1+SeedSize {
		return nil, fmt.Errorf("%w: got %d bytes, need %d", ErrDecode, len(data8), 1+SeedSize)
	}

	scheme := Scheme(data8[0])
	if scheme != SchemeEd25519 {
		return nil, fmt.Errorf("%w: unsupported signature scheme 0x%02x", ErrDecode, byte(scheme))
	}
	return newSecretMaterial(scheme, data8[1:1+SeedSize]), nil
}

func decodeHex(in []byte) (*SecretMaterial, error) {
	if len(in) >= 2 && in[0] == '0' && (in[1] == 'x' || in[1] == 'X') {
		in = in[2:]
	}
	if len(in) < 2*SeedSize {
		return nil, fmt.Errorf("%w: hex key has %d chars, need at least %d", ErrDecode, len(in), 2*SeedSize)
	}

	seed := make([]byte, SeedSize)
	defer clear(seed)
	if _, err := hex.Decode(seed, in[:2*SeedSize]); err != nil {
		return nil, fmt.Errorf("%w: invalid hex", ErrDecode)
	}
	return newSecretMaterial(SchemeEd25519, seed), nil
}

// Encode renders scheme and seed as a "suiprivkey1..." string.
func Encode(scheme Scheme, seed []byte) (string, error) {
	if len(seed) != SeedSize {
		return "", fmt.Errorf("seed must be %d bytes, got %d", SeedSize, len(seed))
	}
	payload := make([]byte, 0, 1+SeedSize)
	payload = append(payload, byte(scheme))
	payload = append(payload, seed...)
	defer clear(payload)

	data5, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("failed to convert bits: %w", err)
	}
	defer clear(data5)

	return bech32.Encode(PrivateKeyHRP, data5)
}

// Package keys decodes Sui private keys, derives addresses and signs
// transaction intents. Secret material lives only inside WithSecret.
package keys

import (
	"crypto/ed25519"
	"errors"
)

// Scheme is the one-byte signature scheme flag carried by Sui keys.
type Scheme uint8

const (
	SchemeEd25519   Scheme = 0x00
	SchemeSecp256k1 Scheme = 0x01
	SchemeSecp256r1 Scheme = 0x02
)

const (
	SeedSize      = 32
	PublicKeySize = ed25519.PublicKeySize
)

// ErrWiped is returned when secret material is used after its scope ended.
var ErrWiped = errors.New("secret material already wiped")

// SecretMaterial holds a decoded private key. It must not escape the
// operation that created it: use WithSecret to get one.
type SecretMaterial struct {
	scheme     Scheme
	seed       [SeedSize]byte
	publicKey  [PublicKeySize]byte
	signingKey ed25519.PrivateKey
	wiped      bool
}

func newSecretMaterial(scheme Scheme, seed []byte) *SecretMaterial {
	m := &SecretMaterial{scheme: scheme}
	copy(m.seed[:], seed)
	m.signingKey = ed25519.NewKeyFromSeed(m.seed[:])
	copy(m.publicKey[:], m.signingKey.Public().(ed25519.PublicKey))
	return m
}

// Scheme returns the signature scheme flag.
func (m *SecretMaterial) Scheme() Scheme {
	return m.scheme
}

// PublicKey returns a copy of the 32-byte ed25519 public key.
func (m *SecretMaterial) PublicKey() []byte {
	out := make([]byte, PublicKeySize)
	copy(out, m.publicKey[:])
	return out
}

// Wiped reports whether Wipe has run.
func (m *SecretMaterial) Wiped() bool {
	return m.wiped
}

// Wipe zeroes the seed, the expanded signing key and the public key.
// Safe to call more than once.
func (m *SecretMaterial) Wipe() {
	clear(m.seed[:])
	clear(m.signingKey)
	clear(m.publicKey[:])
	m.signingKey = nil
	m.wiped = true
}

// String never prints key bytes.
func (m *SecretMaterial) String() string {
	return "SecretMaterial(redacted)"
}

// GoString keeps %#v from dumping the struct.
func (m *SecretMaterial) GoString() string {
	return m.String()
}

// MarshalJSON refuses to serialize secret material.
func (m *SecretMaterial) MarshalJSON() ([]byte, error) {
	return nil, errors.New("secret material is not serializable")
}

// WithSecret decodes raw, passes the material to fn and wipes both the
// material and raw on every return path, including panics in fn.
func WithSecret(raw []byte, fn func(*SecretMaterial) error) error {
	defer clear(raw)

	m, err := Decode(raw)
	if err != nil {
		return err
	}
	defer m.Wipe()

	return fn(m)
}

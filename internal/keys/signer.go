package keys

import (
	"crypto/ed25519"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// IntentPrefix is scope TransactionData, version V0, app id Sui.
var IntentPrefix = [3]byte{0x00, 0x00, 0x00}

// EnvelopeSize is flag(1) + signature(64) + public key(32).
const EnvelopeSize = 1 + ed25519.SignatureSize + PublicKeySize

// SignatureEnvelope is the serialized signature the chain expects.
type SignatureEnvelope struct {
	Scheme    Scheme
	Signature [ed25519.SignatureSize]byte
	PublicKey [PublicKeySize]byte
}

// Bytes returns the 97-byte raw envelope.
func (e SignatureEnvelope) Bytes() []byte {
	out := make([]byte, 0, EnvelopeSize)
	out = append(out, byte(e.Scheme))
	out = append(out, e.Signature[:]...)
	out = append(out, e.PublicKey[:]...)
	return out
}

// Base64 encodes the envelope for the execute call.
func (e SignatureEnvelope) Base64() string {
	return base64.StdEncoding.EncodeToString(e.Bytes())
}

// IntentMessage returns IntentPrefix || txBytes.
func IntentMessage(txBytes []byte) []byte {
	msg := make([]byte, 0, len(IntentPrefix)+len(txBytes))
	msg = append(msg, IntentPrefix[:]...)
	return append(msg, txBytes...)
}

// IntentDigest is blake2b-256 of the intent message.
func IntentDigest(txBytes []byte) [32]byte {
	return blake2b.Sum256(IntentMessage(txBytes))
}

// SignTransaction signs the intent digest of txBytes with m.
func SignTransaction(txBytes []byte, m *SecretMaterial) (SignatureEnvelope, error) {
	if m.wiped {
		return SignatureEnvelope{}, ErrWiped
	}
	if m.scheme != SchemeEd25519 {
		return SignatureEnvelope{}, fmt.Errorf("unsupported signature scheme 0x%02x", byte(m.scheme))
	}

	digest := IntentDigest(txBytes)
	env := SignatureEnvelope{Scheme: m.scheme, PublicKey: m.publicKey}
	copy(env.Signature[:], ed25519.Sign(m.signingKey, digest[:]))
	return env, nil
}

// VerifyEnvelope checks env against the intent digest of txBytes.
func VerifyEnvelope(txBytes []byte, env SignatureEnvelope) bool {
	digest := IntentDigest(txBytes)
	return ed25519.Verify(env.PublicKey[:], digest[:], env.Signature[:])
}

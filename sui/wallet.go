package sui

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"slices"

	"github.com/AlexZinkM/miao-wallet/internal/keys"
	"github.com/AlexZinkM/miao-wallet/internal/log"
)

// WalletWriter stores a new wallet
type WalletWriter interface {
	Set(alias string, secret []byte) error
	SetAddress(alias, address string) error
}

// GenerateWallet creates a random ed25519 key, stores it under alias and
// returns its address. The seed is stored hex encoded.
func GenerateWallet(w WalletWriter, alias string) (string, error) {
	seed := make([]byte, keys.SeedSize)
	defer clear(seed)
	if _, err := rand.Read(seed); err != nil {
		return "", fmt.Errorf("failed to generate seed: %w", err)
	}

	secret := make([]byte, hex.EncodedLen(len(seed)))
	defer clear(secret)
	hex.Encode(secret, seed)

	return ImportWallet(w, alias, secret)
}

// ImportWallet validates secret, stores it under alias and caches its
// address. secret is left intact; the caller clears it.
func ImportWallet(w WalletWriter, alias string, secret []byte) (string, error) {
	var address string
	err := keys.WithSecret(slices.Clone(secret), func(m *keys.SecretMaterial) error {
		var err error
		address, err = keys.DeriveAddress(keys.ChainSui, m)
		return err
	})
	if err != nil {
		return "", err
	}

	if err := w.Set(alias, secret); err != nil {
		return "", err
	}
	if err := w.SetAddress(alias, address); err != nil {
		return "", fmt.Errorf("failed to cache address: %w", err)
	}
	log.Store.Info().Str("wallet", alias).Str("address", address).Msg("wallet added")
	return address, nil
}

// SecretReader returns a copy of a stored secret
type SecretReader interface {
	Get(alias string) ([]byte, error)
}

// DeriveWalletAddress decrypts alias and derives the address of its key on
// chain. The secret is wiped before returning.
func DeriveWalletAddress(r SecretReader, alias string, chain keys.Chain) (string, error) {
	secret, err := r.Get(alias)
	if err != nil {
		return "", err
	}

	var address string
	err = keys.WithSecret(secret, func(m *keys.SecretMaterial) error {
		address, err = keys.DeriveAddress(chain, m)
		return err
	})
	if err != nil {
		return "", err
	}
	return address, nil
}

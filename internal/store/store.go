// Package store keeps encoded secrets keyed by wallet alias, together with
// a plaintext cache of each wallet's address.
package store

import (
	"errors"
	"fmt"
	"regexp"
)

// NetworkSui is the network tag written into wallet headers
const NetworkSui = "sui"

var (
	// ErrNotFound is returned when no wallet exists under an alias
	ErrNotFound = errors.New("wallet not found")
	// ErrInvalidAlias is returned for aliases that are not safe as file names
	ErrInvalidAlias = errors.New("invalid wallet alias")
)

// ExistsError is returned when a wallet with the alias already exists
type ExistsError struct {
	Alias string
}

func (e *ExistsError) Error() string {
	return fmt.Sprintf("wallet %q already exists", e.Alias)
}

// IsExistsError checks if error is ExistsError
func IsExistsError(err error) bool {
	var e *ExistsError
	return errors.As(err, &e)
}

// SecretStore holds encoded secrets. Get returns a fresh copy that the
// caller owns and must clear.
type SecretStore interface {
	Get(alias string) ([]byte, error)
	Set(alias string, secret []byte) error
	Delete(alias string) error
}

// AddressBook caches derived addresses in plaintext.
type AddressBook interface {
	Address(alias string) (string, error)
	SetAddress(alias, address string) error
}

// Wallets is a secret store with an address book
type Wallets interface {
	SecretStore
	AddressBook
	List() ([]Entry, error)
}

// Entry is one stored wallet
type Entry struct {
	Alias   string
	Network string
	Address string
}

var aliasRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]{0,63}$`)

// ValidateAlias rejects aliases that are not safe as file names
func ValidateAlias(alias string) error {
	if !aliasRe.MatchString(alias) {
		return fmt.Errorf("%w %q: use letters, digits, '.', '_' or '-'", ErrInvalidAlias, alias)
	}
	return nil
}

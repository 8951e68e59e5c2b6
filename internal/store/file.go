package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/AlexZinkM/miao-wallet/internal/crypto"
	"github.com/AlexZinkM/miao-wallet/internal/log"
	"github.com/AlexZinkM/miao-wallet/internal/model"
)

// PasswordFunc returns the wallet password. The store clears the returned
// slice after use, so implementations must hand out a copy.
type PasswordFunc func() ([]byte, error)

// FileStore keeps one encrypted wallet file per alias in a directory
type FileStore struct {
	dir      string
	password PasswordFunc
}

// NewFileStore creates the directory if needed
func NewFileStore(dir string, password PasswordFunc) (*FileStore, error) {
	if dir == "" {
		return nil, errors.New("wallet directory is not set")
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create wallet directory: %w", err)
	}
	return &FileStore{dir: dir, password: password}, nil
}

// Path returns the wallet file path for alias
func (s *FileStore) Path(alias string) string {
	return filepath.Join(s.dir, alias+crypto.FileExt)
}

func (s *FileStore) Get(alias string) ([]byte, error) {
	path, err := s.existing(alias)
	if err != nil {
		return nil, err
	}

	password, err := s.password()
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	defer clear(password)

	_, walletData, err := crypto.DecryptWallet(path, password)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt wallet: %w", err)
	}
	log.Store.Debug().Str("wallet", alias).Msg("wallet decrypted")
	return walletData.Secret, nil
}

func (s *FileStore) Set(alias string, secret []byte) error {
	if err := ValidateAlias(alias); err != nil {
		return err
	}
	path := s.Path(alias)
	if info, err := os.Stat(path); err == nil && info.Size() > 0 {
		return &ExistsError{Alias: alias}
	}

	password, err := s.password()
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	defer clear(password)

	walletData := &model.WalletData{
		Secret:    slices.Clone(secret),
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	defer clear(walletData.Secret)

	if err := crypto.EncryptWallet(path, crypto.Header{Network: NetworkSui}, walletData, password); err != nil {
		return fmt.Errorf("failed to encrypt wallet: %w", err)
	}
	log.Store.Info().Str("wallet", alias).Str("path", path).Msg("wallet stored")
	return nil
}

func (s *FileStore) Delete(alias string) error {
	path, err := s.existing(alias)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove wallet: %w", err)
	}
	log.Store.Info().Str("wallet", alias).Msg("wallet removed")
	return nil
}

func (s *FileStore) Address(alias string) (string, error) {
	path, err := s.existing(alias)
	if err != nil {
		return "", err
	}
	return crypto.ReadWalletAddress(path)
}

// SetAddress stores address and its QR code in the plaintext header
func (s *FileStore) SetAddress(alias, address string) error {
	path, err := s.existing(alias)
	if err != nil {
		return err
	}
	var qr string
	if address != "" {
		if qr, err = QRCode(address); err != nil {
			return err
		}
	}
	return crypto.UpdateWalletHeader(path, crypto.Header{Network: NetworkSui, Address: address, QR: qr})
}

// QR returns the base64 PNG QR code of the cached address
func (s *FileStore) QR(alias string) (string, error) {
	path, err := s.existing(alias)
	if err != nil {
		return "", err
	}
	h, err := crypto.ReadWalletHeader(path)
	if err != nil {
		return "", err
	}
	return h.QR, nil
}

func (s *FileStore) List() ([]Entry, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, "*"+crypto.FileExt))
	if err != nil {
		return nil, err
	}
	slices.Sort(matches)

	out := make([]Entry, 0, len(matches))
	for _, m := range matches {
		h, err := crypto.ReadWalletHeader(m)
		if err != nil {
			log.Store.Warn().Err(err).Str("path", m).Msg("skipping unreadable wallet file")
			continue
		}
		out = append(out, Entry{
			Alias:   strings.TrimSuffix(filepath.Base(m), crypto.FileExt),
			Network: h.Network,
			Address: h.Address,
		})
	}
	return out, nil
}

func (s *FileStore) existing(alias string) (string, error) {
	if err := ValidateAlias(alias); err != nil {
		return "", err
	}
	path := s.Path(alias)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", err
	}
	return path, nil
}

package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/AlexZinkM/miao-wallet/internal/crypto"
	"github.com/AlexZinkM/miao-wallet/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileStore(t *testing.T) *FileStore {
	t.Helper()
	prev := crypto.DefaultKDF
	crypto.DefaultKDF = model.KDFParams{N: 1 << 10, R: 8, P: 1}
	t.Cleanup(func() { crypto.DefaultKDF = prev })

	s, err := NewFileStore(t.TempDir(), func() ([]byte, error) { return []byte("pw"), nil })
	require.NoError(t, err)
	return s
}

func TestStores(t *testing.T) {
	stores := map[string]func(t *testing.T) Wallets{
		"memory": func(*testing.T) Wallets { return NewMemoryStore() },
		"file":   func(t *testing.T) Wallets { return newFileStore(t) },
	}
	for name, mk := range stores {
		t.Run(name, func(t *testing.T) {
			s := mk(t)

			_, err := s.Get("main")
			assert.True(t, errors.Is(err, ErrNotFound))

			secret := []byte("suiprivkey1abc")
			require.NoError(t, s.Set("main", secret))
			assert.True(t, IsExistsError(s.Set("main", secret)))

			got, err := s.Get("main")
			require.NoError(t, err)
			assert.Equal(t, secret, got)

			// caller owns the returned copy
			clear(got)
			again, err := s.Get("main")
			require.NoError(t, err)
			assert.Equal(t, secret, again)

			addr, err := s.Address("main")
			require.NoError(t, err)
			assert.Empty(t, addr)

			require.NoError(t, s.SetAddress("main", "0xabc"))
			addr, err = s.Address("main")
			require.NoError(t, err)
			assert.Equal(t, "0xabc", addr)

			require.NoError(t, s.Set("alt", []byte("00")))
			list, err := s.List()
			require.NoError(t, err)
			require.Len(t, list, 2)
			assert.Equal(t, "alt", list[0].Alias)
			assert.Equal(t, Entry{Alias: "main", Network: NetworkSui, Address: "0xabc"}, list[1])

			require.NoError(t, s.Delete("main"))
			_, err = s.Get("main")
			assert.True(t, errors.Is(err, ErrNotFound))
			assert.True(t, errors.Is(s.Delete("main"), ErrNotFound))
		})
	}
}

func TestFileStore_SecretNotOnDiskInClear(t *testing.T) {
	s := newFileStore(t)
	require.NoError(t, s.Set("main", []byte("suiprivkey1secret")))
	require.NoError(t, s.SetAddress("main", "0xabc"))

	raw, err := os.ReadFile(s.Path("main"))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "suiprivkey1secret")
	assert.Contains(t, string(raw), "0xabc")

	qr, err := s.QR("main")
	require.NoError(t, err)
	assert.NotEmpty(t, qr)
}

func TestFileStore_WrongPassword(t *testing.T) {
	s := newFileStore(t)
	require.NoError(t, s.Set("main", []byte("x")))

	wrong, err := NewFileStore(filepath.Dir(s.Path("main")), func() ([]byte, error) { return []byte("nope"), nil })
	require.NoError(t, err)
	_, err = wrong.Get("main")
	assert.True(t, errors.Is(err, crypto.ErrInvalidPassword))
}

func TestValidateAlias(t *testing.T) {
	for _, ok := range []string{"main", "cold-1", "a.b_c"} {
		assert.NoError(t, ValidateAlias(ok), ok)
	}
	for _, bad := range []string{"", "../etc", "a/b", ".hidden", "with space"} {
		assert.Error(t, ValidateAlias(bad), bad)
	}
}

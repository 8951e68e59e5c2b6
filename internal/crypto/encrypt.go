package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlexZinkM/miao-wallet/internal/model"

	"golang.org/x/crypto/scrypt"
)

// FileExt is the wallet file extension
const FileExt = ".mwt"

const (
	// scrypt parameters for local wallet
	// N=2^18 (~256MB RAM, 0.5-2s)
	scryptN      = 1 << 18
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 32
	saltLen      = 32
	nonceLen     = 12
)

// DefaultKDF is used for newly sealed wallet files. Files record their own
// parameters, so lowering it only affects files written afterwards.
var DefaultKDF = model.KDFParams{N: scryptN, R: scryptR, P: scryptP}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Header is the plaintext part of a wallet file
type Header struct {
	Network string
	Address string
	QR      string
}

// EncryptWallet encrypts wallet data and writes it to a new wallet file.
// password must be []byte for security (caller should zero it after use)
func EncryptWallet(filePath string, header Header, walletData *model.WalletData, password []byte) error {
	if !strings.HasSuffix(filePath, FileExt) {
		return fmt.Errorf("file must have %s extension", FileExt)
	}

	// Refuse to overwrite a non-empty file
	if fileInfo, err := os.Stat(filePath); err == nil && fileInfo.Size() > 0 {
		return fmt.Errorf("file is not empty: %w", os.ErrExist)
	}

	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return fmt.Errorf("failed to generate salt: %w", err)
	}

	nonce := make([]byte, nonceLen)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return fmt.Errorf("failed to generate nonce: %w", err)
	}

	kdf := DefaultKDF
	aesGCM, err := newGCM(password, salt, kdf)
	if err != nil {
		return err
	}

	plaintext, err := json.Marshal(walletData)
	if err != nil {
		return fmt.Errorf("failed to marshal wallet data: %w", err)
	}
	defer clear(plaintext)

	ciphertext := aesGCM.Seal(nil, nonce, plaintext, nil)

	walletFile := model.WalletFile{
		Network:    header.Network,
		Address:    header.Address,
		QR:         header.QR,
		KDF:        &kdf,
		Salt:       base64.StdEncoding.EncodeToString(salt),
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		CipherText: base64.StdEncoding.EncodeToString(ciphertext),
	}
	return writeWalletFile(filePath, &walletFile)
}

// UpdateWalletHeader rewrites the plaintext header of an existing wallet
// file. The ciphertext is left untouched, so no password is needed.
func UpdateWalletHeader(filePath string, header Header) error {
	walletFile, err := readWalletFile(filePath)
	if err != nil {
		return err
	}
	walletFile.Network = header.Network
	walletFile.Address = header.Address
	walletFile.QR = header.QR
	return writeWalletFile(filePath, walletFile)
}

func newGCM(password, salt []byte, kdf model.KDFParams) (cipher.AEAD, error) {
	key, err := scrypt.Key(password, salt, kdf.N, kdf.R, kdf.P, scryptKeyLen)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer clear(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return aesGCM, nil
}

func writeWalletFile(filePath string, walletFile *model.WalletFile) error {
	fileData, err := json.MarshalIndent(walletFile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal wallet file: %w", err)
	}

	// UTF-8 BOM for proper display in Windows
	fileDataWithBOM := append(append([]byte{}, utf8BOM...), fileData...)

	// Write next to the target and rename so a crash never leaves half a file
	tmp := filePath + ".tmp"
	if err := os.WriteFile(tmp, fileDataWithBOM, 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := os.Rename(tmp, filePath); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

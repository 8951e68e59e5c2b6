package crypto

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/AlexZinkM/miao-wallet/internal/model"
)

// ErrInvalidPassword is returned when the ciphertext fails to open
var ErrInvalidPassword = errors.New("invalid password")

// DecryptWallet reads and decrypts a wallet file.
// password must be []byte for security (caller should zero it after use).
// The caller owns WalletData.Secret and must clear it.
func DecryptWallet(filePath string, password []byte) (*model.WalletFile, *model.WalletData, error) {
	walletFile, err := readWalletFile(filePath)
	if err != nil {
		return nil, nil, err
	}

	salt, err := base64.StdEncoding.DecodeString(walletFile.Salt)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode salt: %w", err)
	}

	nonce, err := base64.StdEncoding.DecodeString(walletFile.Nonce)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode nonce: %w", err)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(walletFile.CipherText)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode ciphertext: %w", err)
	}

	kdf := model.KDFParams{N: scryptN, R: scryptR, P: scryptP}
	if walletFile.KDF != nil {
		kdf = *walletFile.KDF
	}

	aesGCM, err := newGCM(password, salt, kdf)
	if err != nil {
		return nil, nil, err
	}

	plaintext, err := aesGCM.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, nil, ErrInvalidPassword
	}
	defer clear(plaintext) // wipe decrypted bytes from memory

	var walletData model.WalletData
	if err := json.Unmarshal(plaintext, &walletData); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal wallet data: %w", err)
	}

	return walletFile, &walletData, nil
}

// ReadWalletAddress reads only the address from a wallet file (without decryption)
func ReadWalletAddress(filePath string) (string, error) {
	walletFile, err := ReadWalletHeader(filePath)
	if err != nil {
		return "", err
	}
	return walletFile.Address, nil
}

// ReadWalletHeader reads the plaintext header fields (without decryption)
func ReadWalletHeader(filePath string) (Header, error) {
	walletFile, err := readWalletFile(filePath)
	if err != nil {
		return Header{}, err
	}
	return Header{
		Network: walletFile.Network,
		Address: walletFile.Address,
		QR:      walletFile.QR,
	}, nil
}

func readWalletFile(filePath string) (*model.WalletFile, error) {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file does not exist: %w", os.ErrNotExist)
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	if fileInfo.Size() == 0 {
		return nil, errors.New("file is empty")
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	fileData = bytes.TrimPrefix(fileData, utf8BOM)

	var walletFile model.WalletFile
	if err := json.Unmarshal(fileData, &walletFile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wallet file: %w", err)
	}
	return &walletFile, nil
}

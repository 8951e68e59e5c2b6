package model

// WalletFile represents the on-disk wallet file. Network, Address and QR are
// plaintext so the wallet can be listed and previewed without the password.
type WalletFile struct {
	Network    string     `json:"network"`
	Address    string     `json:"address"`
	QR         string     `json:"QR"`
	KDF        *KDFParams `json:"kdf,omitempty"`
	Salt       string     `json:"salt"`
	Nonce      string     `json:"nonce"`
	CipherText string     `json:"cipherText"`
}

// KDFParams are the scrypt cost parameters a wallet file was sealed with
type KDFParams struct {
	N int `json:"N"`
	R int `json:"r"`
	P int `json:"p"`
}

// WalletData represents decrypted wallet data
type WalletData struct {
	Secret    []byte `json:"secret"` // encoded private key (suiprivkey1... or hex), base64 in JSON
	CreatedAt string `json:"createdAt"`
}

// WalletEntry is one row of the wallet list
type WalletEntry struct {
	Wallet  string `json:"wallet"`
	Network string `json:"network"`
	Address string `json:"address"`
}

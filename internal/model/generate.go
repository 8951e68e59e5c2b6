package model

// GenerateRequest represents request for POST /sui/wallet/generate
type GenerateRequest struct {
	Wallet string `json:"wallet" binding:"required"`
}

// ImportRequest represents request for POST /sui/wallet/import
type ImportRequest struct {
	Wallet string `json:"wallet" binding:"required"`
	Secret string `json:"secret" binding:"required"` // suiprivkey1... or hex
}

// GenerateResponse represents response for POST .../generate and .../import
type GenerateResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Address string `json:"address,omitempty"`
}

// AddressResponse represents response for GET /sui/wallet/address
type AddressResponse struct {
	Wallet  string `json:"wallet"`
	Address string `json:"address"`
	QR      string `json:"QR,omitempty"`
}

package model

// TransferRequest represents request for POST /sui/preview and POST /sui/transfer
type TransferRequest struct {
	Wallet    string `json:"wallet" binding:"required"`
	To        string `json:"to" binding:"required"`     // 0x address or SuiNS name
	Amount    string `json:"amount" binding:"required"` // SUI, up to 9 decimals
	GasBudget uint64 `json:"gasBudget,omitempty"`       // MIST, 0 = server default
	// Confirm must be true on /sui/transfer. The simulation still gates signing.
	Confirm bool `json:"confirm,omitempty"`
}

package model

// BalanceResponse represents response for GET /sui/balance
type BalanceResponse struct {
	Wallet    string `json:"wallet"`
	Address   string `json:"address"`
	Mist      uint64 `json:"mist,string"`
	SUI       string `json:"sui"`
	CoinCount int    `json:"coinCount"`
	Currency  string `json:"currency,omitempty"`
	Rate      string `json:"rate,omitempty"`
	Value     string `json:"value,omitempty"`
}

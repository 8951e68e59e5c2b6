package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlexZinkM/miao-wallet/internal/log"
	"github.com/AlexZinkM/miao-wallet/internal/model"
	"github.com/AlexZinkM/miao-wallet/internal/store"
	"github.com/AlexZinkM/miao-wallet/sui"
)

// QRSource is implemented by stores that keep a QR code of the address
type QRSource interface {
	QR(alias string) (string, error)
}

// SuiHandler serves the Sui wallet endpoints
type SuiHandler struct {
	svc     *sui.Service
	wallets store.Wallets
}

// NewSuiHandler creates a new SuiHandler
func NewSuiHandler(svc *sui.Service, wallets store.Wallets) (*SuiHandler, error) {
	if svc == nil || wallets == nil {
		return nil, errors.New("sui service and wallet store are required")
	}
	return &SuiHandler{svc: svc, wallets: wallets}, nil
}

// Preview handles POST /sui/preview
// @Summary      Preview a transfer
// @Description  Builds and dry-runs a SUI transfer from the wallet's cached address. Does not decrypt the key.
// @Tags         sui
// @Accept       json
// @Produce      json
// @Param        request  body      model.TransferRequest  true  "Transfer data"
// @Success      200      {object}  sui.Preview
// @Failure      400      {object}  model.ErrorResponse
// @Failure      404      {object}  model.ErrorResponse
// @Failure      502      {object}  model.ErrorResponse
// @Router       /sui/preview [post]
func (h *SuiHandler) Preview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error(), Code: "invalid_request"})
		return
	}

	preview, err := h.svc.Preview(r.Context(), toTransferRequest(req))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, preview)
}

// Transfer handles POST /sui/transfer
// @Summary      Send SUI
// @Description  Builds, simulates, signs and broadcasts a SUI transfer. confirm must be true; a failed simulation still blocks signing.
// @Tags         sui
// @Accept       json
// @Produce      json
// @Param        request  body      model.TransferRequest  true  "Transfer data"
// @Success      200      {object}  sui.TransferOutcome
// @Failure      400      {object}  model.ErrorResponse
// @Failure      422      {object}  model.ErrorResponse
// @Failure      429      {object}  model.ErrorResponse
// @Failure      502      {object}  model.ErrorResponse
// @Router       /sui/transfer [post]
func (h *SuiHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error(), Code: "invalid_request"})
		return
	}
	if !req.Confirm {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{
			Error: "confirm must be true: use /sui/preview to inspect the transfer first",
			Code:  "confirmation_required",
		})
		return
	}

	outcome, err := h.svc.Transfer(r.Context(), toTransferRequest(req), sui.AutoConfirm{})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, outcome)
}

// GetBalance handles GET /sui/balance
// @Summary      Get wallet balance
// @Description  Sums the wallet's SUI coins and values them in the configured fiat currency
// @Tags         sui
// @Produce      json
// @Param        wallet  query     string  true  "Wallet alias"
// @Success      200     {object}  model.BalanceResponse
// @Failure      404     {object}  model.ErrorResponse
// @Router       /sui/balance [get]
func (h *SuiHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	wallet := r.URL.Query().Get("wallet")
	if wallet == "" {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "wallet is required", Code: "invalid_request"})
		return
	}

	balance, err := h.svc.GetBalance(r.Context(), wallet)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, balance)
}

// Generate handles POST /sui/wallet/generate
// @Summary      Generate new wallet
// @Description  Generates a new ed25519 key and stores it encrypted under the alias
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.GenerateRequest  true  "Wallet alias"
// @Success      200      {object}  model.GenerateResponse
// @Failure      409      {object}  model.ErrorResponse
// @Router       /sui/wallet/generate [post]
func (h *SuiHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error(), Code: "invalid_request"})
		return
	}

	address, err := sui.GenerateWallet(h.wallets, req.Wallet)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.GenerateResponse{
		Success: true,
		Message: "Wallet generated successfully",
		Address: address,
	})
}

// Import handles POST /sui/wallet/import
// @Summary      Import wallet
// @Description  Validates a suiprivkey or hex secret and stores it encrypted under the alias
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.ImportRequest  true  "Wallet alias and secret"
// @Success      200      {object}  model.GenerateResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      409      {object}  model.ErrorResponse
// @Router       /sui/wallet/import [post]
func (h *SuiHandler) Import(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "invalid request body", Code: "invalid_request"})
		return
	}
	secret := []byte(req.Secret)
	defer clear(secret) // Always clear secret from memory
	req.Secret = ""

	address, err := sui.ImportWallet(h.wallets, req.Wallet, secret)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.GenerateResponse{
		Success: true,
		Message: "Wallet imported successfully",
		Address: address,
	})
}

// Address handles GET /sui/wallet/address
// @Summary      Get wallet address
// @Description  Returns the cached address (and its QR code) without decrypting the wallet
// @Tags         wallet
// @Produce      json
// @Param        wallet  query     string  true  "Wallet alias"
// @Success      200     {object}  model.AddressResponse
// @Failure      404     {object}  model.ErrorResponse
// @Router       /sui/wallet/address [get]
func (h *SuiHandler) Address(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	wallet := r.URL.Query().Get("wallet")
	address, err := h.wallets.Address(wallet)
	if err != nil {
		writeError(w, err)
		return
	}
	if address == "" {
		writeError(w, sui.ErrAddressUnknown)
		return
	}

	resp := model.AddressResponse{Wallet: wallet, Address: address}
	if qs, ok := h.wallets.(QRSource); ok {
		if resp.QR, err = qs.QR(wallet); err != nil {
			log.API.Warn().Err(err).Str("wallet", wallet).Msg("failed to read QR code")
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// List handles GET /sui/wallet/list
// @Summary      List wallets
// @Description  Lists stored wallets with their cached addresses
// @Tags         wallet
// @Produce      json
// @Success      200  {array}  model.WalletEntry
// @Router       /sui/wallet/list [get]
func (h *SuiHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	entries, err := h.wallets.List()
	if err != nil {
		writeError(w, err)
		return
	}
	resp := make([]model.WalletEntry, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, model.WalletEntry{Wallet: e.Alias, Network: e.Network, Address: e.Address})
	}
	writeJSON(w, http.StatusOK, resp)
}

func toTransferRequest(req model.TransferRequest) sui.TransferRequest {
	return sui.TransferRequest{
		Wallet:    req.Wallet,
		To:        req.To,
		Amount:    req.Amount,
		GasBudget: req.GasBudget,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.API.Error().Err(err).Msg("failed to write response")
	}
}

func writeError(w http.ResponseWriter, err error) {
	status, code := classify(err)
	resp := model.ErrorResponse{Error: err.Error(), Code: code}

	var execErr *sui.ExecutionError
	if errors.As(err, &execErr) {
		resp.Digest = execErr.Digest
	}
	if status >= http.StatusInternalServerError {
		log.API.Error().Err(err).Str("code", code).Msg("request failed")
	} else {
		log.API.Warn().Err(err).Str("code", code).Msg("request rejected")
	}
	writeJSON(w, status, resp)
}

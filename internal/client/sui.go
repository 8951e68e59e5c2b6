package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"
)

const (
	SUICoinType = "0x2::sui::SUI"

	methodGetCoins           = "suix_getCoins"
	methodPaySui             = "unsafe_paySui"
	methodDryRun             = "sui_dryRunTransactionBlock"
	methodExecute            = "sui_executeTransactionBlock"
	methodResolveNameService = "suix_resolveNameServiceAddress"

	// WaitForLocalExecution returns once the fullnode has executed the
	// certified transaction locally.
	WaitForLocalExecution = "WaitForLocalExecution"
)

// SuiClient is a client for the Sui fullnode JSON-RPC API
type SuiClient struct {
	rpc      *RPCClient
	coinType string
}

// NewSuiClient creates a Sui client. An empty coinType means native SUI.
func NewSuiClient(rpcURL string, timeout time.Duration, coinType string) *SuiClient {
	if coinType == "" {
		coinType = SUICoinType
	}
	return &SuiClient{
		rpc:      NewRPCClient(rpcURL, timeout),
		coinType: coinType,
	}
}

// CoinType returns the asset type this client queries coins for.
func (c *SuiClient) CoinType() string {
	return c.coinType
}

// Coin is a spendable coin object.
type Coin struct {
	CoinType     string `json:"coinType"`
	CoinObjectID string `json:"coinObjectId"`
	Version      string `json:"version"`
	Digest       string `json:"digest"`
	Balance      uint64 `json:"balance,string"`
}

// CoinPage is one page of suix_getCoins.
type CoinPage struct {
	Data        []Coin  `json:"data"`
	NextCursor  *string `json:"nextCursor"`
	HasNextPage bool    `json:"hasNextPage"`
}

// GetCoins lists coins of the client's coin type owned by owner.
func (c *SuiClient) GetCoins(ctx context.Context, owner string, cursor *string, limit int) (*CoinPage, error) {
	var page CoinPage
	if err := c.rpc.Call(ctx, methodGetCoins, []any{owner, c.coinType, cursor, limit}, &page); err != nil {
		return nil, fmt.Errorf("failed to get coins: %w", err)
	}
	return &page, nil
}

// PayRequest is the input of unsafe_paySui.
type PayRequest struct {
	Sender     string
	CoinIDs    []string
	Recipients []string
	Amounts    []uint64
	GasBudget  uint64
}

// PaySui asks the fullnode to build an unsigned pay transaction.
// Returns base64 transaction bytes.
func (c *SuiClient) PaySui(ctx context.Context, req PayRequest) (string, error) {
	if len(req.Recipients) != len(req.Amounts) {
		return "", errors.New("recipients and amounts must have the same length")
	}
	amounts := make([]string, len(req.Amounts))
	for i, a := range req.Amounts {
		amounts[i] = strconv.FormatUint(a, 10)
	}

	var result struct {
		TxBytes string `json:"txBytes"`
	}
	params := []any{
		req.Sender,
		req.CoinIDs,
		req.Recipients,
		amounts,
		strconv.FormatUint(req.GasBudget, 10),
	}
	if err := c.rpc.Call(ctx, methodPaySui, params, &result); err != nil {
		return "", fmt.Errorf("failed to build transaction: %w", err)
	}
	if result.TxBytes == "" {
		return "", errors.New("builder returned empty txBytes")
	}
	return result.TxBytes, nil
}

// DryRun simulates txBytes without a signature.
func (c *SuiClient) DryRun(ctx context.Context, txBytes string) (*SimulationResult, error) {
	var result SimulationResult
	if err := c.rpc.Call(ctx, methodDryRun, []any{txBytes}, &result); err != nil {
		return nil, fmt.Errorf("failed to dry run transaction: %w", err)
	}
	if result.Effects.Status.Status == "" {
		return nil, errors.New("dry run response has no effects status")
	}
	return &result, nil
}

// ExecuteOptions selects the response fields of sui_executeTransactionBlock.
type ExecuteOptions struct {
	ShowEffects        bool `json:"showEffects"`
	ShowBalanceChanges bool `json:"showBalanceChanges"`
}

// Execute broadcasts signed txBytes and waits for local execution.
func (c *SuiClient) Execute(ctx context.Context, txBytes string, signatures []string) (*ExecutionResult, error) {
	opts := ExecuteOptions{ShowEffects: true, ShowBalanceChanges: true}

	var result ExecutionResult
	if err := c.rpc.Call(ctx, methodExecute, []any{txBytes, signatures, opts, WaitForLocalExecution}, &result); err != nil {
		return nil, fmt.Errorf("failed to execute transaction: %w", err)
	}
	if result.Digest == "" {
		return nil, errors.New("execute response has no digest")
	}
	return &result, nil
}

// ResolveNameServiceAddress resolves a SuiNS name such as "alice.sui".
// Returns "" when the name has no address.
func (c *SuiClient) ResolveNameServiceAddress(ctx context.Context, name string) (string, error) {
	var addr string
	err := c.rpc.Call(ctx, methodResolveNameService, []any{name}, &addr)
	if errors.Is(err, ErrNullResult) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", name, err)
	}
	return addr, nil
}

// ExecutionStatus is the effects status of a transaction.
type ExecutionStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Success reports whether the status is "success".
func (s ExecutionStatus) Success() bool {
	return s.Status == "success"
}

// GasCost is the gas summary of transaction effects, in MIST.
type GasCost struct {
	ComputationCost uint64 `json:"computationCost,string"`
	StorageCost     uint64 `json:"storageCost,string"`
	StorageRebate   uint64 `json:"storageRebate,string"`
}

// Net is computation + storage - rebate.
func (g GasCost) Net() int64 {
	return int64(g.ComputationCost) + int64(g.StorageCost) - int64(g.StorageRebate)
}

// Effects is the subset of transaction effects the wallet reads.
type Effects struct {
	Status            ExecutionStatus `json:"status"`
	GasUsed           GasCost         `json:"gasUsed"`
	TransactionDigest string          `json:"transactionDigest"`
}

// Owner is the owner of a balance change. Only address owners are
// expected for coin balances; other kinds are kept as their raw form.
type Owner struct {
	AddressOwner string `json:"AddressOwner,omitempty"`
	ObjectOwner  string `json:"ObjectOwner,omitempty"`
	Other        string `json:"-"`
}

// String returns the owning address, object id or raw owner kind.
func (o Owner) String() string {
	switch {
	case o.AddressOwner != "":
		return o.AddressOwner
	case o.ObjectOwner != "":
		return o.ObjectOwner
	default:
		return o.Other
	}
}

// UnmarshalJSON accepts both {"AddressOwner": "0x.."} and "Immutable".
func (o *Owner) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*o = Owner{Other: s}
		return nil
	}
	type plain Owner
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*o = Owner(p)
	return nil
}

// BalanceChange is a signed delta of one coin type for one owner.
type BalanceChange struct {
	Owner    Owner  `json:"owner"`
	CoinType string `json:"coinType"`
	Amount   int64  `json:"amount,string"`
}

// SimulationResult is the dry run response.
type SimulationResult struct {
	Effects        Effects         `json:"effects"`
	BalanceChanges []BalanceChange `json:"balanceChanges"`
}

// ExecutionResult is the execute response.
type ExecutionResult struct {
	Digest         string          `json:"digest"`
	Effects        *Effects        `json:"effects"`
	BalanceChanges []BalanceChange `json:"balanceChanges"`
	Errors         []string        `json:"errors,omitempty"`
}

// Package sui moves native SUI: it builds, simulates, confirms, signs and
// broadcasts a single-coin, single-recipient pay transaction.
package sui

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/AlexZinkM/miao-wallet/internal/client"
	"github.com/AlexZinkM/miao-wallet/internal/common"
	"github.com/AlexZinkM/miao-wallet/internal/keys"
	"github.com/AlexZinkM/miao-wallet/internal/log"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	// DefaultGasBudget is used when neither the request nor Options set one
	DefaultGasBudget uint64 = 5_000_000

	coinPageLimit = 50
	nameSuffix    = ".sui"
)

// Node is the subset of the fullnode API the pipeline calls
type Node interface {
	GetCoins(ctx context.Context, owner string, cursor *string, limit int) (*client.CoinPage, error)
	PaySui(ctx context.Context, req client.PayRequest) (string, error)
	DryRun(ctx context.Context, txBytes string) (*client.SimulationResult, error)
	Execute(ctx context.Context, txBytes string, signatures []string) (*client.ExecutionResult, error)
	ResolveNameServiceAddress(ctx context.Context, name string) (string, error)
}

// Wallets gives the pipeline one secret per operation and the cached address
type Wallets interface {
	Get(alias string) ([]byte, error)
	Address(alias string) (string, error)
	SetAddress(alias, address string) error
}

// RateSource returns the fiat price of one SUI
type RateSource interface {
	GetSUIRate(ctx context.Context, vs string) (decimal.Decimal, error)
}

// Options configures a Service
type Options struct {
	GasBudget    uint64
	Network      string // explorer network, e.g. "mainnet"
	FiatCurrency string
	Cooldown     time.Duration // minimum time between broadcasts from one wallet
	Rates        RateSource
}

// Service runs transfers against one fullnode
type Service struct {
	node    Node
	wallets Wallets
	opts    Options
	now     func() time.Time

	locks   keyedMutex
	mu      sync.Mutex
	lastPay map[string]time.Time
}

// NewService creates a Service
func NewService(node Node, wallets Wallets, opts Options) *Service {
	if opts.GasBudget == 0 {
		opts.GasBudget = DefaultGasBudget
	}
	return &Service{
		node:    node,
		wallets: wallets,
		opts:    opts,
		now:     time.Now,
		lastPay: make(map[string]time.Time),
	}
}

// TransferRequest asks to send Amount SUI from Wallet to To
type TransferRequest struct {
	Wallet    string
	To        string // 0x address or SuiNS name
	Amount    string // SUI, up to 9 decimals
	GasBudget uint64 // MIST, 0 = service default
}

// TransferOutcome is the result of a broadcast. It is safe to log.
type TransferOutcome struct {
	OpID           string          `json:"opId"`
	Digest         string          `json:"digest"`
	Status         string          `json:"status"`
	Sender         string          `json:"sender"`
	Recipient      string          `json:"recipient"`
	Amount         uint64          `json:"amountMist,string"`
	AmountSUI      string          `json:"amount"`
	Gas            GasSummary      `json:"gas"`
	BalanceChanges []BalanceChange `json:"balanceChanges"`
	ExplorerURL    string          `json:"explorerUrl,omitempty"`
}

type recipient struct {
	address string
	name    string
}

type plan struct {
	wallet    string
	to        *recipient
	amount    uint64
	gasBudget uint64
}

// Preview builds and simulates the transfer without touching the secret.
// The sender comes from the wallet's cached address. A failed prediction is
// reported in the Preview, not as an error.
func (s *Service) Preview(ctx context.Context, req TransferRequest) (*Preview, error) {
	logger := log.Transfer.With().Str("op_id", uuid.NewString()).Str("wallet", req.Wallet).Logger()

	p, err := s.plan(ctx, req)
	if err != nil {
		return nil, err
	}

	sender, err := s.wallets.Address(req.Wallet)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAddressUnknown, err)
	}
	if sender == "" {
		return nil, fmt.Errorf("%w: run a transfer or import the wallet once to cache it", ErrAddressUnknown)
	}
	if sender, err = keys.NormalizeSuiAddress(sender); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAddressUnknown, err)
	}

	tx, sim, err := s.buildAndSimulate(ctx, &logger, p, sender)
	if err != nil {
		return nil, err
	}
	return newPreview(p.wallet, p.to, tx, sim), nil
}

// Transfer runs the full pipeline. The confirmer is asked only after a
// successful simulation; the secret is wiped before the broadcast starts.
func (s *Service) Transfer(ctx context.Context, req TransferRequest, confirmer Confirmer) (*TransferOutcome, error) {
	opID := uuid.NewString()
	logger := log.Transfer.With().Str("op_id", opID).Str("wallet", req.Wallet).Logger()

	p, err := s.plan(ctx, req)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(p.wallet)
	defer unlock()

	if err := s.checkCooldown(p.wallet); err != nil {
		return nil, err
	}

	secret, err := s.wallets.Get(p.wallet)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyUnavailable, err)
	}
	if len(secret) == 0 {
		return nil, ErrKeyUnavailable
	}

	var (
		tx  *UnsignedTx
		sim *client.SimulationResult
		env keys.SignatureEnvelope
	)
	err = keys.WithSecret(secret, func(m *keys.SecretMaterial) error {
		sender, err := keys.DeriveAddress(keys.ChainSui, m)
		if err != nil {
			return err
		}
		logger.Info().Str("sender", sender).Msg("key decoded")
		s.refreshAddress(&logger, p.wallet, sender)

		tx, sim, err = s.buildAndSimulate(ctx, &logger, p, sender)
		if err != nil {
			return err
		}

		gate := NewGate()
		if err := gate.Observe(sim); err != nil {
			logger.Warn().Str("reason", sim.Effects.Status.Error).Msg("simulation predicts failure")
			return err
		}
		if err := gate.Confirm(ctx, confirmer, newPreview(p.wallet, p.to, tx, sim)); err != nil {
			logger.Info().Msg("transfer cancelled")
			return err
		}
		auth, err := gate.Authorize()
		if err != nil {
			return err
		}
		env, err = auth.Sign(tx.Bytes, m)
		return err
	})
	if err != nil {
		return nil, err
	}
	logger.Info().Msg("transaction signed")

	// Past the signature nothing cancels the operation
	execCtx := context.WithoutCancel(ctx)
	res, err := s.node.Execute(execCtx, tx.Base64, []string{env.Base64()})
	if err != nil {
		var rpcErr *client.RPCError
		if errors.As(err, &rpcErr) {
			s.markPaid(p.wallet)
			logger.Error().Err(err).Msg("transaction rejected")
			return nil, &ExecutionError{Status: "rejected", Reason: rpcErr.Message}
		}
		logger.Error().Err(err).Msg("broadcast failed")
		return nil, fmt.Errorf("%w: %w", ErrBroadcastTransport, err)
	}
	s.markPaid(p.wallet)

	outcome := s.outcome(opID, tx, res)
	if res.Effects == nil || !res.Effects.Status.Success() {
		execErr := &ExecutionError{Digest: res.Digest, Status: outcome.Status, Outcome: outcome}
		switch {
		case res.Effects != nil:
			execErr.Reason = res.Effects.Status.Error
		case len(res.Errors) > 0:
			execErr.Reason = strings.Join(res.Errors, "; ")
		default:
			execErr.Reason = "response has no effects"
		}
		logger.Error().Str("digest", res.Digest).Str("reason", execErr.Reason).Msg("execution failed")
		return nil, execErr
	}

	logger.Info().
		Str("digest", outcome.Digest).
		Int64("gas_net", outcome.Gas.Net).
		Str("explorer", outcome.ExplorerURL).
		Msg("transfer executed")
	return outcome, nil
}

func (s *Service) plan(ctx context.Context, req TransferRequest) (*plan, error) {
	if req.Wallet == "" {
		return nil, fmt.Errorf("%w: wallet is required", ErrInvalidRequest)
	}
	amount, err := common.SUIToMist(req.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid amount: %w", ErrInvalidRequest, err)
	}
	if amount == 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidRequest)
	}
	to, err := s.resolveRecipient(ctx, req.To)
	if err != nil {
		return nil, err
	}
	gasBudget := req.GasBudget
	if gasBudget == 0 {
		gasBudget = s.opts.GasBudget
	}
	return &plan{wallet: req.Wallet, to: to, amount: amount, gasBudget: gasBudget}, nil
}

// resolveRecipient accepts a 0x address or a SuiNS name such as "alice.sui"
func (s *Service) resolveRecipient(ctx context.Context, to string) (*recipient, error) {
	to = strings.TrimSpace(to)
	if to == "" {
		return nil, fmt.Errorf("%w: recipient is required", ErrInvalidRequest)
	}

	if !strings.HasSuffix(strings.ToLower(to), nameSuffix) {
		addr, err := keys.NormalizeSuiAddress(to)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
		}
		return &recipient{address: addr}, nil
	}

	resolved, err := s.node.ResolveNameServiceAddress(ctx, to)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNameResolution, err)
	}
	if resolved == "" {
		return nil, fmt.Errorf("%w: %s has no address", ErrNameResolution, to)
	}
	addr, err := keys.NormalizeSuiAddress(resolved)
	if err != nil {
		return nil, fmt.Errorf("%w: %s resolved to %q: %w", ErrNameResolution, to, resolved, err)
	}
	return &recipient{address: addr, name: to}, nil
}

// buildAndSimulate selects the first coin, asks the node for the unsigned
// pay transaction and dry-runs it. It never sees secret material.
func (s *Service) buildAndSimulate(ctx context.Context, logger *zerolog.Logger, p *plan, sender string) (*UnsignedTx, *client.SimulationResult, error) {
	page, err := s.node.GetCoins(ctx, sender, nil, coinPageLimit)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrCoinSource, err)
	}
	if len(page.Data) == 0 {
		return nil, nil, fmt.Errorf("%w: %s has no coins", ErrNoFunds, sender)
	}
	coin := page.Data[0]
	logger.Debug().Str("coin", coin.CoinObjectID).Uint64("balance", coin.Balance).Msg("coin selected")

	txB64, err := s.node.PaySui(ctx, client.PayRequest{
		Sender:     sender,
		CoinIDs:    []string{coin.CoinObjectID},
		Recipients: []string{p.to.address},
		Amounts:    []uint64{p.amount},
		GasBudget:  p.gasBudget,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrBuilder, err)
	}
	txBytes, err := base64.StdEncoding.DecodeString(txB64)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: txBytes are not base64: %w", ErrBuilder, err)
	}
	tx := &UnsignedTx{
		Bytes:     txBytes,
		Base64:    txB64,
		Sender:    sender,
		Recipient: p.to.address,
		Amount:    p.amount,
		GasBudget: p.gasBudget,
		CoinID:    coin.CoinObjectID,
	}
	logger.Info().
		Str("sender", sender).
		Str("recipient", tx.Recipient).
		Uint64("amount", tx.Amount).
		Uint64("gas_budget", tx.GasBudget).
		Msg("transaction built")

	sim, err := s.node.DryRun(ctx, txB64)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrSimulationTransport, err)
	}
	logger.Info().
		Str("status", sim.Effects.Status.Status).
		Int64("gas_net", sim.Effects.GasUsed.Net()).
		Msg("transaction simulated")
	return tx, sim, nil
}

func (s *Service) outcome(opID string, tx *UnsignedTx, res *client.ExecutionResult) *TransferOutcome {
	out := &TransferOutcome{
		OpID:           opID,
		Digest:         res.Digest,
		Status:         "unknown",
		Sender:         tx.Sender,
		Recipient:      tx.Recipient,
		Amount:         tx.Amount,
		AmountSUI:      common.MistToSUI(tx.Amount),
		BalanceChanges: labelChanges(res.BalanceChanges, tx.Sender, tx.Recipient),
		ExplorerURL:    ExplorerURL(s.opts.Network, res.Digest),
	}
	if res.Effects != nil {
		out.Status = res.Effects.Status.Status
		out.Gas = newGasSummary(res.Effects.GasUsed)
	}
	return out
}

// ExplorerURL links a transaction digest on suiscan
func ExplorerURL(network, digest string) string {
	if network == "" || digest == "" {
		return ""
	}
	return fmt.Sprintf("https://suiscan.xyz/%s/tx/%s", network, digest)
}

func (s *Service) refreshAddress(logger *zerolog.Logger, wallet, sender string) {
	cached, err := s.wallets.Address(wallet)
	if err == nil && cached == sender {
		return
	}
	if err := s.wallets.SetAddress(wallet, sender); err != nil {
		logger.Warn().Err(err).Msg("failed to cache wallet address")
	}
}

func (s *Service) checkCooldown(wallet string) error {
	if s.opts.Cooldown <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	last, ok := s.lastPay[wallet]
	if !ok {
		return nil
	}
	if elapsed := s.now().Sub(last); elapsed < s.opts.Cooldown {
		remaining := s.opts.Cooldown - elapsed
		return fmt.Errorf("%w, please wait %v", ErrCooldown, remaining.Round(time.Second))
	}
	return nil
}

func (s *Service) markPaid(wallet string) {
	s.mu.Lock()
	s.lastPay[wallet] = s.now()
	s.mu.Unlock()
}

// keyedMutex serializes operations per key
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (k *keyedMutex) Lock(key string) (unlock func()) {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*sync.Mutex)
	}
	l, ok := k.locks[key]
	if !ok {
		l = &sync.Mutex{}
		k.locks[key] = l
	}
	k.mu.Unlock()

	l.Lock()
	return l.Unlock
}

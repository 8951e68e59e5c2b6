package sui

import (
	"fmt"
	"io"

	"github.com/AlexZinkM/miao-wallet/internal/client"
	"github.com/AlexZinkM/miao-wallet/internal/common"
	"github.com/AlexZinkM/miao-wallet/internal/keys"
)

// Balance change labels
const (
	LabelSender    = "sender"
	LabelRecipient = "recipient"
	LabelOther     = "other"
)

// UnsignedTx is the builder output for one transfer
type UnsignedTx struct {
	Bytes     []byte
	Base64    string
	Sender    string
	Recipient string
	Amount    uint64
	GasBudget uint64
	CoinID    string
}

// BalanceChange is a balance change labelled relative to the transfer
type BalanceChange struct {
	Label    string `json:"label"`
	Owner    string `json:"owner"`
	CoinType string `json:"coinType"`
	Amount   int64  `json:"amount,string"`
	SUI      string `json:"sui"`
}

// GasSummary is the gas breakdown in MIST, net = computation + storage - rebate
type GasSummary struct {
	Computation uint64 `json:"computation,string"`
	Storage     uint64 `json:"storage,string"`
	Rebate      uint64 `json:"rebate,string"`
	Net         int64  `json:"net,string"`
	NetSUI      string `json:"netSui"`
}

func newGasSummary(g client.GasCost) GasSummary {
	return GasSummary{
		Computation: g.ComputationCost,
		Storage:     g.StorageCost,
		Rebate:      g.StorageRebate,
		Net:         g.Net(),
		NetSUI:      common.SignedMistToSUI(g.Net()),
	}
}

// Preview is what the dry run predicts for a transfer
type Preview struct {
	Wallet         string          `json:"wallet"`
	Sender         string          `json:"sender"`
	Recipient      string          `json:"recipient"`
	RecipientName  string          `json:"recipientName,omitempty"`
	Amount         uint64          `json:"amountMist,string"`
	AmountSUI      string          `json:"amount"`
	GasBudget      uint64          `json:"gasBudget,string"`
	CoinID         string          `json:"coinId"`
	Status         string          `json:"status"`
	Error          string          `json:"error,omitempty"`
	Gas            GasSummary      `json:"gas"`
	TotalSUI       string          `json:"total"`
	BalanceChanges []BalanceChange `json:"balanceChanges"`
}

func newPreview(wallet string, r *recipient, tx *UnsignedTx, sim *client.SimulationResult) *Preview {
	gas := newGasSummary(sim.Effects.GasUsed)
	return &Preview{
		Wallet:         wallet,
		Sender:         tx.Sender,
		Recipient:      tx.Recipient,
		RecipientName:  r.name,
		Amount:         tx.Amount,
		AmountSUI:      common.MistToSUI(tx.Amount),
		GasBudget:      tx.GasBudget,
		CoinID:         tx.CoinID,
		Status:         sim.Effects.Status.Status,
		Error:          sim.Effects.Status.Error,
		Gas:            gas,
		TotalSUI:       common.SignedMistToSUI(int64(tx.Amount) + gas.Net),
		BalanceChanges: labelChanges(sim.BalanceChanges, tx.Sender, tx.Recipient),
	}
}

// Succeeded reports whether the dry run predicts success
func (p *Preview) Succeeded() bool {
	return p.Status == "success"
}

// Write prints a human readable preview
func (p *Preview) Write(w io.Writer) error {
	to := p.Recipient
	if p.RecipientName != "" {
		to = fmt.Sprintf("%s (%s)", p.RecipientName, p.Recipient)
	}
	_, err := fmt.Fprintf(w,
		"Dry run: %s\n  from:   %s (%s)\n  to:     %s\n  amount: %s SUI\n  coin:   %s\n  gas:    %s SUI (computation %d, storage %d, rebate %d MIST; budget %d)\n  total:  %s SUI\n",
		p.Status, p.Wallet, p.Sender, to, p.AmountSUI, p.CoinID,
		p.Gas.NetSUI, p.Gas.Computation, p.Gas.Storage, p.Gas.Rebate, p.GasBudget, p.TotalSUI)
	if err != nil {
		return err
	}
	if p.Error != "" {
		if _, err := fmt.Fprintf(w, "  error:  %s\n", p.Error); err != nil {
			return err
		}
	}
	for _, c := range p.BalanceChanges {
		if _, err := fmt.Fprintf(w, "  %-9s %s %s SUI\n", c.Label, c.Owner, c.SUI); err != nil {
			return err
		}
	}
	return nil
}

func labelChanges(changes []client.BalanceChange, sender, recipient string) []BalanceChange {
	out := make([]BalanceChange, 0, len(changes))
	for _, c := range changes {
		owner := c.Owner.String()
		label := LabelOther
		if norm, err := keys.NormalizeSuiAddress(owner); err == nil {
			switch norm {
			case sender:
				label = LabelSender
			case recipient:
				label = LabelRecipient
			}
			owner = norm
		}
		out = append(out, BalanceChange{
			Label:    label,
			Owner:    owner,
			CoinType: c.CoinType,
			Amount:   c.Amount,
			SUI:      common.SignedMistToSUI(c.Amount),
		})
	}
	return out
}

package sui

import (
	"context"
	"fmt"

	"github.com/AlexZinkM/miao-wallet/internal/common"
	"github.com/AlexZinkM/miao-wallet/internal/log"
	"github.com/AlexZinkM/miao-wallet/internal/model"
)

const maxCoinPages = 20

// GetBalance sums the wallet's coins using its cached address, so no
// password is needed. The fiat value is omitted when the rate is unavailable.
func (s *Service) GetBalance(ctx context.Context, wallet string) (*model.BalanceResponse, error) {
	address, err := s.wallets.Address(wallet)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAddressUnknown, err)
	}
	if address == "" {
		return nil, ErrAddressUnknown
	}

	var (
		total  uint64
		count  int
		cursor *string
	)
	for range maxCoinPages {
		page, err := s.node.GetCoins(ctx, address, cursor, coinPageLimit)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCoinSource, err)
		}
		for _, c := range page.Data {
			total += c.Balance
			count++
		}
		if !page.HasNextPage || page.NextCursor == nil {
			break
		}
		cursor = page.NextCursor
	}

	resp := &model.BalanceResponse{
		Wallet:    wallet,
		Address:   address,
		Mist:      total,
		SUI:       common.MistToSUI(total),
		CoinCount: count,
	}

	if s.opts.Rates == nil || s.opts.FiatCurrency == "" {
		return resp, nil
	}
	rate, err := s.opts.Rates.GetSUIRate(ctx, s.opts.FiatCurrency)
	if err != nil {
		log.Transfer.Warn().Err(err).Str("wallet", wallet).Msg("failed to get rate")
		return resp, nil
	}
	resp.Currency = s.opts.FiatCurrency
	resp.Rate = rate.String()
	resp.Value = common.MistToDecimal(total).Mul(rate).StringFixed(2)
	return resp, nil
}

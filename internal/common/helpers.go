package common

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	SUIDecimals = 9 // SUI has 9 decimals (MIST)
)

// MistToSUI converts MIST to SUI string without float precision loss
func MistToSUI(mist uint64) string {
	return formatWithDecimals(decimal.NewFromBigInt(new(big.Int).SetUint64(mist), 0), SUIDecimals)
}

// MistToDecimal returns the exact SUI amount of mist for arithmetic
func MistToDecimal(mist uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(mist), -SUIDecimals)
}

// SignedMistToSUI converts a signed MIST delta (balance change, net gas) to SUI string
func SignedMistToSUI(mist int64) string {
	return formatWithDecimals(decimal.NewFromInt(mist), SUIDecimals)
}

// SUIToMist converts SUI string to MIST without float precision loss.
// More than 9 fractional digits is an error, never a silent truncation.
func SUIToMist(sui string) (uint64, error) {
	return parseWithDecimals(sui, SUIDecimals)
}

// formatWithDecimals shifts value by -decimals and prints every fractional digit
// Example: formatWithDecimals(24981836, 9) = "0.024981836"
func formatWithDecimals(value decimal.Decimal, decimals int32) string {
	return value.Shift(-decimals).StringFixed(decimals)
}

// parseWithDecimals converts decimal string to integer smallest units
// Example: parseWithDecimals("0.024981836", 9) = 24981836
func parseWithDecimals(s string, decimals int32) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty string")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid decimal format: %w", err)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("negative amount")
	}

	units := d.Shift(decimals)
	if !units.Equal(units.Truncate(0)) {
		return 0, fmt.Errorf("too many decimal places (max %d)", decimals)
	}

	bi := units.BigInt()
	if !bi.IsUint64() {
		return 0, fmt.Errorf("amount too large")
	}
	return bi.Uint64(), nil
}

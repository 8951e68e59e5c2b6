package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/AlexZinkM/miao-wallet/internal/client"
	"github.com/AlexZinkM/miao-wallet/internal/config"
	"github.com/AlexZinkM/miao-wallet/internal/log"
	"github.com/AlexZinkM/miao-wallet/internal/store"
	"github.com/AlexZinkM/miao-wallet/sui"

	"github.com/spf13/cobra"
)

var jsonOutput bool

var rootCmd = &cobra.Command{
	Use:           "miaowallet",
	Short:         "Local SUI wallet",
	Long:          "Send SUI from encrypted local wallets with a dry-run preview before every broadcast.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Init(); err != nil {
			return err
		}
		cfg := config.Get()
		log.Init(cfg.LogLevel, cfg.LogJSON)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print results as JSON")
}

// promptPassword asks for the wallet password on every store access
func promptPassword() ([]byte, error) {
	pw, err := config.ReadPassword("Wallet password: ")
	if err != nil {
		return nil, err
	}
	if len(pw) == 0 {
		return nil, fmt.Errorf("password cannot be empty")
	}
	return pw, nil
}

func newFileStore(password store.PasswordFunc) (*store.FileStore, error) {
	return store.NewFileStore(config.GetWalletDir(), password)
}

func newService(wallets sui.Wallets) *sui.Service {
	cfg := config.Get()
	node := client.NewSuiClient(cfg.SuiRPCURL, cfg.RPCTimeout, cfg.CoinType)
	return sui.NewService(node, wallets, sui.Options{
		GasBudget:    cfg.GasBudget,
		Network:      cfg.SuiNetwork,
		FiatCurrency: cfg.FiatCurrency,
		Cooldown:     config.GetPayCooldown(),
		Rates:        client.NewCoinGeckoClient(),
	})
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

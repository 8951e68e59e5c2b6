package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance <wallet>",
	Short: "Show SUI balance and fiat value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fs, err := newFileStore(nil)
		if err != nil {
			return err
		}
		bal, err := newService(fs).GetBalance(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(bal)
		}
		fmt.Printf("Address: %s\nBalance: %s SUI (%d coins)\n", bal.Address, bal.SUI, bal.CoinCount)
		if bal.Value != "" {
			fmt.Printf("Value:   %s %s (rate %s)\n", bal.Value, bal.Currency, bal.Rate)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(balanceCmd)
}

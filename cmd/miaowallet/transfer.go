package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlexZinkM/miao-wallet/internal/common"
	"github.com/AlexZinkM/miao-wallet/sui"

	"github.com/spf13/cobra"
)

var (
	transferYes    bool
	transferDryRun bool
	gasBudgetFlag  uint64
)

var transferCmd = &cobra.Command{
	Use:   "transfer <wallet> <to> <amount>",
	Short: "Send SUI after a dry-run preview",
	Long: `Builds the transfer, dry-runs it, shows the predicted effects and asks for
confirmation before signing. <to> is a 0x address or a SuiNS name (name.sui).
<amount> is in SUI with up to 9 decimals.`,
	Example: `  miaowallet transfer main 0x2b6f...c1 0.5
  miaowallet transfer main alice.sui 1 --yes
  miaowallet transfer main alice.sui 1 --dry-run`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := sui.TransferRequest{Wallet: args[0], To: args[1], Amount: args[2], GasBudget: gasBudgetFlag}

		if transferDryRun {
			return runPreview(cmd, req)
		}

		fs, err := newFileStore(promptPassword)
		if err != nil {
			return err
		}
		svc := newService(fs)

		var confirmer sui.Confirmer = sui.PromptConfirmer{In: os.Stdin, Out: os.Stderr}
		if transferYes {
			confirmer = sui.AutoConfirm{}
		}

		outcome, err := svc.Transfer(cmd.Context(), req, confirmer)
		if err != nil {
			var execErr *sui.ExecutionError
			if errors.As(err, &execErr) && execErr.Outcome != nil {
				printOutcome(execErr.Outcome)
			}
			return err
		}
		if jsonOutput {
			return printJSON(outcome)
		}
		printOutcome(outcome)
		return nil
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview <wallet> <to> <amount>",
	Short: "Dry-run a transfer without decrypting the wallet",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPreview(cmd, sui.TransferRequest{Wallet: args[0], To: args[1], Amount: args[2], GasBudget: gasBudgetFlag})
	},
}

func runPreview(cmd *cobra.Command, req sui.TransferRequest) error {
	fs, err := newFileStore(nil)
	if err != nil {
		return err
	}
	p, err := newService(fs).Preview(cmd.Context(), req)
	if err != nil {
		return err
	}
	if jsonOutput {
		return printJSON(p)
	}
	return p.Write(os.Stdout)
}

func printOutcome(o *sui.TransferOutcome) {
	fmt.Printf("Status:    %s\n", o.Status)
	fmt.Printf("Digest:    %s\n", o.Digest)
	fmt.Printf("From:      %s\n", o.Sender)
	fmt.Printf("To:        %s\n", o.Recipient)
	fmt.Printf("Amount:    %s SUI\n", o.AmountSUI)
	fmt.Printf("Gas:       %s SUI (computation %d, storage %d, rebate %d MIST)\n",
		o.Gas.NetSUI, o.Gas.Computation, o.Gas.Storage, o.Gas.Rebate)
	for _, c := range o.BalanceChanges {
		fmt.Printf("  %-9s %s %s SUI\n", c.Label, c.Owner, common.SignedMistToSUI(c.Amount))
	}
	if o.ExplorerURL != "" {
		fmt.Printf("Explorer:  %s\n", o.ExplorerURL)
	}
}

func init() {
	for _, c := range []*cobra.Command{transferCmd, previewCmd} {
		c.Flags().Uint64Var(&gasBudgetFlag, "gas-budget", 0, "Gas budget in MIST (default SUI_GAS_BUDGET)")
		rootCmd.AddCommand(c)
	}
	transferCmd.Flags().BoolVarP(&transferYes, "yes", "y", false, "Skip the confirmation prompt (the dry run still has to succeed)")
	transferCmd.Flags().BoolVar(&transferDryRun, "dry-run", false, "Only preview, never sign")
}

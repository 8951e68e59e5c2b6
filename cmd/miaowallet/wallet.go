package main

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/AlexZinkM/miao-wallet/internal/config"
	"github.com/AlexZinkM/miao-wallet/internal/keys"
	"github.com/AlexZinkM/miao-wallet/internal/model"
	"github.com/AlexZinkM/miao-wallet/sui"

	"github.com/spf13/cobra"
)

var walletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Manage encrypted wallets",
}

var walletGenerateCmd = &cobra.Command{
	Use:   "generate <wallet>",
	Short: "Generate a new key and store it encrypted",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fs, err := newFileStore(newPassword)
		if err != nil {
			return err
		}
		address, err := sui.GenerateWallet(fs, args[0])
		if err != nil {
			return err
		}
		return printAddress(args[0], address)
	},
}

var walletImportCmd = &cobra.Command{
	Use:   "import <wallet>",
	Short: "Import a suiprivkey or hex secret (read from the terminal)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		secret, err := config.ReadPassword("Secret key (suiprivkey1... or hex): ")
		if err != nil {
			return err
		}
		defer clear(secret)

		fs, err := newFileStore(newPassword)
		if err != nil {
			return err
		}
		address, err := sui.ImportWallet(fs, args[0], secret)
		if err != nil {
			return err
		}
		return printAddress(args[0], address)
	},
}

var walletListCmd = &cobra.Command{
	Use:   "list",
	Short: "List wallets and their cached addresses",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fs, err := newFileStore(nil)
		if err != nil {
			return err
		}
		entries, err := fs.List()
		if err != nil {
			return err
		}
		if jsonOutput {
			out := make([]model.WalletEntry, 0, len(entries))
			for _, e := range entries {
				out = append(out, model.WalletEntry{Wallet: e.Alias, Network: e.Network, Address: e.Address})
			}
			return printJSON(out)
		}
		if len(entries) == 0 {
			fmt.Println("No wallets in", config.GetWalletDir())
			return nil
		}
		for _, e := range entries {
			fmt.Printf("%-20s %-6s %s\n", e.Alias, e.Network, e.Address)
		}
		return nil
	},
}

var walletAddressCmd = &cobra.Command{
	Use:   "address <wallet>",
	Short: "Print the cached address; other chains decrypt the key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if chain := keys.Chain(addressChain); chain != keys.ChainSui {
			fs, err := newFileStore(promptPassword)
			if err != nil {
				return err
			}
			address, err := sui.DeriveWalletAddress(fs, args[0], chain)
			if err != nil {
				return err
			}
			return printAddress(args[0], address)
		}

		fs, err := newFileStore(nil)
		if err != nil {
			return err
		}
		address, err := fs.Address(args[0])
		if err != nil {
			return err
		}
		if address == "" {
			return sui.ErrAddressUnknown
		}
		return printAddress(args[0], address)
	},
}

var walletRemoveCmd = &cobra.Command{
	Use:   "remove <wallet>",
	Short: "Delete a wallet file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fs, err := newFileStore(nil)
		if err != nil {
			return err
		}
		if err := fs.Delete(args[0]); err != nil {
			return err
		}
		fmt.Println("Removed", args[0])
		return nil
	},
}

// newPassword asks twice so a typo does not lock the new wallet
func newPassword() ([]byte, error) {
	pw, err := promptPassword()
	if err != nil {
		return nil, err
	}
	again, err := config.ReadPassword("Repeat password: ")
	if err != nil {
		clear(pw)
		return nil, err
	}
	defer clear(again)
	if !bytes.Equal(pw, again) {
		clear(pw)
		return nil, errors.New("passwords do not match")
	}
	return pw, nil
}

func printAddress(wallet, address string) error {
	if jsonOutput {
		return printJSON(model.AddressResponse{Wallet: wallet, Address: address})
	}
	fmt.Printf("%s: %s\n", wallet, address)
	return nil
}

var addressChain string

func init() {
	walletAddressCmd.Flags().StringVar(&addressChain, "chain", string(keys.ChainSui), "address family: sui, solana or evm")
	walletCmd.AddCommand(walletGenerateCmd, walletImportCmd, walletListCmd, walletAddressCmd, walletRemoveCmd)
	rootCmd.AddCommand(walletCmd)
}

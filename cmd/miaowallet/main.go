// @title        miao-wallet API
// @version      1.0
// @description  Local SUI wallet: dry-run preview, confirmed transfers and encrypted key storage.
// @BasePath     /
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/term"
)

// Config contains all configuration parameters for the application.
// Note: Password is prompted at runtime and stored in memory - use GetWalletPasswordBytes()
type Config struct {
	Port         string        `envconfig:"PORT" default:"8080"`
	PayCooldown  int           `envconfig:"PAY_COOLDOWN_MINUTES" default:"0"`
	WalletDir    string        `envconfig:"WALLET_DIR" default:".miaowallet"`
	SuiRPCURL    string        `envconfig:"SUI_RPC_URL" default:"https://fullnode.mainnet.sui.io:443"`
	SuiNetwork   string        `envconfig:"SUI_NETWORK" default:"mainnet"`
	RPCTimeout   time.Duration `envconfig:"SUI_RPC_TIMEOUT" default:"15s"`
	GasBudget    uint64        `envconfig:"SUI_GAS_BUDGET" default:"5000000"`
	CoinType     string        `envconfig:"SUI_COIN_TYPE" default:"0x2::sui::SUI"`
	FiatCurrency string        `envconfig:"FIAT_CURRENCY" default:"usd"`
	LogLevel     string        `envconfig:"LOG_LEVEL" default:"info"`
	LogJSON      bool          `envconfig:"LOG_JSON" default:"false"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	if c.GasBudget == 0 {
		return errors.New("SUI_GAS_BUDGET must be positive")
	}
	cfg = c
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetPayCooldown returns cooldown between broadcasts from one sender
func GetPayCooldown() time.Duration {
	return time.Duration(Get().PayCooldown) * time.Minute
}

// GetWalletDir returns the directory holding encrypted wallet files
func GetWalletDir() string {
	return Get().WalletDir
}

// GetSuiRPCURL returns Sui fullnode JSON-RPC URL from configuration
func GetSuiRPCURL() string {
	return Get().SuiRPCURL
}

var passwordBytes []byte

// PromptForPassword prompts the user for the wallet password in the terminal.
// The password is read without echoing (hidden input) and stored in memory.
// Call this at startup before the server begins handling requests.
func PromptForPassword() error {
	raw, err := ReadPassword("Enter wallet password: ")
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		return errors.New("password cannot be empty")
	}

	passwordBytes = make([]byte, len(raw))
	copy(passwordBytes, raw)
	clear(raw)
	return nil
}

// ReadPassword reads one hidden line from the terminal.
// Caller must zero the returned slice after use.
func ReadPassword(prompt string) ([]byte, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("stdin is not a terminal: run the app interactively to enter password")
	}
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	return raw, nil
}

// SetPasswordBytes stores a copy of password in memory.
// Used by non-interactive callers and tests.
func SetPasswordBytes(password []byte) {
	clear(passwordBytes)
	passwordBytes = make([]byte, len(password))
	copy(passwordBytes, password)
}

// GetWalletPasswordBytes returns the password stored in memory (from PromptForPassword).
// Returns an error if the password was not set.
// Caller must zero the returned slice after use for security.
func GetWalletPasswordBytes() ([]byte, error) {
	if len(passwordBytes) == 0 {
		return nil, errors.New("password not set: call PromptForPassword at startup")
	}
	out := make([]byte, len(passwordBytes))
	copy(out, passwordBytes)
	return out, nil
}

package cli

import (
	"os"
	"path/filepath"
	"strings"
)

// Config holds CLI configuration
type Config struct {
	ServerURL   string
	Account     string
	AccountFile string
	Output      string
	Verbose     bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:   getEnvOrDefault("NGAMBLE_SERVER", "http://localhost:8080"),
		Account:     os.Getenv("NGAMBLE_ACCOUNT"),
		AccountFile: getEnvOrDefault("NGAMBLE_ACCOUNT_FILE", defaultAccountFile()),
		Output:      "text",
		Verbose:     false,
	}
}

// LoadAccount loads the account from file if not already set
func (c *Config) LoadAccount() error {
	if c.Account != "" {
		return nil
	}

	data, err := os.ReadFile(c.AccountFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // No account file is fine
		}
		return err
	}

	c.Account = strings.TrimSpace(string(data))
	return nil
}

// SaveAccount saves the account to the account file
func (c *Config) SaveAccount(account string) error {
	c.Account = account

	dir := filepath.Dir(c.AccountFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	return os.WriteFile(c.AccountFile, []byte(account), 0600)
}

func defaultAccountFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ngamble/account"
	}
	return filepath.Join(home, ".ngamble", "account")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

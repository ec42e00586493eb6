package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/khalid-nowaf/bstree/pkg/bst"
	"github.com/rs/zerolog"
)

// Config holds the defaults of the commands. Command line flags take
// precedence over values read from the configuration file.
type Config struct {
	LogLevel string   `toml:"log-level"`
	ValueKey string   `toml:"value-key"`
	Orders   []string `toml:"orders"`
	Format   string   `toml:"format"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel: "warn",
		ValueKey: "value",
		Orders:   []string{"preorder", "inorder", "postorder"},
		Format:   "csv",
	}
}

// LoadConfig reads the TOML file at path on top of DefaultConfig.
// An empty path returns the defaults.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("can not read config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

func (c *Config) Validate() error {
	if err := validateLogLevel(c.LogLevel); err != nil {
		return err
	}
	if c.ValueKey == "" {
		return fmt.Errorf("value-key must not be empty")
	}
	if _, err := parseOrders(c.Orders); err != nil {
		return err
	}
	return validateFormat(c.Format)
}

func validateLogLevel(v string) error {
	if _, err := zerolog.ParseLevel(v); err != nil {
		return fmt.Errorf("invalid level string %s", v)
	}
	return nil
}

func validateFormat(v string) error {
	switch v {
	case "csv", "tsv", "json":
		return nil
	}
	return fmt.Errorf("invalid format %q, expected csv, tsv or json", v)
}

func parseOrders(names []string) ([]bst.Order, error) {
	orders := make([]bst.Order, 0, len(names))
	for _, name := range names {
		order, err := bst.ParseOrder(name)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// pick returns the flag value when set, the configured value otherwise.
func pick(flag string, configured string) string {
	if flag != "" {
		return flag
	}
	return configured
}

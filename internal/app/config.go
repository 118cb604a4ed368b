package app

import (
	"os"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"

	"github.com/xenking/coffee-shop/internal/shop"
)

// Config holds the complete application configuration, loadable from
// environment variables (COFFEE_ prefix), flags, or YAML config files.
type Config struct {
	Order  OrderConfig
	Prep   PrepConfig
	Output OutputConfig
}

// OrderConfig selects the demo order.
type OrderConfig struct {
	Coffee      string `default:"espresso"   usage:"Coffee style: espresso or cappuccino"`
	Ingredients string `default:"cappuccino" usage:"Ingredient profile: cappuccino (whole milk, vanilla) or custom (almond, caramel)"`
}

// PrepConfig controls the simulated preparation delays.
type PrepConfig struct {
	MilkDelay  time.Duration `default:"2s" usage:"Delay before the milk is added" flag:"milk-delay"`
	SyrupDelay time.Duration `default:"1s" usage:"Delay before the syrup is added" flag:"syrup-delay"`
	BrewDelay  time.Duration `default:"1s" usage:"Delay before the coffee is ready" flag:"brew-delay"`
}

// OutputConfig controls how served orders are reported.
type OutputConfig struct {
	Format string `default:"text" usage:"Served order format: text or json"`
}

// Delays converts the preparation settings for the shop.
func (c PrepConfig) Delays() shop.Delays {
	return shop.Delays{
		Milk:  c.MilkDelay,
		Syrup: c.SyrupDelay,
		Brew:  c.BrewDelay,
	}
}

var configFiles = []string{"config.yaml", "/etc/coffee-shop/config.yaml"}

// LoadConfig loads configuration from environment variables, flags and YAML
// config files.
func LoadConfig() (*Config, error) {
	return loadConfig(configFiles, os.Args[1:])
}

func loadConfig(files, args []string) (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "COFFEE",
		Files:     files,
		Args:      args,
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	if err := cfg.validate(); err != nil {
		return nil, errors.Wrap(err, "validate config")
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if _, err := shop.ParseFormat(c.Output.Format); err != nil {
		return err
	}
	for name, d := range map[string]time.Duration{
		"milk delay":  c.Prep.MilkDelay,
		"syrup delay": c.Prep.SyrupDelay,
		"brew delay":  c.Prep.BrewDelay,
	} {
		if d < 0 {
			return errors.Errorf("%s must not be negative, got %s", name, d)
		}
	}
	return nil
}

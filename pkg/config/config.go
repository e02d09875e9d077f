package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"

	"github.com/yurifrl/overdraft/pkg/models"
	"github.com/yurifrl/overdraft/pkg/parser"
)

const (
	EnvPrefix   = "OVERDRAFT"
	DefaultRate = 8.0
	DefaultAddr = "0.0.0.0:3000"

	// DefaultCacheSize is how many processed reports the server keeps
	// available for download.
	DefaultCacheSize = 128
)

type ServerConfig struct {
	Addr      string `mapstructure:"addr"`
	CacheSize int    `mapstructure:"cache_size"`
}

type Config struct {
	Bank   string       `mapstructure:"bank"`
	Rate   float64      `mapstructure:"rate"` // annual percentage
	Output string       `mapstructure:"output"`
	XLSX   bool         `mapstructure:"xlsx"`
	Debug  bool         `mapstructure:"debug"`
	Server ServerConfig `mapstructure:"server"`
}

// New returns a configuration with defaults and the given output directory.
func New(outputPath string) *Config {
	return &Config{
		Rate:   DefaultRate,
		Output: outputPath,
		Server: ServerConfig{Addr: DefaultAddr, CacheSize: DefaultCacheSize},
	}
}

// Build resolves configuration from defaults, an optional config file,
// OVERDRAFT_* environment variables (a .env file in the working directory is
// loaded first) and finally command-line flags.
func Build(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	_ = gotenv.Load()

	v := viper.New()
	// Every key needs a default so Unmarshal sees environment overrides.
	v.SetDefault("bank", "")
	v.SetDefault("rate", DefaultRate)
	v.SetDefault("output", "")
	v.SetDefault("xlsx", false)
	v.SetDefault("debug", false)
	v.SetDefault("server.addr", DefaultAddr)
	v.SetDefault("server.cache_size", DefaultCacheSize)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
		if addr := flags.Lookup("addr"); addr != nil {
			if err := v.BindPFlag("server.addr", addr); err != nil {
				return nil, fmt.Errorf("failed to bind addr flag: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the rate range and, when set, the institution.
func (c *Config) Validate() error {
	if c.Rate < 0 || c.Rate > 100 {
		return fmt.Errorf("invalid config: rate %v must be between 0 and 100", c.Rate)
	}
	if c.Server.CacheSize < 0 {
		return fmt.Errorf("invalid config: server.cache_size %d must not be negative", c.Server.CacheSize)
	}
	if c.Bank != "" {
		if _, err := parser.ParseInstitution(c.Bank); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
	}
	return nil
}

// Institution resolves the configured bank.
func (c *Config) Institution() (models.Institution, error) {
	if c.Bank == "" {
		return "", errors.New("no bank configured: use --bank axis|sc|hdfc")
	}
	return parser.ParseInstitution(c.Bank)
}

func (c *Config) Accrual() (models.AccrualConfig, error) {
	return models.NewAccrualConfig(decimal.NewFromFloat(c.Rate))
}

func (c *Config) GetOutputPath() string {
	return c.Output
}

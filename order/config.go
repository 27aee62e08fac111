package main

import (
	"strconv"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/AppFlow-Studio/Dexa-POS-sub000/common"
	"github.com/AppFlow-Studio/Dexa-POS-sub000/order/logic"
)

// Config holds the runtime settings of the order service.
type Config struct {
	TaxRate     float64
	LogLevel    string
	Development bool
}

// LoadConfig reads POS_TAX_RATE and POS_LOG_LEVEL from the environment, then
// lets command-line flags override them.
func LoadConfig(args []string, getenv func(string) string) (Config, error) {
	cfg := Config{TaxRate: logic.DefaultTaxRate, LogLevel: "info"}

	if v := getenv("POS_TAX_RATE"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, common.NewInvalidArgumentf("invalid POS_TAX_RATE %q", v)
		}
		cfg.TaxRate = rate
	}
	if v := getenv("POS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	fs := pflag.NewFlagSet("order", pflag.ContinueOnError)
	fs.Float64Var(&cfg.TaxRate, "tax-rate", cfg.TaxRate, "sales tax rate as a fraction, e.g. 0.05")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.Development, "dev", cfg.Development, "human-readable development logging")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.TaxRate < 0 || cfg.TaxRate >= 1 {
		return Config{}, common.NewInvalidArgumentf("tax rate must be in [0, 1), got %v", cfg.TaxRate)
	}
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, common.NewInvalidArgumentf("invalid log level %q", cfg.LogLevel)
	}
	return cfg, nil
}

// NewLogger builds the zap logger described by cfg.
func (c Config) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

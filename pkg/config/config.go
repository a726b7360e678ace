package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the load-generator settings, parsed from the environment.
type Config struct {
	// Operations is the total number of submit/cancel calls to issue.
	Operations int `env:"LOADGEN_OPERATIONS" envDefault:"1000000"`
	// PriceMin and PriceMax bound the random limit prices, inclusive.
	PriceMin int64 `env:"LOADGEN_PRICE_MIN" envDefault:"10"`
	PriceMax int64 `env:"LOADGEN_PRICE_MAX" envDefault:"9999"`
	// SizeMin and SizeMax bound the random order sizes, inclusive.
	SizeMin int64 `env:"LOADGEN_SIZE_MIN" envDefault:"10"`
	SizeMax int64 `env:"LOADGEN_SIZE_MAX" envDefault:"9999"`
	// SubmitHalfLife is the number of placed orders after which the
	// probability of submitting, rather than cancelling, halves.
	SubmitHalfLife float64 `env:"LOADGEN_SUBMIT_HALF_LIFE" envDefault:"20000"`
	// ReportInterval is the number of operations between progress reports.
	ReportInterval int `env:"LOADGEN_REPORT_INTERVAL" envDefault:"100000"`
	// Seed seeds the traffic RNG; 0 seeds from the wall clock.
	Seed int64 `env:"LOADGEN_SEED" envDefault:"0"`
	// LogLevel sets the minimum log level (debug, info, warn, error).
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads a .env file when present and parses Config from the environment.
func Load() (*Config, error) {
	// .env is optional, environment variables win either way.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.PriceMin <= 0 || cfg.PriceMax < cfg.PriceMin {
		return nil, fmt.Errorf("invalid price range [%d, %d]", cfg.PriceMin, cfg.PriceMax)
	}
	if cfg.SizeMin <= 0 || cfg.SizeMax < cfg.SizeMin {
		return nil, fmt.Errorf("invalid size range [%d, %d]", cfg.SizeMin, cfg.SizeMax)
	}
	if cfg.SubmitHalfLife <= 0 {
		return nil, fmt.Errorf("submit half-life must be positive, got %f", cfg.SubmitHalfLife)
	}
	if cfg.ReportInterval <= 0 {
		return nil, fmt.Errorf("report interval must be positive, got %d", cfg.ReportInterval)
	}

	return cfg, nil
}

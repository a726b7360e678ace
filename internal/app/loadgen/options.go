package loadgen

import (
	"github.com/exchange-core/matching-engine/pkg/config"
)

// Options represents configuration options for the Generator.
type Options struct {
	Operations     int
	PriceMin       int64
	PriceMax       int64
	SizeMin        int64
	SizeMax        int64
	SubmitHalfLife float64
	ReportInterval int
	Seed           int64
}

// DefaultOptions returns the default generator options.
func DefaultOptions() *Options {
	return &Options{
		Operations:     1_000_000,
		PriceMin:       10,
		PriceMax:       9999,
		SizeMin:        10,
		SizeMax:        9999,
		SubmitHalfLife: 20_000,
		ReportInterval: 100_000,
	}
}

// OptionsFromConfig maps environment configuration onto generator options.
func OptionsFromConfig(cfg *config.Config) *Options {
	return &Options{
		Operations:     cfg.Operations,
		PriceMin:       cfg.PriceMin,
		PriceMax:       cfg.PriceMax,
		SizeMin:        cfg.SizeMin,
		SizeMax:        cfg.SizeMax,
		SubmitHalfLife: cfg.SubmitHalfLife,
		ReportInterval: cfg.ReportInterval,
		Seed:           cfg.Seed,
	}
}

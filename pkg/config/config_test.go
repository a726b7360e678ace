package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 1_000_000, cfg.Operations)
	assert.Equal(t, int64(10), cfg.PriceMin)
	assert.Equal(t, int64(9999), cfg.PriceMax)
	assert.Equal(t, int64(10), cfg.SizeMin)
	assert.Equal(t, int64(9999), cfg.SizeMax)
	assert.Equal(t, float64(20_000), cfg.SubmitHalfLife)
	assert.Equal(t, 100_000, cfg.ReportInterval)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_InvalidValues(t *testing.T) {
	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{name: "zero price min", key: "LOADGEN_PRICE_MIN", value: "0"},
		{name: "price max below min", key: "LOADGEN_PRICE_MAX", value: "5"},
		{name: "zero size min", key: "LOADGEN_SIZE_MIN", value: "0"},
		{name: "size max below min", key: "LOADGEN_SIZE_MAX", value: "5"},
		{name: "zero half-life", key: "LOADGEN_SUBMIT_HALF_LIFE", value: "0"},
		{name: "zero report interval", key: "LOADGEN_REPORT_INTERVAL", value: "0"},
		{name: "negative report interval", key: "LOADGEN_REPORT_INTERVAL", value: "-1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Load_defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.App.Env)
	assert.Equal(t, 8080, cfg.App.HTTPPort)
	assert.Equal(t, 10*time.Second, cfg.App.HTTPTimeout)
	assert.Equal(t, "go_finance_report", cfg.App.Name)
	assert.Equal(t, "RUB", cfg.HomeCurrency)
	assert.Equal(t, "user_settings.json", cfg.UserSettingsFile)
	assert.Equal(t, []string{"AAPL", "AMZN", "GOOGL", "MSFT", "TSLA"}, cfg.Report.StockSymbols)
	assert.Equal(t, 5, cfg.Report.MaxConcurrentQuoteFetches)
}

func Test_Load_configFile(t *testing.T) {
	dir := t.TempDir()
	content := `{
		"app": {
			"env": "production",
			"http_port": 9000,
			"graceful_timeout": "15s"
		},
		"home_currency": "USD",
		"currency_api": {
			"base_url": "https://api.apilayer.com/currency_data",
			"api_key": "secret",
			"timeout": "3s"
		},
		"report": {
			"stock_symbols": ["AAPL"],
			"max_concurrent_quote_fetches": 2
		}
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(content), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, 9000, cfg.App.HTTPPort)
	assert.Equal(t, 15*time.Second, cfg.App.GracefulTimeout)
	assert.Equal(t, "USD", cfg.HomeCurrency)
	assert.Equal(t, "https://api.apilayer.com/currency_data", cfg.CurrencyAPI.BaseURL)
	assert.Equal(t, "secret", cfg.CurrencyAPI.APIKey)
	assert.Equal(t, 3*time.Second, cfg.CurrencyAPI.Timeout)
	assert.Equal(t, []string{"AAPL"}, cfg.Report.StockSymbols)
	assert.Equal(t, 2, cfg.Report.MaxConcurrentQuoteFetches)
}

func Test_Load_envOverride(t *testing.T) {
	t.Setenv("FINANCE_REPORT_HOME_CURRENCY", "EUR")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "EUR", cfg.HomeCurrency)
}

func Test_LoadUserSettings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "user_settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"user_currencies": ["USD", "EUR"]}`), 0o600))

	settings, err := LoadUserSettings(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"USD", "EUR"}, settings.UserCurrencies)

	_, err = LoadUserSettings(filepath.Join(dir, "missing.json"))
	require.Error(t, err)

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{`), 0o600))
	_, err = LoadUserSettings(broken)
	require.Error(t, err)
}

package config

import (
	"time"
)

type (
	Config struct {
		App App `json:"app"`

		// HomeCurrency is the currency every conversion targets and the one
		// the CLI "home currency only" filter matches against.
		HomeCurrency string `json:"home_currency" validate:"required,len=3"`

		CurrencyAPI HTTPConfiguration `json:"currency_api"`
		StockAPI    HTTPConfiguration `json:"stock_api"`

		// UserSettingsFile points at the JSON file holding the tracked
		// currency allow-list, kept separate from the main config so users
		// can edit it without touching service settings.
		UserSettingsFile string `json:"user_settings_file"`

		Report ReportConfig `json:"report"`
	}

	App struct {
		Env             string        `json:"env"`
		HTTPPort        int           `json:"http_port" validate:"gt=0"`
		HTTPTimeout     time.Duration `json:"http_timeout"`
		GracefulTimeout time.Duration `json:"graceful_timeout"`
		Name            string        `json:"name" validate:"required"`
		LogLevel        string        `json:"log_level"`
	}

	HTTPConfiguration struct {
		BaseURL string        `json:"base_url"`
		APIKey  string        `json:"api_key"`
		Timeout time.Duration `json:"timeout"`
	}

	ReportConfig struct {
		// StockSymbols are the tickers fetched for the aggregate report.
		StockSymbols []string `json:"stock_symbols" validate:"min=1"`

		// MaxConcurrentQuoteFetches bounds the batch quote fan-out.
		MaxConcurrentQuoteFetches int `json:"max_concurrent_quote_fetches" validate:"gt=0"`

		Cards []CardSeed `json:"cards"`

		// TransactionsFile optionally overrides the built-in transaction
		// sample used by the report endpoints (JSON/CSV/XLSX).
		TransactionsFile string `json:"transactions_file"`
	}

	CardSeed struct {
		Number   string    `json:"number"`
		Expenses []float64 `json:"expenses"`
	}

	// UserSettings is the shape of the user-editable settings file.
	UserSettings struct {
		UserCurrencies []string `json:"user_currencies"`
	}
)

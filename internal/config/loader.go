package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const envPrefix = "FINANCE_REPORT"

// Load reads config.json from the given search paths, applies
// FINANCE_REPORT_* environment overrides and fills in defaults.
func Load(searchPaths ...string) (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("json")
	for _, p := range searchPaths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// Missing config file is fine, env + defaults still apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "json"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	})
	if err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// LoadUserSettings reads the currency allow-list file.
func LoadUserSettings(path string) (UserSettings, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return UserSettings{}, fmt.Errorf("failed to read user settings file %q: %w", path, err)
	}

	var settings UserSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return UserSettings{}, fmt.Errorf("failed to parse user settings file %q: %w", path, err)
	}

	return settings, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "local")
	v.SetDefault("app.http_port", 8080)
	v.SetDefault("app.http_timeout", 10*time.Second)
	v.SetDefault("app.graceful_timeout", 5*time.Second)
	// Underscores: the app name doubles as the prometheus subsystem.
	v.SetDefault("app.name", "go_finance_report")
	v.SetDefault("app.log_level", "info")

	v.SetDefault("home_currency", "RUB")
	v.SetDefault("user_settings_file", "user_settings.json")

	v.SetDefault("currency_api.timeout", 10*time.Second)
	v.SetDefault("stock_api.timeout", 10*time.Second)

	v.SetDefault("report.stock_symbols", []string{"AAPL", "AMZN", "GOOGL", "MSFT", "TSLA"})
	v.SetDefault("report.max_concurrent_quote_fetches", 5)
}

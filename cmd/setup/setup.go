package setup

import (
	"context"
	"fmt"

	"golang.org/x/exp/slices"

	clientcurrency "github.com/moneta-lab/go-finance-report/internal/clients/currency"
	clientstocks "github.com/moneta-lab/go-finance-report/internal/clients/stocks"
	"github.com/moneta-lab/go-finance-report/internal/common/graceful"
	"github.com/moneta-lab/go-finance-report/internal/common/log"
	cMetrics "github.com/moneta-lab/go-finance-report/internal/common/metrics"
	"github.com/moneta-lab/go-finance-report/internal/common/validation"
	"github.com/moneta-lab/go-finance-report/internal/config"
	"github.com/moneta-lab/go-finance-report/internal/models"
	"github.com/moneta-lab/go-finance-report/internal/repositories"
	"github.com/moneta-lab/go-finance-report/internal/services"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Setup struct {
	Config         config.Config
	UserSettings   config.UserSettings
	Metrics        cMetrics.Metrics
	FileRepo       repositories.FileRepository
	CurrencyClient clientcurrency.Client
	StocksClient   clientstocks.Client
	Service        *services.Services
}

func Init(command string) (setup *Setup, stopper []graceful.ProcessStopper, err error) {
	ctx := context.Background()

	// Local development convenience; a missing .env is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load("/config", ".", "./config")
	if err != nil {
		return
	}

	if err = validation.ValidateStruct(cfg); err != nil {
		err = fmt.Errorf("invalid configuration: %w", err)
		return
	}

	setup = &Setup{
		Config: cfg,
	}

	logLevel := log.DebugLogLevel()
	excludedDebugLevelOnEnvs := []config.Environment{
		config.DEV_ENV,
		config.PROD_ENV,
	}

	if slices.Contains(excludedDebugLevelOnEnvs, config.StringToEnvironment(cfg.App.Env)) {
		logLevel = log.InfoLogLevel()
	}

	log.Init(cfg.App.Name,
		log.WithLogEnvOption(cfg.App.Env),
		log.WithCaller(true),
		log.AddCallerSkip(1),
		logLevel)

	stopper = append(stopper, func(ctx context.Context) error {
		log.Sync()
		return nil
	})

	settings, err := config.LoadUserSettings(cfg.UserSettingsFile)
	if err != nil {
		err = fmt.Errorf("failed to load user settings: %w", err)
		return
	}
	setup.UserSettings = settings

	// metrics
	mtc := cMetrics.New()
	setup.Metrics = mtc

	setup.FileRepo = repositories.NewFileRepository()

	setup.CurrencyClient = clientcurrency.New(cfg.CurrencyAPI, cfg.HomeCurrency, settings.UserCurrencies, mtc)
	setup.StocksClient = clientstocks.New(cfg.StockAPI, cfg.Report.MaxConcurrentQuoteFetches, mtc)

	transactions := loadTransactions(ctx, cfg, setup.FileRepo)
	cards := seedCards(cfg.Report.Cards)

	setup.Service = services.New(cfg, setup.CurrencyClient, setup.StocksClient, transactions, cards)

	return
}

// loadTransactions prefers the configured file and falls back to the
// built-in sample when no file is configured or loading fails.
func loadTransactions(ctx context.Context, cfg config.Config, fileRepo repositories.FileRepository) models.TransactionList {
	if cfg.Report.TransactionsFile == "" {
		return models.SampleTransactions()
	}

	transactions, err := fileRepo.Load(ctx, cfg.Report.TransactionsFile)
	if err != nil || len(transactions) == 0 {
		log.Warn(ctx, "failed to load transactions file, using built-in sample",
			log.String("path", cfg.Report.TransactionsFile),
			log.Err(err))
		return models.SampleTransactions()
	}

	return transactions
}

func seedCards(seeds []config.CardSeed) []models.Card {
	if len(seeds) == 0 {
		return models.SampleCards()
	}

	cards := make([]models.Card, 0, len(seeds))
	for _, seed := range seeds {
		expenses := make([]decimal.Decimal, 0, len(seed.Expenses))
		for _, e := range seed.Expenses {
			expenses = append(expenses, decimal.NewFromFloat(e))
		}
		cards = append(cards, models.Card{Number: seed.Number, Expenses: expenses})
	}
	return cards
}

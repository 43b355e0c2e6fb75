package services

import (
	"github.com/moneta-lab/go-finance-report/internal/clients/currency"
	"github.com/moneta-lab/go-finance-report/internal/clients/stocks"
	"github.com/moneta-lab/go-finance-report/internal/config"
	"github.com/moneta-lab/go-finance-report/internal/models"
)

type Services struct {
	conf config.Config

	currencyClient currency.Client
	stocksClient   stocks.Client

	Report ReportService
}

func New(
	conf config.Config,
	currencyClient currency.Client,
	stocksClient stocks.Client,
	transactions models.TransactionList,
	cards []models.Card,
) *Services {
	srv := &Services{
		conf:           conf,
		currencyClient: currencyClient,
		stocksClient:   stocksClient,
	}

	srv.Report = NewReportService(conf, currencyClient, stocksClient, transactions, cards)

	return srv
}

package http

import (
	"context"
	"fmt"
	nethttp "net/http"
	"time"

	clientcurrency "github.com/moneta-lab/go-finance-report/internal/clients/currency"
	clientstocks "github.com/moneta-lab/go-finance-report/internal/clients/stocks"
	commonhttp "github.com/moneta-lab/go-finance-report/internal/common/http"
	"github.com/moneta-lab/go-finance-report/internal/common/http/middleware"
	"github.com/moneta-lab/go-finance-report/internal/common/log"
	"github.com/moneta-lab/go-finance-report/internal/config"
	"github.com/moneta-lab/go-finance-report/internal/deliveries/http/health"
	"github.com/moneta-lab/go-finance-report/internal/services"

	v1currency "github.com/moneta-lab/go-finance-report/internal/deliveries/http/v1/currency"
	v1report "github.com/moneta-lab/go-finance-report/internal/deliveries/http/v1/report"
	v1stocks "github.com/moneta-lab/go-finance-report/internal/deliveries/http/v1/stocks"

	"github.com/moneta-lab/go-finance-report/internal/common/graceful"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

type svc struct {
	e               *echo.Echo
	addr            string
	gracefulTimeout time.Duration
}

var _ graceful.ProcessStartStopper = (*svc)(nil)

func (s *svc) Start() graceful.ProcessStarter {
	return func() error {
		return s.e.Start(s.addr)
	}
}

func (s *svc) Stop() graceful.ProcessStopper {
	return func(ctx context.Context) error {
		err := s.e.Shutdown(ctx)

		if err != nil {
			log.Errorf(ctx, "[SHUTDOWN] HTTP server error: %v", err)
		} else {
			log.Info(ctx, "[SHUTDOWN] HTTP server stopped successfully")
		}

		return err
	}
}

// NewHTTPServer wires the echo router. Route paths stay byte-compatible
// with the original financial API.
func NewHTTPServer(
	ctx context.Context,
	conf config.Config,
	reportService services.ReportService,
	currencyClient clientcurrency.Client,
	stocksClient clientstocks.Client,
) *svc {
	app := echo.New()
	app.HideBanner = true

	svc := &svc{
		e:               app,
		addr:            fmt.Sprintf(":%d", conf.App.HTTPPort),
		gracefulTimeout: conf.App.GracefulTimeout,
	}

	m := middleware.NewMiddleware(conf)
	// options middleware
	app.Pre(echomiddleware.RemoveTrailingSlash())
	app.Use(echomiddleware.Recover())
	app.Use(echomiddleware.RequestID())
	app.Use(m.Context())
	app.Use(m.Logger())

	// pprof
	// Endpoint debug/pprof/
	env := config.StringToEnvironment(conf.App.Env)
	if env != config.PROD_ENV {
		pprof.Register(app)
	}

	// prometheus metrics
	app.Use(echoprometheus.NewMiddleware(conf.App.Name))
	app.GET("/metrics", echoprometheus.NewHandler())

	// root-level api
	v1currency.New(app, currencyClient)
	v1stocks.New(app, stocksClient)

	// apiGroup
	apiGroup := app.Group("/api")

	// health check
	health.New(apiGroup)

	v1report.New(app, apiGroup, reportService)

	// prepare an endpoint for 'Not Found'.
	app.Any("*", func(c echo.Context) error {
		errorMessage := fmt.Errorf("route '%s' does not exist in this API", c.Request().URL)
		return commonhttp.RestErrorResponse(c, nethttp.StatusNotFound, errorMessage)
	})

	return svc
}

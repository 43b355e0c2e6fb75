package currency

import (
	"fmt"
	nethttp "net/http"

	clientcurrency "github.com/moneta-lab/go-finance-report/internal/clients/currency"
	"github.com/moneta-lab/go-finance-report/internal/common/http"

	"github.com/labstack/echo/v4"
)

type currencyHandler struct {
	currencyClient clientcurrency.Client
}

// New currency handler will initialize the /currency endpoint
func New(app *echo.Echo, currencyClient clientcurrency.Client) {
	handler := currencyHandler{
		currencyClient: currencyClient,
	}
	app.GET("/currency", handler.getCurrencyRates)
}

// getCurrencyRates returns the latest rates for the tracked currencies.
func (h *currencyHandler) getCurrencyRates(c echo.Context) error {
	rates, err := h.currencyClient.LatestRates(c.Request().Context())
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusInternalServerError,
			fmt.Errorf("Failed to fetch currency data: %v", err))
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, rates)
}

package stocks

import (
	"errors"
	nethttp "net/http"

	clientstocks "github.com/moneta-lab/go-finance-report/internal/clients/stocks"
	"github.com/moneta-lab/go-finance-report/internal/common"
	"github.com/moneta-lab/go-finance-report/internal/common/http"
	"github.com/moneta-lab/go-finance-report/internal/models"

	"github.com/labstack/echo/v4"
)

type stocksHandler struct {
	stocksClient clientstocks.Client
}

// New stocks handler will initialize the /stock/:symbol endpoint
func New(app *echo.Echo, stocksClient clientstocks.Client) {
	handler := stocksHandler{
		stocksClient: stocksClient,
	}
	app.GET("/stock/:symbol", handler.getStockQuote)
}

// getStockQuote returns the latest daily close for one ticker symbol.
// The success body is a one-element list; clients depend on that shape.
func (h *stocksHandler) getStockQuote(c echo.Context) error {
	symbol := c.Param("symbol")

	quote, err := h.stocksClient.Quote(c.Request().Context(), symbol)
	if err != nil {
		if errors.Is(err, common.ErrStockNotFound) {
			return http.RestErrorResponse(c, nethttp.StatusNotFound, errors.New("Stock not found"))
		}
		return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, []models.StockQuote{quote})
}

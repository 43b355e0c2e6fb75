package report

import (
	"errors"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/moneta-lab/go-finance-report/internal/common"
	"github.com/moneta-lab/go-finance-report/internal/common/http"
	"github.com/moneta-lab/go-finance-report/internal/common/validation"
	"github.com/moneta-lab/go-finance-report/internal/models"
	"github.com/moneta-lab/go-finance-report/internal/services"

	"github.com/labstack/echo/v4"
)

// DateTimeLayout is the timestamp format of the /api/data query parameter.
const DateTimeLayout = "2006-01-02 15:04:05"

type reportHandler struct {
	reportSvc services.ReportService
}

// New report handler will initialize the / and /api/data endpoints
func New(app *echo.Echo, api *echo.Group, reportSvc services.ReportService) {
	handler := reportHandler{
		reportSvc: reportSvc,
	}
	app.GET("/", handler.home)
	api.GET("/data", handler.getReportData)
	api.GET("/report", handler.getMonthlyReport)
}

func (h *reportHandler) home(c echo.Context) error {
	return c.String(nethttp.StatusOK, "Welcome to the Financial API!")
}

// getReportData builds the aggregate report for the timestamp stated by
// the caller (their local time, not server time).
func (h *reportHandler) getReportData(c echo.Context) error {
	req := new(models.GetReportDataRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		if req.DateTime == "" {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, common.ErrDateTimeRequired)
		}
		return http.RestErrorResponse(c, nethttp.StatusBadRequest,
			fmt.Errorf("%w: expected %q", common.ErrInvalidFormatDate, DateTimeLayout))
	}

	ts, err := time.Parse(DateTimeLayout, req.DateTime)
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest,
			fmt.Errorf("%w: expected %q", common.ErrInvalidFormatDate, DateTimeLayout))
	}

	res, err := h.reportSvc.Generate(c.Request().Context(), ts)
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res)
}

// getMonthlyReport builds the month-to-date expense report. Unlike
// /api/data this path is fail-fast: one bad upstream fails the request.
func (h *reportHandler) getMonthlyReport(c echo.Context) error {
	dateStr := c.QueryParam("date")
	if dateStr == "" {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, errors.New("Date string is required"))
	}

	date, err := time.Parse(models.DateLayout, dateStr)
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest,
			fmt.Errorf("%w: expected %q", common.ErrInvalidFormatDate, models.DateLayout))
	}

	symbol := c.QueryParam("symbol")
	if symbol == "" {
		symbol = "AAPL"
	}

	res, err := h.reportSvc.Monthly(c.Request().Context(), date, symbol)
	if err != nil {
		if errors.Is(err, common.ErrStockNotFound) {
			return http.RestErrorResponse(c, nethttp.StatusNotFound, errors.New("Stock not found"))
		}
		return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res)
}

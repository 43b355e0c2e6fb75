package middleware

import (
	"github.com/moneta-lab/go-finance-report/internal/common/log"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const CorrelationIdHeader = "X-Correlation-Id"

// Context stores a correlation id on the request context so every log
// line of the request carries it. An inbound header wins over a fresh id.
func (m *AppMiddleware) Context() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			correlationId := c.Request().Header.Get(CorrelationIdHeader)
			if correlationId == "" {
				correlationId = uuid.NewString()
			}

			ctx := log.SetCorrelationId(c.Request().Context(), correlationId)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set(CorrelationIdHeader, correlationId)

			return next(c)
		}
	}
}

package http

import (
	"github.com/labstack/echo/v4"
)

type RestErrorResponseModel struct {
	Error string `json:"error" example:"error"`
}

func RestSuccessResponse(c echo.Context, code int, in interface{}) error {
	return c.JSON(code, in)
}

// RestErrorResponse writes the {"error": "..."} body. Clients depend on
// this exact shape.
func RestErrorResponse(c echo.Context, statusCode int, err error) error {
	return c.JSON(statusCode, RestErrorResponseModel{
		Error: err.Error(),
	})
}

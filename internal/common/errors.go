package common

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrValidation          = errors.New("validation failed")
	ErrInvalidFormatDate   = errors.New("invalid format date")
	ErrDateTimeRequired    = errors.New("Date and time string is required")
	ErrCurrencyFetchFailed = errors.New("failed to fetch currency data")
	ErrStockConfiguration  = errors.New("stock API key or URL is not configured")
	ErrStockNotFound       = errors.New("stock not found")
	ErrStockParse          = errors.New("unexpected non-JSON response from stock API")
	ErrStockNetwork        = errors.New("stock API network error")
	ErrUnsupportedFileType = errors.New("unsupported transaction file type")
	ErrFilePathEmpty       = errors.New("file path is empty")
)

// RequestError is returned when the stock API answers with a non-2xx status
// other than 404, keeping the upstream status and message for the caller.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e RequestError) Error() string {
	return fmt.Sprintf("stock API request error: status %d: %s", e.StatusCode, e.Message)
}

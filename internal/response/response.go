package response

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope is the JSON body every endpoint responds with
type Envelope struct {
	Success    bool        `json:"success"`
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// Success writes a success envelope with the given status code
func Success(c echo.Context, code int, message string, data interface{}) error {
	return c.JSON(code, Envelope{
		Success:    true,
		StatusCode: code,
		Message:    message,
		Data:       data,
	})
}

// Error writes a failure envelope with the given status code
func Error(c echo.Context, code int, message string) error {
	return c.JSON(code, Envelope{
		Success:    false,
		StatusCode: code,
		Message:    message,
	})
}

// HTTPErrorHandler renders every error that escapes a handler as a
// failure envelope. Unexpected errors become a 500 with the underlying
// error detail exposed in the body.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal Server Error"
	detail := err.Error()

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		message = fmt.Sprintf("%v", he.Message)
		detail = ""
		if he.Internal != nil {
			detail = he.Internal.Error()
		}
	}

	_ = c.JSON(code, Envelope{
		Success:    false,
		StatusCode: code,
		Message:    message,
		Error:      detail,
	})
}

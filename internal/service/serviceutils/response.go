package serviceutils

import (
	"github.com/labstack/echo/v4"

	"github.com/asistenciapp/backend/internal/logger"
)

// APIResponse is the envelope every handler returns.
type APIResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ResponseSuccess writes a success envelope with the given status.
func ResponseSuccess(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, APIResponse{Message: message, Data: data})
}

// ResponseError logs the underlying error and writes an error envelope.
// The wire message stays user-facing; the cause only goes to the log.
func ResponseError(c echo.Context, status int, message string, err error) error {
	resp := APIResponse{Message: message}
	if err != nil {
		logger.ErrorLog(c.Request().Context(), message, err)
		resp.Error = err.Error()
	}
	return c.JSON(status, resp)
}

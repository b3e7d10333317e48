package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
}

// SuccessResponse writes data as a 200 JSON document.
func SuccessResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// RawJSONResponse writes an already encoded JSON document unchanged.
func RawJSONResponse(c echo.Context, body []byte) error {
	return c.JSONBlob(http.StatusOK, body)
}

// InternalServerErrorResponse writes a generic 500 error.
func InternalServerErrorResponse(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, ErrorBody{Error: "Internal Server Error"})
}

// AppErrorResponse writes application error response.
func AppErrorResponse(c echo.Context, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return c.JSON(appErr.Status, ErrorBody{Error: appErr.Message})
	}
	return InternalServerErrorResponse(c)
}

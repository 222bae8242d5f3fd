// Package http exposes the storefront and admin API over echo.
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response codes carried in the envelope.
const (
	CodeOK             = "OK"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeNotFound       = "NOT_FOUND"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeConflict       = "CONFLICT"
	CodeUpstreamError  = "UPSTREAM_ERROR"
	CodeInternalError  = "INTERNAL_ERROR"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Code    string      `json:"code"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// PagedEnvelope is the body of list responses.
type PagedEnvelope struct {
	Code       string      `json:"code"`
	Data       interface{} `json:"data"`
	Total      int         `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalPages int         `json:"totalPages"`
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Envelope{Code: CodeOK, Data: data})
}

func created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, Envelope{Code: CodeOK, Data: data})
}

func fail(c echo.Context, status int, code, message string) error {
	return c.JSON(status, Envelope{Code: code, Message: message})
}

func paged(c echo.Context, data interface{}, total, page, pageSize, totalPages int) error {
	return c.JSON(http.StatusOK, PagedEnvelope{
		Code:       CodeOK,
		Data:       data,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	})
}

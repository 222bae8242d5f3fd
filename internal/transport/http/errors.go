package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/light-bringer/machinery-catalog/internal/pkg/errx"
)

// statusOf maps an error Kind to an HTTP status and envelope code.
func statusOf(kind errx.Kind) (int, string) {
	switch kind {
	case errx.KindValidation:
		return http.StatusBadRequest, CodeInvalidRequest
	case errx.KindNotFound:
		return http.StatusNotFound, CodeNotFound
	case errx.KindUnauthorized:
		return http.StatusUnauthorized, CodeUnauthorized
	case errx.KindConflict:
		return http.StatusConflict, CodeConflict
	case errx.KindExternal:
		return http.StatusBadGateway, CodeUpstreamError
	default:
		return http.StatusInternalServerError, CodeInternalError
	}
}

// respondError writes err as an envelope. Only the public message leaves the
// process; server-side failures are logged with the full chain.
func respondError(c echo.Context, log *zap.Logger, err error) error {
	kind := errx.KindOf(err)
	status, code := statusOf(kind)

	if status >= http.StatusInternalServerError {
		log.Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()),
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
	}

	return fail(c, status, code, errx.PublicMessage(err))
}

// errorHandler renders errors that escape handlers, e.g. echo's own 404/405
// and body limit errors, in the same envelope.
func errorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		if he, isHTTP := err.(*echo.HTTPError); isHTTP {
			msg := http.StatusText(he.Code)
			if s, isString := he.Message.(string); isString {
				msg = s
			}
			_ = fail(c, he.Code, httpCode(he.Code), msg)
			return
		}

		_ = respondError(c, log, err)
	}
}

func httpCode(status int) string {
	switch {
	case status == http.StatusNotFound:
		return CodeNotFound
	case status == http.StatusUnauthorized:
		return CodeUnauthorized
	case status >= http.StatusInternalServerError:
		return CodeInternalError
	default:
		return CodeInvalidRequest
	}
}

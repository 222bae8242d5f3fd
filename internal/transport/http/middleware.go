package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/light-bringer/machinery-catalog/internal/app/account/usecases/sign_in"
	"github.com/light-bringer/machinery-catalog/internal/pkg/errx"
)

// ContextUserKey holds the authenticated *domain.User on admin requests.
const ContextUserKey = "user"

const adminRealm = "catalog-admin"

// requestLogger writes one zap line per request.
func requestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("remote_ip", v.RemoteIP),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			log.Info("request", fields...)
			return nil
		},
	})
}

// adminAuth checks HTTP Basic credentials against the user store.
// Unknown users and wrong passwords both yield 401.
func adminAuth(signIn *sign_in.Interactor) echo.MiddlewareFunc {
	return middleware.BasicAuthWithConfig(middleware.BasicAuthConfig{
		Realm: adminRealm,
		Validator: func(email, password string, c echo.Context) (bool, error) {
			user, err := signIn.Execute(c.Request().Context(), &sign_in.Request{
				Email:    email,
				Password: password,
			})
			switch errx.KindOf(err) {
			case errx.KindValidation, errx.KindNotFound, errx.KindUnauthorized:
				return false, nil
			}
			if err != nil {
				return false, err
			}
			c.Set(ContextUserKey, user)
			return true, nil
		},
	})
}

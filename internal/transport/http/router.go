package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/light-bringer/machinery-catalog/internal/app/account/usecases/sign_in"
)

// ServerOptions configures NewServer.
type ServerOptions struct {
	Products *ProductHandler
	Accounts *AccountHandler
	SignIn   *sign_in.Interactor
	Logger   *zap.Logger

	// BodyLimit uses echo's size syntax, e.g. "32M". Empty means no limit.
	BodyLimit string

	// PublicSignUp exposes POST /api/signup without credentials. When false the
	// route moves to /api/admin/signup so only existing admins can add accounts.
	PublicSignUp bool
}

// NewServer builds the echo instance with every route registered.
func NewServer(opts ServerOptions) *echo.Echo {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = newRequestValidator()
	e.HTTPErrorHandler = errorHandler(log)

	e.Use(middleware.Recover())
	e.Use(requestLogger(log))
	if opts.BodyLimit != "" {
		e.Use(middleware.BodyLimit(opts.BodyLimit))
	}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	api := e.Group("/api")

	// Storefront
	api.GET("/products", opts.Products.List)
	api.GET("/products/featured", opts.Products.Featured)
	api.GET("/products/related", opts.Products.Related)
	api.GET("/products/:id", opts.Products.Get)
	api.GET("/categories", opts.Products.Categories)

	// Accounts
	api.POST("/signin", opts.Accounts.SignIn)

	// Admin
	admin := api.Group("/admin", adminAuth(opts.SignIn))
	if opts.PublicSignUp {
		api.POST("/signup", opts.Accounts.SignUp)
	} else {
		admin.POST("/signup", opts.Accounts.SignUp)
	}
	admin.GET("/products", opts.Products.List)
	admin.POST("/products", opts.Products.Create)
	admin.PUT("/products/:id", opts.Products.Update)
	admin.DELETE("/products/:id", opts.Products.Delete)

	return e
}

package services

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/light-bringer/machinery-catalog/internal/app/account/usecases/sign_in"
	"github.com/light-bringer/machinery-catalog/internal/app/account/usecases/sign_up"
	"github.com/light-bringer/machinery-catalog/internal/app/product/queries/featured_products"
	"github.com/light-bringer/machinery-catalog/internal/app/product/queries/get_product"
	"github.com/light-bringer/machinery-catalog/internal/app/product/queries/list_categories"
	"github.com/light-bringer/machinery-catalog/internal/app/product/queries/list_products"
	"github.com/light-bringer/machinery-catalog/internal/app/product/queries/related_products"
	"github.com/light-bringer/machinery-catalog/internal/app/product/usecases/delete_product"
	"github.com/light-bringer/machinery-catalog/internal/app/product/usecases/save_product"
	"github.com/light-bringer/machinery-catalog/internal/config"
	"github.com/light-bringer/machinery-catalog/internal/pkg/clock"
	"github.com/light-bringer/machinery-catalog/internal/transport/grpc/catalogsvc"
	httptransport "github.com/light-bringer/machinery-catalog/internal/transport/http"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	Store          *Store
	HTTPServer     *echo.Echo
	CatalogHandler *catalogsvc.Handler

	closeMedia func()
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, cfg *config.Config, log *zap.Logger) (*ServiceOptions, error) {
	if log == nil {
		log = zap.NewNop()
	}

	// 1. Open the store
	store, err := OpenStore(ctx, cfg.Store)
	if err != nil {
		return nil, err
	}

	// 2. Open the media host
	mediaHost, closeMedia, err := openMedia(ctx, cfg.Media)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to create media host: %w", err)
	}

	// 3. Create infrastructure components
	clk := clock.NewRealClock()
	policy := save_product.Policy{
		MaxUploadBytes:       cfg.Upload.MaxBytes,
		MaxVideoDuration:     cfg.Upload.MaxVideoDuration,
		RequireMediaOnCreate: cfg.Upload.RequireMediaOnCreate,
	}

	// 4. Create command use cases (write operations)
	saveProduct := save_product.NewInteractor(store.Products, mediaHost, clk, policy, log.Named("save_product"))
	deleteProduct := delete_product.NewInteractor(store.Products, mediaHost, log.Named("delete_product"))
	signIn := sign_in.NewInteractor(store.Users)
	signUp := sign_up.NewInteractor(store.Users, clk)

	// 5. Create query use cases (read operations)
	getProduct := get_product.NewQuery(store.Products)
	listProducts := list_products.NewQuery(store.Products)
	listCategories := list_categories.NewQuery(store.Products)
	featured := featured_products.NewQuery(store.Products)
	related := related_products.NewQuery(store.Products)

	// 6. Create transports
	httpServer := httptransport.NewServer(httptransport.ServerOptions{
		Products: httptransport.NewProductHandler(
			saveProduct, deleteProduct,
			getProduct, listProducts, listCategories, featured, related,
			log.Named("http"),
		),
		Accounts:     httptransport.NewAccountHandler(signIn, signUp, log.Named("http")),
		SignIn:       signIn,
		Logger:       log.Named("http"),
		BodyLimit:    cfg.HTTP.BodyLimit,
		PublicSignUp: cfg.HTTP.PublicSignUp,
	})
	catalogHandler := catalogsvc.NewHandler(getProduct, listProducts, listCategories, featured, related)

	return &ServiceOptions{
		Store:          store,
		HTTPServer:     httpServer,
		CatalogHandler: catalogHandler,
		closeMedia:     closeMedia,
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.closeMedia != nil {
		s.closeMedia()
	}
	if s.Store != nil {
		s.Store.Close()
	}
}

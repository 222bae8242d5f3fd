package delete_product

import (
	"context"

	"go.uber.org/zap"

	"github.com/light-bringer/machinery-catalog/internal/app/product/contracts"
	"github.com/light-bringer/machinery-catalog/internal/pkg/errx"
)

// Request contains the data to delete a product.
type Request struct {
	ProductID string
}

// Interactor handles the delete product use case.
type Interactor struct {
	repo   contracts.ProductRepository
	media  contracts.MediaHost
	logger *zap.Logger
}

// NewInteractor creates a new delete product interactor.
func NewInteractor(repo contracts.ProductRepository, media contracts.MediaHost, logger *zap.Logger) *Interactor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Interactor{
		repo:   repo,
		media:  media,
		logger: logger,
	}
}

// Execute permanently deletes a product and its hosted media asset.
// The media asset goes first: if the host refuses, the record is kept so
// the asset id is not lost.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	// 1. Load product
	product, err := i.repo.GetByID(ctx, req.ProductID)
	if err != nil {
		if errx.KindOf(err) == errx.KindNotFound {
			return err
		}
		return errx.Wrap(errx.KindPersistence, "failed to load product", err)
	}

	// 2. Delete hosted media
	if product.Media.HasAsset() {
		if err := i.media.Delete(ctx, product.Media.AssetID, product.Media.Kind); err != nil {
			return errx.Wrap(errx.KindExternal, "failed to delete product media", err)
		}
	}

	// 3. Delete record
	if err := i.repo.Delete(ctx, product.ID); err != nil {
		return errx.Wrap(errx.KindPersistence, "failed to delete product", err)
	}

	i.logger.Info("product deleted",
		zap.String("product_id", product.ID),
		zap.String("asset_id", product.Media.AssetID),
	)
	return nil
}

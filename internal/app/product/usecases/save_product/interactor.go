package save_product

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/light-bringer/machinery-catalog/internal/app/product/contracts"
	"github.com/light-bringer/machinery-catalog/internal/app/product/domain"
	"github.com/light-bringer/machinery-catalog/internal/pkg/clock"
	"github.com/light-bringer/machinery-catalog/internal/pkg/errx"
)

// AssetIDPrefix prefixes generated media asset ids.
const AssetIDPrefix = "product_"

// File is an uploaded media file.
// DurationSeconds is an optional client-reported length for videos. The
// length read from the container header is always checked as well.
type File struct {
	Filename        string
	Data            []byte
	DurationSeconds float64
}

// Request contains the data to create or fully replace a product.
// An empty ProductID creates a new product.
type Request struct {
	ProductID      string
	Name           string
	Description    string
	Category       string
	Price          *string
	OriginalPrice  *string
	Features       []string
	Specifications map[string]string
	Featured       bool
	InStock        bool
	Discount       int
	Rating         float64
	Reviews        int

	// MediaURL is adopted as-is when no File is given.
	MediaURL     string
	MediaKind    domain.MediaKind
	MediaAssetID string

	File *File
}

// Interactor handles the create and update product use cases.
type Interactor struct {
	repo   contracts.ProductRepository
	media  contracts.MediaHost
	clock  clock.Clock
	policy Policy
	logger *zap.Logger
}

// NewInteractor creates a new save product interactor.
func NewInteractor(
	repo contracts.ProductRepository,
	media contracts.MediaHost,
	clock clock.Clock,
	policy Policy,
	logger *zap.Logger,
) *Interactor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Interactor{
		repo:   repo,
		media:  media,
		clock:  clock,
		policy: policy.withDefaults(),
		logger: logger,
	}
}

// Execute validates, uploads media if a file is given, and upserts the product.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Product, error) {
	// 1. Validate request (no side effects before this passes)
	file, err := i.validate(req)
	if err != nil {
		return nil, err
	}

	// 2. Load existing record or start a new one
	now := i.clock.Now()
	var product *domain.Product
	var previous domain.Media
	if req.ProductID == "" {
		product = &domain.Product{ID: uuid.New().String(), CreatedAt: now}
	} else {
		product, err = i.repo.GetByID(ctx, req.ProductID)
		if err != nil {
			if errx.KindOf(err) == errx.KindNotFound {
				return nil, err
			}
			return nil, errx.Wrap(errx.KindPersistence, "failed to load product", err)
		}
		previous = product.Media
	}

	// 3. Resolve media reference
	uploaded := false
	switch {
	case file != nil:
		product.Media, err = i.replaceMedia(ctx, req, file, previous)
		if err != nil {
			return nil, err
		}
		uploaded = true
	case strings.TrimSpace(req.MediaURL) != "":
		product.Media = adoptURL(req, previous)
	}

	// 4. Normalize fields
	applyFields(product, req)
	product.UpdatedAt = now

	// 5. Persist
	if err := i.repo.Upsert(ctx, product); err != nil {
		if uploaded {
			i.logger.Warn("product not saved, uploaded media orphaned",
				zap.String("product_id", product.ID),
				zap.String("asset_id", product.Media.AssetID),
				zap.Error(err),
			)
		}
		return nil, errx.Wrap(errx.KindPersistence, "failed to save product", err)
	}

	i.logger.Info("product saved",
		zap.String("product_id", product.ID),
		zap.Bool("created", req.ProductID == ""),
		zap.Bool("media_uploaded", uploaded),
	)
	return product, nil
}

// replaceMedia uploads the new file and deletes the previous asset on a
// best-effort basis when the id or the kind changed. Only the upload can
// fail the request.
func (i *Interactor) replaceMedia(ctx context.Context, req *Request, file *validatedFile, previous domain.Media) (domain.Media, error) {
	publicID := strings.TrimSpace(req.MediaAssetID)
	if publicID == "" {
		publicID = AssetIDPrefix + uuid.New().String()
	}

	res, err := i.media.Upload(ctx, contracts.UploadInput{
		Data:        file.data,
		PublicID:    publicID,
		Kind:        file.kind,
		ContentType: file.contentType,
	})
	if err != nil {
		return domain.Media{}, errx.Wrap(errx.KindExternal, "media upload failed", err)
	}

	next := domain.Media{Kind: file.kind, URL: res.URL, AssetID: res.AssetID}

	// Hosts key assets by id and kind, so reusing an id for another kind
	// leaves the old asset behind unless it is deleted too.
	if previous.HasAsset() && (previous.AssetID != next.AssetID || previous.Kind != next.Kind) {
		if err := i.media.Delete(ctx, previous.AssetID, previous.Kind); err != nil {
			i.logger.Warn("failed to delete previous media asset",
				zap.String("asset_id", previous.AssetID),
				zap.Error(err),
			)
		}
	}

	return next, nil
}

// adoptURL takes a caller-supplied URL verbatim. Resubmitting the current URL
// keeps its asset id so the asset stays deletable.
func adoptURL(req *Request, previous domain.Media) domain.Media {
	url := strings.TrimSpace(req.MediaURL)
	assetID := strings.TrimSpace(req.MediaAssetID)
	kind := req.MediaKind

	if url == previous.URL {
		if assetID == "" {
			assetID = previous.AssetID
		}
		if kind == domain.MediaNone {
			kind = previous.Kind
		}
	}
	if kind == domain.MediaNone {
		kind = domain.MediaImage
	}

	return domain.Media{Kind: kind, URL: url, AssetID: assetID}
}

func applyFields(p *domain.Product, req *Request) {
	p.Name = strings.TrimSpace(req.Name)
	p.Description = strings.TrimSpace(req.Description)
	p.Category = strings.TrimSpace(req.Category)
	p.Price = domain.CleanPrice(req.Price)
	p.OriginalPrice = domain.CleanPrice(req.OriginalPrice)
	p.Features = domain.CleanFeatures(req.Features)
	p.Specifications = domain.CleanSpecifications(req.Specifications)
	p.Featured = req.Featured
	p.InStock = req.InStock
	p.Discount = domain.DeriveDiscount(p.Price, p.OriginalPrice, req.Discount)
	p.Rating = req.Rating
	p.Reviews = req.Reviews
}

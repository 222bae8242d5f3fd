package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/machinery-catalog/internal/app/product/contracts"
	"github.com/light-bringer/machinery-catalog/internal/app/product/domain"
	"github.com/light-bringer/machinery-catalog/internal/models/m_product"
	"github.com/light-bringer/machinery-catalog/internal/pkg/committer"
	"github.com/light-bringer/machinery-catalog/internal/pkg/query"
)

// SpannerProductRepo implements ProductRepository and ReadModel on Cloud Spanner.
type SpannerProductRepo struct {
	client    *spanner.Client
	committer *committer.Committer
	model     *m_product.Model
}

var (
	_ contracts.ProductRepository = (*SpannerProductRepo)(nil)
	_ contracts.ReadModel         = (*SpannerProductRepo)(nil)
)

// NewSpannerProductRepo creates a new SpannerProductRepo.
func NewSpannerProductRepo(client *spanner.Client, comm *committer.Committer) *SpannerProductRepo {
	return &SpannerProductRepo{
		client:    client,
		committer: comm,
		model:     m_product.NewModel(),
	}
}

// GetByID reads a single product row.
func (r *SpannerProductRepo) GetByID(ctx context.Context, productID string) (*domain.Product, error) {
	row, err := r.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, m_product.Columns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to read product: %w", err)
	}

	var data m_product.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse product: %w", err)
	}

	return dataToDomain(&data)
}

// Upsert writes the whole row in one commit.
func (r *SpannerProductRepo) Upsert(ctx context.Context, product *domain.Product) error {
	plan := committer.NewPlan()
	plan.Add(r.model.UpsertMut(domainToData(product)))
	return r.committer.Apply(ctx, plan)
}

// Delete removes the row. Spanner treats a delete of a missing key as a no-op.
func (r *SpannerProductRepo) Delete(ctx context.Context, productID string) error {
	plan := committer.NewPlan()
	plan.Add(r.model.DeleteMut(productID))
	return r.committer.Apply(ctx, plan)
}

// List returns every product, newest first.
func (r *SpannerProductRepo) List(ctx context.Context) ([]*domain.Product, error) {
	stmt := newestFirst(query.From(m_product.TableName).Select(m_product.Columns...)).Build()
	return r.queryProducts(ctx, stmt)
}

// CategoryCounts aggregates products per category, ordered by name.
func (r *SpannerProductRepo) CategoryCounts(ctx context.Context) ([]domain.Category, error) {
	stmt := query.From(m_product.TableName).
		Select(m_product.Category, "COUNT(*) AS product_count").
		GroupBy(m_product.Category).
		OrderBy(m_product.Category, query.Asc).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	categories := make([]domain.Category, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate categories: %w", err)
		}

		var name string
		var count int64
		if err := row.Columns(&name, &count); err != nil {
			return nil, fmt.Errorf("failed to parse category: %w", err)
		}
		categories = append(categories, domain.Category{Name: name, Count: int(count)})
	}

	return categories, nil
}

// Featured returns up to limit featured products, newest first.
func (r *SpannerProductRepo) Featured(ctx context.Context, limit int) ([]*domain.Product, error) {
	stmt := newestFirst(query.From(m_product.TableName).
		Select(m_product.Columns...).
		Where(query.Eq(m_product.Featured, true))).
		Limit(int64(limit)).
		Build()
	return r.queryProducts(ctx, stmt)
}

// Related returns up to limit products other than excludeID, optionally in one category.
func (r *SpannerProductRepo) Related(ctx context.Context, excludeID, category string, limit int) ([]*domain.Product, error) {
	b := query.From(m_product.TableName).
		Select(m_product.Columns...).
		Where(query.Ne(m_product.ProductID, excludeID))
	if category != "" {
		b = b.Where(query.Eq(m_product.Category, category))
	}
	stmt := newestFirst(b).Limit(int64(limit)).Build()
	return r.queryProducts(ctx, stmt)
}

func (r *SpannerProductRepo) queryProducts(ctx context.Context, stmt spanner.Statement) ([]*domain.Product, error) {
	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	products := make([]*domain.Product, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate products: %w", err)
		}

		var data m_product.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse product: %w", err)
		}

		p, err := dataToDomain(&data)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, nil
}

// newestFirst orders by creation time with the id as tiebreaker so pages are stable.
func newestFirst(b *query.Builder) *query.Builder {
	return b.OrderBy(m_product.CreatedAt, query.Desc).OrderBy(m_product.ProductID, query.Asc)
}

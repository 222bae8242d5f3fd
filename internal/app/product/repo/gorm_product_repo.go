package repo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/light-bringer/machinery-catalog/internal/app/product/contracts"
	"github.com/light-bringer/machinery-catalog/internal/app/product/domain"
	"github.com/light-bringer/machinery-catalog/internal/models/m_product"
)

// GormProductRepo implements ProductRepository and ReadModel on a relational
// database through gorm.
type GormProductRepo struct {
	db *gorm.DB
}

var (
	_ contracts.ProductRepository = (*GormProductRepo)(nil)
	_ contracts.ReadModel         = (*GormProductRepo)(nil)
)

// NewGormProductRepo creates a new GormProductRepo.
func NewGormProductRepo(db *gorm.DB) *GormProductRepo {
	return &GormProductRepo{db: db}
}

// GetByID loads one product.
func (r *GormProductRepo) GetByID(ctx context.Context, productID string) (*domain.Product, error) {
	var rec m_product.Record
	err := r.db.WithContext(ctx).Where(m_product.ProductID+" = ?", productID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read product: %w", err)
	}
	return recordToDomain(&rec)
}

// Upsert inserts the product or overwrites every column of the existing row.
func (r *GormProductRepo) Upsert(ctx context.Context, product *domain.Product) error {
	rec, err := domainToRecord(product)
	if err != nil {
		return err
	}

	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: m_product.ProductID}},
			UpdateAll: true,
		}).
		Create(rec).Error
	if err != nil {
		return fmt.Errorf("failed to upsert product: %w", err)
	}
	return nil
}

// Delete removes the product. A missing row is not an error.
func (r *GormProductRepo) Delete(ctx context.Context, productID string) error {
	err := r.db.WithContext(ctx).
		Where(m_product.ProductID+" = ?", productID).
		Delete(&m_product.Record{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// List returns every product, newest first.
func (r *GormProductRepo) List(ctx context.Context) ([]*domain.Product, error) {
	return r.find(r.newestFirst(ctx))
}

// CategoryCounts aggregates products per category, ordered by name.
func (r *GormProductRepo) CategoryCounts(ctx context.Context) ([]domain.Category, error) {
	var rows []struct {
		Name  string
		Count int
	}
	err := r.db.WithContext(ctx).
		Model(&m_product.Record{}).
		Select(m_product.Category + " AS name, COUNT(*) AS count").
		Group(m_product.Category).
		Order(m_product.Category + " ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}

	categories := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, domain.Category{Name: row.Name, Count: row.Count})
	}
	return categories, nil
}

// Featured returns up to limit featured products, newest first.
func (r *GormProductRepo) Featured(ctx context.Context, limit int) ([]*domain.Product, error) {
	return r.find(r.newestFirst(ctx).Where(m_product.Featured+" = ?", true).Limit(limit))
}

// Related returns up to limit products other than excludeID, optionally in one category.
func (r *GormProductRepo) Related(ctx context.Context, excludeID, category string, limit int) ([]*domain.Product, error) {
	tx := r.newestFirst(ctx).Where(m_product.ProductID+" <> ?", excludeID)
	if category != "" {
		tx = tx.Where(m_product.Category+" = ?", category)
	}
	return r.find(tx.Limit(limit))
}

func (r *GormProductRepo) newestFirst(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Order(m_product.CreatedAt + " DESC").
		Order(m_product.ProductID + " ASC")
}

func (r *GormProductRepo) find(tx *gorm.DB) ([]*domain.Product, error) {
	var recs []m_product.Record
	if err := tx.Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}

	products := make([]*domain.Product, 0, len(recs))
	for i := range recs {
		p, err := recordToDomain(&recs[i])
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

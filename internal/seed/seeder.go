package seed

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/light-bringer/machinery-catalog/internal/app/account/usecases/sign_up"
	"github.com/light-bringer/machinery-catalog/internal/app/product/contracts"
	"github.com/light-bringer/machinery-catalog/internal/pkg/errx"
)

// Admin is the account created on first run.
type Admin struct {
	Name     string
	Email    string
	Password string
}

// Result counts what a run wrote.
type Result struct {
	ProductsCreated int
	ProductsSkipped int
	AdminCreated    bool
}

// Seeder writes the sample data. Running it again only adds what is missing;
// existing products and accounts are never overwritten.
type Seeder struct {
	products contracts.ProductRepository
	signUp   *sign_up.Interactor
	logger   *zap.Logger
}

// NewSeeder creates a seeder.
func NewSeeder(products contracts.ProductRepository, signUp *sign_up.Interactor, logger *zap.Logger) *Seeder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Seeder{products: products, signUp: signUp, logger: logger}
}

// Run seeds the catalog and the admin account.
func (s *Seeder) Run(ctx context.Context, admin Admin) (Result, error) {
	var res Result

	// 1. Sample products
	for _, p := range Products() {
		_, err := s.products.GetByID(ctx, p.ID)
		switch {
		case err == nil:
			res.ProductsSkipped++
			continue
		case errx.KindOf(err) != errx.KindNotFound:
			return res, fmt.Errorf("failed to look up %s: %w", p.Name, err)
		}

		if err := s.products.Upsert(ctx, p); err != nil {
			return res, fmt.Errorf("failed to seed %s: %w", p.Name, err)
		}
		res.ProductsCreated++
		s.logger.Debug("seeded product", zap.String("product_id", p.ID), zap.String("name", p.Name))
	}

	// 2. Admin account
	if admin.Email != "" {
		_, err := s.signUp.Execute(ctx, &sign_up.Request{
			Name:     admin.Name,
			Email:    admin.Email,
			Password: admin.Password,
		})
		switch {
		case err == nil:
			res.AdminCreated = true
		case errx.KindOf(err) == errx.KindConflict:
			s.logger.Debug("admin account already exists", zap.String("email", admin.Email))
		default:
			return res, fmt.Errorf("failed to create admin account: %w", err)
		}
	}

	s.logger.Info("seed complete",
		zap.Int("products_created", res.ProductsCreated),
		zap.Int("products_skipped", res.ProductsSkipped),
		zap.Bool("admin_created", res.AdminCreated),
	)
	return res, nil
}

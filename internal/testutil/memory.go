package testutil

import (
	"context"
	"sort"
	"sync"

	accountdomain "github.com/light-bringer/machinery-catalog/internal/app/account/domain"
	"github.com/light-bringer/machinery-catalog/internal/app/product/contracts"
	"github.com/light-bringer/machinery-catalog/internal/app/product/domain"
)

// ProductStore is an in-memory ProductRepository and ReadModel.
// Set the *Err fields to make the matching call fail.
type ProductStore struct {
	mu       sync.Mutex
	products map[string]*domain.Product

	GetErr    error
	UpsertErr error
	DeleteErr error
	ListErr   error

	Calls []string
}

var (
	_ contracts.ProductRepository = (*ProductStore)(nil)
	_ contracts.ReadModel         = (*ProductStore)(nil)
)

// NewProductStore returns a store seeded with copies of products.
func NewProductStore(products ...*domain.Product) *ProductStore {
	s := &ProductStore{products: make(map[string]*domain.Product)}
	for _, p := range products {
		s.products[p.ID] = p.Clone()
	}
	return s
}

func (s *ProductStore) record(call string) {
	s.Calls = append(s.Calls, call)
}

// Get returns a copy of a stored product, or nil.
func (s *ProductStore) Get(id string) *domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products[id].Clone()
}

// Len returns the number of stored products.
func (s *ProductStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.products)
}

func (s *ProductStore) GetByID(_ context.Context, productID string) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("GetByID")

	if s.GetErr != nil {
		return nil, s.GetErr
	}
	p, ok := s.products[productID]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return p.Clone(), nil
}

func (s *ProductStore) Upsert(_ context.Context, product *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("Upsert")

	if s.UpsertErr != nil {
		return s.UpsertErr
	}
	s.products[product.ID] = product.Clone()
	return nil
}

func (s *ProductStore) Delete(_ context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("Delete")

	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	delete(s.products, productID)
	return nil
}

func (s *ProductStore) List(_ context.Context) ([]*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("List")

	if s.ListErr != nil {
		return nil, s.ListErr
	}
	return s.newestFirst(func(*domain.Product) bool { return true }, 0), nil
}

func (s *ProductStore) CategoryCounts(_ context.Context) ([]domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("CategoryCounts")

	if s.ListErr != nil {
		return nil, s.ListErr
	}
	all := s.newestFirst(func(*domain.Product) bool { return true }, 0)
	cats := domain.GroupByCategory(all)
	sort.Slice(cats, func(i, j int) bool { return cats[i].Name < cats[j].Name })
	return cats, nil
}

func (s *ProductStore) Featured(_ context.Context, limit int) ([]*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("Featured")

	if s.ListErr != nil {
		return nil, s.ListErr
	}
	return s.newestFirst(func(p *domain.Product) bool { return p.Featured }, limit), nil
}

func (s *ProductStore) Related(_ context.Context, excludeID, category string, limit int) ([]*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("Related")

	if s.ListErr != nil {
		return nil, s.ListErr
	}
	return s.newestFirst(func(p *domain.Product) bool {
		return p.ID != excludeID && (category == "" || p.Category == category)
	}, limit), nil
}

func (s *ProductStore) newestFirst(keep func(*domain.Product) bool, limit int) []*domain.Product {
	out := make([]*domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if keep(p) {
			out = append(out, p.Clone())
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// MediaCall is one recorded MediaHost call.
type MediaCall struct {
	Op       string // "upload" or "delete"
	PublicID string
	AssetID  string
	Kind     domain.MediaKind
}

// MediaHost is a fake media host that records every call.
type MediaHost struct {
	mu sync.Mutex

	BaseURL   string
	UploadErr error
	DeleteErr error

	Calls []MediaCall
}

var _ contracts.MediaHost = (*MediaHost)(nil)

// NewMediaHost returns a fake host issuing URLs under https://media.test.
func NewMediaHost() *MediaHost {
	return &MediaHost{BaseURL: "https://media.test"}
}

func (m *MediaHost) Upload(_ context.Context, in contracts.UploadInput) (contracts.UploadResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, MediaCall{Op: "upload", PublicID: in.PublicID, Kind: in.Kind})

	if m.UploadErr != nil {
		return contracts.UploadResult{}, m.UploadErr
	}
	return contracts.UploadResult{
		URL:     m.BaseURL + "/" + string(in.Kind) + "/" + in.PublicID,
		AssetID: in.PublicID,
	}, nil
}

func (m *MediaHost) Delete(_ context.Context, assetID string, kind domain.MediaKind) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, MediaCall{Op: "delete", AssetID: assetID, Kind: kind})
	return m.DeleteErr
}

// Ops returns the recorded operation names in order.
func (m *MediaHost) Ops() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.Calls))
	for _, c := range m.Calls {
		out = append(out, c.Op)
	}
	return out
}

// UserStore is an in-memory credential store.
type UserStore struct {
	mu    sync.Mutex
	users map[string]*accountdomain.User

	FindErr   error
	CreateErr error
}

// NewUserStore returns a store seeded with users.
func NewUserStore(users ...*accountdomain.User) *UserStore {
	s := &UserStore{users: make(map[string]*accountdomain.User)}
	for _, u := range users {
		cp := *u
		s.users[accountdomain.NormalizeEmail(u.Email)] = &cp
	}
	return s
}

func (s *UserStore) FindByEmail(_ context.Context, email string) (*accountdomain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FindErr != nil {
		return nil, s.FindErr
	}
	u, ok := s.users[accountdomain.NormalizeEmail(email)]
	if !ok {
		return nil, accountdomain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *UserStore) Create(_ context.Context, user *accountdomain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.CreateErr != nil {
		return s.CreateErr
	}
	key := accountdomain.NormalizeEmail(user.Email)
	if _, ok := s.users[key]; ok {
		return accountdomain.ErrEmailInUse
	}
	cp := *user
	s.users[key] = &cp
	return nil
}

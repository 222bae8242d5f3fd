package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/machinery-catalog/internal/app/account/contracts"
	"github.com/light-bringer/machinery-catalog/internal/app/account/domain"
	"github.com/light-bringer/machinery-catalog/internal/models/m_user"
	"github.com/light-bringer/machinery-catalog/internal/pkg/committer"
	"github.com/light-bringer/machinery-catalog/internal/pkg/query"
)

// SpannerUserRepo implements UserRepository on Cloud Spanner.
type SpannerUserRepo struct {
	client    *spanner.Client
	committer *committer.Committer
	model     *m_user.Model
}

var _ contracts.UserRepository = (*SpannerUserRepo)(nil)

// NewSpannerUserRepo creates a new SpannerUserRepo.
func NewSpannerUserRepo(client *spanner.Client, comm *committer.Committer) *SpannerUserRepo {
	return &SpannerUserRepo{client: client, committer: comm, model: m_user.NewModel()}
}

// FindByEmail looks a user up by normalized email.
func (r *SpannerUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	stmt := query.From(m_user.TableName).
		Select(m_user.Columns...).
		Where(query.Eq(m_user.Email, domain.NormalizeEmail(email))).
		Limit(1).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read user: %w", err)
	}

	var data m_user.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse user: %w", err)
	}
	return dataToDomain(&data), nil
}

// Create inserts the user. The unique email index rejects duplicates.
func (r *SpannerUserRepo) Create(ctx context.Context, user *domain.User) error {
	plan := committer.NewPlan()
	plan.Add(r.model.InsertMut(domainToData(user)))

	if err := r.committer.Apply(ctx, plan); err != nil {
		if spanner.ErrCode(err) == codes.AlreadyExists {
			return domain.ErrEmailInUse
		}
		return err
	}
	return nil
}

func domainToData(u *domain.User) *m_user.Data {
	return &m_user.Data{
		UserID:       u.ID,
		Name:         u.Name,
		Email:        domain.NormalizeEmail(u.Email),
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
	}
}

func dataToDomain(d *m_user.Data) *domain.User {
	return &domain.User{
		ID:           d.UserID,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt,
	}
}

package get_product

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/machinery-catalog/internal/app/product/domain"
	"github.com/light-bringer/machinery-catalog/internal/pkg/errx"
	"github.com/light-bringer/machinery-catalog/internal/testutil"
)

func TestExecute(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewProductStore(testutil.NewProductBuilder("p1").Build())
	q := NewQuery(store)

	t.Run("found", func(t *testing.T) {
		p, err := q.Execute(ctx, &Request{ProductID: "p1"})
		require.NoError(t, err)
		assert.Equal(t, "p1", p.ID)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := q.Execute(ctx, &Request{ProductID: "missing"})
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("store failure is a persistence error", func(t *testing.T) {
		store.GetErr = errors.New("unavailable")
		defer func() { store.GetErr = nil }()

		_, err := q.Execute(ctx, &Request{ProductID: "p1"})
		assert.Equal(t, errx.KindPersistence, errx.KindOf(err))
	})
}

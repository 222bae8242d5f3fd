package related_products

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/machinery-catalog/internal/app/product/domain"
	"github.com/light-bringer/machinery-catalog/internal/testutil"
)

func TestExecute(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	store := testutil.NewProductStore()
	for i, id := range []string{"a", "b", "c", "d", "e", "f"} {
		cat := "Extruders"
		if id == "f" {
			cat = "Mixing Equipment"
		}
		require.NoError(t, store.Upsert(ctx, testutil.NewProductBuilder(id).
			WithCategory(cat).
			CreatedAt(base.AddDate(0, 0, i)).
			Build()))
	}
	q := NewQuery(store)

	t.Run("exclude id is required", func(t *testing.T) {
		_, err := q.Execute(ctx, &Request{ExcludeID: " "})
		assert.ErrorIs(t, err, domain.ErrExcludeIDRequired)
	})

	t.Run("same category newest first capped at limit", func(t *testing.T) {
		got, err := q.Execute(ctx, &Request{ExcludeID: "e", Category: "Extruders"})
		require.NoError(t, err)

		ids := make([]string, 0, len(got))
		for _, p := range got {
			ids = append(ids, p.ID)
		}
		assert.Equal(t, []string{"d", "c", "b", "a"}, ids)
	})

	t.Run("no category means any", func(t *testing.T) {
		got, err := q.Execute(ctx, &Request{ExcludeID: "a"})
		require.NoError(t, err)
		require.Len(t, got, Limit)
		assert.Equal(t, "f", got[0].ID)
	})
}

package list_products

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/machinery-catalog/internal/app/product/catalog"
	"github.com/light-bringer/machinery-catalog/internal/pkg/errx"
	"github.com/light-bringer/machinery-catalog/internal/testutil"
)

func TestExecute(t *testing.T) {
	ctx := context.Background()
	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }

	store := testutil.NewProductStore(
		testutil.NewProductBuilder("a").WithCategory("Extruders").WithPrice("$68,500", "").CreatedAt(day(1)).Build(),
		testutil.NewProductBuilder("b").WithCategory("Extruders").WithPrice("$30,000", "").CreatedAt(day(2)).Build(),
		testutil.NewProductBuilder("c").WithCategory("Heat Treatment").WithPrice("$55,200", "").CreatedAt(day(3)).Build(),
	)
	q := NewQuery(store)

	t.Run("filters sorts and pages", func(t *testing.T) {
		page, err := q.Execute(ctx, &Request{
			Filter:   catalog.Request{Categories: []string{"Extruders"}, Sort: catalog.SortPriceLow},
			Page:     1,
			PageSize: 1,
		})
		require.NoError(t, err)

		require.Len(t, page.Items, 1)
		assert.Equal(t, "b", page.Items[0].ID)
		assert.Equal(t, 2, page.Total)
		assert.Equal(t, 2, page.TotalPages)
	})

	t.Run("store failure", func(t *testing.T) {
		failing := testutil.NewProductStore()
		failing.ListErr = errors.New("unavailable")

		_, err := NewQuery(failing).Execute(ctx, &Request{})
		assert.Equal(t, errx.KindPersistence, errx.KindOf(err))
	})
}

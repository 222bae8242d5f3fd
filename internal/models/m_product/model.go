package m_product

import (
	"cloud.google.com/go/spanner"
)

// Model builds mutations for the products table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// UpsertMut writes the full row, inserting or replacing it.
func (m *Model) UpsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		Columns,
		[]interface{}{
			data.ProductID,
			data.Name,
			data.Description,
			data.Category,
			data.Price,
			data.OriginalPrice,
			data.MediaKind,
			data.MediaURL,
			data.MediaAssetID,
			data.Features,
			data.Specifications,
			data.Featured,
			data.InStock,
			data.Discount,
			data.Rating,
			data.Reviews,
			data.CreatedAt,
			data.UpdatedAt,
		},
	)
}

// DeleteMut removes a product row.
func (m *Model) DeleteMut(productID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID})
}

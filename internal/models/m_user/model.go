package m_user

import "cloud.google.com/go/spanner"

// Model builds mutations for the users table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut inserts a user. The commit fails with AlreadyExists if the
// email index already holds the address.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		Columns,
		[]interface{}{data.UserID, data.Name, data.Email, data.PasswordHash, data.CreatedAt},
	)
}

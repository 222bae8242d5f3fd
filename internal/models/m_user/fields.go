package m_user

// Column names for the users table.
const (
	TableName = "users"

	UserID       = "user_id"
	Name         = "name"
	Email        = "email"
	PasswordHash = "password_hash"
	CreatedAt    = "created_at"

	// EmailIndex is the unique secondary index on Email.
	EmailIndex = "users_by_email"
)

// Columns lists every column in storage order.
var Columns = []string{UserID, Name, Email, PasswordHash, CreatedAt}

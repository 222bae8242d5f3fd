package m_user

import "time"

// Data is the Spanner row of the users table.
type Data struct {
	UserID       string    `spanner:"user_id"`
	Name         string    `spanner:"name"`
	Email        string    `spanner:"email"`
	PasswordHash string    `spanner:"password_hash"`
	CreatedAt    time.Time `spanner:"created_at"`
}

// Record is the relational (gorm) mapping of the users table.
type Record struct {
	UserID       string    `gorm:"column:user_id;primaryKey;size:64"`
	Name         string    `gorm:"column:name;not null"`
	Email        string    `gorm:"column:email;not null;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;not null"`
}

// TableName implements gorm's Tabler.
func (Record) TableName() string {
	return TableName
}

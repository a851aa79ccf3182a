package model

import "time"

type User struct {
	ID uint64 `gorm:"primaryKey"`

	Email string `gorm:"column:email;type:varchar(255);not null;unique"`

	// Deterministic one-way digest, never the plaintext.
	Password string `gorm:"column:pass_word;type:varchar(255);not null" json:"-"`

	CreatedAt time.Time
}

// TableName returns the database table name.
func (User) TableName() string {
	return "user_db"
}

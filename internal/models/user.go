// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered account. The password hash is excluded from
// JSON at the serialization boundary so no handler can leak it.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Profile   *string   `json:"profile"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserSummary is the public projection of a user embedded in news payloads.
type UserSummary struct {
	ID      uint    `json:"id"`
	Name    string  `json:"name"`
	Profile *string `json:"profile"`
}

// TableName maps the summary projection onto the users table.
func (UserSummary) TableName() string {
	return "users"
}

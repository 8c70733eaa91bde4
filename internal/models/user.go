package models

import (
	"time"
)

// User account table. Password holds the bcrypt hash, never the
// plaintext.
type User struct {
	ID              uint      `gorm:"primaryKey;column:id" json:"id"`
	Username        string    `gorm:"column:username;size:100;uniqueIndex;not null" json:"username"`
	Password        string    `gorm:"column:password;size:255;not null" json:"-"`
	// Email is optional, so many rows hold the empty string; uniqueness
	// of non-empty values is enforced at registration, not by an index.
	Email           string    `gorm:"column:email;size:200;index" json:"email,omitempty"`
	FirstName       string    `gorm:"column:first_name;size:100" json:"firstName,omitempty"`
	LastName        string    `gorm:"column:last_name;size:100" json:"lastName,omitempty"`
	ProfileImageURL string    `gorm:"column:profile_image_url;size:500" json:"profileImageUrl,omitempty"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

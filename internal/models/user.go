package models

import "time"

// User represents the user model in the database
type User struct {
	Base
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Name      string    `gorm:"size:100" json:"name"`
	UpdatedAt time.Time `json:"updated_at"`
}

package models

import (
	"time"

	"fintrack/internal/uuid"

	"gorm.io/gorm"
)

// Base contains the identifier and creation timestamp shared by every table.
// Records are deleted permanently, so there is no soft-delete column.
type Base struct {
	ID        string    `gorm:"size:36;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (b *Base) BeforeCreate(_ *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}

// GetID returns the record identifier.
func (b *Base) GetID() string { return b.ID }

package model

import (
	"time"

	"gorm.io/gorm"
)

// Skill is a flat catalog entry referenced by students and offers.
// Name uniqueness is case-insensitive among live rows, enforced by the
// partial index installed in database.Migrate.
type Skill struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:text" json:"name"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

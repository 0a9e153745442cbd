package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// School is the institution a student belongs to
type School struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	User   User      `gorm:"foreignKey:UserID;references:ID" json:"-"`

	Name   string `gorm:"type:text" json:"name"`
	Domain string `gorm:"type:text" json:"domain"`

	Students []Student `gorm:"foreignKey:SchoolID;references:UserID" json:"students,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

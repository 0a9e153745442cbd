package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is a student's rating of a company after a placement.
// One review per history entry, so a student placed twice at the same
// company can review each placement once.
type Review struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	StudentID uuid.UUID `gorm:"type:uuid;not null;index" json:"student_id"`
	Student   Student   `gorm:"foreignKey:StudentID;references:UserID" json:"-"`

	CompanyID uuid.UUID `gorm:"type:uuid;not null;index" json:"company_id"`
	Company   Company   `gorm:"foreignKey:CompanyID;references:UserID" json:"-"`

	// one live review per history entry, partial index in database.Migrate
	HistoryID uint           `gorm:"not null;index" json:"history_id"`
	History   StudentHistory `gorm:"foreignKey:HistoryID;references:ID" json:"-"`

	Rating  int    `gorm:"check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment string `gorm:"type:text" json:"comment"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

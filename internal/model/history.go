package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentHistory records a placement that actually happened. It is created
// exactly once per accepted application and never mutated afterwards, apart
// from soft deletion.
type StudentHistory struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	StudentID uuid.UUID `gorm:"type:uuid;not null;index" json:"student_id"`
	Student   Student   `gorm:"foreignKey:StudentID;references:UserID" json:"-"`

	CompanyID uuid.UUID `gorm:"type:uuid;not null;index" json:"company_id"`
	Company   Company   `gorm:"foreignKey:CompanyID;references:UserID" json:"-"`

	// ApplyID references the accepted application this row was promoted from
	ApplyID uint         `gorm:"not null;uniqueIndex" json:"apply_id"`
	Apply   StudentApply `gorm:"foreignKey:ApplyID;references:ID" json:"-"`

	StartDate time.Time  `gorm:"type:timestamp" json:"start_date"`
	EndDate   *time.Time `gorm:"type:timestamp" json:"end_date,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ApplyStatusPending indicates that the application is waiting for a company decision
	ApplyStatusPending = "pending"
	// ApplyStatusAccepted indicates that the company accepted the application (terminal)
	ApplyStatusAccepted = "accepted"
	// ApplyStatusRejected indicates that the company rejected the application (terminal)
	ApplyStatusRejected = "rejected"
	// ApplyStatusWithdrawn indicates that the student withdrew the application (terminal)
	ApplyStatusWithdrawn = "withdrawn"
)

// StudentApply represents a student application against a company offer.
// Only the pending state is active; every other state is terminal.
type StudentApply struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// StudentID references Student.UserID (uuid)
	StudentID uuid.UUID `gorm:"type:uuid;not null;index" json:"student_id"`
	Student   Student   `gorm:"foreignKey:StudentID;references:UserID" json:"-"`

	// CompanyOfferID references CompanyOffer.ID
	CompanyOfferID uint         `gorm:"not null;index" json:"company_offer_id"`
	CompanyOffer   CompanyOffer `gorm:"foreignKey:CompanyOfferID;references:ID" json:"-"`

	Status  string `gorm:"type:text;check:status IN ('pending', 'accepted', 'rejected', 'withdrawn')" json:"status"`
	Message string `gorm:"type:text" json:"message"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Terminal reports whether the application reached a state no transition
// leaves.
func (a *StudentApply) Terminal() bool {
	return a.Status != ApplyStatusPending
}

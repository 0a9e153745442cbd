package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EditableCompanyInfo is the part of a company profile the company can PATCH
type EditableCompanyInfo struct {
	Name        string  `gorm:"type:text" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Industry    string  `gorm:"type:text" json:"industry"`
	Size        *string `gorm:"type:text" json:"size"`
}

// Company is the profile of a user with the company role
type Company struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	User   User      `gorm:"foreignKey:UserID;references:ID" json:"user"`

	EditableCompanyInfo

	LogoKey string `gorm:"type:text" json:"logo_key"`

	Offers []CompanyOffer `gorm:"foreignKey:CompanyID;references:UserID" json:"offers,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

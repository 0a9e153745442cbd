package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Offer type constants
var (
	OfferTypeStage      = "stage"
	OfferTypeAlternance = "alternance"
)

// Offer status constants. Open offers accept applications, closed ones don't.
var (
	OfferStatusOpen   = "open"
	OfferStatusClosed = "closed"
)

// EditableOfferInfo is the part of an offer the owning company can edit
type EditableOfferInfo struct {
	Title       string         `gorm:"type:text" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Type        string         `gorm:"type:text;check:type IN ('stage', 'alternance')" json:"type"`
	StartDate   time.Time      `gorm:"type:timestamp" json:"start_date"`
	EndDate     *time.Time     `gorm:"type:timestamp" json:"end_date,omitempty"`
	Tags        pq.StringArray `gorm:"type:text[]" json:"tags"`
}

// CompanyOffer is gorm model for store internship offer data in DB
type CompanyOffer struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index;<-:create" json:"company_id"`
	Company   Company   `gorm:"foreignKey:CompanyID;references:UserID" json:"-"`

	EditableOfferInfo
	Status string `gorm:"type:text;check:status IN ('open', 'closed')" json:"status"`

	Skills []Skill `gorm:"many2many:company_offer_skills" json:"skills"`

	Applications []StudentApply `gorm:"foreignKey:CompanyOfferID" json:"applications,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Open reports whether the offer still accepts new applications
func (o *CompanyOffer) Open() bool {
	return o.Status == OfferStatusOpen
}

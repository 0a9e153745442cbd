// Package model contain gorm model for recording data to database
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role constants for User.Role
var (
	RoleStudent = "student"
	RoleCompany = "company"
	RoleSchool  = "school"
	RoleAdmin   = "admin"
)

// ContactInfo holds optional contact fields shared by profile types
type ContactInfo struct {
	Tel   *string `json:"tel"`
	Email *string `json:"email"`
}

// User is the identity account every profile links to. Exactly one profile
// (Student, Company or School) references a User through UserID.
type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username string    `gorm:"uniqueIndex" json:"username"`
	ContactInfo
	Password string `json:"-"`
	GoogleID string `json:"-"`
	Role     string `gorm:"type:text;check:role IN ('student', 'company', 'school', 'admin')" json:"role"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate assigns a fresh uuid when the caller didn't set one.
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// GoogleUserInfo is the shape of the Google userinfo endpoint response
type GoogleUserInfo struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	GivenName string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Picture   string `json:"picture"`
}

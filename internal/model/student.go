package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Student status constants, the kind of placement a student is looking for
var (
	StudentStatusStage      = "stage"
	StudentStatusAlternance = "alternance"
)

// EditableStudentInfo is the part of a student profile the student can PATCH
type EditableStudentInfo struct {
	FirstName   string  `gorm:"type:text" json:"first_name"`
	LastName    string  `gorm:"type:text" json:"last_name"`
	Status      *string `gorm:"type:text;check:status IN ('stage', 'alternance')" json:"status"`
	IsAvailable *bool   `gorm:"type:boolean;default:true" json:"is_available"`
}

// Student is the profile of a user with the student role.
// CVKey and AvatarKey are opaque object-storage keys, never file content.
type Student struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	User   User      `gorm:"foreignKey:UserID;references:ID" json:"user"`

	SchoolID *uuid.UUID `gorm:"type:uuid;index" json:"school_id"`
	School   *School    `gorm:"foreignKey:SchoolID;references:UserID" json:"-"`

	EditableStudentInfo

	CVKey     string `gorm:"type:text" json:"cv_key"`
	AvatarKey string `gorm:"type:text" json:"avatar_key"`

	Skills []Skill `gorm:"many2many:student_skills" json:"skills"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Available reports whether the student should appear in
// "available for placement" queries. Nil defaults to true.
func (s *Student) Available() bool {
	return s.IsAvailable == nil || *s.IsAvailable
}

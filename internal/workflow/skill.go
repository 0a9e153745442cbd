package workflow

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/Student-market-place/StudentMarket-sub001/internal/database"
	"github.com/Student-market-place/StudentMarket-sub001/internal/model"
)

// SkillRegistry owns the flat skill catalog shared by students and offers.
type SkillRegistry struct {
	DB *database.DBinstanceStruct
}

// NewSkillRegistry creates a new instance of SkillRegistry with the provided database connection.
func NewSkillRegistry(db *database.DBinstanceStruct) *SkillRegistry {
	return &SkillRegistry{DB: db}
}

// Create adds a skill. Name matching is case-insensitive against live rows.
func (r *SkillRegistry) Create(ctx context.Context, name string) (*model.Skill, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, Validation("skill name must not be empty")
	}

	var existing model.Skill
	err := r.DB.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateSkillName
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storageErr(err)
	}

	skill := model.Skill{Name: name}
	if err := r.DB.WithContext(ctx).Create(&skill).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateSkillName
		}
		return nil, storageErr(err)
	}
	return &skill, nil
}

// List returns all live skills ordered by name.
func (r *SkillRegistry) List(ctx context.Context) ([]model.Skill, error) {
	var skills []model.Skill
	if err := r.DB.WithContext(ctx).Order("name ASC").Find(&skills).Error; err != nil {
		return nil, storageErr(err)
	}
	return skills, nil
}

// Delete soft-deletes a skill. A skill still referenced by a live student
// or live offer cannot be deleted (chosen policy, see DESIGN.md).
func (r *SkillRegistry) Delete(ctx context.Context, id uint) error {
	var skill model.Skill
	if err := r.DB.WithContext(ctx).First(&skill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSkillNotFound
		}
		return storageErr(err)
	}

	var studentRefs int64
	err := r.DB.WithContext(ctx).Table("student_skills").
		Joins("JOIN students ON students.user_id = student_skills.student_user_id AND students.deleted_at IS NULL").
		Where("student_skills.skill_id = ?", id).
		Count(&studentRefs).Error
	if err != nil {
		return storageErr(err)
	}

	var offerRefs int64
	err = r.DB.WithContext(ctx).Table("company_offer_skills").
		Joins("JOIN company_offers ON company_offers.id = company_offer_skills.company_offer_id AND company_offers.deleted_at IS NULL").
		Where("company_offer_skills.skill_id = ?", id).
		Count(&offerRefs).Error
	if err != nil {
		return storageErr(err)
	}

	if studentRefs > 0 || offerRefs > 0 {
		return ErrSkillInUse
	}

	if err := r.DB.WithContext(ctx).Delete(&skill).Error; err != nil {
		return storageErr(err)
	}
	return nil
}

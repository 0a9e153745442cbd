package workflow

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Student-market-place/StudentMarket-sub001/internal/database"
	"github.com/Student-market-place/StudentMarket-sub001/internal/model"
)

// HistoryReview serves placement history and the reviews derived from it.
// History rows themselves are created by ApplicationWorkflow.Decide; nothing
// here ever writes one.
type HistoryReview struct {
	DB *database.DBinstanceStruct
}

// NewHistoryReview creates a new instance of HistoryReview with the provided database connection.
func NewHistoryReview(db *database.DBinstanceStruct) *HistoryReview {
	return &HistoryReview{DB: db}
}

// ListHistoryForStudent returns a student's placements, newest first.
func (h *HistoryReview) ListHistoryForStudent(ctx context.Context, studentID uuid.UUID) ([]model.StudentHistory, error) {
	var history []model.StudentHistory
	err := h.DB.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at DESC, id DESC").
		Find(&history).Error
	if err != nil {
		return nil, storageErr(err)
	}
	return history, nil
}

// CreateReview attaches a rating to the oldest not-yet-reviewed placement of
// the (student, company) pair. One review per history entry: a student
// placed twice at the same company can submit two reviews, never three.
func (h *HistoryReview) CreateReview(ctx context.Context, studentID, companyID uuid.UUID, rating int, comment string) (*model.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, Validation("rating must be between 1 and 5")
	}

	var history []model.StudentHistory
	err := h.DB.WithContext(ctx).
		Where("student_id = ? AND company_id = ?", studentID, companyID).
		Order("created_at ASC, id ASC").
		Find(&history).Error
	if err != nil {
		return nil, storageErr(err)
	}
	if len(history) == 0 {
		return nil, ErrNoHistory
	}

	var target *model.StudentHistory
	for i := range history {
		var count int64
		err := h.DB.WithContext(ctx).Model(&model.Review{}).
			Where("history_id = ?", history[i].ID).
			Count(&count).Error
		if err != nil {
			return nil, storageErr(err)
		}
		if count == 0 {
			target = &history[i]
			break
		}
	}
	if target == nil {
		return nil, ErrAlreadyReviewed
	}

	review := model.Review{
		StudentID: studentID,
		CompanyID: companyID,
		HistoryID: target.ID,
		Rating:    rating,
		Comment:   comment,
	}
	if err := h.DB.WithContext(ctx).Create(&review).Error; err != nil {
		// the unique index on history_id closes the create race
		if isUniqueViolation(err) {
			return nil, ErrAlreadyReviewed
		}
		return nil, storageErr(err)
	}
	return &review, nil
}

// GetReview returns one live review.
func (h *HistoryReview) GetReview(ctx context.Context, reviewID uint) (*model.Review, error) {
	var review model.Review
	if err := h.DB.WithContext(ctx).First(&review, reviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &Error{Class: ClassNotFound, Code: "review_not_found", Message: "review not found"}
		}
		return nil, storageErr(err)
	}
	return &review, nil
}

// ListReviewsForCompany returns a company's live reviews, newest first.
func (h *HistoryReview) ListReviewsForCompany(ctx context.Context, companyID uuid.UUID, page Page) ([]model.Review, error) {
	var reviews []model.Review
	q := h.DB.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at DESC, id DESC")
	if err := page.apply(q).Find(&reviews).Error; err != nil {
		return nil, storageErr(err)
	}
	return reviews, nil
}

// AverageRating aggregates all live reviews for the company. A company with
// no reviews averages 0, not an error, so display code stays total.
func (h *HistoryReview) AverageRating(ctx context.Context, companyID uuid.UUID) (float64, error) {
	var avg float64
	err := h.DB.WithContext(ctx).Model(&model.Review{}).
		Where("company_id = ?", companyID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error
	if err != nil {
		return 0, storageErr(err)
	}
	return avg, nil
}

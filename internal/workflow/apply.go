package workflow

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Student-market-place/StudentMarket-sub001/internal/database"
	"github.com/Student-market-place/StudentMarket-sub001/internal/model"
)

// AutoRejectCompetingOnAccept names the seat policy: offers are multi-seat,
// accepting one application never touches competing pending applications.
// Flipping this would make acceptance single-seat.
const AutoRejectCompetingOnAccept = false

// ApplicationWorkflow owns the StudentApply state machine:
//
//	pending -> accepted | rejected   (company decision)
//	pending -> withdrawn             (student initiated)
//
// Every non-pending state is terminal. StudentApply rows are mutated by
// this component only.
type ApplicationWorkflow struct {
	DB       *database.DBinstanceStruct
	Notifier Notifier
}

// NewApplicationWorkflow creates a new instance of ApplicationWorkflow with the
// provided database connection and event notifier.
func NewApplicationWorkflow(db *database.DBinstanceStruct, notifier Notifier) *ApplicationWorkflow {
	return &ApplicationWorkflow{DB: db, Notifier: notifier}
}

// Apply submits a student application against an open offer and emits an
// application.submitted event.
//
// The duplicate pre-check below is a courtesy for the common path; the
// partial unique index on (student_id, company_offer_id) for pending rows
// is what makes concurrent submissions race-free.
func (w *ApplicationWorkflow) Apply(ctx context.Context, studentID uuid.UUID, offerID uint, message string) (*model.StudentApply, error) {

	var student model.Student
	if err := w.DB.WithContext(ctx).First(&student, "user_id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, storageErr(err)
	}
	if !student.Available() {
		return nil, ErrStudentUnavailable
	}

	var offer model.CompanyOffer
	if err := w.DB.WithContext(ctx).First(&offer, offerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, storageErr(err)
	}
	if !offer.Open() {
		return nil, ErrOfferClosed
	}

	var existing model.StudentApply
	err := w.DB.WithContext(ctx).
		Where("student_id = ? AND company_offer_id = ? AND status = ?",
			studentID, offerID, model.ApplyStatusPending).
		First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateApplication
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storageErr(err)
	}

	apply := model.StudentApply{
		StudentID:      studentID,
		CompanyOfferID: offerID,
		Status:         model.ApplyStatusPending,
		Message:        message,
	}
	if err := w.DB.WithContext(ctx).Create(&apply).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateApplication
		}
		return nil, storageErr(err)
	}

	emit(ctx, w.Notifier, Event{
		Type:      EventApplicationSubmitted,
		ApplyID:   apply.ID,
		StudentID: studentID,
		OfferID:   offerID,
		CompanyID: offer.CompanyID,
	})

	return &apply, nil
}

// Decide moves a pending application to accepted or rejected. Acceptance
// promotes the application to a StudentHistory row in the same transaction:
// both happen or neither does. Competing pending applications for the same
// offer are untouched (AutoRejectCompetingOnAccept).
func (w *ApplicationWorkflow) Decide(ctx context.Context, applyID uint, outcome string) (*model.StudentApply, error) {
	if outcome != model.ApplyStatusAccepted && outcome != model.ApplyStatusRejected {
		return nil, Validation("decision outcome must be %q or %q",
			model.ApplyStatusAccepted, model.ApplyStatusRejected)
	}

	var apply model.StudentApply
	err := w.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("CompanyOffer").First(&apply, applyID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrApplicationNotFound
			}
			return storageErr(err)
		}
		if apply.Terminal() {
			return ErrInvalidTransition
		}

		// Guarded update: losing a decide race surfaces as zero rows, not a
		// double transition.
		res := tx.Model(&model.StudentApply{}).
			Where("id = ? AND status = ?", applyID, model.ApplyStatusPending).
			Update("status", outcome)
		if res.Error != nil {
			return storageErr(res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrInvalidTransition
		}
		apply.Status = outcome

		if outcome != model.ApplyStatusAccepted {
			return nil
		}

		var count int64
		if err := tx.Model(&model.StudentHistory{}).Where("apply_id = ?", applyID).Count(&count).Error; err != nil {
			return storageErr(err)
		}
		if count > 0 {
			return Fatal("application %d already has a history record", applyID)
		}

		history := model.StudentHistory{
			StudentID: apply.StudentID,
			CompanyID: apply.CompanyOffer.CompanyID,
			ApplyID:   applyID,
			StartDate: apply.CompanyOffer.StartDate,
			EndDate:   apply.CompanyOffer.EndDate,
		}
		if err := tx.Create(&history).Error; err != nil {
			return storageErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	eventType := EventApplicationRejected
	if outcome == model.ApplyStatusAccepted {
		eventType = EventApplicationAccepted
	}
	emit(ctx, w.Notifier, Event{
		Type:      eventType,
		ApplyID:   apply.ID,
		StudentID: apply.StudentID,
		OfferID:   apply.CompanyOfferID,
		CompanyID: apply.CompanyOffer.CompanyID,
	})

	return &apply, nil
}

// Withdraw moves a pending application to withdrawn, student initiated.
func (w *ApplicationWorkflow) Withdraw(ctx context.Context, applyID uint) (*model.StudentApply, error) {
	var apply model.StudentApply
	if err := w.DB.WithContext(ctx).Preload("CompanyOffer").First(&apply, applyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, storageErr(err)
	}
	if apply.Terminal() {
		return nil, ErrInvalidTransition
	}

	res := w.DB.WithContext(ctx).Model(&model.StudentApply{}).
		Where("id = ? AND status = ?", applyID, model.ApplyStatusPending).
		Update("status", model.ApplyStatusWithdrawn)
	if res.Error != nil {
		return nil, storageErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrInvalidTransition
	}
	apply.Status = model.ApplyStatusWithdrawn

	emit(ctx, w.Notifier, Event{
		Type:      EventApplicationWithdrawn,
		ApplyID:   apply.ID,
		StudentID: apply.StudentID,
		OfferID:   apply.CompanyOfferID,
		CompanyID: apply.CompanyOffer.CompanyID,
	})

	return &apply, nil
}

// Page bounds a listing; restarting the sequence is re-issuing the query.
type Page struct {
	Limit  int
	Offset int
}

func (p Page) apply(q *gorm.DB) *gorm.DB {
	limit := p.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return q.Limit(limit).Offset(p.Offset)
}

// ListForStudent returns a student's applications, newest first.
func (w *ApplicationWorkflow) ListForStudent(ctx context.Context, studentID uuid.UUID, page Page) ([]model.StudentApply, error) {
	var applies []model.StudentApply
	q := w.DB.WithContext(ctx).Preload("CompanyOffer").
		Where("student_id = ?", studentID).
		Order("created_at DESC, id DESC")
	if err := page.apply(q).Find(&applies).Error; err != nil {
		return nil, storageErr(err)
	}
	return applies, nil
}

// ListForOffer returns an offer's applications, newest first.
func (w *ApplicationWorkflow) ListForOffer(ctx context.Context, offerID uint, page Page) ([]model.StudentApply, error) {
	var applies []model.StudentApply
	q := w.DB.WithContext(ctx).Preload("Student").
		Where("company_offer_id = ?", offerID).
		Order("created_at DESC, id DESC")
	if err := page.apply(q).Find(&applies).Error; err != nil {
		return nil, storageErr(err)
	}
	return applies, nil
}

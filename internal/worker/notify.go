// Package worker consumes queued application events and turns them into
// notifications for the affected student and company.
package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/hibiken/asynq"
	"gorm.io/gorm"

	"github.com/Student-market-place/StudentMarket-sub001/internal/database"
	"github.com/Student-market-place/StudentMarket-sub001/internal/model"
	"github.com/Student-market-place/StudentMarket-sub001/internal/tasks"
)

// NotificationHandler resolves the entities referenced by an application
// event and emits the notification. Actual delivery channels (email,
// in-app) hang off this point; for now every notification is logged.
type NotificationHandler struct {
	DB *database.DBinstanceStruct
}

// NewNotificationHandler creates a handler bound to the given database.
func NewNotificationHandler(db *database.DBinstanceStruct) *NotificationHandler {
	return &NotificationHandler{DB: db}
}

// RegisterHandlers attaches one handler per application event type.
func RegisterHandlers(mux *asynq.ServeMux, db *database.DBinstanceStruct) {
	h := NewNotificationHandler(db)
	mux.HandleFunc(tasks.TypeApplicationSubmitted, h.ProcessTask)
	mux.HandleFunc(tasks.TypeApplicationAccepted, h.ProcessTask)
	mux.HandleFunc(tasks.TypeApplicationRejected, h.ProcessTask)
	mux.HandleFunc(tasks.TypeApplicationWithdrawn, h.ProcessTask)
}

// ProcessTask implements asynq.Handler for every application event type.
func (h *NotificationHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload tasks.ApplicationEventPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		// A payload that never parses will never parse on retry either.
		return fmt.Errorf("unmarshal %s payload: %v: %w", t.Type(), err, asynq.SkipRetry)
	}

	var student model.Student
	if err := h.DB.WithContext(ctx).Preload("User").
		Where("user_id = ?", payload.StudentID).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("notify %s: student %s no longer exists, dropping", t.Type(), payload.StudentID)
			return nil
		}
		return fmt.Errorf("load student %s: %w", payload.StudentID, err)
	}

	var offer model.CompanyOffer
	if err := h.DB.WithContext(ctx).Unscoped().
		Where("id = ?", payload.OfferID).First(&offer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("notify %s: offer %d no longer exists, dropping", t.Type(), payload.OfferID)
			return nil
		}
		return fmt.Errorf("load offer %d: %w", payload.OfferID, err)
	}

	var company model.Company
	if err := h.DB.WithContext(ctx).Preload("User").
		Where("user_id = ?", payload.CompanyID).First(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("notify %s: company %s no longer exists, dropping", t.Type(), payload.CompanyID)
			return nil
		}
		return fmt.Errorf("load company %s: %w", payload.CompanyID, err)
	}

	log.Printf("notification %s: %s %s / offer %q at %s (application %d)",
		t.Type(), student.FirstName, student.LastName, offer.Title, company.Name, payload.ApplyID)
	return nil
}

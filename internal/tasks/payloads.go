// Package tasks defines the queue task types shared by the API (producer)
// and the notification worker (consumer).
package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// Task type constants, keep producer and consumer in sync.
const (
	TypeApplicationSubmitted = "notify:application_submitted"
	TypeApplicationAccepted  = "notify:application_accepted"
	TypeApplicationRejected  = "notify:application_rejected"
	TypeApplicationWithdrawn = "notify:application_withdrawn"
)

// ApplicationEventPayload carries the identifiers a subscriber needs to
// build a notification. Delivery (email, in-app) is entirely the
// worker's concern.
type ApplicationEventPayload struct {
	ApplyID   uint   `json:"apply_id"`
	StudentID string `json:"student_id"`
	OfferID   uint   `json:"offer_id"`
	CompanyID string `json:"company_id"`
}

// NewApplicationEventTask builds a task of the given type for an
// application lifecycle event.
func NewApplicationEventTask(taskType string, p ApplicationEventPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(taskType, payload), nil
}

package workflow

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/Student-market-place/StudentMarket-sub001/internal/tasks"
)

// Event types emitted by the application workflow.
const (
	EventApplicationSubmitted = "application.submitted"
	EventApplicationAccepted  = "application.accepted"
	EventApplicationRejected  = "application.rejected"
	EventApplicationWithdrawn = "application.withdrawn"
)

// Event is a domain event describing an application state transition.
type Event struct {
	Type       string
	ApplyID    uint
	StudentID  uuid.UUID
	OfferID    uint
	CompanyID  uuid.UUID
	OccurredAt time.Time
}

// Notifier receives domain events. Delivery is the subscriber's problem;
// the workflow never blocks on or retries it.
type Notifier interface {
	Notify(ctx context.Context, ev Event) error
}

// LogNotifier writes events to the process log. Default when no queue is
// configured, and handy in tests.
type LogNotifier struct{}

// Notify logs the event.
func (LogNotifier) Notify(_ context.Context, ev Event) error {
	log.Printf("event %s apply=%d student=%s offer=%d company=%s",
		ev.Type, ev.ApplyID, ev.StudentID, ev.OfferID, ev.CompanyID)
	return nil
}

// QueueNotifier enqueues events as asynq tasks for the notification worker.
type QueueNotifier struct {
	client *asynq.Client
}

// NewQueueNotifier wraps an asynq client.
func NewQueueNotifier(client *asynq.Client) *QueueNotifier {
	return &QueueNotifier{client: client}
}

var eventTaskTypes = map[string]string{
	EventApplicationSubmitted: tasks.TypeApplicationSubmitted,
	EventApplicationAccepted:  tasks.TypeApplicationAccepted,
	EventApplicationRejected:  tasks.TypeApplicationRejected,
	EventApplicationWithdrawn: tasks.TypeApplicationWithdrawn,
}

// Notify enqueues the matching task type.
func (n *QueueNotifier) Notify(ctx context.Context, ev Event) error {
	taskType, ok := eventTaskTypes[ev.Type]
	if !ok {
		return nil
	}
	task, err := tasks.NewApplicationEventTask(taskType, tasks.ApplicationEventPayload{
		ApplyID:   ev.ApplyID,
		StudentID: ev.StudentID.String(),
		OfferID:   ev.OfferID,
		CompanyID: ev.CompanyID.String(),
	})
	if err != nil {
		return err
	}
	_, err = n.client.EnqueueContext(ctx, task)
	return err
}

// emit pushes an event to the notifier. Enqueue failures are logged and
// dropped: a state transition already committed must not fail because a
// subscriber is down.
func emit(ctx context.Context, n Notifier, ev Event) {
	if n == nil {
		n = LogNotifier{}
	}
	ev.OccurredAt = time.Now()
	if err := n.Notify(ctx, ev); err != nil {
		log.Printf("failed to publish %s event for application %d: %v", ev.Type, ev.ApplyID, err)
	}
}

package workflow

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Student-market-place/StudentMarket-sub001/internal/database"
	"github.com/Student-market-place/StudentMarket-sub001/internal/model"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	var err error
	testDB, err = database.GetTestDB()
	if err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

// recordNotifier captures emitted events for assertions.
type recordNotifier struct {
	mu     sync.Mutex
	events []Event
}

func (r *recordNotifier) Notify(_ context.Context, ev Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return nil
}

func (r *recordNotifier) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Type)
	}
	return out
}

// newTestOffer creates a fresh open offer owned by the given company so each
// test gets its own (student, offer) pairs.
func newTestOffer(t *testing.T, companyID uuid.UUID, skillIDs ...uint) *model.CompanyOffer {
	t.Helper()
	lifecycle := NewOfferLifecycle(testDB)
	offer, err := lifecycle.Create(context.Background(), CreateOfferInput{
		CompanyID:   companyID,
		Title:       "Offer for " + t.Name(),
		Description: "A test placement",
		Type:        model.OfferTypeStage,
		StartDate:   time.Now().Add(48 * time.Hour),
		SkillIDs:    skillIDs,
	})
	if err != nil {
		t.Fatalf("failed to create test offer: %v", err)
	}
	return offer
}

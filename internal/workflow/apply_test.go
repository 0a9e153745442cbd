package workflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Student-market-place/StudentMarket-sub001/internal/database"
	"github.com/Student-market-place/StudentMarket-sub001/internal/model"
)

func TestApply_Success(t *testing.T) {
	notifier := &recordNotifier{}
	wf := NewApplicationWorkflow(testDB, notifier)
	offer := newTestOffer(t, database.TestCompany1.UserID)

	apply, err := wf.Apply(context.Background(), database.TestStudent1.UserID, offer.ID, "hello")
	assert.NoError(t, err)
	assert.Equal(t, model.ApplyStatusPending, apply.Status)
	assert.Equal(t, "hello", apply.Message)
	assert.Contains(t, notifier.types(), EventApplicationSubmitted)
}

func TestApply_DuplicateYieldsOnePendingRecord(t *testing.T) {
	wf := NewApplicationWorkflow(testDB, LogNotifier{})
	offer := newTestOffer(t, database.TestCompany1.UserID)

	_, err := wf.Apply(context.Background(), database.TestStudent1.UserID, offer.ID, "first")
	assert.NoError(t, err)

	_, err = wf.Apply(context.Background(), database.TestStudent1.UserID, offer.ID, "second")
	assert.ErrorIs(t, err, ErrDuplicateApplication)

	var count int64
	assert.NoError(t, testDB.Model(&model.StudentApply{}).
		Where("student_id = ? AND company_offer_id = ? AND status = ?",
			database.TestStudent1.UserID, offer.ID, model.ApplyStatusPending).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestApply_ClosedOffer(t *testing.T) {
	wf := NewApplicationWorkflow(testDB, LogNotifier{})
	offer := newTestOffer(t, database.TestCompany2.UserID)
	_, err := NewOfferLifecycle(testDB).Close(context.Background(), offer.ID)
	assert.NoError(t, err)

	_, err = wf.Apply(context.Background(), database.TestStudent1.UserID, offer.ID, "too late")
	assert.ErrorIs(t, err, ErrOfferClosed)

	// no row was created
	var count int64
	assert.NoError(t, testDB.Model(&model.StudentApply{}).
		Where("company_offer_id = ?", offer.ID).
		Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestApply_UnavailableStudent(t *testing.T) {
	wf := NewApplicationWorkflow(testDB, LogNotifier{})
	offer := newTestOffer(t, database.TestCompany1.UserID)

	unavailable := false
	assert.NoError(t, testDB.Model(&model.Student{}).
		Where("user_id = ?", database.TestStudent2.UserID).
		Update("is_available", &unavailable).Error)
	t.Cleanup(func() {
		available := true
		testDB.Model(&model.Student{}).
			Where("user_id = ?", database.TestStudent2.UserID).
			Update("is_available", &available)
	})

	_, err := wf.Apply(context.Background(), database.TestStudent2.UserID, offer.ID, "")
	assert.ErrorIs(t, err, ErrStudentUnavailable)
}

func TestApply_UnknownStudentOrOffer(t *testing.T) {
	wf := NewApplicationWorkflow(testDB, LogNotifier{})
	offer := newTestOffer(t, database.TestCompany1.UserID)

	_, err := wf.Apply(context.Background(), database.TestUserCompany1.ID, offer.ID, "")
	assert.ErrorIs(t, err, ErrStudentNotFound)

	_, err = wf.Apply(context.Background(), database.TestStudent1.UserID, 999999, "")
	assert.ErrorIs(t, err, ErrOfferNotFound)
}

func TestDecide_AcceptedCreatesExactlyOneHistory(t *testing.T) {
	notifier := &recordNotifier{}
	wf := NewApplicationWorkflow(testDB, notifier)
	offer := newTestOffer(t, database.TestCompany1.UserID)

	apply, err := wf.Apply(context.Background(), database.TestStudent1.UserID, offer.ID, "")
	assert.NoError(t, err)

	decided, err := wf.Decide(context.Background(), apply.ID, model.ApplyStatusAccepted)
	assert.NoError(t, err)
	assert.Equal(t, model.ApplyStatusAccepted, decided.Status)
	assert.Contains(t, notifier.types(), EventApplicationAccepted)

	var histories []model.StudentHistory
	assert.NoError(t, testDB.Where("apply_id = ?", apply.ID).Find(&histories).Error)
	if assert.Len(t, histories, 1) {
		assert.Equal(t, database.TestStudent1.UserID, histories[0].StudentID)
		assert.Equal(t, database.TestCompany1.UserID, histories[0].CompanyID)
		assert.Nil(t, histories[0].EndDate)
	}
}

func TestDecide_RejectedLeavesNoHistory(t *testing.T) {
	wf := NewApplicationWorkflow(testDB, LogNotifier{})
	offer := newTestOffer(t, database.TestCompany1.UserID)

	apply, err := wf.Apply(context.Background(), database.TestStudent1.UserID, offer.ID, "")
	assert.NoError(t, err)

	decided, err := wf.Decide(context.Background(), apply.ID, model.ApplyStatusRejected)
	assert.NoError(t, err)
	assert.Equal(t, model.ApplyStatusRejected, decided.Status)

	var count int64
	assert.NoError(t, testDB.Model(&model.StudentHistory{}).
		Where("apply_id = ?", apply.ID).
		Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestDecide_TerminalStatesAreAbsorbing(t *testing.T) {
	wf := NewApplicationWorkflow(testDB, LogNotifier{})
	offer := newTestOffer(t, database.TestCompany1.UserID)

	apply, err := wf.Apply(context.Background(), database.TestStudent1.UserID, offer.ID, "")
	assert.NoError(t, err)

	_, err = wf.Decide(context.Background(), apply.ID, model.ApplyStatusAccepted)
	assert.NoError(t, err)

	_, err = wf.Decide(context.Background(), apply.ID, model.ApplyStatusRejected)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = wf.Decide(context.Background(), apply.ID, model.ApplyStatusAccepted)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = wf.Withdraw(context.Background(), apply.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestDecide_InvalidOutcome(t *testing.T) {
	wf := NewApplicationWorkflow(testDB, LogNotifier{})

	_, err := wf.Decide(context.Background(), 1, "maybe")
	assert.Equal(t, ClassValidation, classOf(t, err))
}

func TestDecide_MultiSeatLeavesCompetitorsPending(t *testing.T) {
	wf := NewApplicationWorkflow(testDB, LogNotifier{})
	offer := newTestOffer(t, database.TestCompany1.UserID)

	first, err := wf.Apply(context.Background(), database.TestStudent1.UserID, offer.ID, "")
	assert.NoError(t, err)
	second, err := wf.Apply(context.Background(), database.TestStudent2.UserID, offer.ID, "")
	assert.NoError(t, err)

	_, err = wf.Decide(context.Background(), first.ID, model.ApplyStatusAccepted)
	assert.NoError(t, err)

	var competitor model.StudentApply
	assert.NoError(t, testDB.First(&competitor, second.ID).Error)
	assert.Equal(t, model.ApplyStatusPending, competitor.Status, "accepting one application must not touch competitors")

	// the competitor stays independently decidable
	_, err = wf.Decide(context.Background(), second.ID, model.ApplyStatusAccepted)
	assert.NoError(t, err)
}

func TestWithdraw_PendingOnly(t *testing.T) {
	notifier := &recordNotifier{}
	wf := NewApplicationWorkflow(testDB, notifier)
	offer := newTestOffer(t, database.TestCompany1.UserID)

	apply, err := wf.Apply(context.Background(), database.TestStudent1.UserID, offer.ID, "")
	assert.NoError(t, err)

	withdrawn, err := wf.Withdraw(context.Background(), apply.ID)
	assert.NoError(t, err)
	assert.Equal(t, model.ApplyStatusWithdrawn, withdrawn.Status)
	assert.Contains(t, notifier.types(), EventApplicationWithdrawn)

	_, err = wf.Withdraw(context.Background(), apply.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// a withdrawn application frees the pair for a fresh submission
	again, err := wf.Apply(context.Background(), database.TestStudent1.UserID, offer.ID, "retry")
	assert.NoError(t, err)
	assert.Equal(t, model.ApplyStatusPending, again.Status)
}

func TestWithdraw_Missing(t *testing.T) {
	wf := NewApplicationWorkflow(testDB, LogNotifier{})

	_, err := wf.Withdraw(context.Background(), 999999)
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}

func TestListForStudentAndOffer_NewestFirst(t *testing.T) {
	wf := NewApplicationWorkflow(testDB, LogNotifier{})
	offerA := newTestOffer(t, database.TestCompany1.UserID)
	offerB := newTestOffer(t, database.TestCompany1.UserID)

	first, err := wf.Apply(context.Background(), database.TestStudent2.UserID, offerA.ID, "")
	assert.NoError(t, err)
	second, err := wf.Apply(context.Background(), database.TestStudent2.UserID, offerB.ID, "")
	assert.NoError(t, err)

	byStudent, err := wf.ListForStudent(context.Background(), database.TestStudent2.UserID, Page{Limit: 2})
	assert.NoError(t, err)
	if assert.Len(t, byStudent, 2) {
		assert.Equal(t, second.ID, byStudent[0].ID)
		assert.Equal(t, first.ID, byStudent[1].ID)
	}

	byOffer, err := wf.ListForOffer(context.Background(), offerA.ID, Page{})
	assert.NoError(t, err)
	if assert.Len(t, byOffer, 1) {
		assert.Equal(t, first.ID, byOffer[0].ID)
	}
}

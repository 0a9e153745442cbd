package workflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Student-market-place/StudentMarket-sub001/internal/database"
	"github.com/Student-market-place/StudentMarket-sub001/internal/model"
)

func TestCreateReview_NoHistory(t *testing.T) {
	hr := NewHistoryReview(testDB)

	// TestStudent1 has no placement at TestCompany2
	_, err := hr.CreateReview(context.Background(),
		database.TestStudent1.UserID, database.TestCompany2.UserID, 4, "fine")
	assert.ErrorIs(t, err, ErrNoHistory)
}

func TestCreateReview_RatingBounds(t *testing.T) {
	hr := NewHistoryReview(testDB)

	for _, rating := range []int{0, 6, -1} {
		_, err := hr.CreateReview(context.Background(),
			database.TestStudent1.UserID, database.TestCompany1.UserID, rating, "")
		assert.Equal(t, ClassValidation, classOf(t, err))
	}
}

// Full scenario: apply, accept, review, aggregate.
func TestPlacementScenario_ApplyAcceptReviewAverage(t *testing.T) {
	wf := NewApplicationWorkflow(testDB, LogNotifier{})
	hr := NewHistoryReview(testDB)

	offer := newTestOffer(t, database.TestCompany2.UserID, database.TestSkillSQL.ID)

	apply, err := wf.Apply(context.Background(), database.TestStudent1.UserID, offer.ID, "motivated")
	assert.NoError(t, err)
	assert.Equal(t, model.ApplyStatusPending, apply.Status)

	_, err = wf.Decide(context.Background(), apply.ID, model.ApplyStatusAccepted)
	assert.NoError(t, err)

	review, err := hr.CreateReview(context.Background(),
		database.TestStudent1.UserID, database.TestCompany2.UserID, 5, "Great team")
	assert.NoError(t, err)
	assert.Equal(t, 5, review.Rating)

	avg, err := hr.AverageRating(context.Background(), database.TestCompany2.UserID)
	assert.NoError(t, err)
	assert.Equal(t, 5.0, avg)
}

func TestCreateReview_OnePerHistoryEntry(t *testing.T) {
	wf := NewApplicationWorkflow(testDB, LogNotifier{})
	hr := NewHistoryReview(testDB)
	ctx := context.Background()

	// first placement of student 2 at company 2
	offerA := newTestOffer(t, database.TestCompany2.UserID)
	applyA, err := wf.Apply(ctx, database.TestStudent2.UserID, offerA.ID, "")
	assert.NoError(t, err)
	_, err = wf.Decide(ctx, applyA.ID, model.ApplyStatusAccepted)
	assert.NoError(t, err)

	_, err = hr.CreateReview(ctx, database.TestStudent2.UserID, database.TestCompany2.UserID, 4, "solid")
	assert.NoError(t, err)

	// a second review without a second placement is refused
	_, err = hr.CreateReview(ctx, database.TestStudent2.UserID, database.TestCompany2.UserID, 3, "again")
	assert.ErrorIs(t, err, ErrAlreadyReviewed)

	// a second placement re-opens exactly one review slot
	offerB := newTestOffer(t, database.TestCompany2.UserID)
	applyB, err := wf.Apply(ctx, database.TestStudent2.UserID, offerB.ID, "")
	assert.NoError(t, err)
	_, err = wf.Decide(ctx, applyB.ID, model.ApplyStatusAccepted)
	assert.NoError(t, err)

	_, err = hr.CreateReview(ctx, database.TestStudent2.UserID, database.TestCompany2.UserID, 2, "rougher this time")
	assert.NoError(t, err)

	_, err = hr.CreateReview(ctx, database.TestStudent2.UserID, database.TestCompany2.UserID, 1, "third")
	assert.ErrorIs(t, err, ErrAlreadyReviewed)
}

func TestAverageRating_NoReviewsIsZero(t *testing.T) {
	hr := NewHistoryReview(testDB)

	avg, err := hr.AverageRating(context.Background(), database.TestUserSchool1.ID)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, avg)
}

func TestListHistoryAndReviews(t *testing.T) {
	wf := NewApplicationWorkflow(testDB, LogNotifier{})
	hr := NewHistoryReview(testDB)
	ctx := context.Background()

	offer := newTestOffer(t, database.TestCompany1.UserID)
	apply, err := wf.Apply(ctx, database.TestStudent2.UserID, offer.ID, "")
	assert.NoError(t, err)
	_, err = wf.Decide(ctx, apply.ID, model.ApplyStatusAccepted)
	assert.NoError(t, err)

	history, err := hr.ListHistoryForStudent(ctx, database.TestStudent2.UserID)
	assert.NoError(t, err)
	assert.NotEmpty(t, history)
	assert.Equal(t, apply.ID, history[0].ApplyID)

	_, err = hr.CreateReview(ctx, database.TestStudent2.UserID, database.TestCompany1.UserID, 3, "ok")
	assert.NoError(t, err)

	reviews, err := hr.ListReviewsForCompany(ctx, database.TestCompany1.UserID, Page{})
	assert.NoError(t, err)
	assert.NotEmpty(t, reviews)
}

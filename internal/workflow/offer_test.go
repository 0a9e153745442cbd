package workflow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Student-market-place/StudentMarket-sub001/internal/database"
	"github.com/Student-market-place/StudentMarket-sub001/internal/model"
)

func TestOfferLifecycle_CreateValidation(t *testing.T) {
	lifecycle := NewOfferLifecycle(testDB)
	start := time.Now().Add(48 * time.Hour)

	cases := []struct {
		name string
		in   CreateOfferInput
	}{
		{"empty title", CreateOfferInput{
			CompanyID: database.TestCompany1.UserID, Description: "d",
			Type: model.OfferTypeStage, StartDate: start,
		}},
		{"empty description", CreateOfferInput{
			CompanyID: database.TestCompany1.UserID, Title: "t",
			Type: model.OfferTypeStage, StartDate: start,
		}},
		{"bad type", CreateOfferInput{
			CompanyID: database.TestCompany1.UserID, Title: "t", Description: "d",
			Type: "internship", StartDate: start,
		}},
		{"past start date", CreateOfferInput{
			CompanyID: database.TestCompany1.UserID, Title: "t", Description: "d",
			Type: model.OfferTypeStage, StartDate: time.Now().AddDate(0, 0, -2),
		}},
		{"unresolved skill", CreateOfferInput{
			CompanyID: database.TestCompany1.UserID, Title: "t", Description: "d",
			Type: model.OfferTypeStage, StartDate: start, SkillIDs: []uint{999999},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := lifecycle.Create(context.Background(), tc.in)
			assert.Equal(t, ClassValidation, classOf(t, err))
		})
	}
}

func TestOfferLifecycle_SameDayStartAccepted(t *testing.T) {
	lifecycle := NewOfferLifecycle(testDB)

	// midnight today in a zone well ahead of UTC is still today
	y, m, d := time.Now().Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.FixedZone("UTC+13", 13*3600))

	offer, err := lifecycle.Create(context.Background(), CreateOfferInput{
		CompanyID:   database.TestCompany1.UserID,
		Title:       "Summer internship",
		Description: "starts today",
		Type:        model.OfferTypeStage,
		StartDate:   start,
	})
	assert.NoError(t, err)
	assert.Equal(t, model.OfferStatusOpen, offer.Status)
}

func TestOfferLifecycle_CreateUnknownCompany(t *testing.T) {
	lifecycle := NewOfferLifecycle(testDB)

	_, err := lifecycle.Create(context.Background(), CreateOfferInput{
		CompanyID:   database.TestUserStudent1.ID, // a student, not a company
		Title:       "t",
		Description: "d",
		Type:        model.OfferTypeStage,
		StartDate:   time.Now().Add(48 * time.Hour),
	})
	assert.ErrorIs(t, err, ErrCompanyNotFound)
}

func TestOfferLifecycle_CreateOpensWithSkills(t *testing.T) {
	offer := newTestOffer(t, database.TestCompany1.UserID, database.TestSkillGo.ID)

	assert.Equal(t, model.OfferStatusOpen, offer.Status)

	fetched, err := NewOfferLifecycle(testDB).Get(context.Background(), offer.ID)
	assert.NoError(t, err)
	if assert.Len(t, fetched.Skills, 1) {
		assert.Equal(t, "Go", fetched.Skills[0].Name)
	}

	// the join rows must reference the generated offer id
	var linked int64
	testDB.Table("company_offer_skills").Where("company_offer_id = ?", offer.ID).Count(&linked)
	assert.Equal(t, int64(1), linked)
}

func TestOfferLifecycle_CloseIsIdempotent(t *testing.T) {
	lifecycle := NewOfferLifecycle(testDB)
	offer := newTestOffer(t, database.TestCompany1.UserID)

	closed, err := lifecycle.Close(context.Background(), offer.ID)
	assert.NoError(t, err)
	assert.Equal(t, model.OfferStatusClosed, closed.Status)

	// second close is a no-op, not an error
	closed, err = lifecycle.Close(context.Background(), offer.ID)
	assert.NoError(t, err)
	assert.Equal(t, model.OfferStatusClosed, closed.Status)
}

func TestOfferLifecycle_CloseMissing(t *testing.T) {
	lifecycle := NewOfferLifecycle(testDB)

	_, err := lifecycle.Close(context.Background(), 999999)
	assert.ErrorIs(t, err, ErrOfferNotFound)
}

func TestOfferLifecycle_ListFilters(t *testing.T) {
	lifecycle := NewOfferLifecycle(testDB)

	open, err := lifecycle.List(context.Background(), ListOffersOptions{
		Status: model.OfferStatusOpen,
	})
	assert.NoError(t, err)
	for _, o := range open {
		assert.Equal(t, model.OfferStatusOpen, o.Status)
	}

	alternance, err := lifecycle.List(context.Background(), ListOffersOptions{
		Type: model.OfferTypeAlternance,
	})
	assert.NoError(t, err)
	for _, o := range alternance {
		assert.Equal(t, model.OfferTypeAlternance, o.Type)
	}

	bySkill, err := lifecycle.List(context.Background(), ListOffersOptions{
		SkillIDs: []uint{database.TestSkillReact.ID},
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, bySkill)
	ids := make([]uint, 0, len(bySkill))
	for _, o := range bySkill {
		ids = append(ids, o.ID)
	}
	assert.Contains(t, ids, database.TestOffer3.ID)
	assert.NotContains(t, ids, database.TestOffer2.ID)
}

func TestOfferLifecycle_DeleteCascadeWithdrawsPending(t *testing.T) {
	lifecycle := NewOfferLifecycle(testDB)
	wf := NewApplicationWorkflow(testDB, LogNotifier{})
	offer := newTestOffer(t, database.TestCompany1.UserID)

	apply, err := wf.Apply(context.Background(), database.TestStudent1.UserID, offer.ID, "interested")
	assert.NoError(t, err)

	assert.NoError(t, lifecycle.Delete(context.Background(), offer.ID))

	// offer is invisible to queries afterwards
	_, err = lifecycle.Get(context.Background(), offer.ID)
	assert.ErrorIs(t, err, ErrOfferNotFound)

	// its pending application was withdrawn, not orphaned
	var after model.StudentApply
	assert.NoError(t, testDB.First(&after, apply.ID).Error)
	assert.Equal(t, model.ApplyStatusWithdrawn, after.Status)
}

package application

import (
	"net/http"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Student-market-place/StudentMarket-sub001/internal/auth"
	"github.com/Student-market-place/StudentMarket-sub001/internal/database"
	"github.com/Student-market-place/StudentMarket-sub001/internal/middleware"
	"github.com/Student-market-place/StudentMarket-sub001/internal/model"
	"github.com/Student-market-place/StudentMarket-sub001/internal/testutil"
	"github.com/Student-market-place/StudentMarket-sub001/internal/workflow"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	auth.SECRET_KEY = "application-test-secret"

	var err error
	testDB, err = database.GetTestDB()
	if err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func applicationEngine() *gin.Engine {
	r := gin.New()
	ac := NewApplicationController(testDB, workflow.LogNotifier{})
	r.Use(middleware.RequireAuth(testDB))
	r.POST("/offers/:id/apply", middleware.CheckRole(model.RoleStudent), ac.ApplyHandler)
	r.GET("/offers/:id/applications", middleware.CheckRole(model.RoleCompany, model.RoleAdmin), ac.GetOfferApplicationsHandler)
	r.GET("/applications/me", middleware.CheckRole(model.RoleStudent), ac.GetMyApplicationsHandler)
	r.POST("/applications/:id/decision", middleware.CheckRole(model.RoleCompany, model.RoleAdmin), ac.DecideHandler)
	r.POST("/applications/:id/withdraw", middleware.CheckRole(model.RoleStudent, model.RoleAdmin), ac.WithdrawHandler)
	return r
}

func token(t *testing.T, user model.User) string {
	t.Helper()
	tok, err := auth.GetAccessToken(t, testDB, user.Username, database.TestSeedPassword)
	assert.NoError(t, err)
	return tok
}

// newTestOffer inserts a fresh open offer so tests don't fight over the
// one-pending-application-per-offer rule.
func newTestOffer(t *testing.T, companyID uuid.UUID) model.CompanyOffer {
	t.Helper()
	offer := model.CompanyOffer{
		CompanyID: companyID,
		EditableOfferInfo: model.EditableOfferInfo{
			Title:       "Offer " + t.Name(),
			Description: "test offer",
			Type:        model.OfferTypeStage,
			StartDate:   time.Now().AddDate(0, 1, 0),
		},
		Status: model.OfferStatusOpen,
	}
	if err := testDB.Create(&offer).Error; err != nil {
		t.Fatalf("failed to create offer: %v", err)
	}
	return offer
}

func applyPath(offerID uint) string {
	return "/offers/" + strconv.FormatUint(uint64(offerID), 10) + "/apply"
}

func TestApplyHandler_Success(t *testing.T) {
	r := applicationEngine()
	offer := newTestOffer(t, database.TestCompany1.UserID)

	rec, resp := testutil.MakeJSONRequest(gin.H{"message": "please hire me"},
		token(t, database.TestUserStudent1), r, applyPath(offer.ID), http.MethodPost)

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, model.ApplyStatusPending, resp["status"])
	assert.Equal(t, "please hire me", resp["message"])
}

func TestApplyHandler_Duplicate(t *testing.T) {
	r := applicationEngine()
	offer := newTestOffer(t, database.TestCompany1.UserID)
	studentToken := token(t, database.TestUserStudent1)

	rec, _ := testutil.MakeJSONRequest(nil, studentToken, r, applyPath(offer.ID), http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec, resp := testutil.MakeJSONRequest(nil, studentToken, r, applyPath(offer.ID), http.MethodPost)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, resp["error"], "already exists")
}

func TestApplyHandler_ClosedOffer(t *testing.T) {
	r := applicationEngine()

	rec, _ := testutil.MakeJSONRequest(nil, token(t, database.TestUserStudent1), r,
		applyPath(database.TestOffer2.ID), http.MethodPost)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestApplyHandler_CompanyForbidden(t *testing.T) {
	r := applicationEngine()
	offer := newTestOffer(t, database.TestCompany1.UserID)

	rec, _ := testutil.MakeJSONRequest(nil, token(t, database.TestUserCompany1), r, applyPath(offer.ID), http.MethodPost)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDecideHandler_AcceptCreatesHistory(t *testing.T) {
	r := applicationEngine()
	offer := newTestOffer(t, database.TestCompany1.UserID)

	rec, created := testutil.MakeJSONRequest(nil, token(t, database.TestUserStudent1), r, applyPath(offer.ID), http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)
	applyID := strconv.FormatUint(uint64(created["id"].(float64)), 10)

	rec, resp := testutil.MakeJSONRequest(gin.H{"outcome": "accepted"},
		token(t, database.TestUserCompany1), r, "/applications/"+applyID+"/decision", http.MethodPost)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, model.ApplyStatusAccepted, resp["status"])

	var count int64
	testDB.Model(&model.StudentHistory{}).Where("apply_id = ?", created["id"].(float64)).Count(&count)
	assert.Equal(t, int64(1), count)

	// Deciding twice conflicts
	rec, _ = testutil.MakeJSONRequest(gin.H{"outcome": "rejected"},
		token(t, database.TestUserCompany1), r, "/applications/"+applyID+"/decision", http.MethodPost)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDecideHandler_WrongCompany(t *testing.T) {
	r := applicationEngine()
	offer := newTestOffer(t, database.TestCompany1.UserID)

	rec, created := testutil.MakeJSONRequest(nil, token(t, database.TestUserStudent2), r, applyPath(offer.ID), http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)
	applyID := strconv.FormatUint(uint64(created["id"].(float64)), 10)

	rec, _ = testutil.MakeJSONRequest(gin.H{"outcome": "accepted"},
		token(t, database.TestUserCompany2), r, "/applications/"+applyID+"/decision", http.MethodPost)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDecideHandler_InvalidOutcome(t *testing.T) {
	r := applicationEngine()
	offer := newTestOffer(t, database.TestCompany1.UserID)

	rec, created := testutil.MakeJSONRequest(nil, token(t, database.TestUserStudent1), r, applyPath(offer.ID), http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)
	applyID := strconv.FormatUint(uint64(created["id"].(float64)), 10)

	rec, _ = testutil.MakeJSONRequest(gin.H{"outcome": "maybe"},
		token(t, database.TestUserCompany1), r, "/applications/"+applyID+"/decision", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWithdrawHandler(t *testing.T) {
	r := applicationEngine()
	offer := newTestOffer(t, database.TestCompany1.UserID)
	studentToken := token(t, database.TestUserStudent1)

	rec, created := testutil.MakeJSONRequest(nil, studentToken, r, applyPath(offer.ID), http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)
	applyID := strconv.FormatUint(uint64(created["id"].(float64)), 10)

	// Another student cannot withdraw it
	rec, _ = testutil.MakeJSONRequest(nil, token(t, database.TestUserStudent2), r,
		"/applications/"+applyID+"/withdraw", http.MethodPost)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, resp := testutil.MakeJSONRequest(nil, studentToken, r, "/applications/"+applyID+"/withdraw", http.MethodPost)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, model.ApplyStatusWithdrawn, resp["status"])

	// Withdrawing frees the slot for a new application
	rec, _ = testutil.MakeJSONRequest(nil, studentToken, r, applyPath(offer.ID), http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestGetMyApplicationsHandler(t *testing.T) {
	r := applicationEngine()
	offer := newTestOffer(t, database.TestCompany1.UserID)
	studentToken := token(t, database.TestUserStudent2)

	rec, _ := testutil.MakeJSONRequest(nil, studentToken, r, applyPath(offer.ID), http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec, applies := testutil.MakeListRequest(studentToken, r, "/applications/me")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.GreaterOrEqual(t, len(applies), 1)

	first := applies[0].(map[string]interface{})
	assert.Equal(t, database.TestUserStudent2.ID.String(), first["student_id"])
}

func TestGetOfferApplicationsHandler_Ownership(t *testing.T) {
	r := applicationEngine()
	offer := newTestOffer(t, database.TestCompany1.UserID)

	rec, _ := testutil.MakeJSONRequest(nil, token(t, database.TestUserStudent1), r, applyPath(offer.ID), http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)

	path := "/offers/" + strconv.FormatUint(uint64(offer.ID), 10) + "/applications"

	rec, _ = testutil.MakeJSONRequest(nil, token(t, database.TestUserCompany2), r, path, http.MethodGet)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, applies := testutil.MakeListRequest(token(t, database.TestUserCompany1), r, path)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, applies, 1)
}

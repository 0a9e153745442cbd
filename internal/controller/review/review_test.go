package review

import (
	"context"
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
	auth.SECRET_KEY = "review-test-secret"

	var err error
	testDB, err = database.GetTestDB()
	if err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func reviewEngine() *gin.Engine {
	r := gin.New()
	rc := NewReviewController(testDB)
	r.Use(middleware.RequireAuth(testDB))
	r.GET("/students/me/history", middleware.CheckRole(model.RoleStudent), rc.GetMyHistoryHandler)
	r.GET("/students/:id/history", rc.GetStudentHistoryHandler)
	r.POST("/reviews", middleware.CheckRole(model.RoleStudent), rc.CreateReviewHandler)
	r.GET("/reviews/:id", rc.GetReviewHandler)
	r.GET("/company/:id/reviews", rc.GetCompanyReviewsHandler)
	return r
}

func token(t *testing.T, user model.User) string {
	t.Helper()
	tok, err := auth.GetAccessToken(t, testDB, user.Username, database.TestSeedPassword)
	assert.NoError(t, err)
	return tok
}

// placeStudent runs a full apply-and-accept cycle against a fresh offer so the
// student ends up with a placement history entry at the company.
func placeStudent(t *testing.T, studentID, companyID uuid.UUID) model.StudentHistory {
	t.Helper()
	ctx := context.Background()
	wf := workflow.NewApplicationWorkflow(testDB, workflow.LogNotifier{})

	offer := model.CompanyOffer{
		CompanyID: companyID,
		EditableOfferInfo: model.EditableOfferInfo{
			Title:     "Placement " + t.Name(),
			Type:      model.OfferTypeStage,
			StartDate: time.Now().AddDate(0, 1, 0),
		},
		Status: model.OfferStatusOpen,
	}
	if err := testDB.Create(&offer).Error; err != nil {
		t.Fatalf("failed to create offer: %v", err)
	}

	apply, err := wf.Apply(ctx, studentID, offer.ID, "")
	if err != nil {
		t.Fatalf("failed to apply: %v", err)
	}
	if _, err := wf.Decide(ctx, apply.ID, model.ApplyStatusAccepted); err != nil {
		t.Fatalf("failed to accept: %v", err)
	}

	var history model.StudentHistory
	if err := testDB.First(&history, "apply_id = ?", apply.ID).Error; err != nil {
		t.Fatalf("no history row after acceptance: %v", err)
	}
	return history
}

// newCompany inserts a company user with a profile, no login needed.
func newCompany(t *testing.T, username string) model.Company {
	t.Helper()
	user := model.User{ID: uuid.New(), Username: username, Role: model.RoleCompany}
	if err := testDB.Create(&user).Error; err != nil {
		t.Fatalf("failed to create company user: %v", err)
	}
	company := model.Company{
		UserID:              user.ID,
		EditableCompanyInfo: model.EditableCompanyInfo{Name: username, Industry: "Testing"},
	}
	if err := testDB.Create(&company).Error; err != nil {
		t.Fatalf("failed to create company profile: %v", err)
	}
	return company
}

func TestGetStudentHistoryHandler_Visibility(t *testing.T) {
	r := reviewEngine()
	placeStudent(t, database.TestUserStudent1.ID, database.TestCompany1.UserID)
	path := "/students/" + database.TestUserStudent1.ID.String() + "/history"

	// The student themselves
	rec, history := testutil.MakeListRequest(token(t, database.TestUserStudent1), r, path)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.GreaterOrEqual(t, len(history), 1)

	// School users can audit any student
	rec, _ = testutil.MakeListRequest(token(t, database.TestUserSchool1), r, path)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Another student cannot
	rec2, resp := testutil.MakeJSONRequest(nil, token(t, database.TestUserStudent2), r, path, http.MethodGet)
	assert.Equal(t, http.StatusForbidden, rec2.Code)
	assert.Contains(t, resp["error"], "Not allowed")
}

func TestGetMyHistoryHandler(t *testing.T) {
	r := reviewEngine()
	entry := placeStudent(t, database.TestUserStudent1.ID, database.TestCompany1.UserID)

	rec, history := testutil.MakeListRequest(token(t, database.TestUserStudent1), r, "/students/me/history")
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.GreaterOrEqual(t, len(history), 1)

	found := false
	for _, raw := range history {
		h := raw.(map[string]interface{})
		if uint(h["id"].(float64)) == entry.ID {
			found = true
			assert.Equal(t, database.TestUserStudent1.ID.String(), h["student_id"])
		}
	}
	assert.True(t, found, "placed entry missing from my history")
}

func TestCreateReviewHandler_FullFlow(t *testing.T) {
	r := reviewEngine()
	placeStudent(t, database.TestUserStudent2.ID, database.TestCompany2.UserID)
	studentToken := token(t, database.TestUserStudent2)
	companyID := database.TestCompany2.UserID.String()

	rec, created := testutil.MakeJSONRequest(gin.H{
		"company_id": companyID,
		"rating":     5,
		"comment":    "great mentoring",
	}, studentToken, r, "/reviews", http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, float64(5), created["rating"])

	// The single placement is consumed, a second review conflicts
	rec, resp := testutil.MakeJSONRequest(gin.H{"company_id": companyID, "rating": 4},
		studentToken, r, "/reviews", http.MethodPost)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, resp["error"], "already been reviewed")

	// The created review can be fetched back
	reviewID := strconv.FormatUint(uint64(created["id"].(float64)), 10)
	rec, fetched := testutil.MakeJSONRequest(nil, studentToken, r, "/reviews/"+reviewID, http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "great mentoring", fetched["comment"])
}

func TestCreateReviewHandler_NoPlacement(t *testing.T) {
	r := reviewEngine()

	// student 2 never worked at company 1
	rec, resp := testutil.MakeJSONRequest(gin.H{
		"company_id": database.TestCompany1.UserID.String(),
		"rating":     3,
	}, token(t, database.TestUserStudent2), r, "/reviews", http.MethodPost)

	assert.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())
	assert.Contains(t, resp["error"], "no placement history")
}

func TestCreateReviewHandler_RatingOutOfRange(t *testing.T) {
	r := reviewEngine()
	studentToken := token(t, database.TestUserStudent1)

	rec, _ := testutil.MakeJSONRequest(gin.H{
		"company_id": database.TestCompany1.UserID.String(),
		"rating":     6,
	}, studentToken, r, "/reviews", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = testutil.MakeJSONRequest(gin.H{
		"company_id": "not-a-uuid",
		"rating":     3,
	}, studentToken, r, "/reviews", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetReviewHandler_NotFound(t *testing.T) {
	r := reviewEngine()

	rec, _ := testutil.MakeJSONRequest(nil, token(t, database.TestUserStudent1), r, "/reviews/999999", http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetCompanyReviewsHandler_Average(t *testing.T) {
	r := reviewEngine()
	company := newCompany(t, "average_rating_co")
	studentToken := token(t, database.TestUserStudent1)

	// Two placements, two reviews
	placeStudent(t, database.TestUserStudent1.ID, company.UserID)
	placeStudent(t, database.TestUserStudent1.ID, company.UserID)

	for _, rating := range []int{5, 3} {
		rec, _ := testutil.MakeJSONRequest(gin.H{
			"company_id": company.UserID.String(),
			"rating":     rating,
		}, studentToken, r, "/reviews", http.MethodPost)
		assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec, resp := testutil.MakeJSONRequest(nil, studentToken, r,
		"/company/"+company.UserID.String()+"/reviews", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	reviews := resp["reviews"].([]interface{})
	assert.Len(t, reviews, 2)
	assert.InDelta(t, 4.0, resp["average_rating"].(float64), 0.001)
}

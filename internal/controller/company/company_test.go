package company

import (
	"net/http"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Student-market-place/StudentMarket-sub001/internal/auth"
	"github.com/Student-market-place/StudentMarket-sub001/internal/database"
	"github.com/Student-market-place/StudentMarket-sub001/internal/middleware"
	"github.com/Student-market-place/StudentMarket-sub001/internal/model"
	"github.com/Student-market-place/StudentMarket-sub001/internal/testutil"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	auth.SECRET_KEY = "company-test-secret"

	var err error
	testDB, err = database.GetTestDB()
	if err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func companyEngine() *gin.Engine {
	r := gin.New()
	cc := NewCompanyController(testDB, nil)
	r.Use(middleware.RequireAuth(testDB))
	r.GET("/company", cc.GetCompanies)
	r.GET("/company/myprofile", middleware.CheckRole(model.RoleCompany), cc.GetMyCompanyProfile)
	r.PATCH("/company/profile", middleware.CheckRole(model.RoleCompany), cc.EditCompanyProfile)
	r.POST("/company/logo", middleware.CheckRole(model.RoleCompany), cc.UploadLogo)
	r.GET("/company/:id", cc.GetCompanyByID)
	return r
}

func token(t *testing.T, user model.User) string {
	t.Helper()
	tok, err := auth.GetAccessToken(t, testDB, user.Username, database.TestSeedPassword)
	assert.NoError(t, err)
	return tok
}

func TestGetMyCompanyProfile(t *testing.T) {
	r := companyEngine()

	rec, resp := testutil.MakeJSONRequest(nil, token(t, database.TestUserCompany1), r, "/company/myprofile", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "TechNova", resp["name"])
	assert.Equal(t, database.TestUserCompany1.ID.String(), resp["user_id"])
}

func TestGetCompanyByID_OnlyOpenOffers(t *testing.T) {
	r := companyEngine()

	rec, resp := testutil.MakeJSONRequest(nil, token(t, database.TestUserStudent1), r,
		"/company/"+database.TestCompany2.UserID.String(), http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "DataForge", resp["name"])
	// company 2 only has a closed offer seeded, it must not leak
	if offers, ok := resp["offers"].([]interface{}); ok {
		for _, raw := range offers {
			o := raw.(map[string]interface{})
			assert.Equal(t, model.OfferStatusOpen, o["status"])
		}
	}
}

func TestGetCompanyByID_NotFound(t *testing.T) {
	r := companyEngine()

	rec, _ := testutil.MakeJSONRequest(nil, token(t, database.TestUserStudent1), r,
		"/company/00000000-0000-0000-0000-000000000999", http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetCompanies_IndustryFilter(t *testing.T) {
	r := companyEngine()
	studentToken := token(t, database.TestUserStudent1)

	rec, companies := testutil.MakeListRequest(studentToken, r, "/company")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.GreaterOrEqual(t, len(companies), 2)

	rec, companies = testutil.MakeListRequest(studentToken, r, "/company?industry=soft")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, companies, 1)
	assert.Equal(t, "TechNova", companies[0].(map[string]interface{})["name"])

	rec, companies = testutil.MakeListRequest(studentToken, r, "/company?industry=aerospace")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, companies)
}

func TestEditCompanyProfile_Merge(t *testing.T) {
	r := companyEngine()
	companyToken := token(t, database.TestUserCompany2)

	rec, resp := testutil.MakeJSONRequest(gin.H{"description": "Data consulting for everyone"},
		companyToken, r, "/company/profile", http.MethodPatch)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Data consulting for everyone", resp["description"])
	// Fields absent from the patch keep their value
	assert.Equal(t, "DataForge", resp["name"])
	assert.Equal(t, "Consulting", resp["industry"])
}

func TestEditCompanyProfile_UnknownField(t *testing.T) {
	r := companyEngine()

	rec, _ := testutil.MakeJSONRequest(gin.H{"stock_ticker": "DF"},
		token(t, database.TestUserCompany2), r, "/company/profile", http.MethodPatch)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEditCompanyProfile_StudentForbidden(t *testing.T) {
	r := companyEngine()

	rec, _ := testutil.MakeJSONRequest(gin.H{"name": "Hacked"},
		token(t, database.TestUserStudent1), r, "/company/profile", http.MethodPatch)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUploadLogo_StorageNotConfigured(t *testing.T) {
	r := companyEngine()

	rec, resp := testutil.MakeJSONRequest(nil, token(t, database.TestUserCompany1), r, "/company/logo", http.MethodPost)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, resp["error"], "storage not configured")
}

package skill

import (
	"net/http"
	"os"
	"strconv"
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
	auth.SECRET_KEY = "skill-test-secret"

	var err error
	testDB, err = database.GetTestDB()
	if err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func skillEngine() *gin.Engine {
	r := gin.New()
	sc := NewSkillController(testDB)
	r.GET("/skills", middleware.RequireAuth(testDB), sc.GetSkillsHandler)
	r.POST("/skills", middleware.RequireAuth(testDB), middleware.CheckRole(model.RoleAdmin), sc.CreateSkillHandler)
	r.DELETE("/skills/:id", middleware.RequireAuth(testDB), middleware.CheckRole(model.RoleAdmin), sc.DeleteSkillHandler)
	return r
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := auth.GetAccessToken(t, testDB, database.TestAdminUser.Username, database.TestSeedPassword)
	assert.NoError(t, err)
	return token
}

func TestCreateSkillHandler_Success(t *testing.T) {
	r := skillEngine()

	rec, resp := testutil.MakeJSONRequest(gin.H{"name": "Terraform"}, adminToken(t), r, "/skills", http.MethodPost)

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "Terraform", resp["name"])
}

func TestCreateSkillHandler_Duplicate(t *testing.T) {
	r := skillEngine()
	token := adminToken(t)

	rec, _ := testutil.MakeJSONRequest(gin.H{"name": "Kubernetes"}, token, r, "/skills", http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec, resp := testutil.MakeJSONRequest(gin.H{"name": "kubernetes"}, token, r, "/skills", http.MethodPost)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, resp["error"], "already exists")
}

func TestCreateSkillHandler_NonAdminForbidden(t *testing.T) {
	r := skillEngine()
	studentToken, err := auth.GetAccessToken(t, testDB, database.TestUserStudent1.Username, database.TestSeedPassword)
	assert.NoError(t, err)

	rec, _ := testutil.MakeJSONRequest(gin.H{"name": "Rust"}, studentToken, r, "/skills", http.MethodPost)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetSkillsHandler(t *testing.T) {
	r := skillEngine()
	studentToken, err := auth.GetAccessToken(t, testDB, database.TestUserStudent1.Username, database.TestSeedPassword)
	assert.NoError(t, err)

	rec, skills := testutil.MakeListRequest(studentToken, r, "/skills")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.GreaterOrEqual(t, len(skills), 3)
}

func TestDeleteSkillHandler_InUse(t *testing.T) {
	r := skillEngine()

	rec, resp := testutil.MakeJSONRequest(nil, adminToken(t), r,
		"/skills/"+uintStr(database.TestSkillGo.ID), http.MethodDelete)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, resp["error"], "still referenced")
}

func TestDeleteSkillHandler_Unused(t *testing.T) {
	r := skillEngine()
	token := adminToken(t)

	rec, resp := testutil.MakeJSONRequest(gin.H{"name": "COBOL"}, token, r, "/skills", http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)
	id := uint(resp["id"].(float64))

	rec, _ = testutil.MakeJSONRequest(nil, token, r, "/skills/"+uintStr(id), http.MethodDelete)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = testutil.MakeJSONRequest(nil, token, r, "/skills/"+uintStr(id), http.MethodDelete)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func uintStr(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

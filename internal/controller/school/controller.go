// Package school provides HTTP handlers for school profiles.
package school

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Student-market-place/StudentMarket-sub001/internal/database"
	"github.com/Student-market-place/StudentMarket-sub001/internal/model"
	"github.com/Student-market-place/StudentMarket-sub001/internal/utilities"
)

// SchoolController handles school profile endpoints
type SchoolController struct {
	DB *database.DBinstanceStruct
}

// NewSchoolController creates a new instance of SchoolController
func NewSchoolController(db *database.DBinstanceStruct) *SchoolController {
	return &SchoolController{DB: db}
}

type editSchoolProfile struct {
	Name   *string `json:"name"`
	Domain *string `json:"domain"`
}

// GetMySchoolProfile retrieves the calling school's profile.
// @Summary Retrieve my school profile
// @Tags School
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} model.School
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /school/myprofile [get]
func (sc *SchoolController) GetMySchoolProfile(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}
	sc.respondWithSchool(c, user.ID)
}

// GetSchoolByID retrieves one school profile.
// @Summary Retrieve a school profile by user id
// @Tags School
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "School user ID (uuid)"
// @Success 200 {object} model.School
// @Failure 404 {object} utilities.ErrorResponse "Unknown school"
// @Router /school/{id} [get]
func (sc *SchoolController) GetSchoolByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid school id"})
		return
	}
	sc.respondWithSchool(c, id)
}

func (sc *SchoolController) respondWithSchool(c *gin.Context, id uuid.UUID) {
	var school model.School
	err := sc.DB.Preload("User").Where("user_id = ?", id.String()).First(&school).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "School not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve school information: %s", err.Error()),
		})
		return
	}
	c.JSON(http.StatusOK, school)
}

// GetSchools lists school profiles ordered by name.
// @Summary List schools
// @Tags School
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {array} model.School
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /school [get]
func (sc *SchoolController) GetSchools(c *gin.Context) {
	var schools []model.School
	if err := sc.DB.Preload("User").Order("name ASC").Find(&schools).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve schools: %s", err.Error()),
		})
		return
	}
	c.JSON(http.StatusOK, schools)
}

// EditSchoolProfile merges the provided fields into the calling school's
// profile. Absent fields keep their value.
// @Summary Edit my school profile
// @Tags School
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param school_profile body editSchoolProfile true "Fields to overwrite"
// @Success 200 {object} model.School "Updated profile"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Router /school/profile [patch]
func (sc *SchoolController) EditSchoolProfile(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var school model.School
	if err := sc.DB.Where("user_id = ?", user.ID.String()).First(&school).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve school information: %s", err.Error()),
		})
		return
	}

	edited := editSchoolProfile{}
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&edited); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	if edited.Name != nil {
		school.Name = *edited.Name
	}
	if edited.Domain != nil {
		school.Domain = *edited.Domain
	}

	if err := sc.DB.Save(&school).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to update school information: %s", err.Error()),
		})
		return
	}
	sc.respondWithSchool(c, user.ID)
}

// GetMyStudents lists the students enrolled at the calling school.
// @Summary List my school's students
// @Tags School
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {array} model.Student
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /school/students [get]
func (sc *SchoolController) GetMyStudents(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var students []model.Student
	err = sc.DB.Preload("User").Preload("Skills").
		Where("school_id = ?", user.ID.String()).
		Order("last_name ASC, first_name ASC").
		Find(&students).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve students: %s", err.Error()),
		})
		return
	}
	c.JSON(http.StatusOK, students)
}

// Package student provides HTTP handlers for student profiles.
package student

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Student-market-place/StudentMarket-sub001/internal/database"
	"github.com/Student-market-place/StudentMarket-sub001/internal/model"
	"github.com/Student-market-place/StudentMarket-sub001/internal/storage"
	"github.com/Student-market-place/StudentMarket-sub001/internal/utilities"
)

const (
	cvObjectPrefix     = "cv/"
	avatarObjectPrefix = "avatar/"

	presignValidity = 15 * time.Minute
)

// StudentController handles student profile endpoints
type StudentController struct {
	DB      *database.DBinstanceStruct
	Storage *storage.Client
}

// NewStudentController creates a new instance of StudentController.
// Storage may be nil when no object store is configured; upload and
// download endpoints then answer 503.
func NewStudentController(db *database.DBinstanceStruct, st *storage.Client) *StudentController {
	return &StudentController{DB: db, Storage: st}
}

type editStudentProfile struct {
	model.EditableStudentInfo
	SkillIDs *[]uint `json:"skill_ids"`
}

// GetMyProfile retrieves the calling student's profile.
// @Summary Retrieve my student profile
// @Tags Student
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} model.Student "Profile with skills"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /student/myprofile [get]
func (sc *StudentController) GetMyProfile(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}
	sc.respondWithStudent(c, user.ID)
}

// GetStudentByID retrieves one student profile.
// @Summary Retrieve a student profile by user id
// @Tags Student
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "Student user ID (uuid)"
// @Success 200 {object} model.Student "Profile with skills"
// @Failure 404 {object} utilities.ErrorResponse "Unknown student"
// @Router /student/{id} [get]
func (sc *StudentController) GetStudentByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid student id"})
		return
	}
	sc.respondWithStudent(c, id)
}

func (sc *StudentController) respondWithStudent(c *gin.Context, id uuid.UUID) {
	var student model.Student
	err := sc.DB.Preload("User").Preload("Skills").
		Where("user_id = ?", id.String()).First(&student).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Student not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve student information: %s", err.Error()),
		})
		return
	}
	c.JSON(http.StatusOK, student)
}

// EditStudentProfile merges the provided fields into the calling student's
// profile. Absent fields keep their value; skill_ids, when present,
// replaces the whole skill set.
// @Summary Edit my student profile
// @Tags Student
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param student_profile body editStudentProfile true "Fields to overwrite"
// @Success 200 {object} model.Student "Updated profile"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Failure 404 {object} utilities.ErrorResponse "Unknown skill referenced"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /student/profile [patch]
func (sc *StudentController) EditStudentProfile(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var student model.Student
	if err := sc.DB.Preload("User").Where("user_id = ?", user.ID.String()).First(&student).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve student information: %s", err.Error()),
		})
		return
	}

	edited := editStudentProfile{}
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&edited); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	if edited.Status != nil &&
		*edited.Status != model.StudentStatusStage && *edited.Status != model.StudentStatusAlternance {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Status must be %q or %q", model.StudentStatusStage, model.StudentStatusAlternance),
		})
		return
	}

	utilities.MergeNonEmpty(&student.EditableStudentInfo, &edited.EditableStudentInfo)

	var newSkills []model.Skill
	if edited.SkillIDs != nil {
		if err := sc.DB.Where("id IN ?", *edited.SkillIDs).Find(&newSkills).Error; err != nil {
			c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
				Error: fmt.Sprintf("Failed to resolve skills: %s", err.Error()),
			})
			return
		}
		if len(newSkills) != len(*edited.SkillIDs) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Unknown skill referenced"})
			return
		}
	}

	err = sc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&student).Error; err != nil {
			return err
		}
		if edited.SkillIDs != nil {
			return tx.Model(&student).Association("Skills").Replace(newSkills)
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to update student information: %s", err.Error()),
		})
		return
	}

	sc.respondWithStudent(c, user.ID)
}

// GetAvailableStudents lists students open for a placement.
// @Summary List available students
// @Description Company, school and admin users. skill filters on skill name, exact match case-insensitive.
// @Tags Student
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param status query string false "stage or alternance"
// @Param skill query string false "Skill name the student must have"
// @Success 200 {array} model.Student "Available students"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /student/available [get]
func (sc *StudentController) GetAvailableStudents(c *gin.Context) {
	q := sc.DB.Preload("User").Preload("Skills").Model(&model.Student{}).
		Where("is_available = ? OR is_available IS NULL", true)

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if skill := c.Query("skill"); skill != "" {
		q = q.Where(
			"user_id IN (SELECT student_user_id FROM student_skills WHERE skill_id IN (SELECT id FROM skills WHERE LOWER(name) = LOWER(?)))",
			skill,
		)
	}

	var students []model.Student
	if err := q.Order("created_at DESC").Find(&students).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve students: %s", err.Error()),
		})
		return
	}
	c.JSON(http.StatusOK, students)
}

// UploadCV stores the student's CV in the object store.
// @Summary Upload my CV
// @Description PDF only. Replaces any previous CV.
// @Tags Student
// @Accept mpfd
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param cv formData file true "CV file (.pdf)"
// @Success 200 {object} model.Student "Profile with the new cv_key"
// @Failure 413 {object} utilities.ErrorResponse "File too large"
// @Failure 415 {object} utilities.ErrorResponse "Not a PDF"
// @Failure 503 {object} utilities.ErrorResponse "Object storage not configured"
// @Router /student/cv [post]
func (sc *StudentController) UploadCV(c *gin.Context) {
	sc.uploadObject(c, "cv", cvObjectPrefix, []string{".pdf"}, func(s *model.Student, key string) {
		s.CVKey = key
	})
}

// UploadAvatar stores the student's avatar image.
// @Summary Upload my avatar
// @Tags Student
// @Accept mpfd
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param avatar formData file true "Avatar image (.png, .jpg, .jpeg)"
// @Success 200 {object} model.Student "Profile with the new avatar_key"
// @Failure 413 {object} utilities.ErrorResponse "File too large"
// @Failure 415 {object} utilities.ErrorResponse "Unsupported image type"
// @Failure 503 {object} utilities.ErrorResponse "Object storage not configured"
// @Router /student/avatar [post]
func (sc *StudentController) UploadAvatar(c *gin.Context) {
	sc.uploadObject(c, "avatar", avatarObjectPrefix, []string{".png", ".jpg", ".jpeg"}, func(s *model.Student, key string) {
		s.AvatarKey = key
	})
}

// GetCVLink returns a short-lived download link for a student's CV.
// @Summary Get a CV download link
// @Description The student themselves, company, school and admin users.
// @Tags Student
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "Student user ID (uuid)"
// @Success 200 {object} object{url=string} "Presigned URL, valid 15 minutes"
// @Failure 404 {object} utilities.ErrorResponse "Unknown student or no CV uploaded"
// @Failure 503 {object} utilities.ErrorResponse "Object storage not configured"
// @Router /student/{id}/cv [get]
func (sc *StudentController) GetCVLink(c *gin.Context) {
	if sc.Storage == nil {
		c.JSON(http.StatusServiceUnavailable, utilities.ErrorResponse{Error: "Object storage not configured"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid student id"})
		return
	}

	var student model.Student
	if err := sc.DB.Where("user_id = ?", id.String()).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Student not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve student information: %s", err.Error()),
		})
		return
	}
	if student.CVKey == "" {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "No CV uploaded"})
		return
	}

	url, err := sc.Storage.PresignedGet(c.Request.Context(), student.CVKey, presignValidity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to generate download link: %s", err.Error()),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (sc *StudentController) uploadObject(
	c *gin.Context,
	field string,
	prefix string,
	allowedExt []string,
	setKey func(*model.Student, string),
) {
	if sc.Storage == nil {
		c.JSON(http.StatusServiceUnavailable, utilities.ErrorResponse{Error: "Object storage not configured"})
		return
	}

	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var student model.Student
	if err := sc.DB.Where("user_id = ?", user.ID.String()).First(&student).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve student information: %s", err.Error()),
		})
		return
	}

	rawFile, err := c.FormFile(field)
	var maxBytesError *http.MaxBytesError
	if errors.As(err, &maxBytesError) {
		c.JSON(http.StatusRequestEntityTooLarge, utilities.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve file: %s", err.Error()),
		})
		return
	}

	extension := strings.ToLower(filepath.Ext(rawFile.Filename))
	if !extAllowed(extension, allowedExt) {
		c.JSON(http.StatusUnsupportedMediaType, utilities.ErrorResponse{
			Error: fmt.Sprintf("Unsupported file extension: %s", extension),
		})
		return
	}

	f, err := rawFile.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Cannot open file"})
		return
	}
	defer func() { _ = f.Close() }()

	key := prefix + user.ID.String() + extension
	contentType := rawFile.Header.Get("Content-Type")
	if _, err := sc.Storage.Upload(c.Request.Context(), key, f, rawFile.Size, contentType); err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to store file: %s", err.Error()),
		})
		return
	}

	setKey(&student, key)
	if err := sc.DB.Save(&student).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to update student information: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, student)
}

func extAllowed(ext string, allowed []string) bool {
	for _, a := range allowed {
		if ext == a {
			return true
		}
	}
	return false
}

// Package company provides HTTP handlers for company profiles.
package company

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Student-market-place/StudentMarket-sub001/internal/database"
	"github.com/Student-market-place/StudentMarket-sub001/internal/model"
	"github.com/Student-market-place/StudentMarket-sub001/internal/storage"
	"github.com/Student-market-place/StudentMarket-sub001/internal/utilities"
)

const logoObjectPrefix = "logo/"

// CompanyController handles company profile endpoints
type CompanyController struct {
	DB      *database.DBinstanceStruct
	Storage *storage.Client
}

// NewCompanyController creates a new instance of CompanyController.
// Storage may be nil; the logo endpoint then answers 503.
func NewCompanyController(db *database.DBinstanceStruct, st *storage.Client) *CompanyController {
	return &CompanyController{DB: db, Storage: st}
}

// GetMyCompanyProfile retrieves the calling company's profile.
// @Summary Retrieve my company profile
// @Tags Company
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} model.Company "Profile with open offers"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /company/myprofile [get]
func (cc *CompanyController) GetMyCompanyProfile(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}
	cc.respondWithCompany(c, user.ID)
}

// GetCompanyByID retrieves one company profile.
// @Summary Retrieve a company profile by user id
// @Tags Company
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "Company user ID (uuid)"
// @Success 200 {object} model.Company "Profile with open offers"
// @Failure 404 {object} utilities.ErrorResponse "Unknown company"
// @Router /company/{id} [get]
func (cc *CompanyController) GetCompanyByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid company id"})
		return
	}
	cc.respondWithCompany(c, id)
}

func (cc *CompanyController) respondWithCompany(c *gin.Context, id uuid.UUID) {
	var company model.Company
	err := cc.DB.Preload("User").
		Preload("Offers", "status = ?", model.OfferStatusOpen).
		Where("user_id = ?", id.String()).First(&company).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Company not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve company information: %s", err.Error()),
		})
		return
	}
	c.JSON(http.StatusOK, company)
}

// GetCompanies lists company profiles.
// @Summary List companies
// @Description industry filters with substring matching, case-insensitive.
// @Tags Company
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param industry query string false "Industry substring"
// @Success 200 {array} model.Company
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /company [get]
func (cc *CompanyController) GetCompanies(c *gin.Context) {
	q := cc.DB.Preload("User").Model(&model.Company{})

	if industry := c.Query("industry"); industry != "" {
		q = q.Where("LOWER(industry) LIKE LOWER(?)", "%"+industry+"%")
	}

	var companies []model.Company
	if err := q.Order("name ASC").Find(&companies).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve companies: %s", err.Error()),
		})
		return
	}
	c.JSON(http.StatusOK, companies)
}

// EditCompanyProfile merges the provided fields into the calling company's
// profile. Absent fields keep their value.
// @Summary Edit my company profile
// @Tags Company
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param company_profile body model.EditableCompanyInfo true "Fields to overwrite"
// @Success 200 {object} model.Company "Updated profile"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /company/profile [patch]
func (cc *CompanyController) EditCompanyProfile(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var company model.Company
	if err := cc.DB.Preload("User").Where("user_id = ?", user.ID.String()).First(&company).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve company information: %s", err.Error()),
		})
		return
	}

	edited := model.EditableCompanyInfo{}
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&edited); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	utilities.MergeNonEmpty(&company.EditableCompanyInfo, &edited)

	if err := cc.DB.Save(&company).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to update company information: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, company)
}

// UploadLogo stores the company logo in the object store.
// @Summary Upload my company logo
// @Tags Company
// @Accept mpfd
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param logo formData file true "Logo image (.png, .jpg, .jpeg, .svg)"
// @Success 200 {object} model.Company "Profile with the new logo_key"
// @Failure 413 {object} utilities.ErrorResponse "File too large"
// @Failure 415 {object} utilities.ErrorResponse "Unsupported image type"
// @Failure 503 {object} utilities.ErrorResponse "Object storage not configured"
// @Router /company/logo [post]
func (cc *CompanyController) UploadLogo(c *gin.Context) {
	if cc.Storage == nil {
		c.JSON(http.StatusServiceUnavailable, utilities.ErrorResponse{Error: "Object storage not configured"})
		return
	}

	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var company model.Company
	if err := cc.DB.Where("user_id = ?", user.ID.String()).First(&company).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve company information: %s", err.Error()),
		})
		return
	}

	rawFile, err := c.FormFile("logo")
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
	switch extension {
	case ".png", ".jpg", ".jpeg", ".svg":
	default:
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

	key := logoObjectPrefix + user.ID.String() + extension
	contentType := rawFile.Header.Get("Content-Type")
	if _, err := cc.Storage.Upload(c.Request.Context(), key, f, rawFile.Size, contentType); err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to store file: %s", err.Error()),
		})
		return
	}

	company.LogoKey = key
	if err := cc.DB.Save(&company).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to update company information: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, company)
}

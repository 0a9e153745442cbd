package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"gorm.io/gorm"

	"github.com/Student-market-place/StudentMarket-sub001/internal/database"
	"github.com/Student-market-place/StudentMarket-sub001/internal/model"
	"github.com/Student-market-place/StudentMarket-sub001/internal/utilities"
)

// OauthLoginHandler struct holds the database connection and OAuth2 configuration for handling OAuth login.
type OauthLoginHandler struct {
	DB               *database.DBinstanceStruct
	OauthConfig      *oauth2.Config
	UserInfoEndpoint string
}

type code struct {
	Code string `json:"code" binding:"required"`
}

// NewOauthLoginHandler creates a new instance of OauthLoginHandler with the provided database connection and OAuth2 configuration.
func NewOauthLoginHandler(db *database.DBinstanceStruct, oauthConfig *oauth2.Config, userInfoEndpoint string) *OauthLoginHandler {
	return &OauthLoginHandler{
		DB:               db,
		OauthConfig:      oauthConfig,
		UserInfoEndpoint: userInfoEndpoint,
	}
}

func (h *OauthLoginHandler) getUserInfo(c *gin.Context) (model.GoogleUserInfo, error) {

	var code code
	var uInfo model.GoogleUserInfo

	// check does body has code
	if err := c.ShouldBindJSON(&code); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("No authorization code provided: %v", err.Error()),
		})
		return uInfo, err
	}

	// Exchange code with google and get userinfo
	token, err := h.OauthConfig.Exchange(context.Background(), code.Code)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to exchange authorization code: %v", err.Error()),
		})
		return uInfo, err
	}

	client := h.OauthConfig.Client(context.Background(), token)
	resp, err := client.Get(h.UserInfoEndpoint)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to fetch user info: %v", err.Error()),
		})
		return uInfo, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to read user info: %v", err.Error()),
		})
		return uInfo, err
	}

	if err := json.Unmarshal(body, &uInfo); err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to parse user info: %v", err.Error()),
		})
		return uInfo, err
	}

	return uInfo, nil
}

// loginOrRegisterUser finds the account bound to the Google id, creating the
// account and its profile row on first login.
func (h *OauthLoginHandler) loginOrRegisterUser(role string, uInfo model.GoogleUserInfo, c *gin.Context) {

	var user model.User
	err := h.DB.Where("google_id = ?", uInfo.ID).First(&user).Error

	created := false
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = model.User{
			Username:    uInfo.Email,
			ContactInfo: model.ContactInfo{Email: &uInfo.Email},
			GoogleID:    uInfo.ID,
			Role:        role,
		}
		err = h.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			switch role {
			case model.RoleStudent:
				return tx.Create(&model.Student{
					UserID: user.ID,
					EditableStudentInfo: model.EditableStudentInfo{
						FirstName: uInfo.GivenName,
						LastName:  uInfo.FamilyName,
					},
				}).Error
			case model.RoleCompany:
				return tx.Create(&model.Company{
					UserID:              user.ID,
					EditableCompanyInfo: model.EditableCompanyInfo{Name: uInfo.Name},
				}).Error
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
				Error: fmt.Sprintf("Failed to create user: %s", err.Error()),
			})
			return
		}
		created = true

	case err != nil:
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve user data: %s", err.Error()),
		})
		return
	}

	if user.Role != role {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{
			Error: fmt.Sprintf("Account is registered with role '%s'", user.Role),
		})
		return
	}

	accessToken, _, err := generateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to generate access token: %s", err.Error()),
		})
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{
		"user":         user,
		"access_token": accessToken,
	})
}

// StudentGoogleLoginHandler handles Google login for the student role.
// @Summary Google login for students
// @Tags Auth
// @Accept json
// @Produce json
// @Router /auth/google/student [post]
func (h *OauthLoginHandler) StudentGoogleLoginHandler(c *gin.Context) {
	uInfo, err := h.getUserInfo(c)
	if err != nil {
		return
	}
	h.loginOrRegisterUser(model.RoleStudent, uInfo, c)
}

// CompanyGoogleLoginHandler handles Google login for the company role.
// @Summary Google login for companies
// @Tags Auth
// @Accept json
// @Produce json
// @Router /auth/google/company [post]
func (h *OauthLoginHandler) CompanyGoogleLoginHandler(c *gin.Context) {
	uInfo, err := h.getUserInfo(c)
	if err != nil {
		return
	}
	h.loginOrRegisterUser(model.RoleCompany, uInfo, c)
}

// Callback retrieves the "code" query parameter and returns it as JSON.
// @Summary Return the Google authorization code as JSON
// @Tags Auth
// @Produce json
// @Router /auth/google/callback [get]
func (h *OauthLoginHandler) Callback(c *gin.Context) {
	aCode := c.Query("code")
	c.JSON(http.StatusOK, code{Code: aCode})
}

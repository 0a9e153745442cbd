// Package application provides HTTP handlers for the application workflow.
package application

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Student-market-place/StudentMarket-sub001/internal/database"
	"github.com/Student-market-place/StudentMarket-sub001/internal/model"
	"github.com/Student-market-place/StudentMarket-sub001/internal/utilities"
	"github.com/Student-market-place/StudentMarket-sub001/internal/workflow"
)

// ApplicationController handles application workflow endpoints
type ApplicationController struct {
	DB       *database.DBinstanceStruct
	Workflow *workflow.ApplicationWorkflow
}

// NewApplicationController creates a new instance of ApplicationController
func NewApplicationController(db *database.DBinstanceStruct, notifier workflow.Notifier) *ApplicationController {
	return &ApplicationController{
		DB:       db,
		Workflow: workflow.NewApplicationWorkflow(db, notifier),
	}
}

// ApplyHandler submits an application from the calling student.
// @Summary Apply to an offer
// @Description Student only. One pending application per offer; terminal ones free the slot again.
// @Tags Application
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Offer ID"
// @Param application body object{message=string} false "Optional motivation message"
// @Success 201 {object} model.StudentApply "Application is pending"
// @Failure 404 {object} utilities.ErrorResponse "Unknown offer or student profile"
// @Failure 409 {object} utilities.ErrorResponse "Offer closed, duplicate application, or student unavailable"
// @Router /offers/{id}/apply [post]
func (ac *ApplicationController) ApplyHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	offerID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid offer id"})
		return
	}

	var body struct {
		Message string `json:"message"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid request body"})
			return
		}
	}

	apply, err := ac.Workflow.Apply(c.Request.Context(), user.ID, uint(offerID), body.Message)
	if err != nil {
		c.JSON(workflow.HTTPStatus(err), utilities.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, apply)
}

// DecideHandler records the company decision on a pending application.
// @Summary Accept or reject an application
// @Description Owner of the offer or admin. Accepting creates the placement history entry in the same transaction.
// @Tags Application
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Application ID"
// @Param decision body object{outcome=string} true "accepted or rejected"
// @Success 200 {object} model.StudentApply "Application in its terminal state"
// @Failure 403 {object} utilities.ErrorResponse "Not the owning company"
// @Failure 404 {object} utilities.ErrorResponse "Unknown application"
// @Failure 409 {object} utilities.ErrorResponse "Application already decided or withdrawn"
// @Router /applications/{id}/decision [post]
func (ac *ApplicationController) DecideHandler(c *gin.Context) {
	applyID, apply, ok := ac.loadApplication(c)
	if !ok {
		return
	}
	if !ac.requireOfferOwnership(c, apply) {
		return
	}

	var body struct {
		Outcome string `json:"outcome" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Decision outcome must be provided"})
		return
	}

	decided, err := ac.Workflow.Decide(c.Request.Context(), applyID, body.Outcome)
	if err != nil {
		c.JSON(workflow.HTTPStatus(err), utilities.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, decided)
}

// WithdrawHandler lets a student pull back a pending application.
// @Summary Withdraw an application
// @Description Applicant only. Withdrawing frees the offer for a later re-application.
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Application ID"
// @Success 200 {object} model.StudentApply "Application is withdrawn"
// @Failure 403 {object} utilities.ErrorResponse "Not the applicant"
// @Failure 404 {object} utilities.ErrorResponse "Unknown application"
// @Failure 409 {object} utilities.ErrorResponse "Application already decided"
// @Router /applications/{id}/withdraw [post]
func (ac *ApplicationController) WithdrawHandler(c *gin.Context) {
	applyID, apply, ok := ac.loadApplication(c)
	if !ok {
		return
	}

	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}
	if user.Role != model.RoleAdmin && apply.StudentID != user.ID {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{Error: "Only the applicant can withdraw an application"})
		return
	}

	withdrawn, err := ac.Workflow.Withdraw(c.Request.Context(), applyID)
	if err != nil {
		c.JSON(workflow.HTTPStatus(err), utilities.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, withdrawn)
}

// GetMyApplicationsHandler lists the calling student's applications.
// @Summary List my applications
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param limit query int false "Page size, default 50, max 200"
// @Param offset query int false "Page offset"
// @Success 200 {array} model.StudentApply "Applications, newest first"
// @Router /applications/me [get]
func (ac *ApplicationController) GetMyApplicationsHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	applies, err := ac.Workflow.ListForStudent(c.Request.Context(), user.ID, pageFromQuery(c))
	if err != nil {
		c.JSON(workflow.HTTPStatus(err), utilities.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, applies)
}

// GetOfferApplicationsHandler lists every application against one offer.
// @Summary List applications for an offer
// @Description Owner of the offer or admin.
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Offer ID"
// @Param limit query int false "Page size, default 50, max 200"
// @Param offset query int false "Page offset"
// @Success 200 {array} model.StudentApply "Applications, newest first"
// @Failure 403 {object} utilities.ErrorResponse "Not the owning company"
// @Router /offers/{id}/applications [get]
func (ac *ApplicationController) GetOfferApplicationsHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	offerID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid offer id"})
		return
	}

	if user.Role != model.RoleAdmin {
		var offer model.CompanyOffer
		if err := ac.DB.Where("id = ?", offerID).First(&offer).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Offer not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
				Error: fmt.Sprintf("Failed to retrieve offer: %s", err.Error()),
			})
			return
		}
		if offer.CompanyID != user.ID {
			c.JSON(http.StatusForbidden, utilities.ErrorResponse{Error: "Only the owning company can list applications"})
			return
		}
	}

	applies, err := ac.Workflow.ListForOffer(c.Request.Context(), uint(offerID), pageFromQuery(c))
	if err != nil {
		c.JSON(workflow.HTTPStatus(err), utilities.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, applies)
}

func pageFromQuery(c *gin.Context) workflow.Page {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	return workflow.Page{Limit: limit, Offset: offset}
}

// loadApplication reads the :id path param and fetches the row with its
// offer, responding on failure.
func (ac *ApplicationController) loadApplication(c *gin.Context) (uint, *model.StudentApply, bool) {
	applyID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid application id"})
		return 0, nil, false
	}

	var apply model.StudentApply
	if err := ac.DB.Preload("CompanyOffer").Where("id = ?", applyID).First(&apply).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Application not found"})
			return 0, nil, false
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve application: %s", err.Error()),
		})
		return 0, nil, false
	}
	return uint(applyID), &apply, true
}

func (ac *ApplicationController) requireOfferOwnership(c *gin.Context, apply *model.StudentApply) bool {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return false
	}
	if user.Role == model.RoleAdmin {
		return true
	}
	if apply.CompanyOffer.CompanyID != user.ID {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{Error: "Only the owning company can decide this application"})
		return false
	}
	return true
}

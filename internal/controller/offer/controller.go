// Package offer provides HTTP handlers for the internship offer lifecycle.
package offer

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Student-market-place/StudentMarket-sub001/internal/database"
	"github.com/Student-market-place/StudentMarket-sub001/internal/model"
	"github.com/Student-market-place/StudentMarket-sub001/internal/utilities"
	"github.com/Student-market-place/StudentMarket-sub001/internal/workflow"
)

// OfferController handles offer lifecycle endpoints
type OfferController struct {
	Lifecycle *workflow.OfferLifecycle
}

// NewOfferController creates a new instance of OfferController
func NewOfferController(db *database.DBinstanceStruct) *OfferController {
	return &OfferController{
		Lifecycle: workflow.NewOfferLifecycle(db),
	}
}

// CreateOfferHandler publishes a new offer owned by the calling company.
// @Summary Create an offer
// @Description Only company users can publish offers. The offer opens immediately.
// @Tags Offer
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param offer body workflow.CreateOfferInput true "Offer content"
// @Success 201 {object} model.CompanyOffer "Successfully created offer"
// @Failure 400 {object} utilities.ErrorResponse "Invalid offer content"
// @Failure 404 {object} utilities.ErrorResponse "Unknown skill referenced"
// @Router /offers [post]
func (oc *OfferController) CreateOfferHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var in workflow.CreateOfferInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	in.CompanyID = user.ID

	created, err := oc.Lifecycle.Create(c.Request.Context(), in)
	if err != nil {
		c.JSON(workflow.HTTPStatus(err), utilities.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetOfferHandler returns a single offer with its required skills.
// @Summary Get an offer by id
// @Tags Offer
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Offer ID"
// @Success 200 {object} model.CompanyOffer
// @Failure 404 {object} utilities.ErrorResponse "Unknown or deleted offer"
// @Router /offers/{id} [get]
func (oc *OfferController) GetOfferHandler(c *gin.Context) {
	id, ok := parseOfferID(c)
	if !ok {
		return
	}

	found, err := oc.Lifecycle.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(workflow.HTTPStatus(err), utilities.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, found)
}

// GetOffersHandler lists offers matching the query.
// @Summary List offers
// @Description Every query parameter is optional. skill takes a comma separated list of skill ids and matches offers requiring at least one of them.
// @Tags Offer
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param type query string false "stage or alternance"
// @Param status query string false "open or closed"
// @Param skill query string false "Comma separated skill ids"
// @Param limit query int false "Page size, default 50, max 200"
// @Param offset query int false "Page offset"
// @Success 200 {array} model.CompanyOffer "Matching offers, newest first"
// @Failure 400 {object} utilities.ErrorResponse "Malformed query"
// @Router /offers [get]
func (oc *OfferController) GetOffersHandler(c *gin.Context) {
	opt := workflow.ListOffersOptions{
		Type:   c.Query("type"),
		Status: c.Query("status"),
	}

	if raw := c.Query("skill"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
			if err != nil {
				c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid skill id: " + part})
				return
			}
			opt.SkillIDs = append(opt.SkillIDs, uint(id))
		}
	}
	opt.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "0"))
	opt.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	offers, err := oc.Lifecycle.List(c.Request.Context(), opt)
	if err != nil {
		c.JSON(workflow.HTTPStatus(err), utilities.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, offers)
}

// CloseOfferHandler stops an offer from accepting new applications.
// @Summary Close an offer
// @Description Pending applications stay pending and can still be decided. Closing twice is a no-op. Owner or admin only.
// @Tags Offer
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Offer ID"
// @Success 200 {object} model.CompanyOffer "Offer is closed"
// @Failure 403 {object} utilities.ErrorResponse "Not the owning company"
// @Failure 404 {object} utilities.ErrorResponse "Unknown or deleted offer"
// @Router /offers/{id}/close [post]
func (oc *OfferController) CloseOfferHandler(c *gin.Context) {
	id, ok := parseOfferID(c)
	if !ok {
		return
	}
	if !oc.requireOwnership(c, id) {
		return
	}

	closed, err := oc.Lifecycle.Close(c.Request.Context(), id)
	if err != nil {
		c.JSON(workflow.HTTPStatus(err), utilities.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, closed)
}

// DeleteOfferHandler removes an offer and withdraws its pending applications.
// @Summary Delete an offer
// @Description The offer and its pending applications disappear together. Decided applications and placement history are kept. Owner or admin only.
// @Tags Offer
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Offer ID"
// @Success 200 {object} utilities.MessageResponse "Offer deleted"
// @Failure 403 {object} utilities.ErrorResponse "Not the owning company"
// @Failure 404 {object} utilities.ErrorResponse "Unknown or deleted offer"
// @Router /offers/{id} [delete]
func (oc *OfferController) DeleteOfferHandler(c *gin.Context) {
	id, ok := parseOfferID(c)
	if !ok {
		return
	}
	if !oc.requireOwnership(c, id) {
		return
	}

	if err := oc.Lifecycle.Delete(c.Request.Context(), id); err != nil {
		c.JSON(workflow.HTTPStatus(err), utilities.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Offer deleted"})
}

func parseOfferID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid offer id"})
		return 0, false
	}
	return uint(id), true
}

// requireOwnership aborts with 403 unless the caller owns the offer or is
// an admin. A missing offer surfaces as 404 here already.
func (oc *OfferController) requireOwnership(c *gin.Context, offerID uint) bool {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return false
	}
	if user.Role == model.RoleAdmin {
		return true
	}

	found, err := oc.Lifecycle.Get(c.Request.Context(), offerID)
	if err != nil {
		c.JSON(workflow.HTTPStatus(err), utilities.ErrorResponse{Error: err.Error()})
		return false
	}
	if found.CompanyID != user.ID {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{Error: "Only the owning company can manage this offer"})
		return false
	}
	return true
}

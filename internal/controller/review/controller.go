// Package review provides HTTP handlers for placement history and company
// reviews.
package review

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Student-market-place/StudentMarket-sub001/internal/database"
	"github.com/Student-market-place/StudentMarket-sub001/internal/model"
	"github.com/Student-market-place/StudentMarket-sub001/internal/utilities"
	"github.com/Student-market-place/StudentMarket-sub001/internal/workflow"
)

// ReviewController handles history and review endpoints
type ReviewController struct {
	Service *workflow.HistoryReview
}

// NewReviewController creates a new instance of ReviewController
func NewReviewController(db *database.DBinstanceStruct) *ReviewController {
	return &ReviewController{
		Service: workflow.NewHistoryReview(db),
	}
}

// GetStudentHistoryHandler lists a student's placements.
// @Summary List placement history for a student
// @Description The student themselves, school users and admins can read it.
// @Tags Review
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "Student user ID (uuid)"
// @Success 200 {array} model.StudentHistory "Placements, newest first"
// @Failure 403 {object} utilities.ErrorResponse "Not allowed to read this history"
// @Router /students/{id}/history [get]
func (rc *ReviewController) GetStudentHistoryHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	studentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid student id"})
		return
	}

	allowed := user.Role == model.RoleAdmin || user.Role == model.RoleSchool || user.ID == studentID
	if !allowed {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{Error: "Not allowed to read this history"})
		return
	}

	history, err := rc.Service.ListHistoryForStudent(c.Request.Context(), studentID)
	if err != nil {
		c.JSON(workflow.HTTPStatus(err), utilities.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, history)
}

// GetMyHistoryHandler lists the calling student's placements.
// @Summary List my placement history
// @Tags Review
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {array} model.StudentHistory "Placements, newest first"
// @Router /students/me/history [get]
func (rc *ReviewController) GetMyHistoryHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	history, err := rc.Service.ListHistoryForStudent(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(workflow.HTTPStatus(err), utilities.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, history)
}

// CreateReviewHandler posts a review about a company the student worked at.
// @Summary Review a company
// @Description Student only. Requires a placement at the company; each placement can be reviewed once.
// @Tags Review
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param review body object{company_id=string,rating=int,comment=string} true "Review content, rating 1 to 5"
// @Success 201 {object} model.Review "Review created"
// @Failure 400 {object} utilities.ErrorResponse "Rating out of range"
// @Failure 404 {object} utilities.ErrorResponse "No placement at this company"
// @Failure 409 {object} utilities.ErrorResponse "Every placement already reviewed"
// @Router /reviews [post]
func (rc *ReviewController) CreateReviewHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var body struct {
		CompanyID string `json:"company_id" binding:"required"`
		Rating    int    `json:"rating" binding:"required"`
		Comment   string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "company_id and rating must be provided"})
		return
	}

	companyID, err := uuid.Parse(body.CompanyID)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid company id"})
		return
	}

	created, err := rc.Service.CreateReview(c.Request.Context(), user.ID, companyID, body.Rating, body.Comment)
	if err != nil {
		c.JSON(workflow.HTTPStatus(err), utilities.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetReviewHandler returns a single review.
// @Summary Get a review by id
// @Tags Review
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Review ID"
// @Success 200 {object} model.Review
// @Failure 404 {object} utilities.ErrorResponse "Unknown review"
// @Router /reviews/{id} [get]
func (rc *ReviewController) GetReviewHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid review id"})
		return
	}

	found, err := rc.Service.GetReview(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(workflow.HTTPStatus(err), utilities.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, found)
}

// GetCompanyReviewsHandler lists a company's reviews with the average rating.
// @Summary List reviews of a company
// @Tags Review
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "Company user ID (uuid)"
// @Param limit query int false "Page size, default 50, max 200"
// @Param offset query int false "Page offset"
// @Success 200 {object} object{reviews=[]model.Review,average_rating=number}
// @Router /company/{id}/reviews [get]
func (rc *ReviewController) GetCompanyReviewsHandler(c *gin.Context) {
	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid company id"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	reviews, err := rc.Service.ListReviewsForCompany(c.Request.Context(), companyID, workflow.Page{Limit: limit, Offset: offset})
	if err != nil {
		c.JSON(workflow.HTTPStatus(err), utilities.ErrorResponse{Error: err.Error()})
		return
	}

	avg, err := rc.Service.AverageRating(c.Request.Context(), companyID)
	if err != nil {
		c.JSON(workflow.HTTPStatus(err), utilities.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews":        reviews,
		"average_rating": avg,
	})
}

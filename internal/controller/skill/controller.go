// Package skill provides HTTP handlers for the skill registry.
package skill

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Student-market-place/StudentMarket-sub001/internal/database"
	"github.com/Student-market-place/StudentMarket-sub001/internal/utilities"
	"github.com/Student-market-place/StudentMarket-sub001/internal/workflow"
)

// SkillController handles skill registry endpoints
type SkillController struct {
	Registry *workflow.SkillRegistry
}

// NewSkillController creates a new instance of SkillController
func NewSkillController(db *database.DBinstanceStruct) *SkillController {
	return &SkillController{
		Registry: workflow.NewSkillRegistry(db),
	}
}

// CreateSkillHandler registers a new skill name.
// @Summary Create a skill
// @Description Skill names are unique case-insensitively. Admin only.
// @Tags Skill
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param skill body object{name=string} true "Skill name"
// @Success 201 {object} model.Skill "Successfully created skill"
// @Failure 400 {object} utilities.ErrorResponse "Empty name"
// @Failure 409 {object} utilities.ErrorResponse "Name already registered"
// @Router /skills [post]
func (sc *SkillController) CreateSkillHandler(c *gin.Context) {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid request body"})
		return
	}

	skill, err := sc.Registry.Create(c.Request.Context(), body.Name)
	if err != nil {
		c.JSON(workflow.HTTPStatus(err), utilities.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, skill)
}

// GetSkillsHandler lists every registered skill.
// @Summary List skills
// @Tags Skill
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {array} model.Skill "All skills, sorted by name"
// @Router /skills [get]
func (sc *SkillController) GetSkillsHandler(c *gin.Context) {
	skills, err := sc.Registry.List(c.Request.Context())
	if err != nil {
		c.JSON(workflow.HTTPStatus(err), utilities.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, skills)
}

// DeleteSkillHandler removes a skill that no profile or offer references.
// @Summary Delete a skill
// @Description Refused while any student or offer still references it. Admin only.
// @Tags Skill
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Skill ID"
// @Success 200 {object} utilities.MessageResponse "Skill deleted"
// @Failure 404 {object} utilities.ErrorResponse "Unknown skill"
// @Failure 409 {object} utilities.ErrorResponse "Skill still referenced"
// @Router /skills/{id} [delete]
func (sc *SkillController) DeleteSkillHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid skill id"})
		return
	}

	if err := sc.Registry.Delete(c.Request.Context(), uint(id)); err != nil {
		c.JSON(workflow.HTTPStatus(err), utilities.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Skill deleted"})
}

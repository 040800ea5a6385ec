package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskmanager-be/internal/entities"
	"taskmanager-be/internal/models"
	"taskmanager-be/internal/service"
)

type TeamMemberController struct {
	memberService service.TeamMemberService
}

func NewTeamMemberController(memberService service.TeamMemberService) *TeamMemberController {
	return &TeamMemberController{memberService: memberService}
}

// CreateTeamMember handles POST /teamMembers/
func (tc *TeamMemberController) CreateTeamMember(c *gin.Context) {
	var member entities.TeamMember
	if err := c.ShouldBindJSON(&member); err != nil {
		writeBindError(c, err)
		return
	}

	id, err := tc.memberService.Create(c.Request.Context(), &member)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Success(models.CreateResponse{ID: id}, "Team Member Added"))
}

// ListTeamMembers handles GET /teamMembers/ - returns up to 100 team members
// as a bare array
func (tc *TeamMemberController) ListTeamMembers(c *gin.Context) {
	members, err := tc.memberService.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}

// UpdateTeamMember handles PUT /teamMembers/:teamMemberId
func (tc *TeamMemberController) UpdateTeamMember(c *gin.Context) {
	teamMemberID := c.Param("teamMemberId")

	var member entities.TeamMember
	if err := c.ShouldBindJSON(&member); err != nil {
		writeBindError(c, err)
		return
	}

	if err := tc.memberService.Update(c.Request.Context(), teamMemberID, &member); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Success(nil, "Team Member Updated Successfully"))
}

// DeleteTeamMember handles DELETE /teamMembers/:teamMemberId
func (tc *TeamMemberController) DeleteTeamMember(c *gin.Context) {
	teamMemberID := c.Param("teamMemberId")

	if err := tc.memberService.Delete(c.Request.Context(), teamMemberID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Success(nil, "Team Member Deleted Successfully"))
}

// api/controller/participant_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trialdesk/participant-manager/api/audit"
	api_errors "github.com/trialdesk/participant-manager/api/errors"
	"github.com/trialdesk/participant-manager/api/model"
	"github.com/trialdesk/participant-manager/api/service"
	"github.com/trialdesk/participant-manager/api/util"
)

type ParticipantController struct {
	participantService service.IParticipantService
	validationUtil     *util.ValidationUtil
}

func NewParticipantController(participantService service.IParticipantService, validationUtil *util.ValidationUtil) *ParticipantController {
	return &ParticipantController{
		participantService: participantService,
		validationUtil:     validationUtil,
	}
}

// RegisterRoutes registers the API routes
func (pc *ParticipantController) RegisterRoutes(r *gin.RouterGroup) {
	sites := r.Group("/sites")
	{
		sites.POST("/:siteId/participants/invite", pc.InviteParticipants)
		sites.GET("/:siteId/participants", pc.GetSiteParticipants)
	}
}

// InviteParticipants endpoint
func (pc *ParticipantController) InviteParticipants(c *gin.Context) {
	siteID := c.Param("siteId")
	var req model.InviteParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithErrorCode(c, api_errors.BadRequest)
		return
	}
	if violations := pc.validationUtil.ValidateInviteRequest(req); len(violations) > 0 {
		util.RespondWithViolations(c, violations)
		return
	}
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithErrorCode(c, err)
		return
	}
	auditReq, err := audit.FromHTTPRequest(c.Request)
	if err != nil {
		util.RespondWithErrorCode(c, err)
		return
	}

	response, err := pc.participantService.InviteParticipants(c, siteID, req, userID, auditReq)
	if err != nil {
		util.RespondWithErrorCode(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetSiteParticipants endpoint
func (pc *ParticipantController) GetSiteParticipants(c *gin.Context) {
	siteID := c.Param("siteId")
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithErrorCode(c, err)
		return
	}

	response, err := pc.participantService.GetSiteParticipants(c, siteID, userID)
	if err != nil {
		util.RespondWithErrorCode(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

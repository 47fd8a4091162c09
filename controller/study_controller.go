// api/controller/study_controller.go
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

// StudyController serves the ingestion endpoints called by upstream
// platform components rather than by admin users.
type StudyController struct {
	studyService   service.IStudyService
	validationUtil *util.ValidationUtil
}

func NewStudyController(studyService service.IStudyService, validationUtil *util.ValidationUtil) *StudyController {
	return &StudyController{
		studyService:   studyService,
		validationUtil: validationUtil,
	}
}

// RegisterRoutes registers the API routes
func (sc *StudyController) RegisterRoutes(r *gin.RouterGroup) {
	studies := r.Group("/studies")
	{
		studies.POST("/studymetadata", sc.ImportStudyMetadata)
		studies.POST("/sendNotification", sc.SendNotification)
	}
}

// ImportStudyMetadata endpoint
func (sc *StudyController) ImportStudyMetadata(c *gin.Context) {
	var req model.StudyMetadataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithErrorCode(c, api_errors.BadRequest)
		return
	}
	if violations := sc.validationUtil.ValidateStudyMetadata(req); len(violations) > 0 {
		util.RespondWithViolations(c, violations)
		return
	}
	auditReq, err := audit.FromHTTPRequest(c.Request)
	if err != nil {
		util.RespondWithErrorCode(c, err)
		return
	}

	if err := sc.studyService.ImportStudyMetadata(c, req, auditReq); err != nil {
		util.RespondWithErrorCode(c, err)
		return
	}

	c.JSON(http.StatusOK, model.StudyMetadataResponse{
		Code:    http.StatusOK,
		Message: api_errors.StudyMetadataSuccess.Message,
	})
}

// SendNotification endpoint
func (sc *StudyController) SendNotification(c *gin.Context) {
	var form model.NotificationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		util.RespondWithErrorCode(c, api_errors.NotificationListEmpty)
		return
	}
	auditReq, err := audit.FromHTTPRequest(c.Request)
	if err != nil {
		util.RespondWithErrorCode(c, err)
		return
	}

	response, err := sc.studyService.SendNotifications(c, &form, auditReq)
	if err != nil {
		util.RespondWithErrorCode(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

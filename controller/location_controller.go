// api/controller/location_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trialdesk/participant-manager/api/audit"
	api_errors "github.com/trialdesk/participant-manager/api/errors"
	"github.com/trialdesk/participant-manager/api/model"
	"github.com/trialdesk/participant-manager/api/service"
	"github.com/trialdesk/participant-manager/api/util"
	helper_util "github.com/trialdesk/participant-manager/api/util/helper"
)

type LocationController struct {
	locationService service.ILocationService
	validationUtil  *util.ValidationUtil
}

func NewLocationController(locationService service.ILocationService, validationUtil *util.ValidationUtil) *LocationController {
	return &LocationController{
		locationService: locationService,
		validationUtil:  validationUtil,
	}
}

// RegisterRoutes registers the API routes
func (lc *LocationController) RegisterRoutes(r *gin.RouterGroup) {
	locations := r.Group("/locations")
	{
		locations.POST("", lc.AddLocation)
		locations.PUT("/:locationId", lc.UpdateLocation)
		locations.GET("/:locationId", lc.GetLocation)
		locations.GET("", lc.ListLocations)
	}
}

// AddLocation endpoint
func (lc *LocationController) AddLocation(c *gin.Context) {
	var req model.LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithErrorCode(c, api_errors.BadRequest)
		return
	}
	if violations := lc.validationUtil.ValidateLocationRequest(req); len(violations) > 0 {
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

	location, err := lc.locationService.CreateLocation(c, req, userID, auditReq)
	if err != nil {
		util.RespondWithErrorCode(c, err)
		return
	}

	c.JSON(http.StatusCreated, model.LocationResponse{
		LocationID: location.ID,
		Message:    api_errors.AddLocationSuccess.Message,
	})
}

// UpdateLocation endpoint
func (lc *LocationController) UpdateLocation(c *gin.Context) {
	locationID := c.Param("locationId")
	var req model.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithErrorCode(c, api_errors.BadRequest)
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

	location, message, err := lc.locationService.UpdateLocation(c, locationID, req, userID, auditReq)
	if err != nil {
		util.RespondWithErrorCode(c, err)
		return
	}

	c.JSON(http.StatusOK, model.LocationResponse{
		LocationID: location.ID,
		Message:    message.Message,
	})
}

// GetLocation endpoint
func (lc *LocationController) GetLocation(c *gin.Context) {
	locationID := c.Param("locationId")
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithErrorCode(c, err)
		return
	}

	details, err := lc.locationService.GetLocation(c, locationID, userID)
	if err != nil {
		util.RespondWithErrorCode(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}

// ListLocations endpoint
func (lc *LocationController) ListLocations(c *gin.Context) {
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithErrorCode(c, err)
		return
	}
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithErrorCode(c, api_errors.BadRequest)
		return
	}

	response, err := lc.locationService.ListLocations(c, userID, limit, offset)
	if err != nil {
		util.RespondWithErrorCode(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

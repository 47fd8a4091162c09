// api/service/location_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/trialdesk/participant-manager/api/audit"
	"github.com/trialdesk/participant-manager/api/dao"
	api_errors "github.com/trialdesk/participant-manager/api/errors"
	logger "github.com/trialdesk/participant-manager/api/logging"
	"github.com/trialdesk/participant-manager/api/model"
	"github.com/trialdesk/participant-manager/api/util"
)

type ILocationService interface {
	CreateLocation(ctx context.Context, req model.LocationRequest, userID string, auditReq audit.AuditLogEventRequest) (*model.LocationEntity, error)
	UpdateLocation(ctx context.Context, locationID string, req model.UpdateLocationRequest, userID string, auditReq audit.AuditLogEventRequest) (*model.LocationEntity, api_errors.MessageCode, error)
	GetLocation(ctx context.Context, locationID, userID string) (*model.LocationDetails, error)
	ListLocations(ctx context.Context, userID string, limit, offset int) (*model.LocationDetailsResponse, error)
}

// LocationService handles business logic for location lifecycle operations
type LocationService struct {
	locationDAO     *dao.LocationDAO
	userDAO         *dao.UserDAO
	validationUtil  *util.ValidationUtil
	cacheService    *util.CacheService
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
	auditService    audit.Service
}

// NewLocationService creates a new instance of LocationService
func NewLocationService(
	locationDAO *dao.LocationDAO,
	userDAO *dao.UserDAO,
	validationUtil *util.ValidationUtil,
	cacheService *util.CacheService,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
	auditService audit.Service,
) *LocationService {
	service := &LocationService{
		locationDAO:     locationDAO,
		userDAO:         userDAO,
		validationUtil:  validationUtil,
		cacheService:    cacheService,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
		auditService:    auditService,
	}

	eventBus.Subscribe(util.EventLocationCreated, service.handleLocationChanged)
	eventBus.Subscribe(util.EventLocationUpdated, service.handleLocationChanged)

	return service
}

func (s *LocationService) handleLocationChanged(ctx context.Context, event util.Event) error {
	location, ok := event.Payload.(model.LocationEntity)
	if !ok {
		return errors.New("unexpected payload for location event")
	}
	changeType := "created"
	if event.Type == util.EventLocationUpdated {
		changeType = "updated"
	}
	return s.notificationSvc.NotifyLocationChange(ctx, changeType, location)
}

// CreateLocation adds a new location. The caller must hold read-edit
// permission on manage-locations.
func (s *LocationService) CreateLocation(ctx context.Context, req model.LocationRequest, userID string, auditReq audit.AuditLogEventRequest) (*model.LocationEntity, error) {
	if err := s.requireManageLocations(ctx, userID, model.ReadEdit); err != nil {
		return nil, err
	}

	existing, err := s.locationDAO.GetByCustomID(ctx, req.CustomID)
	if err != nil && !errors.Is(err, api_errors.LocationNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, api_errors.CustomIDExists
	}

	status := model.StatusActive
	if req.Status != nil {
		status = *req.Status
	}

	location := &model.LocationEntity{
		ID:          uuid.New().String(),
		CustomID:    req.CustomID,
		Name:        req.Name,
		Description: req.Description,
		Status:      status,
		CreatedBy:   userID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.locationDAO.Create(ctx, location); err != nil {
		logger.Error("Error creating location", zap.Error(err), zap.String("userID", userID))
		return nil, err
	}

	s.eventBus.Publish(ctx, util.EventLocationCreated, *location)
	s.postAuditEvent(ctx, audit.LocationAdded, auditReq)

	logger.Info("Location created successfully",
		zap.String("locationID", location.ID),
		zap.String("userID", userID))
	return location, nil
}

// UpdateLocation applies field updates and status transitions. Default
// locations are immutable; illegal transitions are rejected. The returned
// message code identifies the transition that took place.
func (s *LocationService) UpdateLocation(ctx context.Context, locationID string, req model.UpdateLocationRequest, userID string, auditReq audit.AuditLogEventRequest) (*model.LocationEntity, api_errors.MessageCode, error) {
	if err := s.requireManageLocations(ctx, userID, model.ReadEdit); err != nil {
		return nil, api_errors.MessageCode{}, err
	}

	location, err := s.locationDAO.Get(ctx, locationID)
	if err != nil {
		return nil, api_errors.MessageCode{}, err
	}

	if location.IsDefault {
		return nil, api_errors.MessageCode{}, api_errors.DefaultSiteModifyDenied
	}

	message := api_errors.LocationUpdateSuccess
	auditEvent := audit.LocationEdited

	if req.Status != nil {
		switch *req.Status {
		case model.StatusActive:
			if location.Status == model.StatusActive {
				return nil, api_errors.MessageCode{}, api_errors.CannotReactivate
			}
			message = api_errors.ReactivateSuccess
			auditEvent = audit.LocationActivated
		case model.StatusInactive:
			if location.Status == model.StatusInactive {
				return nil, api_errors.MessageCode{}, api_errors.AlreadyDecommissioned
			}
			message = api_errors.DecommissionSuccess
			auditEvent = audit.LocationDecommissioned
		}
		location.Status = *req.Status
	}

	if req.Name != "" {
		location.Name = req.Name
	}
	if req.Description != "" {
		location.Description = req.Description
	}
	location.UpdatedAt = time.Now()

	if err := s.locationDAO.Update(ctx, location); err != nil {
		logger.Error("Error updating location",
			zap.Error(err),
			zap.String("locationID", locationID),
			zap.String("userID", userID))
		return nil, api_errors.MessageCode{}, err
	}

	if err := s.cacheService.DeleteLocation(ctx, locationID); err != nil {
		logger.Warn("Failed to delete location from cache", zap.Error(err), zap.String("locationID", locationID))
	}

	s.eventBus.Publish(ctx, util.EventLocationUpdated, *location)
	s.postAuditEvent(ctx, auditEvent, auditReq)

	logger.Info("Location updated successfully",
		zap.String("locationID", locationID),
		zap.String("userID", userID))
	return location, message, nil
}

// GetLocation retrieves a single location with its attached studies.
func (s *LocationService) GetLocation(ctx context.Context, locationID, userID string) (*model.LocationDetails, error) {
	if err := s.requireManageLocations(ctx, userID, model.ReadView); err != nil {
		return nil, err
	}

	// Try to get from cache first
	cached, err := s.cacheService.GetLocation(ctx, locationID)
	if err == nil && cached != nil {
		return cached, nil
	}

	location, err := s.locationDAO.Get(ctx, locationID)
	if err != nil {
		return nil, err
	}

	details, err := s.toDetails(ctx, *location)
	if err != nil {
		return nil, err
	}

	if err := s.cacheService.SetLocation(ctx, *details); err != nil {
		logger.Warn("Failed to cache location", zap.Error(err), zap.String("locationID", locationID))
	}

	return details, nil
}

// ListLocations retrieves all locations, possibly with pagination
func (s *LocationService) ListLocations(ctx context.Context, userID string, limit, offset int) (*model.LocationDetailsResponse, error) {
	if err := s.requireManageLocations(ctx, userID, model.ReadView); err != nil {
		return nil, err
	}

	locations, err := s.locationDAO.List(ctx, limit, offset)
	if err != nil {
		logger.Error("Error listing locations", zap.Error(err), zap.Int("limit", limit), zap.Int("offset", offset))
		return nil, err
	}

	response := &model.LocationDetailsResponse{Locations: make([]model.LocationDetails, 0, len(locations))}
	for _, location := range locations {
		details, err := s.toDetails(ctx, location)
		if err != nil {
			return nil, err
		}
		response.Locations = append(response.Locations, *details)
	}
	return response, nil
}

func (s *LocationService) toDetails(ctx context.Context, location model.LocationEntity) (*model.LocationDetails, error) {
	studies, err := s.locationDAO.StudyCustomIDs(ctx, location.ID)
	if err != nil {
		return nil, err
	}
	if studies == nil {
		studies = []string{}
	}
	return &model.LocationDetails{
		LocationID:  location.ID,
		CustomID:    location.CustomID,
		Name:        location.Name,
		Description: location.Description,
		Status:      location.Status,
		IsDefault:   location.IsDefault,
		Studies:     studies,
	}, nil
}

// requireManageLocations checks that the admin holds at least the given
// permission level on manage-locations. Super admins hold every permission.
func (s *LocationService) requireManageLocations(ctx context.Context, userID string, level int) error {
	admin, err := s.userDAO.Get(ctx, userID)
	if err != nil {
		return err
	}
	if admin.SuperAdmin {
		return nil
	}
	if admin.ManageLocations < level {
		return api_errors.LocationAccessDenied
	}
	return nil
}

func (s *LocationService) postAuditEvent(ctx context.Context, event audit.AuditLogEvent, auditReq audit.AuditLogEventRequest) {
	if s.auditService == nil {
		return
	}
	if err := s.auditService.PostAuditLogEvent(ctx, event, auditReq); err != nil {
		logger.Warn("Failed to post audit log event",
			zap.Error(err),
			zap.String("eventCode", event.EventCode))
	}
}

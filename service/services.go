// api/service/services.go
package service

import (
	"gorm.io/gorm"

	"github.com/trialdesk/participant-manager/api/audit"
	"github.com/trialdesk/participant-manager/api/dao"
	"github.com/trialdesk/participant-manager/api/util"
)

// Services aggregates all service instances for the application
type Services struct {
	Location    ILocationService
	Study       IStudyService
	Participant IParticipantService
}

// InitializeServices wires the DAOs and shared utilities into the service
// layer.
func InitializeServices(
	db *gorm.DB,
	auditService audit.Service,
	validationUtil *util.ValidationUtil,
	cacheService *util.CacheService,
	notificationSvc *util.NotificationService,
	pushClient Pusher,
	eventBus *util.EventBus,
) *Services {
	locationDAO := dao.NewLocationDAO(db)
	userDAO := dao.NewUserDAO(db)
	studyDAO := dao.NewStudyDAO(db)
	participantDAO := dao.NewParticipantStudyDAO(db)

	return &Services{
		Location:    NewLocationService(locationDAO, userDAO, validationUtil, cacheService, notificationSvc, eventBus, auditService),
		Study:       NewStudyService(studyDAO, userDAO, validationUtil, notificationSvc, pushClient, eventBus, auditService),
		Participant: NewParticipantService(participantDAO, studyDAO, userDAO, validationUtil, notificationSvc, eventBus, auditService),
	}
}

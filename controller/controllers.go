// api/controller/controllers.go
package controller

import (
	"github.com/trialdesk/participant-manager/api/service"
	"github.com/trialdesk/participant-manager/api/util"
)

type Controllers struct {
	Location    *LocationController
	Study       *StudyController
	Participant *ParticipantController
}

func InitializeControllers(services *service.Services, validationUtil *util.ValidationUtil) *Controllers {
	return &Controllers{
		Location:    NewLocationController(services.Location, validationUtil),
		Study:       NewStudyController(services.Study, validationUtil),
		Participant: NewParticipantController(services.Participant, validationUtil),
	}
}

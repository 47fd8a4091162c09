// api/util/validation_util.go

package util

import (
	"strings"

	api_errors "github.com/trialdesk/participant-manager/api/errors"
	"github.com/trialdesk/participant-manager/api/model"
)

type ValidationUtil struct{}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{}
}

func (v *ValidationUtil) ValidateLocationRequest(req model.LocationRequest) []Violation {
	var violations []Violation
	if strings.TrimSpace(req.CustomID) == "" {
		violations = append(violations, Violation{Path: "customId", Message: "must not be blank"})
	}
	if strings.TrimSpace(req.Name) == "" {
		violations = append(violations, Violation{Path: "name", Message: "must not be blank"})
	}
	if strings.TrimSpace(req.Description) == "" {
		violations = append(violations, Violation{Path: "description", Message: "must not be blank"})
	}
	return violations
}

func (v *ValidationUtil) ValidateStudyMetadata(req model.StudyMetadataRequest) []Violation {
	var violations []Violation
	if strings.TrimSpace(req.StudyID) == "" {
		violations = append(violations, Violation{Path: "studyId", Message: "must not be blank"})
	}
	if strings.TrimSpace(req.StudyVersion) == "" {
		violations = append(violations, Violation{Path: "studyVersion", Message: "must not be blank"})
	}
	if strings.TrimSpace(req.AppID) == "" {
		violations = append(violations, Violation{Path: "appId", Message: "must not be blank"})
	}
	if strings.TrimSpace(req.OrgID) == "" {
		violations = append(violations, Violation{Path: "orgId", Message: "must not be blank"})
	}
	return violations
}

// ValidateNotificationForm rejects empty forms and notification types
// outside the known set.
func (v *ValidationUtil) ValidateNotificationForm(form *model.NotificationForm) error {
	if form == nil || len(form.Notifications) == 0 {
		return api_errors.NotificationListEmpty
	}
	for _, notification := range form.Notifications {
		switch notification.NotificationType {
		case model.NotificationTypeStudy, model.NotificationTypeGateway:
		default:
			return api_errors.NoNotificationTypeFound
		}
	}
	return nil
}

func (v *ValidationUtil) ValidateInviteRequest(req model.InviteParticipantRequest) []Violation {
	if len(req.IDs) == 0 {
		return []Violation{{Path: "ids", Message: "must not be empty"}}
	}
	return nil
}

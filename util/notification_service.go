// api/util/notification_service.go

package util

import (
	"context"

	"go.uber.org/zap"

	logger "github.com/trialdesk/participant-manager/api/logging"
	"github.com/trialdesk/participant-manager/api/model"
)

// NotificationService records operational notifications about platform
// changes. Participant-facing push traffic goes through PushClient; this
// service covers internal signals (admin consoles, ops channels).
type NotificationService struct{}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

func (n *NotificationService) NotifyLocationChange(ctx context.Context, changeType string, location model.LocationEntity) error {
	logger.Info("NOTIFICATION: Location "+changeType,
		zap.String("locationID", location.ID),
		zap.String("customID", location.CustomID),
		zap.Int("status", location.Status))
	return nil
}

func (n *NotificationService) NotifyStudyMetadataChange(ctx context.Context, study model.StudyEntity) error {
	logger.Info("NOTIFICATION: Study metadata updated",
		zap.String("studyID", study.ID),
		zap.String("customID", study.CustomID),
		zap.String("version", study.Version))
	return nil
}

func (n *NotificationService) NotifyParticipantsInvited(ctx context.Context, invitation model.InviteParticipantResponse) error {
	logger.Info("NOTIFICATION: Participants invited",
		zap.Strings("invitedIDs", invitation.SuccessIDs),
		zap.Strings("failedIDs", invitation.FailedInvitations))
	return nil
}

func (n *NotificationService) NotifyAdmins(ctx context.Context, message string) error {
	logger.Info("Notifying admins", zap.String("message", message))
	return nil
}

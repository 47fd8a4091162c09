// api/service/study_service.go
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/trialdesk/participant-manager/api/audit"
	"github.com/trialdesk/participant-manager/api/dao"
	logger "github.com/trialdesk/participant-manager/api/logging"
	"github.com/trialdesk/participant-manager/api/model"
	"github.com/trialdesk/participant-manager/api/util"
)

// Pusher sends a single message to the push notification gateway.
type Pusher interface {
	Send(ctx context.Context, message util.PushMessage) (*model.PushNotificationResponse, error)
}

type IStudyService interface {
	ImportStudyMetadata(ctx context.Context, req model.StudyMetadataRequest, auditReq audit.AuditLogEventRequest) error
	SendNotifications(ctx context.Context, form *model.NotificationForm, auditReq audit.AuditLogEventRequest) (*model.PushNotificationResponse, error)
}

// StudyService handles study metadata ingestion and notification dispatch
type StudyService struct {
	studyDAO        *dao.StudyDAO
	userDAO         *dao.UserDAO
	validationUtil  *util.ValidationUtil
	notificationSvc *util.NotificationService
	pushClient      Pusher
	eventBus        *util.EventBus
	auditService    audit.Service
}

func NewStudyService(
	studyDAO *dao.StudyDAO,
	userDAO *dao.UserDAO,
	validationUtil *util.ValidationUtil,
	notificationSvc *util.NotificationService,
	pushClient Pusher,
	eventBus *util.EventBus,
	auditService audit.Service,
) *StudyService {
	service := &StudyService{
		studyDAO:        studyDAO,
		userDAO:         userDAO,
		validationUtil:  validationUtil,
		notificationSvc: notificationSvc,
		pushClient:      pushClient,
		eventBus:        eventBus,
		auditService:    auditService,
	}

	eventBus.Subscribe(util.EventStudyMetadataReceived, service.handleStudyMetadataReceived)

	return service
}

func (s *StudyService) handleStudyMetadataReceived(ctx context.Context, event util.Event) error {
	study, ok := event.Payload.(model.StudyEntity)
	if !ok {
		return nil
	}
	return s.notificationSvc.NotifyStudyMetadataChange(ctx, study)
}

// ImportStudyMetadata upserts the study/app/org linkage and grants every
// super admin read-edit permission on both scopes, attributing each row to
// the admin it was granted to. Re-posting the same studyId updates the
// existing rows.
func (s *StudyService) ImportStudyMetadata(ctx context.Context, req model.StudyMetadataRequest, auditReq audit.AuditLogEventRequest) error {
	app, err := s.studyDAO.UpsertApp(ctx, req)
	if err != nil {
		logger.Error("Error upserting app", zap.Error(err), zap.String("appID", req.AppID))
		return err
	}

	study, err := s.studyDAO.UpsertStudy(ctx, req, app.ID)
	if err != nil {
		logger.Error("Error upserting study", zap.Error(err), zap.String("studyID", req.StudyID))
		return err
	}

	admins, err := s.userDAO.FindSuperAdmins(ctx)
	if err != nil {
		return err
	}
	for _, admin := range admins {
		if err := s.studyDAO.UpsertAppPermission(ctx, app.ID, admin.ID, model.ReadEdit, admin.ID); err != nil {
			return err
		}
		if err := s.studyDAO.UpsertStudyPermission(ctx, study.ID, app.ID, admin.ID, model.ReadEdit, admin.ID); err != nil {
			return err
		}
	}

	s.eventBus.Publish(ctx, util.EventStudyMetadataReceived, *study)
	s.postAuditEvent(ctx, audit.StudyMetadataReceived, auditReq)

	logger.Info("Study metadata saved",
		zap.String("studyID", study.ID),
		zap.String("customID", study.CustomID),
		zap.String("version", study.Version))
	return nil
}

// SendNotifications fans notification requests out to the push gateway per
// notification type and returns the gateway's multicast identifier and
// per-message results verbatim. Multiple requests are aggregated under the
// first multicast id.
func (s *StudyService) SendNotifications(ctx context.Context, form *model.NotificationForm, auditReq audit.AuditLogEventRequest) (*model.PushNotificationResponse, error) {
	if err := s.validationUtil.ValidateNotificationForm(form); err != nil {
		return nil, err
	}

	aggregate := &model.PushNotificationResponse{Results: []model.PushResult{}}
	for _, notification := range form.Notifications {
		message := util.PushMessage{
			To: topicFor(notification),
			Notification: util.PushMessageBody{
				Title: notification.NotificationTitle,
				Body:  notification.NotificationText,
			},
			Data: map[string]string{
				"studyId":          notification.CustomStudyID,
				"appId":            notification.AppID,
				"notificationType": notification.NotificationType,
			},
		}

		response, err := s.pushClient.Send(ctx, message)
		if err != nil {
			logger.Error("Push gateway request failed",
				zap.Error(err),
				zap.String("studyID", notification.StudyID),
				zap.String("notificationType", notification.NotificationType))
			return nil, err
		}

		if aggregate.MulticastID == 0 {
			aggregate.MulticastID = response.MulticastID
		}
		aggregate.Success += response.Success
		aggregate.Failure += response.Failure
		aggregate.Results = append(aggregate.Results, response.Results...)
	}

	s.eventBus.Publish(ctx, util.EventNotificationDispatched, *form)
	s.postAuditEvent(ctx, audit.NotificationDispatched, auditReq)

	return aggregate, nil
}

// topicFor maps a notification type to its gateway topic: study-level
// notifications address the study topic, gateway-level ones the app-wide
// broadcast topic.
func topicFor(notification model.NotificationRequest) string {
	if notification.NotificationType == model.NotificationTypeGateway {
		return "/topics/GATEWAY_" + notification.AppID
	}
	return "/topics/STUDY_" + notification.CustomStudyID
}

func (s *StudyService) postAuditEvent(ctx context.Context, event audit.AuditLogEvent, auditReq audit.AuditLogEventRequest) {
	if s.auditService == nil {
		return
	}
	if err := s.auditService.PostAuditLogEvent(ctx, event, auditReq); err != nil {
		logger.Warn("Failed to post audit log event",
			zap.Error(err),
			zap.String("eventCode", event.EventCode))
	}
}

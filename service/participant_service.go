// api/service/participant_service.go
package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/trialdesk/participant-manager/api/audit"
	"github.com/trialdesk/participant-manager/api/dao"
	api_errors "github.com/trialdesk/participant-manager/api/errors"
	logger "github.com/trialdesk/participant-manager/api/logging"
	"github.com/trialdesk/participant-manager/api/model"
	"github.com/trialdesk/participant-manager/api/util"
)

// maxConcurrentInvites caps the number of registry entries processed in
// parallel during a bulk invitation.
const maxConcurrentInvites = 10

type IParticipantService interface {
	InviteParticipants(ctx context.Context, siteID string, req model.InviteParticipantRequest, userID string, auditReq audit.AuditLogEventRequest) (*model.InviteParticipantResponse, error)
	GetSiteParticipants(ctx context.Context, siteID, userID string) (*model.SiteParticipantsResponse, error)
}

// ParticipantService handles participant onboarding at sites.
type ParticipantService struct {
	participantDAO  *dao.ParticipantStudyDAO
	studyDAO        *dao.StudyDAO
	userDAO         *dao.UserDAO
	validationUtil  *util.ValidationUtil
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
	auditService    audit.Service
}

func NewParticipantService(
	participantDAO *dao.ParticipantStudyDAO,
	studyDAO *dao.StudyDAO,
	userDAO *dao.UserDAO,
	validationUtil *util.ValidationUtil,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
	auditService audit.Service,
) *ParticipantService {
	service := &ParticipantService{
		participantDAO:  participantDAO,
		studyDAO:        studyDAO,
		userDAO:         userDAO,
		validationUtil:  validationUtil,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
		auditService:    auditService,
	}

	eventBus.Subscribe(util.EventParticipantsInvited, service.handleParticipantsInvited)

	return service
}

func (s *ParticipantService) handleParticipantsInvited(ctx context.Context, event util.Event) error {
	response, ok := event.Payload.(model.InviteParticipantResponse)
	if !ok {
		return nil
	}
	return s.notificationSvc.NotifyParticipantsInvited(ctx, response)
}

// InviteParticipants marks the given registry entries as invited. Entries
// are processed in parallel with bounded concurrency; each id either lands
// in SuccessIDs or FailedInvitations, never both.
func (s *ParticipantService) InviteParticipants(ctx context.Context, siteID string, req model.InviteParticipantRequest, userID string, auditReq audit.AuditLogEventRequest) (*model.InviteParticipantResponse, error) {
	site, err := s.participantDAO.GetSite(ctx, siteID)
	if err != nil {
		return nil, err
	}

	if err := s.requireSitePermission(ctx, site, userID, model.ReadEdit); err != nil {
		return nil, err
	}

	var (
		mu      sync.Mutex
		success []string
		failed  []string
	)

	group, groupCtx := errgroup.WithContext(ctx)
	sem := semaphore.NewWeighted(maxConcurrentInvites)

	for _, id := range req.IDs {
		registryID := id
		if err := sem.Acquire(groupCtx, 1); err != nil {
			return nil, err
		}
		group.Go(func() error {
			defer sem.Release(1)
			invited := s.inviteOne(groupCtx, site, registryID)
			mu.Lock()
			if invited {
				success = append(success, registryID)
			} else {
				failed = append(failed, registryID)
			}
			mu.Unlock()
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	sort.Strings(success)
	sort.Strings(failed)

	response := &model.InviteParticipantResponse{
		IDs:               req.IDs,
		SuccessIDs:        success,
		FailedInvitations: failed,
		Message:           api_errors.ParticipantInviteSuccess.Message,
	}

	s.eventBus.Publish(ctx, util.EventParticipantsInvited, *response)
	s.postAuditEvent(ctx, audit.ParticipantInvited, auditReq)

	logger.Info("Participants invited",
		zap.String("siteID", siteID),
		zap.Int("requested", len(req.IDs)),
		zap.Int("invited", len(success)),
		zap.Int("failed", len(failed)))
	return response, nil
}

// inviteOne advances a single registry entry to invited. It fails when the
// entry does not exist, belongs to a different site, or is already enrolled
// or disabled.
func (s *ParticipantService) inviteOne(ctx context.Context, site *model.SiteEntity, registryID string) bool {
	entry, err := s.participantDAO.GetRegistryEntry(ctx, registryID)
	if err != nil {
		logger.Warn("Failed to load registry entry for invite",
			zap.Error(err),
			zap.String("registryID", registryID))
		return false
	}
	if entry == nil || entry.SiteID != site.ID {
		return false
	}
	switch entry.OnboardingStatus {
	case model.OnboardingEnrolled, model.OnboardingDisabled:
		return false
	}

	now := time.Now()
	entry.OnboardingStatus = model.OnboardingInvited
	entry.InvitedAt = &now
	entry.UpdatedAt = now

	if err := s.participantDAO.UpdateRegistryEntry(ctx, entry); err != nil {
		logger.Warn("Failed to mark registry entry invited",
			zap.Error(err),
			zap.String("registryID", registryID))
		return false
	}
	return true
}

// GetSiteParticipants lists every registry entry at the site with its
// enrollment status when an enrollment exists.
func (s *ParticipantService) GetSiteParticipants(ctx context.Context, siteID, userID string) (*model.SiteParticipantsResponse, error) {
	site, err := s.participantDAO.GetSite(ctx, siteID)
	if err != nil {
		return nil, err
	}

	if err := s.requireSitePermission(ctx, site, userID, model.ReadView); err != nil {
		return nil, err
	}

	entries, err := s.participantDAO.FindRegistryEntriesBySite(ctx, siteID)
	if err != nil {
		return nil, err
	}

	registryIDs := make([]string, 0, len(entries))
	for _, entry := range entries {
		registryIDs = append(registryIDs, entry.ID)
	}

	enrollmentByRegistry := map[string]string{}
	if len(registryIDs) > 0 {
		enrollments, err := s.participantDAO.FindEnrollmentsByRegistryIDs(ctx, registryIDs)
		if err != nil {
			return nil, err
		}
		for _, enrollment := range enrollments {
			enrollmentByRegistry[enrollment.ParticipantRegistryID] = enrollment.Status
		}
	}

	response := &model.SiteParticipantsResponse{
		SiteID:       siteID,
		Participants: make([]model.ParticipantDetail, 0, len(entries)),
	}
	for _, entry := range entries {
		response.Participants = append(response.Participants, model.ParticipantDetail{
			ID:               entry.ID,
			Email:            entry.Email,
			OnboardingStatus: entry.OnboardingStatus,
			EnrollmentStatus: enrollmentByRegistry[entry.ID],
		})
	}
	return response, nil
}

// requireSitePermission checks the admin's permission on the site's study.
// Super admins hold every permission.
func (s *ParticipantService) requireSitePermission(ctx context.Context, site *model.SiteEntity, userID string, level int) error {
	admin, err := s.userDAO.Get(ctx, userID)
	if err != nil {
		return err
	}
	if admin.SuperAdmin {
		return nil
	}
	permission, err := s.studyDAO.GetStudyPermission(ctx, site.StudyID, userID)
	if err != nil {
		return err
	}
	if permission == nil || permission.Edit < level {
		return api_errors.SitePermissionAccessDenied
	}
	return nil
}

func (s *ParticipantService) postAuditEvent(ctx context.Context, event audit.AuditLogEvent, auditReq audit.AuditLogEventRequest) {
	if s.auditService == nil {
		return
	}
	if err := s.auditService.PostAuditLogEvent(ctx, event, auditReq); err != nil {
		logger.Warn("Failed to post audit log event",
			zap.Error(err),
			zap.String("eventCode", event.EventCode))
	}
}

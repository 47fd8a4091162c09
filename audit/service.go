// api/audit/service.go
package audit

import (
	"context"
)

type Service interface {
	// PostAuditLogEvent assembles the request from the event definition and
	// dispatches it to the audit sink.
	PostAuditLogEvent(ctx context.Context, event AuditLogEvent, auditRequest AuditLogEventRequest) error
}

type service struct {
	repo       Repository
	appVersion string
}

func NewService(repo Repository, appVersion string) Service {
	return &service{repo: repo, appVersion: appVersion}
}

func (s *service) PostAuditLogEvent(ctx context.Context, event AuditLogEvent, auditRequest AuditLogEventRequest) error {
	return s.repo.SaveAuditEvent(ctx, WithEvent(event, s.appVersion, auditRequest))
}

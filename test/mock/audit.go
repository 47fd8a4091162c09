// test/mock/audit.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/trialdesk/participant-manager/api/audit"
)

// MockAuditService is a mock implementation of audit.Service
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) PostAuditLogEvent(ctx context.Context, event audit.AuditLogEvent, auditRequest audit.AuditLogEventRequest) error {
	args := m.Called(ctx, event, auditRequest)
	return args.Error(0)
}

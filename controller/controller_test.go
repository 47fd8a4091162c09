// api/controller/controller_test.go
package controller_test

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/trialdesk/participant-manager/api/controller"
	logger "github.com/trialdesk/participant-manager/api/logging"
	"github.com/trialdesk/participant-manager/api/model"
	"github.com/trialdesk/participant-manager/api/router"
	"github.com/trialdesk/participant-manager/api/service"
	testmock "github.com/trialdesk/participant-manager/api/test/mock"
	"github.com/trialdesk/participant-manager/api/test/testutil"
	"github.com/trialdesk/participant-manager/api/util"
)

// testEnv stands the full stack up against an in-memory database: real
// services and DAOs behind the real router, with only the audit sink mocked.
type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
	audit  *testmock.MockAuditService
}

func setupTestEnv(t *testing.T, pushURL string) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.InitLogger(t.TempDir())

	gdb := testutil.SetupSQLiteTestDB(t)

	auditService := new(testmock.MockAuditService)
	auditService.On("PostAuditLogEvent", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	validationUtil := util.NewValidationUtil()
	eventBus := util.NewEventBus()
	pushClient := util.NewPushClient(pushURL, "test-key")

	services := service.InitializeServices(
		gdb,
		auditService,
		validationUtil,
		util.NewCacheService(),
		util.NewNotificationService(),
		pushClient,
		eventBus,
	)
	controllers := controller.InitializeControllers(services, validationUtil)

	return &testEnv{
		db:     gdb,
		router: router.SetupRouter(controllers, 1000, time.Minute),
		audit:  auditService,
	}
}

func seedAdmin(t *testing.T, gdb *gorm.DB, id string, superAdmin bool, manageLocations int) {
	t.Helper()
	admin := model.UserRegAdminEntity{
		ID:              id,
		Email:           id + "@trialdesk.test",
		SuperAdmin:      superAdmin,
		ManageLocations: manageLocations,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	require.NoError(t, gdb.Create(&admin).Error)
}

func seedLocation(t *testing.T, gdb *gorm.DB, customID string, status int, isDefault bool) model.LocationEntity {
	t.Helper()
	location := model.LocationEntity{
		ID:          uuid.New().String(),
		CustomID:    customID,
		Name:        "Location " + customID,
		Description: "Seeded location",
		Status:      status,
		IsDefault:   isDefault,
		CreatedBy:   "seed",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	require.NoError(t, gdb.Create(&location).Error)
	return location
}

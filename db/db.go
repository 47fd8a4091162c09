// api/db/db.go
package db

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/trialdesk/participant-manager/api/config"
	logger "github.com/trialdesk/participant-manager/api/logging"
	"github.com/trialdesk/participant-manager/api/model"
)

var DB *gorm.DB

func InitPostgres() error {
	dsn := config.GetString("db.dsn")
	logger.Info("Connecting to Postgres")

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to access database pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(DB); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	logger.Info("Successfully connected to Postgres")
	return nil
}

// Migrate keeps the schema in step with the entity definitions.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&model.LocationEntity{},
		&model.AppEntity{},
		&model.StudyEntity{},
		&model.SiteEntity{},
		&model.UserRegAdminEntity{},
		&model.AppPermissionEntity{},
		&model.StudyPermissionEntity{},
		&model.ParticipantRegistryEntity{},
		&model.ParticipantStudyEntity{},
	)
}

func ClosePostgres() {
	if DB == nil {
		return
	}
	sqlDB, err := DB.DB()
	if err != nil {
		logger.Error("Error accessing database pool on close", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection", zap.Error(err))
	} else {
		logger.Info("Database connection closed successfully")
	}
}

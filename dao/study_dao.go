// api/dao/study_dao.go
package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/trialdesk/participant-manager/api/model"
)

type StudyDAO struct {
	db *gorm.DB
}

func NewStudyDAO(db *gorm.DB) *StudyDAO {
	return &StudyDAO{db: db}
}

// UpsertApp creates the app row keyed by its external appId, or refreshes
// its descriptive fields when it already exists.
func (dao *StudyDAO) UpsertApp(ctx context.Context, metadata model.StudyMetadataRequest) (*model.AppEntity, error) {
	var app model.AppEntity
	err := dao.db.WithContext(ctx).First(&app, "app_id = ?", metadata.AppID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		app = model.AppEntity{
			ID:          uuid.New().String(),
			AppID:       metadata.AppID,
			Name:        metadata.AppName,
			Description: metadata.AppDescription,
			OrgID:       metadata.OrgID,
		}
		if err := dao.db.WithContext(ctx).Create(&app).Error; err != nil {
			return nil, fmt.Errorf("failed to create app: %w", err)
		}
		return &app, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve app: %w", err)
	}

	app.Name = metadata.AppName
	app.Description = metadata.AppDescription
	app.OrgID = metadata.OrgID
	if err := dao.db.WithContext(ctx).Save(&app).Error; err != nil {
		return nil, fmt.Errorf("failed to update app: %w", err)
	}
	return &app, nil
}

// UpsertStudy creates the study row keyed by its external studyId, or
// refreshes version, title, sponsor, tagline and the other descriptive
// fields. Re-posting the same studyId updates rather than duplicates.
func (dao *StudyDAO) UpsertStudy(ctx context.Context, metadata model.StudyMetadataRequest, appInfoID string) (*model.StudyEntity, error) {
	var study model.StudyEntity
	err := dao.db.WithContext(ctx).First(&study, "custom_id = ?", metadata.StudyID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		study = model.StudyEntity{
			ID:        uuid.New().String(),
			CustomID:  metadata.StudyID,
			AppInfoID: appInfoID,
			OrgID:     metadata.OrgID,
		}
		applyStudyMetadata(&study, metadata)
		if err := dao.db.WithContext(ctx).Create(&study).Error; err != nil {
			return nil, fmt.Errorf("failed to create study: %w", err)
		}
		return &study, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve study: %w", err)
	}

	study.AppInfoID = appInfoID
	study.OrgID = metadata.OrgID
	applyStudyMetadata(&study, metadata)
	if err := dao.db.WithContext(ctx).Save(&study).Error; err != nil {
		return nil, fmt.Errorf("failed to update study: %w", err)
	}
	return &study, nil
}

func applyStudyMetadata(study *model.StudyEntity, metadata model.StudyMetadataRequest) {
	study.Title = metadata.StudyTitle
	study.Version = metadata.StudyVersion
	study.Type = metadata.StudyType
	study.Status = metadata.StudyStatus
	study.Category = metadata.StudyCategory
	study.Tagline = metadata.StudyTagline
	study.Sponsor = metadata.StudySponsor
	study.Enrolling = metadata.StudyEnrolling
}

// UpsertAppPermission grants read-edit on the app to the admin, attributing
// the grant to createdBy. Existing rows are raised to the given level.
func (dao *StudyDAO) UpsertAppPermission(ctx context.Context, appInfoID, adminID string, edit int, createdBy string) error {
	var permission model.AppPermissionEntity
	err := dao.db.WithContext(ctx).
		First(&permission, "app_info_id = ? AND admin_id = ?", appInfoID, adminID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		permission = model.AppPermissionEntity{
			ID:        uuid.New().String(),
			AppInfoID: appInfoID,
			AdminID:   adminID,
			Edit:      edit,
			CreatedBy: createdBy,
			CreatedAt: time.Now(),
		}
		if err := dao.db.WithContext(ctx).Create(&permission).Error; err != nil {
			return fmt.Errorf("failed to create app permission: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to retrieve app permission: %w", err)
	}

	permission.Edit = edit
	if err := dao.db.WithContext(ctx).Save(&permission).Error; err != nil {
		return fmt.Errorf("failed to update app permission: %w", err)
	}
	return nil
}

// UpsertStudyPermission mirrors UpsertAppPermission for the study scope.
func (dao *StudyDAO) UpsertStudyPermission(ctx context.Context, studyInfoID, appInfoID, adminID string, edit int, createdBy string) error {
	var permission model.StudyPermissionEntity
	err := dao.db.WithContext(ctx).
		First(&permission, "study_info_id = ? AND admin_id = ?", studyInfoID, adminID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		permission = model.StudyPermissionEntity{
			ID:          uuid.New().String(),
			StudyInfoID: studyInfoID,
			AppInfoID:   appInfoID,
			AdminID:     adminID,
			Edit:        edit,
			CreatedBy:   createdBy,
			CreatedAt:   time.Now(),
		}
		if err := dao.db.WithContext(ctx).Create(&permission).Error; err != nil {
			return fmt.Errorf("failed to create study permission: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to retrieve study permission: %w", err)
	}

	permission.Edit = edit
	if err := dao.db.WithContext(ctx).Save(&permission).Error; err != nil {
		return fmt.Errorf("failed to update study permission: %w", err)
	}
	return nil
}

// GetStudyPermission returns the admin's permission row on a study, or nil
// when none has been granted.
func (dao *StudyDAO) GetStudyPermission(ctx context.Context, studyInfoID, adminID string) (*model.StudyPermissionEntity, error) {
	var permission model.StudyPermissionEntity
	err := dao.db.WithContext(ctx).
		First(&permission, "study_info_id = ? AND admin_id = ?", studyInfoID, adminID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve study permission: %w", err)
	}
	return &permission, nil
}

func (dao *StudyDAO) GetStudyByCustomID(ctx context.Context, customID string) (*model.StudyEntity, error) {
	var study model.StudyEntity
	err := dao.db.WithContext(ctx).First(&study, "custom_id = ?", customID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve study: %w", err)
	}
	return &study, nil
}

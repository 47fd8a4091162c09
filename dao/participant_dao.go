// api/dao/participant_dao.go
package dao

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	api_errors "github.com/trialdesk/participant-manager/api/errors"
	"github.com/trialdesk/participant-manager/api/model"
)

// ParticipantStudyDAO covers participant registry entries and their study
// enrollments.
type ParticipantStudyDAO struct {
	db *gorm.DB
}

func NewParticipantStudyDAO(db *gorm.DB) *ParticipantStudyDAO {
	return &ParticipantStudyDAO{db: db}
}

func (dao *ParticipantStudyDAO) GetSite(ctx context.Context, siteID string) (*model.SiteEntity, error) {
	var site model.SiteEntity
	err := dao.db.WithContext(ctx).First(&site, "id = ?", siteID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, api_errors.SiteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve site: %w", err)
	}
	return &site, nil
}

func (dao *ParticipantStudyDAO) GetRegistryEntry(ctx context.Context, registryID string) (*model.ParticipantRegistryEntity, error) {
	var entry model.ParticipantRegistryEntity
	err := dao.db.WithContext(ctx).First(&entry, "id = ?", registryID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve registry entry: %w", err)
	}
	return &entry, nil
}

func (dao *ParticipantStudyDAO) FindRegistryEntriesBySite(ctx context.Context, siteID string) ([]model.ParticipantRegistryEntity, error) {
	var entries []model.ParticipantRegistryEntity
	err := dao.db.WithContext(ctx).
		Where("site_id = ?", siteID).
		Order("created_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list registry entries for site: %w", err)
	}
	return entries, nil
}

func (dao *ParticipantStudyDAO) UpdateRegistryEntry(ctx context.Context, entry *model.ParticipantRegistryEntity) error {
	if err := dao.db.WithContext(ctx).Save(entry).Error; err != nil {
		return fmt.Errorf("failed to update registry entry: %w", err)
	}
	return nil
}

// FindEnrollmentsBySiteIDs returns the enrollments at any of the given sites.
func (dao *ParticipantStudyDAO) FindEnrollmentsBySiteIDs(ctx context.Context, siteIDs []string) ([]model.ParticipantStudyEntity, error) {
	var enrollments []model.ParticipantStudyEntity
	err := dao.db.WithContext(ctx).
		Where("site_id IN ?", siteIDs).
		Find(&enrollments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list enrollments by sites: %w", err)
	}
	return enrollments, nil
}

func (dao *ParticipantStudyDAO) FindEnrollmentsByStudyID(ctx context.Context, studyID string) ([]model.ParticipantStudyEntity, error) {
	var enrollments []model.ParticipantStudyEntity
	err := dao.db.WithContext(ctx).
		Where("study_id = ?", studyID).
		Find(&enrollments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list enrollments by study: %w", err)
	}
	return enrollments, nil
}

// FindEnrollmentsByRegistryIDs returns the enrollments attached to any of
// the given registry entries.
func (dao *ParticipantStudyDAO) FindEnrollmentsByRegistryIDs(ctx context.Context, registryIDs []string) ([]model.ParticipantStudyEntity, error) {
	var enrollments []model.ParticipantStudyEntity
	err := dao.db.WithContext(ctx).
		Where("participant_registry_id IN ?", registryIDs).
		Find(&enrollments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list enrollments by registry entries: %w", err)
	}
	return enrollments, nil
}

// FindEnrollmentsByStudyAndUser returns the enrollments matching any of the
// given study ids and any of the given user ids.
func (dao *ParticipantStudyDAO) FindEnrollmentsByStudyAndUser(ctx context.Context, studyIDs, userDetailsIDs []string) ([]model.ParticipantStudyEntity, error) {
	var enrollments []model.ParticipantStudyEntity
	err := dao.db.WithContext(ctx).
		Where("study_id IN ? AND user_details_id IN ?", studyIDs, userDetailsIDs).
		Find(&enrollments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list enrollments by study and user: %w", err)
	}
	return enrollments, nil
}

// CountByStudyAndStatus counts enrollments of a study in any of the given
// statuses.
func (dao *ParticipantStudyDAO) CountByStudyAndStatus(ctx context.Context, studyID string, statuses []string) (int64, error) {
	var count int64
	err := dao.db.WithContext(ctx).
		Model(&model.ParticipantStudyEntity{}).
		Where("study_id = ? AND status IN ?", studyID, statuses).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count enrollments: %w", err)
	}
	return count, nil
}

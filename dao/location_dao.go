// api/dao/location_dao.go
package dao

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	api_errors "github.com/trialdesk/participant-manager/api/errors"
	"github.com/trialdesk/participant-manager/api/model"
)

type LocationDAO struct {
	db *gorm.DB
}

func NewLocationDAO(db *gorm.DB) *LocationDAO {
	return &LocationDAO{db: db}
}

func (dao *LocationDAO) Create(ctx context.Context, location *model.LocationEntity) error {
	if err := dao.db.WithContext(ctx).Create(location).Error; err != nil {
		return fmt.Errorf("failed to create location: %w", err)
	}
	return nil
}

func (dao *LocationDAO) Get(ctx context.Context, locationID string) (*model.LocationEntity, error) {
	var location model.LocationEntity
	err := dao.db.WithContext(ctx).First(&location, "id = ?", locationID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, api_errors.LocationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve location: %w", err)
	}
	return &location, nil
}

func (dao *LocationDAO) GetByCustomID(ctx context.Context, customID string) (*model.LocationEntity, error) {
	var location model.LocationEntity
	err := dao.db.WithContext(ctx).First(&location, "custom_id = ?", customID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, api_errors.LocationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve location by custom id: %w", err)
	}
	return &location, nil
}

func (dao *LocationDAO) List(ctx context.Context, limit, offset int) ([]model.LocationEntity, error) {
	var locations []model.LocationEntity
	err := dao.db.WithContext(ctx).
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&locations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return locations, nil
}

func (dao *LocationDAO) Update(ctx context.Context, location *model.LocationEntity) error {
	if err := dao.db.WithContext(ctx).Save(location).Error; err != nil {
		return fmt.Errorf("failed to update location: %w", err)
	}
	return nil
}

// StudyCustomIDs returns the custom ids of studies running at sites attached
// to the location.
func (dao *LocationDAO) StudyCustomIDs(ctx context.Context, locationID string) ([]string, error) {
	var customIDs []string
	err := dao.db.WithContext(ctx).
		Model(&model.SiteEntity{}).
		Joins("JOIN study_info ON study_info.id = sites.study_id").
		Where("sites.location_id = ?", locationID).
		Distinct().
		Pluck("study_info.custom_id", &customIDs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list studies for location: %w", err)
	}
	return customIDs, nil
}

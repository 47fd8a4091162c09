// api/dao/user_dao.go
package dao

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	api_errors "github.com/trialdesk/participant-manager/api/errors"
	"github.com/trialdesk/participant-manager/api/model"
)

type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{db: db}
}

func (dao *UserDAO) Get(ctx context.Context, adminID string) (*model.UserRegAdminEntity, error) {
	var admin model.UserRegAdminEntity
	err := dao.db.WithContext(ctx).First(&admin, "id = ?", adminID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, api_errors.UserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve admin user: %w", err)
	}
	return &admin, nil
}

func (dao *UserDAO) FindSuperAdmins(ctx context.Context) ([]model.UserRegAdminEntity, error) {
	var admins []model.UserRegAdminEntity
	err := dao.db.WithContext(ctx).
		Where("super_admin = ?", true).
		Find(&admins).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list super admins: %w", err)
	}
	return admins, nil
}

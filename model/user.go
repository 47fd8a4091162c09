// api/model/user.go
package model

import "time"

// Permission levels for a managed resource scope.
const (
	NoPermission = 0
	ReadView     = 1
	ReadEdit     = 2
)

type UserRegAdminEntity struct {
	ID              string    `gorm:"primaryKey;size:64" json:"id"`
	Email           string    `gorm:"size:255;uniqueIndex" json:"email"`
	FirstName       string    `gorm:"size:64" json:"firstName"`
	LastName        string    `gorm:"size:64" json:"lastName"`
	SuperAdmin      bool      `gorm:"column:super_admin" json:"superAdmin"`
	ManageLocations int       `gorm:"column:manage_locations" json:"manageLocations"`
	Status          int       `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (UserRegAdminEntity) TableName() string { return "ur_admin_user" }

// AppPermissionEntity grants an admin a permission level on an app.
type AppPermissionEntity struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	AppInfoID string    `gorm:"column:app_info_id;size:64;index" json:"appInfoId"`
	AdminID   string    `gorm:"column:admin_id;size:64;index" json:"adminId"`
	Edit      int       `json:"edit"`
	CreatedBy string    `gorm:"size:64" json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

func (AppPermissionEntity) TableName() string { return "app_permissions" }

// StudyPermissionEntity grants an admin a permission level on a study.
type StudyPermissionEntity struct {
	ID          string    `gorm:"primaryKey;size:64" json:"id"`
	StudyInfoID string    `gorm:"column:study_info_id;size:64;index" json:"studyInfoId"`
	AppInfoID   string    `gorm:"column:app_info_id;size:64" json:"appInfoId"`
	AdminID     string    `gorm:"column:admin_id;size:64;index" json:"adminId"`
	Edit        int       `json:"edit"`
	CreatedBy   string    `gorm:"size:64" json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (StudyPermissionEntity) TableName() string { return "study_permissions" }

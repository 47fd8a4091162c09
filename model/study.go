// api/model/study.go
package model

import "time"

type AppEntity struct {
	ID          string    `gorm:"primaryKey;size:64" json:"id"`
	AppID       string    `gorm:"column:app_id;size:64;uniqueIndex" json:"appId"`
	Name        string    `gorm:"size:255" json:"appName"`
	Description string    `gorm:"size:512" json:"appDescription"`
	OrgID       string    `gorm:"column:org_id;size:64" json:"orgId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (AppEntity) TableName() string { return "app_info" }

type StudyEntity struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	CustomID  string    `gorm:"column:custom_id;size:64;uniqueIndex" json:"customId"`
	Title     string    `gorm:"size:255" json:"title"`
	Version   string    `gorm:"size:32" json:"version"`
	Type      string    `gorm:"size:32" json:"type"`
	Status    string    `gorm:"size:32" json:"status"`
	Category  string    `gorm:"size:64" json:"category"`
	Tagline   string    `gorm:"size:255" json:"tagline"`
	Sponsor   string    `gorm:"size:255" json:"sponsor"`
	Enrolling string    `gorm:"size:8" json:"enrolling"`
	AppInfoID string    `gorm:"column:app_info_id;size:64;index" json:"appInfoId"`
	OrgID     string    `gorm:"column:org_id;size:64" json:"orgId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (StudyEntity) TableName() string { return "study_info" }

// SiteEntity links a study to the location it runs at.
type SiteEntity struct {
	ID         string    `gorm:"primaryKey;size:64" json:"id"`
	LocationID string    `gorm:"column:location_id;size:64;index" json:"locationId"`
	StudyID    string    `gorm:"column:study_id;size:64;index" json:"studyId"`
	Name       string    `gorm:"size:255" json:"name"`
	Status     int       `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (SiteEntity) TableName() string { return "sites" }

// StudyMetadataRequest is the ingestion payload from the study builder.
// StudyID, StudyVersion, AppID and OrgID are required.
type StudyMetadataRequest struct {
	StudyID        string `json:"studyId"`
	StudyTitle     string `json:"studyTitle"`
	StudyVersion   string `json:"studyVersion"`
	StudyType      string `json:"studyType"`
	StudyStatus    string `json:"studyStatus"`
	StudyCategory  string `json:"studyCategory"`
	StudyTagline   string `json:"studyTagline"`
	StudySponsor   string `json:"studySponsor"`
	StudyEnrolling string `json:"studyEnrolling"`
	AppID          string `json:"appId"`
	AppName        string `json:"appName"`
	AppDescription string `json:"appDescription"`
	OrgID          string `json:"orgId"`
}

type StudyMetadataResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

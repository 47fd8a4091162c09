// api/model/participant.go
package model

import "time"

// Onboarding status of a participant registry entry.
const (
	OnboardingNew      = "N"
	OnboardingInvited  = "I"
	OnboardingEnrolled = "E"
	OnboardingDisabled = "D"
)

// Enrollment status of a participant within a study.
const (
	EnrollmentStatusYetToEnroll = "yetToEnroll"
	EnrollmentStatusEnrolled    = "enrolled"
	EnrollmentStatusWithdrawn   = "withdrawn"
)

// ParticipantRegistryEntity is a participant's registration record at a site,
// created when the participant is added and advanced by the invite flow.
type ParticipantRegistryEntity struct {
	ID               string     `gorm:"primaryKey;size:64" json:"id"`
	SiteID           string     `gorm:"column:site_id;size:64;index" json:"siteId"`
	StudyID          string     `gorm:"column:study_id;size:64;index" json:"studyId"`
	Email            string     `gorm:"size:255" json:"email"`
	OnboardingStatus string     `gorm:"column:onboarding_status;size:8" json:"onboardingStatus"`
	InvitedAt        *time.Time `gorm:"column:invited_at" json:"invitedAt,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

func (ParticipantRegistryEntity) TableName() string { return "participant_registry_site" }

// ParticipantStudyEntity links a participant/user to a study, a site and a
// registry entry, with an enrollment status.
type ParticipantStudyEntity struct {
	ID                    string    `gorm:"primaryKey;size:64" json:"id"`
	ParticipantRegistryID string    `gorm:"column:participant_registry_id;size:64;index" json:"participantRegistryId"`
	StudyID               string    `gorm:"column:study_id;size:64;index" json:"studyId"`
	SiteID                string    `gorm:"column:site_id;size:64;index" json:"siteId"`
	UserDetailsID         string    `gorm:"column:user_details_id;size:64;index" json:"userDetailsId"`
	Status                string    `gorm:"size:32" json:"status"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

func (ParticipantStudyEntity) TableName() string { return "participant_study_info" }

type InviteParticipantRequest struct {
	IDs []string `json:"ids"`
}

// InviteParticipantResponse reports a bulk invitation: every requested id,
// the ids that were invited and the ids that failed. Success and failure
// lists are disjoint subsets of IDs.
type InviteParticipantResponse struct {
	IDs               []string `json:"ids"`
	SuccessIDs        []string `json:"successIds"`
	FailedInvitations []string `json:"failedInvitations"`
	Message           string   `json:"message"`
}

type ParticipantDetail struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	OnboardingStatus string `json:"onboardingStatus"`
	EnrollmentStatus string `json:"enrollmentStatus,omitempty"`
}

type SiteParticipantsResponse struct {
	SiteID       string              `json:"siteId"`
	Participants []ParticipantDetail `json:"participants"`
}

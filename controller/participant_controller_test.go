// api/controller/participant_controller_test.go
package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/trialdesk/participant-manager/api/model"
)

func seedStudyWithSite(t *testing.T, gdb *gorm.DB, customID string) (model.StudyEntity, model.SiteEntity) {
	t.Helper()
	study := model.StudyEntity{
		ID:       uuid.New().String(),
		CustomID: customID,
		Title:    "Study " + customID,
		Version:  "1.0",
	}
	require.NoError(t, gdb.Create(&study).Error)

	site := model.SiteEntity{
		ID:        uuid.New().String(),
		StudyID:   study.ID,
		Name:      "Site for " + customID,
		Status:    1,
		CreatedAt: time.Now(),
	}
	require.NoError(t, gdb.Create(&site).Error)
	return study, site
}

func seedRegistryEntry(t *testing.T, gdb *gorm.DB, siteID, studyID, email, status string) model.ParticipantRegistryEntity {
	t.Helper()
	entry := model.ParticipantRegistryEntity{
		ID:               uuid.New().String(),
		SiteID:           siteID,
		StudyID:          studyID,
		Email:            email,
		OnboardingStatus: status,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
	require.NoError(t, gdb.Create(&entry).Error)
	return entry
}

func seedStudyPermission(t *testing.T, gdb *gorm.DB, studyID, adminID string, edit int) {
	t.Helper()
	perm := model.StudyPermissionEntity{
		ID:          uuid.New().String(),
		StudyInfoID: studyID,
		AdminID:     adminID,
		Edit:        edit,
		CreatedBy:   adminID,
		CreatedAt:   time.Now(),
	}
	require.NoError(t, gdb.Create(&perm).Error)
}

func TestInviteParticipants(t *testing.T) {
	env := setupTestEnv(t, "")
	seedAdmin(t, env.db, "admin-1", false, model.NoPermission)
	seedAdmin(t, env.db, "viewer-1", false, model.NoPermission)
	seedAdmin(t, env.db, "outsider-1", false, model.NoPermission)

	study, site := seedStudyWithSite(t, env.db, "ONCO-01")
	seedStudyPermission(t, env.db, study.ID, "admin-1", model.ReadEdit)
	seedStudyPermission(t, env.db, study.ID, "viewer-1", model.ReadView)

	_, otherSite := seedStudyWithSite(t, env.db, "ONCO-02")

	fresh := seedRegistryEntry(t, env.db, site.ID, study.ID, "new@trialdesk.test", model.OnboardingNew)
	invited := seedRegistryEntry(t, env.db, site.ID, study.ID, "again@trialdesk.test", model.OnboardingInvited)
	enrolled := seedRegistryEntry(t, env.db, site.ID, study.ID, "enrolled@trialdesk.test", model.OnboardingEnrolled)
	disabled := seedRegistryEntry(t, env.db, site.ID, study.ID, "disabled@trialdesk.test", model.OnboardingDisabled)
	foreign := seedRegistryEntry(t, env.db, otherSite.ID, study.ID, "other@trialdesk.test", model.OnboardingNew)

	invite := func(t *testing.T, userID, siteID, body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/sites/"+siteID+"/participants/invite", strings.NewReader(body))
		req.Header.Set("userId", userID)
		env.router.ServeHTTP(w, req)
		return w
	}

	t.Run("MixedOutcome", func(t *testing.T) {
		ids, _ := json.Marshal([]string{fresh.ID, invited.ID, enrolled.ID, disabled.ID, foreign.ID, "no-such-id"})
		w := invite(t, "admin-1", site.ID, `{"ids":`+string(ids)+`}`)

		require.Equal(t, http.StatusOK, w.Code)

		var resp model.InviteParticipantResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

		assert.ElementsMatch(t, []string{fresh.ID, invited.ID}, resp.SuccessIDs)
		assert.ElementsMatch(t, []string{enrolled.ID, disabled.ID, foreign.ID, "no-such-id"}, resp.FailedInvitations)
		assert.Len(t, resp.IDs, 6)

		// Success and failure never overlap.
		for _, id := range resp.SuccessIDs {
			assert.NotContains(t, resp.FailedInvitations, id)
		}

		var stored model.ParticipantRegistryEntity
		require.NoError(t, env.db.First(&stored, "id = ?", fresh.ID).Error)
		assert.Equal(t, model.OnboardingInvited, stored.OnboardingStatus)
		require.NotNil(t, stored.InvitedAt)

		stored = model.ParticipantRegistryEntity{}
		require.NoError(t, env.db.First(&stored, "id = ?", enrolled.ID).Error)
		assert.Equal(t, model.OnboardingEnrolled, stored.OnboardingStatus, "enrolled entries are untouched")
	})

	t.Run("EmptyIDList", func(t *testing.T) {
		w := invite(t, "admin-1", site.ID, `{"ids":[]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("SiteNotFound", func(t *testing.T) {
		w := invite(t, "admin-1", "no-such-site", `{"ids":["x"]}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("ViewPermissionCannotInvite", func(t *testing.T) {
		w := invite(t, "viewer-1", site.ID, `{"ids":["`+fresh.ID+`"]}`)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("NoPermissionDenied", func(t *testing.T) {
		w := invite(t, "outsider-1", site.ID, `{"ids":["`+fresh.ID+`"]}`)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestGetSiteParticipants(t *testing.T) {
	env := setupTestEnv(t, "")
	seedAdmin(t, env.db, "super-1", true, model.NoPermission)

	study, site := seedStudyWithSite(t, env.db, "NEURO-01")
	entry := seedRegistryEntry(t, env.db, site.ID, study.ID, "p1@trialdesk.test", model.OnboardingEnrolled)
	seedRegistryEntry(t, env.db, site.ID, study.ID, "p2@trialdesk.test", model.OnboardingNew)

	enrollment := model.ParticipantStudyEntity{
		ID:                    uuid.New().String(),
		ParticipantRegistryID: entry.ID,
		StudyID:               study.ID,
		SiteID:                site.ID,
		UserDetailsID:         uuid.New().String(),
		Status:                model.EnrollmentStatusEnrolled,
		CreatedAt:             time.Now(),
		UpdatedAt:             time.Now(),
	}
	require.NoError(t, env.db.Create(&enrollment).Error)

	t.Run("Success", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/sites/"+site.ID+"/participants", nil)
		req.Header.Set("userId", "super-1")
		env.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp model.SiteParticipantsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, site.ID, resp.SiteID)
		require.Len(t, resp.Participants, 2)

		byEmail := map[string]model.ParticipantDetail{}
		for _, p := range resp.Participants {
			byEmail[p.Email] = p
		}
		assert.Equal(t, model.EnrollmentStatusEnrolled, byEmail["p1@trialdesk.test"].EnrollmentStatus)
		assert.Empty(t, byEmail["p2@trialdesk.test"].EnrollmentStatus)
	})

	t.Run("SiteNotFound", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/sites/missing/participants", nil)
		req.Header.Set("userId", "super-1")
		env.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

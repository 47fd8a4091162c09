// api/controller/study_controller_test.go
package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trialdesk/participant-manager/api/model"
	"github.com/trialdesk/participant-manager/api/util"
)

const studyMetadataBody = `{
	"studyId": "CARDIO-01",
	"studyTitle": "Cardiology Outcomes",
	"studyVersion": "1.0",
	"studyType": "Interventional",
	"studyStatus": "Active",
	"studySponsor": "Trialdesk",
	"appId": "app-cardio",
	"appName": "Cardio App",
	"orgId": "org-1"
}`

func TestImportStudyMetadata(t *testing.T) {
	env := setupTestEnv(t, "")
	seedAdmin(t, env.db, "super-1", true, model.NoPermission)
	seedAdmin(t, env.db, "super-2", true, model.NoPermission)
	seedAdmin(t, env.db, "regular-1", false, model.ReadEdit)

	t.Run("Success", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/studies/studymetadata", strings.NewReader(studyMetadataBody))
		env.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Study metadata saved successfully")

		var study model.StudyEntity
		require.NoError(t, env.db.First(&study, "custom_id = ?", "CARDIO-01").Error)
		assert.Equal(t, "Cardiology Outcomes", study.Title)
		assert.Equal(t, "1.0", study.Version)

		var app model.AppEntity
		require.NoError(t, env.db.First(&app, "app_id = ?", "app-cardio").Error)
		assert.Equal(t, "org-1", app.OrgID)

		// Every super admin is granted edit on both scopes, attributed to
		// themselves; regular admins get nothing.
		var appPerms []model.AppPermissionEntity
		require.NoError(t, env.db.Find(&appPerms, "app_info_id = ?", app.ID).Error)
		require.Len(t, appPerms, 2)
		for _, perm := range appPerms {
			assert.Equal(t, model.ReadEdit, perm.Edit)
			assert.Equal(t, perm.AdminID, perm.CreatedBy)
		}

		var studyPerms []model.StudyPermissionEntity
		require.NoError(t, env.db.Find(&studyPerms, "study_info_id = ?", study.ID).Error)
		assert.Len(t, studyPerms, 2)
	})

	t.Run("RepostUpdatesInsteadOfDuplicating", func(t *testing.T) {
		updated := strings.Replace(studyMetadataBody, `"studyVersion": "1.0"`, `"studyVersion": "2.0"`, 1)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/studies/studymetadata", strings.NewReader(updated))
		env.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var count int64
		require.NoError(t, env.db.Model(&model.StudyEntity{}).Where("custom_id = ?", "CARDIO-01").Count(&count).Error)
		assert.Equal(t, int64(1), count)

		var study model.StudyEntity
		require.NoError(t, env.db.First(&study, "custom_id = ?", "CARDIO-01").Error)
		assert.Equal(t, "2.0", study.Version)

		var permCount int64
		require.NoError(t, env.db.Model(&model.StudyPermissionEntity{}).Where("study_info_id = ?", study.ID).Count(&permCount).Error)
		assert.Equal(t, int64(2), permCount, "permission rows are upserted, not duplicated")
	})

	t.Run("MissingRequiredFields", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/studies/studymetadata", strings.NewReader(`{"studyTitle":"No ids"}`))
		env.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp util.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Violations, 4)
	})

	t.Run("InvalidSourceHeader", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/studies/studymetadata", strings.NewReader(studyMetadataBody))
		req.Header.Set("source", "UNKNOWN SYSTEM")
		env.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid 'source' value")
	})
}

func TestSendNotification(t *testing.T) {
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "key=test-key", r.Header.Get("Authorization"))

		var msg util.PushMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		assert.NotEmpty(t, msg.To)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(model.PushNotificationResponse{
			MulticastID: 4815162342,
			Success:     1,
			Failure:     0,
			Results:     []model.PushResult{{MessageID: "m-1"}},
		})
	}))
	defer gateway.Close()

	env := setupTestEnv(t, gateway.URL)

	t.Run("Success", func(t *testing.T) {
		body := strings.NewReader(`{"notifications":[
			{"studyId":"s-1","customStudyId":"CARDIO-01","appId":"app-cardio","notificationTitle":"Hi","notificationText":"Visit due","notificationType":"ST"},
			{"studyId":"","customStudyId":"","appId":"app-cardio","notificationTitle":"Hi","notificationText":"App update","notificationType":"GT"}
		]}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/studies/sendNotification", body)
		env.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp model.PushNotificationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(4815162342), resp.MulticastID)
		assert.Equal(t, 2, resp.Success)
		assert.Len(t, resp.Results, 2)
	})

	t.Run("EmptyNotificationList", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/studies/sendNotification", strings.NewReader(`{"notifications":[]}`))
		env.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Notification list is empty")
	})

	t.Run("MissingBody", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/studies/sendNotification", nil)
		env.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("UnknownNotificationType", func(t *testing.T) {
		body := strings.NewReader(`{"notifications":[{"studyId":"s-1","notificationType":"XX"}]}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/studies/sendNotification", body)
		env.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Notification type is missing or unrecognized")
	})
}

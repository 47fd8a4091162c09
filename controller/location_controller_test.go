// api/controller/location_controller_test.go
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

func TestAddLocation(t *testing.T) {
	env := setupTestEnv(t, "")
	seedAdmin(t, env.db, "admin-1", false, model.ReadEdit)
	seedAdmin(t, env.db, "viewer-1", false, model.ReadView)

	t.Run("Success", func(t *testing.T) {
		body := strings.NewReader(`{"customId":"loc-001","name":"Boston Clinic","description":"Main site"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/locations", body)
		req.Header.Set("userId", "admin-1")
		env.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var resp model.LocationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.LocationID)
		assert.Equal(t, "New location added successfully", resp.Message)

		var stored model.LocationEntity
		require.NoError(t, env.db.First(&stored, "id = ?", resp.LocationID).Error)
		assert.Equal(t, model.StatusActive, stored.Status, "status defaults to active")
		assert.Equal(t, "admin-1", stored.CreatedBy)
	})

	t.Run("MissingUserIDHeader", func(t *testing.T) {
		body := strings.NewReader(`{"customId":"loc-002","name":"X","description":"Y"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/locations", body)
		env.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("BlankFieldsReturnViolations", func(t *testing.T) {
		body := strings.NewReader(`{"customId":"  ","name":"","description":""}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/locations", body)
		req.Header.Set("userId", "admin-1")
		env.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp util.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Violations, 3)
	})

	t.Run("DuplicateCustomID", func(t *testing.T) {
		seedLocation(t, env.db, "loc-dup", model.StatusActive, false)

		body := strings.NewReader(`{"customId":"loc-dup","name":"Other","description":"Other"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/locations", body)
		req.Header.Set("userId", "admin-1")
		env.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "already used")
	})

	t.Run("ReadOnlyPermissionDenied", func(t *testing.T) {
		body := strings.NewReader(`{"customId":"loc-003","name":"X","description":"Y"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/locations", body)
		req.Header.Set("userId", "viewer-1")
		env.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("UnknownAdmin", func(t *testing.T) {
		body := strings.NewReader(`{"customId":"loc-004","name":"X","description":"Y"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/locations", body)
		req.Header.Set("userId", "ghost")
		env.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUpdateLocation(t *testing.T) {
	env := setupTestEnv(t, "")
	seedAdmin(t, env.db, "admin-1", false, model.ReadEdit)

	t.Run("EditFields", func(t *testing.T) {
		location := seedLocation(t, env.db, "upd-001", model.StatusActive, false)

		body := strings.NewReader(`{"name":"Renamed","description":"New description"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPut, "/api/v1/locations/"+location.ID, body)
		req.Header.Set("userId", "admin-1")
		env.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Location updated successfully")

		var stored model.LocationEntity
		require.NoError(t, env.db.First(&stored, "id = ?", location.ID).Error)
		assert.Equal(t, "Renamed", stored.Name)
		assert.Equal(t, model.StatusActive, stored.Status, "status untouched without a transition")
	})

	t.Run("DefaultLocationImmutable", func(t *testing.T) {
		location := seedLocation(t, env.db, "upd-002", model.StatusActive, true)

		body := strings.NewReader(`{"name":"Renamed"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPut, "/api/v1/locations/"+location.ID, body)
		req.Header.Set("userId", "admin-1")
		env.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Default site")
	})

	t.Run("Decommission", func(t *testing.T) {
		location := seedLocation(t, env.db, "upd-003", model.StatusActive, false)

		body := strings.NewReader(`{"status":0}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPut, "/api/v1/locations/"+location.ID, body)
		req.Header.Set("userId", "admin-1")
		env.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "decomissioned")

		var stored model.LocationEntity
		require.NoError(t, env.db.First(&stored, "id = ?", location.ID).Error)
		assert.Equal(t, model.StatusInactive, stored.Status)
	})

	t.Run("AlreadyDecommissioned", func(t *testing.T) {
		location := seedLocation(t, env.db, "upd-004", model.StatusInactive, false)

		body := strings.NewReader(`{"status":0}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPut, "/api/v1/locations/"+location.ID, body)
		req.Header.Set("userId", "admin-1")
		env.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "already decomissioned")
	})

	t.Run("Reactivate", func(t *testing.T) {
		location := seedLocation(t, env.db, "upd-005", model.StatusInactive, false)

		body := strings.NewReader(`{"status":1}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPut, "/api/v1/locations/"+location.ID, body)
		req.Header.Set("userId", "admin-1")
		env.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "activated")

		var stored model.LocationEntity
		require.NoError(t, env.db.First(&stored, "id = ?", location.ID).Error)
		assert.Equal(t, model.StatusActive, stored.Status)
	})

	t.Run("CannotReactivateActive", func(t *testing.T) {
		location := seedLocation(t, env.db, "upd-006", model.StatusActive, false)

		body := strings.NewReader(`{"status":1}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPut, "/api/v1/locations/"+location.ID, body)
		req.Header.Set("userId", "admin-1")
		env.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "reactivate")
	})

	t.Run("NotFound", func(t *testing.T) {
		body := strings.NewReader(`{"name":"Renamed"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPut, "/api/v1/locations/no-such-id", body)
		req.Header.Set("userId", "admin-1")
		env.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetLocation(t *testing.T) {
	env := setupTestEnv(t, "")
	seedAdmin(t, env.db, "viewer-1", false, model.ReadView)

	location := seedLocation(t, env.db, "get-001", model.StatusActive, false)

	t.Run("Success", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/locations/"+location.ID, nil)
		req.Header.Set("userId", "viewer-1")
		env.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var details model.LocationDetails
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &details))
		assert.Equal(t, location.ID, details.LocationID)
		assert.Equal(t, "get-001", details.CustomID)
		assert.NotNil(t, details.Studies)
	})

	t.Run("NotFound", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/locations/no-such-id", nil)
		req.Header.Set("userId", "viewer-1")
		env.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListLocations(t *testing.T) {
	env := setupTestEnv(t, "")
	seedAdmin(t, env.db, "super-1", true, model.NoPermission)
	seedAdmin(t, env.db, "nobody-1", false, model.NoPermission)

	seedLocation(t, env.db, "list-001", model.StatusActive, false)
	seedLocation(t, env.db, "list-002", model.StatusInactive, false)

	t.Run("SuperAdminBypassesPermission", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/locations", nil)
		req.Header.Set("userId", "super-1")
		env.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp model.LocationDetailsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Locations, 2)
	})

	t.Run("NoPermissionDenied", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/locations", nil)
		req.Header.Set("userId", "nobody-1")
		env.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

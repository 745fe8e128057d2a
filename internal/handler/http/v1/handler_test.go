package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/guard_dispatch_system/internal/config"
	"github.com/shenikar/guard_dispatch_system/internal/models"
	"github.com/shenikar/guard_dispatch_system/internal/registry"
	"github.com/shenikar/guard_dispatch_system/internal/service"
	"github.com/shenikar/guard_dispatch_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	location *mocks.MockLocationService
	dispatch *mocks.MockDispatchService
	zones    *mocks.MockZoneService
	geofence *mocks.MockGeofenceService
}

var authHeader = map[string]string{"X-API-Key": "test-api-key"}

// newTestHandler создает Handler с мокированными сервисами и роутер для тестов
func newTestHandler(t *testing.T) (*testMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := &testMocks{
		location: mocks.NewMockLocationService(ctrl),
		dispatch: mocks.NewMockDispatchService(ctrl),
		zones:    mocks.NewMockZoneService(ctrl),
		geofence: mocks.NewMockGeofenceService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:               []string{"test-api-key"},
		DispatchDefaultRadius: 2000,
		DispatchMaxCandidates: 5,
		RouteProviders:        []string{"osrm", "google"},
	}

	handler := NewHandler(m.location, m.dispatch, m.zones, m.geofence, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return m, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(data)
}

func validLocation() ReportLocationRequest {
	return ReportLocationRequest{
		GuardID:        "guard-a",
		Latitude:       34.05,
		Longitude:      -118.25,
		AccuracyMeters: 5,
		RecordedAt:     time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		HeadingDegrees: 90,
	}
}

func TestReportLocation_Success(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := validLocation()

	m.location.EXPECT().
		ReportLocation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record models.GuardLocationRecord) error {
			assert.Equal(t, "guard-a", record.GuardID)
			assert.Equal(t, 34.05, record.Position.Latitude)
			assert.True(t, reqBody.RecordedAt.Equal(record.RecordedAt))
			return nil
		}).Times(1)
	m.geofence.EXPECT().
		EvaluateGuard(gomock.Any(), "guard-a").
		Return([]models.ContainmentEvent{{GuardID: "guard-a", ZoneID: "zone-1"}}, nil).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/guards/locations", jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusAccepted, w.Code)
	var resp ReportLocationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "guard-a", resp.GuardID)
	assert.Equal(t, 1, resp.ContainmentEvents)
}

func TestReportLocation_GeofenceFailureDoesNotRejectLocation(t *testing.T) {
	m, router := newTestHandler(t)

	m.location.EXPECT().ReportLocation(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	m.geofence.EXPECT().EvaluateGuard(gomock.Any(), "guard-a").Return(nil, errors.New("zones unavailable")).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/guards/locations", jsonBody(t, validLocation()), authHeader)

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestReportLocation_InvalidJSON(t *testing.T) {
	m, router := newTestHandler(t)

	m.location.EXPECT().ReportLocation(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, http.MethodPost, "/api/v1/guards/locations", bytes.NewBufferString(`{"guard_id": "x"`), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestReportLocation_ValidationError(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := validLocation()
	reqBody.GuardID = ""

	m.location.EXPECT().ReportLocation(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/v1/guards/locations", jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'GuardID' failed on the 'required' tag")
}

func TestReportLocation_HeadingOutOfRange(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := validLocation()
	reqBody.HeadingDegrees = 360

	m.location.EXPECT().ReportLocation(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/v1/guards/locations", jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "HeadingDegrees")
}

func TestReportLocation_StaleWrite(t *testing.T) {
	m, router := newTestHandler(t)

	m.location.EXPECT().
		ReportLocation(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("service: could not report location: %w", registry.ErrStaleWrite)).Times(1)
	m.geofence.EXPECT().EvaluateGuard(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/v1/guards/locations", jsonBody(t, validLocation()), authHeader)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuth(t *testing.T) {
	m, router := newTestHandler(t)
	m.location.EXPECT().Stats(gomock.Any()).Return(models.RegistryStats{}).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/system/stats", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")

	w = makeRequest(router, http.MethodGet, "/api/v1/system/stats", nil, map[string]string{"X-API-Key": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")

	w = makeRequest(router, http.MethodGet, "/api/v1/system/stats", nil, map[string]string{"Authorization": "Bearer test-api-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetLocation(t *testing.T) {
	m, router := newTestHandler(t)
	recordedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	m.location.EXPECT().GetLocation(gomock.Any(), "guard-a").Return(&models.GuardLocationRecord{
		GuardID:      "guard-a",
		Position:     models.GeoPoint{Latitude: 34.05, Longitude: -118.25},
		RecordedAt:   recordedAt,
		SourceStatus: models.SourceStatusStale,
	}, nil).Times(1)
	m.location.EXPECT().GetLocation(gomock.Any(), "ghost").
		Return(nil, fmt.Errorf("service: guard ghost: %w", service.ErrGuardNotFound)).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/guards/guard-a/location", nil, authHeader)
	require.Equal(t, http.StatusOK, w.Code)
	var resp GuardLocationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "stale", resp.SourceStatus)
	assert.Equal(t, -118.25, resp.Longitude)

	w = makeRequest(router, http.MethodGet, "/api/v1/guards/ghost/location", nil, authHeader)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "guard not found")
}

func TestSignOff(t *testing.T) {
	m, router := newTestHandler(t)

	m.location.EXPECT().SignOff(gomock.Any(), "guard-a").Return(nil).Times(1)
	m.geofence.EXPECT().Forget("guard-a").Times(1)

	w := makeRequest(router, http.MethodDelete, "/api/v1/guards/guard-a", nil, authHeader)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestSignOff_NotFound(t *testing.T) {
	m, router := newTestHandler(t)

	m.location.EXPECT().SignOff(gomock.Any(), "ghost").Return(service.ErrGuardNotFound).Times(1)
	m.geofence.EXPECT().Forget(gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodDelete, "/api/v1/guards/ghost", nil, authHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGuardZones(t *testing.T) {
	m, router := newTestHandler(t)

	m.geofence.EXPECT().ZonesContaining(gomock.Any(), "guard-a").
		Return([]*models.Geofence{{ZoneID: "zone-1", Name: "Вход", RadiusMeters: 100, Active: true}}, nil).Times(1)
	m.geofence.EXPECT().ZonesContaining(gomock.Any(), "guard-b").
		Return(nil, fmt.Errorf("guard guard-b: %w", service.ErrUnknownContainment)).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/guards/guard-a/zones", nil, authHeader)
	require.Equal(t, http.StatusOK, w.Code)
	var resp []GeofenceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "zone-1", resp[0].ZoneID)

	w = makeRequest(router, http.MethodGet, "/api/v1/guards/guard-b/zones", nil, authHeader)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestFindCandidates_AppliesDefaultsAndSelectsBackup(t *testing.T) {
	m, router := newTestHandler(t)
	requestID := uuid.New()

	m.dispatch.EXPECT().
		FindDispatchCandidates(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.DispatchRequest) (*models.DispatchResult, error) {
			assert.Equal(t, 2000.0, req.RadiusMeters)
			assert.Equal(t, 5, req.MaxCandidates)
			assert.Contains(t, req.ExcludeGuardIDs, "guard-x")
			return &models.DispatchResult{
				RequestID: requestID,
				Candidates: []models.DispatchCandidate{
					{GuardID: "guard-b", Rank: 0, Route: models.RouteResult{Provider: "osrm", DurationSeconds: 200}},
					{GuardID: "guard-a", Rank: 1, Route: models.RouteResult{Provider: "straight_line", DurationSeconds: 300, IsFallback: true, Warnings: []string{"straight_line_estimate_used"}}},
				},
				Warnings: []string{},
			}, nil
		}).Times(1)

	reqBody := DispatchRequest{Latitude: 34.06, Longitude: -118.24, ExcludeGuardIDs: []string{"guard-x"}, RequireBackup: true}
	w := makeRequest(router, http.MethodPost, "/api/v1/dispatch/candidates", jsonBody(t, reqBody), authHeader)

	require.Equal(t, http.StatusOK, w.Code)
	var resp DispatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, requestID.String(), resp.RequestID)
	require.Len(t, resp.Candidates, 2)
	require.NotNil(t, resp.Primary)
	require.NotNil(t, resp.Backup)
	assert.Equal(t, "guard-b", resp.Primary.GuardID)
	assert.Equal(t, "guard-a", resp.Backup.GuardID)
	assert.True(t, resp.Backup.IsFallback)
	assert.NotNil(t, resp.Warnings)
}

func TestFindCandidates_EmptyResult(t *testing.T) {
	m, router := newTestHandler(t)

	m.dispatch.EXPECT().FindDispatchCandidates(gomock.Any(), gomock.Any()).
		Return(&models.DispatchResult{Candidates: []models.DispatchCandidate{}, Warnings: []string{}}, nil).Times(1)

	reqBody := DispatchRequest{Latitude: 34.06, Longitude: -118.24, RadiusMeters: 500, MaxCandidates: 3}
	w := makeRequest(router, http.MethodPost, "/api/v1/dispatch/candidates", jsonBody(t, reqBody), authHeader)

	require.Equal(t, http.StatusOK, w.Code)
	var resp DispatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Candidates)
	assert.Nil(t, resp.Primary)
}

func TestFindCandidates_ValidationError(t *testing.T) {
	m, router := newTestHandler(t)
	m.dispatch.EXPECT().FindDispatchCandidates(gomock.Any(), gomock.Any()).Times(0)

	reqBody := DispatchRequest{Latitude: 134.06, Longitude: -118.24}
	w := makeRequest(router, http.MethodPost, "/api/v1/dispatch/candidates", jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Latitude")
}

func TestFindCandidates_ServiceErrors(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := DispatchRequest{Latitude: 34.06, Longitude: -118.24}

	m.dispatch.EXPECT().FindDispatchCandidates(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: radius must be positive", service.ErrInvalidDispatchRequest)).Times(1)
	w := makeRequest(router, http.MethodPost, "/api/v1/dispatch/candidates", jsonBody(t, reqBody), authHeader)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	m.dispatch.EXPECT().FindDispatchCandidates(gomock.Any(), gomock.Any()).
		Return(nil, context.Canceled).Times(1)
	w = makeRequest(router, http.MethodPost, "/api/v1/dispatch/candidates", jsonBody(t, reqBody), authHeader)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCreateGeofence_Success(t *testing.T) {
	m, router := newTestHandler(t)
	createdAt := time.Now().UTC()

	m.zones.EXPECT().
		CreateZone(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, zone *models.Geofence) error {
			zone.ZoneID = "zone-1"
			zone.Active = true
			zone.CreatedAt = createdAt
			return nil
		}).Times(1)

	reqBody := CreateGeofenceRequest{Name: "Склад", Latitude: 34.05, Longitude: -118.25, RadiusMeters: 150}
	w := makeRequest(router, http.MethodPost, "/api/v1/geofences", jsonBody(t, reqBody), authHeader)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp GeofenceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "zone-1", resp.ZoneID)
	assert.True(t, resp.Active)
	assert.Equal(t, 150.0, resp.RadiusMeters)
}

func TestCreateGeofence_ValidationError(t *testing.T) {
	m, router := newTestHandler(t)
	m.zones.EXPECT().CreateZone(gomock.Any(), gomock.Any()).Times(0)

	reqBody := CreateGeofenceRequest{Name: "Склад", Latitude: 34.05, Longitude: -118.25}
	w := makeRequest(router, http.MethodPost, "/api/v1/geofences", jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'RadiusMeters' failed on the 'required' tag")
}

func TestCreateGeofence_DuplicateZoneID(t *testing.T) {
	m, router := newTestHandler(t)
	m.zones.EXPECT().CreateZone(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("service: could not create zone: %w", service.ErrZoneExists)).Times(1)

	reqBody := CreateGeofenceRequest{ZoneID: "hq", Name: "Склад", Latitude: 34.05, Longitude: -118.25, RadiusMeters: 150}
	w := makeRequest(router, http.MethodPost, "/api/v1/geofences", jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "zone already exists")
}

func TestGeofenceOverlaps(t *testing.T) {
	m, router := newTestHandler(t)
	m.zones.EXPECT().ZoneOverlaps(gomock.Any(), "zone-1").
		Return([]models.ZoneOverlap{{ZoneID: "zone-2", OverlapPercent: 42.5}}, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/geofences/zone-1/overlaps", nil, authHeader)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []ZoneOverlapResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "zone-2", resp[0].ZoneID)
	assert.Equal(t, 42.5, resp[0].OverlapPercent)
}

func TestGeofenceOverlaps_ZoneNotFound(t *testing.T) {
	m, router := newTestHandler(t)
	m.zones.EXPECT().ZoneOverlaps(gomock.Any(), "zone-404").
		Return(nil, fmt.Errorf("service: could not get zone: %w", service.ErrZoneNotFound)).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/geofences/zone-404/overlaps", nil, authHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCleanupGeofences(t *testing.T) {
	m, router := newTestHandler(t)
	m.zones.EXPECT().CleanupInactiveZones(gomock.Any()).Return(3, nil).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/geofences/cleanup", nil, authHeader)

	require.Equal(t, http.StatusOK, w.Code)
	var resp CleanupResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Removed)
}

func TestListGeofences(t *testing.T) {
	m, router := newTestHandler(t)

	m.zones.EXPECT().ListZones(gomock.Any(), 2, 5).Return([]*models.Geofence{{ZoneID: "zone-6"}}, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/geofences?page=2&pageSize=5", nil, authHeader)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []GeofenceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "zone-6", resp[0].ZoneID)
}

func TestGetGeofence_NotFound(t *testing.T) {
	m, router := newTestHandler(t)

	m.zones.EXPECT().GetZone(gomock.Any(), "zone-404").
		Return(nil, fmt.Errorf("service: could not get zone: %w", service.ErrZoneNotFound)).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/geofences/zone-404", nil, authHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "zone not found")
}

func TestUpdateGeofence(t *testing.T) {
	m, router := newTestHandler(t)
	active := false

	m.zones.EXPECT().
		UpdateZone(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, zone *models.Geofence) error {
			assert.Equal(t, "zone-1", zone.ZoneID)
			assert.False(t, zone.Active)
			return nil
		}).Times(1)

	reqBody := UpdateGeofenceRequest{Name: "Склад 2", Latitude: 34.05, Longitude: -118.25, RadiusMeters: 200, Active: &active}
	w := makeRequest(router, http.MethodPut, "/api/v1/geofences/zone-1", jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateGeofence_MissingActive(t *testing.T) {
	m, router := newTestHandler(t)
	m.zones.EXPECT().UpdateZone(gomock.Any(), gomock.Any()).Times(0)

	reqBody := UpdateGeofenceRequest{Name: "Склад 2", Latitude: 34.05, Longitude: -118.25, RadiusMeters: 200}
	w := makeRequest(router, http.MethodPut, "/api/v1/geofences/zone-1", jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteGeofence(t *testing.T) {
	m, router := newTestHandler(t)

	m.zones.EXPECT().DeleteZone(gomock.Any(), "zone-1").Return(nil).Times(1)

	w := makeRequest(router, http.MethodDelete, "/api/v1/geofences/zone-1", nil, authHeader)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCheckContainment(t *testing.T) {
	m, router := newTestHandler(t)

	m.geofence.EXPECT().CheckZone(gomock.Any(), "guard-a", "zone-1").Return(true, nil).Times(1)
	m.geofence.EXPECT().CheckZone(gomock.Any(), "guard-old", "zone-1").
		Return(false, fmt.Errorf("guard guard-old last fix 45m0s ago: %w", service.ErrUnknownContainment)).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/geofences/zone-1/guards/guard-a", nil, authHeader)
	require.Equal(t, http.StatusOK, w.Code)
	var resp ContainmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Inside)
	assert.Equal(t, "zone-1", resp.ZoneID)

	w = makeRequest(router, http.MethodGet, "/api/v1/geofences/zone-1/guards/guard-old", nil, authHeader)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "containment unknown")
}

func TestGetStats(t *testing.T) {
	m, router := newTestHandler(t)

	m.location.EXPECT().Stats(gomock.Any()).Return(models.RegistryStats{Total: 4, Active: 3, Stale: 1}).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/system/stats", nil, authHeader)

	require.Equal(t, http.StatusOK, w.Code)
	var resp StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.TotalGuards)
	assert.Equal(t, 1, resp.StaleGuards)
	assert.Equal(t, []string{"osrm", "google"}, resp.RouteProviders)
}

func TestHealthCheck_NoAuth(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shenikar/guard_dispatch_system/internal/models"
	"github.com/shenikar/guard_dispatch_system/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestZoneService - вспомогательная функция для создания сервиса с моком репозитория
func newTestZoneService(t *testing.T) (ZoneService, *mocks.MockGeofenceRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockGeofenceRepository(ctrl)
	return NewZoneService(repoMock, newTestLogger()), repoMock
}

func TestGetZone_FromCache(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestZoneService(t)
	ctx := context.Background()
	expected := &models.Geofence{ZoneID: "zone-1", Name: "Склад"}

	// Ожидания
	repoMock.EXPECT().GetFromCache(ctx, "zone-1").Return(expected, nil).Times(1)

	// Действие
	zone, err := svc.GetZone(ctx, "zone-1")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, zone)
}

func TestGetZone_FromDB(t *testing.T) {
	svc, repoMock := newTestZoneService(t)
	ctx := context.Background()
	expected := &models.Geofence{ZoneID: "zone-1", Name: "Склад"}

	// 1. Промах кеша
	repoMock.EXPECT().GetFromCache(ctx, "zone-1").Return(nil, nil).Times(1)
	// 2. Попадание в БД
	repoMock.EXPECT().GetByID(ctx, "zone-1").Return(expected, nil).Times(1)
	// 3. Запись в кеш
	repoMock.EXPECT().SetCache(ctx, expected).Return(nil).Times(1)

	zone, err := svc.GetZone(ctx, "zone-1")

	require.NoError(t, err)
	assert.Equal(t, expected, zone)
}

func TestGetZone_CacheErrorFallsThroughToDB(t *testing.T) {
	svc, repoMock := newTestZoneService(t)
	ctx := context.Background()
	expected := &models.Geofence{ZoneID: "zone-1"}

	repoMock.EXPECT().GetFromCache(ctx, "zone-1").Return(nil, errors.New("redis down")).Times(1)
	repoMock.EXPECT().GetByID(ctx, "zone-1").Return(expected, nil).Times(1)
	repoMock.EXPECT().SetCache(ctx, expected).Return(errors.New("redis down")).Times(1)

	zone, err := svc.GetZone(ctx, "zone-1")

	require.NoError(t, err)
	assert.Equal(t, expected, zone)
}

func TestGetZone_NotFound(t *testing.T) {
	svc, repoMock := newTestZoneService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetFromCache(ctx, "zone-1").Return(nil, nil).Times(1)
	repoMock.EXPECT().GetByID(ctx, "zone-1").Return(nil, ErrZoneNotFound).Times(1)

	zone, err := svc.GetZone(ctx, "zone-1")

	assert.ErrorIs(t, err, ErrZoneNotFound)
	assert.Nil(t, zone)
}

func TestCreateZone_GeneratesIDAndActivates(t *testing.T) {
	svc, repoMock := newTestZoneService(t)
	ctx := context.Background()
	zone := &models.Geofence{
		Name:         "Парковка",
		Center:       models.GeoPoint{Latitude: 34.05, Longitude: -118.25},
		RadiusMeters: 150,
	}

	repoMock.EXPECT().Create(ctx, zone).Return(nil).Times(1)

	require.NoError(t, svc.CreateZone(ctx, zone))
	assert.NotEmpty(t, zone.ZoneID)
	assert.True(t, zone.Active)
}

func TestCreateZone_InvalidRadius(t *testing.T) {
	svc, _ := newTestZoneService(t)

	err := svc.CreateZone(context.Background(), &models.Geofence{
		ZoneID: "zone-1",
		Center: models.GeoPoint{Latitude: 34.05, Longitude: -118.25},
	})

	assert.ErrorIs(t, err, ErrInvalidZone)
}

func TestUpdateZone_InvalidatesCache(t *testing.T) {
	svc, repoMock := newTestZoneService(t)
	ctx := context.Background()
	existing := &models.Geofence{ZoneID: "zone-1", Name: "Старое имя", Center: models.GeoPoint{Latitude: 1, Longitude: 1}, RadiusMeters: 10, Active: true}
	update := &models.Geofence{ZoneID: "zone-1", Name: "Новое имя", Center: models.GeoPoint{Latitude: 2, Longitude: 2}, RadiusMeters: 20, Active: false}

	gomock.InOrder(
		repoMock.EXPECT().GetByID(ctx, "zone-1").Return(existing, nil),
		repoMock.EXPECT().Update(ctx, existing).Return(nil),
		repoMock.EXPECT().InvalidateCache(ctx, "zone-1").Return(nil),
	)

	require.NoError(t, svc.UpdateZone(ctx, update))
	assert.Equal(t, "Новое имя", existing.Name)
	assert.Equal(t, 20.0, existing.RadiusMeters)
	assert.False(t, existing.Active)
	assert.Equal(t, "Новое имя", update.Name)
}

func TestUpdateZone_NotFound(t *testing.T) {
	svc, repoMock := newTestZoneService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetByID(ctx, "zone-1").Return(nil, ErrZoneNotFound).Times(1)

	err := svc.UpdateZone(ctx, &models.Geofence{ZoneID: "zone-1", Center: models.GeoPoint{}, RadiusMeters: 10})

	assert.ErrorIs(t, err, ErrZoneNotFound)
}

func TestDeleteZone(t *testing.T) {
	svc, repoMock := newTestZoneService(t)
	ctx := context.Background()

	repoMock.EXPECT().Delete(ctx, "zone-1").Return(nil).Times(1)
	repoMock.EXPECT().InvalidateCache(ctx, "zone-1").Return(nil).Times(1)

	assert.NoError(t, svc.DeleteZone(ctx, "zone-1"))
}

func TestListZones_NormalizesPaging(t *testing.T) {
	svc, repoMock := newTestZoneService(t)
	ctx := context.Background()

	repoMock.EXPECT().List(ctx, 1, 20).Return([]*models.Geofence{{ZoneID: "zone-1"}}, nil).Times(1)

	zones, err := svc.ListZones(ctx, 0, 500)

	require.NoError(t, err)
	assert.Len(t, zones, 1)
}

func TestZoneOverlaps_SortedByShare(t *testing.T) {
	svc, repoMock := newTestZoneService(t)
	ctx := context.Background()
	center := models.GeoPoint{Latitude: 34.05, Longitude: -118.25}
	primary := &models.Geofence{ZoneID: "zone-1", Center: center, RadiusMeters: 200}
	covering := &models.Geofence{ZoneID: "zone-2", Center: center, RadiusMeters: 400}
	partial := &models.Geofence{ZoneID: "zone-3", Center: models.GeoPoint{Latitude: 34.0515, Longitude: -118.25}, RadiusMeters: 200}
	distant := &models.Geofence{ZoneID: "zone-4", Center: models.GeoPoint{Latitude: 34.06, Longitude: -118.24}, RadiusMeters: 200}

	repoMock.EXPECT().GetFromCache(ctx, "zone-1").Return(primary, nil).Times(1)
	repoMock.EXPECT().ListActive(ctx).Return([]*models.Geofence{partial, primary, distant, covering}, nil).Times(1)

	overlaps, err := svc.ZoneOverlaps(ctx, "zone-1")

	require.NoError(t, err)
	require.Len(t, overlaps, 2)
	assert.Equal(t, "zone-2", overlaps[0].ZoneID)
	assert.InDelta(t, 100, overlaps[0].OverlapPercent, 1e-9)
	assert.Equal(t, "zone-3", overlaps[1].ZoneID)
	assert.Greater(t, overlaps[1].OverlapPercent, 0.0)
	assert.Less(t, overlaps[1].OverlapPercent, 100.0)
}

func TestZoneOverlaps_UnknownZone(t *testing.T) {
	svc, repoMock := newTestZoneService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetFromCache(ctx, "zone-404").Return(nil, nil).Times(1)
	repoMock.EXPECT().GetByID(ctx, "zone-404").Return(nil, ErrZoneNotFound).Times(1)
	repoMock.EXPECT().ListActive(gomock.Any()).Times(0)

	_, err := svc.ZoneOverlaps(ctx, "zone-404")

	assert.ErrorIs(t, err, ErrZoneNotFound)
}

func TestCleanupInactiveZones_InvalidatesRemoved(t *testing.T) {
	svc, repoMock := newTestZoneService(t)
	ctx := context.Background()

	gomock.InOrder(
		repoMock.EXPECT().DeleteInactive(ctx).Return([]string{"zone-1", "zone-2"}, nil),
		repoMock.EXPECT().InvalidateCache(ctx, "zone-1").Return(nil),
		repoMock.EXPECT().InvalidateCache(ctx, "zone-2").Return(errors.New("redis down")),
	)

	removed, err := svc.CleanupInactiveZones(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, removed)
}

func TestCleanupInactiveZones_RepositoryError(t *testing.T) {
	svc, repoMock := newTestZoneService(t)
	ctx := context.Background()

	repoMock.EXPECT().DeleteInactive(ctx).Return(nil, errors.New("db down")).Times(1)
	repoMock.EXPECT().InvalidateCache(gomock.Any(), gomock.Any()).Times(0)

	removed, err := svc.CleanupInactiveZones(ctx)

	assert.Error(t, err)
	assert.Equal(t, 0, removed)
}

package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/guard_dispatch_system/internal/models"
	"github.com/shenikar/guard_dispatch_system/internal/service"
)

// DefaultCacheTTL - срок жизни зоны в кеше
const DefaultCacheTTL = 5 * time.Minute

type GeofenceRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewGeofenceRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.GeofenceRepository {
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &GeofenceRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

const selectGeofence = `
	SELECT
		zone_id,
		name,
		ST_Y(center::geometry) AS latitude,
		ST_X(center::geometry) AS longitude,
		radius_meters,
		active,
		created_at,
		updated_at
	FROM geofences
`

// Create создает новую зону в бд
func (r *GeofenceRepository) Create(ctx context.Context, zone *models.Geofence) error {
	query := `
		INSERT INTO geofences (zone_id, name, center, radius_meters, active)
		VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326)::geography, $5, $6)
		RETURNING created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		zone.ZoneID,
		zone.Name,
		zone.Center.Longitude,
		zone.Center.Latitude,
		zone.RadiusMeters,
		zone.Active,
	).Scan(&zone.CreatedAt, &zone.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("geofence %s: %w", zone.ZoneID, service.ErrZoneExists)
		}
		return fmt.Errorf("failed to create geofence: %w", err)
	}
	return nil
}

// GetByID возвращает зону по идентификатору
func (r *GeofenceRepository) GetByID(ctx context.Context, zoneID string) (*models.Geofence, error) {
	zone, err := scanGeofence(r.db.QueryRow(ctx, selectGeofence+` WHERE zone_id = $1;`, zoneID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("geofence %s: %w", zoneID, service.ErrZoneNotFound)
		}
		return nil, fmt.Errorf("failed to get geofence by id: %w", err)
	}
	return zone, nil
}

// Update обновляет зону
func (r *GeofenceRepository) Update(ctx context.Context, zone *models.Geofence) error {
	query := `
		UPDATE geofences SET
			name = $1,
			center = ST_SetSRID(ST_MakePoint($2, $3), 4326)::geography,
			radius_meters = $4,
			active = $5,
			updated_at = NOW()
		WHERE zone_id = $6
		RETURNING updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		zone.Name,
		zone.Center.Longitude,
		zone.Center.Latitude,
		zone.RadiusMeters,
		zone.Active,
		zone.ZoneID,
	).Scan(&zone.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("geofence %s not found for update: %w", zone.ZoneID, service.ErrZoneNotFound)
		}
		return fmt.Errorf("failed to update geofence: %w", err)
	}
	return nil
}

// Delete(деактивация) снимает зону с мониторинга
func (r *GeofenceRepository) Delete(ctx context.Context, zoneID string) error {
	query := `
		UPDATE geofences SET
			active = FALSE,
			updated_at = NOW()
		WHERE zone_id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, zoneID)
	if err != nil {
		return fmt.Errorf("failed to deactivate geofence: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("geofence %s not found for deactivate: %w", zoneID, service.ErrZoneNotFound)
	}
	return nil
}

// DeleteInactive окончательно удаляет деактивированные зоны и возвращает их идентификаторы
func (r *GeofenceRepository) DeleteInactive(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `DELETE FROM geofences WHERE active = FALSE RETURNING zone_id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to delete inactive geofences: %w", err)
	}
	zoneIDs, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to collect deleted geofences: %w", err)
	}
	return zoneIDs, nil
}

// List возвращает список зон с пагинацией
func (r *GeofenceRepository) List(ctx context.Context, page, pageSize int) ([]*models.Geofence, error) {
	offset := (page - 1) * pageSize

	rows, err := r.db.Query(ctx, selectGeofence+` ORDER BY created_at DESC LIMIT $1 OFFSET $2;`, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list geofences: %w", err)
	}
	return collectGeofences(rows)
}

// ListActive возвращает все активные зоны
func (r *GeofenceRepository) ListActive(ctx context.Context) ([]*models.Geofence, error) {
	rows, err := r.db.Query(ctx, selectGeofence+` WHERE active ORDER BY zone_id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list active geofences: %w", err)
	}
	return collectGeofences(rows)
}

// GetFromCache пытается получить зону из Redis, при промахе возвращает nil, nil
func (r *GeofenceRepository) GetFromCache(ctx context.Context, zoneID string) (*models.Geofence, error) {
	val, err := r.redisClient.Get(ctx, cacheKey(zoneID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get geofence from cache: %w", err)
	}

	zone := &models.Geofence{}
	if err := json.Unmarshal(val, zone); err != nil {
		return nil, fmt.Errorf("failed to unmarshal geofence from cache: %w", err)
	}
	return zone, nil
}

// SetCache сохраняет зону в Redis
func (r *GeofenceRepository) SetCache(ctx context.Context, zone *models.Geofence) error {
	val, err := json.Marshal(zone)
	if err != nil {
		return fmt.Errorf("failed to marshal geofence for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, cacheKey(zone.ZoneID), val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set geofence in cache: %w", err)
	}
	return nil
}

// InvalidateCache удаляет зону из Redis кеша
func (r *GeofenceRepository) InvalidateCache(ctx context.Context, zoneID string) error {
	if err := r.redisClient.Del(ctx, cacheKey(zoneID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate geofence cache: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func cacheKey(zoneID string) string {
	return fmt.Sprintf("geofence:%s", zoneID)
}

func scanGeofence(row pgx.Row) (*models.Geofence, error) {
	zone := &models.Geofence{}
	err := row.Scan(
		&zone.ZoneID,
		&zone.Name,
		&zone.Center.Latitude,
		&zone.Center.Longitude,
		&zone.RadiusMeters,
		&zone.Active,
		&zone.CreatedAt,
		&zone.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return zone, nil
}

func collectGeofences(rows pgx.Rows) ([]*models.Geofence, error) {
	defer rows.Close()

	zones := make([]*models.Geofence, 0)
	for rows.Next() {
		zone, err := scanGeofence(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan geofence row: %w", err)
		}
		zones = append(zones, zone)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return zones, nil
}

package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/tmarques/wildfire_tracking_system/internal/models"
	"github.com/tmarques/wildfire_tracking_system/internal/service"
	"github.com/tmarques/wildfire_tracking_system/pkg/postgres"
)

// hotspotColumns is the select list shared by every hotspot query. The
// location point is stored as PostGIS geography and read back as lat/lon.
const hotspotColumns = `
		id,
		ST_Y(location::geometry) as latitude,
		ST_X(location::geometry) as longitude,
		detected_at,
		intensity,
		estimated_area_m2,
		status,
		description,
		updated_at,
		region_id
`

type HotspotRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewHotspotRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.HotspotRepository {
	return &HotspotRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// Create inserts a new hotspot and fills in its generated id.
func (r *HotspotRepository) Create(ctx context.Context, hotspot *models.Hotspot) error {
	query := `
		INSERT INTO hotspots (location, detected_at, intensity, estimated_area_m2, status, description, updated_at, region_id)
		VALUES (ST_SetSRID(ST_MakePoint($1, $2), 4326), $3, $4, $5, $6, $7, $8, $9) RETURNING id;
	`
	q := postgres.QuerierFromContext(ctx, r.db)
	err := q.QueryRow(ctx, query,
		hotspot.Longitude,
		hotspot.Latitude,
		hotspot.DetectedAt,
		hotspot.Intensity,
		hotspot.EstimatedAreaM2,
		hotspot.Status,
		hotspot.Description,
		hotspot.UpdatedAt,
		hotspot.RegionID,
	).Scan(&hotspot.ID)
	if err != nil {
		return fmt.Errorf("failed to create hotspot: %w", err)
	}
	return nil
}

// GetByID returns a hotspot by its UUID.
func (r *HotspotRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Hotspot, error) {
	query := `SELECT ` + hotspotColumns + ` FROM hotspots WHERE id = $1;`

	q := postgres.QuerierFromContext(ctx, r.db)
	hotspot, err := scanHotspotRow(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("hotspot with id %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get hotspot by id: %w", err)
	}
	return hotspot, nil
}

func (r *HotspotRepository) List(ctx context.Context) ([]*models.Hotspot, error) {
	query := `SELECT ` + hotspotColumns + ` FROM hotspots ORDER BY detected_at DESC;`
	return r.queryHotspots(ctx, "List", query)
}

func (r *HotspotRepository) ListByStatus(ctx context.Context, status models.HotspotStatus) ([]*models.Hotspot, error) {
	query := `SELECT ` + hotspotColumns + ` FROM hotspots WHERE status = $1 ORDER BY detected_at DESC;`
	return r.queryHotspots(ctx, "ListByStatus", query, status)
}

// ListActive returns hotspots whose status is neither RESOLVED nor FALSE_ALARM.
func (r *HotspotRepository) ListActive(ctx context.Context) ([]*models.Hotspot, error) {
	query := `
		SELECT ` + hotspotColumns + `
		FROM hotspots
		WHERE status != 'RESOLVED' AND status != 'FALSE_ALARM'
		ORDER BY detected_at DESC;
	`
	return r.queryHotspots(ctx, "ListActive", query)
}

func (r *HotspotRepository) ListByRegion(ctx context.Context, regionID uuid.UUID) ([]*models.Hotspot, error) {
	query := `SELECT ` + hotspotColumns + ` FROM hotspots WHERE region_id = $1 ORDER BY detected_at DESC;`
	return r.queryHotspots(ctx, "ListByRegion", query, regionID)
}

func (r *HotspotRepository) ListDetectedAfter(ctx context.Context, after time.Time) ([]*models.Hotspot, error) {
	query := `SELECT ` + hotspotColumns + ` FROM hotspots WHERE detected_at > $1 ORDER BY detected_at DESC;`
	return r.queryHotspots(ctx, "ListDetectedAfter", query, after)
}

// ListByProximity filters by an axis-aligned bounding box in degree space,
// bounds inclusive. Not great-circle distance.
func (r *HotspotRepository) ListByProximity(ctx context.Context, latitude, longitude, radiusDegrees float64) ([]*models.Hotspot, error) {
	query := `
		SELECT ` + hotspotColumns + `
		FROM hotspots
		WHERE
			ST_Y(location::geometry) BETWEEN $1 - $3 AND $1 + $3
			AND ST_X(location::geometry) BETWEEN $2 - $3 AND $2 + $3
		ORDER BY detected_at DESC;
	`
	return r.queryHotspots(ctx, "ListByProximity", query, latitude, longitude, radiusDegrees)
}

// ListByMinIntensity returns hotspots with intensity strictly greater than
// minIntensity, ordered by intensity descending.
func (r *HotspotRepository) ListByMinIntensity(ctx context.Context, minIntensity float64) ([]*models.Hotspot, error) {
	query := `
		SELECT ` + hotspotColumns + `
		FROM hotspots
		WHERE intensity > $1
		ORDER BY intensity DESC;
	`
	return r.queryHotspots(ctx, "ListByMinIntensity", query, minIntensity)
}

// CountActiveByRegion counts the region's hotspots that are neither resolved
// nor false alarms.
func (r *HotspotRepository) CountActiveByRegion(ctx context.Context, regionID uuid.UUID) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM hotspots
		WHERE region_id = $1 AND status != 'RESOLVED' AND status != 'FALSE_ALARM';
	`
	q := postgres.QuerierFromContext(ctx, r.db)
	var count int64
	if err := q.QueryRow(ctx, query, regionID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count active hotspots by region: %w", err)
	}
	return count, nil
}

func (r *HotspotRepository) Update(ctx context.Context, hotspot *models.Hotspot) error {
	query := `
		UPDATE hotspots SET
			location = ST_SetSRID(ST_MakePoint($1, $2), 4326),
			intensity = $3,
			estimated_area_m2 = $4,
			status = $5,
			description = $6,
			updated_at = $7,
			region_id = $8
		WHERE id = $9;
	`
	q := postgres.QuerierFromContext(ctx, r.db)
	cmdTag, err := q.Exec(ctx, query,
		hotspot.Longitude,
		hotspot.Latitude,
		hotspot.Intensity,
		hotspot.EstimatedAreaM2,
		hotspot.Status,
		hotspot.Description,
		hotspot.UpdatedAt,
		hotspot.RegionID,
		hotspot.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update hotspot: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("hotspot with id %s: %w", hotspot.ID, service.ErrNotFound)
	}
	return nil
}

func (r *HotspotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM hotspots WHERE id = $1;`

	q := postgres.QuerierFromContext(ctx, r.db)
	cmdTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete hotspot: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("hotspot with id %s: %w", id, service.ErrNotFound)
	}
	return nil
}

// DeleteByRegion removes every hotspot owned by the region. Zero rows is not
// an error: a region may own no hotspots.
func (r *HotspotRepository) DeleteByRegion(ctx context.Context, regionID uuid.UUID) error {
	query := `DELETE FROM hotspots WHERE region_id = $1;`

	q := postgres.QuerierFromContext(ctx, r.db)
	if _, err := q.Exec(ctx, query, regionID); err != nil {
		return fmt.Errorf("failed to delete hotspots by region: %w", err)
	}
	return nil
}

// GetFromCache tries to read the hotspot from Redis. A cache miss returns
// (nil, nil).
func (r *HotspotRepository) GetFromCache(ctx context.Context, id uuid.UUID) (*models.Hotspot, error) {
	key := hotspotCacheKey(id)
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get hotspot from cache: %w", err)
	}

	hotspot := &models.Hotspot{}
	if err := json.Unmarshal(val, hotspot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal hotspot from cache: %w", err)
	}
	return hotspot, nil
}

// SetCache stores the hotspot in Redis with the configured TTL.
func (r *HotspotRepository) SetCache(ctx context.Context, hotspot *models.Hotspot) error {
	val, err := json.Marshal(hotspot)
	if err != nil {
		return fmt.Errorf("failed to marshal hotspot for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, hotspotCacheKey(hotspot.ID), val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set hotspot in cache: %w", err)
	}
	return nil
}

// InvalidateCache drops the hotspot from the Redis cache.
func (r *HotspotRepository) InvalidateCache(ctx context.Context, id uuid.UUID) error {
	if err := r.redisClient.Del(ctx, hotspotCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate hotspot cache: %w", err)
	}
	return nil
}

func hotspotCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("hotspot:%s", id.String())
}

func (r *HotspotRepository) queryHotspots(ctx context.Context, method, query string, args ...any) ([]*models.Hotspot, error) {
	q := postgres.QuerierFromContext(ctx, r.db)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query hotspots in %s: %w", method, err)
	}
	defer rows.Close()

	hotspots := make([]*models.Hotspot, 0)
	for rows.Next() {
		hotspot, err := scanHotspotRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hotspot row in %s: %w", method, err)
		}
		hotspots = append(hotspots, hotspot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating hotspot rows in %s: %w", method, err)
	}
	return hotspots, nil
}

func scanHotspotRow(row pgx.Row) (*models.Hotspot, error) {
	hotspot := &models.Hotspot{}
	err := row.Scan(
		&hotspot.ID,
		&hotspot.Latitude,
		&hotspot.Longitude,
		&hotspot.DetectedAt,
		&hotspot.Intensity,
		&hotspot.EstimatedAreaM2,
		&hotspot.Status,
		&hotspot.Description,
		&hotspot.UpdatedAt,
		&hotspot.RegionID,
	)
	if err != nil {
		return nil, err
	}
	return hotspot, nil
}

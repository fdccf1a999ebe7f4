package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tmarques/wildfire_tracking_system/internal/models"
	"github.com/tmarques/wildfire_tracking_system/internal/service"
	"github.com/tmarques/wildfire_tracking_system/pkg/postgres"
)

type RegionRepository struct {
	db *pgxpool.Pool
}

func NewRegionRepository(db *pgxpool.Pool) service.RegionRepository {
	return &RegionRepository{db: db}
}

// Create inserts a new region and fills in its generated id.
func (r *RegionRepository) Create(ctx context.Context, region *models.Region) error {
	query := `
		INSERT INTO regions (name, type, area_m2, description, risk_level)
		VALUES ($1, $2, $3, $4, $5) RETURNING id;
	`
	q := postgres.QuerierFromContext(ctx, r.db)
	err := q.QueryRow(ctx, query,
		region.Name,
		region.Type,
		region.AreaM2,
		region.Description,
		region.RiskLevel,
	).Scan(&region.ID)
	if err != nil {
		return fmt.Errorf("failed to create region: %w", err)
	}
	return nil
}

// GetByID returns a region by its UUID.
func (r *RegionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Region, error) {
	query := `
		SELECT id, name, type, area_m2, description, risk_level
		FROM regions
		WHERE id = $1;
	`
	q := postgres.QuerierFromContext(ctx, r.db)
	region, err := scanRegionRow(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("region with id %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get region by id: %w", err)
	}
	return region, nil
}

func (r *RegionRepository) List(ctx context.Context) ([]*models.Region, error) {
	query := `SELECT id, name, type, area_m2, description, risk_level FROM regions ORDER BY name;`
	return r.queryRegions(ctx, "List", query)
}

// SearchByName matches the region name by case-insensitive substring.
func (r *RegionRepository) SearchByName(ctx context.Context, name string) ([]*models.Region, error) {
	query := `
		SELECT id, name, type, area_m2, description, risk_level
		FROM regions
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY name;
	`
	return r.queryRegions(ctx, "SearchByName", query, name)
}

func (r *RegionRepository) ListByType(ctx context.Context, regionType string) ([]*models.Region, error) {
	query := `
		SELECT id, name, type, area_m2, description, risk_level
		FROM regions
		WHERE LOWER(type) = LOWER($1)
		ORDER BY name;
	`
	return r.queryRegions(ctx, "ListByType", query, regionType)
}

func (r *RegionRepository) ListByMinRiskLevel(ctx context.Context, minRiskLevel int) ([]*models.Region, error) {
	query := `
		SELECT id, name, type, area_m2, description, risk_level
		FROM regions
		WHERE risk_level >= $1
		ORDER BY risk_level DESC, name;
	`
	return r.queryRegions(ctx, "ListByMinRiskLevel", query, minRiskLevel)
}

// ListOrderedByActiveHotspots sorts regions descending by their count of
// active hotspots. The filter on the joined side drops regions with no
// active hotspots entirely; ListWithoutActiveHotspots is the complement.
func (r *RegionRepository) ListOrderedByActiveHotspots(ctx context.Context) ([]*models.Region, error) {
	query := `
		SELECT r.id, r.name, r.type, r.area_m2, r.description, r.risk_level
		FROM regions r
		JOIN hotspots h ON h.region_id = r.id
		WHERE h.status != 'RESOLVED' AND h.status != 'FALSE_ALARM'
		GROUP BY r.id, r.name, r.type, r.area_m2, r.description, r.risk_level
		ORDER BY COUNT(h.id) DESC;
	`
	return r.queryRegions(ctx, "ListOrderedByActiveHotspots", query)
}

// ListWithoutActiveHotspots returns regions owning no active hotspot,
// including regions with no hotspots at all.
func (r *RegionRepository) ListWithoutActiveHotspots(ctx context.Context) ([]*models.Region, error) {
	query := `
		SELECT id, name, type, area_m2, description, risk_level
		FROM regions r
		WHERE NOT EXISTS (
			SELECT 1 FROM hotspots h
			WHERE h.region_id = r.id AND h.status != 'RESOLVED' AND h.status != 'FALSE_ALARM'
		)
		ORDER BY name;
	`
	return r.queryRegions(ctx, "ListWithoutActiveHotspots", query)
}

func (r *RegionRepository) Update(ctx context.Context, region *models.Region) error {
	query := `
		UPDATE regions SET
			name = $1,
			type = $2,
			area_m2 = $3,
			description = $4,
			risk_level = $5
		WHERE id = $6;
	`
	q := postgres.QuerierFromContext(ctx, r.db)
	cmdTag, err := q.Exec(ctx, query,
		region.Name,
		region.Type,
		region.AreaM2,
		region.Description,
		region.RiskLevel,
		region.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update region: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("region with id %s: %w", region.ID, service.ErrNotFound)
	}
	return nil
}

// UpdateRiskLevel persists a recalculated risk level without touching the
// other region fields.
func (r *RegionRepository) UpdateRiskLevel(ctx context.Context, id uuid.UUID, riskLevel int) error {
	query := `UPDATE regions SET risk_level = $1 WHERE id = $2;`

	q := postgres.QuerierFromContext(ctx, r.db)
	cmdTag, err := q.Exec(ctx, query, riskLevel, id)
	if err != nil {
		return fmt.Errorf("failed to update region risk level: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("region with id %s: %w", id, service.ErrNotFound)
	}
	return nil
}

func (r *RegionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM regions WHERE id = $1;`

	q := postgres.QuerierFromContext(ctx, r.db)
	cmdTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete region: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("region with id %s: %w", id, service.ErrNotFound)
	}
	return nil
}

func (r *RegionRepository) queryRegions(ctx context.Context, method, query string, args ...any) ([]*models.Region, error) {
	q := postgres.QuerierFromContext(ctx, r.db)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query regions in %s: %w", method, err)
	}
	defer rows.Close()

	regions := make([]*models.Region, 0)
	for rows.Next() {
		region, err := scanRegionRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan region row in %s: %w", method, err)
		}
		regions = append(regions, region)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating region rows in %s: %w", method, err)
	}
	return regions, nil
}

func scanRegionRow(row pgx.Row) (*models.Region, error) {
	region := &models.Region{}
	err := row.Scan(
		&region.ID,
		&region.Name,
		&region.Type,
		&region.AreaM2,
		&region.Description,
		&region.RiskLevel,
	)
	if err != nil {
		return nil, err
	}
	return region, nil
}

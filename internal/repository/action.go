package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tmarques/wildfire_tracking_system/internal/models"
	"github.com/tmarques/wildfire_tracking_system/internal/service"
	"github.com/tmarques/wildfire_tracking_system/pkg/postgres"
)

const actionColumns = `
		id,
		hotspot_id,
		started_at,
		ended_at,
		action_type,
		description,
		resources_used,
		outcome,
		responsible
`

type ActionRepository struct {
	db *pgxpool.Pool
}

func NewActionRepository(db *pgxpool.Pool) service.ActionRepository {
	return &ActionRepository{db: db}
}

// Create inserts a new combat action and fills in its generated id.
func (r *ActionRepository) Create(ctx context.Context, action *models.CombatAction) error {
	query := `
		INSERT INTO combat_actions (hotspot_id, started_at, ended_at, action_type, description, resources_used, outcome, responsible)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id;
	`
	q := postgres.QuerierFromContext(ctx, r.db)
	err := q.QueryRow(ctx, query,
		action.HotspotID,
		action.StartedAt,
		action.EndedAt,
		action.ActionType,
		action.Description,
		action.ResourcesUsed,
		action.Outcome,
		action.Responsible,
	).Scan(&action.ID)
	if err != nil {
		return fmt.Errorf("failed to create combat action: %w", err)
	}
	return nil
}

// GetByID returns a combat action by its UUID.
func (r *ActionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.CombatAction, error) {
	query := `SELECT ` + actionColumns + ` FROM combat_actions WHERE id = $1;`

	q := postgres.QuerierFromContext(ctx, r.db)
	action, err := scanActionRow(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("combat action with id %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get combat action by id: %w", err)
	}
	return action, nil
}

func (r *ActionRepository) List(ctx context.Context) ([]*models.CombatAction, error) {
	query := `SELECT ` + actionColumns + ` FROM combat_actions ORDER BY started_at DESC;`
	return r.queryActions(ctx, "List", query)
}

func (r *ActionRepository) ListByHotspot(ctx context.Context, hotspotID uuid.UUID) ([]*models.CombatAction, error) {
	query := `SELECT ` + actionColumns + ` FROM combat_actions WHERE hotspot_id = $1 ORDER BY started_at DESC;`
	return r.queryActions(ctx, "ListByHotspot", query, hotspotID)
}

// ListInProgress returns actions whose end timestamp is not set yet.
func (r *ActionRepository) ListInProgress(ctx context.Context) ([]*models.CombatAction, error) {
	query := `SELECT ` + actionColumns + ` FROM combat_actions WHERE ended_at IS NULL ORDER BY started_at DESC;`
	return r.queryActions(ctx, "ListInProgress", query)
}

// ListByTypeContaining matches the action type by case-insensitive substring.
func (r *ActionRepository) ListByTypeContaining(ctx context.Context, actionType string) ([]*models.CombatAction, error) {
	query := `
		SELECT ` + actionColumns + `
		FROM combat_actions
		WHERE action_type ILIKE '%' || $1 || '%'
		ORDER BY started_at DESC;
	`
	return r.queryActions(ctx, "ListByTypeContaining", query, actionType)
}

// ListByRegion returns actions targeting hotspots owned by the region.
func (r *ActionRepository) ListByRegion(ctx context.Context, regionID uuid.UUID) ([]*models.CombatAction, error) {
	query := `
		SELECT a.id, a.hotspot_id, a.started_at, a.ended_at, a.action_type, a.description, a.resources_used, a.outcome, a.responsible
		FROM combat_actions a
		JOIN hotspots h ON h.id = a.hotspot_id
		WHERE h.region_id = $1
		ORDER BY a.started_at DESC;
	`
	return r.queryActions(ctx, "ListByRegion", query, regionID)
}

// ListConcludedBetween returns actions concluded within [from, to], bounds
// inclusive.
func (r *ActionRepository) ListConcludedBetween(ctx context.Context, from, to time.Time) ([]*models.CombatAction, error) {
	query := `
		SELECT ` + actionColumns + `
		FROM combat_actions
		WHERE ended_at BETWEEN $1 AND $2
		ORDER BY ended_at DESC;
	`
	return r.queryActions(ctx, "ListConcludedBetween", query, from, to)
}

func (r *ActionRepository) ListStartedAfter(ctx context.Context, after time.Time) ([]*models.CombatAction, error) {
	query := `SELECT ` + actionColumns + ` FROM combat_actions WHERE started_at > $1 ORDER BY started_at DESC;`
	return r.queryActions(ctx, "ListStartedAfter", query, after)
}

// CountInProgressByRegion counts the in-progress actions targeting hotspots
// owned by the region.
func (r *ActionRepository) CountInProgressByRegion(ctx context.Context, regionID uuid.UUID) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM combat_actions a
		JOIN hotspots h ON h.id = a.hotspot_id
		WHERE h.region_id = $1 AND a.ended_at IS NULL;
	`
	q := postgres.QuerierFromContext(ctx, r.db)
	var count int64
	if err := q.QueryRow(ctx, query, regionID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count in-progress actions by region: %w", err)
	}
	return count, nil
}

func (r *ActionRepository) Update(ctx context.Context, action *models.CombatAction) error {
	query := `
		UPDATE combat_actions SET
			ended_at = $1,
			description = $2,
			resources_used = $3,
			outcome = $4,
			responsible = $5
		WHERE id = $6;
	`
	q := postgres.QuerierFromContext(ctx, r.db)
	cmdTag, err := q.Exec(ctx, query,
		action.EndedAt,
		action.Description,
		action.ResourcesUsed,
		action.Outcome,
		action.Responsible,
		action.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update combat action: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("combat action with id %s: %w", action.ID, service.ErrNotFound)
	}
	return nil
}

func (r *ActionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM combat_actions WHERE id = $1;`

	q := postgres.QuerierFromContext(ctx, r.db)
	cmdTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete combat action: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("combat action with id %s: %w", id, service.ErrNotFound)
	}
	return nil
}

// DeleteByRegion removes every action targeting a hotspot owned by the
// region. Zero rows is not an error.
func (r *ActionRepository) DeleteByRegion(ctx context.Context, regionID uuid.UUID) error {
	query := `
		DELETE FROM combat_actions a
		USING hotspots h
		WHERE a.hotspot_id = h.id AND h.region_id = $1;
	`
	q := postgres.QuerierFromContext(ctx, r.db)
	if _, err := q.Exec(ctx, query, regionID); err != nil {
		return fmt.Errorf("failed to delete combat actions by region: %w", err)
	}
	return nil
}

func (r *ActionRepository) queryActions(ctx context.Context, method, query string, args ...any) ([]*models.CombatAction, error) {
	q := postgres.QuerierFromContext(ctx, r.db)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query combat actions in %s: %w", method, err)
	}
	defer rows.Close()

	actions := make([]*models.CombatAction, 0)
	for rows.Next() {
		action, err := scanActionRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan combat action row in %s: %w", method, err)
		}
		actions = append(actions, action)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating combat action rows in %s: %w", method, err)
	}
	return actions, nil
}

func scanActionRow(row pgx.Row) (*models.CombatAction, error) {
	action := &models.CombatAction{}
	err := row.Scan(
		&action.ID,
		&action.HotspotID,
		&action.StartedAt,
		&action.EndedAt,
		&action.ActionType,
		&action.Description,
		&action.ResourcesUsed,
		&action.Outcome,
		&action.Responsible,
	)
	if err != nil {
		return nil, err
	}
	return action, nil
}

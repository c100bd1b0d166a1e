package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"moodvenue/internal/interfaces"
	"moodvenue/internal/models"
)

const (
	planColumns     = `name, theme, notes, song_url, album_art_url, track_title, artist_name`
	planColumnCount = 7
)

type planRepository struct {
	db *sql.DB
}

func NewPlanRepository(db *sql.DB) interfaces.PlanRepository {
	return &planRepository{db: db}
}

func planArgs(p *models.Plan) []any {
	return []any{p.Name, string(p.Theme), p.Notes, p.SongURL, p.AlbumArtURL, p.TrackTitle, p.ArtistName}
}

func scanPlan(row rowScanner) (*models.Plan, error) {
	var p models.Plan
	if err := row.Scan(&p.ID, &p.Name, &p.Theme, &p.Notes, &p.SongURL, &p.AlbumArtURL, &p.TrackTitle, &p.ArtistName); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *planRepository) Create(ctx context.Context, plan *models.Plan) error {
	query := fmt.Sprintf(`INSERT INTO plans (%s) VALUES (%s) RETURNING id`,
		planColumns, placeholders(1, planColumnCount))

	if err := r.db.QueryRowContext(ctx, query, planArgs(plan)...).Scan(&plan.ID); err != nil {
		return fmt.Errorf("create plan: %w", translateError(err))
	}
	return nil
}

func (r *planRepository) GetByID(ctx context.Context, id int64) (*models.Plan, error) {
	query := `SELECT id, ` + planColumns + ` FROM plans WHERE id = $1`

	plan, err := scanPlan(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("get plan by id: %w", err)
	}
	return plan, nil
}

func (r *planRepository) List(ctx context.Context) ([]*models.Plan, error) {
	return r.Search(ctx, interfaces.PlanFilter{})
}

func (r *planRepository) Search(ctx context.Context, filter interfaces.PlanFilter) ([]*models.Plan, error) {
	query := `SELECT id, ` + planColumns + ` FROM plans`
	var args []any
	if filter.Theme != "" {
		query += ` WHERE theme = $1`
		args = append(args, string(filter.Theme))
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	plans := []*models.Plan{}
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		plans = append(plans, plan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	return plans, nil
}

func (r *planRepository) Update(ctx context.Context, plan *models.Plan) error {
	query := fmt.Sprintf(`UPDATE plans SET %s WHERE id = $%d`,
		assignments(planColumns, 1), planColumnCount+1)

	result, err := r.db.ExecContext(ctx, query, append(planArgs(plan), plan.ID)...)
	if err != nil {
		return fmt.Errorf("update plan: %w", translateError(err))
	}
	return expectAffected(result)
}

func (r *planRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM plans WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	return expectAffected(result)
}

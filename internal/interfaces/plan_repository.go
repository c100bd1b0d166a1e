package interfaces

import (
	"context"

	"moodvenue/internal/models"
)

type PlanFilter struct {
	Theme models.Theme
}

// PlanRepository defines the interface for plan data operations
type PlanRepository interface {
	Create(ctx context.Context, plan *models.Plan) error
	GetByID(ctx context.Context, id int64) (*models.Plan, error)
	List(ctx context.Context) ([]*models.Plan, error)
	Search(ctx context.Context, filter PlanFilter) ([]*models.Plan, error)
	Update(ctx context.Context, plan *models.Plan) error
	Delete(ctx context.Context, id int64) error
}

package interfaces

import (
	"context"

	"moodvenue/internal/models"
)

// VenueFilter narrows admin venue listings. Zero values match everything.
type VenueFilter struct {
	Search      string // substring of name, date_text or detail_description
	RatingStars *int
}

// VenueRepository defines the interface for venue data operations
type VenueRepository interface {
	Create(ctx context.Context, venue *models.Venue) error
	GetByID(ctx context.Context, id int64) (*models.Venue, error)
	List(ctx context.Context) ([]*models.Venue, error)
	Search(ctx context.Context, filter VenueFilter) ([]*models.Venue, error)
	Update(ctx context.Context, venue *models.Venue) error
	Delete(ctx context.Context, id int64) error
}

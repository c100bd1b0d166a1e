package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"moodvenue/internal/interfaces"
	"moodvenue/internal/models"
)

// venueColumns is the single column list shared by every venue query. The order must match
// venueArgs and scanVenue.
const venueColumns = `name, image_url, date_text, rating_stars, rating_text, venue_icon1, venue_icon2,
	latitude, longitude, detail_image_url1, detail_image_url2, detail_description,
	positive_notes, positive_song_url, positive_album_art_url, positive_track_title, positive_artist_name,
	sad_notes, sad_song_url, sad_album_art_url, sad_track_title, sad_artist_name`

const venueColumnCount = 22

type venueRepository struct {
	db *sql.DB
}

func NewVenueRepository(db *sql.DB) interfaces.VenueRepository {
	return &venueRepository{db: db}
}

func venueArgs(v *models.Venue) []any {
	return []any{
		v.Name, v.ImageURL, v.DateText, v.RatingStars, v.RatingText, v.VenueIcon1, v.VenueIcon2,
		v.Latitude, v.Longitude, v.DetailImageURL1, v.DetailImageURL2, v.DetailDescription,
		v.Positive.Notes, v.Positive.SongURL, v.Positive.AlbumArtURL, v.Positive.TrackTitle, v.Positive.ArtistName,
		v.Sad.Notes, v.Sad.SongURL, v.Sad.AlbumArtURL, v.Sad.TrackTitle, v.Sad.ArtistName,
	}
}

func scanVenue(row rowScanner) (*models.Venue, error) {
	var v models.Venue
	err := row.Scan(
		&v.ID,
		&v.Name, &v.ImageURL, &v.DateText, &v.RatingStars, &v.RatingText, &v.VenueIcon1, &v.VenueIcon2,
		&v.Latitude, &v.Longitude, &v.DetailImageURL1, &v.DetailImageURL2, &v.DetailDescription,
		&v.Positive.Notes, &v.Positive.SongURL, &v.Positive.AlbumArtURL, &v.Positive.TrackTitle, &v.Positive.ArtistName,
		&v.Sad.Notes, &v.Sad.SongURL, &v.Sad.AlbumArtURL, &v.Sad.TrackTitle, &v.Sad.ArtistName,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *venueRepository) Create(ctx context.Context, venue *models.Venue) error {
	query := fmt.Sprintf(`INSERT INTO venues (%s) VALUES (%s) RETURNING id`,
		venueColumns, placeholders(1, venueColumnCount))

	err := r.db.QueryRowContext(ctx, query, venueArgs(venue)...).Scan(&venue.ID)
	if err != nil {
		return fmt.Errorf("create venue: %w", translateError(err))
	}
	return nil
}

func (r *venueRepository) GetByID(ctx context.Context, id int64) (*models.Venue, error) {
	query := `SELECT id, ` + venueColumns + ` FROM venues WHERE id = $1`

	venue, err := scanVenue(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("get venue by id: %w", err)
	}
	return venue, nil
}

// List returns every venue in storage (id) order.
func (r *venueRepository) List(ctx context.Context) ([]*models.Venue, error) {
	return r.Search(ctx, interfaces.VenueFilter{})
}

func (r *venueRepository) Search(ctx context.Context, filter interfaces.VenueFilter) ([]*models.Venue, error) {
	var (
		where []string
		args  []any
	)
	if s := strings.TrimSpace(filter.Search); s != "" {
		args = append(args, containsPattern(s))
		n := len(args)
		where = append(where, fmt.Sprintf(
			`(LOWER(name) LIKE $%d ESCAPE '\' OR LOWER(date_text) LIKE $%d ESCAPE '\' OR LOWER(detail_description) LIKE $%d ESCAPE '\')`,
			n, n, n))
	}
	if filter.RatingStars != nil {
		args = append(args, *filter.RatingStars)
		where = append(where, fmt.Sprintf("rating_stars = $%d", len(args)))
	}

	query := `SELECT id, ` + venueColumns + ` FROM venues`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	defer rows.Close()

	venues := []*models.Venue{}
	for rows.Next() {
		venue, err := scanVenue(rows)
		if err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		venues = append(venues, venue)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}

	return venues, nil
}

func (r *venueRepository) Update(ctx context.Context, venue *models.Venue) error {
	query := fmt.Sprintf(`UPDATE venues SET %s WHERE id = $%d`,
		assignments(venueColumns, 1), venueColumnCount+1)

	result, err := r.db.ExecContext(ctx, query, append(venueArgs(venue), venue.ID)...)
	if err != nil {
		return fmt.Errorf("update venue: %w", translateError(err))
	}
	return expectAffected(result)
}

func (r *venueRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM venues WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete venue: %w", err)
	}
	return expectAffected(result)
}

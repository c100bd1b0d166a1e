package models

import "strings"

// MoodPlan is the media and notes attached to one theme of a venue, and the body of a Plan.
type MoodPlan struct {
	Notes       string  `db:"notes"`
	SongURL     *string `db:"song_url"`
	AlbumArtURL *string `db:"album_art_url"`
	TrackTitle  string  `db:"track_title"`
	ArtistName  string  `db:"artist_name"`
}

type Venue struct {
	ID                int64    `db:"id"`
	Name              string   `db:"name"`
	ImageURL          *string  `db:"image_url"`
	DateText          string   `db:"date_text"`
	RatingStars       int      `db:"rating_stars"`
	RatingText        string   `db:"rating_text"`
	VenueIcon1        string   `db:"venue_icon1"`
	VenueIcon2        string   `db:"venue_icon2"`
	Latitude          *float64 `db:"latitude"`
	Longitude         *float64 `db:"longitude"`
	DetailImageURL1   *string  `db:"detail_image_url1"`
	DetailImageURL2   *string  `db:"detail_image_url2"`
	DetailDescription string   `db:"detail_description"`

	// stored as positive_* and sad_* columns
	Positive MoodPlan
	Sad      MoodPlan
}

func (v *Venue) String() string {
	return v.Name
}

// VenueInput is the admin payload for creating or replacing a venue.
type VenueInput struct {
	Name              string   `json:"name" validate:"required,max=100"`
	ImageURL          *string  `json:"image_url" validate:"omitempty,url,max=500"`
	DateText          string   `json:"date_text" validate:"max=50"`
	RatingStars       int      `json:"rating_stars" validate:"min=0,max=5"`
	RatingText        string   `json:"rating_text" validate:"max=150"`
	VenueIcon1        string   `json:"venue_icon1" validate:"max=10"`
	VenueIcon2        string   `json:"venue_icon2" validate:"max=10"`
	Latitude          *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude         *float64 `json:"longitude" validate:"omitempty,longitude"`
	DetailImageURL1   *string  `json:"detail_image_url1" validate:"omitempty,url,max=500"`
	DetailImageURL2   *string  `json:"detail_image_url2" validate:"omitempty,url,max=500"`
	DetailDescription string   `json:"detail_description"`

	PositiveNotes       string  `json:"positive_notes"`
	PositiveSongURL     *string `json:"positive_song_url" validate:"omitempty,url,max=500"`
	PositiveAlbumArtURL *string `json:"positive_album_art_url" validate:"omitempty,url,max=500"`
	PositiveTrackTitle  string  `json:"positive_track_title" validate:"max=150"`
	PositiveArtistName  string  `json:"positive_artist_name" validate:"max=150"`

	SadNotes       string  `json:"sad_notes"`
	SadSongURL     *string `json:"sad_song_url" validate:"omitempty,url,max=500"`
	SadAlbumArtURL *string `json:"sad_album_art_url" validate:"omitempty,url,max=500"`
	SadTrackTitle  string  `json:"sad_track_title" validate:"max=150"`
	SadArtistName  string  `json:"sad_artist_name" validate:"max=150"`
}

// Normalize clears blank URL fields so validation treats them as absent.
func (in *VenueInput) Normalize() {
	for _, u := range []**string{
		&in.ImageURL, &in.DetailImageURL1, &in.DetailImageURL2,
		&in.PositiveSongURL, &in.PositiveAlbumArtURL,
		&in.SadSongURL, &in.SadAlbumArtURL,
	} {
		*u = nullIfBlank(*u)
	}
}

// Venue converts the payload to a storable record. Blank URLs become NULL.
func (in *VenueInput) Venue() *Venue {
	return &Venue{
		Name:              in.Name,
		ImageURL:          nullIfBlank(in.ImageURL),
		DateText:          in.DateText,
		RatingStars:       in.RatingStars,
		RatingText:        in.RatingText,
		VenueIcon1:        in.VenueIcon1,
		VenueIcon2:        in.VenueIcon2,
		Latitude:          in.Latitude,
		Longitude:         in.Longitude,
		DetailImageURL1:   nullIfBlank(in.DetailImageURL1),
		DetailImageURL2:   nullIfBlank(in.DetailImageURL2),
		DetailDescription: in.DetailDescription,
		Positive: MoodPlan{
			Notes:       in.PositiveNotes,
			SongURL:     nullIfBlank(in.PositiveSongURL),
			AlbumArtURL: nullIfBlank(in.PositiveAlbumArtURL),
			TrackTitle:  in.PositiveTrackTitle,
			ArtistName:  in.PositiveArtistName,
		},
		Sad: MoodPlan{
			Notes:       in.SadNotes,
			SongURL:     nullIfBlank(in.SadSongURL),
			AlbumArtURL: nullIfBlank(in.SadAlbumArtURL),
			TrackTitle:  in.SadTrackTitle,
			ArtistName:  in.SadArtistName,
		},
	}
}

func nullIfBlank(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

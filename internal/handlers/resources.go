package handlers

import "moodvenue/internal/models"

// VenueResource is the wire shape of a venue. Keys match the storage column names one to one;
// nullable columns are sent as null.
type VenueResource struct {
	ID                int64    `json:"id"`
	Name              string   `json:"name"`
	ImageURL          *string  `json:"image_url"`
	DateText          string   `json:"date_text"`
	RatingStars       int      `json:"rating_stars"`
	RatingText        string   `json:"rating_text"`
	VenueIcon1        string   `json:"venue_icon1"`
	VenueIcon2        string   `json:"venue_icon2"`
	Latitude          *float64 `json:"latitude"`
	Longitude         *float64 `json:"longitude"`
	DetailImageURL1   *string  `json:"detail_image_url1"`
	DetailImageURL2   *string  `json:"detail_image_url2"`
	DetailDescription string   `json:"detail_description"`

	PositiveNotes       string  `json:"positive_notes"`
	PositiveSongURL     *string `json:"positive_song_url"`
	PositiveAlbumArtURL *string `json:"positive_album_art_url"`
	PositiveTrackTitle  string  `json:"positive_track_title"`
	PositiveArtistName  string  `json:"positive_artist_name"`

	SadNotes       string  `json:"sad_notes"`
	SadSongURL     *string `json:"sad_song_url"`
	SadAlbumArtURL *string `json:"sad_album_art_url"`
	SadTrackTitle  string  `json:"sad_track_title"`
	SadArtistName  string  `json:"sad_artist_name"`
}

func NewVenueResource(v *models.Venue) VenueResource {
	return VenueResource{
		ID:                v.ID,
		Name:              v.Name,
		ImageURL:          v.ImageURL,
		DateText:          v.DateText,
		RatingStars:       v.RatingStars,
		RatingText:        v.RatingText,
		VenueIcon1:        v.VenueIcon1,
		VenueIcon2:        v.VenueIcon2,
		Latitude:          v.Latitude,
		Longitude:         v.Longitude,
		DetailImageURL1:   v.DetailImageURL1,
		DetailImageURL2:   v.DetailImageURL2,
		DetailDescription: v.DetailDescription,

		PositiveNotes:       v.Positive.Notes,
		PositiveSongURL:     v.Positive.SongURL,
		PositiveAlbumArtURL: v.Positive.AlbumArtURL,
		PositiveTrackTitle:  v.Positive.TrackTitle,
		PositiveArtistName:  v.Positive.ArtistName,

		SadNotes:       v.Sad.Notes,
		SadSongURL:     v.Sad.SongURL,
		SadAlbumArtURL: v.Sad.AlbumArtURL,
		SadTrackTitle:  v.Sad.TrackTitle,
		SadArtistName:  v.Sad.ArtistName,
	}
}

func NewVenueResources(venues []*models.Venue) []VenueResource {
	out := make([]VenueResource, 0, len(venues))
	for _, v := range venues {
		out = append(out, NewVenueResource(v))
	}
	return out
}

// PlanResource is the wire shape of a plan. Theme is the raw stored value ("positive"/"sad").
type PlanResource struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Theme       string  `json:"theme"`
	Notes       string  `json:"notes"`
	SongURL     *string `json:"song_url"`
	AlbumArtURL *string `json:"album_art_url"`
	TrackTitle  string  `json:"track_title"`
	ArtistName  string  `json:"artist_name"`
}

func NewPlanResource(p *models.Plan) PlanResource {
	return PlanResource{
		ID:          p.ID,
		Name:        p.Name,
		Theme:       string(p.Theme),
		Notes:       p.Notes,
		SongURL:     p.SongURL,
		AlbumArtURL: p.AlbumArtURL,
		TrackTitle:  p.TrackTitle,
		ArtistName:  p.ArtistName,
	}
}

func NewPlanResources(plans []*models.Plan) []PlanResource {
	out := make([]PlanResource, 0, len(plans))
	for _, p := range plans {
		out = append(out, NewPlanResource(p))
	}
	return out
}

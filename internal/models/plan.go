package models

type Theme string

const (
	ThemePositive Theme = "positive"
	ThemeSad      Theme = "sad"
)

func (t Theme) Valid() bool {
	return t == ThemePositive || t == ThemeSad
}

// Plan is a named theme preset.
type Plan struct {
	ID    int64  `db:"id"`
	Name  string `db:"name"` // unique
	Theme Theme  `db:"theme"`
	MoodPlan
}

type PlanInput struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Theme       string  `json:"theme" validate:"required,oneof=positive sad"`
	Notes       string  `json:"notes"`
	SongURL     *string `json:"song_url" validate:"omitempty,url,max=500"`
	AlbumArtURL *string `json:"album_art_url" validate:"omitempty,url,max=500"`
	TrackTitle  string  `json:"track_title" validate:"max=150"`
	ArtistName  string  `json:"artist_name" validate:"max=150"`
}

// Normalize clears blank URL fields so validation treats them as absent.
func (in *PlanInput) Normalize() {
	in.SongURL = nullIfBlank(in.SongURL)
	in.AlbumArtURL = nullIfBlank(in.AlbumArtURL)
}

func (in *PlanInput) Plan() *Plan {
	return &Plan{
		Name:  in.Name,
		Theme: Theme(in.Theme),
		MoodPlan: MoodPlan{
			Notes:       in.Notes,
			SongURL:     nullIfBlank(in.SongURL),
			AlbumArtURL: nullIfBlank(in.AlbumArtURL),
			TrackTitle:  in.TrackTitle,
			ArtistName:  in.ArtistName,
		},
	}
}

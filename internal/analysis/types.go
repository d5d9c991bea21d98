package analysis

// Dashboard is the home view over a filtered set of tracks.
type Dashboard struct {
	Filter              FilterInfo     `yaml:"filter"`
	Totals              Totals         `yaml:"totals"`
	TopGenres           []GenreCount   `yaml:"top_genres"`
	Explicit            ExplicitShare  `yaml:"explicit"`
	TopArtists          []ArtistCount  `yaml:"top_artists"`
	SongsPerYear        []YearCount    `yaml:"songs_per_year"`
	GenresByPopularity  []GenreScore   `yaml:"genres_by_popularity"`
	DanceabilityByGenre []GenreSummary `yaml:"danceability_by_genre"`
}

type FilterInfo struct {
	Years  string   `yaml:"years"`
	Genres []string `yaml:"genres,omitempty"`
	Scope  string   `yaml:"genre_scope"`
}

type GenreCount struct {
	Genre string `yaml:"genre"`
	Songs int    `yaml:"songs"`
}

type ArtistCount struct {
	Artist string `yaml:"artist"`
	Songs  int    `yaml:"songs"`
}

type GenreScore struct {
	Genre           string  `yaml:"genre"`
	TotalPopularity float64 `yaml:"total_popularity"`
}

// ExplicitShare is a Ratio with its percentages. Applicable is false, and
// the percentages are omitted, when there were no tracks.
type ExplicitShare struct {
	Ratio              `yaml:",inline"`
	Applicable         bool     `yaml:"applicable"`
	ExplicitPercent    *float64 `yaml:"explicit_percent,omitempty"`
	NonExplicitPercent *float64 `yaml:"non_explicit_percent,omitempty"`
}

// ArtistProfile is the per-artist view.
type ArtistProfile struct {
	Artist           string       `yaml:"artist"`
	Songs            int          `yaml:"songs"`
	PopularityByYear []YearMean   `yaml:"popularity_by_year"`
	SongsPerYear     []YearCount  `yaml:"songs_per_year"`
	DurationByYear   []YearMean   `yaml:"duration_by_year"`
	MostPopular      []SongStat   `yaml:"most_popular"`
	Genres           []GenreCount `yaml:"genres"`
	Loudness         []SongStat   `yaml:"loudness"`
}

type SongStat struct {
	Song  string  `yaml:"song"`
	Year  int     `yaml:"year,omitempty"`
	Value float64 `yaml:"value"`
}

// Limits sets how many entries each dashboard ranking keeps.
type Limits struct {
	Genres          int
	Artists         int
	GenrePopularity int
	ArtistTopSongs  int
}

// DefaultLimits are the ranking sizes the dashboard shows by default.
var DefaultLimits = Limits{
	Genres:          8,
	Artists:         5,
	GenrePopularity: 10,
	ArtistTopSongs:  5,
}

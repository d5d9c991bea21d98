package analysis

import (
	"sort"

	"github.com/ademuri/hits-dashboard/internal/dataset"
	"github.com/ademuri/hits-dashboard/internal/logger"
)

// GenerateDashboard computes the home view over an already filtered set of
// tracks. filter only describes the selection for the report header.
func GenerateDashboard(tracks []dataset.Track, filter FilterInfo, limits Limits) *Dashboard {
	d := &Dashboard{
		Filter: filter,
		Totals: CountTotals(tracks),
	}

	// 1. Songs per genre
	for _, e := range CountByGenre(tracks).Top(limits.Genres) {
		d.TopGenres = append(d.TopGenres, GenreCount{Genre: e.Key, Songs: e.Value})
	}

	// 2. Explicit share
	d.Explicit = NewExplicitShare(ExplicitRatio(tracks))

	// 3. Artists by number of songs
	for _, e := range CountByArtist(tracks).Top(limits.Artists) {
		d.TopArtists = append(d.TopArtists, ArtistCount{Artist: e.Key, Songs: e.Value})
	}

	// 4. Songs per year
	d.SongsPerYear = CountByYear(tracks)

	// 5. Genres by total popularity
	for _, e := range SumPopularityByGenre(tracks).Top(limits.GenrePopularity) {
		d.GenresByPopularity = append(d.GenresByPopularity, GenreScore{Genre: e.Key, TotalPopularity: e.Value})
	}

	// 6. Danceability distribution
	d.DanceabilityByGenre = DistributionByGenre(tracks, dataset.FieldDanceability)
	sort.SliceStable(d.DanceabilityByGenre, func(i, j int) bool {
		return d.DanceabilityByGenre[i].Median > d.DanceabilityByGenre[j].Median
	})

	logger.Debug("dashboard generated",
		logger.Int("songs", d.Totals.Songs),
		logger.Int("artists", d.Totals.Artists),
		logger.Int("genres", d.Totals.Genres))
	return d
}

// NewExplicitShare fills in the percentages of r when they are defined.
func NewExplicitShare(r Ratio) ExplicitShare {
	share := ExplicitShare{Ratio: r}
	explicit, nonExplicit, err := r.Percentages()
	if err != nil {
		return share
	}
	share.Applicable = true
	share.ExplicitPercent = &explicit
	share.NonExplicitPercent = &nonExplicit
	return share
}

// GenerateArtistProfile computes the artist view from the tracks credited to
// artist within tracks. It returns nil when the artist has no tracks there.
func GenerateArtistProfile(tracks []dataset.Track, artist string, limits Limits) *ArtistProfile {
	var songs []dataset.Track
	for _, t := range tracks {
		if t.Artist == artist {
			songs = append(songs, t)
		}
	}
	if len(songs) == 0 {
		return nil
	}

	p := &ArtistProfile{
		Artist:           artist,
		Songs:            len(songs),
		PopularityByYear: MeanByYear(songs, dataset.FieldPopularity),
		SongsPerYear:     CountByYear(songs),
		DurationByYear:   MeanByYear(songs, dataset.FieldDuration),
	}

	for _, t := range TopTracks(songs, limits.ArtistTopSongs) {
		p.MostPopular = append(p.MostPopular, SongStat{Song: t.Song, Year: t.Year, Value: t.Popularity})
	}

	for _, e := range CountByGenre(songs) {
		p.Genres = append(p.Genres, GenreCount{Genre: e.Key, Songs: e.Value})
	}

	for _, t := range songs {
		p.Loudness = append(p.Loudness, SongStat{Song: t.Song, Year: t.Year, Value: t.Loudness})
	}
	sort.SliceStable(p.Loudness, func(i, j int) bool { return p.Loudness[i].Value > p.Loudness[j].Value })

	return p
}

// internal/domain/models.go
package domain

// Artist represents one credited artist on an album.
type Artist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Album represents one album release as returned by the listing API.
// Albums are immutable once received; the artist order is the API's order.
type Album struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	ReleaseDate string   `json:"release_date"`
	URL         string   `json:"url"`
	Artists     []Artist `json:"artists"`
}

// AlbumRow is a single row in the flattened export: one row per
// (album, artist) pair, with album fields repeated for every artist.
type AlbumRow struct {
	AlbumID     string `json:"album_id"`
	AlbumName   string `json:"album_name"`
	ReleaseDate string `json:"release_date"`
	AlbumURL    string `json:"album_spotify_url"`
	ArtistID    string `json:"artist_id"`
	ArtistName  string `json:"artist_name"`
	ArtistURL   string `json:"artist_spotify_url"`
}

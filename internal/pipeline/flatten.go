package pipeline

import (
	"fmt"

	"releasefeed/internal/domain"
)

// FlattenOptions controls edge-case policy for Flatten.
type FlattenOptions struct {
	// KeepArtistless emits one row with empty artist fields for an album
	// whose artist list is empty, instead of dropping the album from the
	// export entirely.
	KeepArtistless bool
}

// Flatten converts albums into one AlbumRow per (album, artist) pair. Input
// order is preserved: albums in aggregate order, artists in list order. Rows
// are not deduplicated; an album/artist pair seen on two pages yields two
// identical rows.
//
// A record without an id is malformed and fails the whole invocation.
func Flatten(albums []domain.Album, opts FlattenOptions) ([]domain.AlbumRow, error) {
	rows := make([]domain.AlbumRow, 0, len(albums))
	for _, album := range albums {
		if album.ID == "" {
			return nil, fmt.Errorf("malformed album record %q: missing id", album.Name)
		}

		if len(album.Artists) == 0 {
			if opts.KeepArtistless {
				rows = append(rows, domain.AlbumRow{
					AlbumID:     album.ID,
					AlbumName:   album.Name,
					ReleaseDate: album.ReleaseDate,
					AlbumURL:    album.URL,
				})
			}
			continue
		}

		for _, artist := range album.Artists {
			if artist.ID == "" {
				return nil, fmt.Errorf("malformed artist record %q on album %s: missing id", artist.Name, album.ID)
			}
			rows = append(rows, domain.AlbumRow{
				AlbumID:     album.ID,
				AlbumName:   album.Name,
				ReleaseDate: album.ReleaseDate,
				AlbumURL:    album.URL,
				ArtistID:    artist.ID,
				ArtistName:  artist.Name,
				ArtistURL:   artist.URL,
			})
		}
	}
	return rows, nil
}

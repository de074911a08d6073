package export

import (
	"strings"
	"testing"

	"releasefeed/internal/domain"
)

const headerLine = "album_id,album_name,release_date,album_spotify_url,artist_id,artist_name,artist_spotify_url"

func TestEncodeCSVEmpty(t *testing.T) {
	got, err := EncodeCSV(nil)
	if err != nil {
		t.Fatalf("EncodeCSV() error = %v", err)
	}
	if string(got) != headerLine+"\n" {
		t.Errorf("EncodeCSV() = %q, want header line only", got)
	}
}

func TestEncodeCSVRows(t *testing.T) {
	rows := []domain.AlbumRow{
		{
			AlbumID:     "a1",
			AlbumName:   "First Light",
			ReleaseDate: "2026-08-21",
			AlbumURL:    "https://open.spotify.com/album/a1",
			ArtistID:    "r1",
			ArtistName:  "The Examples",
			ArtistURL:   "https://open.spotify.com/artist/r1",
		},
		{
			AlbumID:     "a2",
			AlbumName:   "Second Sun",
			ReleaseDate: "2026-08-22",
			AlbumURL:    "https://open.spotify.com/album/a2",
			ArtistID:    "r2",
			ArtistName:  "Anon",
			ArtistURL:   "https://open.spotify.com/artist/r2",
		},
	}

	got, err := EncodeCSV(rows)
	if err != nil {
		t.Fatalf("EncodeCSV() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(got), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("EncodeCSV() produced %d lines, want 3", len(lines))
	}
	if lines[0] != headerLine {
		t.Errorf("header = %q, want %q", lines[0], headerLine)
	}
	if lines[1] != "a1,First Light,2026-08-21,https://open.spotify.com/album/a1,r1,The Examples,https://open.spotify.com/artist/r1" {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != "a2,Second Sun,2026-08-22,https://open.spotify.com/album/a2,r2,Anon,https://open.spotify.com/artist/r2" {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestEncodeCSVEscaping(t *testing.T) {
	rows := []domain.AlbumRow{{
		AlbumID:     "a1",
		AlbumName:   `Letras, Vol. 1`,
		ReleaseDate: "2026-08-21",
		AlbumURL:    "https://open.spotify.com/album/a1",
		ArtistID:    "r1",
		ArtistName:  `Joe "Bass" Dart`,
		ArtistURL:   "https://open.spotify.com/artist/r1",
	}}

	got, err := EncodeCSV(rows)
	if err != nil {
		t.Fatalf("EncodeCSV() error = %v", err)
	}

	body := string(got)
	if !strings.Contains(body, `"Letras, Vol. 1"`) {
		t.Errorf("comma field not quoted: %q", body)
	}
	if !strings.Contains(body, `"Joe ""Bass"" Dart"`) {
		t.Errorf("quote field not escaped: %q", body)
	}
}

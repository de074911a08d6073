// Package export serializes flattened album rows into the CSV artifact the
// job uploads.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"releasefeed/internal/domain"
)

// ContentType is the MIME type set on the uploaded object.
const ContentType = "text/csv"

// Header is the fixed column order of the export. It must not change between
// runs: downstream consumers address columns by name and position.
var Header = []string{
	"album_id",
	"album_name",
	"release_date",
	"album_spotify_url",
	"artist_id",
	"artist_name",
	"artist_spotify_url",
}

// EncodeCSV renders rows as a UTF-8 CSV payload with a header line. Zero
// rows produce a header-only file.
func EncodeCSV(rows []domain.AlbumRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(Header); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.AlbumID,
			row.AlbumName,
			row.ReleaseDate,
			row.AlbumURL,
			row.ArtistID,
			row.ArtistName,
			row.ArtistURL,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv row for album %s: %w", row.AlbumID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

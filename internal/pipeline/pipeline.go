// Package pipeline runs the export end to end: token exchange, paginated
// fetch, flatten, CSV encode, upload. Every step is sequential and must
// complete before the next begins.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"releasefeed/internal/export"
	"releasefeed/internal/spotify"
	"releasefeed/internal/storage"
)

// ReleaseSource is the listing API surface the pipeline consumes.
type ReleaseSource interface {
	Token(ctx context.Context) (string, error)
	NewReleases(ctx context.Context, token string) (*spotify.ReleaseSet, error)
}

// Config carries the per-run export settings.
type Config struct {
	ObjectKey      string
	LocalPath      string
	DryRun         bool
	AllowPartial   bool
	KeepArtistless bool
}

// Result summarizes a completed run.
type Result struct {
	AlbumCount int
	RowCount   int
	Complete   bool
	ObjectKey  string
	Uploaded   bool
}

// Pipeline wires a release source to an object store.
type Pipeline struct {
	source ReleaseSource
	store  storage.ObjectStorage
	cfg    Config
	log    zerolog.Logger
}

// New creates a new Pipeline.
func New(source ReleaseSource, store storage.ObjectStorage, cfg Config, log zerolog.Logger) *Pipeline {
	return &Pipeline{
		source: source,
		store:  store,
		cfg:    cfg,
		log:    log,
	}
}

// Run executes one export. A truncated fetch fails the run unless
// AllowPartial is set, in which case the partial snapshot is exported and
// flagged in the result.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	token, err := p.source.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("authentication failed: %w", err)
	}

	set, err := p.source.NewReleases(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("fetching new releases failed: %w", err)
	}
	if !set.Complete {
		if !p.cfg.AllowPartial {
			return nil, fmt.Errorf("pagination truncated at %s (status %d); refusing to export a partial snapshot", set.TruncatedAt, set.Status)
		}
		p.log.Warn().
			Str("truncated_at", set.TruncatedAt).
			Int("status", set.Status).
			Msg("exporting partial snapshot")
	}

	rows, err := Flatten(set.Albums, FlattenOptions{KeepArtistless: p.cfg.KeepArtistless})
	if err != nil {
		return nil, fmt.Errorf("flattening failed: %w", err)
	}

	payload, err := export.EncodeCSV(rows)
	if err != nil {
		return nil, fmt.Errorf("csv encoding failed: %w", err)
	}

	if p.cfg.LocalPath != "" {
		if err := os.WriteFile(p.cfg.LocalPath, payload, 0o644); err != nil {
			return nil, fmt.Errorf("writing local copy to %s failed: %w", p.cfg.LocalPath, err)
		}
		p.log.Info().Str("path", p.cfg.LocalPath).Msg("local copy written")
	}

	result := &Result{
		AlbumCount: len(set.Albums),
		RowCount:   len(rows),
		Complete:   set.Complete,
		ObjectKey:  p.cfg.ObjectKey,
	}

	if p.cfg.DryRun {
		p.log.Info().Int("rows", len(rows)).Msg("dry run, skipping upload")
		return result, nil
	}

	if err := p.store.UploadObject(ctx, p.cfg.ObjectKey, payload, export.ContentType); err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}
	result.Uploaded = true

	p.log.Info().
		Str("key", p.cfg.ObjectKey).
		Int("albums", result.AlbumCount).
		Int("rows", result.RowCount).
		Int("bytes", len(payload)).
		Msg("export uploaded")
	return result, nil
}

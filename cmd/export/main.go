package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"releasefeed/internal/config"
	"releasefeed/internal/pipeline"
	"releasefeed/internal/spotify"
	"releasefeed/internal/storage"
	"releasefeed/pkg/logger"
)

func main() {
	app := &cli.App{
		Name:  "releasefeed",
		Usage: "Export Spotify new album releases as a CSV object",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "object-key",
				Usage: "Destination object key in the bucket",
			},
			&cli.StringFlag{
				Name:  "local-path",
				Usage: "Also write the CSV to this local path",
			},
			&cli.BoolFlag{
				Name:  "allow-partial",
				Usage: "Export whatever was fetched even if pagination was truncated",
			},
			&cli.BoolFlag{
				Name:  "keep-artistless",
				Usage: "Emit a row with empty artist fields for albums without artists",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Fetch and encode but skip the upload",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (trace, debug, info, warn, error)",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		logger.Log.Fatal().Err(err).Msg("export failed")
	}
}

func run(c *cli.Context) error {
	cfg := config.Load()

	// CLI flags override environment-sourced settings
	if c.IsSet("object-key") {
		cfg.Export.ObjectKey = c.String("object-key")
	}
	if c.IsSet("local-path") {
		cfg.Export.LocalPath = c.String("local-path")
	}
	if c.IsSet("allow-partial") {
		cfg.Export.AllowPartial = c.Bool("allow-partial")
	}
	if c.IsSet("keep-artistless") {
		cfg.Export.KeepArtistless = c.Bool("keep-artistless")
	}
	if c.IsSet("log-level") {
		cfg.App.LogLevel = c.String("log-level")
	}
	logger.SetLevel(cfg.App.LogLevel)

	if cfg.Spotify.ClientID == "" || cfg.Spotify.ClientSecret == "" {
		return fmt.Errorf("CLIENT_ID and CLIENT_SECRET must be set")
	}

	dryRun := c.Bool("dry-run")

	var store storage.ObjectStorage
	if !dryRun {
		s3, err := storage.NewS3Client(storage.S3Config{
			Endpoint:  cfg.Storage.Endpoint,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			Bucket:    cfg.Storage.Bucket,
			Region:    cfg.Storage.Region,
			UseSSL:    cfg.Storage.UseSSL,
		})
		if err != nil {
			return fmt.Errorf("failed to init object storage: %w", err)
		}
		store = s3
	}

	client := spotify.New(cfg.Spotify, logger.Log)

	p := pipeline.New(client, store, pipeline.Config{
		ObjectKey:      cfg.Export.ObjectKey,
		LocalPath:      cfg.Export.LocalPath,
		DryRun:         dryRun,
		AllowPartial:   cfg.Export.AllowPartial,
		KeepArtistless: cfg.Export.KeepArtistless,
	}, logger.Log)

	result, err := p.Run(c.Context)
	if err != nil {
		return err
	}

	logger.Log.Info().
		Int("albums", result.AlbumCount).
		Int("rows", result.RowCount).
		Bool("complete", result.Complete).
		Bool("uploaded", result.Uploaded).
		Msg("run finished")
	return nil
}

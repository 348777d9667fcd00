// Package internal provides the conversion pipeline run by the command.
package internal

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/starford/quiver-to-markdown/internal/checksum"
	"github.com/starford/quiver-to-markdown/internal/correlate"
	"github.com/starford/quiver-to-markdown/internal/fragment"
	"github.com/starford/quiver-to-markdown/internal/storage"
	"github.com/starford/quiver-to-markdown/internal/writer"
)

// Run converts the configured library into the output tree. Any failure
// aborts the run; the output tree may then be incomplete until the next run
// wipes it.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	logger := app.logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: cfg.App.LogLevel,
		}))
		slog.SetDefault(logger)
	}

	loc, err := cfg.Output.Location()
	if err != nil {
		return err
	}

	start := time.Now()
	logger.Info("Quiver - running job",
		slog.String("source", cfg.Source.Root),
		slog.String("output", cfg.Output.Dir()),
		slog.String("log_level", cfg.App.LogLevel.String()))

	source, err := storage.NewFS(cfg.Source.Root)
	if err != nil {
		return fmt.Errorf("open library: %w", err)
	}

	frags, err := fragment.NewLoader(source, cfg.Workers.Read, logger).Load(ctx)
	if err != nil {
		return fmt.Errorf("load library: %w", err)
	}

	out, err := storage.Reset(cfg.Output.Dir())
	if err != nil {
		return fmt.Errorf("reset output: %w", err)
	}

	w := writer.New(out, writer.Options{
		Layout:   cfg.Output.Layout,
		Location: loc,
		Workers:  cfg.Workers.Write,
	}, logger)

	if err := w.CreateFolders(correlate.Notebooks(frags)); err != nil {
		return err
	}

	notes := correlate.Notes(frags)
	if err := w.WriteNotes(ctx, notes); err != nil {
		return err
	}
	if err := w.WriteCategories(notes); err != nil {
		return err
	}

	digest, err := checksum.Tree(os.DirFS(out.Root()))
	if err != nil {
		return err
	}

	logger.Info("Quiver - job finished",
		slog.Int("fragments", len(frags)),
		slog.Int("notes", len(notes)),
		slog.String("checksum", digest),
		slog.Duration("elapsed", time.Since(start)))
	return nil
}

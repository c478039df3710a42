package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"storeshots/internal/application"
	"storeshots/internal/config"
	"storeshots/internal/domain/entities"
	"storeshots/internal/infrastructure/filesystem"
	"storeshots/internal/infrastructure/i18n"
	"storeshots/internal/infrastructure/logging"
)

func main() {
	if err := run(context.Background(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	catalog, err := i18n.NewCatalog(cfg.SourceLocale)
	if err != nil {
		return err
	}
	store := filesystem.NewStore(cfg.Root, cfg.SourceLocale)

	svc := application.NewRenderService(catalog, store, logger)
	summary, err := svc.RenderAll(ctx)
	if err != nil {
		return err
	}

	printSummary(stdout, summary)
	return nil
}

func printSummary(w io.Writer, s *entities.Summary) {
	fmt.Fprintf(w, "\nDone! Generated screenshots for %d languages (%d files).\n", len(s.Locales), s.Files)
	fmt.Fprintln(w, "\nLanguages generated:")
	for _, locale := range s.SortedLocales() {
		fmt.Fprintf(w, "  - %s\n", locale)
	}
}

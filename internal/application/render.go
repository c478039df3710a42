package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"storeshots/internal/domain/entities"
	"storeshots/internal/ports/input"
	"storeshots/internal/ports/output"
	"storeshots/pkg/markup"
)

var _ input.RenderUseCase = (*RenderService)(nil)

// RenderService produces the localized screenshot documents.
type RenderService struct {
	catalog output.Catalog
	store   output.TemplateStore
	logger  *zap.SugaredLogger
}

func NewRenderService(catalog output.Catalog, store output.TemplateStore, logger *zap.SugaredLogger) *RenderService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &RenderService{
		catalog: catalog,
		store:   store,
		logger:  logger,
	}
}

// RenderLocale writes the six documents of entry.Locale and returns their
// names. Anchors missing from a template are skipped silently. ctx is
// checked before each template; documents already written stay in place.
func (s *RenderService) RenderLocale(ctx context.Context, entry entities.LocaleEntry) ([]string, error) {
	if err := s.store.PrepareLocale(entry.Locale); err != nil {
		return nil, fmt.Errorf("prepare %s: %w", entry.Locale, err)
	}
	anchors := s.catalog.Anchors()

	templates := entities.Templates()
	written := make([]string, 0, len(templates))
	for _, tpl := range templates {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		name := tpl.Filename()
		doc, err := s.store.ReadTemplate(name)
		if err != nil {
			return written, fmt.Errorf("read template %s: %w", name, err)
		}

		from, to := anchors.CaptionFor(tpl), entry.CaptionFor(tpl)
		if !markup.ContainsText(doc, from.Title) || !markup.ContainsText(doc, from.Description) {
			s.logger.Debugw("template lacks an anchor", "template", name, "locale", entry.Locale)
		}
		doc = markup.ReplaceText(doc, from.Title, to.Title)
		doc = markup.ReplaceText(doc, from.Description, to.Description)

		if err := s.store.WriteArtifact(entry.Locale, name, doc); err != nil {
			return written, fmt.Errorf("write %s/%s: %w", entry.Locale, name, err)
		}
		s.logger.Debugw("rendered", "locale", entry.Locale, "template", tpl.String())
		written = append(written, name)
	}
	return written, nil
}

// RenderAll renders every locale of the catalog in table order and stops at
// the first failure. Locales rendered before the failure keep their files.
func (s *RenderService) RenderAll(ctx context.Context) (*entities.Summary, error) {
	locales := s.catalog.Locales()
	s.logger.Infof("Generating localized screenshots for %d languages...", len(locales))

	summary := &entities.Summary{Locales: make([]string, 0, len(locales))}
	for _, locale := range locales {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		entry, err := s.catalog.Entry(locale)
		if err != nil {
			return summary, err
		}
		s.logger.Infow("Processing", "locale", locale)
		files, err := s.RenderLocale(ctx, entry)
		summary.Files += len(files)
		if err != nil {
			return summary, err
		}
		summary.Locales = append(summary.Locales, locale)
	}
	return summary, nil
}

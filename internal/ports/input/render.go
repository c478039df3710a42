package input

import (
	"context"

	"storeshots/internal/domain/entities"
)

type RenderUseCase interface {
	RenderLocale(ctx context.Context, entry entities.LocaleEntry) ([]string, error)
	RenderAll(ctx context.Context) (*entities.Summary, error)
}

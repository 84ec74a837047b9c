package catalog

import (
	"context"

	"github.com/m04kA/GameLounge-BookingService/internal/domain"
)

// CatalogRepository storefront catalog storage
type CatalogRepository interface {
	GetGameTypes(ctx context.Context) ([]*domain.GameType, error)
	ReplaceGameTypes(ctx context.Context, gameTypes []*domain.GameType) error
	GetGalleryImages(ctx context.Context) ([]*domain.GalleryImage, error)
	CreateGalleryImage(ctx context.Context, img *domain.GalleryImage) (*domain.GalleryImage, error)
	ReplaceGalleryImages(ctx context.Context, images []*domain.GalleryImage) error
	GetSettings(ctx context.Context) (*domain.Settings, error)
	UpsertSettings(ctx context.Context, settings *domain.Settings) (*domain.Settings, error)
}

// TransactionManager transaction runner
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

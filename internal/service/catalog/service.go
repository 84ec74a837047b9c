package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/m04kA/GameLounge-BookingService/internal/domain"
	catalogRepo "github.com/m04kA/GameLounge-BookingService/internal/infra/storage/catalog"
	"github.com/m04kA/GameLounge-BookingService/internal/service/catalog/models"
)

const (
	cacheKeyGameTypes = "game_types"
	cacheKeyGallery   = "gallery"
	cacheKeySettings  = "settings"

	seedMessage = "Database seeded successfully"
)

// CacheOptions read cache settings
type CacheOptions struct {
	Size int
	TTL  time.Duration
}

// Service storefront catalog: game types, gallery and settings
type Service struct {
	repo      CatalogRepository
	txManager TransactionManager
	cache     *expirable.LRU[string, any]
	logger    Logger
}

// NewService creates the catalog service. A zero cache size disables caching.
func NewService(repo CatalogRepository, txManager TransactionManager, cacheOpts CacheOptions, logger Logger) *Service {
	s := &Service{
		repo:      repo,
		txManager: txManager,
		logger:    logger,
	}
	if cacheOpts.Size > 0 {
		s.cache = expirable.NewLRU[string, any](cacheOpts.Size, nil, cacheOpts.TTL)
	}
	return s
}

// GetGameTypes returns the storefront game types in display order
func (s *Service) GetGameTypes(ctx context.Context) ([]models.GameTypeResponse, error) {
	if cached, ok := s.cached(cacheKeyGameTypes); ok {
		return cached.([]models.GameTypeResponse), nil
	}

	gameTypes, err := s.repo.GetGameTypes(ctx)
	if err != nil {
		s.logger.Error("GetGameTypes: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetGameTypes - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainGameTypes(gameTypes)
	s.store(cacheKeyGameTypes, resp)
	return resp, nil
}

// GetGallery returns gallery images, newest first
func (s *Service) GetGallery(ctx context.Context) ([]models.GalleryImageResponse, error) {
	if cached, ok := s.cached(cacheKeyGallery); ok {
		return cached.([]models.GalleryImageResponse), nil
	}

	images, err := s.repo.GetGalleryImages(ctx)
	if err != nil {
		s.logger.Error("GetGallery: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetGallery - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainGallery(images)
	s.store(cacheKeyGallery, resp)
	return resp, nil
}

// CreateGalleryImage adds an image to the gallery
func (s *Service) CreateGalleryImage(ctx context.Context, req *models.CreateGalleryImageRequest) (*models.GalleryImageResponse, error) {
	if err := validateGalleryImage(req); err != nil {
		s.logger.Warn("CreateGalleryImage: validation failed: %v", err)
		return nil, err
	}

	created, err := s.repo.CreateGalleryImage(ctx, &domain.GalleryImage{
		Title:       strings.TrimSpace(req.Title),
		Category:    strings.TrimSpace(req.Category),
		Description: req.Description,
		ImageData:   req.ImageData,
	})
	if err != nil {
		s.logger.Error("CreateGalleryImage: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateGalleryImage - repository error: %v", ErrInternal, err)
	}

	s.invalidate(cacheKeyGallery)

	s.logger.Info("CreateGalleryImage: image id=%s created, category=%s", created.ID, created.Category)
	resp := models.FromDomainGalleryImage(created)
	return &resp, nil
}

// GetSettings returns pricing and contact settings
func (s *Service) GetSettings(ctx context.Context) (*models.SettingsResponse, error) {
	if cached, ok := s.cached(cacheKeySettings); ok {
		return cached.(*models.SettingsResponse), nil
	}

	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrSettingsNotFound) {
			s.logger.Warn("GetSettings: settings not seeded")
			return nil, ErrSettingsNotFound
		}
		s.logger.Error("GetSettings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetSettings - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainSettings(settings)
	s.store(cacheKeySettings, resp)
	return resp, nil
}

// Seed replaces game types, gallery and settings with the default storefront data
func (s *Service) Seed(ctx context.Context) (*models.SeedResponse, error) {
	gameTypes := seedGameTypes()
	images := seedGalleryImages()

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.ReplaceGameTypes(ctx, gameTypes); err != nil {
			return err
		}
		if err := s.repo.ReplaceGalleryImages(ctx, images); err != nil {
			return err
		}
		_, err := s.repo.UpsertSettings(ctx, seedSettings())
		return err
	})
	if err != nil {
		s.logger.Error("Seed: failed to seed catalog: %v", err)
		return nil, fmt.Errorf("%w: Seed - %v", ErrInternal, err)
	}

	if s.cache != nil {
		s.cache.Purge()
	}

	s.logger.Info("Seed: seeded %d game types and %d gallery images", len(gameTypes), len(images))
	return &models.SeedResponse{
		Message:       seedMessage,
		GameTypes:     len(gameTypes),
		GalleryImages: len(images),
	}, nil
}

func (s *Service) cached(key string) (any, bool) {
	if s.cache == nil {
		return nil, false
	}
	return s.cache.Get(key)
}

func (s *Service) store(key string, value any) {
	if s.cache != nil {
		s.cache.Add(key, value)
	}
}

func (s *Service) invalidate(key string) {
	if s.cache != nil {
		s.cache.Remove(key)
	}
}

func validateGalleryImage(req *models.CreateGalleryImageRequest) error {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(title) > domain.MaxGalleryTitleLength {
		return fmt.Errorf("%w: title longer than %d characters", ErrInvalidInput, domain.MaxGalleryTitleLength)
	}
	if strings.TrimSpace(req.Category) == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.ImageData) == "" {
		return fmt.Errorf("%w: imageData is required", ErrInvalidInput)
	}
	return nil
}

package models

import (
	"time"

	"github.com/m04kA/GameLounge-BookingService/internal/domain"
)

// GameTypeResponse game type as shown on the storefront
type GameTypeResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Icon         string   `json:"icon"`
	Available    bool     `json:"available"`
	PopularGames []string `json:"popularGames"`
}

// GalleryImageResponse gallery image
type GalleryImageResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	ImageData   string `json:"imageData"`
	CreatedAt   string `json:"createdAt"`
}

// CreateGalleryImageRequest new gallery image
type CreateGalleryImageRequest struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	ImageData   string `json:"imageData"`
}

// SettingsResponse storefront settings
type SettingsResponse struct {
	Pricing   domain.PricingInfo `json:"pricing"`
	Contact   domain.ContactInfo `json:"contact"`
	UpdatedAt string             `json:"updatedAt"`
}

// SeedResponse result of seeding
type SeedResponse struct {
	Message       string `json:"message"`
	GameTypes     int    `json:"gameTypes"`
	GalleryImages int    `json:"galleryImages"`
}

func FromDomainGameTypes(gameTypes []*domain.GameType) []GameTypeResponse {
	out := make([]GameTypeResponse, 0, len(gameTypes))
	for _, gt := range gameTypes {
		games := gt.PopularGames
		if games == nil {
			games = []string{}
		}
		out = append(out, GameTypeResponse{
			ID:           gt.ID,
			Name:         gt.Name,
			Description:  gt.Description,
			Icon:         gt.Icon,
			Available:    gt.Available,
			PopularGames: games,
		})
	}
	return out
}

func FromDomainGalleryImage(img *domain.GalleryImage) GalleryImageResponse {
	return GalleryImageResponse{
		ID:          img.ID.String(),
		Title:       img.Title,
		Category:    img.Category,
		Description: img.Description,
		ImageData:   img.ImageData,
		CreatedAt:   img.CreatedAt.Format(time.RFC3339),
	}
}

func FromDomainGallery(images []*domain.GalleryImage) []GalleryImageResponse {
	out := make([]GalleryImageResponse, 0, len(images))
	for _, img := range images {
		out = append(out, FromDomainGalleryImage(img))
	}
	return out
}

func FromDomainSettings(s *domain.Settings) *SettingsResponse {
	return &SettingsResponse{
		Pricing:   s.Pricing,
		Contact:   s.Contact,
		UpdatedAt: s.UpdatedAt.Format(time.RFC3339),
	}
}

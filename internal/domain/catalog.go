package domain

import (
	"time"

	"github.com/google/uuid"
)

// GameType station type shown on the storefront
type GameType struct {
	ID           string
	Name         string
	Description  string
	Icon         string
	Available    bool
	PopularGames []string
	SortOrder    int
}

// GalleryImage picture in the lounge gallery
type GalleryImage struct {
	ID          uuid.UUID
	Title       string
	Category    string
	Description string
	ImageData   string // URL or data URI
	CreatedAt   time.Time
}

// PricingInfo prices displayed on the storefront, in rupees
type PricingInfo struct {
	Individual        float64 `json:"individual"`
	Group             float64 `json:"group"`
	GroupMinSize      int     `json:"group_min_size"`
	BirthdayPackage   float64 `json:"birthday_package"`
	BirthdayDuration  int     `json:"birthday_duration"`
	BirthdayMaxPeople int     `json:"birthday_max_people"`
}

// ContactInfo lounge contact details
type ContactInfo struct {
	Address string            `json:"address"`
	Phone   string            `json:"phone"`
	Email   string            `json:"email"`
	Hours   string            `json:"hours"`
	Social  map[string]string `json:"social"`
}

// Settings storefront settings, single row
type Settings struct {
	Pricing   PricingInfo
	Contact   ContactInfo
	UpdatedAt time.Time
}

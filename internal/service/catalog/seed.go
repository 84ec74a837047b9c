package catalog

import "github.com/m04kA/GameLounge-BookingService/internal/domain"

func seedGameTypes() []*domain.GameType {
	return []*domain.GameType{
		{
			ID:          "playstation",
			Name:        "PlayStation 5",
			Description: "Latest PlayStation 5 console with exclusive games and 4K gaming",
			Icon:        "🎮",
			Available:   true,
			PopularGames: []string{
				"Spider-Man 2", "God of War Ragnarök", "Horizon Forbidden West",
				"The Last of Us Part I", "Gran Turismo 7", "Ghost of Tsushima Director's Cut",
			},
			SortOrder: 0,
		},
		{
			ID:          "xbox",
			Name:        "Xbox Series X",
			Description: "Xbox Series X with Game Pass library and 4K gaming",
			Icon:        "🎮",
			Available:   true,
			PopularGames: []string{
				"Halo Infinite", "Forza Horizon 5", "Starfield", "Gears 5",
				"Minecraft", "Sea of Thieves",
			},
			SortOrder: 1,
		},
		{
			ID:          "switch",
			Name:        "Nintendo Switch",
			Description: "Nintendo Switch with exclusive games and portable gaming",
			Icon:        "🎮",
			Available:   true,
			PopularGames: []string{
				"The Legend of Zelda: Tears of the Kingdom", "Super Mario Bros. Wonder",
				"Mario Kart 8 Deluxe", "Super Smash Bros. Ultimate", "Splatoon 3",
			},
			SortOrder: 2,
		},
		{
			ID:          "vr",
			Name:        "VR Gaming",
			Description: "Immersive virtual reality gaming with latest VR headsets",
			Icon:        "🥽",
			Available:   true,
			PopularGames: []string{
				"Beat Saber", "Half-Life: Alyx", "Superhot VR", "Resident Evil 4 VR",
				"Pistol Whip", "Arizona Sunshine",
			},
			SortOrder: 3,
		},
		{
			ID:          "board-games",
			Name:        "Board Games",
			Description: "Classic and modern board games for all ages and groups",
			Icon:        "🎲",
			Available:   true,
			PopularGames: []string{
				"Monopoly", "Scrabble", "Settlers of Catan", "Ticket to Ride", "Codenames",
				"UNO", "Jenga", "Chess", "Ludo", "Carrom",
			},
			SortOrder: 4,
		},
	}
}

func seedGalleryImages() []*domain.GalleryImage {
	return []*domain.GalleryImage{
		{Title: "PlayStation 5 Gaming Setup", Category: "PlayStation", Description: "Latest PlayStation 5 console with DualSense controller and 4K gaming", ImageData: "https://images.unsplash.com/photo-1607853202273-797f1c22a38e"},
		{Title: "Xbox Series X Gaming Station", Category: "Xbox", Description: "Xbox Series X console with wireless controller and Game Pass library", ImageData: "https://images.unsplash.com/photo-1621259182978-fbf93132d53d"},
		{Title: "Nintendo Switch Gaming", Category: "Nintendo", Description: "Nintendo Switch with Joy-Con controllers for portable and docked gaming", ImageData: "https://images.unsplash.com/photo-1612036781124-847f8939b154"},
		{Title: "VR Gaming Experience", Category: "VR", Description: "Immersive virtual reality gaming with advanced VR headsets and controllers", ImageData: "https://images.unsplash.com/photo-1535223289827-42f1e9919769"},
		{Title: "Board Games Collection", Category: "Board Games", Description: "Extensive collection of classic and modern board games for all ages", ImageData: "https://images.unsplash.com/photo-1632501641765-e568d28b0015"},
		{Title: "Family Board Game Session", Category: "Events", Description: "Families and friends enjoying board games together in the lounge", ImageData: "https://images.unsplash.com/photo-1577897113292-3b95936e5206"},
		{Title: "Gaming Tournament Setup", Category: "Esports", Description: "Professional gaming tournaments and competitive gaming events", ImageData: "https://images.pexels.com/photos/7915214/pexels-photo-7915214.jpeg"},
		{Title: "Modern Gaming Lounge", Category: "Setup", Description: "Gaming setup with RGB lighting and comfortable seating", ImageData: "https://images.unsplash.com/photo-1614179924047-e1ab49a0a0cf"},
		{Title: "Group Gaming Sessions", Category: "Group", Description: "Birthday parties and group gaming events in our spacious gaming area", ImageData: "https://images.pexels.com/photos/7915255/pexels-photo-7915255.jpeg"},
		{Title: "Premium PlayStation Console", Category: "PlayStation", Description: "Premium PlayStation 5 gaming setup with latest exclusive games", ImageData: "https://images.pexels.com/photos/32967534/pexels-photo-32967534.jpeg"},
		{Title: "Xbox Gaming Environment", Category: "Xbox", Description: "Xbox Series X gaming station with premium accessories", ImageData: "https://images.unsplash.com/photo-1683823362932-6f7599661d22"},
		{Title: "Active Board Game Play", Category: "Board Games", Description: "Board game sessions with colorful game pieces and dice", ImageData: "https://images.unsplash.com/photo-1629760946220-5693ee4c46ac"},
	}
}

func seedSettings() *domain.Settings {
	return &domain.Settings{
		Pricing: domain.PricingInfo{
			Individual:        120,
			Group:             100,
			GroupMinSize:      3,
			BirthdayPackage:   2500,
			BirthdayDuration:  4,
			BirthdayMaxPeople: 8,
		},
		Contact: domain.ContactInfo{
			Address: "123 Gaming Street, Tech City, TC 12345",
			Phone:   "+91 98765 43210",
			Email:   "info@karthikeyagamesgalaxy.com",
			Hours:   "10:00 AM - 10:00 PM",
			Social: map[string]string{
				"facebook":  "#",
				"twitter":   "#",
				"instagram": "#",
				"youtube":   "#",
			},
		},
	}
}

package domain

// Default configuration values
const (
	DefaultSlotIntervalMinutes       = 30
	DefaultBookingDurationMinutes    = 60
	DefaultCancellationNoticeMinutes = 60 // 1 hour
	DefaultOpenTime                  = "10:00"
	DefaultCloseTime                 = "22:00"
)

// Business validation constants
const (
	MinSlotIntervalMinutes    = 5
	MaxSlotIntervalMinutes    = 240
	MaxBookingDurationMinutes = 720 // 12 hours
	MinNumPeople              = 1
	MaxNumPeople              = 20
	MaxNameLength             = 100
	MaxPhoneLength            = 20
	MaxEmailLength            = 254
	MaxSpecialRequestsLength  = 500
	MaxGalleryTitleLength     = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

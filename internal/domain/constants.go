package domain

// Default configuration values
const (
	DefaultAdminUserID = 1
	DefaultDayStart    = "09:00"
	DefaultDayEnd      = "17:00"
)

// Business validation constants
const (
	MinEventDurationMinutes = 1
	MaxEventDurationMinutes = 480 // 8 hours
	MaxTitleLength          = 200
	MaxSlugLength           = 100
	MaxDescriptionLength    = 2000
	MaxBookerNameLength     = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

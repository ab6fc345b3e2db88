package domain

// Default system identifiers
const (
	// DefaultSystemID система по умолчанию, если клиент не указал system
	DefaultSystemID = "a_device"

	// FullDaySystemID система с круглосуточным окном бронирования
	FullDaySystemID = "b_device"
)

// Default policy values
const (
	DefaultSlotStart       = "09:00"
	DefaultSlotEnd         = "18:00"
	DefaultIntervalMinutes = 30

	FullDaySlotStart       = "00:00"
	FullDaySlotEnd         = "23:59"
	FullDayIntervalMinutes = 60
)

// Business validation constants
const (
	MinIntervalMinutes = 1
	MaxIntervalMinutes = 24 * 60
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Midnight метка полуночи, используется для терминального слота
// окна, дотягивающегося до конца суток ("23:00-00:00")
const Midnight = "00:00"

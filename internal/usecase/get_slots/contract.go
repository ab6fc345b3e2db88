package get_slots

import "context"

// CalendarRepository интерфейс хранилища бронирований
type CalendarRepository interface {
	// ListByDate возвращает бронирования системы на дату: slot -> occupant
	ListByDate(ctx context.Context, systemID, date string) (map[string]string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package bookings

import (
	"context"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
)

// CalendarRepository интерфейс хранилища бронирований
type CalendarRepository interface {
	Cancel(ctx context.Context, systemID, date, slot string) error
	ListByOccupant(ctx context.Context, systemID, occupant string) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

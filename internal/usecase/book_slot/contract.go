package book_slot

import (
	"context"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
)

// CalendarRepository интерфейс хранилища бронирований
type CalendarRepository interface {
	// Book атомарно бронирует слот; занятый слот дает ошибку без мутации
	Book(ctx context.Context, reservation *domain.Reservation) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

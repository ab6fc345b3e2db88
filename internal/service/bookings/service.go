package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	calendarRepo "github.com/m04kA/SMC-LabBookingService/internal/infra/storage/calendar"
	"github.com/m04kA/SMC-LabBookingService/internal/service/bookings/models"
)

// Service сервис для работы с существующими бронированиями
type Service struct {
	calendarRepo CalendarRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(calendarRepo CalendarRepository, logger Logger) *Service {
	return &Service{
		calendarRepo: calendarRepo,
		logger:       logger,
	}
}

// Cancel снимает бронирование по ключу (система, дата, слот)
// Возвращает ErrBookingNotFound, если по ключу нет записи
func (s *Service) Cancel(ctx context.Context, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: system=%s, date=%s, slot=%s", req.SystemID, req.Date, req.Slot)

	if strings.TrimSpace(req.SystemID) == "" {
		return fmt.Errorf("%w: system", ErrMissingField)
	}
	if strings.TrimSpace(req.Date) == "" {
		return fmt.Errorf("%w: date", ErrMissingField)
	}
	if strings.TrimSpace(req.Slot) == "" {
		return fmt.Errorf("%w: slot", ErrMissingField)
	}

	if err := s.calendarRepo.Cancel(ctx, req.SystemID, req.Date, req.Slot); err != nil {
		if errors.Is(err, calendarRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking not found: system=%s, date=%s, slot=%s",
				req.SystemID, req.Date, req.Slot)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error: system=%s, date=%s, slot=%s: %v",
			req.SystemID, req.Date, req.Slot, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled: system=%s, date=%s, slot=%s",
		req.SystemID, req.Date, req.Slot)
	return nil
}

// GetUserBookings возвращает бронирования пользователя в системе,
// отсортированные по возрастанию (дата, слот)
// Неизвестная система дает пустой список, пустое имя — ошибку
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.UserBookingsResponse, error) {
	s.logger.Info("GetUserBookings: system=%s, name=%s", req.SystemID, req.Occupant)

	if strings.TrimSpace(req.SystemID) == "" {
		return nil, fmt.Errorf("%w: system", ErrMissingField)
	}
	if strings.TrimSpace(req.Occupant) == "" {
		return nil, fmt.Errorf("%w: name", ErrMissingField)
	}

	reservations, err := s.calendarRepo.ListByOccupant(ctx, req.SystemID, req.Occupant)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error: system=%s, name=%s: %v",
			req.SystemID, req.Occupant, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: found %d bookings: system=%s, name=%s",
		len(reservations), req.SystemID, req.Occupant)
	return models.FromDomainReservations(reservations), nil
}

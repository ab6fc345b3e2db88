package book_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	calendarRepo "github.com/m04kA/SMC-LabBookingService/internal/infra/storage/calendar"
)

// UseCase use case для бронирования слота
//
// Единственная операция, критичная для инварианта "не больше одного
// занявшего на слот": проверка занятости и вставка выполняются атомарно
// внутри хранилища, поэтому из N одновременных запросов на один ключ
// выигрывает ровно один, остальные получают конфликт
type UseCase struct {
	calendarRepo CalendarRepository
	policies     *domain.PolicySet
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(calendarRepo CalendarRepository, policies *domain.PolicySet, logger Logger) *UseCase {
	return &UseCase{
		calendarRepo: calendarRepo,
		policies:     policies,
		logger:       logger,
	}
}

// Execute выполняет use case бронирования слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookSlot: system=%s, date=%s, slot=%s, name=%s",
		req.SystemID, req.Date, req.Slot, req.Name)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что метка слота входит в каноническое расписание системы
	// Бронировать произвольную строку вместо слота нельзя
	policy := uc.policies.PolicyFor(req.SystemID)
	allSlots, err := domain.GenerateSlots(policy)
	if err != nil {
		uc.logger.Error("BookSlot: failed to generate slots for system=%s: %v", req.SystemID, err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	if !domain.ContainsSlot(allSlots, req.Slot) {
		uc.logger.Warn("BookSlot: slot %q is not in schedule of system=%s", req.Slot, req.SystemID)
		return nil, fmt.Errorf("%w: %s", ErrInvalidSlot, req.Slot)
	}

	// 3. Атомарно бронируем слот
	reservation := &domain.Reservation{
		SystemID: req.SystemID,
		Date:     req.Date,
		Slot:     req.Slot,
		Occupant: req.Name,
	}

	if err := uc.calendarRepo.Book(ctx, reservation); err != nil {
		if errors.Is(err, calendarRepo.ErrSlotTaken) {
			uc.logger.Warn("BookSlot: slot taken: system=%s, date=%s, slot=%s",
				req.SystemID, req.Date, req.Slot)
			return nil, ErrSlotAlreadyBooked
		}
		uc.logger.Error("BookSlot: failed to book: system=%s, date=%s, slot=%s: %v",
			req.SystemID, req.Date, req.Slot, err)
		return nil, fmt.Errorf("%w: failed to book slot: %v", ErrInternal, err)
	}

	uc.logger.Info("BookSlot: successfully booked: system=%s, date=%s, slot=%s, name=%s",
		req.SystemID, req.Date, req.Slot, req.Name)

	return &Response{
		SystemID:  reservation.SystemID,
		Date:      reservation.Date,
		Slot:      reservation.Slot,
		Name:      reservation.Occupant,
		CreatedAt: reservation.CreatedAt,
	}, nil
}

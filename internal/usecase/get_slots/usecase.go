package get_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	"github.com/m04kA/SMC-LabBookingService/pkg/ptr"
)

// UseCase use case для получения расписания слотов на день
//
// Никогда не мутирует состояние: генерирует канонический список слотов
// по политике системы и накладывает на него текущие бронирования.
// Неизвестная система или дата дают расписание, где все слоты свободны
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

// Execute выполняет use case получения расписания слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Генерируем канонический список слотов по политике системы
	// Политики валидированы при старте сервиса, ошибка здесь внутренняя
	policy := uc.policies.PolicyFor(req.SystemID)
	allSlots, err := domain.GenerateSlots(policy)
	if err != nil {
		uc.logger.Error("GetSlots: failed to generate slots for system=%s: %v", req.SystemID, err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	// 3. Получаем текущие бронирования на дату
	booked, err := uc.calendarRepo.ListByDate(ctx, req.SystemID, req.Date)
	if err != nil {
		uc.logger.Error("GetSlots: failed to list bookings for system=%s, date=%s: %v",
			req.SystemID, req.Date, err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	// 4. Накладываем бронирования на канонический список
	slots := make([]Slot, len(allSlots))
	for i, label := range allSlots {
		slot := Slot{Time: label}
		if occupant, taken := booked[label]; taken {
			slot.Booked = true
			slot.Name = ptr.Ptr(occupant)
		}
		slots[i] = slot
	}

	uc.logger.Info("GetSlots: system=%s, date=%s, slots=%d, booked=%d",
		req.SystemID, req.Date, len(slots), len(booked))

	return &Response{
		SystemID: req.SystemID,
		Date:     req.Date,
		Slots:    slots,
	}, nil
}

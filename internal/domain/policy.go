package domain

import (
	"fmt"

	"github.com/m04kA/SMC-LabBookingService/pkg/types"
)

// SlotPolicy политика нарезки рабочего окна системы на слоты
type SlotPolicy struct {
	Start           types.TimeString // Начало рабочего окна
	End             types.TimeString // Конец рабочего окна ("23:59" = до конца суток)
	IntervalMinutes int              // Длительность одного слота в минутах
}

// DefaultPolicy возвращает политику по умолчанию (09:00-18:00, шаг 30 минут)
func DefaultPolicy() SlotPolicy {
	return SlotPolicy{
		Start:           types.TimeString(DefaultSlotStart),
		End:             types.TimeString(DefaultSlotEnd),
		IntervalMinutes: DefaultIntervalMinutes,
	}
}

// FullDayPolicy возвращает круглосуточную политику (00:00-23:59, шаг 60 минут)
func FullDayPolicy() SlotPolicy {
	return SlotPolicy{
		Start:           types.TimeString(FullDaySlotStart),
		End:             types.TimeString(FullDaySlotEnd),
		IntervalMinutes: FullDayIntervalMinutes,
	}
}

// Validate проверяет корректность политики
// Вызывается один раз при старте сервиса, некорректная политика фатальна
func (p SlotPolicy) Validate() error {
	if _, err := types.NewTimeStringFromString(p.Start.String()); err != nil {
		return fmt.Errorf("%w: start: %v", ErrInvalidPolicy, err)
	}
	if _, err := types.NewTimeStringFromString(p.End.String()); err != nil {
		return fmt.Errorf("%w: end: %v", ErrInvalidPolicy, err)
	}
	if p.IntervalMinutes < MinIntervalMinutes || p.IntervalMinutes > MaxIntervalMinutes {
		return fmt.Errorf("%w: interval must be in [%d, %d] minutes, got %d",
			ErrInvalidPolicy, MinIntervalMinutes, MaxIntervalMinutes, p.IntervalMinutes)
	}
	if !p.Start.IsBefore(p.End) {
		return fmt.Errorf("%w: start %s must be before end %s", ErrInvalidPolicy, p.Start, p.End)
	}
	return nil
}

// PolicySet статический справочник политик по идентификатору системы
// Неизвестная система получает политику по умолчанию (lazy absence —
// системы не требуют предварительной регистрации)
type PolicySet struct {
	policies map[string]SlotPolicy
	fallback SlotPolicy
}

// NewPolicySet создает справочник политик
// Все политики валидируются; ошибка означает некорректную конфигурацию
func NewPolicySet(fallback SlotPolicy, policies map[string]SlotPolicy) (*PolicySet, error) {
	if err := fallback.Validate(); err != nil {
		return nil, fmt.Errorf("default policy: %w", err)
	}

	set := &PolicySet{
		policies: make(map[string]SlotPolicy, len(policies)),
		fallback: fallback,
	}

	for systemID, policy := range policies {
		if err := policy.Validate(); err != nil {
			return nil, fmt.Errorf("policy for system %q: %w", systemID, err)
		}
		set.policies[systemID] = policy
	}

	return set, nil
}

// NewDefaultPolicySet создает справочник со встроенными политиками:
// a_device (и любая неизвестная система) 09:00-18:00/30, b_device 00:00-23:59/60
func NewDefaultPolicySet() *PolicySet {
	set, err := NewPolicySet(DefaultPolicy(), map[string]SlotPolicy{
		FullDaySystemID: FullDayPolicy(),
	})
	if err != nil {
		// Встроенные политики корректны по построению
		panic(err)
	}
	return set
}

// PolicyFor возвращает политику для указанной системы
func (s *PolicySet) PolicyFor(systemID string) SlotPolicy {
	if policy, ok := s.policies[systemID]; ok {
		return policy
	}
	return s.fallback
}

package domain

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-LabBookingService/pkg/types"
)

var (
	// ErrInvalidPolicy возвращается при некорректной политике нарезки слотов
	ErrInvalidPolicy = errors.New("invalid slot policy")
)

const minutesPerDay = 24 * 60

// GenerateSlots генерирует канонический упорядоченный список меток слотов
// "HH:MM-HH:MM" для рабочего окна политики
//
// Курсор двигается от начала окна с шагом IntervalMinutes; слот эмитится,
// пока курсор строго раньше конца окна. Последовательность строго
// возрастающая, без пересечений, непрерывная (конец слота N равен началу
// слота N+1) и детерминированная для данной политики.
//
// Переход через полночь: если следующий шаг курсора достигает конца суток
// (окно до "23:59"), терминальный слот получает метку "{cursor}-00:00" —
// вместо бесконечного цикла или слота, уходящего "назад во времени"
func GenerateSlots(policy SlotPolicy) ([]string, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	// После Validate ошибки парсинга невозможны
	startMin, err := policy.Start.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPolicy, err)
	}
	endMin, err := policy.End.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPolicy, err)
	}

	slots := make([]string, 0, (endMin-startMin)/policy.IntervalMinutes+1)

	for cur := startMin; cur < endMin; cur += policy.IntervalMinutes {
		next := cur + policy.IntervalMinutes

		start, err := types.NewTimeStringFromMinutes(cur)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPolicy, err)
		}

		if next >= minutesPerDay {
			slots = append(slots, fmt.Sprintf("%s-%s", start, Midnight))
			break
		}

		end, err := types.NewTimeStringFromMinutes(next)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPolicy, err)
		}

		slots = append(slots, fmt.Sprintf("%s-%s", start, end))
	}

	return slots, nil
}

// ContainsSlot проверяет, что метка слота входит в канонический список
func ContainsSlot(slots []string, slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}

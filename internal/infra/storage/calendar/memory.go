package calendar

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
)

// record значение слота в хранилище
type record struct {
	occupant  string
	createdAt time.Time
}

// Store хранилище бронирований в памяти процесса
//
// Трехуровневая структура: system -> date -> slot -> record. Все уровни
// создаются лениво при первой записи; отсутствие ключа на любом уровне
// означает "нет бронирований", а не ошибку.
//
// Один RWMutex на все хранилище: проверка занятости и вставка выполняются
// под одной блокировкой, поэтому из N одновременных Book на один ключ
// выигрывает ровно один. Нагрузка человеческого масштаба, гранулярнее
// блокировать незачем.
type Store struct {
	mu   sync.RWMutex
	data map[string]map[string]map[string]record
}

// NewStore создает пустое хранилище бронирований
func NewStore() *Store {
	return &Store{
		data: make(map[string]map[string]map[string]record),
	}
}

// Book атомарно бронирует слот
// Возвращает ErrSlotTaken, если слот уже занят; состояние при этом не меняется
func (s *Store) Book(ctx context.Context, reservation *domain.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dates, ok := s.data[reservation.SystemID]
	if !ok {
		dates = make(map[string]map[string]record)
		s.data[reservation.SystemID] = dates
	}

	slots, ok := dates[reservation.Date]
	if !ok {
		slots = make(map[string]record)
		dates[reservation.Date] = slots
	}

	if _, taken := slots[reservation.Slot]; taken {
		return ErrSlotTaken
	}

	createdAt := reservation.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	slots[reservation.Slot] = record{occupant: reservation.Occupant, createdAt: createdAt}
	reservation.CreatedAt = createdAt

	return nil
}

// Cancel снимает бронирование
// Возвращает ErrBookingNotFound, если по ключу нет записи
// Пустые промежуточные уровни после удаления вычищаются
func (s *Store) Cancel(ctx context.Context, systemID, date, slot string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dates, ok := s.data[systemID]
	if !ok {
		return ErrBookingNotFound
	}

	slots, ok := dates[date]
	if !ok {
		return ErrBookingNotFound
	}

	if _, exists := slots[slot]; !exists {
		return ErrBookingNotFound
	}

	delete(slots, slot)
	if len(slots) == 0 {
		delete(dates, date)
	}
	if len(dates) == 0 {
		delete(s.data, systemID)
	}

	return nil
}

// ListByDate возвращает снимок бронирований системы на дату: slot -> occupant
// Неизвестная система или дата дают пустую мапу
func (s *Store) ListByDate(ctx context.Context, systemID, date string) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	booked := make(map[string]string)
	if dates, ok := s.data[systemID]; ok {
		for slot, rec := range dates[date] {
			booked[slot] = rec.occupant
		}
	}
	return booked, nil
}

// ListByOccupant возвращает все бронирования указанного имени в системе,
// отсортированные по возрастанию (дата, слот)
// Неизвестная система дает пустой список
func (s *Store) ListByOccupant(ctx context.Context, systemID, occupant string) ([]*domain.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reservations := make([]*domain.Reservation, 0)

	for date, slots := range s.data[systemID] {
		for slot, rec := range slots {
			if rec.occupant != occupant {
				continue
			}
			reservations = append(reservations, &domain.Reservation{
				SystemID:  systemID,
				Date:      date,
				Slot:      slot,
				Occupant:  rec.occupant,
				CreatedAt: rec.createdAt,
			})
		}
	}

	// Даты YYYY-MM-DD и слоты HH:MM с нулевым паддингом, поэтому
	// лексикографический порядок совпадает с хронологическим
	sort.Slice(reservations, func(i, j int) bool {
		if reservations[i].Date != reservations[j].Date {
			return reservations[i].Date < reservations[j].Date
		}
		return reservations[i].Slot < reservations[j].Slot
	})

	return reservations, nil
}

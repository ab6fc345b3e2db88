package calendar

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
)

func newReservation(system, date, slot, occupant string) *domain.Reservation {
	return &domain.Reservation{
		SystemID: system,
		Date:     date,
		Slot:     slot,
		Occupant: occupant,
	}
}

func TestStore_BookAndListByDate(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	err := store.Book(ctx, newReservation("a_device", "2025-06-01", "09:00-09:30", "Alice"))
	require.NoError(t, err)

	booked, err := store.ListByDate(ctx, "a_device", "2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"09:00-09:30": "Alice"}, booked)
}

func TestStore_BookConflict(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	err := store.Book(ctx, newReservation("a_device", "2025-06-01", "09:00-09:30", "Alice"))
	require.NoError(t, err)

	err = store.Book(ctx, newReservation("a_device", "2025-06-01", "09:00-09:30", "Bob"))
	assert.ErrorIs(t, err, ErrSlotTaken)

	// Проигравший запрос не меняет состояние
	booked, err := store.ListByDate(ctx, "a_device", "2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, "Alice", booked["09:00-09:30"])
}

func TestStore_ConcurrentBookSingleWinner(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	const workers = 50

	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("user-%d", i)
			errs[i] = store.Book(ctx, newReservation("a_device", "2025-06-01", "10:00-10:30", name))
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, ErrSlotTaken)
		}
	}
	assert.Equal(t, 1, winners, "exactly one concurrent Book must succeed")
}

func TestStore_BookCancelRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	require.NoError(t, store.Book(ctx, newReservation("a_device", "2025-06-01", "09:00-09:30", "Alice")))
	require.NoError(t, store.Cancel(ctx, "a_device", "2025-06-01", "09:00-09:30"))

	// Ключ вернулся в исходное состояние: слот свободен и может быть занят снова
	booked, err := store.ListByDate(ctx, "a_device", "2025-06-01")
	require.NoError(t, err)
	assert.Empty(t, booked)

	require.NoError(t, store.Book(ctx, newReservation("a_device", "2025-06-01", "09:00-09:30", "Bob")))
}

func TestStore_CancelNotFound(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	err := store.Cancel(ctx, "a_device", "2025-06-01", "09:00-09:30")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	// Повторная отмена после успешной тоже дает not found
	require.NoError(t, store.Book(ctx, newReservation("a_device", "2025-06-01", "09:00-09:30", "Alice")))
	require.NoError(t, store.Cancel(ctx, "a_device", "2025-06-01", "09:00-09:30"))
	err = store.Cancel(ctx, "a_device", "2025-06-01", "09:00-09:30")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestStore_LazyAbsence(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	booked, err := store.ListByDate(ctx, "never-seen", "2030-01-01")
	require.NoError(t, err)
	assert.Empty(t, booked)

	reservations, err := store.ListByOccupant(ctx, "never-seen", "Alice")
	require.NoError(t, err)
	assert.Empty(t, reservations)
}

func TestStore_ListByOccupantSorted(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	// Вставляем в перемешанном порядке
	require.NoError(t, store.Book(ctx, newReservation("a_device", "2025-06-02", "10:00-10:30", "Alice")))
	require.NoError(t, store.Book(ctx, newReservation("a_device", "2025-06-01", "17:30-18:00", "Alice")))
	require.NoError(t, store.Book(ctx, newReservation("a_device", "2025-06-01", "09:00-09:30", "Alice")))
	require.NoError(t, store.Book(ctx, newReservation("a_device", "2025-06-01", "10:00-10:30", "Bob")))

	reservations, err := store.ListByOccupant(ctx, "a_device", "Alice")
	require.NoError(t, err)

	require.Len(t, reservations, 3)
	assert.Equal(t, "2025-06-01", reservations[0].Date)
	assert.Equal(t, "09:00-09:30", reservations[0].Slot)
	assert.Equal(t, "2025-06-01", reservations[1].Date)
	assert.Equal(t, "17:30-18:00", reservations[1].Slot)
	assert.Equal(t, "2025-06-02", reservations[2].Date)
	assert.Equal(t, "10:00-10:30", reservations[2].Slot)
}

func TestStore_SystemsAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	require.NoError(t, store.Book(ctx, newReservation("a_device", "2025-06-01", "09:00-09:30", "Alice")))

	// Тот же слот другой системы остается свободным
	require.NoError(t, store.Book(ctx, newReservation("b_device", "2025-06-01", "09:00-09:30", "Bob")))

	booked, err := store.ListByDate(ctx, "b_device", "2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, "Bob", booked["09:00-09:30"])
}

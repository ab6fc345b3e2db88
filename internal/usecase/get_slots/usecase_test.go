package get_slots

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	calendarStorage "github.com/m04kA/SMC-LabBookingService/internal/infra/storage/calendar"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newUseCase(t *testing.T) (*UseCase, *calendarStorage.Store) {
	t.Helper()
	store := calendarStorage.NewStore()
	return NewUseCase(store, domain.NewDefaultPolicySet(), nopLogger{}), store
}

func TestExecute_UnseenDateAllFree(t *testing.T) {
	uc, _ := newUseCase(t)

	resp, err := uc.Execute(context.Background(), &Request{
		SystemID: "a_device",
		Date:     "2025-06-01",
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 18)
	for _, slot := range resp.Slots {
		assert.False(t, slot.Booked)
		assert.Nil(t, slot.Name)
	}
	assert.Equal(t, "09:00-09:30", resp.Slots[0].Time)
	assert.Equal(t, "17:30-18:00", resp.Slots[17].Time)
}

func TestExecute_ReflectsBookings(t *testing.T) {
	uc, store := newUseCase(t)
	ctx := context.Background()

	require.NoError(t, store.Book(ctx, &domain.Reservation{
		SystemID: "a_device",
		Date:     "2025-06-01",
		Slot:     "09:00-09:30",
		Occupant: "Alice",
	}))

	resp, err := uc.Execute(ctx, &Request{SystemID: "a_device", Date: "2025-06-01"})
	require.NoError(t, err)

	first := resp.Slots[0]
	assert.Equal(t, "09:00-09:30", first.Time)
	assert.True(t, first.Booked)
	require.NotNil(t, first.Name)
	assert.Equal(t, "Alice", *first.Name)

	// Остальные слоты свободны
	for _, slot := range resp.Slots[1:] {
		assert.False(t, slot.Booked)
		assert.Nil(t, slot.Name)
	}
}

func TestExecute_AfterCancelSlotIsFree(t *testing.T) {
	uc, store := newUseCase(t)
	ctx := context.Background()

	require.NoError(t, store.Book(ctx, &domain.Reservation{
		SystemID: "a_device",
		Date:     "2025-06-01",
		Slot:     "09:00-09:30",
		Occupant: "Alice",
	}))
	require.NoError(t, store.Cancel(ctx, "a_device", "2025-06-01", "09:00-09:30"))

	resp, err := uc.Execute(ctx, &Request{SystemID: "a_device", Date: "2025-06-01"})
	require.NoError(t, err)

	assert.False(t, resp.Slots[0].Booked)
	assert.Nil(t, resp.Slots[0].Name)
}

func TestExecute_FullDaySystem(t *testing.T) {
	uc, _ := newUseCase(t)

	resp, err := uc.Execute(context.Background(), &Request{
		SystemID: "b_device",
		Date:     "2025-06-01",
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 24)
	assert.Equal(t, "23:00-00:00", resp.Slots[23].Time)
}

func TestExecute_MissingDate(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.Execute(context.Background(), &Request{SystemID: "a_device"})
	assert.ErrorIs(t, err, ErrMissingField)
}

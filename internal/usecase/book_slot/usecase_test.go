package book_slot

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

func TestExecute_Success(t *testing.T) {
	uc, store := newUseCase(t)
	ctx := context.Background()

	resp, err := uc.Execute(ctx, &Request{
		SystemID: "a_device",
		Date:     "2025-06-01",
		Slot:     "09:00-09:30",
		Name:     "Alice",
	})
	require.NoError(t, err)

	assert.Equal(t, "a_device", resp.SystemID)
	assert.Equal(t, "Alice", resp.Name)
	assert.False(t, resp.CreatedAt.IsZero())

	booked, err := store.ListByDate(ctx, "a_device", "2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, "Alice", booked["09:00-09:30"])
}

func TestExecute_Conflict(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	req := &Request{SystemID: "a_device", Date: "2025-06-01", Slot: "09:00-09:30", Name: "Alice"}
	_, err := uc.Execute(ctx, req)
	require.NoError(t, err)

	_, err = uc.Execute(ctx, &Request{
		SystemID: "a_device",
		Date:     "2025-06-01",
		Slot:     "09:00-09:30",
		Name:     "Bob",
	})
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
}

func TestExecute_MissingFields(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "empty date", req: &Request{SystemID: "a_device", Slot: "09:00-09:30", Name: "Alice"}},
		{name: "empty slot", req: &Request{SystemID: "a_device", Date: "2025-06-01", Name: "Alice"}},
		{name: "empty name", req: &Request{SystemID: "a_device", Date: "2025-06-01", Slot: "09:00-09:30"}},
		{name: "blank name", req: &Request{SystemID: "a_device", Date: "2025-06-01", Slot: "09:00-09:30", Name: "   "}},
		{name: "empty system", req: &Request{Date: "2025-06-01", Slot: "09:00-09:30", Name: "Alice"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tt.req)
			assert.ErrorIs(t, err, ErrMissingField)
		})
	}
}

func TestExecute_SlotOutsideSchedule(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	tests := []struct {
		name string
		slot string
	}{
		{name: "before working window", slot: "08:00-08:30"},
		{name: "wrong interval", slot: "09:00-10:00"},
		{name: "arbitrary string", slot: "whenever"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, &Request{
				SystemID: "a_device",
				Date:     "2025-06-01",
				Slot:     tt.slot,
				Name:     "Alice",
			})
			assert.ErrorIs(t, err, ErrInvalidSlot)
		})
	}
}

func TestExecute_FullDaySystemTerminalSlot(t *testing.T) {
	uc, _ := newUseCase(t)

	// Терминальный слот круглосуточной системы бронируется как обычный
	resp, err := uc.Execute(context.Background(), &Request{
		SystemID: "b_device",
		Date:     "2025-06-01",
		Slot:     "23:00-00:00",
		Name:     "Alice",
	})
	require.NoError(t, err)
	assert.Equal(t, "23:00-00:00", resp.Slot)
}

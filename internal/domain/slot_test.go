package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LabBookingService/pkg/types"
)

func TestGenerateSlots_DefaultPolicy(t *testing.T) {
	slots, err := GenerateSlots(DefaultPolicy())
	require.NoError(t, err)

	require.Len(t, slots, 18)
	assert.Equal(t, "09:00-09:30", slots[0])
	assert.Equal(t, "17:30-18:00", slots[17])
}

func TestGenerateSlots_Contiguous(t *testing.T) {
	slots, err := GenerateSlots(DefaultPolicy())
	require.NoError(t, err)

	for i := 1; i < len(slots); i++ {
		prevEnd := strings.Split(slots[i-1], "-")[1]
		curStart := strings.Split(slots[i], "-")[0]
		assert.Equal(t, prevEnd, curStart, "slot %d must start where slot %d ends", i, i-1)

		prevStart := strings.Split(slots[i-1], "-")[0]
		assert.Less(t, prevStart, curStart, "slot starts must strictly increase")
	}
}

func TestGenerateSlots_MidnightWrap(t *testing.T) {
	slots, err := GenerateSlots(FullDayPolicy())
	require.NoError(t, err)

	require.Len(t, slots, 24)
	assert.Equal(t, "00:00-01:00", slots[0])
	assert.Equal(t, "23:00-00:00", slots[23])

	// Кроме терминального слота, конец слота не раньше его начала
	for _, slot := range slots[:23] {
		parts := strings.Split(slot, "-")
		assert.Less(t, parts[0], parts[1], "slot %s must not go backward in time", slot)
	}
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	first, err := GenerateSlots(FullDayPolicy())
	require.NoError(t, err)

	second, err := GenerateSlots(FullDayPolicy())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateSlots_InvalidInterval(t *testing.T) {
	tests := []struct {
		name     string
		interval int
	}{
		{name: "zero interval", interval: 0},
		{name: "negative interval", interval: -30},
		{name: "interval over a day", interval: 24*60 + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy := DefaultPolicy()
			policy.IntervalMinutes = tt.interval

			_, err := GenerateSlots(policy)
			assert.ErrorIs(t, err, ErrInvalidPolicy)
		})
	}
}

func TestGenerateSlots_MalformedTimes(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
	}{
		{name: "garbage start", start: "not-a-time", end: "18:00"},
		{name: "garbage end", start: "09:00", end: "25:99"},
		{name: "empty start", start: "", end: "18:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy := SlotPolicy{
				Start:           types.TimeString(tt.start),
				End:             types.TimeString(tt.end),
				IntervalMinutes: 30,
			}

			_, err := GenerateSlots(policy)
			assert.ErrorIs(t, err, ErrInvalidPolicy)
		})
	}
}

func TestContainsSlot(t *testing.T) {
	slots, err := GenerateSlots(DefaultPolicy())
	require.NoError(t, err)

	assert.True(t, ContainsSlot(slots, "09:00-09:30"))
	assert.True(t, ContainsSlot(slots, "17:30-18:00"))
	assert.False(t, ContainsSlot(slots, "08:00-08:30"))
	assert.False(t, ContainsSlot(slots, "garbage"))
}

func TestPolicySet_UnknownSystemGetsDefault(t *testing.T) {
	set := NewDefaultPolicySet()

	assert.Equal(t, DefaultPolicy(), set.PolicyFor(DefaultSystemID))
	assert.Equal(t, DefaultPolicy(), set.PolicyFor("never-seen-before"))
	assert.Equal(t, FullDayPolicy(), set.PolicyFor(FullDaySystemID))
}

func TestNewPolicySet_RejectsInvalidPolicy(t *testing.T) {
	_, err := NewPolicySet(DefaultPolicy(), map[string]SlotPolicy{
		"c_device": {
			Start:           types.TimeString("18:00"),
			End:             types.TimeString("09:00"),
			IntervalMinutes: 30,
		},
	})
	assert.ErrorIs(t, err, ErrInvalidPolicy)
}

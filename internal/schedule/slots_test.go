package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotAt(t *testing.T, slots []Slot, hhmm string) Slot {
	t.Helper()
	for _, s := range slots {
		if s.StartTime.Format("15:04") == hhmm {
			return s
		}
	}
	t.Fatalf("no slot starting at %s", hhmm)
	return Slot{}
}

func TestGenerateSlots_BookingScenario(t *testing.T) {
	// Shift 09:00-18:00, one confirmed appointment 10:00-10:30, 30 minute
	// service, 15 minute grid.
	d := day(2026, 1, 30)
	state := ShiftState{IsWorking: true, StartTime: "09:00", EndTime: "18:00"}
	appts := []Appointment{
		{EmployeeID: 1, Start: d.Add(10 * time.Hour), End: d.Add(10*time.Hour + 30*time.Minute), Status: StatusConfirmed},
	}

	slots := GenerateSlots(1, d, 30, state, appts, DefaultGrid())
	require.Len(t, slots, (22-8)*4)

	assert.False(t, slotAt(t, slots, "10:00").IsFree, "10:00 collides with the appointment")
	assert.False(t, slotAt(t, slots, "09:45").IsFree, "09:45-10:15 overlaps 10:00-10:30")
	assert.True(t, slotAt(t, slots, "10:30").IsFree, "10:30 starts exactly when the appointment ends")
	assert.True(t, slotAt(t, slots, "09:30").IsFree, "09:30-10:00 touches but does not overlap")
}

func TestGenerateSlots_ShiftBoundaryContainment(t *testing.T) {
	d := day(2026, 1, 30)
	state := ShiftState{IsWorking: true, StartTime: "09:00", EndTime: "18:00"}

	slots := GenerateSlots(1, d, 30, state, nil, DefaultGrid())

	assert.False(t, slotAt(t, slots, "08:00").IsFree, "before the shift window")
	assert.False(t, slotAt(t, slots, "08:45").IsFree, "starts before the shift window")
	assert.True(t, slotAt(t, slots, "09:00").IsFree)
	assert.True(t, slotAt(t, slots, "17:30").IsFree, "ends exactly at the shift end")
	assert.False(t, slotAt(t, slots, "17:45").IsFree, "would run past the shift end")

	for _, s := range slots {
		if s.IsFree {
			assert.GreaterOrEqual(t, s.StartTime.Format("15:04"), "09:00")
			assert.LessOrEqual(t, s.EndTime.Format("15:04"), "18:00")
		}
	}
}

func TestGenerateSlots_NoShiftAllBusy(t *testing.T) {
	slots := GenerateSlots(1, day(2026, 1, 30), 30, ShiftState{}, nil, DefaultGrid())
	require.NotEmpty(t, slots, "candidates are still enumerated")
	for _, s := range slots {
		assert.False(t, s.IsFree)
	}
}

func TestGenerateSlots_DayOffAllBusy(t *testing.T) {
	shifts := []Shift{{EmployeeID: 1, Date: day(2026, 1, 30), ShiftType: ShiftTypeDayOff}}
	state := ResolveShift(1, day(2026, 1, 30), shifts)

	slots := GenerateSlots(1, day(2026, 1, 30), 30, state, nil, DefaultGrid())
	require.NotEmpty(t, slots)
	for _, s := range slots {
		assert.False(t, s.IsFree)
	}
}

func TestGenerateSlots_CancelledAppointmentsDoNotBlock(t *testing.T) {
	d := day(2026, 1, 30)
	state := ShiftState{IsWorking: true, StartTime: "09:00", EndTime: "18:00"}
	appts := []Appointment{
		{EmployeeID: 1, Start: d.Add(10 * time.Hour), End: d.Add(11 * time.Hour), Status: StatusCancelled},
		{EmployeeID: 2, Start: d.Add(12 * time.Hour), End: d.Add(13 * time.Hour), Status: StatusConfirmed},
	}

	slots := GenerateSlots(1, d, 30, state, appts, DefaultGrid())
	assert.True(t, slotAt(t, slots, "10:00").IsFree, "cancelled appointments are invisible")
	assert.True(t, slotAt(t, slots, "12:00").IsFree, "another employee's appointment does not block")
}

func TestGenerateSlots_OverlappingBookingRejected(t *testing.T) {
	// Two candidate bookings for the same interval: once the first one
	// exists, the second must come back not-free.
	d := day(2026, 1, 30)
	state := ShiftState{IsWorking: true, StartTime: "09:00", EndTime: "18:00"}

	before := GenerateSlots(1, d, 60, state, nil, DefaultGrid())
	assert.True(t, slotAt(t, before, "11:00").IsFree)

	booked := []Appointment{{EmployeeID: 1, Start: d.Add(11 * time.Hour), End: d.Add(12 * time.Hour), Status: StatusPending}}
	after := GenerateSlots(1, d, 60, state, booked, DefaultGrid())
	assert.False(t, slotAt(t, after, "11:00").IsFree)
	assert.False(t, slotAt(t, after, "11:30").IsFree)
}

func TestGenerateSlots_Idempotent(t *testing.T) {
	d := day(2026, 1, 30)
	state := ShiftState{IsWorking: true, StartTime: "09:00", EndTime: "18:00"}
	appts := []Appointment{
		{EmployeeID: 1, Start: d.Add(10 * time.Hour), End: d.Add(10*time.Hour + 30*time.Minute), Status: StatusConfirmed},
	}

	first := GenerateSlots(1, d, 30, state, appts, DefaultGrid())
	second := GenerateSlots(1, d, 30, state, appts, DefaultGrid())
	assert.Equal(t, first, second)
}

func TestGenerateSlots_ChronologicalOrder(t *testing.T) {
	slots := GenerateSlots(1, day(2026, 1, 30), 30, ShiftState{IsWorking: true, StartTime: "08:00", EndTime: "22:00"}, nil, DefaultGrid())
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i].StartTime.After(slots[i-1].StartTime))
	}
	assert.Equal(t, "08:00", slots[0].StartTime.Format("15:04"))
	assert.Equal(t, "21:45", slots[len(slots)-1].StartTime.Format("15:04"))
}

func TestGenerateSlots_CustomGrid(t *testing.T) {
	slots := GenerateSlots(1, day(2026, 1, 30), 45, ShiftState{IsWorking: true, StartTime: "10:00", EndTime: "12:00"}, nil, Grid{StartHour: 10, EndHour: 12, StepMinutes: 30})
	require.Len(t, slots, 4)
	assert.True(t, slots[0].IsFree)
	assert.True(t, slots[2].IsFree)
	assert.False(t, slots[3].IsFree, "11:30+45m runs past the window end")
}

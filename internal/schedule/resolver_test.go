package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveShift_NoShiftMeansNotWorking(t *testing.T) {
	shifts := []Shift{
		{EmployeeID: 2, Date: day(2026, 1, 30), ShiftType: ShiftTypeWork, StartTime: "09:00", EndTime: "18:00"},
	}

	state := ResolveShift(1, day(2026, 1, 30), shifts)
	assert.False(t, state.IsWorking)
	assert.Empty(t, state.StartTime)

	state = ResolveShift(2, day(2026, 1, 31), shifts)
	assert.False(t, state.IsWorking)
}

func TestResolveShift_WorkShift(t *testing.T) {
	shifts := []Shift{
		{EmployeeID: 1, Date: day(2026, 1, 30), ShiftType: ShiftTypeWork, StartTime: "09:00", EndTime: "18:00"},
	}

	state := ResolveShift(1, day(2026, 1, 30), shifts)
	assert.True(t, state.IsWorking)
	assert.Equal(t, "09:00", state.StartTime)
	assert.Equal(t, "18:00", state.EndTime)
}

func TestResolveShift_DayLevelEquality(t *testing.T) {
	// Stored dates often carry a midnight timestamp or zone residue; only
	// the calendar day must match.
	shifts := []Shift{
		{EmployeeID: 1, Date: time.Date(2026, 1, 30, 23, 15, 0, 0, time.UTC), ShiftType: ShiftTypeWork, StartTime: "10:00", EndTime: "20:00"},
	}

	state := ResolveShift(1, time.Date(2026, 1, 30, 8, 0, 0, 0, time.UTC), shifts)
	assert.True(t, state.IsWorking)
}

func TestResolveShift_NonWorkTypes(t *testing.T) {
	for _, typ := range []string{ShiftTypeDayOff, ShiftTypeSickLeave, ShiftTypeVacation, ShiftTypeUnpaidLeave, ShiftTypeAbsence} {
		shifts := []Shift{
			{EmployeeID: 1, Date: day(2026, 1, 30), ShiftType: typ, StartTime: "09:00", EndTime: "18:00"},
		}
		state := ResolveShift(1, day(2026, 1, 30), shifts)
		assert.False(t, state.IsWorking, "shift type %s must not be working", typ)
	}
}

func TestResolveShift_LegacyDayOffFlag(t *testing.T) {
	working := []Shift{{EmployeeID: 1, Date: day(2026, 1, 30), StartTime: "09:00", EndTime: "18:00"}}
	assert.True(t, ResolveShift(1, day(2026, 1, 30), working).IsWorking)

	off := []Shift{{EmployeeID: 1, Date: day(2026, 1, 30), IsDayOff: true}}
	assert.False(t, ResolveShift(1, day(2026, 1, 30), off).IsWorking)

	// shift_type wins over the legacy flag when both are present
	mixed := []Shift{{EmployeeID: 1, Date: day(2026, 1, 30), ShiftType: ShiftTypeWork, IsDayOff: true, StartTime: "09:00", EndTime: "18:00"}}
	assert.True(t, ResolveShift(1, day(2026, 1, 30), mixed).IsWorking)
}

func TestResolveShift_DuplicateShiftsFirstMatchWins(t *testing.T) {
	shifts := []Shift{
		{EmployeeID: 1, Date: day(2026, 1, 30), ShiftType: ShiftTypeWork, StartTime: "09:00", EndTime: "18:00"},
		{EmployeeID: 1, Date: day(2026, 1, 30), ShiftType: ShiftTypeDayOff},
	}

	state := ResolveShift(1, day(2026, 1, 30), shifts)
	assert.True(t, state.IsWorking)
	assert.Equal(t, "09:00", state.StartTime)
}

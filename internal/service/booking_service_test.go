package service

import (
	"testing"
	"time"

	"salonbook/internal/schedule"

	"github.com/stretchr/testify/assert"
)

func wall(t *testing.T, raw string) time.Time {
	t.Helper()
	parsed, err := schedule.ParseWallClock(raw)
	if err != nil {
		t.Fatalf("bad timestamp %q: %v", raw, err)
	}
	return parsed
}

func TestWithinShiftWindow(t *testing.T) {
	working := schedule.ShiftState{IsWorking: true, StartTime: "09:00", EndTime: "18:00"}

	tests := []struct {
		name  string
		state schedule.ShiftState
		start string
		end   string
		want  bool
	}{
		{"inside the shift", working, "2026-01-30T10:00:00", "2026-01-30T10:30:00", true},
		{"touching both boundaries", working, "2026-01-30T09:00:00", "2026-01-30T18:00:00", true},
		{"starts before the shift", working, "2026-01-30T08:45:00", "2026-01-30T09:15:00", false},
		{"runs past the shift end", working, "2026-01-30T17:45:00", "2026-01-30T18:15:00", false},
		{"not working", schedule.ShiftState{}, "2026-01-30T10:00:00", "2026-01-30T10:30:00", false},
		{"working but no hours recorded", schedule.ShiftState{IsWorking: true}, "2026-01-30T10:00:00", "2026-01-30T10:30:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := withinShiftWindow(tt.state, wall(t, tt.start), wall(t, tt.end))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWithinShiftWindowMidnightEnd(t *testing.T) {
	lateShift := schedule.ShiftState{IsWorking: true, StartTime: "16:00", EndTime: "24:00"}

	got := withinShiftWindow(lateShift, wall(t, "2026-01-30T23:00:00"), wall(t, "2026-01-31T00:00:00"))
	assert.True(t, got)

	got = withinShiftWindow(lateShift, wall(t, "2026-01-30T23:00:00"), wall(t, "2026-01-31T00:30:00"))
	assert.False(t, got)
}

func TestValidStatus(t *testing.T) {
	for _, status := range []string{
		schedule.StatusPending, schedule.StatusConfirmed, schedule.StatusArrived,
		schedule.StatusNoShow, schedule.StatusCancelled,
	} {
		assert.True(t, ValidStatus(status), status)
	}
	assert.False(t, ValidStatus("done"))
	assert.False(t, ValidStatus(""))
}

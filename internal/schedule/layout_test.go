package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlock_RoundTrip(t *testing.T) {
	// The Z suffix on the start and its absence on the end must make no
	// difference: geometry comes from the literal HH:mm digits.
	top, height := Block("2026-01-30T12:05:00Z", "2026-01-30T13:05:00", 8, 2)
	assert.Equal(t, 490, top)
	assert.Equal(t, 120, height)
}

func TestBlock_ZoneSuffixIrrelevant(t *testing.T) {
	topA, heightA := Block("2026-01-30T09:00:00Z", "2026-01-30T09:30:00Z", 8, 2)
	topB, heightB := Block("2026-01-30T09:00:00+05:00", "2026-01-30T09:30:00", 8, 2)
	assert.Equal(t, topA, topB)
	assert.Equal(t, heightA, heightB)
	assert.Equal(t, 120, topA)
	assert.Equal(t, 60, heightA)
}

func TestBlock_NegativeDurationClamped(t *testing.T) {
	top, height := Block("2026-01-30T23:30:00", "2026-01-31T00:30:00", 8, 2)
	assert.Equal(t, ((23-8)*60+30)*2, top)
	assert.Equal(t, 0, height, "an end before the start on the raw clock collapses to zero height")
}

func TestBlock_MalformedInput(t *testing.T) {
	top, height := Block("12:05", "2026-01-30T13:05:00", 8, 2)
	assert.Zero(t, top)
	assert.Zero(t, height)
}

func TestRawTimeOfDay(t *testing.T) {
	assert.Equal(t, "12:05", RawTimeOfDay("2026-01-30T12:05:00Z"))
	assert.Equal(t, "", RawTimeOfDay("2026-01-30"))
}

func TestDayCells_Shading(t *testing.T) {
	state := ShiftState{IsWorking: true, StartTime: "09:00", EndTime: "18:00"}
	cells := DayCells(state, DefaultGrid())
	assert.Len(t, cells, (22-8)*4)

	byStart := map[string]bool{}
	for _, c := range cells {
		byStart[c.Start] = c.Working
	}
	assert.False(t, byStart["08:00"])
	assert.False(t, byStart["08:45"])
	assert.True(t, byStart["09:00"])
	assert.True(t, byStart["17:45"], "last cell inside the window")
	assert.False(t, byStart["18:00"])
	assert.Equal(t, "08:00", cells[0].Start)
}

func TestDayCells_DayOffAllShaded(t *testing.T) {
	cells := DayCells(ShiftState{}, DefaultGrid())
	for _, c := range cells {
		assert.False(t, c.Working)
	}
}

package service

import (
	"testing"

	"salonbook/internal/entities"
	"salonbook/internal/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateShiftTimes(t *testing.T) {
	tests := []struct {
		name    string
		req     entities.ShiftRequest
		wantErr bool
	}{
		{
			name: "work shift with valid hours",
			req:  entities.ShiftRequest{ShiftType: schedule.ShiftTypeWork, StartTime: "09:00", EndTime: "18:00"},
		},
		{
			name: "empty type treated as work shift",
			req:  entities.ShiftRequest{StartTime: "09:00", EndTime: "18:00"},
		},
		{
			name:    "work shift without hours",
			req:     entities.ShiftRequest{ShiftType: schedule.ShiftTypeWork},
			wantErr: true,
		},
		{
			name:    "work shift with inverted hours",
			req:     entities.ShiftRequest{ShiftType: schedule.ShiftTypeWork, StartTime: "18:00", EndTime: "09:00"},
			wantErr: true,
		},
		{
			name:    "work shift with zero-length window",
			req:     entities.ShiftRequest{ShiftType: schedule.ShiftTypeWork, StartTime: "09:00", EndTime: "09:00"},
			wantErr: true,
		},
		{
			name: "day off carries no hours",
			req:  entities.ShiftRequest{ShiftType: schedule.ShiftTypeDayOff},
		},
		{
			name: "vacation carries no hours",
			req:  entities.ShiftRequest{ShiftType: schedule.ShiftTypeVacation},
		},
		{
			name:    "unknown type rejected",
			req:     entities.ShiftRequest{ShiftType: "sabbatical"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateShiftTimes(tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseMonth(t *testing.T) {
	from, err := parseMonth("2026-01")
	require.NoError(t, err)
	assert.Equal(t, 2026, from.Year())
	assert.Equal(t, 1, int(from.Month()))
	assert.Equal(t, 1, from.Day())
}

func TestParseMonthAcceptsLongerInput(t *testing.T) {
	from, err := parseMonth("2026-01-30T12:05:00")
	require.NoError(t, err)
	assert.Equal(t, "2026-01-01", schedule.FormatDay(from))
}

func TestParseMonthRejectsGarbage(t *testing.T) {
	_, err := parseMonth("January")
	assert.Error(t, err)
}

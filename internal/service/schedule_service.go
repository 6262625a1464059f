package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"salonbook/internal/cache"
	"salonbook/internal/db"
	"salonbook/internal/entities"
	"salonbook/internal/httperr"
	"salonbook/internal/repository"
	"salonbook/internal/schedule"
)

// ScheduleService serves the owner's schedule editor: listing a month of
// shifts and writing them one employee-day at a time.
type ScheduleService struct {
	Shifts *repository.ShiftRepository
	Cache  *cache.SlotCache
}

func NewScheduleService(shifts *repository.ShiftRepository, slotCache *cache.SlotCache) *ScheduleService {
	return &ScheduleService{Shifts: shifts, Cache: slotCache}
}

// ListShifts returns the branch's shifts for the month containing the given
// date. month accepts "YYYY-MM", a date, or a full timestamp.
func (s *ScheduleService) ListShifts(branchID int, month string) ([]entities.ShiftResponse, error) {
	if branchID == 0 {
		return nil, httperr.BadRequest("branch_id is required")
	}
	from, err := parseMonth(month)
	if err != nil {
		return nil, httperr.BadRequest(err.Error())
	}
	to := from.AddDate(0, 1, 0)

	rows, err := s.Shifts.ListForRange(branchID, from, to)
	if err != nil {
		return nil, err
	}

	result := make([]entities.ShiftResponse, 0, len(rows))
	for _, row := range rows {
		result = append(result, entities.ShiftResponse{
			ID:         row.ID,
			EmployeeID: row.EmployeeID,
			BranchID:   row.BranchID,
			Date:       schedule.FormatDay(row.Date),
			ShiftType:  row.ShiftType.String,
			IsDayOff:   row.IsDayOff,
			StartTime:  row.StartTime,
			EndTime:    row.EndTime,
		})
	}
	return result, nil
}

// SaveShifts upserts a batch of shifts, one per employee-day. Each write
// invalidates the slot cache for its employee-day since the working window
// just changed.
func (s *ScheduleService) SaveShifts(ctx context.Context, reqs []entities.ShiftRequest) ([]entities.ShiftResponse, error) {
	if len(reqs) == 0 {
		return nil, httperr.BadRequest("no shifts submitted")
	}

	result := make([]entities.ShiftResponse, 0, len(reqs))
	for _, req := range reqs {
		row, err := s.saveOne(ctx, req)
		if err != nil {
			return nil, err
		}
		result = append(result, *row)
	}
	return result, nil
}

func (s *ScheduleService) saveOne(ctx context.Context, req entities.ShiftRequest) (*entities.ShiftResponse, error) {
	if req.EmployeeID == 0 || req.BranchID == 0 {
		return nil, httperr.BadRequest("employee_id and branch_id are required")
	}
	day, err := schedule.ParseDay(req.Date)
	if err != nil {
		return nil, httperr.BadRequest("shift date must be YYYY-MM-DD")
	}
	if err := validateShiftTimes(req); err != nil {
		return nil, err
	}

	row := &db.Shift{
		EmployeeID: req.EmployeeID,
		BranchID:   req.BranchID,
		Date:       day,
		ShiftType:  sql.NullString{String: req.ShiftType, Valid: req.ShiftType != ""},
		IsDayOff:   req.ShiftType != "" && req.ShiftType != schedule.ShiftTypeWork,
	}
	// working hours only make sense on a work shift
	if req.ShiftType == schedule.ShiftTypeWork || req.ShiftType == "" {
		row.StartTime = req.StartTime
		row.EndTime = req.EndTime
	}

	if err := s.Shifts.Upsert(row); err != nil {
		return nil, err
	}
	s.Cache.Invalidate(ctx, req.EmployeeID, schedule.FormatDay(day))

	return &entities.ShiftResponse{
		ID:         row.ID,
		EmployeeID: row.EmployeeID,
		BranchID:   row.BranchID,
		Date:       schedule.FormatDay(row.Date),
		ShiftType:  row.ShiftType.String,
		IsDayOff:   row.IsDayOff,
		StartTime:  row.StartTime,
		EndTime:    row.EndTime,
	}, nil
}

func validateShiftTimes(req entities.ShiftRequest) error {
	switch req.ShiftType {
	case "", schedule.ShiftTypeWork:
		start, okStart := schedule.MinutesOfDay(req.StartTime)
		end, okEnd := schedule.MinutesOfDay(req.EndTime)
		if !okStart || !okEnd {
			return httperr.BadRequest("work shifts need start_time and end_time in HH:mm form")
		}
		if end <= start {
			return httperr.BadRequest("shift end_time must be after start_time")
		}
	case schedule.ShiftTypeDayOff, schedule.ShiftTypeSickLeave, schedule.ShiftTypeVacation,
		schedule.ShiftTypeUnpaidLeave, schedule.ShiftTypeAbsence:
		// leave types carry no hours
	default:
		return httperr.BadRequest("unknown shift_type: " + req.ShiftType)
	}
	return nil
}

// parseMonth accepts "YYYY-MM" and anything with that prefix.
func parseMonth(month string) (time.Time, error) {
	if len(month) > 7 {
		month = month[:7]
	}
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, fmt.Errorf("month must be YYYY-MM")
	}
	return t, nil
}

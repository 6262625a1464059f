package repository

import (
	"database/sql"
	"fmt"
	"time"

	"salonbook/internal/db"
)

type ShiftRepository struct {
	DB *sql.DB
}

func NewShiftRepository(database *sql.DB) *ShiftRepository {
	return &ShiftRepository{DB: database}
}

const shiftColumns = `id, employee_id, branch_id, date, shift_type, is_day_off, COALESCE(start_time, ''), COALESCE(end_time, '')`

func scanShift(rows *sql.Rows) (db.Shift, error) {
	var s db.Shift
	err := rows.Scan(&s.ID, &s.EmployeeID, &s.BranchID, &s.Date, &s.ShiftType, &s.IsDayOff, &s.StartTime, &s.EndTime)
	return s, err
}

// ListForRange returns every shift of a branch with a date in [from, to).
func (r *ShiftRepository) ListForRange(branchID int, from, to time.Time) ([]db.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE branch_id = $1 AND date >= $2 AND date < $3
		ORDER BY date, employee_id`

	rows, err := r.DB.Query(query, branchID, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying shifts: %w", err)
	}
	defer rows.Close()

	var shifts []db.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning shift: %w", err)
		}
		shifts = append(shifts, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating shifts: %w", err)
	}
	return shifts, nil
}

// ListForEmployeeDay returns the shifts of one employee on one calendar day.
// At most one row is expected; duplicates are left to the resolver, which
// deterministically takes the first.
func (r *ShiftRepository) ListForEmployeeDay(employeeID int, day time.Time) ([]db.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE employee_id = $1 AND date = $2
		ORDER BY id`

	rows, err := r.DB.Query(query, employeeID, day)
	if err != nil {
		return nil, fmt.Errorf("error querying employee shifts: %w", err)
	}
	defer rows.Close()

	var shifts []db.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning shift: %w", err)
		}
		shifts = append(shifts, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating shifts: %w", err)
	}
	return shifts, nil
}

// Upsert writes the shift for one employee and day. The unique index on
// (employee_id, date) keeps the at-most-one-shift-per-day invariant; a
// second write for the same day replaces the first.
func (r *ShiftRepository) Upsert(s *db.Shift) error {
	query := `
		INSERT INTO shifts (employee_id, branch_id, date, shift_type, is_day_off, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''))
		ON CONFLICT (employee_id, date) DO UPDATE
		SET branch_id = EXCLUDED.branch_id,
		    shift_type = EXCLUDED.shift_type,
		    is_day_off = EXCLUDED.is_day_off,
		    start_time = EXCLUDED.start_time,
		    end_time = EXCLUDED.end_time
		RETURNING id`

	err := r.DB.QueryRow(query, s.EmployeeID, s.BranchID, s.Date, s.ShiftType, s.IsDayOff, s.StartTime, s.EndTime).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("error upserting shift: %w", err)
	}
	return nil
}

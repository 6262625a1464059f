package schedule

import "time"

// Shift types as stored on shift records. An empty type means the record
// predates shift types and only carries the legacy is_day_off flag.
const (
	ShiftTypeWork        = "work"
	ShiftTypeDayOff      = "day_off"
	ShiftTypeSickLeave   = "sick_leave"
	ShiftTypeVacation    = "vacation"
	ShiftTypeUnpaidLeave = "unpaid_leave"
	ShiftTypeAbsence     = "absence"
)

// Shift is one employee's assignment for one calendar date.
type Shift struct {
	EmployeeID int
	Date       time.Time
	ShiftType  string
	IsDayOff   bool
	StartTime  string // "HH:mm", meaningful only for work shifts
	EndTime    string
}

// Working applies the compatibility rule: shift_type wins when present,
// otherwise the legacy flag decides.
func (s Shift) Working() bool {
	if s.ShiftType != "" {
		return s.ShiftType == ShiftTypeWork
	}
	return !s.IsDayOff
}

// ShiftState is the resolved working window for one employee and day.
type ShiftState struct {
	IsWorking bool   `json:"is_working"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
}

// ResolveShift scans shifts for the entry matching the employee and the
// calendar day of date. Date comparison is day-level only: whatever
// time-of-day or zone residue the stored date carries is ignored. The first
// match wins; duplicate shifts for a day are a data-integrity condition the
// resolver does not repair. A missing shift means not scheduled.
func ResolveShift(employeeID int, date time.Time, shifts []Shift) ShiftState {
	for _, s := range shifts {
		if s.EmployeeID != employeeID || !SameDay(s.Date, date) {
			continue
		}
		if !s.Working() {
			return ShiftState{}
		}
		return ShiftState{IsWorking: true, StartTime: s.StartTime, EndTime: s.EndTime}
	}
	return ShiftState{}
}

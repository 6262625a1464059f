package schedule

import "time"

// Appointment statuses. Cancelled appointments are kept for history but are
// invisible to conflict checks and to the timeline.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusArrived   = "arrived"
	StatusNoShow    = "no_show"
	StatusCancelled = "cancelled"
)

// Appointment is the slice of a booking the engine cares about.
type Appointment struct {
	EmployeeID int
	Start      time.Time
	End        time.Time
	Status     string
}

// Blocks reports whether the appointment participates in conflict checks.
func (a Appointment) Blocks() bool {
	return a.Status != StatusCancelled
}

// Slot is an ephemeral computed candidate; it is never persisted and is
// regenerated on every availability query.
type Slot struct {
	StartTime time.Time
	EndTime   time.Time
	IsFree    bool
}

// Grid is the candidate enumeration window. Candidates cover the full grid
// regardless of the shift window so callers can render the whole day's
// shape with busy slots disabled.
type Grid struct {
	StartHour   int
	EndHour     int
	StepMinutes int
}

func DefaultGrid() Grid {
	return Grid{StartHour: 8, EndHour: 22, StepMinutes: 15}
}

func (g Grid) valid() bool {
	return g.StepMinutes > 0 && g.EndHour > g.StartHour
}

// GenerateSlots enumerates candidate start times for one employee and day
// and marks each free or busy. A candidate is free iff the employee is
// working, the interval lies fully inside the shift window, and it overlaps
// no non-cancelled appointment of that employee. A missing or non-working
// shift yields every candidate busy; "no slots" is a normal result, not an
// error. The sequence is chronological and deterministic for fixed inputs.
func GenerateSlots(employeeID int, day time.Time, durationMinutes int, state ShiftState, appointments []Appointment, grid Grid) []Slot {
	if !grid.valid() {
		grid = DefaultGrid()
	}
	if durationMinutes <= 0 {
		durationMinutes = 60
	}

	shiftStart, shiftEnd := 0, 0
	withinShift := false
	if state.IsWorking {
		var okStart, okEnd bool
		shiftStart, okStart = MinutesOfDay(state.StartTime)
		shiftEnd, okEnd = MinutesOfDay(state.EndTime)
		withinShift = okStart && okEnd
	}

	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())

	var slots []Slot
	for m := grid.StartHour * 60; m < grid.EndHour*60; m += grid.StepMinutes {
		start := midnight.Add(time.Duration(m) * time.Minute)
		end := start.Add(time.Duration(durationMinutes) * time.Minute)

		free := withinShift &&
			m >= shiftStart && m+durationMinutes <= shiftEnd &&
			!overlapsAny(employeeID, start, end, appointments)

		slots = append(slots, Slot{StartTime: start, EndTime: end, IsFree: free})
	}
	return slots
}

// overlapsAny checks the half-open interval [start, end) against every
// blocking appointment of the employee.
func overlapsAny(employeeID int, start, end time.Time, appointments []Appointment) bool {
	for _, a := range appointments {
		if a.EmployeeID != employeeID || !a.Blocks() {
			continue
		}
		if start.Before(a.End) && a.Start.Before(end) {
			return true
		}
	}
	return false
}

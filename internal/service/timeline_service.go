package service

import (
	"salonbook/internal/entities"
	"salonbook/internal/httperr"
	"salonbook/internal/repository"
	"salonbook/internal/schedule"
)

// TimelineService projects one branch day onto the dashboard calendar:
// a column per working employee, appointment blocks positioned by the
// layout projector and a shaded cell grid from the shift resolver.
type TimelineService struct {
	Shifts          *repository.ShiftRepository
	Appointments    *repository.AppointmentRepository
	Directory       *repository.DirectoryRepository
	Grid            schedule.Grid
	PixelsPerMinute int
}

func NewTimelineService(
	shifts *repository.ShiftRepository,
	appointments *repository.AppointmentRepository,
	directory *repository.DirectoryRepository,
	grid schedule.Grid,
	pixelsPerMinute int,
) *TimelineService {
	if pixelsPerMinute <= 0 {
		pixelsPerMinute = 2
	}
	return &TimelineService{
		Shifts:          shifts,
		Appointments:    appointments,
		Directory:       directory,
		Grid:            grid,
		PixelsPerMinute: pixelsPerMinute,
	}
}

// DayTimeline computes the whole dashboard day view. Employees without a
// working shift that day get no column at all.
func (s *TimelineService) DayTimeline(branchID int, dayStr string) (*entities.TimelineResponse, error) {
	if branchID == 0 {
		return nil, httperr.BadRequest("branch_id is required")
	}
	day, err := schedule.ParseDay(dayStr)
	if err != nil {
		return nil, httperr.BadRequest("date must be YYYY-MM-DD")
	}

	employees, err := s.Directory.ListEmployeesByBranch(branchID)
	if err != nil {
		return nil, err
	}

	shiftRows, err := s.Shifts.ListForRange(branchID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	shifts := make([]schedule.Shift, 0, len(shiftRows))
	for _, row := range shiftRows {
		shifts = append(shifts, toEngineShift(row))
	}

	type column struct {
		employee entities.EmployeeSummary
		state    schedule.ShiftState
	}
	var working []column
	var workingIDs []int
	for _, emp := range employees {
		state := schedule.ResolveShift(emp.ID, day, shifts)
		if !state.IsWorking {
			continue
		}
		working = append(working, column{employee: emp, state: state})
		workingIDs = append(workingIDs, emp.ID)
	}

	appointments, err := s.Appointments.ListForEmployeesOnDay(workingIDs, day)
	if err != nil {
		return nil, err
	}

	response := &entities.TimelineResponse{
		Date:            schedule.FormatDay(day),
		StartHour:       s.Grid.StartHour,
		EndHour:         s.Grid.EndHour,
		StepMinutes:     s.Grid.StepMinutes,
		PixelsPerMinute: s.PixelsPerMinute,
	}

	for _, col := range working {
		blocks := []entities.TimelineBlock{}
		for _, app := range appointments {
			if app.EmployeeID != col.employee.ID || app.Status == schedule.StatusCancelled {
				continue
			}
			top, height := schedule.Block(app.StartTime, app.EndTime, s.Grid.StartHour, s.PixelsPerMinute)
			blocks = append(blocks, entities.TimelineBlock{
				AppointmentID: app.ID,
				TopOffsetPx:   top,
				HeightPx:      height,
				StartTime:     schedule.RawTimeOfDay(app.StartTime),
				EndTime:       schedule.RawTimeOfDay(app.EndTime),
				Status:        app.Status,
				ClientName:    clientDisplayName(app),
				ServiceName:   app.ServiceName,
			})
		}
		response.Columns = append(response.Columns, entities.TimelineColumn{
			Employee: col.employee,
			Cells:    schedule.DayCells(col.state, s.Grid),
			Blocks:   blocks,
		})
	}
	return response, nil
}

func clientDisplayName(app entities.AppointmentResponse) string {
	name := app.ClientFirstName
	if app.ClientLastName != "" {
		name += " " + app.ClientLastName
	}
	return name
}

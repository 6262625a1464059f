package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"salonbook/internal/cache"
	"salonbook/internal/db"
	"salonbook/internal/entities"
	"salonbook/internal/httperr"
	"salonbook/internal/repository"
	"salonbook/internal/schedule"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// BookingService owns slot queries and every appointment mutation: creation
// from the wizard or the dashboard, customer identification, and status
// transitions. Both surfaces go through the same engine, so the conflict
// rules cannot diverge.
type BookingService struct {
	Shifts       *repository.ShiftRepository
	Appointments *repository.AppointmentRepository
	Directory    *repository.DirectoryRepository
	Customers    *repository.CustomerRepository
	Cache        *cache.SlotCache
	Sender       *SenderService
	Grid         schedule.Grid
}

func NewBookingService(
	shifts *repository.ShiftRepository,
	appointments *repository.AppointmentRepository,
	directory *repository.DirectoryRepository,
	customers *repository.CustomerRepository,
	slotCache *cache.SlotCache,
	sender *SenderService,
	grid schedule.Grid,
) *BookingService {
	return &BookingService{
		Shifts:       shifts,
		Appointments: appointments,
		Directory:    directory,
		Customers:    customers,
		Cache:        slotCache,
		Sender:       sender,
		Grid:         grid,
	}
}

func toEngineShift(s db.Shift) schedule.Shift {
	return schedule.Shift{
		EmployeeID: s.EmployeeID,
		Date:       s.Date,
		ShiftType:  s.ShiftType.String,
		IsDayOff:   s.IsDayOff,
		StartTime:  s.StartTime,
		EndTime:    s.EndTime,
	}
}

func (s *BookingService) resolveShift(employeeID int, day time.Time) (schedule.ShiftState, error) {
	rows, err := s.Shifts.ListForEmployeeDay(employeeID, day)
	if err != nil {
		return schedule.ShiftState{}, err
	}
	shifts := make([]schedule.Shift, 0, len(rows))
	for _, row := range rows {
		shifts = append(shifts, toEngineShift(row))
	}
	return schedule.ResolveShift(employeeID, day, shifts), nil
}

// GetSlots computes the offerable start times for a service, employee and
// day. A missing shift or assignment produces a fully busy day, not an
// error.
func (s *BookingService) GetSlots(ctx context.Context, employeeID, serviceID int, dayStr string) ([]entities.SlotResponse, error) {
	if employeeID == 0 || serviceID == 0 {
		return nil, httperr.BadRequest("employee_id and service_id are required")
	}
	day, err := schedule.ParseDay(dayStr)
	if err != nil {
		return nil, httperr.BadRequest("date must be YYYY-MM-DD")
	}
	dayKey := schedule.FormatDay(day)

	if cached, ok := s.Cache.Get(ctx, employeeID, serviceID, dayKey); ok {
		return cached, nil
	}

	duration := 60
	if assignment, found, err := s.Directory.GetAssignment(employeeID, serviceID); err != nil {
		return nil, err
	} else if found {
		duration = assignment.DurationMinutes
	}

	state, err := s.resolveShift(employeeID, day)
	if err != nil {
		return nil, err
	}

	appointments, err := s.Appointments.ListIntervalsForEmployeeDay(employeeID, day)
	if err != nil {
		return nil, err
	}

	slots := schedule.GenerateSlots(employeeID, day, duration, state, appointments, s.Grid)
	result := make([]entities.SlotResponse, 0, len(slots))
	for _, slot := range slots {
		result = append(result, entities.SlotResponse{
			StartTime: schedule.FormatWallClock(slot.StartTime),
			EndTime:   schedule.FormatWallClock(slot.EndTime),
			IsFree:    slot.IsFree,
		})
	}

	s.Cache.Put(ctx, employeeID, serviceID, dayKey, result)
	return result, nil
}

// CreateBooking validates and persists a new appointment. The engine's
// free/busy verdict is advisory; the repository insert re-checks the
// interval atomically and ErrSlotTaken surfaces as a 409 so the caller
// refreshes its slot list instead of retrying blindly.
func (s *BookingService) CreateBooking(ctx context.Context, req *entities.BookingRequest) (*entities.BookingResponse, error) {
	if req.EmployeeID == 0 || req.ServiceID == 0 {
		return nil, httperr.BadRequest("employee_id and service_id are required")
	}
	if req.ClientID == 0 {
		return nil, httperr.BadRequest("client_id is required")
	}
	start, err := schedule.ParseWallClock(req.StartTime)
	if err != nil {
		return nil, httperr.BadRequest("start_time must be a YYYY-MM-DDTHH:mm:ss timestamp")
	}

	assignment, found, err := s.Directory.GetAssignment(req.EmployeeID, req.ServiceID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, httperr.BadRequest("employee does not provide this service")
	}

	var end time.Time
	if req.EndTime != "" {
		end, err = schedule.ParseWallClock(req.EndTime)
		if err != nil {
			return nil, httperr.BadRequest("end_time must be a YYYY-MM-DDTHH:mm:ss timestamp")
		}
	} else {
		end = start.Add(time.Duration(assignment.DurationMinutes) * time.Minute)
	}
	if !end.After(start) {
		return nil, httperr.BadRequest("end_time must be after start_time")
	}

	state, err := s.resolveShift(req.EmployeeID, start)
	if err != nil {
		return nil, err
	}
	if !withinShiftWindow(state, start, end) {
		return nil, httperr.Conflict("the employee is not working at the requested time")
	}

	appointment := &db.Appointment{
		Code:       uuid.NewString(),
		EmployeeID: req.EmployeeID,
		ServiceID:  req.ServiceID,
		ClientID:   req.ClientID,
		StartTime:  start,
		EndTime:    end,
		Status:     schedule.StatusPending,
		Comment:    req.Comment,
	}

	if err := s.Appointments.CreateIfFree(appointment); err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			s.Cache.Invalidate(ctx, req.EmployeeID, schedule.FormatDay(start))
			return nil, err
		}
		return nil, err
	}

	s.Cache.Invalidate(ctx, req.EmployeeID, schedule.FormatDay(start))

	if created, err := s.Appointments.GetByID(appointment.ID); err != nil {
		logrus.Warnf("booking %s created but notification lookup failed: %v", appointment.Code, err)
	} else {
		s.Sender.NotifyAppointment(created, EventBooked)
	}

	return &entities.BookingResponse{
		ID:        appointment.ID,
		Code:      appointment.Code,
		Status:    appointment.Status,
		StartTime: schedule.FormatWallClock(start),
		EndTime:   schedule.FormatWallClock(end),
		Message:   "Booking confirmed.",
	}, nil
}

// withinShiftWindow checks shift-boundary containment on the wall clock.
func withinShiftWindow(state schedule.ShiftState, start, end time.Time) bool {
	if !state.IsWorking {
		return false
	}
	shiftStart, okStart := schedule.MinutesOfDay(state.StartTime)
	shiftEnd, okEnd := schedule.MinutesOfDay(state.EndTime)
	if !okStart || !okEnd {
		return false
	}
	startMin := start.Hour()*60 + start.Minute()
	endMin := end.Hour()*60 + end.Minute()
	if !schedule.SameDay(start, end) {
		// only an end at exactly midnight of the next day is representable
		if !end.Equal(startOfNextDay(start)) {
			return false
		}
		endMin = 24 * 60
	}
	return startMin >= shiftStart && endMin <= shiftEnd
}

func startOfNextDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).AddDate(0, 0, 1)
}

// CreateCustomer creates or re-identifies a client by phone within a branch.
func (s *BookingService) CreateCustomer(req *entities.CustomerRequest) (*entities.CustomerResponse, error) {
	if req.FirstName == "" || req.Phone == "" {
		return nil, httperr.BadRequest("first_name and phone are required")
	}
	if req.BranchID == 0 {
		return nil, httperr.BadRequest("branch_id is required")
	}

	customer := &db.Customer{
		BranchID:  req.BranchID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
	}
	if err := s.Customers.CreateOrGet(customer); err != nil {
		return nil, err
	}
	return &entities.CustomerResponse{
		ID:        customer.ID,
		BranchID:  customer.BranchID,
		FirstName: customer.FirstName,
		LastName:  customer.LastName,
		Phone:     customer.Phone,
		Email:     customer.Email,
	}, nil
}

// ListCustomers returns the branch's client directory for the dashboard.
func (s *BookingService) ListCustomers(branchID int) ([]entities.CustomerResponse, error) {
	if branchID == 0 {
		return nil, httperr.BadRequest("branch_id is required")
	}
	customers, err := s.Customers.ListByBranch(branchID)
	if err != nil {
		return nil, err
	}
	result := make([]entities.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		result = append(result, entities.CustomerResponse{
			ID:        c.ID,
			BranchID:  c.BranchID,
			FirstName: c.FirstName,
			LastName:  c.LastName,
			Phone:     c.Phone,
			Email:     c.Email,
		})
	}
	return result, nil
}

// ListAppointments returns a day of appointments for a set of employees.
func (s *BookingService) ListAppointments(employeeIDs []int, dayStr string) ([]entities.AppointmentResponse, error) {
	day, err := schedule.ParseDay(dayStr)
	if err != nil {
		return nil, httperr.BadRequest("date must be YYYY-MM-DD")
	}
	return s.Appointments.ListForEmployeesOnDay(employeeIDs, day)
}

// UpdateAppointmentStatus transitions an appointment's status. Cancellation
// frees the interval, so the slot cache for that employee-day is
// invalidated and the client is notified.
func (s *BookingService) UpdateAppointmentStatus(ctx context.Context, id int, status string) (*entities.AppointmentResponse, error) {
	if !ValidStatus(status) {
		return nil, httperr.BadRequest("unknown status: " + status)
	}

	updated, err := s.Appointments.UpdateStatus(id, status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, httperr.NotFound("appointment not found")
		}
		return nil, err
	}

	if status == schedule.StatusCancelled {
		start, err := schedule.ParseWallClock(updated.StartTime)
		if err == nil {
			s.Cache.Invalidate(ctx, updated.EmployeeID, schedule.FormatDay(start))
		}
		s.Sender.NotifyAppointment(updated, EventCancelled)
	}
	return updated, nil
}

// ValidStatus reports whether status is one of the known appointment states.
func ValidStatus(status string) bool {
	switch status {
	case schedule.StatusPending, schedule.StatusConfirmed, schedule.StatusArrived, schedule.StatusNoShow, schedule.StatusCancelled:
		return true
	}
	return false
}

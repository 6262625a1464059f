package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"salonbook/internal/db"
	"salonbook/internal/entities"
	"salonbook/internal/schedule"

	"github.com/lib/pq"
)

// ErrSlotTaken is returned when the requested interval overlaps an existing
// non-cancelled appointment at insert time. The engine's free/busy answer is
// advisory; this check is the authoritative one.
var ErrSlotTaken = errors.New("time slot is no longer available")

type AppointmentRepository struct {
	DB *sql.DB
}

func NewAppointmentRepository(database *sql.DB) *AppointmentRepository {
	return &AppointmentRepository{DB: database}
}

const appointmentJoinedColumns = `
	a.id, a.code, a.employee_id, a.service_id, a.client_id,
	a.start_time, a.end_time, a.status, COALESCE(a.comment, ''),
	s.name AS service_name, e.name AS employee_name,
	c.first_name, COALESCE(c.last_name, ''), c.phone, COALESCE(c.email, '')`

func scanJoinedAppointment(scanner interface{ Scan(...interface{}) error }) (*joinedAppointment, error) {
	var j joinedAppointment
	err := scanner.Scan(
		&j.Appointment.ID, &j.Appointment.Code, &j.Appointment.EmployeeID, &j.Appointment.ServiceID, &j.Appointment.ClientID,
		&j.Appointment.StartTime, &j.Appointment.EndTime, &j.Appointment.Status, &j.Appointment.Comment,
		&j.ServiceName, &j.EmployeeName,
		&j.ClientFirstName, &j.ClientLastName, &j.ClientPhone, &j.ClientEmail,
	)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

type joinedAppointment struct {
	Appointment     db.Appointment
	ServiceName     string
	EmployeeName    string
	ClientFirstName string
	ClientLastName  string
	ClientPhone     string
	ClientEmail     string
}

func (j *joinedAppointment) toResponse() *entities.AppointmentResponse {
	return &entities.AppointmentResponse{
		ID:              j.Appointment.ID,
		Code:            j.Appointment.Code,
		EmployeeID:      j.Appointment.EmployeeID,
		ServiceID:       j.Appointment.ServiceID,
		ClientID:        j.Appointment.ClientID,
		StartTime:       schedule.FormatWallClock(j.Appointment.StartTime),
		EndTime:         schedule.FormatWallClock(j.Appointment.EndTime),
		Status:          j.Appointment.Status,
		Comment:         j.Appointment.Comment,
		ServiceName:     j.ServiceName,
		EmployeeName:    j.EmployeeName,
		ClientFirstName: j.ClientFirstName,
		ClientLastName:  j.ClientLastName,
		ClientPhone:     j.ClientPhone,
		ClientEmail:     j.ClientEmail,
	}
}

// ListForEmployeesOnDay returns the appointments of a set of employees whose
// start falls on one calendar day, with client and service display fields
// joined in. Cancelled appointments are included; callers that must hide
// them filter by status.
func (r *AppointmentRepository) ListForEmployeesOnDay(employeeIDs []int, day time.Time) ([]entities.AppointmentResponse, error) {
	if len(employeeIDs) == 0 {
		return nil, nil
	}

	query := `
		SELECT ` + appointmentJoinedColumns + `
		FROM appointments a
		JOIN services s ON s.id = a.service_id
		JOIN employees e ON e.id = a.employee_id
		JOIN customers c ON c.id = a.client_id
		WHERE a.employee_id = ANY($1)
		  AND a.start_time >= $2 AND a.start_time < $2 + interval '1 day'
		ORDER BY a.start_time, a.employee_id`

	rows, err := r.DB.Query(query, pq.Array(employeeIDs), day)
	if err != nil {
		return nil, fmt.Errorf("error querying appointments: %w", err)
	}
	defer rows.Close()

	var result []entities.AppointmentResponse
	for rows.Next() {
		j, err := scanJoinedAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning appointment: %w", err)
		}
		result = append(result, *j.toResponse())
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating appointments: %w", err)
	}
	return result, nil
}

// ListIntervalsForEmployeeDay returns the bare intervals the slot generator
// needs for one employee and day.
func (r *AppointmentRepository) ListIntervalsForEmployeeDay(employeeID int, day time.Time) ([]schedule.Appointment, error) {
	query := `
		SELECT employee_id, start_time, end_time, status
		FROM appointments
		WHERE employee_id = $1
		  AND start_time >= $2 AND start_time < $2 + interval '1 day'
		ORDER BY start_time`

	rows, err := r.DB.Query(query, employeeID, day)
	if err != nil {
		return nil, fmt.Errorf("error querying appointment intervals: %w", err)
	}
	defer rows.Close()

	var intervals []schedule.Appointment
	for rows.Next() {
		var a schedule.Appointment
		if err := rows.Scan(&a.EmployeeID, &a.Start, &a.End, &a.Status); err != nil {
			return nil, fmt.Errorf("error scanning appointment interval: %w", err)
		}
		intervals = append(intervals, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating appointment intervals: %w", err)
	}
	return intervals, nil
}

// CreateIfFree inserts the appointment only when no non-cancelled
// appointment of the same employee overlaps [start, end). The guard runs
// inside the INSERT itself, so two clients racing for the last slot cannot
// both win; the loser gets ErrSlotTaken.
func (r *AppointmentRepository) CreateIfFree(a *db.Appointment) error {
	query := `
		INSERT INTO appointments (code, employee_id, service_id, client_id, start_time, end_time, status, comment, created_at, updated_at)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW()
		WHERE NOT EXISTS (
			SELECT 1 FROM appointments
			WHERE employee_id = $2
			  AND status <> 'cancelled'
			  AND start_time < $6 AND end_time > $5
		)
		RETURNING id, created_at, updated_at`

	err := r.DB.QueryRow(query,
		a.Code, a.EmployeeID, a.ServiceID, a.ClientID,
		a.StartTime, a.EndTime, a.Status, a.Comment,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrSlotTaken
		}
		return fmt.Errorf("error creating appointment: %w", err)
	}
	return nil
}

// UpdateStatus transitions an appointment and returns the joined row for
// notification and response rendering.
func (r *AppointmentRepository) UpdateStatus(id int, status string) (*entities.AppointmentResponse, error) {
	query := `
		UPDATE appointments a
		SET status = $2, updated_at = NOW()
		FROM services s, employees e, customers c
		WHERE a.id = $1 AND s.id = a.service_id AND e.id = a.employee_id AND c.id = a.client_id
		RETURNING ` + appointmentJoinedColumns

	j, err := scanJoinedAppointment(r.DB.QueryRow(query, id, status))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("appointment %d not found: %w", id, err)
		}
		return nil, fmt.Errorf("error updating appointment status: %w", err)
	}
	return j.toResponse(), nil
}

// GetByID returns one appointment with joined display fields.
func (r *AppointmentRepository) GetByID(id int) (*entities.AppointmentResponse, error) {
	query := `
		SELECT ` + appointmentJoinedColumns + `
		FROM appointments a
		JOIN services s ON s.id = a.service_id
		JOIN employees e ON e.id = a.employee_id
		JOIN customers c ON c.id = a.client_id
		WHERE a.id = $1`

	j, err := scanJoinedAppointment(r.DB.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("appointment %d not found: %w", id, err)
		}
		return nil, fmt.Errorf("error querying appointment: %w", err)
	}
	return j.toResponse(), nil
}

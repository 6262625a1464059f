package db

import (
	"database/sql"
	"time"
)

type Owner struct {
	ID           int
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

type Company struct {
	ID      int
	OwnerID int
	Name    string
	Address string
	Phone   string
}

type Branch struct {
	ID        int
	CompanyID int
	Name      string
	Address   string
}

type ServiceCategory struct {
	ID        int
	CompanyID int
	Name      string
}

type Service struct {
	ID              int
	CategoryID      int
	BranchID        int
	Name            string
	Description     string
	Price           int
	DurationMinutes int
}

type Employee struct {
	ID               int
	BranchID         int
	Name             string
	Position         string
	VisibleInBooking bool
	AvatarURL        string
}

// EmployeeService links an employee to a service they can be booked for.
// Price and duration override the service defaults when set.
type EmployeeService struct {
	EmployeeID      int
	ServiceID       int
	Price           sql.NullInt64
	DurationMinutes sql.NullInt64
}

type Customer struct {
	ID        int
	BranchID  int
	FirstName string
	LastName  string
	Phone     string
	Email     string
	CreatedAt time.Time
}

// Shift times are wall-clock "HH:mm" strings; shift_type is nullable for
// rows written before shift types existed, which carry only is_day_off.
type Shift struct {
	ID         int
	EmployeeID int
	BranchID   int
	Date       time.Time
	ShiftType  sql.NullString
	IsDayOff   bool
	StartTime  string
	EndTime    string
}

// Appointment start/end are naive wall-clock timestamps
// (timestamp without time zone in storage).
type Appointment struct {
	ID         int
	Code       string
	EmployeeID int
	ServiceID  int
	ClientID   int
	StartTime  time.Time
	EndTime    time.Time
	Status     string
	Comment    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

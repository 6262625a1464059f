package entities

// ShiftRequest creates or replaces the shift for one employee and day.
// The schedule editor posts an array of these.
type ShiftRequest struct {
	EmployeeID int    `json:"employee_id"`
	BranchID   int    `json:"branch_id"`
	Date       string `json:"date"`
	ShiftType  string `json:"shift_type"`
	StartTime  string `json:"start_time,omitempty"`
	EndTime    string `json:"end_time,omitempty"`
}

type ShiftResponse struct {
	ID         int    `json:"id"`
	EmployeeID int    `json:"employee_id"`
	BranchID   int    `json:"branch_id"`
	Date       string `json:"date"`
	ShiftType  string `json:"shift_type,omitempty"`
	IsDayOff   bool   `json:"is_day_off"`
	StartTime  string `json:"start_time,omitempty"`
	EndTime    string `json:"end_time,omitempty"`
}

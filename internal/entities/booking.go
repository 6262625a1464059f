package entities

// BookingRequest is what both the customer wizard and the dashboard
// quick-create submit. Times are naive wall-clock timestamps; a trailing Z
// is tolerated and ignored. EndTime may be omitted, in which case it is
// derived from the employee's service duration.
type BookingRequest struct {
	EmployeeID int    `json:"employee_id"`
	ServiceID  int    `json:"service_id"`
	ClientID   int    `json:"client_id"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time,omitempty"`
	Comment    string `json:"comment,omitempty"`
}

type BookingResponse struct {
	ID        int    `json:"id"`
	Code      string `json:"code"`
	Status    string `json:"status"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Message   string `json:"message"`
}

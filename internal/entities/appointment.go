package entities

// AppointmentResponse carries the joined display fields the dashboard
// calendar renders next to the raw interval.
type AppointmentResponse struct {
	ID              int    `json:"id"`
	Code            string `json:"code"`
	EmployeeID      int    `json:"employee_id"`
	ServiceID       int    `json:"service_id"`
	ClientID        int    `json:"client_id"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	Status          string `json:"status"`
	Comment         string `json:"comment,omitempty"`
	ServiceName     string `json:"service_name"`
	EmployeeName    string `json:"employee_name"`
	ClientFirstName string `json:"client_first_name"`
	ClientLastName  string `json:"client_last_name"`
	ClientPhone     string `json:"client_phone"`
	ClientEmail     string `json:"client_email,omitempty"`
}

type AppointmentStatusRequest struct {
	Status string `json:"status"`
}

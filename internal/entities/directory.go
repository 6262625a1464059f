package entities

type CompanyResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

type EmployeeSummary struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Position  string `json:"position,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// ServiceResponse nests the employees bookable for the service so the
// wizard's master step needs no extra round trip.
type ServiceResponse struct {
	ID              int               `json:"id"`
	BranchID        int               `json:"branch_id"`
	Name            string            `json:"name"`
	Description     string            `json:"description,omitempty"`
	Price           int               `json:"price"`
	DurationMinutes int               `json:"duration_minutes"`
	Employees       []EmployeeSummary `json:"employees"`
}

type CategoryResponse struct {
	ID       int               `json:"id"`
	Name     string            `json:"name"`
	Services []ServiceResponse `json:"services"`
}

// AssignmentResponse is an employee-service assignment with the effective
// price and duration, overrides already resolved against service defaults.
type AssignmentResponse struct {
	ServiceID       int    `json:"service_id"`
	ServiceName     string `json:"service_name"`
	Price           int    `json:"price"`
	DurationMinutes int    `json:"duration_minutes"`
}

type EmployeeResponse struct {
	ID               int                  `json:"id"`
	BranchID         int                  `json:"branch_id"`
	Name             string               `json:"name"`
	Position         string               `json:"position,omitempty"`
	VisibleInBooking bool                 `json:"visible_in_booking"`
	AvatarURL        string               `json:"avatar_url,omitempty"`
	Services         []AssignmentResponse `json:"services"`
}

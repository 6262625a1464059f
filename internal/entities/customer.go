package entities

// CustomerRequest creates or identifies a client prior to booking.
// Matching is by phone within a branch.
type CustomerRequest struct {
	BranchID  int    `json:"branch_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Phone     string `json:"phone"`
	Email     string `json:"email,omitempty"`
}

type CustomerResponse struct {
	ID        int    `json:"id"`
	BranchID  int    `json:"branch_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Phone     string `json:"phone"`
	Email     string `json:"email,omitempty"`
}

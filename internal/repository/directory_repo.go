package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"salonbook/internal/db"
	"salonbook/internal/entities"
)

type DirectoryRepository struct {
	DB *sql.DB
}

func NewDirectoryRepository(database *sql.DB) *DirectoryRepository {
	return &DirectoryRepository{DB: database}
}

func (r *DirectoryRepository) GetCompany(id int) (*db.Company, error) {
	var c db.Company
	query := `SELECT id, owner_id, name, COALESCE(address, ''), COALESCE(phone, '') FROM companies WHERE id = $1`
	err := r.DB.QueryRow(query, id).Scan(&c.ID, &c.OwnerID, &c.Name, &c.Address, &c.Phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("company %d not found: %w", id, err)
		}
		return nil, fmt.Errorf("error querying company: %w", err)
	}
	return &c, nil
}

// ListCatalog returns the company's service catalog: categories with nested
// services, each service carrying the employees bookable for it. Employees
// hidden from online booking are left out.
func (r *DirectoryRepository) ListCatalog(companyID int) ([]entities.CategoryResponse, error) {
	query := `
		SELECT sc.id, sc.name, s.id, s.branch_id, s.name, COALESCE(s.description, ''), s.price, s.duration_minutes
		FROM service_categories sc
		JOIN services s ON s.category_id = sc.id
		WHERE sc.company_id = $1
		ORDER BY sc.name, s.name`

	rows, err := r.DB.Query(query, companyID)
	if err != nil {
		return nil, fmt.Errorf("error querying catalog: %w", err)
	}
	defer rows.Close()

	var categories []entities.CategoryResponse
	index := map[int]int{}
	for rows.Next() {
		var catID int
		var catName string
		var svc entities.ServiceResponse
		if err := rows.Scan(&catID, &catName, &svc.ID, &svc.BranchID, &svc.Name, &svc.Description, &svc.Price, &svc.DurationMinutes); err != nil {
			return nil, fmt.Errorf("error scanning catalog row: %w", err)
		}
		employees, err := r.listServiceEmployees(svc.ID)
		if err != nil {
			return nil, err
		}
		svc.Employees = employees

		i, ok := index[catID]
		if !ok {
			categories = append(categories, entities.CategoryResponse{ID: catID, Name: catName})
			i = len(categories) - 1
			index[catID] = i
		}
		categories[i].Services = append(categories[i].Services, svc)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating catalog rows: %w", err)
	}
	return categories, nil
}

func (r *DirectoryRepository) listServiceEmployees(serviceID int) ([]entities.EmployeeSummary, error) {
	query := `
		SELECT e.id, e.name, COALESCE(e.position, ''), COALESCE(e.avatar_url, '')
		FROM employee_services es
		JOIN employees e ON e.id = es.employee_id
		WHERE es.service_id = $1 AND e.visible_in_booking
		ORDER BY e.name`

	rows, err := r.DB.Query(query, serviceID)
	if err != nil {
		return nil, fmt.Errorf("error querying service employees: %w", err)
	}
	defer rows.Close()

	var employees []entities.EmployeeSummary
	for rows.Next() {
		var e entities.EmployeeSummary
		if err := rows.Scan(&e.ID, &e.Name, &e.Position, &e.AvatarURL); err != nil {
			return nil, fmt.Errorf("error scanning service employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating service employees: %w", err)
	}
	return employees, nil
}

// ListEmployees returns every employee of a company with their service
// assignments attached.
func (r *DirectoryRepository) ListEmployees(companyID int) ([]entities.EmployeeResponse, error) {
	query := `
		SELECT e.id, e.branch_id, e.name, COALESCE(e.position, ''), e.visible_in_booking, COALESCE(e.avatar_url, '')
		FROM employees e
		JOIN branches b ON b.id = e.branch_id
		WHERE b.company_id = $1
		ORDER BY e.name`

	rows, err := r.DB.Query(query, companyID)
	if err != nil {
		return nil, fmt.Errorf("error querying employees: %w", err)
	}
	defer rows.Close()

	var employees []entities.EmployeeResponse
	for rows.Next() {
		var e entities.EmployeeResponse
		if err := rows.Scan(&e.ID, &e.BranchID, &e.Name, &e.Position, &e.VisibleInBooking, &e.AvatarURL); err != nil {
			return nil, fmt.Errorf("error scanning employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating employees: %w", err)
	}

	for i := range employees {
		services, err := r.ListEmployeeServices(employees[i].ID)
		if err != nil {
			return nil, err
		}
		employees[i].Services = services
	}
	return employees, nil
}

// ListEmployeesByBranch returns the branch's employees that take part in
// booking, without nested assignments.
func (r *DirectoryRepository) ListEmployeesByBranch(branchID int) ([]entities.EmployeeSummary, error) {
	query := `
		SELECT id, name, COALESCE(position, ''), COALESCE(avatar_url, '')
		FROM employees
		WHERE branch_id = $1 AND visible_in_booking
		ORDER BY name`

	rows, err := r.DB.Query(query, branchID)
	if err != nil {
		return nil, fmt.Errorf("error querying branch employees: %w", err)
	}
	defer rows.Close()

	var employees []entities.EmployeeSummary
	for rows.Next() {
		var e entities.EmployeeSummary
		if err := rows.Scan(&e.ID, &e.Name, &e.Position, &e.AvatarURL); err != nil {
			return nil, fmt.Errorf("error scanning branch employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating branch employees: %w", err)
	}
	return employees, nil
}

// ListEmployeeServices returns an employee's assignments with the effective
// price and duration: the per-assignment override when set, otherwise the
// service default.
func (r *DirectoryRepository) ListEmployeeServices(employeeID int) ([]entities.AssignmentResponse, error) {
	query := `
		SELECT s.id, s.name, COALESCE(es.price, s.price), COALESCE(es.duration_minutes, s.duration_minutes)
		FROM employee_services es
		JOIN services s ON s.id = es.service_id
		WHERE es.employee_id = $1
		ORDER BY s.name`

	rows, err := r.DB.Query(query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("error querying employee services: %w", err)
	}
	defer rows.Close()

	var assignments []entities.AssignmentResponse
	for rows.Next() {
		var a entities.AssignmentResponse
		if err := rows.Scan(&a.ServiceID, &a.ServiceName, &a.Price, &a.DurationMinutes); err != nil {
			return nil, fmt.Errorf("error scanning employee service: %w", err)
		}
		assignments = append(assignments, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating employee services: %w", err)
	}
	return assignments, nil
}

// GetAssignment resolves the effective duration and price for one
// (employee, service) pair. found is false when the employee is not
// assigned to the service at all.
func (r *DirectoryRepository) GetAssignment(employeeID, serviceID int) (*entities.AssignmentResponse, bool, error) {
	query := `
		SELECT s.id, s.name, COALESCE(es.price, s.price), COALESCE(es.duration_minutes, s.duration_minutes)
		FROM employee_services es
		JOIN services s ON s.id = es.service_id
		WHERE es.employee_id = $1 AND es.service_id = $2`

	var a entities.AssignmentResponse
	err := r.DB.QueryRow(query, employeeID, serviceID).Scan(&a.ServiceID, &a.ServiceName, &a.Price, &a.DurationMinutes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("error querying assignment: %w", err)
	}
	return &a, true, nil
}

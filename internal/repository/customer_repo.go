package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"salonbook/internal/db"
)

type CustomerRepository struct {
	DB *sql.DB
}

func NewCustomerRepository(database *sql.DB) *CustomerRepository {
	return &CustomerRepository{DB: database}
}

// CreateOrGet identifies a client by phone within a branch, creating the
// record on first contact. Booking twice with the same phone reuses the
// same client.
func (r *CustomerRepository) CreateOrGet(c *db.Customer) error {
	query := `SELECT id, first_name, COALESCE(last_name, ''), COALESCE(email, '') FROM customers WHERE branch_id = $1 AND phone = $2`
	err := r.DB.QueryRow(query, c.BranchID, c.Phone).Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("error querying customer: %w", err)
	}

	insert := `
		INSERT INTO customers (branch_id, first_name, last_name, phone, email, created_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, NULLIF($5, ''), NOW())
		RETURNING id, created_at`
	err = r.DB.QueryRow(insert, c.BranchID, c.FirstName, c.LastName, c.Phone, c.Email).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating customer: %w", err)
	}
	return nil
}

// ListByBranch returns the branch's client directory.
func (r *CustomerRepository) ListByBranch(branchID int) ([]db.Customer, error) {
	query := `
		SELECT id, branch_id, first_name, COALESCE(last_name, ''), phone, COALESCE(email, ''), created_at
		FROM customers
		WHERE branch_id = $1
		ORDER BY first_name, last_name`

	rows, err := r.DB.Query(query, branchID)
	if err != nil {
		return nil, fmt.Errorf("error querying customers: %w", err)
	}
	defer rows.Close()

	var customers []db.Customer
	for rows.Next() {
		var c db.Customer
		if err := rows.Scan(&c.ID, &c.BranchID, &c.FirstName, &c.LastName, &c.Phone, &c.Email, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning customer: %w", err)
		}
		customers = append(customers, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating customers: %w", err)
	}
	return customers, nil
}

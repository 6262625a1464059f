package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"salonbook/internal/db"

	"golang.org/x/crypto/bcrypt"
)

type OwnerRepository interface {
	GetByEmail(email string) (*db.Owner, error)
	Create(email, password string) error
}

type ownerRepository struct {
	db *sql.DB
}

func NewOwnerRepository(database *sql.DB) OwnerRepository {
	return &ownerRepository{db: database}
}

func (r *ownerRepository) GetByEmail(email string) (*db.Owner, error) {
	var owner db.Owner
	err := r.db.QueryRow("SELECT id, email, password_hash FROM owners WHERE email = $1", email).
		Scan(&owner.ID, &owner.Email, &owner.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying owner: %w", err)
	}
	return &owner, nil
}

func (r *ownerRepository) Create(email, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = r.db.Exec("INSERT INTO owners (email, password_hash, created_at) VALUES ($1, $2, NOW())", email, hashed)
	if err != nil {
		return fmt.Errorf("error creating owner: %w", err)
	}
	return nil
}

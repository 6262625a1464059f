package service

import (
	"errors"
	"time"

	"salonbook/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// OwnerAuthService guards the dashboard: owners sign in with email and
// password and get a short-lived HS256 token. Anything beyond that
// (sessions, refresh, multi-tenant roles) is out of scope here.
type OwnerAuthService interface {
	Login(email, password string) (string, error)
	Register(email, password string) error
}

type ownerAuthService struct {
	repo   repository.OwnerRepository
	secret string
}

func NewOwnerAuthService(repo repository.OwnerRepository, secret string) OwnerAuthService {
	return &ownerAuthService{repo: repo, secret: secret}
}

func (s *ownerAuthService) Login(email, password string) (string, error) {
	owner, err := s.repo.GetByEmail(email)
	if err != nil {
		return "", err
	}
	if owner == nil {
		return "", errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(owner.PasswordHash), []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	claims := jwt.MapClaims{
		"owner_id": owner.ID,
		"email":    owner.Email,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

func (s *ownerAuthService) Register(email, password string) error {
	if email == "" || password == "" {
		return errors.New("email and password cannot be empty")
	}
	existing, err := s.repo.GetByEmail(email)
	if err != nil {
		return err
	}
	if existing != nil {
		return errors.New("email already registered")
	}
	return s.repo.Create(email, password)
}

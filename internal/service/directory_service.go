package service

import (
	"salonbook/internal/entities"
	"salonbook/internal/repository"
)

// DirectoryService exposes the read-only company/catalog/staff directory
// the booking wizard and the dashboard browse.
type DirectoryService struct {
	Repo *repository.DirectoryRepository
}

func NewDirectoryService(repo *repository.DirectoryRepository) *DirectoryService {
	return &DirectoryService{Repo: repo}
}

func (s *DirectoryService) GetCompany(id int) (*entities.CompanyResponse, error) {
	company, err := s.Repo.GetCompany(id)
	if err != nil {
		return nil, err
	}
	return &entities.CompanyResponse{
		ID:      company.ID,
		Name:    company.Name,
		Address: company.Address,
		Phone:   company.Phone,
	}, nil
}

func (s *DirectoryService) GetCatalog(companyID int) ([]entities.CategoryResponse, error) {
	return s.Repo.ListCatalog(companyID)
}

func (s *DirectoryService) ListEmployees(companyID int) ([]entities.EmployeeResponse, error) {
	return s.Repo.ListEmployees(companyID)
}

func (s *DirectoryService) ListEmployeeServices(employeeID int) ([]entities.AssignmentResponse, error) {
	return s.Repo.ListEmployeeServices(employeeID)
}

package services

import (
	"database/sql"
	"errors"
	"fmt"

	"kushi_services_backend/internal/models"
	"kushi_services_backend/internal/repositories"
)

var (
	ErrServiceNotFound   = errors.New("service not found")
	ErrServiceValidation = errors.New("service data validation error")
)

// --- Catalog DTOs ---

type CreateServiceRequest struct {
	Name          string  `json:"name" binding:"required"`
	Category      string  `json:"category" binding:"required"`
	Subcategory   *string `json:"subcategory"`
	Price         int64   `json:"price" binding:"required"`
	OriginalPrice *int64  `json:"original_price"`
	Duration      *string `json:"duration"`
	Tier          *string `json:"tier"`
	Active        *bool   `json:"active"`
	Overview      *string `json:"overview"`
	Process       *string `json:"process"`
	Benefits      *string `json:"benefits"`
	Inclusions    *string `json:"inclusions"`
	Exclusions    *string `json:"exclusions"`
}

type UpdateServiceRequest struct {
	Name          *string `json:"name"`
	Category      *string `json:"category"`
	Subcategory   *string `json:"subcategory"`
	Price         *int64  `json:"price"`
	OriginalPrice *int64  `json:"original_price"`
	Duration      *string `json:"duration"`
	Tier          *string `json:"tier"`
	Overview      *string `json:"overview"`
	Process       *string `json:"process"`
	Benefits      *string `json:"benefits"`
	Inclusions    *string `json:"inclusions"`
	Exclusions    *string `json:"exclusions"`
}

// --- CatalogService Interface ---
type CatalogService interface {
	CreateService(req CreateServiceRequest) (*models.Service, error)
	GetServiceByID(id int64) (*models.Service, error)
	GetServices(filters models.ServiceFilters) ([]models.Service, error)
	UpdateService(id int64, req UpdateServiceRequest) (*models.Service, error)
	SetAvailability(id int64, active bool) (*models.Service, error)
	DeleteService(id int64) error
}

type catalogService struct {
	serviceRepo repositories.ServiceRepository
	db          *sql.DB
}

// NewCatalogService creates a new instance of CatalogService.
func NewCatalogService(sr repositories.ServiceRepository, db *sql.DB) CatalogService {
	return &catalogService{serviceRepo: sr, db: db}
}

func (s *catalogService) CreateService(req CreateServiceRequest) (*models.Service, error) {
	if req.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", ErrServiceValidation)
	}
	if req.OriginalPrice != nil && *req.OriginalPrice < req.Price {
		return nil, fmt.Errorf("%w: original price below discounted price", ErrServiceValidation)
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	service := &models.Service{
		Name:          req.Name,
		Category:      req.Category,
		Subcategory:   req.Subcategory,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Duration:      req.Duration,
		Tier:          req.Tier,
		Active:        active,
		Overview:      req.Overview,
		Process:       req.Process,
		Benefits:      req.Benefits,
		Inclusions:    req.Inclusions,
		Exclusions:    req.Exclusions,
	}

	if _, err := s.serviceRepo.CreateService(s.db, service); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return service, nil
}

func (s *catalogService) GetServiceByID(id int64) (*models.Service, error) {
	service, err := s.serviceRepo.GetServiceByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	return service, nil
}

func (s *catalogService) GetServices(filters models.ServiceFilters) ([]models.Service, error) {
	services, err := s.serviceRepo.GetServices(filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

func (s *catalogService) UpdateService(id int64, req UpdateServiceRequest) (*models.Service, error) {
	service, err := s.serviceRepo.GetServiceByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to find service for update: %w", err)
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Category != nil {
		service.Category = *req.Category
	}
	if req.Subcategory != nil {
		service.Subcategory = req.Subcategory
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return nil, fmt.Errorf("%w: price must be positive", ErrServiceValidation)
		}
		service.Price = *req.Price
	}
	if req.OriginalPrice != nil {
		service.OriginalPrice = req.OriginalPrice
	}
	if req.Duration != nil {
		service.Duration = req.Duration
	}
	if req.Tier != nil {
		service.Tier = req.Tier
	}
	if req.Overview != nil {
		service.Overview = req.Overview
	}
	if req.Process != nil {
		service.Process = req.Process
	}
	if req.Benefits != nil {
		service.Benefits = req.Benefits
	}
	if req.Inclusions != nil {
		service.Inclusions = req.Inclusions
	}
	if req.Exclusions != nil {
		service.Exclusions = req.Exclusions
	}

	if err := s.serviceRepo.UpdateService(s.db, service); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	return service, nil
}

// SetAvailability persists the available/unavailable toggle. The legacy
// dashboard only flipped this flag in memory, so toggles were lost on
// reload; here the flag is a real catalog column.
func (s *catalogService) SetAvailability(id int64, active bool) (*models.Service, error) {
	if err := s.serviceRepo.SetActive(s.db, id, active); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to set service availability: %w", err)
	}
	return s.serviceRepo.GetServiceByID(id)
}

func (s *catalogService) DeleteService(id int64) error {
	if err := s.serviceRepo.DeleteService(s.db, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrServiceNotFound
		}
		return fmt.Errorf("failed to delete service: %w", err)
	}
	return nil
}

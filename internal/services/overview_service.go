package services

import (
	"fmt"

	"kushi_services_backend/internal/models"
	"kushi_services_backend/internal/repositories"
)

const (
	recentBookingsLimit = 10
	topServicesLimit    = 5
	topCustomersLimit   = 5
)

// DashboardData is everything the admin overview page shows in one payload.
type DashboardData struct {
	Totals         models.Overview         `json:"totals"`
	RecentBookings []models.Booking        `json:"recent_bookings"`
	TopServices    []models.TopService     `json:"top_services"`
	TopCustomers   []models.TopCustomer    `json:"top_customers"`
	CategoryReport []models.CategoryReport `json:"category_report"`
}

// --- OverviewService Interface ---
type OverviewService interface {
	GetDashboard() (*DashboardData, error)
}

type overviewService struct {
	overviewRepo repositories.OverviewRepository
}

// NewOverviewService creates a new instance of OverviewService.
func NewOverviewService(or repositories.OverviewRepository) OverviewService {
	return &overviewService{overviewRepo: or}
}

func (s *overviewService) GetDashboard() (*DashboardData, error) {
	totals, err := s.overviewRepo.GetTotals()
	if err != nil {
		return nil, fmt.Errorf("failed to load overview totals: %w", err)
	}
	recent, err := s.overviewRepo.GetRecentBookings(recentBookingsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent bookings: %w", err)
	}
	topServices, err := s.overviewRepo.GetTopServices(topServicesLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load top services: %w", err)
	}
	topCustomers, err := s.overviewRepo.GetTopCustomers(topCustomersLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load top customers: %w", err)
	}
	report, err := s.overviewRepo.GetCategoryReport()
	if err != nil {
		return nil, fmt.Errorf("failed to load category report: %w", err)
	}

	return &DashboardData{
		Totals:         *totals,
		RecentBookings: recent,
		TopServices:    topServices,
		TopCustomers:   topCustomers,
		CategoryReport: report,
	}, nil
}

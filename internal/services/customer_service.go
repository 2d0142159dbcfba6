package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"kushi_services_backend/internal/models"
	"kushi_services_backend/internal/records"
	"kushi_services_backend/internal/repositories"
)

var (
	ErrCustomerNotFound       = errors.New("customer not found")
	ErrCustomerFilterInvalid  = errors.New("invalid customer filter")
	defaultRewardPointsPerAdd = 50
)

// Customer list filter values. Besides the four booking statuses, the admin
// can slice by sign-in state.
const (
	CustomerFilterAll      = "all"
	CustomerFilterLoggedIn = "loggedIn"
	CustomerFilterGuest    = "guest"
)

// --- CustomerService Interface ---
type CustomerService interface {
	ListCustomers(filter, query string) ([]records.CustomerSummary, error)
	BlockCustomer(userID int64) error
	AddReward(userID int64) error
	AddCoupon(userID int64) error
}

type customerService struct {
	bookingRepo repositories.BookingRepository
	authRepo    repositories.AuthRepository
	db          *sql.DB
}

// NewCustomerService creates a new instance of CustomerService.
func NewCustomerService(br repositories.BookingRepository, ar repositories.AuthRepository, db *sql.DB) CustomerService {
	return &customerService{bookingRepo: br, authRepo: ar, db: db}
}

// ListCustomers groups bookings into one summary per customer email,
// then applies the sign-in/status filter and the free-text search.
func (s *customerService) ListCustomers(filter, query string) ([]records.CustomerSummary, error) {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		filter = CustomerFilterAll
	}
	if !validCustomerFilter(filter) {
		return nil, fmt.Errorf("%w: %q", ErrCustomerFilterInvalid, filter)
	}

	bookings, _, err := s.bookingRepo.GetBookings(models.BookingFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for customer view: %w", err)
	}

	canonical := make([]records.Booking, 0, len(bookings))
	for _, b := range bookings {
		canonical = append(canonical, toRecord(b))
	}

	groups := records.GroupByEmail(canonical)

	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]records.CustomerSummary, 0, len(groups))
	for _, g := range groups {
		if !customerMatchesFilter(g, filter) {
			continue
		}
		if query != "" && !customerMatchesQuery(g, query) {
			continue
		}
		out = append(out, g)
	}
	return out, nil
}

func validCustomerFilter(filter string) bool {
	switch filter {
	case CustomerFilterAll, CustomerFilterLoggedIn, CustomerFilterGuest:
		return true
	default:
		return records.IsValidStatus(strings.ToLower(filter))
	}
}

func customerMatchesFilter(g records.CustomerSummary, filter string) bool {
	switch filter {
	case CustomerFilterAll:
		return true
	case CustomerFilterLoggedIn:
		return g.UserID != nil
	case CustomerFilterGuest:
		return g.UserID == nil
	default:
		return strings.EqualFold(g.Status, filter)
	}
}

func customerMatchesQuery(g records.CustomerSummary, query string) bool {
	return strings.Contains(strings.ToLower(g.CustomerName), query) ||
		strings.Contains(strings.ToLower(g.CustomerEmail), query) ||
		strings.Contains(g.CustomerPhone, query)
}

func (s *customerService) BlockCustomer(userID int64) error {
	if err := s.authRepo.SetBlocked(s.db, userID, true); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrCustomerNotFound
		}
		return fmt.Errorf("failed to block customer: %w", err)
	}
	return nil
}

func (s *customerService) AddReward(userID int64) error {
	if err := s.authRepo.AddRewardPoints(s.db, userID, defaultRewardPointsPerAdd); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrCustomerNotFound
		}
		return fmt.Errorf("failed to add reward: %w", err)
	}
	return nil
}

func (s *customerService) AddCoupon(userID int64) error {
	if err := s.authRepo.AddCoupon(s.db, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrCustomerNotFound
		}
		return fmt.Errorf("failed to add coupon: %w", err)
	}
	return nil
}

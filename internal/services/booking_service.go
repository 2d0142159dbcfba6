package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"kushi_services_backend/internal/models"
	"kushi_services_backend/internal/records"
	"kushi_services_backend/internal/repositories"
	"kushi_services_backend/pkg/utils"
)

// --- Custom Service Errors for Booking ---
var (
	ErrBookingNotFound        = errors.New("booking not found")
	ErrBookingValidation      = errors.New("booking data validation error")
	ErrInvalidStatusChange    = errors.New("invalid booking status transition")
	ErrServiceForBookingGone  = errors.New("service specified for booking not found or unavailable")
	ErrWorkerForBookingGone   = errors.New("worker specified for booking not found or inactive")
	ErrInvalidBookingSchedule = errors.New("invalid booking date or time")
)

// --- Booking DTOs ---

type CreateBookingRequest struct {
	UserID        *int64  `json:"user_id"`
	CustomerName  string  `json:"customer_name" binding:"required"`
	CustomerEmail string  `json:"customer_email" binding:"required"`
	CustomerPhone string  `json:"customer_number" binding:"required"`
	ServiceID     *int64  `json:"service_id"`
	ServiceName   string  `json:"booking_service_name"`
	Amount        float64 `json:"booking_amount"`
	Date          string  `json:"booking_date" binding:"required"`
	Time          string  `json:"booking_time" binding:"required"`
	Duration      *string `json:"booking_duration"`
	Address       *string `json:"address_line_1"`
	City          *string `json:"city"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// BookingListResult is the filtered, sorted admin view of bookings.
type BookingListResult struct {
	Bookings []records.Booking `json:"data"`
	Total    int               `json:"total"`
}

// --- BookingService Interface ---
type BookingService interface {
	CreateBooking(req CreateBookingRequest) (*models.Booking, error)
	GetBookingByID(bookingID int64) (*models.Booking, error)
	ListBookings(status, query string) (*BookingListResult, error)
	ListOrdersForUser(userID int64) ([]records.Booking, error)
	UpdateStatus(bookingID int64, newStatus string) (*models.Booking, error)
	DeleteBooking(bookingID int64) error
}

type bookingService struct {
	bookingRepo repositories.BookingRepository
	serviceRepo repositories.ServiceRepository
	db          *sql.DB
}

// NewBookingService creates a new instance of BookingService.
func NewBookingService(br repositories.BookingRepository, sr repositories.ServiceRepository, db *sql.DB) BookingService {
	return &bookingService{bookingRepo: br, serviceRepo: sr, db: db}
}

func (s *bookingService) CreateBooking(req CreateBookingRequest) (*models.Booking, error) {
	if !utils.IsValidEmail(req.CustomerEmail) {
		return nil, fmt.Errorf("%w: invalid customer email", ErrBookingValidation)
	}
	if !utils.IsValidPhone(req.CustomerPhone) {
		return nil, fmt.Errorf("%w: invalid customer phone number", ErrBookingValidation)
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, fmt.Errorf("%w: booking_date must be YYYY-MM-DD", ErrInvalidBookingSchedule)
	}
	if utils.IsEmpty(req.Time) {
		return nil, fmt.Errorf("%w: booking_time is required", ErrInvalidBookingSchedule)
	}

	booking := &models.Booking{
		UserID:        req.UserID,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerEmail: strings.ToLower(strings.TrimSpace(req.CustomerEmail)),
		CustomerPhone: strings.TrimSpace(req.CustomerPhone),
		ServiceID:     req.ServiceID,
		ServiceName:   req.ServiceName,
		Amount:        req.Amount,
		Date:          req.Date,
		Time:          req.Time,
		Duration:      req.Duration,
		Status:        records.StatusPending,
		PaymentStatus: records.PaymentPending,
		Address:       req.Address,
		City:          req.City,
	}

	// When the checkout references a catalog entry, the catalog is the
	// source of truth for name, category and price.
	if req.ServiceID != nil {
		svc, err := s.serviceRepo.GetServiceByID(*req.ServiceID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, fmt.Errorf("%w: ID %d", ErrServiceForBookingGone, *req.ServiceID)
			}
			return nil, fmt.Errorf("failed to validate service for booking: %w", err)
		}
		if !svc.Active {
			return nil, fmt.Errorf("%w: %q is currently unavailable", ErrServiceForBookingGone, svc.Name)
		}
		booking.ServiceName = svc.Name
		booking.Category = &svc.Category
		if booking.Amount == 0 {
			booking.Amount = float64(svc.Price)
		}
	}
	if booking.ServiceName == "" {
		return nil, fmt.Errorf("%w: service name is required", ErrBookingValidation)
	}

	created, err := s.bookingRepo.CreateBooking(s.db, booking)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	if req.ServiceID != nil {
		if err := s.serviceRepo.IncrementBookingCount(s.db, *req.ServiceID); err != nil {
			utils.LogError(err, "CreateBooking: failed to increment service booking count")
		}
	}
	return created, nil
}

func (s *bookingService) GetBookingByID(bookingID int64) (*models.Booking, error) {
	booking, err := s.bookingRepo.GetBookingByID(bookingID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking by ID: %w", err)
	}
	return booking, nil
}

// ListBookings fetches all bookings and runs them through the canonical
// record pipeline: normalize, filter by status and free text, sort by
// date+time descending.
func (s *bookingService) ListBookings(status, query string) (*BookingListResult, error) {
	bookings, _, err := s.bookingRepo.GetBookings(models.BookingFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	canonical := make([]records.Booking, 0, len(bookings))
	for _, b := range bookings {
		canonical = append(canonical, toRecord(b))
	}

	filtered := records.Filter(canonical, status, query)
	records.SortByDateTime(filtered)

	return &BookingListResult{Bookings: filtered, Total: len(filtered)}, nil
}

// ListOrdersForUser returns the order history of one signed-in customer,
// newest first.
func (s *bookingService) ListOrdersForUser(userID int64) ([]records.Booking, error) {
	bookings, _, err := s.bookingRepo.GetBookings(models.BookingFilters{UserID: &userID})
	if err != nil {
		return nil, fmt.Errorf("failed to get orders for user %d: %w", userID, err)
	}

	orders := make([]records.Booking, 0, len(bookings))
	for _, b := range bookings {
		orders = append(orders, toRecord(b))
	}
	records.SortByDateTime(orders)
	return orders, nil
}

// Allowed status transitions. Completed and cancelled are terminal.
var statusTransitions = map[string][]string{
	records.StatusPending:   {records.StatusConfirmed, records.StatusCancelled},
	records.StatusConfirmed: {records.StatusCompleted, records.StatusCancelled},
}

func canTransition(from, to string) bool {
	for _, allowed := range statusTransitions[strings.ToLower(from)] {
		if allowed == strings.ToLower(to) {
			return true
		}
	}
	return false
}

func (s *bookingService) UpdateStatus(bookingID int64, newStatus string) (*models.Booking, error) {
	newStatus = strings.ToLower(strings.TrimSpace(newStatus))
	if !records.IsValidStatus(newStatus) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrBookingValidation, newStatus)
	}

	booking, err := s.bookingRepo.GetBookingByID(bookingID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to find booking to update status: %w", err)
	}

	if !canTransition(booking.Status, newStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusChange, booking.Status, newStatus)
	}

	if err := s.bookingRepo.UpdateStatus(s.db, bookingID, newStatus); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	return s.bookingRepo.GetBookingByID(bookingID)
}

func (s *bookingService) DeleteBooking(bookingID int64) error {
	err := s.bookingRepo.DeleteBooking(s.db, bookingID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	return nil
}

// toRecord maps a stored booking onto the canonical record shape shared by
// the admin views.
func toRecord(b models.Booking) records.Booking {
	rec := records.Booking{
		ID:            strconv.FormatInt(b.ID, 10),
		UserID:        b.UserID,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		ServiceName:   b.ServiceName,
		Amount:        b.Amount,
		Date:          b.Date,
		Time:          b.Time,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
	}
	if b.City != nil {
		rec.City = *b.City
	}
	if b.Address != nil {
		rec.Address = *b.Address
	}
	return rec
}

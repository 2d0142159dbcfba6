package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"kushi_services_backend/internal/models"
)

// OverviewRepository runs the aggregate queries behind the dashboard.
type OverviewRepository interface {
	GetTotals() (*models.Overview, error)
	GetRecentBookings(limit int) ([]models.Booking, error)
	GetTopServices(limit int) ([]models.TopService, error)
	GetTopCustomers(limit int) ([]models.TopCustomer, error)
	GetCategoryReport() ([]models.CategoryReport, error)
}

type overviewRepository struct {
	db *sql.DB
}

// NewOverviewRepository creates a new instance of OverviewRepository.
func NewOverviewRepository(db *sql.DB) OverviewRepository {
	return &overviewRepository{db: db}
}

func (r *overviewRepository) GetTotals() (*models.Overview, error) {
	var o models.Overview
	today := time.Now().Format("2006-01-02")

	query := `
		SELECT COUNT(*),
		       COUNT(DISTINCT customer_email),
		       COALESCE(SUM(amount), 0),
		       COUNT(*) FILTER (WHERE booking_date = $1),
		       COUNT(*) FILTER (WHERE LOWER(status) = 'pending')
		FROM bookings`

	err := r.db.QueryRow(query, today).Scan(
		&o.TotalBookings, &o.TotalCustomers, &o.TotalAmount, &o.TodayBookings, &o.PendingApprovals,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: querying overview totals: %v", ErrDatabaseError, err)
	}
	return &o, nil
}

func (r *overviewRepository) GetRecentBookings(limit int) ([]models.Booking, error) {
	query := "SELECT " + bookingColumns + ` FROM bookings
	          ORDER BY booking_date DESC, booking_time DESC LIMIT $1`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: querying recent bookings: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	bookings := []models.Booking{}
	for rows.Next() {
		b, _, scanErr := scanBooking(rows, false)
		if scanErr != nil {
			return nil, scanErr
		}
		bookings = append(bookings, *b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating recent booking rows: %v", ErrDatabaseError, err)
	}
	return bookings, nil
}

func (r *overviewRepository) GetTopServices(limit int) ([]models.TopService, error) {
	query := `
		SELECT service_name, MAX(category), COUNT(*), COALESCE(SUM(amount), 0)
		FROM bookings
		GROUP BY service_name
		ORDER BY COUNT(*) DESC, service_name
		LIMIT $1`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: querying top services: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	top := []models.TopService{}
	for rows.Next() {
		var t models.TopService
		var category sql.NullString
		if err := rows.Scan(&t.ServiceName, &category, &t.BookingCount, &t.TotalAmount); err != nil {
			return nil, fmt.Errorf("%w: scanning top service row: %v", ErrDatabaseError, err)
		}
		if category.Valid {
			t.Category = &category.String
		}
		top = append(top, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating top service rows: %v", ErrDatabaseError, err)
	}
	return top, nil
}

func (r *overviewRepository) GetTopCustomers(limit int) ([]models.TopCustomer, error) {
	query := `
		SELECT MAX(customer_name), customer_email, COUNT(*), COALESCE(SUM(amount), 0)
		FROM bookings
		WHERE customer_email <> ''
		GROUP BY customer_email
		ORDER BY COUNT(*) DESC, customer_email
		LIMIT $1`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: querying top customers: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	top := []models.TopCustomer{}
	for rows.Next() {
		var t models.TopCustomer
		if err := rows.Scan(&t.CustomerName, &t.CustomerEmail, &t.BookingCount, &t.TotalAmount); err != nil {
			return nil, fmt.Errorf("%w: scanning top customer row: %v", ErrDatabaseError, err)
		}
		top = append(top, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating top customer rows: %v", ErrDatabaseError, err)
	}
	return top, nil
}

func (r *overviewRepository) GetCategoryReport() ([]models.CategoryReport, error) {
	query := `
		SELECT s.category, COUNT(b.id), COALESCE(SUM(b.amount), 0), COALESCE(AVG(s.rating), 0)
		FROM services s
		LEFT JOIN bookings b ON b.service_id = s.id
		GROUP BY s.category
		ORDER BY COUNT(b.id) DESC, s.category`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying category report: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	report := []models.CategoryReport{}
	for rows.Next() {
		var c models.CategoryReport
		if err := rows.Scan(&c.Category, &c.BookingCount, &c.TotalAmount, &c.AvgRating); err != nil {
			return nil, fmt.Errorf("%w: scanning category report row: %v", ErrDatabaseError, err)
		}
		report = append(report, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating category report rows: %v", ErrDatabaseError, err)
	}
	return report, nil
}

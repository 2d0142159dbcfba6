package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"kushi_services_backend/internal/models"
)

// BookingRepository defines the interface for booking-related database operations.
type BookingRepository interface {
	CreateBooking(executor SQLExecutor, booking *models.Booking) (*models.Booking, error)
	GetBookingByID(id int64) (*models.Booking, error)
	GetBookings(filters models.BookingFilters) ([]models.Booking, int, error)
	UpdateStatus(executor SQLExecutor, id int64, status string) error
	AssignWorker(executor SQLExecutor, id int64, workerID int64) error
	DeleteBooking(executor SQLExecutor, id int64) error
}

type bookingRepository struct {
	db *sql.DB
}

// NewBookingRepository creates a new instance of BookingRepository.
func NewBookingRepository(db *sql.DB) BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `
	id, user_id, customer_name, customer_email, customer_phone,
	service_id, service_name, category, amount, booking_date, booking_time,
	duration, status, payment_status, address, city, worker_id,
	created_at, updated_at`

func scanBooking(row scanner, withCount bool) (*models.Booking, int, error) {
	var b models.Booking
	var category, duration, address, city sql.NullString
	var userID, serviceID, workerID sql.NullInt64
	var totalCount int

	dest := []interface{}{
		&b.ID, &userID, &b.CustomerName, &b.CustomerEmail, &b.CustomerPhone,
		&serviceID, &b.ServiceName, &category, &b.Amount, &b.Date, &b.Time,
		&duration, &b.Status, &b.PaymentStatus, &address, &city, &workerID,
		&b.CreatedAt, &b.UpdatedAt,
	}
	if withCount {
		dest = append(dest, &totalCount)
	}

	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, 0, ErrNotFound
		}
		return nil, 0, fmt.Errorf("%w: scanning booking: %v", ErrDatabaseError, err)
	}

	if userID.Valid {
		b.UserID = &userID.Int64
	}
	if serviceID.Valid {
		b.ServiceID = &serviceID.Int64
	}
	if workerID.Valid {
		b.WorkerID = &workerID.Int64
	}
	if category.Valid {
		b.Category = &category.String
	}
	if duration.Valid {
		b.Duration = &duration.String
	}
	if address.Valid {
		b.Address = &address.String
	}
	if city.Valid {
		b.City = &city.String
	}
	return &b, totalCount, nil
}

func (r *bookingRepository) CreateBooking(executor SQLExecutor, booking *models.Booking) (*models.Booking, error) {
	query := `INSERT INTO bookings
	            (user_id, customer_name, customer_email, customer_phone, service_id, service_name,
	             category, amount, booking_date, booking_time, duration, status, payment_status,
	             address, city, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	          RETURNING id, created_at, updated_at`

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	err := executor.QueryRow(query,
		booking.UserID, booking.CustomerName, booking.CustomerEmail, booking.CustomerPhone,
		booking.ServiceID, booking.ServiceName, booking.Category, booking.Amount,
		booking.Date, booking.Time, booking.Duration, booking.Status, booking.PaymentStatus,
		booking.Address, booking.City, booking.CreatedAt, booking.UpdatedAt,
	).Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("%w: creating booking: %v", ErrDatabaseError, err)
	}
	return booking, nil
}

func (r *bookingRepository) GetBookingByID(id int64) (*models.Booking, error) {
	query := "SELECT " + bookingColumns + " FROM bookings WHERE id = $1"
	booking, _, err := scanBooking(r.db.QueryRow(query, id), false)
	return booking, err
}

func (r *bookingRepository) GetBookings(filters models.BookingFilters) ([]models.Booking, int, error) {
	bookings := []models.Booking{}
	var totalCount int

	var queryBuilder strings.Builder
	queryBuilder.WriteString("SELECT " + bookingColumns + ", COUNT(*) OVER() AS total_count FROM bookings")

	var conditions []string
	var args []interface{}
	argCount := 1

	if filters.UserID != nil {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", argCount))
		args = append(args, *filters.UserID)
		argCount++
	}
	if filters.Status != nil && *filters.Status != "" {
		conditions = append(conditions, fmt.Sprintf("LOWER(status) = LOWER($%d)", argCount))
		args = append(args, *filters.Status)
		argCount++
	}
	if filters.Email != nil && *filters.Email != "" {
		conditions = append(conditions, fmt.Sprintf("customer_email = $%d", argCount))
		args = append(args, *filters.Email)
		argCount++
	}
	if filters.Search != nil && *filters.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(customer_name ILIKE $%d OR customer_phone ILIKE $%d OR service_name ILIKE $%d)",
			argCount, argCount, argCount))
		args = append(args, "%"+*filters.Search+"%")
		argCount++
	}
	if filters.DateFrom != nil && *filters.DateFrom != "" {
		conditions = append(conditions, fmt.Sprintf("booking_date >= $%d", argCount))
		args = append(args, *filters.DateFrom)
		argCount++
	}
	if filters.DateTo != nil && *filters.DateTo != "" {
		conditions = append(conditions, fmt.Sprintf("booking_date <= $%d", argCount))
		args = append(args, *filters.DateTo)
		argCount++
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY booking_date DESC, booking_time DESC")

	if filters.PageSize > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d", argCount))
		args = append(args, filters.PageSize)
		argCount++
		if filters.Page > 0 {
			offset := (filters.Page - 1) * filters.PageSize
			queryBuilder.WriteString(fmt.Sprintf(" OFFSET $%d", argCount))
			args = append(args, offset)
		}
	}

	rows, err := r.db.Query(queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: querying bookings: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		booking, scannedCount, scanErr := scanBooking(rows, true)
		if scanErr != nil {
			return nil, 0, scanErr
		}
		bookings = append(bookings, *booking)
		totalCount = scannedCount
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: iterating booking rows: %v", ErrDatabaseError, err)
	}
	return bookings, totalCount, nil
}

func (r *bookingRepository) UpdateStatus(executor SQLExecutor, id int64, status string) error {
	query := `UPDATE bookings SET status = $1, updated_at = $2 WHERE id = $3`
	result, err := executor.Exec(query, status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("%w: updating booking %d status: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *bookingRepository) AssignWorker(executor SQLExecutor, id int64, workerID int64) error {
	query := `UPDATE bookings SET worker_id = $1, payment_status = $2, updated_at = $3 WHERE id = $4`
	result, err := executor.Exec(query, workerID, "paid", time.Now(), id)
	if err != nil {
		return fmt.Errorf("%w: assigning worker to booking %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *bookingRepository) DeleteBooking(executor SQLExecutor, id int64) error {
	result, err := executor.Exec(`DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting booking %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

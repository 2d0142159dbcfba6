package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"kushi_services_backend/internal/models"
)

// InvoiceRepository reads the billing view of bookings. Invoices are not a
// separate table: they are bookings joined with their assigned worker.
type InvoiceRepository interface {
	GetInvoices() ([]models.Invoice, error)
	GetInvoiceByBookingID(bookingID int64) (*models.Invoice, error)
}

type invoiceRepository struct {
	db *sql.DB
}

// NewInvoiceRepository creates a new instance of InvoiceRepository.
func NewInvoiceRepository(db *sql.DB) InvoiceRepository {
	return &invoiceRepository{db: db}
}

const invoiceQuery = `
	SELECT b.id, b.customer_name, b.customer_email, b.customer_phone,
	       b.service_name, b.amount, b.booking_date,
	       b.worker_id IS NOT NULL AS worker_assign, w.full_name
	FROM bookings b
	LEFT JOIN workers w ON b.worker_id = w.id`

func scanInvoice(row scanner) (*models.Invoice, error) {
	var inv models.Invoice
	var workerName sql.NullString

	err := row.Scan(
		&inv.BookingID, &inv.CustomerName, &inv.CustomerEmail, &inv.CustomerPhone,
		&inv.ServiceName, &inv.Amount, &inv.BookingDate, &inv.WorkerAssign, &workerName,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: scanning invoice: %v", ErrDatabaseError, err)
	}
	if workerName.Valid {
		inv.WorkerName = &workerName.String
	}
	return &inv, nil
}

func (r *invoiceRepository) GetInvoices() ([]models.Invoice, error) {
	rows, err := r.db.Query(invoiceQuery + " ORDER BY b.booking_date DESC, b.id DESC")
	if err != nil {
		return nil, fmt.Errorf("%w: querying invoices: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	invoices := []models.Invoice{}
	for rows.Next() {
		inv, scanErr := scanInvoice(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		invoices = append(invoices, *inv)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating invoice rows: %v", ErrDatabaseError, err)
	}
	return invoices, nil
}

func (r *invoiceRepository) GetInvoiceByBookingID(bookingID int64) (*models.Invoice, error) {
	return scanInvoice(r.db.QueryRow(invoiceQuery+" WHERE b.id = $1", bookingID))
}

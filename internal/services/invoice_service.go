package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"kushi_services_backend/internal/models"
	"kushi_services_backend/internal/repositories"

	"github.com/phpdave11/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

var (
	ErrInvoiceNotFound      = errors.New("invoice not found")
	ErrInvoicePeriodInvalid = errors.New("invalid invoice period filter")
)

// InvoiceListResult bundles the filtered invoices with their money totals.
type InvoiceListResult struct {
	Invoices []models.Invoice     `json:"data"`
	Totals   models.InvoiceTotals `json:"totals"`
}

// --- InvoiceService Interface ---
type InvoiceService interface {
	ListInvoices(filters models.InvoiceFilters) (*InvoiceListResult, error)
	GeneratePDF(bookingID int64) ([]byte, error)
	ExportCSV(filters models.InvoiceFilters) ([]byte, error)
}

type invoiceService struct {
	invoiceRepo repositories.InvoiceRepository
	now         func() time.Time
}

// NewInvoiceService creates a new instance of InvoiceService.
func NewInvoiceService(ir repositories.InvoiceRepository) InvoiceService {
	return &invoiceService{invoiceRepo: ir, now: time.Now}
}

func (s *invoiceService) ListInvoices(filters models.InvoiceFilters) (*InvoiceListResult, error) {
	invoices, err := s.invoiceRepo.GetInvoices()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invoices: %w", err)
	}

	filtered, err := s.applyFilters(invoices, filters)
	if err != nil {
		return nil, err
	}

	result := &InvoiceListResult{Invoices: filtered}
	for _, inv := range filtered {
		if inv.WorkerAssign {
			result.Totals.TotalRevenue += inv.Amount
		} else {
			result.Totals.PendingAmount += inv.Amount
		}
	}
	return result, nil
}

func (s *invoiceService) applyFilters(invoices []models.Invoice, filters models.InvoiceFilters) ([]models.Invoice, error) {
	period := filters.Period
	if period == "" {
		period = models.InvoicePeriodAll
	}

	search := ""
	if filters.Search != nil {
		search = strings.ToLower(strings.TrimSpace(*filters.Search))
	}

	out := make([]models.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		match, err := s.matchesPeriod(inv, period, filters)
		if err != nil {
			return nil, err
		}
		if !match {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(inv.CustomerName), search) &&
			!strings.Contains(strconv.FormatInt(inv.BookingID, 10), search) {
			continue
		}
		out = append(out, inv)
	}
	return out, nil
}

func (s *invoiceService) matchesPeriod(inv models.Invoice, period string, filters models.InvoiceFilters) (bool, error) {
	if period == models.InvoicePeriodAll {
		return true, nil
	}

	day, err := time.Parse("2006-01-02", inv.BookingDate)
	if err != nil {
		// Undated invoices only show up in the unfiltered view.
		return false, nil
	}
	now := s.now()

	switch period {
	case models.InvoicePeriodToday:
		return sameDay(day, now), nil
	case models.InvoicePeriodWeek:
		// Week runs Sunday through Saturday.
		weekStart := now.AddDate(0, 0, -int(now.Weekday()))
		weekStart = time.Date(weekStart.Year(), weekStart.Month(), weekStart.Day(), 0, 0, 0, 0, weekStart.Location())
		weekEnd := weekStart.AddDate(0, 0, 7)
		return !day.Before(weekStart) && day.Before(weekEnd), nil
	case models.InvoicePeriodMonth:
		return day.Year() == now.Year() && day.Month() == now.Month(), nil
	case models.InvoicePeriodCustomDate:
		if filters.CustomDate == nil {
			return false, fmt.Errorf("%w: custom-date requires a date", ErrInvoicePeriodInvalid)
		}
		want, err := time.Parse("2006-01-02", *filters.CustomDate)
		if err != nil {
			return false, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvoicePeriodInvalid)
		}
		return sameDay(day, want), nil
	case models.InvoicePeriodCustomMonth:
		if filters.CustomMonth == nil {
			return false, fmt.Errorf("%w: custom-month requires a month", ErrInvoicePeriodInvalid)
		}
		want, err := time.Parse("2006-01", *filters.CustomMonth)
		if err != nil {
			return false, fmt.Errorf("%w: month must be YYYY-MM", ErrInvoicePeriodInvalid)
		}
		return day.Year() == want.Year() && day.Month() == want.Month(), nil
	default:
		return false, fmt.Errorf("%w: %q", ErrInvoicePeriodInvalid, period)
	}
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// GeneratePDF renders a single invoice as an A4 PDF with a QR payment
// reference in the corner.
func (s *invoiceService) GeneratePDF(bookingID int64) ([]byte, error) {
	inv, err := s.invoiceRepo.GetInvoiceByBookingID(bookingID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("failed to fetch invoice for PDF: %w", err)
	}

	qrPayload := fmt.Sprintf("KUSHI|INV-%d|%s|%.2f", inv.BookingID, inv.BookingDate, inv.Amount)
	qrPNG, err := qrcode.Encode(qrPayload, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to generate invoice QR code: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "KUSHI SERVICES - Invoice")
	pdf.Ln(14)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Invoice No: INV-%d", inv.BookingID))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Date: %s", inv.BookingDate))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Customer: %s", inv.CustomerName))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Email: %s", inv.CustomerEmail))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Phone: %s", inv.CustomerPhone))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(120, 8, "Service")
	pdf.Cell(0, 8, "Amount (Rs)")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(120, 8, inv.ServiceName)
	pdf.Cell(0, 8, fmt.Sprintf("%.2f", inv.Amount))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Status: %s", strings.ToUpper(inv.Status())))
	if inv.WorkerName != nil {
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 12)
		pdf.Cell(0, 8, fmt.Sprintf("Assigned worker: %s", *inv.WorkerName))
	}

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 155, 30, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportCSV writes the filtered invoice list as CSV for download.
func (s *invoiceService) ExportCSV(filters models.InvoiceFilters) ([]byte, error) {
	result, err := s.ListInvoices(filters)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"booking_id", "customer_name", "customer_email", "customer_number", "service", "amount", "booking_date", "status", "worker"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, inv := range result.Invoices {
		worker := ""
		if inv.WorkerName != nil {
			worker = *inv.WorkerName
		}
		row := []string{
			strconv.FormatInt(inv.BookingID, 10),
			inv.CustomerName,
			inv.CustomerEmail,
			inv.CustomerPhone,
			inv.ServiceName,
			strconv.FormatFloat(inv.Amount, 'f', 2, 64),
			inv.BookingDate,
			inv.Status(),
			worker,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

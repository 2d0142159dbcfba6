package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"kushi_services_backend/internal/models"
	"kushi_services_backend/internal/repositories"
)

type fakeInvoiceRepo struct {
	invoices []models.Invoice
}

func (f *fakeInvoiceRepo) GetInvoices() ([]models.Invoice, error) {
	return f.invoices, nil
}

func (f *fakeInvoiceRepo) GetInvoiceByBookingID(bookingID int64) (*models.Invoice, error) {
	for _, inv := range f.invoices {
		if inv.BookingID == bookingID {
			return &inv, nil
		}
	}
	return nil, repositories.ErrNotFound
}

// Reference date for period filtering: Wednesday 2025-06-18.
var testNow = time.Date(2025, 6, 18, 15, 0, 0, 0, time.UTC)

func newInvoiceServiceAt(repo repositories.InvoiceRepository) *invoiceService {
	return &invoiceService{invoiceRepo: repo, now: func() time.Time { return testNow }}
}

func invoiceFixture() []models.Invoice {
	return []models.Invoice{
		{BookingID: 1, CustomerName: "Anita Rao", Amount: 500, BookingDate: "2025-06-18", WorkerAssign: true},
		{BookingID: 2, CustomerName: "Vikram Shah", Amount: 700, BookingDate: "2025-06-16", WorkerAssign: false},
		{BookingID: 3, CustomerName: "Meena Iyer", Amount: 300, BookingDate: "2025-06-01", WorkerAssign: true},
		{BookingID: 4, CustomerName: "Ravi Kumar", Amount: 900, BookingDate: "2025-05-20", WorkerAssign: false},
	}
}

func TestListInvoicesTotalsSplitByAssignment(t *testing.T) {
	svc := newInvoiceServiceAt(&fakeInvoiceRepo{invoices: invoiceFixture()})

	result, err := svc.ListInvoices(models.InvoiceFilters{Period: models.InvoicePeriodAll})
	if err != nil {
		t.Fatalf("ListInvoices failed: %v", err)
	}
	if len(result.Invoices) != 4 {
		t.Fatalf("got %d invoices, want 4", len(result.Invoices))
	}
	if result.Totals.TotalRevenue != 800 {
		t.Errorf("total revenue = %v, want 800 (paid invoices)", result.Totals.TotalRevenue)
	}
	if result.Totals.PendingAmount != 1600 {
		t.Errorf("pending amount = %v, want 1600 (unpaid invoices)", result.Totals.PendingAmount)
	}
}

func TestListInvoicesPeriodFilters(t *testing.T) {
	svc := newInvoiceServiceAt(&fakeInvoiceRepo{invoices: invoiceFixture()})

	cases := []struct {
		period string
		want   []int64
	}{
		{models.InvoicePeriodToday, []int64{1}},
		// Week of 2025-06-15 (Sunday) through 2025-06-21.
		{models.InvoicePeriodWeek, []int64{1, 2}},
		{models.InvoicePeriodMonth, []int64{1, 2, 3}},
	}

	for _, tc := range cases {
		result, err := svc.ListInvoices(models.InvoiceFilters{Period: tc.period})
		if err != nil {
			t.Fatalf("period %s: %v", tc.period, err)
		}
		got := []int64{}
		for _, inv := range result.Invoices {
			got = append(got, inv.BookingID)
		}
		if len(got) != len(tc.want) {
			t.Errorf("period %s: got %v, want %v", tc.period, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("period %s: got %v, want %v", tc.period, got, tc.want)
				break
			}
		}
	}
}

func TestListInvoicesCustomPeriods(t *testing.T) {
	svc := newInvoiceServiceAt(&fakeInvoiceRepo{invoices: invoiceFixture()})

	date := "2025-05-20"
	result, err := svc.ListInvoices(models.InvoiceFilters{Period: models.InvoicePeriodCustomDate, CustomDate: &date})
	if err != nil {
		t.Fatalf("custom-date failed: %v", err)
	}
	if len(result.Invoices) != 1 || result.Invoices[0].BookingID != 4 {
		t.Errorf("custom-date: got %+v, want booking 4", result.Invoices)
	}

	month := "2025-05"
	result, err = svc.ListInvoices(models.InvoiceFilters{Period: models.InvoicePeriodCustomMonth, CustomMonth: &month})
	if err != nil {
		t.Fatalf("custom-month failed: %v", err)
	}
	if len(result.Invoices) != 1 || result.Invoices[0].BookingID != 4 {
		t.Errorf("custom-month: got %+v, want booking 4", result.Invoices)
	}

	if _, err := svc.ListInvoices(models.InvoiceFilters{Period: models.InvoicePeriodCustomDate}); !errors.Is(err, ErrInvoicePeriodInvalid) {
		t.Errorf("custom-date without date: got %v, want ErrInvoicePeriodInvalid", err)
	}
	if _, err := svc.ListInvoices(models.InvoiceFilters{Period: "quarter"}); !errors.Is(err, ErrInvoicePeriodInvalid) {
		t.Errorf("unknown period: got %v, want ErrInvoicePeriodInvalid", err)
	}
}

func TestListInvoicesSearchMatchesNameOrID(t *testing.T) {
	svc := newInvoiceServiceAt(&fakeInvoiceRepo{invoices: invoiceFixture()})

	search := "vikram"
	result, err := svc.ListInvoices(models.InvoiceFilters{Search: &search})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(result.Invoices) != 1 || result.Invoices[0].BookingID != 2 {
		t.Errorf("name search: got %+v", result.Invoices)
	}

	search = "3"
	result, err = svc.ListInvoices(models.InvoiceFilters{Search: &search})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(result.Invoices) != 1 || result.Invoices[0].BookingID != 3 {
		t.Errorf("id search: got %+v", result.Invoices)
	}
}

func TestGeneratePDF(t *testing.T) {
	svc := newInvoiceServiceAt(&fakeInvoiceRepo{invoices: invoiceFixture()})

	pdf, err := svc.GeneratePDF(1)
	if err != nil {
		t.Fatalf("GeneratePDF failed: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Errorf("output does not look like a PDF, starts with %q", pdf[:min(8, len(pdf))])
	}

	if _, err := svc.GeneratePDF(99); !errors.Is(err, ErrInvoiceNotFound) {
		t.Errorf("missing invoice: got %v, want ErrInvoiceNotFound", err)
	}
}

func TestExportCSV(t *testing.T) {
	svc := newInvoiceServiceAt(&fakeInvoiceRepo{invoices: invoiceFixture()})

	data, err := svc.ExportCSV(models.InvoiceFilters{Period: models.InvoicePeriodAll})
	if err != nil {
		t.Fatalf("ExportCSV failed: %v", err)
	}

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("got %d CSV rows, want header + 4", len(rows))
	}
	if rows[0][0] != "booking_id" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][7] != "paid" || rows[2][7] != "unpaid" {
		t.Errorf("status column = %q/%q, want paid/unpaid", rows[1][7], rows[2][7])
	}
}

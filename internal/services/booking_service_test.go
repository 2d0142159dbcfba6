package services

import (
	"errors"
	"testing"

	"kushi_services_backend/internal/models"
	"kushi_services_backend/internal/records"
	"kushi_services_backend/internal/repositories"
)

type fakeBookingRepo struct {
	bookings map[int64]*models.Booking
	nextID   int64
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[int64]*models.Booking{}, nextID: 1}
}

func (f *fakeBookingRepo) CreateBooking(_ repositories.SQLExecutor, b *models.Booking) (*models.Booking, error) {
	b.ID = f.nextID
	f.nextID++
	stored := *b
	f.bookings[b.ID] = &stored
	return b, nil
}

func (f *fakeBookingRepo) GetBookingByID(id int64) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copy := *b
	return &copy, nil
}

func (f *fakeBookingRepo) GetBookings(filters models.BookingFilters) ([]models.Booking, int, error) {
	out := []models.Booking{}
	for i := int64(1); i < f.nextID; i++ {
		b, ok := f.bookings[i]
		if !ok {
			continue
		}
		if filters.UserID != nil && (b.UserID == nil || *b.UserID != *filters.UserID) {
			continue
		}
		out = append(out, *b)
	}
	return out, len(out), nil
}

func (f *fakeBookingRepo) UpdateStatus(_ repositories.SQLExecutor, id int64, status string) error {
	b, ok := f.bookings[id]
	if !ok {
		return repositories.ErrNotFound
	}
	b.Status = status
	return nil
}

func (f *fakeBookingRepo) AssignWorker(_ repositories.SQLExecutor, id int64, workerID int64) error {
	b, ok := f.bookings[id]
	if !ok {
		return repositories.ErrNotFound
	}
	b.WorkerID = &workerID
	b.PaymentStatus = "paid"
	return nil
}

func (f *fakeBookingRepo) DeleteBooking(_ repositories.SQLExecutor, id int64) error {
	if _, ok := f.bookings[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.bookings, id)
	return nil
}

type fakeServiceRepo struct {
	services map[int64]*models.Service
	counted  map[int64]int
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: map[int64]*models.Service{}, counted: map[int64]int{}}
}

func (f *fakeServiceRepo) CreateService(_ repositories.SQLExecutor, s *models.Service) (int64, error) {
	f.services[s.ID] = s
	return s.ID, nil
}

func (f *fakeServiceRepo) GetServiceByID(id int64) (*models.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copy := *s
	return &copy, nil
}

func (f *fakeServiceRepo) GetServices(models.ServiceFilters) ([]models.Service, error) {
	return nil, nil
}

func (f *fakeServiceRepo) UpdateService(_ repositories.SQLExecutor, s *models.Service) error {
	f.services[s.ID] = s
	return nil
}

func (f *fakeServiceRepo) SetActive(_ repositories.SQLExecutor, id int64, active bool) error {
	s, ok := f.services[id]
	if !ok {
		return repositories.ErrNotFound
	}
	s.Active = active
	return nil
}

func (f *fakeServiceRepo) IncrementBookingCount(_ repositories.SQLExecutor, id int64) error {
	f.counted[id]++
	return nil
}

func (f *fakeServiceRepo) DeleteService(_ repositories.SQLExecutor, id int64) error {
	delete(f.services, id)
	return nil
}

func validRequest() CreateBookingRequest {
	return CreateBookingRequest{
		CustomerName:  "Anita Rao",
		CustomerEmail: "anita@example.com",
		CustomerPhone: "9876543210",
		ServiceName:   "Deep Cleaning",
		Amount:        1500,
		Date:          "2025-06-10",
		Time:          "10:00 AM",
	}
}

func TestCreateBookingDefaultsToPending(t *testing.T) {
	br := newFakeBookingRepo()
	svc := NewBookingService(br, newFakeServiceRepo(), nil)

	booking, err := svc.CreateBooking(validRequest())
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}
	if booking.Status != records.StatusPending {
		t.Errorf("new booking status = %q, want %q", booking.Status, records.StatusPending)
	}
	if booking.PaymentStatus != records.PaymentPending {
		t.Errorf("new booking payment status = %q, want %q", booking.PaymentStatus, records.PaymentPending)
	}
}

func TestCreateBookingRejectsBadInput(t *testing.T) {
	svc := NewBookingService(newFakeBookingRepo(), newFakeServiceRepo(), nil)

	bad := validRequest()
	bad.CustomerEmail = "not-an-email"
	if _, err := svc.CreateBooking(bad); !errors.Is(err, ErrBookingValidation) {
		t.Errorf("bad email: got %v, want ErrBookingValidation", err)
	}

	bad = validRequest()
	bad.CustomerPhone = "12345"
	if _, err := svc.CreateBooking(bad); !errors.Is(err, ErrBookingValidation) {
		t.Errorf("bad phone: got %v, want ErrBookingValidation", err)
	}

	bad = validRequest()
	bad.Date = "10-06-2025"
	if _, err := svc.CreateBooking(bad); !errors.Is(err, ErrInvalidBookingSchedule) {
		t.Errorf("bad date: got %v, want ErrInvalidBookingSchedule", err)
	}
}

func TestCreateBookingUsesCatalogPriceAndName(t *testing.T) {
	sr := newFakeServiceRepo()
	serviceID := int64(7)
	sr.services[serviceID] = &models.Service{
		ID: serviceID, Name: "Sofa Shampooing", Category: "cleaning", Price: 1200, Active: true,
	}
	svc := NewBookingService(newFakeBookingRepo(), sr, nil)

	req := validRequest()
	req.ServiceID = &serviceID
	req.ServiceName = "whatever the client sent"
	req.Amount = 0

	booking, err := svc.CreateBooking(req)
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}
	if booking.ServiceName != "Sofa Shampooing" {
		t.Errorf("service name = %q, want catalog name", booking.ServiceName)
	}
	if booking.Amount != 1200 {
		t.Errorf("amount = %v, want catalog price 1200", booking.Amount)
	}
	if sr.counted[serviceID] != 1 {
		t.Errorf("booking count increments = %d, want 1", sr.counted[serviceID])
	}
}

func TestCreateBookingRejectsInactiveService(t *testing.T) {
	sr := newFakeServiceRepo()
	serviceID := int64(3)
	sr.services[serviceID] = &models.Service{ID: serviceID, Name: "Pest Control", Price: 900, Active: false}
	svc := NewBookingService(newFakeBookingRepo(), sr, nil)

	req := validRequest()
	req.ServiceID = &serviceID
	if _, err := svc.CreateBooking(req); !errors.Is(err, ErrServiceForBookingGone) {
		t.Errorf("inactive service: got %v, want ErrServiceForBookingGone", err)
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{"pending", "confirmed", true},
		{"pending", "cancelled", true},
		{"pending", "completed", false},
		{"confirmed", "completed", true},
		{"confirmed", "cancelled", true},
		{"confirmed", "pending", false},
		{"completed", "cancelled", false},
		{"cancelled", "confirmed", false},
	}

	for _, tc := range cases {
		br := newFakeBookingRepo()
		svc := NewBookingService(br, newFakeServiceRepo(), nil)
		created, err := svc.CreateBooking(validRequest())
		if err != nil {
			t.Fatalf("CreateBooking failed: %v", err)
		}
		br.bookings[created.ID].Status = tc.from

		_, err = svc.UpdateStatus(created.ID, tc.to)
		if tc.ok && err != nil {
			t.Errorf("%s -> %s: unexpected error %v", tc.from, tc.to, err)
		}
		if !tc.ok && !errors.Is(err, ErrInvalidStatusChange) {
			t.Errorf("%s -> %s: got %v, want ErrInvalidStatusChange", tc.from, tc.to, err)
		}
	}
}

func TestUpdateStatusUnknownStatus(t *testing.T) {
	svc := NewBookingService(newFakeBookingRepo(), newFakeServiceRepo(), nil)
	if _, err := svc.UpdateStatus(1, "archived"); !errors.Is(err, ErrBookingValidation) {
		t.Errorf("unknown status: got %v, want ErrBookingValidation", err)
	}
}

func TestListBookingsFiltersAndSorts(t *testing.T) {
	br := newFakeBookingRepo()
	svc := NewBookingService(br, newFakeServiceRepo(), nil)

	seed := []struct {
		name, date, time, status string
	}{
		{"Anita Rao", "2025-06-01", "9:00 AM", "pending"},
		{"Vikram Shah", "2025-06-03", "2:00 PM", "confirmed"},
		{"Meena Iyer", "2025-06-02", "11:00 AM", "pending"},
	}
	for _, s := range seed {
		req := validRequest()
		req.CustomerName = s.name
		req.Date = s.date
		req.Time = s.time
		created, err := svc.CreateBooking(req)
		if err != nil {
			t.Fatalf("seed booking failed: %v", err)
		}
		br.bookings[created.ID].Status = s.status
	}

	result, err := svc.ListBookings("all", "")
	if err != nil {
		t.Fatalf("ListBookings failed: %v", err)
	}
	if result.Total != 3 {
		t.Fatalf("total = %d, want 3 with status all", result.Total)
	}
	if result.Bookings[0].CustomerName != "Vikram Shah" {
		t.Errorf("newest first: got %q", result.Bookings[0].CustomerName)
	}

	result, err = svc.ListBookings("pending", "meena")
	if err != nil {
		t.Fatalf("ListBookings failed: %v", err)
	}
	if result.Total != 1 || result.Bookings[0].CustomerName != "Meena Iyer" {
		t.Errorf("pending+meena: got %+v", result.Bookings)
	}
}

func TestListOrdersForUserReturnsOnlyOwnBookings(t *testing.T) {
	br := newFakeBookingRepo()
	svc := NewBookingService(br, newFakeServiceRepo(), nil)

	alice, bob := int64(1), int64(2)
	seed := []struct {
		user *int64
		date string
	}{
		{&alice, "2025-06-01"},
		{&bob, "2025-06-02"},
		{&alice, "2025-06-03"},
		{nil, "2025-06-04"}, // guest booking, belongs to nobody
	}
	for _, s := range seed {
		req := validRequest()
		req.UserID = s.user
		req.Date = s.date
		if _, err := svc.CreateBooking(req); err != nil {
			t.Fatalf("seed booking failed: %v", err)
		}
	}

	orders, err := svc.ListOrdersForUser(alice)
	if err != nil {
		t.Fatalf("ListOrdersForUser failed: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("got %d orders for user %d, want 2", len(orders), alice)
	}
	for _, o := range orders {
		if o.UserID == nil || *o.UserID != alice {
			t.Errorf("order %s belongs to %v, want user %d", o.ID, o.UserID, alice)
		}
	}
	if orders[0].Date != "2025-06-03" {
		t.Errorf("orders not newest first: got %s", orders[0].Date)
	}

	orders, err = svc.ListOrdersForUser(99)
	if err != nil {
		t.Fatalf("ListOrdersForUser failed: %v", err)
	}
	if len(orders) != 0 {
		t.Errorf("unknown user got %d orders, want 0", len(orders))
	}
}

func TestDeleteBookingNotFound(t *testing.T) {
	svc := NewBookingService(newFakeBookingRepo(), newFakeServiceRepo(), nil)
	if err := svc.DeleteBooking(42); !errors.Is(err, ErrBookingNotFound) {
		t.Errorf("got %v, want ErrBookingNotFound", err)
	}
}

package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"kushi_services_backend/internal/models"
	"kushi_services_backend/internal/repositories"
	"kushi_services_backend/pkg/utils"
)

var (
	ErrWorkerNotFound   = errors.New("worker not found")
	ErrWorkerValidation = errors.New("worker data validation error")
)

// --- Worker DTOs ---

type CreateWorkerRequest struct {
	FullName string  `json:"full_name" binding:"required"`
	Phone    string  `json:"phone" binding:"required"`
	Skill    *string `json:"skill"`
}

type UpdateWorkerRequest struct {
	FullName *string `json:"full_name"`
	Phone    *string `json:"phone"`
	Skill    *string `json:"skill"`
	Active   *bool   `json:"active"`
}

// --- WorkerService Interface ---
type WorkerService interface {
	CreateWorker(req CreateWorkerRequest) (*models.Worker, error)
	GetWorkers(activeOnly bool) ([]models.Worker, error)
	UpdateWorker(id int64, req UpdateWorkerRequest) (*models.Worker, error)
	DeleteWorker(id int64) error
	AssignToBooking(bookingID, workerID int64) error
}

type workerService struct {
	workerRepo  repositories.WorkerRepository
	bookingRepo repositories.BookingRepository
	db          *sql.DB
}

// NewWorkerService creates a new instance of WorkerService.
func NewWorkerService(wr repositories.WorkerRepository, br repositories.BookingRepository, db *sql.DB) WorkerService {
	return &workerService{workerRepo: wr, bookingRepo: br, db: db}
}

func (s *workerService) CreateWorker(req CreateWorkerRequest) (*models.Worker, error) {
	if !utils.IsValidPhone(req.Phone) {
		return nil, fmt.Errorf("%w: invalid phone number", ErrWorkerValidation)
	}

	worker := &models.Worker{
		FullName: strings.TrimSpace(req.FullName),
		Phone:    strings.TrimSpace(req.Phone),
		Skill:    req.Skill,
		Active:   true,
	}
	if _, err := s.workerRepo.CreateWorker(s.db, worker); err != nil {
		return nil, fmt.Errorf("failed to create worker: %w", err)
	}
	return worker, nil
}

func (s *workerService) GetWorkers(activeOnly bool) ([]models.Worker, error) {
	workers, err := s.workerRepo.GetWorkers(activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	return workers, nil
}

func (s *workerService) UpdateWorker(id int64, req UpdateWorkerRequest) (*models.Worker, error) {
	worker, err := s.workerRepo.GetWorkerByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrWorkerNotFound
		}
		return nil, fmt.Errorf("failed to find worker for update: %w", err)
	}

	if req.FullName != nil {
		worker.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Phone != nil {
		if !utils.IsValidPhone(*req.Phone) {
			return nil, fmt.Errorf("%w: invalid phone number", ErrWorkerValidation)
		}
		worker.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Skill != nil {
		worker.Skill = req.Skill
	}
	if req.Active != nil {
		worker.Active = *req.Active
	}

	if err := s.workerRepo.UpdateWorker(s.db, worker); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrWorkerNotFound
		}
		return nil, fmt.Errorf("failed to update worker: %w", err)
	}
	return worker, nil
}

func (s *workerService) DeleteWorker(id int64) error {
	if err := s.workerRepo.DeleteWorker(s.db, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrWorkerNotFound
		}
		return fmt.Errorf("failed to delete worker: %w", err)
	}
	return nil
}

// AssignToBooking pins an active worker to a booking. Assignment also marks
// the booking paid, which is what moves its invoice out of the pending bucket.
func (s *workerService) AssignToBooking(bookingID, workerID int64) error {
	worker, err := s.workerRepo.GetWorkerByID(workerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrWorkerNotFound
		}
		return fmt.Errorf("failed to find worker for assignment: %w", err)
	}
	if !worker.Active {
		return fmt.Errorf("%w: %s is inactive", ErrWorkerForBookingGone, worker.FullName)
	}

	if err := s.bookingRepo.AssignWorker(s.db, bookingID, workerID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("failed to assign worker to booking: %w", err)
	}
	return nil
}

package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"kushi_services_backend/internal/models"
)

// WorkerRepository defines the interface for worker database operations.
type WorkerRepository interface {
	CreateWorker(executor SQLExecutor, worker *models.Worker) (int64, error)
	GetWorkerByID(id int64) (*models.Worker, error)
	GetWorkers(activeOnly bool) ([]models.Worker, error)
	UpdateWorker(executor SQLExecutor, worker *models.Worker) error
	DeleteWorker(executor SQLExecutor, id int64) error
}

type workerRepository struct {
	db *sql.DB
}

// NewWorkerRepository creates a new instance of WorkerRepository.
func NewWorkerRepository(db *sql.DB) WorkerRepository {
	return &workerRepository{db: db}
}

const workerColumns = `id, full_name, phone, skill, active, created_at, updated_at`

func scanWorker(row scanner) (*models.Worker, error) {
	var w models.Worker
	var skill sql.NullString
	err := row.Scan(&w.ID, &w.FullName, &w.Phone, &skill, &w.Active, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: scanning worker: %v", ErrDatabaseError, err)
	}
	if skill.Valid {
		w.Skill = &skill.String
	}
	return &w, nil
}

func (r *workerRepository) CreateWorker(executor SQLExecutor, worker *models.Worker) (int64, error) {
	query := `INSERT INTO workers (full_name, phone, skill, active, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id`

	now := time.Now()
	worker.CreatedAt = now
	worker.UpdatedAt = now

	err := executor.QueryRow(query,
		worker.FullName, worker.Phone, worker.Skill, worker.Active, worker.CreatedAt, worker.UpdatedAt,
	).Scan(&worker.ID)
	if err != nil {
		return 0, fmt.Errorf("%w: creating worker: %v", ErrDatabaseError, err)
	}
	return worker.ID, nil
}

func (r *workerRepository) GetWorkerByID(id int64) (*models.Worker, error) {
	query := "SELECT " + workerColumns + " FROM workers WHERE id = $1"
	return scanWorker(r.db.QueryRow(query, id))
}

func (r *workerRepository) GetWorkers(activeOnly bool) ([]models.Worker, error) {
	query := "SELECT " + workerColumns + " FROM workers"
	if activeOnly {
		query += " WHERE active = TRUE"
	}
	query += " ORDER BY full_name"

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying workers: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	workers := []models.Worker{}
	for rows.Next() {
		w, scanErr := scanWorker(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		workers = append(workers, *w)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating worker rows: %v", ErrDatabaseError, err)
	}
	return workers, nil
}

func (r *workerRepository) UpdateWorker(executor SQLExecutor, worker *models.Worker) error {
	query := `UPDATE workers SET full_name = $1, phone = $2, skill = $3, active = $4, updated_at = $5 WHERE id = $6`
	worker.UpdatedAt = time.Now()
	result, err := executor.Exec(query, worker.FullName, worker.Phone, worker.Skill, worker.Active, worker.UpdatedAt, worker.ID)
	if err != nil {
		return fmt.Errorf("%w: updating worker %d: %v", ErrDatabaseError, worker.ID, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *workerRepository) DeleteWorker(executor SQLExecutor, id int64) error {
	result, err := executor.Exec(`DELETE FROM workers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting worker %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

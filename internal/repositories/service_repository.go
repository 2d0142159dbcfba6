package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"kushi_services_backend/internal/models"
)

// ServiceRepository defines the interface for catalog database operations.
type ServiceRepository interface {
	CreateService(executor SQLExecutor, service *models.Service) (int64, error)
	GetServiceByID(id int64) (*models.Service, error)
	GetServices(filters models.ServiceFilters) ([]models.Service, error)
	UpdateService(executor SQLExecutor, service *models.Service) error
	SetActive(executor SQLExecutor, id int64, active bool) error
	IncrementBookingCount(executor SQLExecutor, id int64) error
	DeleteService(executor SQLExecutor, id int64) error
}

type serviceRepository struct {
	db *sql.DB
}

// NewServiceRepository creates a new instance of ServiceRepository.
func NewServiceRepository(db *sql.DB) ServiceRepository {
	return &serviceRepository{db: db}
}

const serviceColumns = `
	id, name, category, subcategory, price, original_price, rating, booking_count,
	duration, tier, active, overview, process, benefits, inclusions, exclusions,
	created_at, updated_at`

func scanService(row scanner) (*models.Service, error) {
	var s models.Service
	var subcategory, duration, tier, overview, process, benefits, inclusions, exclusions sql.NullString
	var originalPrice sql.NullInt64

	err := row.Scan(
		&s.ID, &s.Name, &s.Category, &subcategory, &s.Price, &originalPrice,
		&s.Rating, &s.BookingCount, &duration, &tier, &s.Active,
		&overview, &process, &benefits, &inclusions, &exclusions,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: scanning service: %v", ErrDatabaseError, err)
	}

	if subcategory.Valid {
		s.Subcategory = &subcategory.String
	}
	if originalPrice.Valid {
		s.OriginalPrice = &originalPrice.Int64
	}
	if duration.Valid {
		s.Duration = &duration.String
	}
	if tier.Valid {
		s.Tier = &tier.String
	}
	if overview.Valid {
		s.Overview = &overview.String
	}
	if process.Valid {
		s.Process = &process.String
	}
	if benefits.Valid {
		s.Benefits = &benefits.String
	}
	if inclusions.Valid {
		s.Inclusions = &inclusions.String
	}
	if exclusions.Valid {
		s.Exclusions = &exclusions.String
	}
	return &s, nil
}

func (r *serviceRepository) CreateService(executor SQLExecutor, service *models.Service) (int64, error) {
	query := `INSERT INTO services
	            (name, category, subcategory, price, original_price, rating, booking_count,
	             duration, tier, active, overview, process, benefits, inclusions, exclusions,
	             created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	          RETURNING id`

	now := time.Now()
	service.CreatedAt = now
	service.UpdatedAt = now

	err := executor.QueryRow(query,
		service.Name, service.Category, service.Subcategory, service.Price, service.OriginalPrice,
		service.Rating, service.BookingCount, service.Duration, service.Tier, service.Active,
		service.Overview, service.Process, service.Benefits, service.Inclusions, service.Exclusions,
		service.CreatedAt, service.UpdatedAt,
	).Scan(&service.ID)

	if err != nil {
		return 0, fmt.Errorf("%w: creating service: %v", ErrDatabaseError, err)
	}
	return service.ID, nil
}

func (r *serviceRepository) GetServiceByID(id int64) (*models.Service, error) {
	query := "SELECT " + serviceColumns + " FROM services WHERE id = $1"
	return scanService(r.db.QueryRow(query, id))
}

func (r *serviceRepository) GetServices(filters models.ServiceFilters) ([]models.Service, error) {
	services := []models.Service{}

	var queryBuilder strings.Builder
	queryBuilder.WriteString("SELECT " + serviceColumns + " FROM services")

	var conditions []string
	var args []interface{}
	argCount := 1

	if filters.Category != nil && *filters.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argCount))
		args = append(args, *filters.Category)
		argCount++
	}
	if filters.ActiveOnly {
		conditions = append(conditions, "active = TRUE")
	}
	if filters.Search != nil && *filters.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR category ILIKE $%d)", argCount, argCount))
		args = append(args, "%"+*filters.Search+"%")
		argCount++
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY category, name")

	rows, err := r.db.Query(queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying services: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		s, scanErr := scanService(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		services = append(services, *s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating service rows: %v", ErrDatabaseError, err)
	}
	return services, nil
}

func (r *serviceRepository) UpdateService(executor SQLExecutor, service *models.Service) error {
	query := `UPDATE services SET
	            name = $1, category = $2, subcategory = $3, price = $4, original_price = $5,
	            rating = $6, duration = $7, tier = $8, active = $9, overview = $10,
	            process = $11, benefits = $12, inclusions = $13, exclusions = $14, updated_at = $15
	          WHERE id = $16`

	service.UpdatedAt = time.Now()
	result, err := executor.Exec(query,
		service.Name, service.Category, service.Subcategory, service.Price, service.OriginalPrice,
		service.Rating, service.Duration, service.Tier, service.Active, service.Overview,
		service.Process, service.Benefits, service.Inclusions, service.Exclusions,
		service.UpdatedAt, service.ID,
	)
	if err != nil {
		return fmt.Errorf("%w: updating service %d: %v", ErrDatabaseError, service.ID, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *serviceRepository) SetActive(executor SQLExecutor, id int64, active bool) error {
	result, err := executor.Exec(`UPDATE services SET active = $1, updated_at = $2 WHERE id = $3`, active, time.Now(), id)
	if err != nil {
		return fmt.Errorf("%w: toggling service %d availability: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *serviceRepository) IncrementBookingCount(executor SQLExecutor, id int64) error {
	_, err := executor.Exec(`UPDATE services SET booking_count = booking_count + 1, updated_at = $1 WHERE id = $2`, time.Now(), id)
	if err != nil {
		return fmt.Errorf("%w: incrementing booking count for service %d: %v", ErrDatabaseError, id, err)
	}
	return nil
}

func (r *serviceRepository) DeleteService(executor SQLExecutor, id int64) error {
	result, err := executor.Exec(`DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting service %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

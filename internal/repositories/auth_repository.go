package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"kushi_services_backend/internal/models"

	"github.com/lib/pq" // for pq.Error
)

// AuthRepository defines the interface for user account database operations.
type AuthRepository interface {
	CreateUser(executor SQLExecutor, user *models.User) (int64, error)
	GetUserByID(id int64) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateProfile(executor SQLExecutor, user *models.User) error
	UpdatePassword(executor SQLExecutor, id int64, passwordHash string) error
	SetBlocked(executor SQLExecutor, id int64, blocked bool) error
	AddRewardPoints(executor SQLExecutor, id int64, points int) error
	AddCoupon(executor SQLExecutor, id int64) error
}

type authRepository struct {
	db *sql.DB
}

// NewAuthRepository creates a new instance of AuthRepository.
func NewAuthRepository(db *sql.DB) AuthRepository {
	return &authRepository{db: db}
}

const userColumns = `id, email, password_hash, full_name, phone, role, blocked, reward_points, coupons, created_at, updated_at`

func scanUser(row scanner) (*models.User, error) {
	var u models.User
	var phone sql.NullString
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &phone, &u.Role,
		&u.Blocked, &u.RewardPoints, &u.Coupons, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: scanning user: %v", ErrDatabaseError, err)
	}
	if phone.Valid {
		u.Phone = &phone.String
	}
	return &u, nil
}

func (r *authRepository) CreateUser(executor SQLExecutor, user *models.User) (int64, error) {
	query := `INSERT INTO users (email, password_hash, full_name, phone, role, blocked, reward_points, coupons, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	          RETURNING id`

	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	err := executor.QueryRow(query,
		user.Email, user.PasswordHash, user.FullName, user.Phone, user.Role,
		user.Blocked, user.RewardPoints, user.Coupons, user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return 0, fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
		}
		return 0, fmt.Errorf("%w: creating user: %v", ErrDatabaseError, err)
	}
	return user.ID, nil
}

func (r *authRepository) GetUserByID(id int64) (*models.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE id = $1"
	return scanUser(r.db.QueryRow(query, id))
}

func (r *authRepository) GetUserByEmail(email string) (*models.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE LOWER(email) = LOWER($1)"
	return scanUser(r.db.QueryRow(query, email))
}

func (r *authRepository) UpdateProfile(executor SQLExecutor, user *models.User) error {
	query := `UPDATE users SET email = $1, full_name = $2, phone = $3, updated_at = $4 WHERE id = $5`
	user.UpdatedAt = time.Now()

	result, err := executor.Exec(query, user.Email, user.FullName, user.Phone, user.UpdatedAt, user.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
		}
		return fmt.Errorf("%w: updating user %d profile: %v", ErrDatabaseError, user.ID, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *authRepository) UpdatePassword(executor SQLExecutor, id int64, passwordHash string) error {
	result, err := executor.Exec(`UPDATE users SET password_hash = $1, updated_at = $2 WHERE id = $3`, passwordHash, time.Now(), id)
	if err != nil {
		return fmt.Errorf("%w: updating user %d password: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *authRepository) SetBlocked(executor SQLExecutor, id int64, blocked bool) error {
	result, err := executor.Exec(`UPDATE users SET blocked = $1, updated_at = $2 WHERE id = $3`, blocked, time.Now(), id)
	if err != nil {
		return fmt.Errorf("%w: updating user %d blocked flag: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *authRepository) AddRewardPoints(executor SQLExecutor, id int64, points int) error {
	result, err := executor.Exec(`UPDATE users SET reward_points = reward_points + $1, updated_at = $2 WHERE id = $3`, points, time.Now(), id)
	if err != nil {
		return fmt.Errorf("%w: adding reward points to user %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *authRepository) AddCoupon(executor SQLExecutor, id int64) error {
	result, err := executor.Exec(`UPDATE users SET coupons = coupons + 1, updated_at = $1 WHERE id = $2`, time.Now(), id)
	if err != nil {
		return fmt.Errorf("%w: adding coupon to user %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

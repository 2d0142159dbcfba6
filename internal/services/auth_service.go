package services

import (
	"database/sql"
	"errors"
	"fmt"

	"kushi_services_backend/internal/models"
	"kushi_services_backend/internal/repositories"
	"kushi_services_backend/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

// --- Custom Service Errors ---
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already registered")
	ErrAccountBlocked     = errors.New("account is blocked")
	ErrTokenGeneration    = errors.New("failed to generate token")
	ErrAuthValidation     = errors.New("auth data validation error")
)

// --- DTOs ---

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	FullName string  `json:"full_name" binding:"required"`
	Phone    *string `json:"phone"`
}

type UpdateProfileRequest struct {
	FullName *string `json:"full_name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

type AuthResponse struct {
	User         *models.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token,omitempty"`
}

// --- AuthService Interface ---
type AuthService interface {
	RegisterCustomer(req RegisterRequest) (*models.User, error)
	Login(req LoginRequest) (*AuthResponse, error)
	Refresh(refreshToken string) (*AuthResponse, error)
	GetUserProfile(userID int64) (*models.User, error)
	UpdateProfile(userID int64, req UpdateProfileRequest) (*models.User, error)
	ChangePassword(userID int64, req ChangePasswordRequest) error
}

type authService struct {
	authRepo repositories.AuthRepository
	db       *sql.DB
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(authRepo repositories.AuthRepository, db *sql.DB) AuthService {
	return &authService{authRepo: authRepo, db: db}
}

func (s *authService) RegisterCustomer(req RegisterRequest) (*models.User, error) {
	if !utils.IsValidEmail(req.Email) {
		return nil, fmt.Errorf("%w: invalid email %q", ErrAuthValidation, req.Email)
	}
	if req.Phone != nil && !utils.IsValidPhone(*req.Phone) {
		return nil, fmt.Errorf("%w: invalid phone number", ErrAuthValidation)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: string(hashed),
		FullName:     req.FullName,
		Phone:        req.Phone,
		Role:         models.RoleCustomer,
	}

	if _, err := s.authRepo.CreateUser(s.db, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *authService) Login(req LoginRequest) (*AuthResponse, error) {
	user, err := s.authRepo.GetUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user.Blocked {
		return nil, ErrAccountBlocked
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

func (s *authService) Refresh(refreshToken string) (*AuthResponse, error) {
	claims, err := utils.ValidateToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}

	user, err := s.authRepo.GetUserByID(claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user for refresh: %w", err)
	}
	if user.Blocked {
		return nil, ErrAccountBlocked
	}
	return s.issueTokens(user)
}

func (s *authService) GetUserProfile(userID int64) (*models.User, error) {
	user, err := s.authRepo.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}
	return user, nil
}

// UpdateProfile applies partial edits to the account's name, email and phone.
func (s *authService) UpdateProfile(userID int64, req UpdateProfileRequest) (*models.User, error) {
	user, err := s.authRepo.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user for profile update: %w", err)
	}

	if req.FullName != nil {
		if utils.IsEmpty(*req.FullName) {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrAuthValidation)
		}
		user.FullName = *req.FullName
	}
	if req.Email != nil {
		if !utils.IsValidEmail(*req.Email) {
			return nil, fmt.Errorf("%w: invalid email %q", ErrAuthValidation, *req.Email)
		}
		user.Email = *req.Email
	}
	if req.Phone != nil {
		if !utils.IsValidPhone(*req.Phone) {
			return nil, fmt.Errorf("%w: invalid phone number", ErrAuthValidation)
		}
		user.Phone = req.Phone
	}

	if err := s.authRepo.UpdateProfile(s.db, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrEmailExists
		}
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}

// ChangePassword verifies the current password before storing the new hash.
func (s *authService) ChangePassword(userID int64, req ChangePasswordRequest) error {
	if !utils.IsValidPasswordLength(req.NewPassword, 8) {
		return fmt.Errorf("%w: new password must be at least 8 characters", ErrAuthValidation)
	}

	user, err := s.authRepo.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user for password change: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}
	if err := s.authRepo.UpdatePassword(s.db, userID, string(hashed)); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

func (s *authService) issueTokens(user *models.User) (*AuthResponse, error) {
	accessToken, err := utils.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}
	refreshToken, err := utils.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}
	return &AuthResponse{User: user, AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

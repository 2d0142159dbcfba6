package services

import (
	"errors"
	"strings"
	"testing"

	"kushi_services_backend/internal/models"
	"kushi_services_backend/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

type fakeAuthRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{users: map[int64]*models.User{}, nextID: 1}
}

func (f *fakeAuthRepo) CreateUser(_ repositories.SQLExecutor, u *models.User) (int64, error) {
	for _, existing := range f.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return 0, repositories.ErrDuplicateKey
		}
	}
	u.ID = f.nextID
	f.nextID++
	stored := *u
	f.users[u.ID] = &stored
	return u.ID, nil
}

func (f *fakeAuthRepo) GetUserByID(id int64) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	out := *u
	return &out, nil
}

func (f *fakeAuthRepo) GetUserByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			out := *u
			return &out, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeAuthRepo) UpdateProfile(_ repositories.SQLExecutor, u *models.User) error {
	stored, ok := f.users[u.ID]
	if !ok {
		return repositories.ErrNotFound
	}
	for id, other := range f.users {
		if id != u.ID && strings.EqualFold(other.Email, u.Email) {
			return repositories.ErrDuplicateKey
		}
	}
	stored.Email = u.Email
	stored.FullName = u.FullName
	stored.Phone = u.Phone
	return nil
}

func (f *fakeAuthRepo) UpdatePassword(_ repositories.SQLExecutor, id int64, hash string) error {
	u, ok := f.users[id]
	if !ok {
		return repositories.ErrNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (f *fakeAuthRepo) SetBlocked(_ repositories.SQLExecutor, id int64, blocked bool) error {
	u, ok := f.users[id]
	if !ok {
		return repositories.ErrNotFound
	}
	u.Blocked = blocked
	return nil
}

func (f *fakeAuthRepo) AddRewardPoints(_ repositories.SQLExecutor, id int64, points int) error {
	u, ok := f.users[id]
	if !ok {
		return repositories.ErrNotFound
	}
	u.RewardPoints += points
	return nil
}

func (f *fakeAuthRepo) AddCoupon(_ repositories.SQLExecutor, id int64) error {
	u, ok := f.users[id]
	if !ok {
		return repositories.ErrNotFound
	}
	u.Coupons++
	return nil
}

func seedUser(t *testing.T, repo *fakeAuthRepo, email, password string) int64 {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing seed password: %v", err)
	}
	id, err := repo.CreateUser(nil, &models.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     "Asha Rao",
		Role:         models.RoleCustomer,
	})
	if err != nil {
		t.Fatalf("seeding user: %v", err)
	}
	return id
}

func strPtr(s string) *string { return &s }

func TestUpdateProfileAppliesPartialEdits(t *testing.T) {
	repo := newFakeAuthRepo()
	id := seedUser(t, repo, "asha@example.com", "oldpassword")
	svc := NewAuthService(repo, nil)

	user, err := svc.UpdateProfile(id, UpdateProfileRequest{
		FullName: strPtr("Asha R. Rao"),
		Phone:    strPtr("9876543210"),
	})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}
	if user.FullName != "Asha R. Rao" {
		t.Errorf("full name = %q", user.FullName)
	}
	if user.Phone == nil || *user.Phone != "9876543210" {
		t.Errorf("phone = %v", user.Phone)
	}
	if user.Email != "asha@example.com" {
		t.Errorf("email changed unexpectedly: %q", user.Email)
	}

	stored, _ := repo.GetUserByID(id)
	if stored.FullName != "Asha R. Rao" {
		t.Errorf("edit not persisted: %q", stored.FullName)
	}
}

func TestUpdateProfileValidation(t *testing.T) {
	repo := newFakeAuthRepo()
	id := seedUser(t, repo, "asha@example.com", "oldpassword")
	svc := NewAuthService(repo, nil)

	if _, err := svc.UpdateProfile(id, UpdateProfileRequest{Email: strPtr("nope")}); !errors.Is(err, ErrAuthValidation) {
		t.Errorf("bad email: got %v, want ErrAuthValidation", err)
	}
	if _, err := svc.UpdateProfile(id, UpdateProfileRequest{FullName: strPtr("  ")}); !errors.Is(err, ErrAuthValidation) {
		t.Errorf("blank name: got %v, want ErrAuthValidation", err)
	}
	if _, err := svc.UpdateProfile(id, UpdateProfileRequest{Phone: strPtr("12345")}); !errors.Is(err, ErrAuthValidation) {
		t.Errorf("bad phone: got %v, want ErrAuthValidation", err)
	}
	if _, err := svc.UpdateProfile(99, UpdateProfileRequest{}); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("missing user: got %v, want ErrUserNotFound", err)
	}
}

func TestUpdateProfileRejectsTakenEmail(t *testing.T) {
	repo := newFakeAuthRepo()
	seedUser(t, repo, "first@example.com", "password1")
	second := seedUser(t, repo, "second@example.com", "password2")
	svc := NewAuthService(repo, nil)

	if _, err := svc.UpdateProfile(second, UpdateProfileRequest{Email: strPtr("first@example.com")}); !errors.Is(err, ErrEmailExists) {
		t.Errorf("taken email: got %v, want ErrEmailExists", err)
	}
}

func TestChangePassword(t *testing.T) {
	repo := newFakeAuthRepo()
	id := seedUser(t, repo, "asha@example.com", "oldpassword")
	svc := NewAuthService(repo, nil)

	err := svc.ChangePassword(id, ChangePasswordRequest{
		CurrentPassword: "oldpassword",
		NewPassword:     "brand-new-secret",
	})
	if err != nil {
		t.Fatalf("ChangePassword failed: %v", err)
	}

	stored, _ := repo.GetUserByID(id)
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("brand-new-secret")) != nil {
		t.Error("stored hash does not match the new password")
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("oldpassword")) == nil {
		t.Error("old password still matches after change")
	}
}

func TestChangePasswordGuards(t *testing.T) {
	repo := newFakeAuthRepo()
	id := seedUser(t, repo, "asha@example.com", "oldpassword")
	svc := NewAuthService(repo, nil)

	err := svc.ChangePassword(id, ChangePasswordRequest{CurrentPassword: "wrong", NewPassword: "brand-new-secret"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong current password: got %v, want ErrInvalidCredentials", err)
	}

	err = svc.ChangePassword(id, ChangePasswordRequest{CurrentPassword: "oldpassword", NewPassword: "short"})
	if !errors.Is(err, ErrAuthValidation) {
		t.Errorf("short new password: got %v, want ErrAuthValidation", err)
	}

	err = svc.ChangePassword(99, ChangePasswordRequest{CurrentPassword: "oldpassword", NewPassword: "brand-new-secret"})
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("missing user: got %v, want ErrUserNotFound", err)
	}
}

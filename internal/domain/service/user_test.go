package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ironclub/gym-server/internal/domain/common/errorz"
	"github.com/ironclub/gym-server/internal/domain/entity"
)

type fakeUserDirectory struct {
	byID    map[string]*entity.User
	byEmail map[string]*entity.User
	nextID  int
}

func newFakeUserDirectory() *fakeUserDirectory {
	return &fakeUserDirectory{
		byID:    make(map[string]*entity.User),
		byEmail: make(map[string]*entity.User),
	}
}

func (f *fakeUserDirectory) Create(_ context.Context, user *entity.User) (*entity.User, error) {
	f.nextID++
	user.ID = fmt.Sprintf("u%03d", f.nextID)
	copied := *user
	f.byID[user.ID] = &copied
	f.byEmail[user.Email] = &copied
	return user, nil
}

func (f *fakeUserDirectory) Get(_ context.Context, id string) (*entity.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserDirectory) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserDirectory) GetAll(_ context.Context) ([]entity.User, error) {
	var out []entity.User
	for _, u := range f.byID {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserDirectory) Update(_ context.Context, user *entity.User) (*entity.User, error) {
	copied := *user
	f.byID[user.ID] = &copied
	f.byEmail[user.Email] = &copied
	return user, nil
}

func (f *fakeUserDirectory) Delete(_ context.Context, id string) error {
	u, ok := f.byID[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.byEmail, u.Email)
	delete(f.byID, id)
	return nil
}

func (f *fakeUserDirectory) Count(_ context.Context) (int64, error) {
	return int64(len(f.byID)), nil
}

func (f *fakeUserDirectory) GetWithPagination(ctx context.Context, _, _ int, _ string) ([]entity.User, error) {
	return f.GetAll(ctx)
}

func TestSignUp(t *testing.T) {
	svc := NewUserService(newFakeUserDirectory())
	ctx := context.Background()

	user, err := svc.SignUp(ctx, entity.User{Name: "Ana", Email: "Ana@Example.com"}, "secreto1")
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}
	if user.Email != "ana@example.com" {
		t.Fatalf("expected normalized email, got %s", user.Email)
	}
	if user.Authorized {
		t.Fatal("new accounts must start unauthorized")
	}
	if !user.IsStudent() {
		t.Fatal("new accounts default to the student role")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secreto1")) != nil {
		t.Fatal("password hash does not verify")
	}
}

func TestSignUpRejections(t *testing.T) {
	directory := newFakeUserDirectory()
	svc := NewUserService(directory)
	ctx := context.Background()

	if _, err := svc.SignUp(ctx, entity.User{Email: "a@b.cl"}, "corta"); err != errorz.ErrWeakPassword {
		t.Fatalf("expected weak password error, got %v", err)
	}
	if _, err := svc.SignUp(ctx, entity.User{Email: "not-an-email"}, "secreto1"); err != errorz.ErrInvalidCredentials {
		t.Fatalf("expected invalid email rejection, got %v", err)
	}

	if _, err := svc.SignUp(ctx, entity.User{Email: "ana@example.com"}, "secreto1"); err != nil {
		t.Fatalf("first sign up: %v", err)
	}
	if _, err := svc.SignUp(ctx, entity.User{Email: "ANA@example.com"}, "secreto1"); err != errorz.ErrEmailInUse {
		t.Fatalf("expected email in use, got %v", err)
	}
}

func TestSignIn(t *testing.T) {
	directory := newFakeUserDirectory()
	svc := NewUserService(directory)
	ctx := context.Background()

	created, err := svc.SignUp(ctx, entity.User{Name: "Ana", Email: "ana@example.com"}, "secreto1")
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}

	user, err := svc.SignIn(ctx, "ana@example.com", "secreto1")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if user.ID != created.ID {
		t.Fatalf("unexpected user %s", user.ID)
	}

	if _, err = svc.SignIn(ctx, "ana@example.com", "incorrecta"); err != errorz.ErrInvalidCredentials {
		t.Fatalf("wrong password expected invalid credentials, got %v", err)
	}
	if _, err = svc.SignIn(ctx, "nadie@example.com", "secreto1"); err != errorz.ErrInvalidCredentials {
		t.Fatalf("unknown email expected invalid credentials, got %v", err)
	}
}

func TestToggleAuthorized(t *testing.T) {
	directory := newFakeUserDirectory()
	svc := NewUserService(directory)
	ctx := context.Background()

	created, _ := svc.SignUp(ctx, entity.User{Email: "ana@example.com"}, "secreto1")

	user, err := svc.ToggleAuthorized(ctx, created.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !user.Authorized {
		t.Fatal("expected authorized after toggle")
	}
	user, _ = svc.ToggleAuthorized(ctx, created.ID)
	if user.Authorized {
		t.Fatal("expected unauthorized after second toggle")
	}
}

func TestVisibleFiltersDecayedRecords(t *testing.T) {
	directory := newFakeUserDirectory()
	svc := NewUserService(directory)
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	recent := now.AddDate(0, 0, -10)

	_, _ = directory.Create(ctx, &entity.User{Email: "viejo@example.com", ExpiryDate: "2024-01-31"})
	_, _ = directory.Create(ctx, &entity.User{Email: "activa@example.com", LastLoginAt: &recent})

	visible, err := svc.Visible(ctx, now, false)
	if err != nil {
		t.Fatalf("visible: %v", err)
	}
	if len(visible) != 1 || visible[0].Email != "activa@example.com" {
		t.Fatalf("expected only the active record, got %v", visible)
	}

	all, err := svc.Visible(ctx, now, true)
	if err != nil {
		t.Fatalf("visible all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("includeHidden must list everyone, got %d", len(all))
	}
}

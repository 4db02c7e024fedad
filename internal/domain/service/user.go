package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ironclub/gym-server/internal/domain/common/errorz"
	"github.com/ironclub/gym-server/internal/domain/entity"
)

const minPasswordLength = 6

type UserStorage interface {
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	Get(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetAll(ctx context.Context) ([]entity.User, error)
	Update(ctx context.Context, user *entity.User) (*entity.User, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	GetWithPagination(ctx context.Context, limit, offset int, order string) ([]entity.User, error)
}

type UserService struct {
	userStorage UserStorage
}

func NewUserService(userStorage UserStorage) *UserService {
	return &UserService{
		userStorage: userStorage,
	}
}

// SignUp registers a new user. New accounts start unauthorized; an admin
// flips the gate once the first payment is on record.
func (s *UserService) SignUp(ctx context.Context, user entity.User, password string) (*entity.User, error) {
	if len(password) < minPasswordLength {
		return nil, errorz.ErrWeakPassword
	}
	email := strings.ToLower(strings.TrimSpace(user.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, errorz.ErrInvalidCredentials
	}

	if _, err := s.userStorage.GetByEmail(ctx, email); err == nil {
		return nil, errorz.ErrEmailInUse
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user.Email = email
	user.PasswordHash = string(hash)
	user.Authorized = false
	if len(user.Roles) == 0 {
		user.Roles = []string{string(entity.Student)}
	}
	return s.userStorage.Create(ctx, &user)
}

// SignIn verifies credentials. Login-time stamping is the membership
// service's job so visibility revival has a single write path.
func (s *UserService) SignIn(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := s.userStorage.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, errorz.ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*entity.User, error) {
	return s.userStorage.Get(ctx, id)
}

func (s *UserService) GetAll(ctx context.Context) ([]entity.User, error) {
	return s.userStorage.GetAll(ctx)
}

func (s *UserService) Update(ctx context.Context, user *entity.User) (*entity.User, error) {
	return s.userStorage.Update(ctx, user)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.userStorage.Delete(ctx, id)
}

func (s *UserService) Count(ctx context.Context) (int64, error) {
	return s.userStorage.Count(ctx)
}

func (s *UserService) GetWithPagination(ctx context.Context, limit, offset int, order string) ([]entity.User, error) {
	return s.userStorage.GetWithPagination(ctx, limit, offset, order)
}

// ToggleAuthorized flips the manual admin gate on booking privileges.
func (s *UserService) ToggleAuthorized(ctx context.Context, id string) (*entity.User, error) {
	user, err := s.userStorage.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Authorized = !user.Authorized
	return s.userStorage.Update(ctx, user)
}

// Visible filters out users whose records decayed out of default admin
// views. Pass includeHidden to list everyone.
func (s *UserService) Visible(ctx context.Context, now time.Time, includeHidden bool) ([]entity.User, error) {
	users, err := s.userStorage.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if includeHidden {
		return users, nil
	}
	var out []entity.User
	for _, u := range users {
		if !MembershipHidden(&u, now) {
			out = append(out, u)
		}
	}
	return out, nil
}

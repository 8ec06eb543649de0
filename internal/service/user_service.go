package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"spendtrack/internal/auth"
	"spendtrack/internal/cache"
	apperrors "spendtrack/internal/errors"
	"spendtrack/internal/model"
	"spendtrack/internal/repository"
)

const userCacheTTL = 5 * time.Minute

func userCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("user:%s", id.String())
}

func userEmailCacheKey(email string) string {
	return fmt.Sprintf("user:email:%s", email)
}

// UserService exposes user directory operations.
type UserService interface {
	Signup(ctx context.Context, email, name, password string) (*model.User, error)
	SignIn(ctx context.Context, email, password string) (token string, err error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, password string) (*model.User, error)
	AddBudget(ctx context.Context, id uuid.UUID, budget decimal.Decimal) (*model.User, error)
}

type userService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
	cache      *cache.Client
}

// NewUserService builds a UserService with repository, JWT service, and cache.
func NewUserService(userRepo repository.UserRepository, jwtService *auth.JWTService, cache *cache.Client) UserService {
	return &userService{
		userRepo:   userRepo,
		jwtService: jwtService,
		cache:      cache,
	}
}

// Signup creates a new user. The plaintext password is hashed by the model
// hook on the way into the store.
func (s *userService) Signup(ctx context.Context, email, name, password string) (*model.User, error) {
	user := &model.User{
		Email:    email,
		Name:     name,
		Password: password,
		Role:     model.RoleRegular,
		Budget:   decimal.Zero,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// SignIn verifies credentials and issues a signed, time-limited token carrying
// the user's ID, email, and role. It reads the store directly: the cache copy
// never carries the password hash.
func (s *userService) SignIn(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrUserDoesNotExist
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if !user.CheckPassword(password) {
		return "", apperrors.ErrIncorrectPassword
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return token, nil
}

// GetByEmail returns a user by email, served from cache when possible.
func (s *userService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, userEmailCacheKey(email)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, userEmailCacheKey(email), payload, userCacheTTL)
	}
	return user, nil
}

// List returns all users.
func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.userRepo.List(ctx)
}

// Delete removes a user and returns the deleted record.
func (s *userService) Delete(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	s.invalidate(ctx, user)
	return user, nil
}

// UpdatePassword sets a new password for a user. Hashing happens in the model
// hook; this path cannot write plaintext.
func (s *userService) UpdatePassword(ctx context.Context, id uuid.UUID, password string) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	user.Password = password
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}

	s.invalidate(ctx, user)
	return user, nil
}

// AddBudget sets a user's budget.
func (s *userService) AddBudget(ctx context.Context, id uuid.UUID, budget decimal.Decimal) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if err := s.userRepo.UpdateBudget(ctx, id, budget); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	user.Budget = budget

	s.invalidate(ctx, user)
	return user, nil
}

func (s *userService) invalidate(ctx context.Context, user *model.User) {
	_ = s.cache.Delete(ctx, userCacheKey(user.ID))
	_ = s.cache.Delete(ctx, userEmailCacheKey(user.Email))
}

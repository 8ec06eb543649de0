package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "spendtrack/internal/errors"
	"spendtrack/internal/model"
	"spendtrack/internal/repository"
)

// goalWindow is the length of a spending-goal period.
const goalWindow = 30 * 24 * time.Hour

// GoalExpenseService manages 30-day spending-goal records.
type GoalExpenseService interface {
	Create(ctx context.Context, userID uuid.UUID, desiredAmount decimal.Decimal) (*model.GoalExpense, error)
	List(ctx context.Context) ([]model.GoalExpense, error)
	UpdateAmount(ctx context.Context, id uuid.UUID, desiredAmount decimal.Decimal) (*model.GoalExpense, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type goalExpenseService struct {
	goalRepo repository.GoalExpenseRepository
	userRepo repository.UserRepository
	now      func() time.Time
}

// NewGoalExpenseService creates a new goal expense service.
func NewGoalExpenseService(goalRepo repository.GoalExpenseRepository, userRepo repository.UserRepository) GoalExpenseService {
	return &goalExpenseService{
		goalRepo: goalRepo,
		userRepo: userRepo,
		now:      time.Now,
	}
}

// Create records a new spending goal for a user. Each call produces a fresh
// record; there is no rollover of an existing goal.
func (s *goalExpenseService) Create(ctx context.Context, userID uuid.UUID, desiredAmount decimal.Decimal) (*model.GoalExpense, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	startDate := s.now()
	goal := &model.GoalExpense{
		UserID:        userID,
		DesiredAmount: desiredAmount,
		StartDate:     startDate,
		EndDate:       startDate.Add(goalWindow),
	}
	if err := s.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("create goal expense: %w", err)
	}
	return goal, nil
}

// List returns all goal expenses, unfiltered.
func (s *goalExpenseService) List(ctx context.Context) ([]model.GoalExpense, error) {
	return s.goalRepo.List(ctx)
}

// UpdateAmount changes the desired amount of an existing goal in place.
func (s *goalExpenseService) UpdateAmount(ctx context.Context, id uuid.UUID, desiredAmount decimal.Decimal) (*model.GoalExpense, error) {
	goal, err := s.goalRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGoalExpenseNotFound
		}
		return nil, err
	}

	goal.DesiredAmount = desiredAmount
	if err := s.goalRepo.Save(ctx, goal); err != nil {
		return nil, fmt.Errorf("save goal expense: %w", err)
	}
	return goal, nil
}

// Delete removes a goal expense by ID.
func (s *goalExpenseService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.goalRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrGoalExpenseNotFound
		}
		return err
	}
	return nil
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "spendtrack/internal/errors"
	"spendtrack/internal/model"
)

func TestGoalExpenseService_Create(t *testing.T) {
	userID := uuid.New()
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("creates a goal spanning exactly 30 days", func(t *testing.T) {
		goalRepo := new(MockGoalExpenseRepository)
		userRepo := new(MockUserRepository)
		svc := &goalExpenseService{
			goalRepo: goalRepo,
			userRepo: userRepo,
			now:      func() time.Time { return start },
		}

		userRepo.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID}, nil)
		goalRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.GoalExpense")).Return(nil)

		goal, err := svc.Create(context.Background(), userID, decimal.NewFromInt(500))

		assert.NoError(t, err)
		assert.Equal(t, userID, goal.UserID)
		assert.Equal(t, start, goal.StartDate)
		assert.Equal(t, start.Add(30*24*time.Hour), goal.EndDate)
		assert.True(t, goal.DesiredAmount.Equal(decimal.NewFromInt(500)))

		goalRepo.AssertExpectations(t)
		userRepo.AssertExpectations(t)
	})

	t.Run("fails with not found for an unknown user", func(t *testing.T) {
		goalRepo := new(MockGoalExpenseRepository)
		userRepo := new(MockUserRepository)
		svc := NewGoalExpenseService(goalRepo, userRepo)

		userRepo.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

		goal, err := svc.Create(context.Background(), userID, decimal.NewFromInt(500))

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
		assert.Nil(t, goal)
		goalRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestGoalExpenseService_UpdateAmount(t *testing.T) {
	id := uuid.New()

	t.Run("updates the desired amount in place", func(t *testing.T) {
		goalRepo := new(MockGoalExpenseRepository)
		svc := NewGoalExpenseService(goalRepo, new(MockUserRepository))

		goalRepo.On("FindByID", mock.Anything, id).Return(&model.GoalExpense{
			ID:            id,
			DesiredAmount: decimal.NewFromInt(500),
		}, nil)
		goalRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.GoalExpense")).Return(nil)

		goal, err := svc.UpdateAmount(context.Background(), id, decimal.NewFromInt(750))

		assert.NoError(t, err)
		assert.True(t, goal.DesiredAmount.Equal(decimal.NewFromInt(750)))
		goalRepo.AssertExpectations(t)
	})

	t.Run("fails with not found for an unknown goal", func(t *testing.T) {
		goalRepo := new(MockGoalExpenseRepository)
		svc := NewGoalExpenseService(goalRepo, new(MockUserRepository))

		goalRepo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.UpdateAmount(context.Background(), id, decimal.NewFromInt(750))
		assert.ErrorIs(t, err, apperrors.ErrGoalExpenseNotFound)
	})
}

func TestGoalExpenseService_Delete(t *testing.T) {
	id := uuid.New()

	t.Run("deletes an existing goal", func(t *testing.T) {
		goalRepo := new(MockGoalExpenseRepository)
		svc := NewGoalExpenseService(goalRepo, new(MockUserRepository))

		goalRepo.On("Delete", mock.Anything, id).Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), id))
		goalRepo.AssertExpectations(t)
	})

	t.Run("fails with not found for an unknown goal", func(t *testing.T) {
		goalRepo := new(MockGoalExpenseRepository)
		svc := NewGoalExpenseService(goalRepo, new(MockUserRepository))

		goalRepo.On("Delete", mock.Anything, id).Return(gorm.ErrRecordNotFound)

		assert.ErrorIs(t, svc.Delete(context.Background(), id), apperrors.ErrGoalExpenseNotFound)
	})
}

package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"spendtrack/internal/model"
)

// GoalExpenseRepository defines goal expense persistence operations.
type GoalExpenseRepository interface {
	Create(ctx context.Context, goal *model.GoalExpense) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.GoalExpense, error)
	Save(ctx context.Context, goal *model.GoalExpense) error
	List(ctx context.Context) ([]model.GoalExpense, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type goalExpenseRepository struct {
	db *gorm.DB
}

// NewGoalExpenseRepository creates a new goal expense repository.
func NewGoalExpenseRepository(db *gorm.DB) GoalExpenseRepository {
	return &goalExpenseRepository{db: db}
}

// Create creates a new goal expense.
func (r *goalExpenseRepository) Create(ctx context.Context, goal *model.GoalExpense) error {
	return r.db.WithContext(ctx).Create(goal).Error
}

// FindByID finds a goal expense by ID.
func (r *goalExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.GoalExpense, error) {
	var goal model.GoalExpense
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

// Save persists an existing goal expense.
func (r *goalExpenseRepository) Save(ctx context.Context, goal *model.GoalExpense) error {
	return r.db.WithContext(ctx).Save(goal).Error
}

// List returns all goal expenses.
func (r *goalExpenseRepository) List(ctx context.Context) ([]model.GoalExpense, error) {
	var goals []model.GoalExpense
	if err := r.db.WithContext(ctx).Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

// Delete removes a goal expense by ID. Deleting a missing record reports not found.
func (r *goalExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.GoalExpense{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repos groups the repositories that participate in a unit of work.
type Repos struct {
	Users        UserRepository
	Transactions TransactionRepository
	Items        ItemRepository
	GoalExpenses GoalExpenseRepository
}

// New builds the repository bundle over a gorm handle.
func New(db *gorm.DB) Repos {
	return Repos{
		Users:        NewUserRepository(db),
		Transactions: NewTransactionRepository(db),
		Items:        NewItemRepository(db),
		GoalExpenses: NewGoalExpenseRepository(db),
	}
}

// UnitOfWork executes a function with every repository bound to a single
// database transaction. Multi-entity mutations (budget + transaction + items)
// go through this so they commit or roll back as one.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context, repos Repos) error) error
}

type gormUnitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork creates a UnitOfWork backed by gorm transactions.
func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &gormUnitOfWork{db: db}
}

func (u *gormUnitOfWork) Do(ctx context.Context, fn func(ctx context.Context, repos Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, New(tx))
	})
}

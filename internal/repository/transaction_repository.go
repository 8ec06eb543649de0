package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"spendtrack/internal/model"
)

// TransactionRepository defines transaction persistence operations.
type TransactionRepository interface {
	Create(ctx context.Context, txn *model.Transaction) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error)
	UpdateAmount(ctx context.Context, id uuid.UUID, newAmount decimal.Decimal) error
	DeleteAll(ctx context.Context) error
}

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository.
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

// Create creates a new transaction.
func (r *transactionRepository) Create(ctx context.Context, txn *model.Transaction) error {
	return r.db.WithContext(ctx).Create(txn).Error
}

// FindByID finds a transaction by ID with its items preloaded.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error) {
	var txn model.Transaction
	if err := r.db.WithContext(ctx).Preload("Items").
		Where("id = ?", id).First(&txn).Error; err != nil {
		return nil, err
	}
	return &txn, nil
}

// UpdateAmount updates the amount of a transaction. Callers verify the
// transaction exists first.
func (r *transactionRepository) UpdateAmount(ctx context.Context, id uuid.UUID, newAmount decimal.Decimal) error {
	return r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ?", id).
		Update("amount", newAmount).Error
}

// DeleteAll removes every transaction. Deleting zero rows is not an error.
func (r *transactionRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&model.Transaction{}).Error
}

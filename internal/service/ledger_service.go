package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"spendtrack/internal/cache"
	apperrors "spendtrack/internal/errors"
	"spendtrack/internal/model"
	"spendtrack/internal/repository"
)

// ItemInput is a purchase line entry supplied when creating a transaction.
type ItemInput struct {
	Name         string
	Price        decimal.Decimal
	CategoryName string
}

// LedgerService keeps user budgets, transaction amounts, and item prices
// consistent with each other. Every multi-entity mutation runs in a single
// unit of work with the user row locked, so the affordability check holds
// under concurrent requests.
type LedgerService interface {
	CreateTransaction(ctx context.Context, userID uuid.UUID, items []ItemInput) (*model.Transaction, error)
	GetTransaction(ctx context.Context, id uuid.UUID) (*model.Transaction, error)
	DeleteAllTransactions(ctx context.Context) error
	UpdateItemPrice(ctx context.Context, itemID uuid.UUID, newPrice decimal.Decimal) error
	ListItems(ctx context.Context) ([]model.Item, error)
	FilterItems(ctx context.Context, minPrice decimal.Decimal) ([]model.Item, error)
	DeleteAllItems(ctx context.Context) error
}

type ledgerService struct {
	repos repository.Repos
	uow   repository.UnitOfWork
	cache *cache.Client
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(repos repository.Repos, uow repository.UnitOfWork, cache *cache.Client) LedgerService {
	return &ledgerService{
		repos: repos,
		uow:   uow,
		cache: cache,
	}
}

// CreateTransaction validates affordability, decrements the user's budget, and
// creates the transaction with its items, all in one unit of work.
func (s *ledgerService) CreateTransaction(ctx context.Context, userID uuid.UUID, items []ItemInput) (*model.Transaction, error) {
	amountSpent := decimal.Zero
	for _, in := range items {
		amountSpent = amountSpent.Add(in.Price)
	}

	var created *model.Transaction
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repos) error {
		// Lock the user row so two concurrent requests cannot both pass the
		// budget check against a stale balance.
		user, err := repos.Users.FindByIDForUpdate(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrUserNotFound
			}
			return fmt.Errorf("find user: %w", err)
		}

		if user.Budget.LessThan(amountSpent) {
			return apperrors.ErrInsufficientBudget
		}

		if err := repos.Users.UpdateBudget(ctx, userID, user.Budget.Sub(amountSpent)); err != nil {
			return fmt.Errorf("update budget: %w", err)
		}

		txn := &model.Transaction{
			UserID: userID,
			Amount: amountSpent,
		}
		if err := repos.Transactions.Create(ctx, txn); err != nil {
			return fmt.Errorf("create transaction: %w", err)
		}

		rows := make([]model.Item, 0, len(items))
		for _, in := range items {
			rows = append(rows, model.Item{
				Name:          in.Name,
				Price:         in.Price,
				CategoryName:  in.CategoryName,
				TransactionID: txn.ID,
			})
		}
		if err := repos.Items.CreateBatch(ctx, rows); err != nil {
			return fmt.Errorf("create items: %w", err)
		}

		txn.Items = rows
		created = txn
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Invalidate cached user, the budget changed
	_ = s.cache.Delete(ctx, userCacheKey(userID))

	return created, nil
}

// GetTransaction returns a transaction with its items.
func (s *ledgerService) GetTransaction(ctx context.Context, id uuid.UUID) (*model.Transaction, error) {
	txn, err := s.repos.Transactions.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, err
	}
	return txn, nil
}

// DeleteAllTransactions wipes every transaction together with its items.
// Items never exist outside a transaction, so they go in the same unit of
// work. Deleting zero rows succeeds.
func (s *ledgerService) DeleteAllTransactions(ctx context.Context) error {
	return s.uow.Do(ctx, func(ctx context.Context, repos repository.Repos) error {
		if err := repos.Items.DeleteAll(ctx); err != nil {
			return fmt.Errorf("delete items: %w", err)
		}
		if err := repos.Transactions.DeleteAll(ctx); err != nil {
			return fmt.Errorf("delete transactions: %w", err)
		}
		return nil
	})
}

// UpdateItemPrice changes an item's price and propagates the delta to the
// owning transaction's amount and the owning user's budget, atomically.
func (s *ledgerService) UpdateItemPrice(ctx context.Context, itemID uuid.UUID, newPrice decimal.Decimal) error {
	var ownerID uuid.UUID
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repos) error {
		item, err := repos.Items.FindByID(ctx, itemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrItemNotFound
			}
			return fmt.Errorf("find item: %w", err)
		}

		priceDifference := newPrice.Sub(item.Price)

		if err := repos.Items.UpdatePrice(ctx, itemID, newPrice); err != nil {
			return fmt.Errorf("update item price: %w", err)
		}

		txn, err := repos.Transactions.FindByID(ctx, item.TransactionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrTransactionNotFound
			}
			return fmt.Errorf("find transaction: %w", err)
		}
		if err := repos.Transactions.UpdateAmount(ctx, txn.ID, txn.Amount.Add(priceDifference)); err != nil {
			return fmt.Errorf("update transaction amount: %w", err)
		}

		user, err := repos.Users.FindByIDForUpdate(ctx, txn.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrUserNotFound
			}
			return fmt.Errorf("find user: %w", err)
		}
		// Budget moves inversely to the price change.
		if err := repos.Users.UpdateBudget(ctx, user.ID, user.Budget.Sub(priceDifference)); err != nil {
			return fmt.Errorf("update budget: %w", err)
		}

		ownerID = user.ID
		return nil
	})
	if err != nil {
		return err
	}

	_ = s.cache.Delete(ctx, userCacheKey(ownerID))

	return nil
}

// ListItems returns all items.
func (s *ledgerService) ListItems(ctx context.Context) ([]model.Item, error) {
	return s.repos.Items.List(ctx)
}

// FilterItems returns items priced at or above minPrice, ascending by price.
func (s *ledgerService) FilterItems(ctx context.Context, minPrice decimal.Decimal) ([]model.Item, error) {
	return s.repos.Items.ListByMinPrice(ctx, minPrice)
}

// DeleteAllItems wipes every item. Deleting zero rows succeeds.
func (s *ledgerService) DeleteAllItems(ctx context.Context) error {
	return s.repos.Items.DeleteAll(ctx)
}

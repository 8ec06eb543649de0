package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"spendtrack/internal/cache"
	apperrors "spendtrack/internal/errors"
	"spendtrack/internal/model"
	"spendtrack/internal/repository"
)

func newLedgerFixture() (LedgerService, *MockUserRepository, *MockTransactionRepository, *MockItemRepository) {
	userRepo := new(MockUserRepository)
	txnRepo := new(MockTransactionRepository)
	itemRepo := new(MockItemRepository)
	repos := repository.Repos{
		Users:        userRepo,
		Transactions: txnRepo,
		Items:        itemRepo,
	}
	svc := NewLedgerService(repos, &mockUnitOfWork{repos: repos}, (*cache.Client)(nil))
	return svc, userRepo, txnRepo, itemRepo
}

func TestLedgerService_CreateTransaction(t *testing.T) {
	userID := uuid.New()
	items := []ItemInput{
		{Name: "Coke", Price: decimal.NewFromInt(10), CategoryName: "Drinks"},
		{Name: "Pizza", Price: decimal.NewFromInt(35), CategoryName: "Food"},
	}

	t.Run("deducts the amount spent and creates the transaction with its items", func(t *testing.T) {
		svc, userRepo, txnRepo, itemRepo := newLedgerFixture()

		userRepo.On("FindByIDForUpdate", mock.Anything, userID).Return(&model.User{
			ID:     userID,
			Budget: decimal.NewFromInt(100),
		}, nil)
		userRepo.On("UpdateBudget", mock.Anything, userID, decimalEq(decimal.NewFromInt(55))).Return(nil)

		var txnID uuid.UUID
		txnRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Transaction")).
			Run(func(args mock.Arguments) {
				txn := args.Get(1).(*model.Transaction)
				txn.ID = uuid.New()
				txnID = txn.ID
			}).Return(nil)
		itemRepo.On("CreateBatch", mock.Anything, mock.AnythingOfType("[]model.Item")).Return(nil)

		created, err := svc.CreateTransaction(context.Background(), userID, items)

		assert.NoError(t, err)
		assert.NotNil(t, created)
		assert.True(t, created.Amount.Equal(decimal.NewFromInt(45)))
		assert.Equal(t, userID, created.UserID)
		assert.Len(t, created.Items, 2)
		for _, item := range created.Items {
			assert.Equal(t, txnID, item.TransactionID)
		}

		userRepo.AssertExpectations(t)
		txnRepo.AssertExpectations(t)
		itemRepo.AssertExpectations(t)
	})

	t.Run("rejects the transaction when the budget is insufficient", func(t *testing.T) {
		svc, userRepo, txnRepo, itemRepo := newLedgerFixture()

		userRepo.On("FindByIDForUpdate", mock.Anything, userID).Return(&model.User{
			ID:     userID,
			Budget: decimal.NewFromInt(10),
		}, nil)

		created, err := svc.CreateTransaction(context.Background(), userID, items)

		assert.ErrorIs(t, err, apperrors.ErrInsufficientBudget)
		assert.Nil(t, created)
		userRepo.AssertNotCalled(t, "UpdateBudget", mock.Anything, mock.Anything, mock.Anything)
		txnRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		itemRepo.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
	})

	t.Run("fails with not found for an unknown user", func(t *testing.T) {
		svc, userRepo, _, _ := newLedgerFixture()

		userRepo.On("FindByIDForUpdate", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

		created, err := svc.CreateTransaction(context.Background(), userID, items)

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
		assert.Nil(t, created)
	})

	t.Run("allows spending the exact remaining budget", func(t *testing.T) {
		svc, userRepo, txnRepo, itemRepo := newLedgerFixture()

		userRepo.On("FindByIDForUpdate", mock.Anything, userID).Return(&model.User{
			ID:     userID,
			Budget: decimal.NewFromInt(45),
		}, nil)
		userRepo.On("UpdateBudget", mock.Anything, userID, decimalEq(decimal.Zero)).Return(nil)
		txnRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Transaction")).Return(nil)
		itemRepo.On("CreateBatch", mock.Anything, mock.AnythingOfType("[]model.Item")).Return(nil)

		_, err := svc.CreateTransaction(context.Background(), userID, items)

		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
	})
}

func TestLedgerService_UpdateItemPrice(t *testing.T) {
	userID := uuid.New()
	txnID := uuid.New()
	itemID := uuid.New()

	t.Run("propagates the price delta to the transaction and the budget", func(t *testing.T) {
		svc, userRepo, txnRepo, itemRepo := newLedgerFixture()

		itemRepo.On("FindByID", mock.Anything, itemID).Return(&model.Item{
			ID:            itemID,
			Price:         decimal.NewFromInt(10),
			TransactionID: txnID,
		}, nil)
		itemRepo.On("UpdatePrice", mock.Anything, itemID, decimalEq(decimal.NewFromInt(25))).Return(nil)
		txnRepo.On("FindByID", mock.Anything, txnID).Return(&model.Transaction{
			ID:     txnID,
			UserID: userID,
			Amount: decimal.NewFromInt(45),
		}, nil)
		// delta is +15: amount 45 -> 60, budget 55 -> 40
		txnRepo.On("UpdateAmount", mock.Anything, txnID, decimalEq(decimal.NewFromInt(60))).Return(nil)
		userRepo.On("FindByIDForUpdate", mock.Anything, userID).Return(&model.User{
			ID:     userID,
			Budget: decimal.NewFromInt(55),
		}, nil)
		userRepo.On("UpdateBudget", mock.Anything, userID, decimalEq(decimal.NewFromInt(40))).Return(nil)

		err := svc.UpdateItemPrice(context.Background(), itemID, decimal.NewFromInt(25))

		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
		txnRepo.AssertExpectations(t)
		itemRepo.AssertExpectations(t)
	})

	t.Run("a price cut gives budget back", func(t *testing.T) {
		svc, userRepo, txnRepo, itemRepo := newLedgerFixture()

		itemRepo.On("FindByID", mock.Anything, itemID).Return(&model.Item{
			ID:            itemID,
			Price:         decimal.NewFromInt(35),
			TransactionID: txnID,
		}, nil)
		itemRepo.On("UpdatePrice", mock.Anything, itemID, decimalEq(decimal.NewFromInt(20))).Return(nil)
		txnRepo.On("FindByID", mock.Anything, txnID).Return(&model.Transaction{
			ID:     txnID,
			UserID: userID,
			Amount: decimal.NewFromInt(45),
		}, nil)
		txnRepo.On("UpdateAmount", mock.Anything, txnID, decimalEq(decimal.NewFromInt(30))).Return(nil)
		userRepo.On("FindByIDForUpdate", mock.Anything, userID).Return(&model.User{
			ID:     userID,
			Budget: decimal.NewFromInt(55),
		}, nil)
		userRepo.On("UpdateBudget", mock.Anything, userID, decimalEq(decimal.NewFromInt(70))).Return(nil)

		err := svc.UpdateItemPrice(context.Background(), itemID, decimal.NewFromInt(20))

		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
	})

	t.Run("fails with not found for an unknown item", func(t *testing.T) {
		svc, _, _, itemRepo := newLedgerFixture()

		itemRepo.On("FindByID", mock.Anything, itemID).Return(nil, gorm.ErrRecordNotFound)

		err := svc.UpdateItemPrice(context.Background(), itemID, decimal.NewFromInt(25))

		assert.ErrorIs(t, err, apperrors.ErrItemNotFound)
	})

	t.Run("fails with not found when the owning user is gone", func(t *testing.T) {
		svc, userRepo, txnRepo, itemRepo := newLedgerFixture()

		itemRepo.On("FindByID", mock.Anything, itemID).Return(&model.Item{
			ID:            itemID,
			Price:         decimal.NewFromInt(10),
			TransactionID: txnID,
		}, nil)
		itemRepo.On("UpdatePrice", mock.Anything, itemID, mock.Anything).Return(nil)
		txnRepo.On("FindByID", mock.Anything, txnID).Return(&model.Transaction{
			ID:     txnID,
			UserID: userID,
			Amount: decimal.NewFromInt(45),
		}, nil)
		txnRepo.On("UpdateAmount", mock.Anything, txnID, mock.Anything).Return(nil)
		userRepo.On("FindByIDForUpdate", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

		err := svc.UpdateItemPrice(context.Background(), itemID, decimal.NewFromInt(25))

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestLedgerService_DeleteAllTransactions(t *testing.T) {
	svc, _, txnRepo, itemRepo := newLedgerFixture()

	itemRepo.On("DeleteAll", mock.Anything).Return(nil).Twice()
	txnRepo.On("DeleteAll", mock.Anything).Return(nil).Twice()

	// Deleting twice in a row succeeds both times.
	assert.NoError(t, svc.DeleteAllTransactions(context.Background()))
	assert.NoError(t, svc.DeleteAllTransactions(context.Background()))

	txnRepo.AssertExpectations(t)
	itemRepo.AssertExpectations(t)
}

func TestLedgerService_GetTransaction(t *testing.T) {
	svc, _, txnRepo, _ := newLedgerFixture()
	id := uuid.New()

	txnRepo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetTransaction(context.Background(), id)
	assert.ErrorIs(t, err, apperrors.ErrTransactionNotFound)
}

func TestLedgerService_FilterItems(t *testing.T) {
	svc, _, _, itemRepo := newLedgerFixture()
	min := decimal.NewFromInt(15)

	itemRepo.On("ListByMinPrice", mock.Anything, decimalEq(min)).Return([]model.Item{
		{Name: "Pizza", Price: decimal.NewFromInt(35)},
	}, nil)

	items, err := svc.FilterItems(context.Background(), min)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.True(t, items[0].Price.GreaterThanOrEqual(min))
}

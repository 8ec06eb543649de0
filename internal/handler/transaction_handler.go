package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"spendtrack/internal/errors"
	"spendtrack/internal/service"
)

// TransactionHandler handles transaction endpoints.
type TransactionHandler struct {
	ledgerService service.LedgerService
}

// NewTransactionHandler creates a new transaction handler.
func NewTransactionHandler(ledgerService service.LedgerService) *TransactionHandler {
	return &TransactionHandler{ledgerService: ledgerService}
}

// ItemPayload is a purchase line entry in a create-transaction request.
type ItemPayload struct {
	Name         string  `json:"name" validate:"required"`
	Price        float64 `json:"price"`
	CategoryName string  `json:"categoryName"`
}

// CreateTransactionRequest represents a create-transaction request.
type CreateTransactionRequest struct {
	UserID string        `json:"userId" validate:"required,uuid"`
	Items  []ItemPayload `json:"items" validate:"required,min=1,dive"`
}

// MessageResponse is a confirmation-only response.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreateTransaction godoc
// @Summary Create a new transaction
// @Description Create a new transaction for a user with the provided items. The sum of the item prices is checked against the user's budget and deducted from it.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body CreateTransactionRequest true "Transaction data"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /transaction/create-transaction [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Error: err.Error()})
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Error: "invalid userId"})
	}

	items := make([]service.ItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, service.ItemInput{
			Name:         it.Name,
			Price:        decimalFromFloat(it.Price),
			CategoryName: it.CategoryName,
		})
	}

	if _, err := h.ledgerService.CreateTransaction(c.Request().Context(), userID, items); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Transaction created successfully"})
}

// GetTransaction godoc
// @Summary Get a transaction by ID
// @Description Retrieve a transaction by its ID, including its items.
// @Tags transactions
// @Produce json
// @Param id query string true "Transaction ID"
// @Success 200 {object} model.Transaction
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /transaction [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.QueryParam("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Error: "invalid id"})
	}

	txn, err := h.ledgerService.GetTransaction(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, txn)
}

// DeleteAllTransactions godoc
// @Summary Delete all transactions
// @Description Deletes all transactions and their items. Deleting zero rows is not an error.
// @Tags transactions
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /transaction/delete-transactions [delete]
func (h *TransactionHandler) DeleteAllTransactions(c echo.Context) error {
	if err := h.ledgerService.DeleteAllTransactions(c.Request().Context()); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Transactions deleted successfully!"})
}

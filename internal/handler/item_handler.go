package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"spendtrack/internal/errors"
	"spendtrack/internal/service"
)

func decimalFromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// ItemHandler handles item endpoints.
type ItemHandler struct {
	ledgerService service.LedgerService
}

// NewItemHandler creates a new item handler.
func NewItemHandler(ledgerService service.LedgerService) *ItemHandler {
	return &ItemHandler{ledgerService: ledgerService}
}

// ListItems godoc
// @Summary Get all items
// @Description Retrieves all items from the database.
// @Tags items
// @Produce json
// @Success 200 {array} model.Item
// @Failure 500 {object} errors.ErrorResponse
// @Router /items [get]
func (h *ItemHandler) ListItems(c echo.Context) error {
	items, err := h.ledgerService.ListItems(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, items)
}

// FilterItems godoc
// @Summary Filter items by price
// @Description Retrieves items priced at or above the given value, sorted ascending by price.
// @Tags items
// @Produce json
// @Param price query string true "Minimum price, inclusive"
// @Success 200 {array} model.Item
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /items/filter-items [get]
func (h *ItemHandler) FilterItems(c echo.Context) error {
	minPrice, err := decimal.NewFromString(c.QueryParam("price"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Error: "invalid price"})
	}

	items, err := h.ledgerService.FilterItems(c.Request().Context(), minPrice)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, items)
}

// DeleteAllItems godoc
// @Summary Delete all items
// @Description Deletes all items from the database. Deleting zero rows is not an error.
// @Tags items
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /items/delete-items [delete]
func (h *ItemHandler) DeleteAllItems(c echo.Context) error {
	if err := h.ledgerService.DeleteAllItems(c.Request().Context()); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Items deleted successfully!"})
}

// UpdateItemPrice godoc
// @Summary Update item price
// @Description Updates the price of an item and adjusts the owning transaction's amount and the owning user's budget by the price difference.
// @Tags items
// @Produce json
// @Param itemId query string true "Item ID"
// @Param newPrice query string true "New price"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /items/update-item-price [put]
func (h *ItemHandler) UpdateItemPrice(c echo.Context) error {
	itemID, err := uuid.Parse(c.QueryParam("itemId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Error: "invalid itemId"})
	}
	newPrice, err := decimal.NewFromString(c.QueryParam("newPrice"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Error: "invalid newPrice"})
	}

	if err := h.ledgerService.UpdateItemPrice(c.Request().Context(), itemID, newPrice); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Item price updated successfully"})
}

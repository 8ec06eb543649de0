package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"spendtrack/internal/errors"
	"spendtrack/internal/service"
)

// GoalExpenseHandler handles goal expense endpoints.
type GoalExpenseHandler struct {
	goalService service.GoalExpenseService
}

// NewGoalExpenseHandler creates a new goal expense handler.
func NewGoalExpenseHandler(goalService service.GoalExpenseService) *GoalExpenseHandler {
	return &GoalExpenseHandler{goalService: goalService}
}

// AddGoalExpenseRequest represents a goal expense creation request. The id
// field is the owning user's ID.
type AddGoalExpenseRequest struct {
	ID            string  `json:"id" validate:"required,uuid"`
	DesiredAmount float64 `json:"desiredAmount"`
}

// UpdateGoalExpenseRequest represents a goal expense update request.
type UpdateGoalExpenseRequest struct {
	ID            string  `json:"id" validate:"required,uuid"`
	DesiredAmount float64 `json:"desiredAmount"`
}

// AddGoalExpense godoc
// @Summary Add a new goal expense for a user
// @Description Create a goal expense for the next 30 days associated with a user.
// @Tags goal-expenses
// @Accept json
// @Produce json
// @Param request body AddGoalExpenseRequest true "Goal expense data"
// @Success 200 {object} model.GoalExpense
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /goal-expenses/add [post]
func (h *GoalExpenseHandler) AddGoalExpense(c echo.Context) error {
	var req AddGoalExpenseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Error: err.Error()})
	}

	userID, err := uuid.Parse(req.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Error: "invalid id"})
	}

	goal, err := h.goalService.Create(c.Request().Context(), userID, decimalFromFloat(req.DesiredAmount))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, goal)
}

// ListGoalExpenses godoc
// @Summary Get all goal expenses
// @Description Retrieve a list of all goal expenses.
// @Tags goal-expenses
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.GoalExpense
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /goal-expenses [get]
func (h *GoalExpenseHandler) ListGoalExpenses(c echo.Context) error {
	goals, err := h.goalService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, goals)
}

// UpdateGoalExpense godoc
// @Summary Update a goal expense
// @Description Update the desired amount of an existing goal expense.
// @Tags goal-expenses
// @Accept json
// @Produce json
// @Param request body UpdateGoalExpenseRequest true "Goal expense update"
// @Success 200 {object} model.GoalExpense
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /goal-expenses/update [put]
func (h *GoalExpenseHandler) UpdateGoalExpense(c echo.Context) error {
	var req UpdateGoalExpenseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Error: err.Error()})
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Error: "invalid id"})
	}

	goal, err := h.goalService.UpdateAmount(c.Request().Context(), id, decimalFromFloat(req.DesiredAmount))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, goal)
}

// DeleteGoalExpense godoc
// @Summary Delete a goal expense
// @Description Delete a goal expense by its ID.
// @Tags goal-expenses
// @Produce json
// @Param id query string true "Goal expense ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /goal-expenses/delete [delete]
func (h *GoalExpenseHandler) DeleteGoalExpense(c echo.Context) error {
	id, err := uuid.Parse(c.QueryParam("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Error: "invalid id"})
	}

	if err := h.goalService.Delete(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Goal expense deleted successfully!"})
}

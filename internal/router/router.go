package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"spendtrack/internal/auth"
	"spendtrack/internal/handler"
)

// Register wires routes and middleware. Every endpoint tagged admin sits
// behind the JWT middleware plus the admin role check.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	userHandler *handler.UserHandler,
	transactionHandler *handler.TransactionHandler,
	itemHandler *handler.ItemHandler,
	goalHandler *handler.GoalExpenseHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/api-docs/*", echoSwagger.WrapHandler)

	adminOnly := []echo.MiddlewareFunc{auth.Middleware(jwtService), auth.RequireAdmin}

	// User routes
	users := e.Group("/users")
	users.POST("/signup", userHandler.Signup)
	users.POST("/signin", userHandler.SignIn)
	users.PUT("/update-password", userHandler.UpdatePassword)
	users.PUT("/add-budget", userHandler.AddBudget)
	users.GET("", userHandler.GetByEmail, adminOnly...)
	users.GET("/all-users", userHandler.ListUsers, adminOnly...)
	users.DELETE("/delete-user", userHandler.DeleteUser, adminOnly...)

	// Transaction routes
	transactions := e.Group("/transaction")
	transactions.POST("/create-transaction", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransaction)
	transactions.DELETE("/delete-transactions", transactionHandler.DeleteAllTransactions)

	// Item routes
	items := e.Group("/items")
	items.GET("", itemHandler.ListItems)
	items.GET("/filter-items", itemHandler.FilterItems)
	items.DELETE("/delete-items", itemHandler.DeleteAllItems)
	items.PUT("/update-item-price", itemHandler.UpdateItemPrice)

	// Goal expense routes
	goals := e.Group("/goal-expenses")
	goals.POST("/add", goalHandler.AddGoalExpense)
	goals.GET("", goalHandler.ListGoalExpenses, adminOnly...)
	goals.PUT("/update", goalHandler.UpdateGoalExpense)
	goals.DELETE("/delete", goalHandler.DeleteGoalExpense)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

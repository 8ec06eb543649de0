package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "spendtrack/docs" // swagger docs

	"spendtrack/internal/auth"
	"spendtrack/internal/cache"
	"spendtrack/internal/config"
	"spendtrack/internal/db"
	"spendtrack/internal/handler"
	"spendtrack/internal/model"
	"spendtrack/internal/repository"
	"spendtrack/internal/router"
	"spendtrack/internal/service"
)

// @title SpendTrack API
// @version 1.0
// @description Personal-finance tracking API with budgets, transactions, goal expenses, and JWT authentication.
// @host localhost:8080
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Item{},
			&model.Transaction{},
			&model.GoalExpense{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Transaction{},
		&model.Item{},
		&model.GoalExpense{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	repos := repository.New(gormDB)
	uow := repository.NewUnitOfWork(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	userService := service.NewUserService(repos.Users, jwtService, cacheClient)
	ledgerService := service.NewLedgerService(repos, uow, cacheClient)
	goalService := service.NewGoalExpenseService(repos.GoalExpenses, repos.Users)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	transactionHandler := handler.NewTransactionHandler(ledgerService)
	itemHandler := handler.NewItemHandler(ledgerService)
	goalHandler := handler.NewGoalExpenseHandler(goalService)

	// Register routes
	router.Register(
		e,
		jwtService,
		userHandler,
		transactionHandler,
		itemHandler,
		goalHandler,
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/api-docs/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/api-docs/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

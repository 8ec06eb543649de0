package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"spendtrack/internal/config"
	"spendtrack/internal/db"
	"spendtrack/internal/model"
	"spendtrack/internal/repository"
)

// SeedUserData is one demo user entry from the fixture file.
type SeedUserData struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Budget   string `json:"budget"`
}

var defaultUsers = []SeedUserData{
	{Email: "admin@spendtrack.local", Name: "Admin", Password: "admin-password", Role: "ADMIN", Budget: "0"},
	{Email: "a@b.com", Name: "A", Password: "password", Role: "REGULAR", Budget: "100"},
	{Email: "demo@spendtrack.local", Name: "Demo", Password: "demo-password", Role: "REGULAR", Budget: "250.50"},
}

func main() {
	log.Println("Starting seed script...")

	_ = godotenv.Load()
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	users := defaultUsers
	if cfg.SeedFile != "" {
		loaded, err := loadUsersFromFile(cfg.SeedFile)
		if err != nil {
			log.Fatalf("Failed to load seed file %s: %v", cfg.SeedFile, err)
		}
		users = loaded
		log.Printf("Loaded %d users from %s", len(users), cfg.SeedFile)
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)

	created, skipped := 0, 0
	for _, item := range users {
		budget, err := decimal.NewFromString(item.Budget)
		if err != nil {
			log.Printf("Skipping user %s with invalid budget: %s", item.Email, item.Budget)
			skipped++
			continue
		}

		if _, err := userRepo.FindByEmail(ctx, item.Email); err == nil {
			log.Printf("User %s already exists, skipping", item.Email)
			skipped++
			continue
		} else if err != gorm.ErrRecordNotFound {
			log.Fatalf("Failed to check user %s: %v", item.Email, err)
		}

		user := &model.User{
			Email:    item.Email,
			Name:     item.Name,
			Password: item.Password,
			Role:     model.Role(item.Role),
			Budget:   budget,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create user %s: %v", item.Email, err)
		}
		created++
	}

	log.Printf("Seed complete: %d created, %d skipped", created, skipped)
}

func loadUsersFromFile(path string) ([]SeedUserData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var users []SeedUserData
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, err
	}
	return users, nil
}

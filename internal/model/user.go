package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Role enumerates user roles.
type Role string

const (
	RoleRegular Role = "REGULAR"
	RoleAdmin   Role = "ADMIN"
)

const bcryptCost = 10

// User is the aggregate root owning transactions and goal expenses.
type User struct {
	ID           uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	Email        string          `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Name         string          `json:"name" gorm:"size:255;not null"`
	Password     string          `json:"-" gorm:"-"` // plaintext input, never persisted
	PasswordHash string          `json:"-" gorm:"size:255;not null"`
	Role         Role            `json:"role" gorm:"type:varchar(20);not null;default:'REGULAR'"`
	Budget       decimal.Decimal `json:"budget" gorm:"type:decimal(20,2);not null;default:0"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`

	// Relations
	Transactions []Transaction `json:"transactions,omitempty" gorm:"foreignKey:UserID"`
	GoalExpenses []GoalExpense `json:"goal_expenses,omitempty" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// BeforeSave hashes the transient Password field whenever it is set. Every
// write path that persists a User struct runs this hook, so no caller can
// store a plaintext password by skipping a hashing step.
func (u *User) BeforeSave(tx *gorm.DB) error {
	if u.Password == "" {
		return nil
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcryptCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashed)
	u.Password = ""
	return nil
}

// CheckPassword compares a plaintext password against the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

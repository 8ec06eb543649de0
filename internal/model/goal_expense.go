package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GoalExpense is a user-declared spending target for a 30-day window. There is
// no automatic expiry or rollover; each creation produces a new record.
type GoalExpense struct {
	ID            uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	UserID        uuid.UUID       `json:"user_id" gorm:"type:char(36);not null;index"`
	DesiredAmount decimal.Decimal `json:"desired_amount" gorm:"type:decimal(20,2);not null"`
	StartDate     time.Time       `json:"start_date" gorm:"not null"`
	EndDate       time.Time       `json:"end_date" gorm:"not null"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (g *GoalExpense) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

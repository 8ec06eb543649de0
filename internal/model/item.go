package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Item is a single purchased line entry. Items are always created as part of a
// transaction and never exist independently. CategoryName is a free-text label,
// not a reference to a category entity.
type Item struct {
	ID            uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	Name          string          `json:"name" gorm:"size:255;not null"`
	Price         decimal.Decimal `json:"price" gorm:"type:decimal(20,2);not null;index"`
	CategoryName  string          `json:"category_name" gorm:"size:255"`
	TransactionID uuid.UUID       `json:"transaction_id" gorm:"type:char(36);not null;index"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	// Relations
	Transaction Transaction `json:"-" gorm:"foreignKey:TransactionID"`
}

// BeforeCreate sets UUID before creating the record.
func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

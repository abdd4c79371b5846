package entities

import (
	"time"
)

// Tipos de transação do ledger. O amount é sempre positivo; o tipo indica a direção.
const (
	TransactionTypePurchase = "purchase"
	TransactionTypeUsage    = "usage"
)

// TokenTransaction é o registro append-only de créditos e débitos de tokens
type TokenTransaction struct {
	ID              int64     `json:"id" gorm:"primaryKey;column:id;type:int8"`
	UserID          int64     `json:"user_id" gorm:"column:user_id;type:int8;index"`
	Amount          int       `json:"amount" gorm:"column:amount;check:amount > 0"`
	TransactionType string    `json:"transaction_type" gorm:"column:transaction_type"`
	Description     string    `json:"description" gorm:"column:description"`
	CreatedAt       time.Time `json:"created_at" gorm:"column:created_at"`
}

func (TokenTransaction) TableName() string {
	return "tokens"
}

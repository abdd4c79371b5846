package entities

import (
	"time"
)

// User representa um usuário da plataforma e seu saldo de tokens
type User struct {
	ID               int64     `json:"id" gorm:"primaryKey;column:id;type:int8"`
	Auth0ID          string    `json:"auth0_id" gorm:"column:auth0_id;uniqueIndex"`
	Email            string    `json:"email" gorm:"column:email;uniqueIndex"`
	PasswordHash     string    `json:"-" gorm:"column:password_hash"`
	TokensRemaining  int       `json:"tokens_remaining" gorm:"column:tokens_remaining;default:0"`
	SubscriptionTier string    `json:"subscription_tier" gorm:"column:subscription_tier;default:free"`
	CreatedAt        time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt        time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (User) TableName() string {
	return "users"
}

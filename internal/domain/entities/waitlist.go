package entities

import (
	"time"
)

// WaitlistEntry representa um e-mail capturado na lista de espera
type WaitlistEntry struct {
	ID        int64     `json:"id" gorm:"primaryKey;column:id;type:int8"`
	Email     string    `json:"email" gorm:"column:email;uniqueIndex"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
}

func (WaitlistEntry) TableName() string {
	return "waitlist"
}

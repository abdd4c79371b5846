package entities

import (
	"time"

	"gorm.io/datatypes"
)

// Audience representa uma definição de público-alvo e sua amostra realizada.
// CurrentSize é derivado (COUNT de membros) e nunca persiste.
type Audience struct {
	ID           int64          `json:"id" gorm:"primaryKey;column:id;type:int8"`
	UserID       int64          `json:"user_id" gorm:"column:user_id;type:int8;index;uniqueIndex:idx_audiences_user_name"`
	Name         string         `json:"name" gorm:"column:name;uniqueIndex:idx_audiences_user_name"`
	Description  string         `json:"description" gorm:"column:description"`
	Size         int            `json:"size" gorm:"column:size;check:size > 0"`
	Demographics datatypes.JSON `json:"demographics" gorm:"column:demographics;type:jsonb"`
	CreatedAt    time.Time      `json:"created_at" gorm:"column:created_at"`
	UpdatedAt    time.Time      `json:"updated_at" gorm:"column:updated_at"`

	CurrentSize int64 `json:"current_size" gorm:"column:current_size;->;-:migration"`
}

func (Audience) TableName() string {
	return "audiences"
}

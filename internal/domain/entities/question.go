package entities

import (
	"time"

	"gorm.io/datatypes"
)

// Tipos de pergunta suportados. Options é obrigatório para multiple_choice.
const (
	QuestionTypeMultipleChoice = "multiple_choice"
	QuestionTypeOpenEnded      = "open_ended"
	QuestionTypeScale          = "scale"
)

// Question representa uma pergunta reutilizável de um usuário
type Question struct {
	ID           int64          `json:"id" gorm:"primaryKey;column:id;type:int8"`
	UserID       int64          `json:"user_id" gorm:"column:user_id;type:int8;index"`
	Title        string         `json:"title" gorm:"column:title"`
	Description  string         `json:"description" gorm:"column:description"`
	QuestionType string         `json:"question_type" gorm:"column:question_type"`
	Options      datatypes.JSON `json:"options,omitempty" gorm:"column:options;type:jsonb"`
	CreatedAt    time.Time      `json:"created_at" gorm:"column:created_at"`
	UpdatedAt    time.Time      `json:"updated_at" gorm:"column:updated_at"`
}

func (Question) TableName() string {
	return "questions"
}

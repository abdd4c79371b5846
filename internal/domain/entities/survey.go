package entities

import (
	"time"

	"github.com/lib/pq"
)

// Estados do ciclo de vida de uma pesquisa. Perguntas só podem ser
// editadas enquanto status = draft.
const (
	SurveyStatusDraft     = "draft"
	SurveyStatusActive    = "active"
	SurveyStatusCompleted = "completed"
)

// Survey representa uma pesquisa no sistema
type Survey struct {
	ID          int64      `json:"id" gorm:"primaryKey;column:id;type:int8"`
	UserID      int64      `json:"user_id" gorm:"column:user_id;type:int8;index"`
	AudienceID  int64      `json:"audience_id" gorm:"column:audience_id;type:int8"`
	Title       string     `json:"title" gorm:"column:title"`
	Description string     `json:"description" gorm:"column:description"`
	Status      string     `json:"status" gorm:"column:status;default:draft"`
	TokenCost   int        `json:"token_cost" gorm:"column:token_cost;check:token_cost > 0"`
	CreatedAt   time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"column:updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty" gorm:"column:completed_at"`

	// Preenchido pela listagem via array_agg; nunca persiste.
	QuestionIDs pq.Int64Array `json:"question_ids" gorm:"column:question_ids;type:int8[];->;-:migration"`

	// Relações
	Questions []SurveyQuestion `json:"questions,omitempty" gorm:"foreignKey:SurveyID"`
}

func (Survey) TableName() string {
	return "surveys"
}

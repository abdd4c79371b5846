package entities

// SurveyQuestion é o vínculo ordenado entre pesquisa e pergunta.
// O par (survey_id, question_id) é único; order_number define a ordem de
// renderização e não precisa ser contíguo.
type SurveyQuestion struct {
	SurveyID    int64 `json:"survey_id" gorm:"primaryKey;column:survey_id;type:int8"`
	QuestionID  int64 `json:"question_id" gorm:"primaryKey;column:question_id;type:int8"`
	OrderNumber int   `json:"order_number" gorm:"column:order_number"`

	// Relações
	Question Question `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
}

func (SurveyQuestion) TableName() string {
	return "survey_questions"
}

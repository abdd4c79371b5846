package entities

import (
	"time"

	"gorm.io/datatypes"
)

// Result representa uma resposta sintética coletada para uma pesquisa
type Result struct {
	ID                     int64          `json:"id" gorm:"primaryKey;column:id;type:int8"`
	SurveyID               int64          `json:"survey_id" gorm:"column:survey_id;type:int8;index"`
	ResponseData           datatypes.JSON `json:"response_data" gorm:"column:response_data;type:jsonb;not null"`
	RespondentDemographics datatypes.JSON `json:"respondent_demographics,omitempty" gorm:"column:respondent_demographics;type:jsonb"`
	ValidationScore        *float64       `json:"validation_score,omitempty" gorm:"column:validation_score"`
	CreatedAt              time.Time      `json:"created_at" gorm:"column:created_at"`
}

func (Result) TableName() string {
	return "results"
}

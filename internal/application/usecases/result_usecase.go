package usecases

import (
	"encoding/json"

	"github.com/synth-sarmi/synthsurvey-back/internal/domain/entities"
	"github.com/synth-sarmi/synthsurvey-back/internal/domain/errs"
	"github.com/synth-sarmi/synthsurvey-back/internal/domain/repositories"
)

// AppendResultInput é uma resposta sintética entregue pelo gerador.
type AppendResultInput struct {
	ResponseData           map[string]any `json:"response_data"`
	RespondentDemographics map[string]any `json:"respondent_demographics"`
	ValidationScore        *float64       `json:"validation_score"`
}

// ResultUseCase é o caminho de leitura das respostas, sempre restrito ao
// dono da pesquisa.
type ResultUseCase struct {
	results repositories.IResultRepository
	surveys repositories.ISurveyRepository
	users   repositories.IUserRepository
}

func NewResultUseCase(
	results repositories.IResultRepository,
	surveys repositories.ISurveyRepository,
	users repositories.IUserRepository,
) *ResultUseCase {
	return &ResultUseCase{
		results: results,
		surveys: surveys,
		users:   users,
	}
}

// List devolve as respostas da pesquisa, mais recente primeiro.
func (u *ResultUseCase) List(authID string, surveyID int64) ([]entities.Result, error) {
	user, err := u.users.FindByAuthID(authID)
	if err != nil {
		return nil, err
	}
	if _, err := u.surveys.FindOwned(surveyID, user.ID); err != nil {
		return nil, err
	}
	return u.results.FindBySurvey(surveyID)
}

// Summary devolve o agregado das respostas; zero respostas produz o resumo
// zerado em vez de erro.
func (u *ResultUseCase) Summary(authID string, surveyID int64) (*entities.SurveySummary, error) {
	user, err := u.users.FindByAuthID(authID)
	if err != nil {
		return nil, err
	}
	if _, err := u.surveys.FindOwned(surveyID, user.ID); err != nil {
		return nil, err
	}
	return u.results.Summarize(surveyID)
}

// Append insere uma resposta na pesquisa do chamador.
func (u *ResultUseCase) Append(authID string, surveyID int64, input AppendResultInput) (*entities.Result, error) {
	if len(input.ResponseData) == 0 {
		return nil, errs.NewInvalidInput("Response data is required")
	}

	user, err := u.users.FindByAuthID(authID)
	if err != nil {
		return nil, err
	}
	if _, err := u.surveys.FindOwned(surveyID, user.ID); err != nil {
		return nil, err
	}

	responseData, err := json.Marshal(input.ResponseData)
	if err != nil {
		return nil, errs.NewInvalidInput("Invalid response data")
	}
	result := &entities.Result{
		SurveyID:        surveyID,
		ResponseData:    responseData,
		ValidationScore: input.ValidationScore,
	}
	if len(input.RespondentDemographics) > 0 {
		demo, err := json.Marshal(input.RespondentDemographics)
		if err != nil {
			return nil, errs.NewInvalidInput("Invalid respondent demographics")
		}
		result.RespondentDemographics = demo
	}

	if err := u.results.Append(result); err != nil {
		return nil, err
	}
	return result, nil
}

package usecases

import (
	"strings"

	"github.com/synth-sarmi/synthsurvey-back/internal/domain/entities"
	"github.com/synth-sarmi/synthsurvey-back/internal/domain/errs"
	"github.com/synth-sarmi/synthsurvey-back/internal/domain/repositories"
)

// CreateSurveyInput é a definição de uma nova pesquisa. QuestionIDs, quando
// presente, estabelece a ordem inicial das perguntas (posição na lista).
type CreateSurveyInput struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	AudienceID  int64   `json:"audience_id"`
	QuestionIDs []int64 `json:"question_ids"`
	TokenCost   int     `json:"token_cost"`
}

// SurveyUseCase orquestra o ciclo de vida da pesquisa: criação cobrada em
// tokens, edição da lista ordenada de perguntas enquanto draft e as
// transições de estado disparadas externamente.
type SurveyUseCase struct {
	surveys   repositories.ISurveyRepository
	audiences repositories.IAudienceRepository
	questions repositories.IQuestionRepository
	users     repositories.IUserRepository
}

func NewSurveyUseCase(
	surveys repositories.ISurveyRepository,
	audiences repositories.IAudienceRepository,
	questions repositories.IQuestionRepository,
	users repositories.IUserRepository,
) *SurveyUseCase {
	return &SurveyUseCase{
		surveys:   surveys,
		audiences: audiences,
		questions: questions,
		users:     users,
	}
}

// Create valida posse do público e cria a pesquisa debitando o custo na
// mesma transação; se o débito falhar a pesquisa não persiste.
func (u *SurveyUseCase) Create(authID string, input CreateSurveyInput) (*entities.Survey, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, errs.NewInvalidInput("Title is required")
	}
	if input.TokenCost <= 0 {
		return nil, errs.NewInvalidInput("Token cost must be positive")
	}
	if input.AudienceID <= 0 {
		return nil, errs.NewInvalidInput("Audience is required")
	}
	seen := make(map[int64]struct{}, len(input.QuestionIDs))
	for _, id := range input.QuestionIDs {
		if _, dup := seen[id]; dup {
			return nil, errs.NewInvalidInput("Duplicate question in list")
		}
		seen[id] = struct{}{}
	}

	user, err := u.users.FindByAuthID(authID)
	if err != nil {
		return nil, err
	}
	if _, err := u.audiences.FindOwned(input.AudienceID, user.ID); err != nil {
		return nil, err
	}

	survey := &entities.Survey{
		UserID:      user.ID,
		AudienceID:  input.AudienceID,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Status:      entities.SurveyStatusDraft,
		TokenCost:   input.TokenCost,
	}
	if err := u.surveys.CreateWithDebit(survey, input.QuestionIDs); err != nil {
		return nil, err
	}
	return survey, nil
}

func (u *SurveyUseCase) List(authID string) ([]entities.Survey, error) {
	user, err := u.users.FindByAuthID(authID)
	if err != nil {
		return nil, err
	}
	return u.surveys.FindByUser(user.ID)
}

// Get devolve a pesquisa com suas perguntas em ordem de renderização.
func (u *SurveyUseCase) Get(authID string, surveyID int64) (*entities.Survey, []repositories.OrderedQuestion, error) {
	user, err := u.users.FindByAuthID(authID)
	if err != nil {
		return nil, nil, err
	}
	survey, err := u.surveys.FindOwned(surveyID, user.ID)
	if err != nil {
		return nil, nil, err
	}
	questions, err := u.surveys.QuestionsOrdered(surveyID)
	if err != nil {
		return nil, nil, err
	}
	return survey, questions, nil
}

// Attach vincula a pergunta na posição pedida. Se o par já existir, apenas
// o order_number é sobrescrito. Exige pesquisa própria e em draft.
func (u *SurveyUseCase) Attach(authID string, surveyID, questionID int64, orderNumber int) error {
	user, err := u.users.FindByAuthID(authID)
	if err != nil {
		return err
	}
	survey, err := u.surveys.FindOwned(surveyID, user.ID)
	if err != nil {
		return err
	}
	if survey.Status != entities.SurveyStatusDraft {
		return errs.NewForbidden("Survey is not in draft status")
	}
	if _, err := u.questions.FindOwned(questionID, user.ID); err != nil {
		return err
	}
	return u.surveys.AttachQuestion(surveyID, questionID, orderNumber)
}

// Detach remove o vínculo; remover um par inexistente é no-op.
func (u *SurveyUseCase) Detach(authID string, surveyID, questionID int64) error {
	user, err := u.users.FindByAuthID(authID)
	if err != nil {
		return err
	}
	survey, err := u.surveys.FindOwned(surveyID, user.ID)
	if err != nil {
		return err
	}
	if survey.Status != entities.SurveyStatusDraft {
		return errs.NewForbidden("Survey is not in draft status")
	}
	return u.surveys.DetachQuestion(surveyID, questionID)
}

// Questions lista as perguntas vinculadas em ordem ascendente de order_number.
func (u *SurveyUseCase) Questions(authID string, surveyID int64) ([]repositories.OrderedQuestion, error) {
	user, err := u.users.FindByAuthID(authID)
	if err != nil {
		return nil, err
	}
	if _, err := u.surveys.FindOwned(surveyID, user.ID); err != nil {
		return nil, err
	}
	return u.surveys.QuestionsOrdered(surveyID)
}

// Transições válidas: o gatilho externo só pode publicar um draft ou
// concluir uma pesquisa ativa.
var statusTransitions = map[string]string{
	entities.SurveyStatusActive:    entities.SurveyStatusDraft,
	entities.SurveyStatusCompleted: entities.SurveyStatusActive,
}

// UpdateStatus aplica publish/complete e devolve a pesquisa atualizada.
func (u *SurveyUseCase) UpdateStatus(authID string, surveyID int64, target string) (*entities.Survey, error) {
	from, ok := statusTransitions[target]
	if !ok {
		return nil, errs.NewInvalidInput("Invalid target status")
	}

	user, err := u.users.FindByAuthID(authID)
	if err != nil {
		return nil, err
	}
	if err := u.surveys.UpdateStatus(surveyID, user.ID, from, target); err != nil {
		return nil, err
	}
	return u.surveys.FindOwned(surveyID, user.ID)
}

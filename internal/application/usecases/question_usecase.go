package usecases

import (
	"encoding/json"
	"strings"

	"github.com/synth-sarmi/synthsurvey-back/internal/domain/entities"
	"github.com/synth-sarmi/synthsurvey-back/internal/domain/errs"
	"github.com/synth-sarmi/synthsurvey-back/internal/domain/repositories"
)

// CreateQuestionInput é a definição de uma nova pergunta reutilizável.
type CreateQuestionInput struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	QuestionType string   `json:"question_type"`
	Options      []string `json:"options"`
}

var validQuestionTypes = map[string]bool{
	entities.QuestionTypeMultipleChoice: true,
	entities.QuestionTypeOpenEnded:      true,
	entities.QuestionTypeScale:          true,
}

type QuestionUseCase struct {
	questions repositories.IQuestionRepository
	users     repositories.IUserRepository
}

func NewQuestionUseCase(questions repositories.IQuestionRepository, users repositories.IUserRepository) *QuestionUseCase {
	return &QuestionUseCase{
		questions: questions,
		users:     users,
	}
}

// Create valida o tipo e as opções da pergunta antes de persistir.
// multiple_choice exige opções; os demais tipos podem omiti-las.
func (u *QuestionUseCase) Create(authID string, input CreateQuestionInput) (*entities.Question, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, errs.NewInvalidInput("Title is required")
	}
	if !validQuestionTypes[input.QuestionType] {
		return nil, errs.NewInvalidInput("Invalid question type")
	}
	if input.QuestionType == entities.QuestionTypeMultipleChoice && len(input.Options) == 0 {
		return nil, errs.NewInvalidInput("Options are required for multiple_choice questions")
	}

	user, err := u.users.FindByAuthID(authID)
	if err != nil {
		return nil, err
	}

	question := &entities.Question{
		UserID:       user.ID,
		Title:        strings.TrimSpace(input.Title),
		Description:  input.Description,
		QuestionType: input.QuestionType,
	}
	if len(input.Options) > 0 {
		options, err := json.Marshal(input.Options)
		if err != nil {
			return nil, errs.NewInvalidInput("Invalid options")
		}
		question.Options = options
	}

	if err := u.questions.Create(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (u *QuestionUseCase) List(authID string) ([]entities.Question, error) {
	user, err := u.users.FindByAuthID(authID)
	if err != nil {
		return nil, err
	}
	return u.questions.FindByUser(user.ID)
}

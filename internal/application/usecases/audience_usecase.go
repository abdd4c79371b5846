package usecases

import (
	"encoding/json"
	"strings"

	"github.com/synth-sarmi/synthsurvey-back/internal/domain/demographics"
	"github.com/synth-sarmi/synthsurvey-back/internal/domain/entities"
	"github.com/synth-sarmi/synthsurvey-back/internal/domain/errs"
	"github.com/synth-sarmi/synthsurvey-back/internal/domain/repositories"
)

// CreateAudienceInput é a especificação de um novo público-alvo.
type CreateAudienceInput struct {
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Size         int            `json:"size"`
	Demographics map[string]any `json:"demographics"`
}

// AudienceUseCase orquestra a compilação do filtro demográfico e a criação
// atômica do público com sua amostra.
type AudienceUseCase struct {
	audiences repositories.IAudienceRepository
	users     repositories.IUserRepository
}

func NewAudienceUseCase(audiences repositories.IAudienceRepository, users repositories.IUserRepository) *AudienceUseCase {
	return &AudienceUseCase{
		audiences: audiences,
		users:     users,
	}
}

// Create compila o filtro, cria o público e materializa a amostra em uma
// transação. Devolve também os avisos de compilação (restrições malformadas
// degradam para "sem restrição" em vez de falhar a requisição).
func (u *AudienceUseCase) Create(authID string, input CreateAudienceInput) (*entities.Audience, []string, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, nil, errs.NewInvalidInput("Name is required")
	}
	if input.Size <= 0 {
		return nil, nil, errs.NewInvalidInput("Size must be positive")
	}

	user, err := u.users.FindByAuthID(authID)
	if err != nil {
		return nil, nil, err
	}

	if input.Demographics == nil {
		input.Demographics = map[string]any{}
	}
	filter := demographics.Compile(input.Demographics)

	spec, err := json.Marshal(input.Demographics)
	if err != nil {
		return nil, nil, errs.NewInvalidInput("Invalid demographics")
	}

	audience := &entities.Audience{
		UserID:       user.ID,
		Name:         strings.TrimSpace(input.Name),
		Description:  input.Description,
		Size:         input.Size,
		Demographics: spec,
	}
	if err := u.audiences.CreateWithMembers(audience, filter); err != nil {
		return nil, nil, err
	}
	return audience, filter.Warnings, nil
}

func (u *AudienceUseCase) List(authID string) ([]entities.Audience, error) {
	user, err := u.users.FindByAuthID(authID)
	if err != nil {
		return nil, err
	}
	return u.audiences.FindByUser(user.ID)
}

// Members lista os snapshots do público depois de confirmar a posse.
func (u *AudienceUseCase) Members(authID string, audienceID int64) ([]entities.AudienceMember, error) {
	user, err := u.users.FindByAuthID(authID)
	if err != nil {
		return nil, err
	}
	if _, err := u.audiences.FindOwned(audienceID, user.ID); err != nil {
		return nil, err
	}
	return u.audiences.MembersOf(audienceID)
}

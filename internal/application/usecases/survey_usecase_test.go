package usecases

import (
	"testing"

	"github.com/synth-sarmi/synthsurvey-back/internal/domain/entities"
	"github.com/synth-sarmi/synthsurvey-back/internal/domain/errs"
)

// surveyFixture semeia usuário, público e perguntas para os testes de pesquisa.
type surveyFixture struct {
	*fixture
	uc        *SurveyUseCase
	user      entities.User
	audience  entities.Audience
	questions []entities.Question
}

func newSurveyFixture(t *testing.T, balance int) *surveyFixture {
	t.Helper()
	f := newFixture()
	user := f.core.addUser("auth-1", "ana@example.com", balance)
	audience := f.core.addAudience(user.ID, "target", 10)
	questions := []entities.Question{
		f.core.addQuestion(user.ID, "Q1", entities.QuestionTypeOpenEnded),
		f.core.addQuestion(user.ID, "Q2", entities.QuestionTypeOpenEnded),
		f.core.addQuestion(user.ID, "Q3", entities.QuestionTypeOpenEnded),
	}
	return &surveyFixture{
		fixture:   f,
		uc:        NewSurveyUseCase(f.surveys, f.audiences, f.questions, f.users),
		user:      user,
		audience:  audience,
		questions: questions,
	}
}

func (sf *surveyFixture) create(t *testing.T, cost int, questionIDs ...int64) *entities.Survey {
	t.Helper()
	survey, err := sf.uc.Create("auth-1", CreateSurveyInput{
		Title:       "brand study",
		AudienceID:  sf.audience.ID,
		QuestionIDs: questionIDs,
		TokenCost:   cost,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	return survey
}

// Exemplo do contrato: saldo 100, custo 100 → saldo 0 e pesquisa em draft;
// a segunda pesquisa de custo 1 falha e não persiste.
func TestCreateSurveyDebitsExactBalance(t *testing.T) {
	sf := newSurveyFixture(t, 100)

	survey := sf.create(t, 100)
	if survey.Status != entities.SurveyStatusDraft {
		t.Errorf("Status = %q, want draft", survey.Status)
	}
	if got := sf.core.balance(sf.user.ID); got != 0 {
		t.Errorf("balance = %d, want 0", got)
	}

	_, err := sf.uc.Create("auth-1", CreateSurveyInput{
		Title:      "one token too far",
		AudienceID: sf.audience.ID,
		TokenCost:  1,
	})
	assertCode(t, err, errs.CodeInsufficientBalance)

	surveys, err := sf.uc.List("auth-1")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(surveys) != 1 {
		t.Errorf("len(surveys) = %d, want 1 (failed survey must not persist)", len(surveys))
	}
}

// A lista inicial de perguntas entra com order_number igual à posição.
func TestCreateSurveyInitialQuestionOrder(t *testing.T) {
	sf := newSurveyFixture(t, 100)
	q := sf.questions

	survey := sf.create(t, 10, q[2].ID, q[0].ID, q[1].ID)

	ordered, err := sf.uc.Questions("auth-1", survey.ID)
	if err != nil {
		t.Fatalf("Questions() error = %v", err)
	}
	if len(ordered) != 3 {
		t.Fatalf("len(ordered) = %d, want 3", len(ordered))
	}
	wantIDs := []int64{q[2].ID, q[0].ID, q[1].ID}
	for i, oq := range ordered {
		if oq.ID != wantIDs[i] {
			t.Errorf("position %d: question = %d, want %d", i, oq.ID, wantIDs[i])
		}
		if oq.OrderNumber != i {
			t.Errorf("position %d: order_number = %d, want %d", i, oq.OrderNumber, i)
		}
	}
}

func TestCreateSurveyValidation(t *testing.T) {
	sf := newSurveyFixture(t, 100)

	tests := []struct {
		name  string
		input CreateSurveyInput
		want  errs.Code
	}{
		{"empty title", CreateSurveyInput{Title: " ", AudienceID: sf.audience.ID, TokenCost: 1}, errs.CodeInvalidInput},
		{"zero cost", CreateSurveyInput{Title: "t", AudienceID: sf.audience.ID, TokenCost: 0}, errs.CodeInvalidInput},
		{"negative cost", CreateSurveyInput{Title: "t", AudienceID: sf.audience.ID, TokenCost: -5}, errs.CodeInvalidInput},
		{"missing audience", CreateSurveyInput{Title: "t", TokenCost: 1}, errs.CodeInvalidInput},
		{"foreign audience", CreateSurveyInput{Title: "t", AudienceID: sf.audience.ID + 999, TokenCost: 1}, errs.CodeNotFound},
		{"duplicate question", CreateSurveyInput{Title: "t", AudienceID: sf.audience.ID, TokenCost: 1,
			QuestionIDs: []int64{sf.questions[0].ID, sf.questions[0].ID}}, errs.CodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sf.uc.Create("auth-1", tt.input)
			assertCode(t, err, tt.want)
		})
	}

	if got := sf.core.balance(sf.user.ID); got != 100 {
		t.Errorf("balance = %d, want 100 (no failed creation may debit)", got)
	}
}

// Pergunta desconhecida na criação desfaz tudo: nem pesquisa nem débito.
func TestCreateSurveyUnknownQuestionRollsBack(t *testing.T) {
	sf := newSurveyFixture(t, 100)

	_, err := sf.uc.Create("auth-1", CreateSurveyInput{
		Title:       "broken",
		AudienceID:  sf.audience.ID,
		QuestionIDs: []int64{99999},
		TokenCost:   40,
	})
	assertCode(t, err, errs.CodeNotFound)

	if got := sf.core.balance(sf.user.ID); got != 100 {
		t.Errorf("balance = %d, want 100 (debit must roll back)", got)
	}
	surveys, _ := sf.uc.List("auth-1")
	if len(surveys) != 0 {
		t.Errorf("len(surveys) = %d, want 0", len(surveys))
	}
}

// Anexar o mesmo par duas vezes sobrescreve o order_number; nunca duplica.
func TestAttachQuestionUpsertsOrder(t *testing.T) {
	sf := newSurveyFixture(t, 100)
	survey := sf.create(t, 10)
	q := sf.questions[0]

	if err := sf.uc.Attach("auth-1", survey.ID, q.ID, 3); err != nil {
		t.Fatalf("Attach() error = %v", err)
	}
	if err := sf.uc.Attach("auth-1", survey.ID, q.ID, 7); err != nil {
		t.Fatalf("Attach() again error = %v", err)
	}

	ordered, err := sf.uc.Questions("auth-1", survey.ID)
	if err != nil {
		t.Fatalf("Questions() error = %v", err)
	}
	if len(ordered) != 1 {
		t.Fatalf("len(ordered) = %d, want 1 (pair must stay unique)", len(ordered))
	}
	if ordered[0].OrderNumber != 7 {
		t.Errorf("order_number = %d, want 7 (latest wins)", ordered[0].OrderNumber)
	}
}

func TestDetachQuestionIdempotent(t *testing.T) {
	sf := newSurveyFixture(t, 100)
	survey := sf.create(t, 10, sf.questions[0].ID)

	if err := sf.uc.Detach("auth-1", survey.ID, sf.questions[0].ID); err != nil {
		t.Fatalf("Detach() error = %v", err)
	}
	// Par já removido: no-op, sem erro.
	if err := sf.uc.Detach("auth-1", survey.ID, sf.questions[0].ID); err != nil {
		t.Fatalf("Detach() of missing pair error = %v, want nil", err)
	}

	ordered, _ := sf.uc.Questions("auth-1", survey.ID)
	if len(ordered) != 0 {
		t.Errorf("len(ordered) = %d, want 0", len(ordered))
	}
}

// Fora de draft a lista de perguntas é imutável.
func TestQuestionEditsForbiddenOutsideDraft(t *testing.T) {
	sf := newSurveyFixture(t, 100)
	survey := sf.create(t, 10, sf.questions[0].ID)

	if _, err := sf.uc.UpdateStatus("auth-1", survey.ID, entities.SurveyStatusActive); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}

	err := sf.uc.Attach("auth-1", survey.ID, sf.questions[1].ID, 1)
	assertCode(t, err, errs.CodeForbidden)

	err = sf.uc.Detach("auth-1", survey.ID, sf.questions[0].ID)
	assertCode(t, err, errs.CodeForbidden)
}

// Empate de order_number: a ordem é estável, desempatada pelo id da pergunta.
func TestQuestionsOrderedTieBreak(t *testing.T) {
	sf := newSurveyFixture(t, 100)
	survey := sf.create(t, 10)
	q := sf.questions

	for _, id := range []int64{q[2].ID, q[0].ID, q[1].ID} {
		if err := sf.uc.Attach("auth-1", survey.ID, id, 5); err != nil {
			t.Fatalf("Attach() error = %v", err)
		}
	}

	for i := 0; i < 3; i++ {
		ordered, err := sf.uc.Questions("auth-1", survey.ID)
		if err != nil {
			t.Fatalf("Questions() error = %v", err)
		}
		wantIDs := []int64{q[0].ID, q[1].ID, q[2].ID}
		for j, oq := range ordered {
			if oq.ID != wantIDs[j] {
				t.Fatalf("read %d position %d: question = %d, want %d", i, j, oq.ID, wantIDs[j])
			}
		}
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	sf := newSurveyFixture(t, 100)
	survey := sf.create(t, 10)

	// draft → completed não existe como transição direta.
	_, err := sf.uc.UpdateStatus("auth-1", survey.ID, entities.SurveyStatusCompleted)
	assertCode(t, err, errs.CodeForbidden)

	updated, err := sf.uc.UpdateStatus("auth-1", survey.ID, entities.SurveyStatusActive)
	if err != nil {
		t.Fatalf("publish error = %v", err)
	}
	if updated.Status != entities.SurveyStatusActive {
		t.Errorf("Status = %q, want active", updated.Status)
	}

	// Publicar de novo falha: a pesquisa já não está em draft.
	_, err = sf.uc.UpdateStatus("auth-1", survey.ID, entities.SurveyStatusActive)
	assertCode(t, err, errs.CodeForbidden)

	updated, err = sf.uc.UpdateStatus("auth-1", survey.ID, entities.SurveyStatusCompleted)
	if err != nil {
		t.Fatalf("complete error = %v", err)
	}
	if updated.Status != entities.SurveyStatusCompleted {
		t.Errorf("Status = %q, want completed", updated.Status)
	}
	if updated.CompletedAt == nil {
		t.Errorf("CompletedAt = nil, want set on completion")
	}

	_, err = sf.uc.UpdateStatus("auth-1", survey.ID, entities.SurveyStatusDraft)
	assertCode(t, err, errs.CodeInvalidInput)
}

func TestSurveyOperationsRequireOwnership(t *testing.T) {
	sf := newSurveyFixture(t, 100)
	sf.core.addUser("auth-2", "bob@example.com", 100)
	survey := sf.create(t, 10, sf.questions[0].ID)

	if _, _, err := sf.uc.Get("auth-2", survey.ID); err == nil {
		t.Fatal("Get() by non-owner succeeded, want not_found")
	} else {
		assertCode(t, err, errs.CodeNotFound)
	}

	err := sf.uc.Attach("auth-2", survey.ID, sf.questions[1].ID, 0)
	assertCode(t, err, errs.CodeNotFound)

	err = sf.uc.Detach("auth-2", survey.ID, sf.questions[0].ID)
	assertCode(t, err, errs.CodeNotFound)

	_, err = sf.uc.UpdateStatus("auth-2", survey.ID, entities.SurveyStatusActive)
	assertCode(t, err, errs.CodeNotFound)
}

package usecases

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/lib/pq"
	"github.com/synth-sarmi/synthsurvey-back/internal/domain/demographics"
	"github.com/synth-sarmi/synthsurvey-back/internal/domain/entities"
	"github.com/synth-sarmi/synthsurvey-back/internal/domain/errs"
	"github.com/synth-sarmi/synthsurvey-back/internal/domain/repositories"
	"gorm.io/datatypes"
)

// stubCore guarda o estado compartilhado dos repositórios de teste. Cada
// método dos wrappers trava o mutex, então os stubs reproduzem o contrato
// transacional do banco (débito condicional atômico incluído).
type stubCore struct {
	mu         sync.Mutex
	nextID     int64
	users      map[int64]*entities.User
	txns       []entities.TokenTransaction
	audiences  map[int64]*entities.Audience
	members    map[int64][]entities.AudienceMember
	population []populationRow
	questions  map[int64]*entities.Question
	surveys    map[int64]*entities.Survey
	links      map[int64]map[int64]int
	results    map[int64][]entities.Result
	waitlist   map[string]struct{}
}

type populationRow struct {
	id           int64
	demographics map[string]any
}

func newStubCore() *stubCore {
	return &stubCore{
		users:     make(map[int64]*entities.User),
		audiences: make(map[int64]*entities.Audience),
		members:   make(map[int64][]entities.AudienceMember),
		questions: make(map[int64]*entities.Question),
		surveys:   make(map[int64]*entities.Survey),
		links:     make(map[int64]map[int64]int),
		results:   make(map[int64][]entities.Result),
		waitlist:  make(map[string]struct{}),
	}
}

func (c *stubCore) id() int64 {
	c.nextID++
	return c.nextID
}

// debitLocked aplica o débito guardado; o chamador já segura o mutex.
func (c *stubCore) debitLocked(userID int64, amount int, description string) (int, error) {
	if amount <= 0 {
		return 0, errs.NewInvalidInput("Amount must be positive")
	}
	user, ok := c.users[userID]
	if !ok {
		return 0, errs.NewNotFound("User not found")
	}
	if user.TokensRemaining < amount {
		return 0, errs.NewInsufficientBalance("Insufficient tokens")
	}
	user.TokensRemaining -= amount
	c.txns = append(c.txns, entities.TokenTransaction{
		ID:              c.id(),
		UserID:          userID,
		Amount:          amount,
		TransactionType: entities.TransactionTypeUsage,
		Description:     description,
		CreatedAt:       time.Now(),
	})
	return user.TokensRemaining, nil
}

// Helpers de semeadura para os testes.

func (c *stubCore) addUser(authID, email string, tokens int) entities.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	user := &entities.User{
		ID:              c.id(),
		Auth0ID:         authID,
		Email:           email,
		TokensRemaining: tokens,
	}
	c.users[user.ID] = user
	return *user
}

func (c *stubCore) addPopulation(rows ...map[string]any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, row := range rows {
		c.population = append(c.population, populationRow{id: c.id(), demographics: row})
	}
}

func (c *stubCore) addQuestion(userID int64, title, questionType string) entities.Question {
	c.mu.Lock()
	defer c.mu.Unlock()
	question := &entities.Question{
		ID:           c.id(),
		UserID:       userID,
		Title:        title,
		QuestionType: questionType,
	}
	c.questions[question.ID] = question
	return *question
}

func (c *stubCore) addAudience(userID int64, name string, size int) entities.Audience {
	c.mu.Lock()
	defer c.mu.Unlock()
	audience := &entities.Audience{
		ID:     c.id(),
		UserID: userID,
		Name:   name,
		Size:   size,
	}
	c.audiences[audience.ID] = audience
	return *audience
}

func (c *stubCore) balance(userID int64) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.users[userID].TokensRemaining
}

type stubUserRepo struct{ core *stubCore }

func (s *stubUserRepo) Create(user *entities.User) error {
	s.core.mu.Lock()
	defer s.core.mu.Unlock()
	for _, existing := range s.core.users {
		if existing.Email == user.Email {
			return errs.NewConflict("Email already registered")
		}
	}
	user.ID = s.core.id()
	cp := *user
	s.core.users[user.ID] = &cp
	return nil
}

func (s *stubUserRepo) FindByEmail(email string) (*entities.User, error) {
	s.core.mu.Lock()
	defer s.core.mu.Unlock()
	for _, user := range s.core.users {
		if user.Email == email {
			cp := *user
			return &cp, nil
		}
	}
	return nil, errs.NewNotFound("User not found")
}

func (s *stubUserRepo) FindByAuthID(authID string) (*entities.User, error) {
	s.core.mu.Lock()
	defer s.core.mu.Unlock()
	for _, user := range s.core.users {
		if user.Auth0ID == authID {
			cp := *user
			return &cp, nil
		}
	}
	return nil, errs.NewNotFound("User not found")
}

func (s *stubUserRepo) FindByID(id int64) (*entities.User, error) {
	s.core.mu.Lock()
	defer s.core.mu.Unlock()
	if user, ok := s.core.users[id]; ok {
		cp := *user
		return &cp, nil
	}
	return nil, errs.NewNotFound("User not found")
}

type stubTokenRepo struct{ core *stubCore }

func (s *stubTokenRepo) Credit(userID int64, amount int, description string) (*entities.TokenTransaction, int, error) {
	if amount <= 0 {
		return nil, 0, errs.NewInvalidInput("Amount must be positive")
	}
	s.core.mu.Lock()
	defer s.core.mu.Unlock()
	user, ok := s.core.users[userID]
	if !ok {
		return nil, 0, errs.NewNotFound("User not found")
	}
	user.TokensRemaining += amount
	txn := entities.TokenTransaction{
		ID:              s.core.id(),
		UserID:          userID,
		Amount:          amount,
		TransactionType: entities.TransactionTypePurchase,
		Description:     description,
		CreatedAt:       time.Now(),
	}
	s.core.txns = append(s.core.txns, txn)
	return &txn, user.TokensRemaining, nil
}

func (s *stubTokenRepo) Debit(userID int64, amount int, description string) (int, error) {
	s.core.mu.Lock()
	defer s.core.mu.Unlock()
	return s.core.debitLocked(userID, amount, description)
}

func (s *stubTokenRepo) Balance(userID int64) (int, error) {
	s.core.mu.Lock()
	defer s.core.mu.Unlock()
	user, ok := s.core.users[userID]
	if !ok {
		return 0, errs.NewNotFound("User not found")
	}
	return user.TokensRemaining, nil
}

func (s *stubTokenRepo) Transactions(userID int64) ([]entities.TokenTransaction, error) {
	s.core.mu.Lock()
	defer s.core.mu.Unlock()
	var out []entities.TokenTransaction
	for i := len(s.core.txns) - 1; i >= 0; i-- {
		if s.core.txns[i].UserID == userID {
			out = append(out, s.core.txns[i])
		}
	}
	return out, nil
}

type stubAudienceRepo struct{ core *stubCore }

func (s *stubAudienceRepo) CreateWithMembers(audience *entities.Audience, filter demographics.CompiledFilter) error {
	s.core.mu.Lock()
	defer s.core.mu.Unlock()
	for _, existing := range s.core.audiences {
		if existing.UserID == audience.UserID && existing.Name == audience.Name {
			return errs.NewConflict("Audience name already in use")
		}
	}
	audience.ID = s.core.id()

	var members []entities.AudienceMember
	for _, row := range s.core.population {
		if len(members) == audience.Size {
			break
		}
		if !filter.MatchAll(row.demographics) {
			continue
		}
		snapshot, err := json.Marshal(row.demographics)
		if err != nil {
			return errs.NewInternal("Internal server error")
		}
		members = append(members, entities.AudienceMember{
			ID:           s.core.id(),
			AudienceID:   audience.ID,
			UserID:       audience.UserID,
			IpumpID:      row.id,
			Demographics: datatypes.JSON(snapshot),
		})
	}
	s.core.members[audience.ID] = members
	audience.CurrentSize = int64(len(members))

	cp := *audience
	s.core.audiences[audience.ID] = &cp
	return nil
}

func (s *stubAudienceRepo) FindByUser(userID int64) ([]entities.Audience, error) {
	s.core.mu.Lock()
	defer s.core.mu.Unlock()
	var out []entities.Audience
	for _, audience := range s.core.audiences {
		if audience.UserID == userID {
			cp := *audience
			cp.CurrentSize = int64(len(s.core.members[audience.ID]))
			out = append(out, cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *stubAudienceRepo) FindOwned(id, userID int64) (*entities.Audience, error) {
	s.core.mu.Lock()
	defer s.core.mu.Unlock()
	audience, ok := s.core.audiences[id]
	if !ok || audience.UserID != userID {
		return nil, errs.NewNotFound("Audience not found")
	}
	cp := *audience
	cp.CurrentSize = int64(len(s.core.members[id]))
	return &cp, nil
}

func (s *stubAudienceRepo) MembersOf(audienceID int64) ([]entities.AudienceMember, error) {
	s.core.mu.Lock()
	defer s.core.mu.Unlock()
	return append([]entities.AudienceMember(nil), s.core.members[audienceID]...), nil
}

type stubQuestionRepo struct{ core *stubCore }

func (s *stubQuestionRepo) Create(question *entities.Question) error {
	s.core.mu.Lock()
	defer s.core.mu.Unlock()
	question.ID = s.core.id()
	cp := *question
	s.core.questions[question.ID] = &cp
	return nil
}

func (s *stubQuestionRepo) FindByUser(userID int64) ([]entities.Question, error) {
	s.core.mu.Lock()
	defer s.core.mu.Unlock()
	var out []entities.Question
	for _, question := range s.core.questions {
		if question.UserID == userID {
			out = append(out, *question)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *stubQuestionRepo) FindOwned(id, userID int64) (*entities.Question, error) {
	s.core.mu.Lock()
	defer s.core.mu.Unlock()
	question, ok := s.core.questions[id]
	if !ok || question.UserID != userID {
		return nil, errs.NewNotFound("Question not found")
	}
	cp := *question
	return &cp, nil
}

type stubSurveyRepo struct{ core *stubCore }

func (s *stubSurveyRepo) CreateWithDebit(survey *entities.Survey, questionIDs []int64) error {
	s.core.mu.Lock()
	defer s.core.mu.Unlock()

	// validação antes do débito reproduz o rollback da transação real:
	// ou todos os efeitos acontecem, ou nenhum
	for _, questionID := range questionIDs {
		question, ok := s.core.questions[questionID]
		if !ok || question.UserID != survey.UserID {
			return errs.NewNotFound("Question not found")
		}
	}

	if _, err := s.core.debitLocked(survey.UserID, survey.TokenCost, "Survey creation: "+survey.Title); err != nil {
		return err
	}

	survey.ID = s.core.id()
	survey.Status = entities.SurveyStatusDraft
	survey.CreatedAt = time.Now()
	cp := *survey
	s.core.surveys[survey.ID] = &cp

	links := make(map[int64]int, len(questionIDs))
	for i, questionID := range questionIDs {
		links[questionID] = i
	}
	s.core.links[survey.ID] = links
	return nil
}

func (s *stubSurveyRepo) FindByUser(userID int64) ([]entities.Survey, error) {
	s.core.mu.Lock()
	defer s.core.mu.Unlock()
	var out []entities.Survey
	for _, survey := range s.core.surveys {
		if survey.UserID != userID {
			continue
		}
		cp := *survey
		cp.QuestionIDs = pq.Int64Array(s.orderedIDsLocked(survey.ID))
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *stubSurveyRepo) FindOwned(id, userID int64) (*entities.Survey, error) {
	s.core.mu.Lock()
	defer s.core.mu.Unlock()
	survey, ok := s.core.surveys[id]
	if !ok || survey.UserID != userID {
		return nil, errs.NewNotFound("Survey not found")
	}
	cp := *survey
	return &cp, nil
}

func (s *stubSurveyRepo) AttachQuestion(surveyID, questionID int64, orderNumber int) error {
	s.core.mu.Lock()
	defer s.core.mu.Unlock()
	if s.core.links[surveyID] == nil {
		s.core.links[surveyID] = make(map[int64]int)
	}
	s.core.links[surveyID][questionID] = orderNumber
	return nil
}

func (s *stubSurveyRepo) DetachQuestion(surveyID, questionID int64) error {
	s.core.mu.Lock()
	defer s.core.mu.Unlock()
	delete(s.core.links[surveyID], questionID)
	return nil
}

func (s *stubSurveyRepo) QuestionsOrdered(surveyID int64) ([]repositories.OrderedQuestion, error) {
	s.core.mu.Lock()
	defer s.core.mu.Unlock()
	var out []repositories.OrderedQuestion
	for questionID, order := range s.core.links[surveyID] {
		question := s.core.questions[questionID]
		out = append(out, repositories.OrderedQuestion{
			ID:           question.ID,
			Title:        question.Title,
			Description:  question.Description,
			QuestionType: question.QuestionType,
			Options:      question.Options,
			OrderNumber:  order,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].OrderNumber != out[j].OrderNumber {
			return out[i].OrderNumber < out[j].OrderNumber
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *stubSurveyRepo) UpdateStatus(surveyID, userID int64, from, to string) error {
	s.core.mu.Lock()
	defer s.core.mu.Unlock()
	survey, ok := s.core.surveys[surveyID]
	if !ok || survey.UserID != userID {
		return errs.NewNotFound("Survey not found")
	}
	if survey.Status != from {
		return errs.NewForbidden(fmt.Sprintf("Survey is not in %s status", from))
	}
	survey.Status = to
	if to == entities.SurveyStatusCompleted {
		now := time.Now()
		survey.CompletedAt = &now
	}
	return nil
}

func (s *stubSurveyRepo) orderedIDsLocked(surveyID int64) []int64 {
	type link struct {
		questionID int64
		order      int
	}
	var ordered []link
	for questionID, order := range s.core.links[surveyID] {
		ordered = append(ordered, link{questionID, order})
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].order != ordered[j].order {
			return ordered[i].order < ordered[j].order
		}
		return ordered[i].questionID < ordered[j].questionID
	})
	ids := make([]int64, 0, len(ordered))
	for _, l := range ordered {
		ids = append(ids, l.questionID)
	}
	return ids
}

type stubResultRepo struct{ core *stubCore }

func (s *stubResultRepo) Append(result *entities.Result) error {
	s.core.mu.Lock()
	defer s.core.mu.Unlock()
	result.ID = s.core.id()
	result.CreatedAt = time.Now()
	s.core.results[result.SurveyID] = append(s.core.results[result.SurveyID], *result)
	return nil
}

func (s *stubResultRepo) FindBySurvey(surveyID int64) ([]entities.Result, error) {
	s.core.mu.Lock()
	defer s.core.mu.Unlock()
	stored := s.core.results[surveyID]
	out := make([]entities.Result, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		out = append(out, stored[i])
	}
	return out, nil
}

func (s *stubResultRepo) Summarize(surveyID int64) (*entities.SurveySummary, error) {
	s.core.mu.Lock()
	defer s.core.mu.Unlock()
	return &entities.SurveySummary{
		TotalResponses:         int64(len(s.core.results[surveyID])),
		AggregatedResponses:    map[string]map[string]int{},
		AggregatedDemographics: map[string]map[string]int{},
	}, nil
}

type stubWaitlistRepo struct{ core *stubCore }

func (s *stubWaitlistRepo) Create(entry *entities.WaitlistEntry) error {
	s.core.mu.Lock()
	defer s.core.mu.Unlock()
	if _, exists := s.core.waitlist[entry.Email]; exists {
		return errs.NewConflict("Email already registered")
	}
	s.core.waitlist[entry.Email] = struct{}{}
	entry.ID = s.core.id()
	return nil
}

// fixture monta o conjunto completo de repositórios de teste sobre um core.
type fixture struct {
	core      *stubCore
	users     *stubUserRepo
	tokens    *stubTokenRepo
	audiences *stubAudienceRepo
	questions *stubQuestionRepo
	surveys   *stubSurveyRepo
	results   *stubResultRepo
	waitlist  *stubWaitlistRepo
}

func newFixture() *fixture {
	core := newStubCore()
	return &fixture{
		core:      core,
		users:     &stubUserRepo{core: core},
		tokens:    &stubTokenRepo{core: core},
		audiences: &stubAudienceRepo{core: core},
		questions: &stubQuestionRepo{core: core},
		surveys:   &stubSurveyRepo{core: core},
		results:   &stubResultRepo{core: core},
		waitlist:  &stubWaitlistRepo{core: core},
	}
}

func assertCode(t interface {
	Helper()
	Fatalf(format string, args ...any)
}, err error, want errs.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("error = nil, want code %s", want)
	}
	de, ok := errs.AsDomainError(err)
	if !ok {
		t.Fatalf("error = %v, want DomainError with code %s", err, want)
	}
	if de.Code != want {
		t.Fatalf("error code = %s (%s), want %s", de.Code, de.Message, want)
	}
}

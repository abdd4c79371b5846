package handlers

import (
	"github.com/synth-sarmi/synthsurvey-back/internal/application/usecases"
)

// Handlers agrupa os handlers HTTP. O registro de rotas mora inteiro em
// routes.SetupRoutes; aqui só existe construção.
type Handlers struct {
	Auth     *AuthHandler
	Token    *TokenHandler
	Audience *AudienceHandler
	Question *QuestionHandler
	Survey   *SurveyHandler
	Result   *ResultHandler
	Waitlist *WaitlistHandler
}

func NewHandlers(useCases *usecases.UseCases) *Handlers {
	return &Handlers{
		Auth:     NewAuthHandler(useCases.Auth),
		Token:    NewTokenHandler(useCases.Token),
		Audience: NewAudienceHandler(useCases.Audience),
		Question: NewQuestionHandler(useCases.Question),
		Survey:   NewSurveyHandler(useCases.Survey),
		Result:   NewResultHandler(useCases.Result),
		Waitlist: NewWaitlistHandler(useCases.Waitlist),
	}
}

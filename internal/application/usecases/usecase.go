package usecases

// UseCases agrupa todos os casos de uso para injeção no adaptador HTTP.
type UseCases struct {
	Auth     *AuthUseCase
	Token    *TokenUseCase
	Audience *AudienceUseCase
	Question *QuestionUseCase
	Survey   *SurveyUseCase
	Result   *ResultUseCase
	Waitlist *WaitlistUseCase
}

package routes

import (
	"github.com/synth-sarmi/synthsurvey-back/internal/application/usecases"
	"github.com/synth-sarmi/synthsurvey-back/internal/domain/repositories"
	"github.com/synth-sarmi/synthsurvey-back/internal/infrastructure/config"
	"github.com/synth-sarmi/synthsurvey-back/internal/interfaces/http/handlers"
	"github.com/synth-sarmi/synthsurvey-back/internal/interfaces/http/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes é a única tabela de rotas da aplicação: cada operação do
// núcleo aparece exatamente uma vez, mapeada para um handler fino.
func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	tokenRepo := repositories.NewTokenRepository(db)
	audienceRepo := repositories.NewAudienceRepository(db)
	questionRepo := repositories.NewQuestionRepository(db)
	surveyRepo := repositories.NewSurveyRepository(db)
	resultRepo := repositories.NewResultRepository(db)
	waitlistRepo := repositories.NewWaitlistRepository(db)

	// Use Cases
	useCases := &usecases.UseCases{
		Auth:     usecases.NewAuthUseCase(userRepo, cfg.JWTSecret, cfg.TokenTTL),
		Token:    usecases.NewTokenUseCase(tokenRepo, userRepo),
		Audience: usecases.NewAudienceUseCase(audienceRepo, userRepo),
		Question: usecases.NewQuestionUseCase(questionRepo, userRepo),
		Survey:   usecases.NewSurveyUseCase(surveyRepo, audienceRepo, questionRepo, userRepo),
		Result:   usecases.NewResultUseCase(resultRepo, surveyRepo, userRepo),
		Waitlist: usecases.NewWaitlistUseCase(waitlistRepo),
	}

	// Handlers
	h := handlers.NewHandlers(useCases)

	// Rotas públicas
	app.Post("/auth/signup", h.Auth.Signup)
	app.Post("/auth/login", h.Auth.Login)
	app.Post("/waitlist", h.Waitlist.Join)

	// Tudo abaixo exige bearer token válido
	auth := middleware.JWTAuth(cfg.JWTSecret)

	// Tokens routes
	tokens := app.Group("/tokens", auth)
	tokens.Post("/purchase", h.Token.Purchase)
	tokens.Get("/balance", h.Token.Balance)
	tokens.Get("/transactions", h.Token.Transactions)

	// Audiences routes
	audiences := app.Group("/audiences", auth)
	audiences.Post("/", h.Audience.Create)
	audiences.Get("/", h.Audience.List)
	audiences.Get("/:id/members", h.Audience.Members)

	// Questions routes
	questions := app.Group("/questions", auth)
	questions.Post("/", h.Question.Create)
	questions.Get("/", h.Question.List)

	// Surveys routes (subárvore própria, inclui perguntas e resultados)
	RegisterSurveyRoutes(app, auth, h.Survey, h.Result)
}

package routes

import (
	"github.com/synth-sarmi/synthsurvey-back/internal/interfaces/http/handlers"

	"github.com/gofiber/fiber/v2"
)

// RegisterSurveyRoutes registra a subárvore de pesquisas: CRUD, lista
// ordenada de perguntas, gatilho de status e o caminho de resultados.
func RegisterSurveyRoutes(app *fiber.App, auth fiber.Handler, surveyHandler *handlers.SurveyHandler, resultHandler *handlers.ResultHandler) {
	surveys := app.Group("/surveys", auth)

	surveys.Post("/", surveyHandler.Create)
	surveys.Get("/", surveyHandler.List)
	surveys.Get("/:id", surveyHandler.Get)
	surveys.Patch("/:id/status", surveyHandler.UpdateStatus)

	surveys.Get("/:id/questions", surveyHandler.Questions)
	surveys.Post("/:id/questions", surveyHandler.AttachQuestion)
	surveys.Delete("/:id/questions/:question_id", surveyHandler.DetachQuestion)

	surveys.Get("/:id/results", resultHandler.List)
	surveys.Get("/:id/results/summary", resultHandler.Summary)
	surveys.Post("/:id/results", resultHandler.Append)
}

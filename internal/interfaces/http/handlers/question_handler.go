package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/synth-sarmi/synthsurvey-back/internal/application/usecases"
	"github.com/synth-sarmi/synthsurvey-back/internal/domain/errs"
)

// QuestionHandler lida com o banco de perguntas reutilizáveis do usuário
type QuestionHandler struct {
	questionUseCase *usecases.QuestionUseCase
}

func NewQuestionHandler(questionUseCase *usecases.QuestionUseCase) *QuestionHandler {
	return &QuestionHandler{
		questionUseCase: questionUseCase,
	}
}

func (h *QuestionHandler) Create(c *fiber.Ctx) error {
	var input usecases.CreateQuestionInput
	if err := c.BodyParser(&input); err != nil {
		return respondError(c, errs.NewInvalidInput("Invalid request body"))
	}

	question, err := h.questionUseCase.Create(authID(c), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": question,
	})
}

func (h *QuestionHandler) List(c *fiber.Ctx) error {
	questions, err := h.questionUseCase.List(authID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"data": questions,
	})
}

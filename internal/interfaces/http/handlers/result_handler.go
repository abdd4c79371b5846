package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/synth-sarmi/synthsurvey-back/internal/application/usecases"
	"github.com/synth-sarmi/synthsurvey-back/internal/domain/errs"
)

// ResultHandler é o caminho de leitura das respostas coletadas
type ResultHandler struct {
	resultUseCase *usecases.ResultUseCase
}

func NewResultHandler(resultUseCase *usecases.ResultUseCase) *ResultHandler {
	return &ResultHandler{
		resultUseCase: resultUseCase,
	}
}

func (h *ResultHandler) List(c *fiber.Ctx) error {
	surveyID, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	results, err := h.resultUseCase.List(authID(c), surveyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"data": results,
	})
}

func (h *ResultHandler) Summary(c *fiber.Ctx) error {
	surveyID, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	summary, err := h.resultUseCase.Summary(authID(c), surveyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

func (h *ResultHandler) Append(c *fiber.Ctx) error {
	surveyID, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var input usecases.AppendResultInput
	if err := c.BodyParser(&input); err != nil {
		return respondError(c, errs.NewInvalidInput("Invalid request body"))
	}

	result, err := h.resultUseCase.Append(authID(c), surveyID, input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": result,
	})
}

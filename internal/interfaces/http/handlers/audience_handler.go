package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/synth-sarmi/synthsurvey-back/internal/application/usecases"
	"github.com/synth-sarmi/synthsurvey-back/internal/domain/errs"
)

// AudienceHandler lida com a definição de públicos e sua amostra realizada
type AudienceHandler struct {
	audienceUseCase *usecases.AudienceUseCase
}

func NewAudienceHandler(audienceUseCase *usecases.AudienceUseCase) *AudienceHandler {
	return &AudienceHandler{
		audienceUseCase: audienceUseCase,
	}
}

// Create compila o filtro demográfico, cria o público e materializa a
// amostra. Avisos do compilador (restrições malformadas ignoradas) voltam
// no corpo para o chamador saber o que não foi aplicado.
func (h *AudienceHandler) Create(c *fiber.Ctx) error {
	var input usecases.CreateAudienceInput
	if err := c.BodyParser(&input); err != nil {
		return respondError(c, errs.NewInvalidInput("Invalid request body"))
	}

	audience, warnings, err := h.audienceUseCase.Create(authID(c), input)
	if err != nil {
		return respondError(c, err)
	}

	response := fiber.Map{
		"data": audience,
	}
	if len(warnings) > 0 {
		response["warnings"] = warnings
	}
	return c.Status(fiber.StatusCreated).JSON(response)
}

func (h *AudienceHandler) List(c *fiber.Ctx) error {
	audiences, err := h.audienceUseCase.List(authID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"data": audiences,
	})
}

func (h *AudienceHandler) Members(c *fiber.Ctx) error {
	audienceID, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	members, err := h.audienceUseCase.Members(authID(c), audienceID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"data": members,
	})
}

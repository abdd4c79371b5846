package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/synth-sarmi/synthsurvey-back/internal/application/usecases"
	"github.com/synth-sarmi/synthsurvey-back/internal/domain/errs"
)

// WaitlistHandler captura e-mails de interessados (rota pública)
type WaitlistHandler struct {
	waitlistUseCase *usecases.WaitlistUseCase
}

func NewWaitlistHandler(waitlistUseCase *usecases.WaitlistUseCase) *WaitlistHandler {
	return &WaitlistHandler{
		waitlistUseCase: waitlistUseCase,
	}
}

type joinWaitlistRequest struct {
	Email string `json:"email"`
}

func (h *WaitlistHandler) Join(c *fiber.Ctx) error {
	var req joinWaitlistRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, errs.NewInvalidInput("Invalid request body"))
	}

	entry, err := h.waitlistUseCase.Join(req.Email)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": entry,
	})
}

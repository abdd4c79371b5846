package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/synth-sarmi/synthsurvey-back/internal/application/usecases"
	"github.com/synth-sarmi/synthsurvey-back/internal/domain/errs"
)

// TokenHandler expõe o ledger de tokens do chamador
type TokenHandler struct {
	tokenUseCase *usecases.TokenUseCase
}

func NewTokenHandler(tokenUseCase *usecases.TokenUseCase) *TokenHandler {
	return &TokenHandler{
		tokenUseCase: tokenUseCase,
	}
}

type purchaseRequest struct {
	Amount      int    `json:"amount"`
	Description string `json:"description"`
}

func (h *TokenHandler) Purchase(c *fiber.Ctx) error {
	var req purchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, errs.NewInvalidInput("Invalid request body"))
	}

	receipt, err := h.tokenUseCase.Purchase(authID(c), req.Amount, req.Description)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(receipt)
}

func (h *TokenHandler) Balance(c *fiber.Ctx) error {
	balance, err := h.tokenUseCase.Balance(authID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"tokens_remaining": balance,
	})
}

func (h *TokenHandler) Transactions(c *fiber.Ctx) error {
	txns, err := h.tokenUseCase.Transactions(authID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"data": txns,
	})
}

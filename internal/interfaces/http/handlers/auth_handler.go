package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/synth-sarmi/synthsurvey-back/internal/application/usecases"
	"github.com/synth-sarmi/synthsurvey-back/internal/domain/errs"
)

// AuthHandler lida com cadastro e login
type AuthHandler struct {
	authUseCase *usecases.AuthUseCase
}

func NewAuthHandler(authUseCase *usecases.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, errs.NewInvalidInput("Invalid request body"))
	}

	token, err := h.authUseCase.Signup(req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(token)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, errs.NewInvalidInput("Invalid request body"))
	}

	token, err := h.authUseCase.Login(req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(token)
}

package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/synth-sarmi/synthsurvey-back/internal/domain/errs"
	"github.com/synth-sarmi/synthsurvey-back/internal/interfaces/http/middleware"
)

// Mapeamento estável de categoria de erro para status HTTP.
var statusByCode = map[errs.Code]int{
	errs.CodeInvalidInput:        fiber.StatusBadRequest,
	errs.CodeNotFound:            fiber.StatusNotFound,
	errs.CodeForbidden:           fiber.StatusForbidden,
	errs.CodeInsufficientBalance: fiber.StatusPaymentRequired,
	errs.CodeConflict:            fiber.StatusConflict,
	errs.CodeUnauthorized:        fiber.StatusUnauthorized,
	errs.CodeInternal:            fiber.StatusInternalServerError,
}

// respondError traduz um erro de domínio em resposta JSON. Erros fora da
// taxonomia viram 500 genérico; texto cru de driver nunca chega aqui.
func respondError(c *fiber.Ctx, err error) error {
	if de, ok := errs.AsDomainError(err); ok {
		status, found := statusByCode[de.Code]
		if !found {
			status = fiber.StatusInternalServerError
		}
		return c.Status(status).JSON(fiber.Map{
			"error": de.Message,
			"code":  string(de.Code),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Internal server error",
		"code":  string(errs.CodeInternal),
	})
}

// authID recupera a identidade opaca depositada pelo middleware JWT.
func authID(c *fiber.Ctx) string {
	id, _ := c.Locals(middleware.AuthIDKey).(string)
	return id
}

// idParam lê um parâmetro de rota numérico.
func idParam(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.NewInvalidInput("Invalid " + name)
	}
	return id, nil
}

package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/synth-sarmi/synthsurvey-back/internal/application/usecases"
)

// AuthIDKey é a chave de Locals onde o middleware deposita a identidade
// opaca (auth0_id) do chamador autenticado.
const AuthIDKey = "auth_id"

// JWTAuth valida o bearer token e injeta o auth0_id do chamador na
// requisição. O núcleo trata esse id como handle opaco; nenhuma outra
// camada toca no JWT.
func JWTAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing bearer token",
				"code":  "unauthorized",
			})
		}

		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		claims := &usecases.AuthClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid || claims.Subject == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
				"code":  "unauthorized",
			})
		}

		c.Locals(AuthIDKey, claims.Subject)
		return c.Next()
	}
}

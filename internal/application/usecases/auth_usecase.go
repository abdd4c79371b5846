package usecases

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/synth-sarmi/synthsurvey-back/internal/domain/entities"
	"github.com/synth-sarmi/synthsurvey-back/internal/domain/errs"
	"github.com/synth-sarmi/synthsurvey-back/internal/domain/repositories"
	"golang.org/x/crypto/bcrypt"
)

// AuthClaims é o payload dos tokens de acesso. Subject carrega o auth0_id,
// o identificador opaco que o restante do sistema usa como identidade.
type AuthClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// AuthToken é a credencial devolvida por signup e login.
type AuthToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// AuthUseCase implementa cadastro e login locais com bcrypt + JWT HS256.
type AuthUseCase struct {
	users     repositories.IUserRepository
	jwtSecret string
	tokenTTL  time.Duration
	now       func() time.Time
}

func NewAuthUseCase(users repositories.IUserRepository, jwtSecret string, tokenTTL time.Duration) *AuthUseCase {
	return &AuthUseCase{
		users:     users,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		now:       time.Now,
	}
}

// Signup cria o usuário com um auth0_id gerado e já devolve um token válido.
func (u *AuthUseCase) Signup(email, password string) (*AuthToken, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, errs.NewInvalidInput("Invalid email")
	}
	if len(password) < 8 {
		return nil, errs.NewInvalidInput("Password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errs.NewInternal("Internal server error")
	}

	user := &entities.User{
		Auth0ID:      uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := u.users.Create(user); err != nil {
		return nil, err
	}
	return u.signToken(user)
}

// Login valida as credenciais. Usuário inexistente e senha errada produzem
// a mesma resposta para não vazar quais e-mails existem.
func (u *AuthUseCase) Login(email, password string) (*AuthToken, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := u.users.FindByEmail(email)
	if err != nil {
		if de, ok := errs.AsDomainError(err); ok && de.Code == errs.CodeNotFound {
			return nil, errs.NewUnauthorized("Invalid credentials")
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, errs.NewUnauthorized("Invalid credentials")
	}
	return u.signToken(user)
}

func (u *AuthUseCase) signToken(user *entities.User) (*AuthToken, error) {
	claims := AuthClaims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Auth0ID,
			IssuedAt:  jwt.NewNumericDate(u.now()),
			ExpiresAt: jwt.NewNumericDate(u.now().Add(u.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(u.jwtSecret))
	if err != nil {
		return nil, errs.NewInternal("Internal server error")
	}

	return &AuthToken{
		AccessToken: signed,
		TokenType:   "bearer",
		ExpiresIn:   int(u.tokenTTL.Seconds()),
	}, nil
}

package usecases

import (
	"github.com/synth-sarmi/synthsurvey-back/internal/domain/entities"
	"github.com/synth-sarmi/synthsurvey-back/internal/domain/errs"
	"github.com/synth-sarmi/synthsurvey-back/internal/domain/repositories"
)

// PurchaseReceipt é a confirmação de uma compra de tokens.
type PurchaseReceipt struct {
	TransactionID int64 `json:"transaction_id"`
	Amount        int   `json:"amount"`
	NewBalance    int   `json:"new_balance"`
}

// TokenUseCase expõe o ledger de tokens para o chamador autenticado.
type TokenUseCase struct {
	tokens repositories.ITokenRepository
	users  repositories.IUserRepository
}

func NewTokenUseCase(tokens repositories.ITokenRepository, users repositories.IUserRepository) *TokenUseCase {
	return &TokenUseCase{
		tokens: tokens,
		users:  users,
	}
}

// Purchase credita tokens ao usuário e devolve o recibo com o id da transação.
func (u *TokenUseCase) Purchase(authID string, amount int, description string) (*PurchaseReceipt, error) {
	if amount <= 0 {
		return nil, errs.NewInvalidInput("Amount must be positive")
	}
	user, err := u.users.FindByAuthID(authID)
	if err != nil {
		return nil, err
	}
	if description == "" {
		description = "Token purchase"
	}

	txn, balance, err := u.tokens.Credit(user.ID, amount, description)
	if err != nil {
		return nil, err
	}
	return &PurchaseReceipt{
		TransactionID: txn.ID,
		Amount:        amount,
		NewBalance:    balance,
	}, nil
}

func (u *TokenUseCase) Balance(authID string) (int, error) {
	user, err := u.users.FindByAuthID(authID)
	if err != nil {
		return 0, err
	}
	return u.tokens.Balance(user.ID)
}

func (u *TokenUseCase) Transactions(authID string) ([]entities.TokenTransaction, error) {
	user, err := u.users.FindByAuthID(authID)
	if err != nil {
		return nil, err
	}
	return u.tokens.Transactions(user.ID)
}

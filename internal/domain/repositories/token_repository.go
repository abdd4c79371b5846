package repositories

import (
	"github.com/synth-sarmi/synthsurvey-back/internal/domain/entities"
	"github.com/synth-sarmi/synthsurvey-back/internal/domain/errs"
	"gorm.io/gorm"
)

type ITokenRepository interface {
	Credit(userID int64, amount int, description string) (*entities.TokenTransaction, int, error)
	Debit(userID int64, amount int, description string) (int, error)
	Balance(userID int64) (int, error)
	Transactions(userID int64) ([]entities.TokenTransaction, error)
}

// TokenRepository implementa o ledger de tokens sobre a tabela users +
// o log append-only na tabela tokens.
type TokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) *TokenRepository {
	return &TokenRepository{
		db: db,
	}
}

// debitTokens executa o débito guardado dentro de uma transação já aberta.
// A checagem de saldo e o decremento são um único UPDATE condicional, então
// dois débitos concorrentes nunca deixam o saldo negativo.
func debitTokens(tx *gorm.DB, userID int64, amount int, description string) (int, error) {
	if amount <= 0 {
		return 0, errs.NewInvalidInput("Amount must be positive")
	}
	res := tx.Model(&entities.User{}).
		Where("id = ? AND tokens_remaining >= ?", userID, amount).
		Update("tokens_remaining", gorm.Expr("tokens_remaining - ?", amount))
	if res.Error != nil {
		return 0, internalError(res.Error)
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&entities.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
			return 0, internalError(err)
		}
		if count == 0 {
			return 0, errs.NewNotFound("User not found")
		}
		return 0, errs.NewInsufficientBalance("Insufficient tokens")
	}

	txn := entities.TokenTransaction{
		UserID:          userID,
		Amount:          amount,
		TransactionType: entities.TransactionTypeUsage,
		Description:     description,
	}
	if err := tx.Create(&txn).Error; err != nil {
		return 0, internalError(err)
	}

	var balance int
	if err := tx.Raw("SELECT tokens_remaining FROM users WHERE id = ?", userID).Scan(&balance).Error; err != nil {
		return 0, internalError(err)
	}
	return balance, nil
}

// creditTokens executa o crédito dentro de uma transação já aberta.
func creditTokens(tx *gorm.DB, userID int64, amount int, description string) (*entities.TokenTransaction, int, error) {
	if amount <= 0 {
		return nil, 0, errs.NewInvalidInput("Amount must be positive")
	}
	res := tx.Model(&entities.User{}).
		Where("id = ?", userID).
		Update("tokens_remaining", gorm.Expr("tokens_remaining + ?", amount))
	if res.Error != nil {
		return nil, 0, internalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, 0, errs.NewNotFound("User not found")
	}

	txn := entities.TokenTransaction{
		UserID:          userID,
		Amount:          amount,
		TransactionType: entities.TransactionTypePurchase,
		Description:     description,
	}
	if err := tx.Create(&txn).Error; err != nil {
		return nil, 0, internalError(err)
	}

	var balance int
	if err := tx.Raw("SELECT tokens_remaining FROM users WHERE id = ?", userID).Scan(&balance).Error; err != nil {
		return nil, 0, internalError(err)
	}
	return &txn, balance, nil
}

// Credit incrementa o saldo e registra uma transação purchase, atomicamente.
func (r *TokenRepository) Credit(userID int64, amount int, description string) (*entities.TokenTransaction, int, error) {
	var txn *entities.TokenTransaction
	var balance int
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var err error
		txn, balance, err = creditTokens(tx, userID, amount, description)
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	return txn, balance, nil
}

// Debit decrementa o saldo se houver fundos e registra uma transação usage.
func (r *TokenRepository) Debit(userID int64, amount int, description string) (int, error) {
	var balance int
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var err error
		balance, err = debitTokens(tx, userID, amount, description)
		return err
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

func (r *TokenRepository) Balance(userID int64) (int, error) {
	var user entities.User
	if err := r.db.Select("tokens_remaining").First(&user, userID).Error; err != nil {
		return 0, notFoundOr(err, "User not found")
	}
	return user.TokensRemaining, nil
}

// Transactions devolve o log append-only do usuário, mais recente primeiro.
func (r *TokenRepository) Transactions(userID int64) ([]entities.TokenTransaction, error) {
	var txns []entities.TokenTransaction
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&txns).Error; err != nil {
		return nil, internalError(err)
	}
	return txns, nil
}

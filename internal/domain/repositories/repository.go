package repositories

import (
	"errors"
	"log"

	"github.com/synth-sarmi/synthsurvey-back/internal/domain/errs"
	"gorm.io/gorm"
)

// Tradução de erros do driver para a taxonomia de domínio. Texto cru do
// banco nunca sobe para o chamador; fica apenas no log do servidor.

func notFoundOr(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewNotFound(msg)
	}
	return internalError(err)
}

func conflictOr(err error, msg string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewConflict(msg)
	}
	return internalError(err)
}

func internalError(err error) error {
	if _, ok := errs.AsDomainError(err); ok {
		return err
	}
	log.Printf("❌ Database error: %v", err)
	return errs.NewInternal("Internal server error")
}

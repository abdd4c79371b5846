package repositories

import (
	"github.com/synth-sarmi/synthsurvey-back/internal/domain/entities"
	"gorm.io/gorm"
)

type IWaitlistRepository interface {
	Create(entry *entities.WaitlistEntry) error
}

type WaitlistRepository struct {
	db *gorm.DB
}

func NewWaitlistRepository(db *gorm.DB) *WaitlistRepository {
	return &WaitlistRepository{
		db: db,
	}
}

func (r *WaitlistRepository) Create(entry *entities.WaitlistEntry) error {
	if err := r.db.Create(entry).Error; err != nil {
		return conflictOr(err, "Email already registered")
	}
	return nil
}

package migrations

import (
	"github.com/synth-sarmi/synthsurvey-back/internal/domain/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.User{},
		&entities.TokenTransaction{},
		&entities.Audience{},
		&entities.AudienceMember{},
		&entities.PopulationRecord{},
		&entities.Question{},
		&entities.Survey{},
		&entities.SurveyQuestion{},
		&entities.Result{},
		&entities.WaitlistEntry{},
	)
}

package migrations

import (
	"gorm.io/gorm"
)

// AddIndexes adds indexes to the database to improve query performance
func AddIndexes(db *gorm.DB) error {
	// Add indexes to the tokens table
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_tokens_user_id ON tokens (user_id)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_tokens_created_at ON tokens (created_at)").Error; err != nil {
		return err
	}

	// Add indexes to the audiences and audience_members tables
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_audiences_user_id ON audiences (user_id)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_audience_members_audience_id ON audience_members (audience_id)").Error; err != nil {
		return err
	}

	// Add indexes to the surveys and survey_questions tables
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_surveys_user_id ON surveys (user_id)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_surveys_created_at ON surveys (created_at)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_survey_questions_survey_id ON survey_questions (survey_id)").Error; err != nil {
		return err
	}

	// Add indexes to the questions and results tables
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_questions_user_id ON questions (user_id)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_results_survey_id ON results (survey_id)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_results_created_at ON results (created_at)").Error; err != nil {
		return err
	}

	return nil
}

package repositories

import (
	"github.com/synth-sarmi/synthsurvey-back/internal/domain/entities"
	"gorm.io/gorm"
)

type IQuestionRepository interface {
	Create(question *entities.Question) error
	FindByUser(userID int64) ([]entities.Question, error)
	FindOwned(id, userID int64) (*entities.Question, error)
}

type QuestionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{
		db: db,
	}
}

func (r *QuestionRepository) Create(question *entities.Question) error {
	if err := r.db.Create(question).Error; err != nil {
		return internalError(err)
	}
	return nil
}

func (r *QuestionRepository) FindByUser(userID int64) ([]entities.Question, error) {
	var questions []entities.Question
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&questions).Error; err != nil {
		return nil, internalError(err)
	}
	return questions, nil
}

func (r *QuestionRepository) FindOwned(id, userID int64) (*entities.Question, error) {
	var question entities.Question
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).
		First(&question).Error; err != nil {
		return nil, notFoundOr(err, "Question not found")
	}
	return &question, nil
}

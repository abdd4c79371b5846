package repositories

import (
	"fmt"
	"time"

	"github.com/synth-sarmi/synthsurvey-back/internal/domain/entities"
	"github.com/synth-sarmi/synthsurvey-back/internal/domain/errs"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ISurveyRepository interface {
	CreateWithDebit(survey *entities.Survey, questionIDs []int64) error
	FindByUser(userID int64) ([]entities.Survey, error)
	FindOwned(id, userID int64) (*entities.Survey, error)
	AttachQuestion(surveyID, questionID int64, orderNumber int) error
	DetachQuestion(surveyID, questionID int64) error
	QuestionsOrdered(surveyID int64) ([]OrderedQuestion, error)
	UpdateStatus(surveyID, userID int64, from, to string) error
}

// OrderedQuestion é uma pergunta anexada com sua posição na pesquisa.
type OrderedQuestion struct {
	ID           int64          `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	QuestionType string         `json:"question_type"`
	Options      datatypes.JSON `json:"options,omitempty"`
	OrderNumber  int            `json:"order_number"`
}

// SurveyRepository implementa métodos para acesso a dados de pesquisas
type SurveyRepository struct {
	db *gorm.DB
}

// NewSurveyRepository cria uma nova instância de SurveyRepository
func NewSurveyRepository(db *gorm.DB) *SurveyRepository {
	return &SurveyRepository{
		db: db,
	}
}

// CreateWithDebit debita o custo e insere a pesquisa na mesma transação;
// se qualquer passo falhar, nada persiste. As perguntas iniciais entram com
// order_number igual à posição na lista (base 0).
func (r *SurveyRepository) CreateWithDebit(survey *entities.Survey, questionIDs []int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if _, err := debitTokens(tx, survey.UserID, survey.TokenCost, "Survey creation: "+survey.Title); err != nil {
			return err
		}

		survey.Status = entities.SurveyStatusDraft
		if err := tx.Create(survey).Error; err != nil {
			return internalError(err)
		}

		if len(questionIDs) == 0 {
			return nil
		}

		var count int64
		if err := tx.Model(&entities.Question{}).
			Where("id IN ? AND user_id = ?", questionIDs, survey.UserID).
			Count(&count).Error; err != nil {
			return internalError(err)
		}
		if count != int64(len(questionIDs)) {
			return errs.NewNotFound("Question not found")
		}

		links := make([]entities.SurveyQuestion, 0, len(questionIDs))
		for i, questionID := range questionIDs {
			links = append(links, entities.SurveyQuestion{
				SurveyID:    survey.ID,
				QuestionID:  questionID,
				OrderNumber: i,
			})
		}
		if err := tx.Create(&links).Error; err != nil {
			return conflictOr(err, "Duplicate question in survey")
		}
		return nil
	})
}

// FindByUser lista as pesquisas do usuário com os ids das perguntas agregados.
func (r *SurveyRepository) FindByUser(userID int64) ([]entities.Survey, error) {
	var surveys []entities.Survey
	query := `
		SELECT s.*, COALESCE(array_agg(sq.question_id ORDER BY sq.order_number, sq.question_id)
			FILTER (WHERE sq.question_id IS NOT NULL), '{}') AS question_ids
		FROM surveys s
		LEFT JOIN survey_questions sq ON sq.survey_id = s.id
		WHERE s.user_id = ?
		GROUP BY s.id
		ORDER BY s.created_at DESC`
	if err := r.db.Raw(query, userID).Scan(&surveys).Error; err != nil {
		return nil, internalError(err)
	}
	return surveys, nil
}

// FindOwned busca uma pesquisa do usuário; inexistente e não-dono retornam
// o mesmo NotFound.
func (r *SurveyRepository) FindOwned(id, userID int64) (*entities.Survey, error) {
	var survey entities.Survey
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).
		First(&survey).Error; err != nil {
		return nil, notFoundOr(err, "Survey not found")
	}
	return &survey, nil
}

// AttachQuestion insere o vínculo ou, se o par já existir, sobrescreve o
// order_number (reordenação idempotente).
func (r *SurveyRepository) AttachQuestion(surveyID, questionID int64, orderNumber int) error {
	link := entities.SurveyQuestion{
		SurveyID:    surveyID,
		QuestionID:  questionID,
		OrderNumber: orderNumber,
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "survey_id"}, {Name: "question_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"order_number"}),
	}).Create(&link).Error
	if err != nil {
		return internalError(err)
	}
	return nil
}

// DetachQuestion remove o vínculo se existir; remover par inexistente é no-op.
func (r *SurveyRepository) DetachQuestion(surveyID, questionID int64) error {
	res := r.db.Where("survey_id = ? AND question_id = ?", surveyID, questionID).
		Delete(&entities.SurveyQuestion{})
	if res.Error != nil {
		return internalError(res.Error)
	}
	return nil
}

// QuestionsOrdered devolve as perguntas em ordem ascendente de order_number,
// com desempate estável pelo id da pergunta.
func (r *SurveyRepository) QuestionsOrdered(surveyID int64) ([]OrderedQuestion, error) {
	var questions []OrderedQuestion
	query := `
		SELECT q.id, q.title, q.description, q.question_type, q.options, sq.order_number
		FROM survey_questions sq
		JOIN questions q ON q.id = sq.question_id
		WHERE sq.survey_id = ?
		ORDER BY sq.order_number ASC, sq.question_id ASC`
	if err := r.db.Raw(query, surveyID).Scan(&questions).Error; err != nil {
		return nil, internalError(err)
	}
	return questions, nil
}

// UpdateStatus aplica a transição de estado com um UPDATE condicional no
// estado de origem, então duas transições concorrentes nunca aplicam a
// mesma duas vezes.
func (r *SurveyRepository) UpdateStatus(surveyID, userID int64, from, to string) error {
	updates := map[string]interface{}{"status": to}
	if to == entities.SurveyStatusCompleted {
		updates["completed_at"] = time.Now()
	}

	res := r.db.Model(&entities.Survey{}).
		Where("id = ? AND user_id = ? AND status = ?", surveyID, userID, from).
		Updates(updates)
	if res.Error != nil {
		return internalError(res.Error)
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&entities.Survey{}).
			Where("id = ? AND user_id = ?", surveyID, userID).
			Count(&count).Error; err != nil {
			return internalError(err)
		}
		if count == 0 {
			return errs.NewNotFound("Survey not found")
		}
		return errs.NewForbidden(fmt.Sprintf("Survey is not in %s status", from))
	}
	return nil
}

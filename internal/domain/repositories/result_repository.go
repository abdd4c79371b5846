package repositories

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/synth-sarmi/synthsurvey-back/internal/domain/entities"
	"github.com/synth-sarmi/synthsurvey-back/internal/infrastructure/cache"
	"gorm.io/gorm"
)

type IResultRepository interface {
	Append(result *entities.Result) error
	FindBySurvey(surveyID int64) ([]entities.Result, error)
	Summarize(surveyID int64) (*entities.SurveySummary, error)
}

// ResultRepository implementa a leitura de respostas coletadas. Os resumos
// agregados são caros e mudam pouco, então ficam em cache com TTL curto.
type ResultRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewResultRepository(db *gorm.DB) *ResultRepository {
	return &ResultRepository{
		db:    db,
		cache: cache.New(5*time.Minute, 10*time.Minute),
	}
}

func summaryCacheKey(surveyID int64) string {
	return fmt.Sprintf("survey_summary_%d", surveyID)
}

// Append insere uma resposta e invalida o resumo em cache da pesquisa.
func (r *ResultRepository) Append(result *entities.Result) error {
	if err := r.db.Create(result).Error; err != nil {
		return internalError(err)
	}
	r.cache.Delete(summaryCacheKey(result.SurveyID))
	return nil
}

// FindBySurvey lista as respostas da pesquisa, mais recente primeiro.
func (r *ResultRepository) FindBySurvey(surveyID int64) ([]entities.Result, error) {
	var results []entities.Result
	if err := r.db.Where("survey_id = ?", surveyID).
		Order("created_at DESC, id DESC").
		Find(&results).Error; err != nil {
		return nil, internalError(err)
	}
	return results, nil
}

// Summarize devolve o agregado das respostas da pesquisa, servindo do cache
// quando possível.
func (r *ResultRepository) Summarize(surveyID int64) (*entities.SurveySummary, error) {
	cacheKey := summaryCacheKey(surveyID)
	if cached, found := r.cache.Get(cacheKey); found {
		if summary, ok := cached.(*entities.SurveySummary); ok {
			return summary, nil
		}
	}

	results, err := r.FindBySurvey(surveyID)
	if err != nil {
		return nil, err
	}

	summary := aggregateResults(results)
	r.cache.Set(cacheKey, summary, cache.DefaultExpiration)
	return summary, nil
}

// aggregateResults conta respostas por pergunta e por valor demográfico e
// calcula a média do validation_score ignorando nulos.
func aggregateResults(results []entities.Result) *entities.SurveySummary {
	summary := &entities.SurveySummary{
		TotalResponses:         int64(len(results)),
		AggregatedResponses:    make(map[string]map[string]int),
		AggregatedDemographics: make(map[string]map[string]int),
	}

	var scoreSum float64
	var scoreCount int
	for _, result := range results {
		if result.ValidationScore != nil {
			scoreSum += *result.ValidationScore
			scoreCount++
		}

		var responses map[string]any
		if len(result.ResponseData) > 0 && json.Unmarshal(result.ResponseData, &responses) == nil {
			for question, answer := range responses {
				bumpCount(summary.AggregatedResponses, question, fmt.Sprintf("%v", answer))
			}
		}

		var demographics map[string]any
		if len(result.RespondentDemographics) > 0 && json.Unmarshal(result.RespondentDemographics, &demographics) == nil {
			for attribute, value := range demographics {
				bumpCount(summary.AggregatedDemographics, attribute, fmt.Sprintf("%v", value))
			}
		}
	}

	if scoreCount > 0 {
		summary.AverageValidationScore = scoreSum / float64(scoreCount)
	}
	return summary
}

func bumpCount(agg map[string]map[string]int, key, value string) {
	if agg[key] == nil {
		agg[key] = make(map[string]int)
	}
	agg[key][value]++
}

package repositories

import (
	"github.com/synth-sarmi/synthsurvey-back/internal/domain/demographics"
	"github.com/synth-sarmi/synthsurvey-back/internal/domain/entities"
	"github.com/synth-sarmi/synthsurvey-back/internal/domain/errs"
	"gorm.io/gorm"
)

type IAudienceRepository interface {
	CreateWithMembers(audience *entities.Audience, filter demographics.CompiledFilter) error
	FindByUser(userID int64) ([]entities.Audience, error)
	FindOwned(id, userID int64) (*entities.Audience, error)
	MembersOf(audienceID int64) ([]entities.AudienceMember, error)
}

// AudienceRepository implementa a criação de públicos com amostragem do
// Population Store e as leituras com current_size derivado.
type AudienceRepository struct {
	db *gorm.DB
}

func NewAudienceRepository(db *gorm.DB) *AudienceRepository {
	return &AudienceRepository{
		db: db,
	}
}

// CreateWithMembers insere o público e materializa sua amostra na mesma
// transação. O sorteio é uniforme e sem reposição: ORDER BY RANDOM() com
// LIMIT no servidor, sem carregar o conjunto inteiro em memória. Zero
// registros compatíveis não é erro; o público persiste com current_size = 0.
func (r *AudienceRepository) CreateWithMembers(audience *entities.Audience, filter demographics.CompiledFilter) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(audience).Error; err != nil {
			return conflictOr(err, "Audience name already in use")
		}

		query := tx.Model(&entities.PopulationRecord{}).Select("id", "demographics")
		for _, p := range filter.Predicates {
			query = query.Where(p.Condition, p.Args...)
		}

		var records []entities.PopulationRecord
		if err := query.Order("RANDOM()").Limit(audience.Size).Find(&records).Error; err != nil {
			return internalError(err)
		}

		audience.CurrentSize = int64(len(records))
		if len(records) == 0 {
			return nil
		}

		members := make([]entities.AudienceMember, 0, len(records))
		for _, rec := range records {
			members = append(members, entities.AudienceMember{
				AudienceID:   audience.ID,
				UserID:       audience.UserID,
				IpumpID:      rec.ID,
				Demographics: rec.Demographics,
			})
		}
		if err := tx.CreateInBatches(&members, 500).Error; err != nil {
			return internalError(err)
		}
		return nil
	})
}

// FindByUser lista os públicos do usuário com o current_size derivado.
func (r *AudienceRepository) FindByUser(userID int64) ([]entities.Audience, error) {
	var audiences []entities.Audience
	query := `
		SELECT a.*, COUNT(am.id) AS current_size
		FROM audiences a
		LEFT JOIN audience_members am ON am.audience_id = a.id
		WHERE a.user_id = ?
		GROUP BY a.id
		ORDER BY a.created_at DESC`
	if err := r.db.Raw(query, userID).Scan(&audiences).Error; err != nil {
		return nil, internalError(err)
	}
	return audiences, nil
}

// FindOwned busca um público do usuário. Inexistente e não-dono são
// deliberadamente indistinguíveis para não vazar existência.
func (r *AudienceRepository) FindOwned(id, userID int64) (*entities.Audience, error) {
	var audience entities.Audience
	query := `
		SELECT a.*, COUNT(am.id) AS current_size
		FROM audiences a
		LEFT JOIN audience_members am ON am.audience_id = a.id
		WHERE a.id = ? AND a.user_id = ?
		GROUP BY a.id`
	res := r.db.Raw(query, id, userID).Scan(&audience)
	if res.Error != nil {
		return nil, internalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, errs.NewNotFound("Audience not found")
	}
	return &audience, nil
}

func (r *AudienceRepository) MembersOf(audienceID int64) ([]entities.AudienceMember, error) {
	var members []entities.AudienceMember
	if err := r.db.Where("audience_id = ?", audienceID).
		Order("id ASC").
		Find(&members).Error; err != nil {
		return nil, internalError(err)
	}
	return members, nil
}

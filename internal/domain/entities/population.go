package entities

import (
	"gorm.io/datatypes"
)

// PopulationRecord é uma linha do Population Store (censo IPUMS).
// Somente leitura para este serviço; o nome legado da tabela é mantido.
type PopulationRecord struct {
	ID           int64          `json:"id" gorm:"primaryKey;column:id;type:int8"`
	Demographics datatypes.JSON `json:"demographics" gorm:"column:demographics;type:jsonb"`
}

func (PopulationRecord) TableName() string {
	return "ipumps"
}

package entities

import (
	"time"

	"gorm.io/datatypes"
)

// AudienceMember é o snapshot imutável de um registro populacional sorteado.
// IpumpID guarda apenas a proveniência; não há foreign key para ipumps, então
// o membro sobrevive a mudanças no Population Store.
type AudienceMember struct {
	ID           int64          `json:"id" gorm:"primaryKey;column:id;type:int8"`
	AudienceID   int64          `json:"audience_id" gorm:"column:audience_id;type:int8;index"`
	UserID       int64          `json:"user_id" gorm:"column:user_id;type:int8"`
	IpumpID      int64          `json:"ipump_id" gorm:"column:ipump_id;type:int8"`
	Demographics datatypes.JSON `json:"demographics" gorm:"column:demographics;type:jsonb"`
	CreatedAt    time.Time      `json:"created_at" gorm:"column:created_at"`
}

func (AudienceMember) TableName() string {
	return "audience_members"
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type WellnessProfile struct {
	Id                  uuid.UUID                      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId              uuid.UUID                      `gorm:"type:uuid;not null;uniqueIndex"`
	Age                 int                            `gorm:"default:0"`
	Gender              string                         `gorm:"type:varchar(50)"`
	Region              string                         `gorm:"type:varchar(100)"`
	FitnessLevel        string                         `gorm:"type:varchar(50)"`
	BudgetTier          string                         `gorm:"type:varchar(50)"`
	Goals               datatypes.JSONSlice[string]    `gorm:"type:jsonb"`
	DietaryRestrictions datatypes.JSONSlice[string]    `gorm:"type:jsonb"`
	CrisisMonitoring    bool                           `gorm:"not null;default:true"`
	CreatedAt           time.Time                      `gorm:"autoCreateTime"`
	UpdatedAt           time.Time                      `gorm:"autoUpdateTime"`
}

func (WellnessProfile) TableName() string {
	return "wellness_profiles"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

type TechModel struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Type        string    `gorm:"type:varchar(100);not null;index"`
	Brand       *string   `gorm:"type:varchar(100);index"`
	Specs       *string   `gorm:"type:text"`
	Description *string   `gorm:"type:text"`
	ExtraData   *string   `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (TechModel) TableName() string {
	return "tech_models"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

type Sale struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductId  uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity   int       `gorm:"not null"`
	TotalPrice float64   `gorm:"not null"`
	SoldAt     time.Time `gorm:"autoCreateTime"`
}

func (Sale) TableName() string {
	return "sales"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Category    string    `gorm:"type:varchar(100);not null;index"`
	Price       float64   `gorm:"not null"`
	Stock       int       `gorm:"not null"`
	Description *string   `gorm:"type:text"`
	Brand       *string   `gorm:"type:varchar(100);index"`
	Specs       *string   `gorm:"type:text"`
	ReleaseDate *string   `gorm:"type:varchar(10)"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Product) TableName() string {
	return "products"
}

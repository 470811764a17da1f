package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName       string    `gorm:"type:varchar(255);not null"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash   *string   `gorm:"type:varchar(255)"`
	Phone          *string   `gorm:"type:varchar(50)"`
	RegisteredAt   time.Time `gorm:"autoCreateTime"`
	LastLoginAt    *time.Time
	TotalPurchases int       `gorm:"default:0"`
	Active         bool      `gorm:"default:true"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id             uuid.UUID
	FullName       string
	Email          string
	PasswordHash   *string
	Phone          *string
	RegisteredAt   time.Time
	LastLoginAt    *time.Time
	TotalPurchases int
	Active         bool
	UpdatedAt      time.Time
}

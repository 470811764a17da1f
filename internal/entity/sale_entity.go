package entity

import (
	"time"

	"github.com/google/uuid"
)

type Sale struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	ProductId  uuid.UUID
	Quantity   int
	TotalPrice float64
	SoldAt     time.Time
}

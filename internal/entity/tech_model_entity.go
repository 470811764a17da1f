package entity

import (
	"time"

	"github.com/google/uuid"
)

// TechModel is the flexible product-record type: any kind of tech item with
// free-form specs and an optional JSON blob of extra data.
type TechModel struct {
	Id          uuid.UUID
	Name        string
	Type        string
	Brand       *string
	Specs       *string
	Description *string
	ExtraData   *string // JSON text; parsed out at the API boundary when valid
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	Id          uuid.UUID
	Name        string
	Category    string
	Price       float64
	Stock       int
	Description *string
	Brand       *string
	Specs       *string
	ReleaseDate *string
	CreatedAt   time.Time
}

// CategoryCount is an aggregate row: products per category.
type CategoryCount struct {
	Category string
	Count    int64
}

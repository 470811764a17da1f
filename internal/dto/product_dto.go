package dto

import (
	"time"

	"github.com/google/uuid"
)

type ProductResponse struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Description *string   `json:"description,omitempty"`
	Brand       *string   `json:"brand,omitempty"`
	Specs       *string   `json:"specs,omitempty"`
	ReleaseDate *string   `json:"release_date,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type ListProductsResponse struct {
	Total    int               `json:"total"`
	Products []ProductResponse `json:"products"`
}

type StoreStatsResponse struct {
	TotalProducts int64               `json:"total_products"`
	TotalUsers    int64               `json:"total_users"`
	ActiveUsers   int64               `json:"active_users"`
	TotalSales    int64               `json:"total_sales"`
	PerCategory   []CategoryCountItem `json:"per_category"`
}

type CategoryCountItem struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTechModelRequest struct {
	Name        string  `json:"name" validate:"required"`
	Type        string  `json:"type" validate:"required"`
	Brand       *string `json:"brand,omitempty"`
	Specs       *string `json:"specs,omitempty"`
	Description *string `json:"description,omitempty"`
	ExtraData   *string `json:"extra_data,omitempty"`
}

type UpdateTechModelRequest struct {
	Name        string  `json:"name,omitempty"`
	Type        string  `json:"type,omitempty"`
	Brand       *string `json:"brand,omitempty"`
	Specs       *string `json:"specs,omitempty"`
	Description *string `json:"description,omitempty"`
	ExtraData   *string `json:"extra_data,omitempty"`
}

type TechModelResponse struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Brand       *string   `json:"brand,omitempty"`
	Specs       *string   `json:"specs,omitempty"`
	Description *string   `json:"description,omitempty"`
	ExtraData   *string   `json:"extra_data,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ListTechModelsResponse struct {
	Total  int                 `json:"total"`
	Models []TechModelResponse `json:"models"`
}

type TechModelStatsResponse struct {
	Total    int64            `json:"total"`
	PerType  map[string]int64 `json:"per_type"`
	PerBrand map[string]int64 `json:"per_brand"`
}

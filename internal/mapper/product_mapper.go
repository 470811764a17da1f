package mapper

import (
	"techstore-ai-be/internal/entity"
	"techstore-ai-be/internal/model"
)

type ProductMapper struct{}

func NewProductMapper() *ProductMapper {
	return &ProductMapper{}
}

func (m *ProductMapper) ToEntity(p *model.Product) *entity.Product {
	if p == nil {
		return nil
	}
	return &entity.Product{
		Id:          p.Id,
		Name:        p.Name,
		Category:    p.Category,
		Price:       p.Price,
		Stock:       p.Stock,
		Description: p.Description,
		Brand:       p.Brand,
		Specs:       p.Specs,
		ReleaseDate: p.ReleaseDate,
		CreatedAt:   p.CreatedAt,
	}
}

func (m *ProductMapper) ToModel(p *entity.Product) *model.Product {
	if p == nil {
		return nil
	}
	return &model.Product{
		Id:          p.Id,
		Name:        p.Name,
		Category:    p.Category,
		Price:       p.Price,
		Stock:       p.Stock,
		Description: p.Description,
		Brand:       p.Brand,
		Specs:       p.Specs,
		ReleaseDate: p.ReleaseDate,
		CreatedAt:   p.CreatedAt,
	}
}

package mapper

import (
	"techstore-ai-be/internal/entity"
	"techstore-ai-be/internal/model"
)

type SaleMapper struct{}

func NewSaleMapper() *SaleMapper {
	return &SaleMapper{}
}

func (m *SaleMapper) ToEntity(s *model.Sale) *entity.Sale {
	if s == nil {
		return nil
	}
	return &entity.Sale{
		Id:         s.Id,
		UserId:     s.UserId,
		ProductId:  s.ProductId,
		Quantity:   s.Quantity,
		TotalPrice: s.TotalPrice,
		SoldAt:     s.SoldAt,
	}
}

func (m *SaleMapper) ToModel(s *entity.Sale) *model.Sale {
	if s == nil {
		return nil
	}
	return &model.Sale{
		Id:         s.Id,
		UserId:     s.UserId,
		ProductId:  s.ProductId,
		Quantity:   s.Quantity,
		TotalPrice: s.TotalPrice,
		SoldAt:     s.SoldAt,
	}
}

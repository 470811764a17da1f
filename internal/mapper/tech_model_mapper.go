package mapper

import (
	"techstore-ai-be/internal/entity"
	"techstore-ai-be/internal/model"
)

type TechModelMapper struct{}

func NewTechModelMapper() *TechModelMapper {
	return &TechModelMapper{}
}

func (m *TechModelMapper) ToEntity(t *model.TechModel) *entity.TechModel {
	if t == nil {
		return nil
	}
	return &entity.TechModel{
		Id:          t.Id,
		Name:        t.Name,
		Type:        t.Type,
		Brand:       t.Brand,
		Specs:       t.Specs,
		Description: t.Description,
		ExtraData:   t.ExtraData,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (m *TechModelMapper) ToModel(t *entity.TechModel) *model.TechModel {
	if t == nil {
		return nil
	}
	return &model.TechModel{
		Id:          t.Id,
		Name:        t.Name,
		Type:        t.Type,
		Brand:       t.Brand,
		Specs:       t.Specs,
		Description: t.Description,
		ExtraData:   t.ExtraData,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

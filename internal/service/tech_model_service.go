package service

import (
	"context"
	"errors"
	"time"

	"techstore-ai-be/internal/dto"
	"techstore-ai-be/internal/entity"
	"techstore-ai-be/internal/repository/contract"
	"techstore-ai-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ITechModelService interface {
	ListTechModels(ctx context.Context, modelType, brand, search string) (*dto.ListTechModelsResponse, error)
	GetTechModel(ctx context.Context, id uuid.UUID) (*dto.TechModelResponse, error)
	CreateTechModel(ctx context.Context, req *dto.CreateTechModelRequest) (*dto.TechModelResponse, error)
	UpdateTechModel(ctx context.Context, id uuid.UUID, req *dto.UpdateTechModelRequest) (*dto.TechModelResponse, error)
	DeleteTechModel(ctx context.Context, id uuid.UUID) error
	GetTechModelStats(ctx context.Context) (*dto.TechModelStatsResponse, error)
}

type techModelService struct {
	techModelRepository contract.TechModelRepository
}

func NewTechModelService(techModelRepository contract.TechModelRepository) ITechModelService {
	return &techModelService{
		techModelRepository: techModelRepository,
	}
}

// ListTechModels filters are mutually exclusive: search wins over type, type
// over brand, matching the query precedence of the public API.
func (s *techModelService) ListTechModels(ctx context.Context, modelType, brand, search string) (*dto.ListTechModelsResponse, error) {
	var (
		models []*entity.TechModel
		err    error
	)
	switch {
	case search != "":
		models, err = s.techModelRepository.Search(ctx, search)
	case modelType != "":
		models, err = s.techModelRepository.FindAll(ctx, specification.ByType{Type: modelType})
	case brand != "":
		models, err = s.techModelRepository.FindAll(ctx, specification.ByBrand{Brand: brand})
	default:
		models, err = s.techModelRepository.FindAll(ctx, specification.OrderBy{Field: "name"})
	}
	if err != nil {
		return nil, err
	}

	resp := &dto.ListTechModelsResponse{
		Total:  len(models),
		Models: make([]dto.TechModelResponse, len(models)),
	}
	for i, m := range models {
		resp.Models[i] = *toTechModelResponse(m)
	}
	return resp, nil
}

func (s *techModelService) GetTechModel(ctx context.Context, id uuid.UUID) (*dto.TechModelResponse, error) {
	model, err := s.techModelRepository.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if model == nil {
		return nil, errors.New("tech model not found")
	}
	return toTechModelResponse(model), nil
}

func (s *techModelService) CreateTechModel(ctx context.Context, req *dto.CreateTechModelRequest) (*dto.TechModelResponse, error) {
	now := time.Now()
	model := &entity.TechModel{
		Id:          uuid.New(),
		Name:        req.Name,
		Type:        req.Type,
		Brand:       req.Brand,
		Specs:       req.Specs,
		Description: req.Description,
		ExtraData:   req.ExtraData,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.techModelRepository.Create(ctx, model); err != nil {
		return nil, err
	}
	return toTechModelResponse(model), nil
}

func (s *techModelService) UpdateTechModel(ctx context.Context, id uuid.UUID, req *dto.UpdateTechModelRequest) (*dto.TechModelResponse, error) {
	model, err := s.techModelRepository.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if model == nil {
		return nil, errors.New("tech model not found")
	}

	if req.Name != "" {
		model.Name = req.Name
	}
	if req.Type != "" {
		model.Type = req.Type
	}
	if req.Brand != nil {
		model.Brand = req.Brand
	}
	if req.Specs != nil {
		model.Specs = req.Specs
	}
	if req.Description != nil {
		model.Description = req.Description
	}
	if req.ExtraData != nil {
		model.ExtraData = req.ExtraData
	}
	model.UpdatedAt = time.Now()

	if err := s.techModelRepository.Update(ctx, model); err != nil {
		return nil, err
	}
	return toTechModelResponse(model), nil
}

func (s *techModelService) DeleteTechModel(ctx context.Context, id uuid.UUID) error {
	model, err := s.techModelRepository.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if model == nil {
		return errors.New("tech model not found")
	}
	return s.techModelRepository.Delete(ctx, id)
}

func (s *techModelService) GetTechModelStats(ctx context.Context) (*dto.TechModelStatsResponse, error) {
	total, err := s.techModelRepository.Count(ctx)
	if err != nil {
		return nil, err
	}
	models, err := s.techModelRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	perType := make(map[string]int64)
	perBrand := make(map[string]int64)
	for _, m := range models {
		perType[m.Type]++
		if m.Brand != nil {
			perBrand[*m.Brand]++
		}
	}

	return &dto.TechModelStatsResponse{
		Total:    total,
		PerType:  perType,
		PerBrand: perBrand,
	}, nil
}

func toTechModelResponse(m *entity.TechModel) *dto.TechModelResponse {
	return &dto.TechModelResponse{
		Id:          m.Id,
		Name:        m.Name,
		Type:        m.Type,
		Brand:       m.Brand,
		Specs:       m.Specs,
		Description: m.Description,
		ExtraData:   m.ExtraData,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

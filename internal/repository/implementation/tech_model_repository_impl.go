package implementation

import (
	"context"
	"errors"

	"techstore-ai-be/internal/entity"
	"techstore-ai-be/internal/mapper"
	"techstore-ai-be/internal/model"
	"techstore-ai-be/internal/repository/contract"
	"techstore-ai-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TechModelRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TechModelMapper
}

func NewTechModelRepository(db *gorm.DB) contract.TechModelRepository {
	return &TechModelRepositoryImpl{
		db:     db,
		mapper: mapper.NewTechModelMapper(),
	}
}

func (r *TechModelRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TechModelRepositoryImpl) Create(ctx context.Context, techModel *entity.TechModel) error {
	modelTechModel := r.mapper.ToModel(techModel)
	if err := r.db.WithContext(ctx).Create(modelTechModel).Error; err != nil {
		return err
	}
	*techModel = *r.mapper.ToEntity(modelTechModel)
	return nil
}

func (r *TechModelRepositoryImpl) Update(ctx context.Context, techModel *entity.TechModel) error {
	modelTechModel := r.mapper.ToModel(techModel)
	return r.db.WithContext(ctx).Save(modelTechModel).Error
}

func (r *TechModelRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.TechModel{}).Error
}

func (r *TechModelRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TechModel, error) {
	var modelTechModel model.TechModel
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelTechModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&modelTechModel), nil
}

func (r *TechModelRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TechModel, error) {
	var modelTechModels []model.TechModel
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelTechModels).Error; err != nil {
		return nil, err
	}

	techModels := make([]*entity.TechModel, len(modelTechModels))
	for i := range modelTechModels {
		techModels[i] = r.mapper.ToEntity(&modelTechModels[i])
	}
	return techModels, nil
}

func (r *TechModelRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.TechModel{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *TechModelRepositoryImpl) Search(ctx context.Context, term string) ([]*entity.TechModel, error) {
	var modelTechModels []model.TechModel
	pattern := "%" + term + "%"

	err := r.db.WithContext(ctx).
		Where("name ILIKE ? OR brand ILIKE ? OR type ILIKE ?", pattern, pattern, pattern).
		Find(&modelTechModels).Error
	if err != nil {
		return nil, err
	}

	techModels := make([]*entity.TechModel, len(modelTechModels))
	for i := range modelTechModels {
		techModels[i] = r.mapper.ToEntity(&modelTechModels[i])
	}
	return techModels, nil
}

package implementation

import (
	"context"

	"techstore-ai-be/internal/entity"
	"techstore-ai-be/internal/mapper"
	"techstore-ai-be/internal/model"
	"techstore-ai-be/internal/repository/contract"
	"techstore-ai-be/internal/repository/specification"

	"gorm.io/gorm"
)

type SaleRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SaleMapper
}

func NewSaleRepository(db *gorm.DB) contract.SaleRepository {
	return &SaleRepositoryImpl{
		db:     db,
		mapper: mapper.NewSaleMapper(),
	}
}

func (r *SaleRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SaleRepositoryImpl) Create(ctx context.Context, sale *entity.Sale) error {
	modelSale := r.mapper.ToModel(sale)
	if err := r.db.WithContext(ctx).Create(modelSale).Error; err != nil {
		return err
	}
	*sale = *r.mapper.ToEntity(modelSale)
	return nil
}

func (r *SaleRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Sale, error) {
	var modelSales []model.Sale
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelSales).Error; err != nil {
		return nil, err
	}

	sales := make([]*entity.Sale, len(modelSales))
	for i := range modelSales {
		sales[i] = r.mapper.ToEntity(&modelSales[i])
	}
	return sales, nil
}

func (r *SaleRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Sale{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

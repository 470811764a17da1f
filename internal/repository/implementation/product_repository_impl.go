package implementation

import (
	"context"
	"errors"

	"techstore-ai-be/internal/entity"
	"techstore-ai-be/internal/mapper"
	"techstore-ai-be/internal/model"
	"techstore-ai-be/internal/repository/contract"
	"techstore-ai-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ProductRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProductMapper
}

func NewProductRepository(db *gorm.DB) contract.ProductRepository {
	return &ProductRepositoryImpl{
		db:     db,
		mapper: mapper.NewProductMapper(),
	}
}

func (r *ProductRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ProductRepositoryImpl) Create(ctx context.Context, product *entity.Product) error {
	modelProduct := r.mapper.ToModel(product)
	if err := r.db.WithContext(ctx).Create(modelProduct).Error; err != nil {
		return err
	}
	*product = *r.mapper.ToEntity(modelProduct)
	return nil
}

func (r *ProductRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Product, error) {
	var modelProduct model.Product
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelProduct).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&modelProduct), nil
}

func (r *ProductRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error) {
	var modelProducts []model.Product
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelProducts).Error; err != nil {
		return nil, err
	}

	products := make([]*entity.Product, len(modelProducts))
	for i := range modelProducts {
		products[i] = r.mapper.ToEntity(&modelProducts[i])
	}
	return products, nil
}

func (r *ProductRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Product{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ProductRepositoryImpl) Search(ctx context.Context, term string) ([]*entity.Product, error) {
	var modelProducts []model.Product
	pattern := "%" + term + "%"

	err := r.db.WithContext(ctx).
		Where("name ILIKE ? OR description ILIKE ? OR brand ILIKE ?", pattern, pattern, pattern).
		Find(&modelProducts).Error
	if err != nil {
		return nil, err
	}

	products := make([]*entity.Product, len(modelProducts))
	for i := range modelProducts {
		products[i] = r.mapper.ToEntity(&modelProducts[i])
	}
	return products, nil
}

func (r *ProductRepositoryImpl) CountPerCategory(ctx context.Context) ([]entity.CategoryCount, error) {
	var rows []entity.CategoryCount
	err := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Select("category, COUNT(*) as count").
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

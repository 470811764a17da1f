package contract

import (
	"context"

	"techstore-ai-be/internal/entity"
	"techstore-ai-be/internal/repository/specification"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Product, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Search matches the term against name, description and brand (LIKE).
	Search(ctx context.Context, term string) ([]*entity.Product, error)

	// CountPerCategory returns product counts grouped by category.
	CountPerCategory(ctx context.Context) ([]entity.CategoryCount, error)
}

package contract

import (
	"context"

	"techstore-ai-be/internal/entity"
	"techstore-ai-be/internal/repository/specification"
)

type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Sale, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

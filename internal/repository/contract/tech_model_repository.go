package contract

import (
	"context"

	"techstore-ai-be/internal/entity"
	"techstore-ai-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TechModelRepository interface {
	Create(ctx context.Context, techModel *entity.TechModel) error
	Update(ctx context.Context, techModel *entity.TechModel) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TechModel, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TechModel, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Search matches the term against name, description, brand and type (LIKE).
	Search(ctx context.Context, term string) ([]*entity.TechModel, error)
}

package service

import (
	"context"

	"techstore-ai-be/internal/dto"
	"techstore-ai-be/internal/entity"
	"techstore-ai-be/internal/repository/contract"
	"techstore-ai-be/internal/repository/specification"
)

type IProductService interface {
	ListProducts(ctx context.Context) (*dto.ListProductsResponse, error)
	ListByCategory(ctx context.Context, category string) (*dto.ListProductsResponse, error)
	SearchProducts(ctx context.Context, term string) (*dto.ListProductsResponse, error)
	GetStoreStats(ctx context.Context) (*dto.StoreStatsResponse, error)
}

type productService struct {
	productRepository contract.ProductRepository
	userRepository    contract.UserRepository
	saleRepository    contract.SaleRepository
}

func NewProductService(
	productRepository contract.ProductRepository,
	userRepository contract.UserRepository,
	saleRepository contract.SaleRepository,
) IProductService {
	return &productService{
		productRepository: productRepository,
		userRepository:    userRepository,
		saleRepository:    saleRepository,
	}
}

func (s *productService) ListProducts(ctx context.Context) (*dto.ListProductsResponse, error) {
	products, err := s.productRepository.FindAll(ctx, specification.OrderBy{Field: "name"})
	if err != nil {
		return nil, err
	}
	return toListProductsResponse(products), nil
}

func (s *productService) ListByCategory(ctx context.Context, category string) (*dto.ListProductsResponse, error) {
	products, err := s.productRepository.FindAll(ctx, specification.ByCategory{Category: category})
	if err != nil {
		return nil, err
	}
	return toListProductsResponse(products), nil
}

func (s *productService) SearchProducts(ctx context.Context, term string) (*dto.ListProductsResponse, error) {
	products, err := s.productRepository.Search(ctx, term)
	if err != nil {
		return nil, err
	}
	return toListProductsResponse(products), nil
}

func (s *productService) GetStoreStats(ctx context.Context) (*dto.StoreStatsResponse, error) {
	totalProducts, err := s.productRepository.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalUsers, err := s.userRepository.Count(ctx)
	if err != nil {
		return nil, err
	}
	activeUsers, err := s.userRepository.Count(ctx, specification.ActiveOnly{})
	if err != nil {
		return nil, err
	}
	totalSales, err := s.saleRepository.Count(ctx)
	if err != nil {
		return nil, err
	}
	perCategory, err := s.productRepository.CountPerCategory(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]dto.CategoryCountItem, len(perCategory))
	for i, c := range perCategory {
		items[i] = dto.CategoryCountItem{Category: c.Category, Count: c.Count}
	}

	return &dto.StoreStatsResponse{
		TotalProducts: totalProducts,
		TotalUsers:    totalUsers,
		ActiveUsers:   activeUsers,
		TotalSales:    totalSales,
		PerCategory:   items,
	}, nil
}

func toListProductsResponse(products []*entity.Product) *dto.ListProductsResponse {
	resp := &dto.ListProductsResponse{
		Total:    len(products),
		Products: make([]dto.ProductResponse, len(products)),
	}
	for i, p := range products {
		resp.Products[i] = dto.ProductResponse{
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
	return resp
}

package controller

import (
	"techstore-ai-be/internal/pkg/serverutils"
	"techstore-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IProductController interface {
	RegisterRoutes(r fiber.Router)
	ListProducts(ctx *fiber.Ctx) error
	ListByCategory(ctx *fiber.Ctx) error
	SearchProducts(ctx *fiber.Ctx) error
	GetStoreStats(ctx *fiber.Ctx) error
}

type productController struct {
	service service.IProductService
}

func NewProductController(service service.IProductService) IProductController {
	return &productController{service: service}
}

func (c *productController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/products")
	h.Get("/", c.ListProducts)
	h.Get("/search", c.SearchProducts)
	h.Get("/category/:category", c.ListByCategory)

	r.Get("/stats", c.GetStoreStats)
}

func (c *productController) ListProducts(ctx *fiber.Ctx) error {
	res, err := c.service.ListProducts(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Products", res))
}

func (c *productController) ListByCategory(ctx *fiber.Ctx) error {
	category := ctx.Params("category")

	res, err := c.service.ListByCategory(ctx.Context(), category)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Products in category "+category, res))
}

func (c *productController) SearchProducts(ctx *fiber.Ctx) error {
	q := ctx.Query("q")
	if q == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Query parameter \"q\" is required"))
	}

	res, err := c.service.SearchProducts(ctx.Context(), q)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Search results", res))
}

func (c *productController) GetStoreStats(ctx *fiber.Ctx) error {
	res, err := c.service.GetStoreStats(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Store statistics", res))
}

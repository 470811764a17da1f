package controller

import (
	"techstore-ai-be/internal/dto"
	"techstore-ai-be/internal/pkg/serverutils"
	"techstore-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITechModelController interface {
	RegisterRoutes(r fiber.Router)
	ListTechModels(ctx *fiber.Ctx) error
	GetTechModelStats(ctx *fiber.Ctx) error
	GetTechModel(ctx *fiber.Ctx) error
	CreateTechModel(ctx *fiber.Ctx) error
	UpdateTechModel(ctx *fiber.Ctx) error
	DeleteTechModel(ctx *fiber.Ctx) error
}

type techModelController struct {
	service service.ITechModelService
}

func NewTechModelController(service service.ITechModelService) ITechModelController {
	return &techModelController{service: service}
}

func (c *techModelController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/models")
	h.Get("/", c.ListTechModels)
	// stats route must be registered before the :id route
	h.Get("/stats", c.GetTechModelStats)
	h.Get("/:id", c.GetTechModel)
	h.Post("/", serverutils.JwtMiddleware, c.CreateTechModel)
	h.Put("/:id", serverutils.JwtMiddleware, c.UpdateTechModel)
	h.Delete("/:id", serverutils.JwtMiddleware, c.DeleteTechModel)
}

func (c *techModelController) ListTechModels(ctx *fiber.Ctx) error {
	res, err := c.service.ListTechModels(ctx.Context(), ctx.Query("type"), ctx.Query("brand"), ctx.Query("search"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Tech models", res))
}

func (c *techModelController) GetTechModelStats(ctx *fiber.Ctx) error {
	res, err := c.service.GetTechModelStats(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Tech model statistics", res))
}

func (c *techModelController) GetTechModel(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid model id"))
	}

	res, err := c.service.GetTechModel(ctx.Context(), id)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Tech model", res))
}

func (c *techModelController) CreateTechModel(ctx *fiber.Ctx) error {
	var req dto.CreateTechModelRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateTechModel(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Tech model created", res))
}

func (c *techModelController) UpdateTechModel(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid model id"))
	}

	var req dto.UpdateTechModelRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	res, err := c.service.UpdateTechModel(ctx.Context(), id, &req)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Tech model updated", res))
}

func (c *techModelController) DeleteTechModel(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid model id"))
	}

	if err := c.service.DeleteTechModel(ctx.Context(), id); err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Tech model deleted", nil))
}

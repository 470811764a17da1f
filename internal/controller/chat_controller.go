package controller

import (
	"techstore-ai-be/internal/dto"
	"techstore-ai-be/internal/pkg/serverutils"
	"techstore-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	CreateSession(ctx *fiber.Ctx) error
	ListSessions(ctx *fiber.Ctx) error
	ClearSession(ctx *fiber.Ctx) error
	GetSessionHistory(ctx *fiber.Ctx) error
	GetSessionStats(ctx *fiber.Ctx) error
	ListModels(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Post("/chat", serverutils.OptionalJwtMiddleware, c.Chat)
	r.Get("/chat/models", c.ListModels)

	h := r.Group("/chat/sessions")
	h.Post("/", c.CreateSession)
	h.Get("/", c.ListSessions)
	h.Delete("/:id", c.ClearSession)
	h.Get("/:id/history", c.GetSessionHistory)
	h.Get("/:id/stats", c.GetSessionStats)
}

func (c *chatController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Chat(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Chat response", res))
}

func (c *chatController) CreateSession(ctx *fiber.Ctx) error {
	res := c.service.CreateSession()
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Session created", res))
}

func (c *chatController) ListSessions(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Active sessions", c.service.ListSessions()))
}

func (c *chatController) GetSessionHistory(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Session history", c.service.GetSessionHistory(ctx.Params("id"))))
}

func (c *chatController) ClearSession(ctx *fiber.Ctx) error {
	if !c.service.ClearSession(ctx.Params("id")) {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Session not found"))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Session cleared", nil))
}

func (c *chatController) GetSessionStats(ctx *fiber.Ctx) error {
	res, err := c.service.GetSessionStats(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Session statistics", res))
}

func (c *chatController) ListModels(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Available models", c.service.ListModels()))
}

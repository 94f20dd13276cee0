package controller

import (
	"ai-travelmate-be/internal/dto"
	"ai-travelmate-be/internal/pkg/serverutils"
	"ai-travelmate-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAssistantController interface {
	RegisterRoutes(r fiber.Router)
	CreateSession(ctx *fiber.Ctx) error
	Chat(ctx *fiber.Ctx) error
	GetSessionState(ctx *fiber.Ctx) error
	GetHistory(ctx *fiber.Ctx) error
	ClearSession(ctx *fiber.Ctx) error
}

type assistantController struct {
	assistantService service.IAssistantService
}

func NewAssistantController(assistantService service.IAssistantService) IAssistantController {
	return &assistantController{
		assistantService: assistantService,
	}
}

func (c *assistantController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/assistant/v1")
	// create-session registers before the middleware so it stays open
	h.Post("create-session", c.CreateSession)
	h.Use(serverutils.SessionTokenMiddleware)
	h.Post("chat", c.Chat)
	h.Get("session", c.GetSessionState)
	h.Get("history", c.GetHistory)
	h.Delete("session", c.ClearSession)
}

func (c *assistantController) CreateSession(ctx *fiber.Ctx) error {
	res, err := c.assistantService.CreateSession(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create session", res))
}

func (c *assistantController) Chat(ctx *fiber.Ctx) error {
	// 1. Ambil Session ID dari Token
	sessionIdStr := ctx.Locals("session_id").(string)
	sessionId, _ := uuid.Parse(sessionIdStr)

	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	// 2. Kirim sessionId ke Service
	res, err := c.assistantService.Chat(ctx.Context(), sessionId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success chat", res))
}

func (c *assistantController) GetSessionState(ctx *fiber.Ctx) error {
	sessionIdStr := ctx.Locals("session_id").(string)
	sessionId, _ := uuid.Parse(sessionIdStr)

	res, err := c.assistantService.GetSessionState(ctx.Context(), sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show session", res))
}

func (c *assistantController) GetHistory(ctx *fiber.Ctx) error {
	sessionIdStr := ctx.Locals("session_id").(string)
	sessionId, _ := uuid.Parse(sessionIdStr)

	limit := ctx.QueryInt("limit", 0)

	res, err := c.assistantService.GetHistory(ctx.Context(), sessionId, limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show history", res))
}

func (c *assistantController) ClearSession(ctx *fiber.Ctx) error {
	sessionIdStr := ctx.Locals("session_id").(string)
	sessionId, _ := uuid.Parse(sessionIdStr)

	err := c.assistantService.ClearSession(ctx.Context(), sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success clear session", nil))
}

package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ShubhamChaudhary05/documindAI/internal/dto"
	"github.com/ShubhamChaudhary05/documindAI/internal/pkg/apperror"
	"github.com/ShubhamChaudhary05/documindAI/internal/pkg/serverutils"
	"github.com/ShubhamChaudhary05/documindAI/internal/service"
)

type IConversationController interface {
	RegisterRoutes(r fiber.Router)
	Ask(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type conversationController struct {
	conversationService service.IConversationService
}

func NewConversationController(conversationService service.IConversationService) IConversationController {
	return &conversationController{conversationService: conversationService}
}

func (c *conversationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/conversations")
	h.Post("/ask", c.Ask)
	h.Get("/:id", c.Show)
}

func (c *conversationController) Ask(ctx *fiber.Ctx) error {
	var req dto.AskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.conversationService.Ask(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *conversationController) Show(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return apperror.ErrConversationNotFound
	}

	res, err := c.conversationService.Get(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

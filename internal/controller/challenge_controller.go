package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ShubhamChaudhary05/documindAI/internal/dto"
	"github.com/ShubhamChaudhary05/documindAI/internal/pkg/apperror"
	"github.com/ShubhamChaudhary05/documindAI/internal/pkg/serverutils"
	"github.com/ShubhamChaudhary05/documindAI/internal/service"
)

type IChallengeController interface {
	RegisterRoutes(r fiber.Router)
	Start(ctx *fiber.Ctx) error
	Answer(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type challengeController struct {
	challengeService service.IChallengeService
}

func NewChallengeController(challengeService service.IChallengeService) IChallengeController {
	return &challengeController{challengeService: challengeService}
}

func (c *challengeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/challenges")
	h.Post("/start", c.Start)
	h.Post("/answer", c.Answer)
	h.Get("/:id", c.Show)
}

func (c *challengeController) Start(ctx *fiber.Ctx) error {
	var req dto.StartChallengeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.challengeService.Start(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *challengeController) Answer(ctx *fiber.Ctx) error {
	var req dto.SubmitAnswerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.challengeService.Submit(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *challengeController) Show(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return apperror.ErrChallengeNotFound
	}

	res, err := c.challengeService.Get(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

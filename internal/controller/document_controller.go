package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ShubhamChaudhary05/documindAI/internal/pkg/apperror"
	"github.com/ShubhamChaudhary05/documindAI/internal/service"
)

type IDocumentController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type documentController struct {
	documentService service.IDocumentService
}

func NewDocumentController(documentService service.IDocumentService) IDocumentController {
	return &documentController{documentService: documentService}
}

func (c *documentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/documents")
	h.Post("/upload", c.Upload)
	h.Get("/:id", c.Show)
}

func (c *documentController) Upload(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("document")
	if err != nil {
		return apperror.Validation("No file uploaded")
	}

	res, err := c.documentService.Upload(ctx.Context(), file)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *documentController) Show(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return apperror.ErrDocumentNotFound
	}

	res, err := c.documentService.Get(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

package controller

import (
	"os"
	"path/filepath"

	"compliance-audit-be/internal/pkg/serverutils"
	"compliance-audit-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IRegulationController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Upload(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type regulationController struct {
	matcherService   service.IMatcherService
	ingestionService service.IIngestionService
}

func NewRegulationController(
	matcherService service.IMatcherService,
	ingestionService service.IIngestionService,
) IRegulationController {
	return &regulationController{
		matcherService:   matcherService,
		ingestionService: ingestionService,
	}
}

func (c *regulationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/regulation/v1")
	h.Get("", c.List)
	h.Post("upload", c.Upload)
	h.Delete(":id", c.Delete)
}

func (c *regulationController) List(ctx *fiber.Ctx) error {
	res, err := c.matcherService.ListRegulations(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list regulations", res))
}

// Upload receives one document file, spools it to a temp path and hands it
// to the ingestion pipeline. The temp file is always removed.
func (c *regulationController) Upload(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "missing file field")
	}

	tmpDir, err := os.MkdirTemp("", "regulation-upload-*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmpDir)

	tmpPath := filepath.Join(tmpDir, filepath.Base(fileHeader.Filename))
	if err := ctx.SaveFile(fileHeader, tmpPath); err != nil {
		return err
	}

	res, err := c.ingestionService.IngestUpload(ctx.Context(), tmpPath, fileHeader.Filename)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success upload regulation", res))
}

func (c *regulationController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid regulation id")
	}

	if err := c.ingestionService.DeleteRegulation(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete regulation", nil))
}

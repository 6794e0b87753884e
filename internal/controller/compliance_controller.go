package controller

import (
	"compliance-audit-be/internal/dto"
	"compliance-audit-be/internal/pkg/serverutils"
	"compliance-audit-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IComplianceController interface {
	RegisterRoutes(r fiber.Router)
	Match(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
	ListRoles(ctx *fiber.Ctx) error
	ListDocumentTypes(ctx *fiber.Ctx) error
	ListAuditRules(ctx *fiber.Ctx) error
}

type complianceController struct {
	matcherService service.IMatcherService
}

func NewComplianceController(matcherService service.IMatcherService) IComplianceController {
	return &complianceController{
		matcherService: matcherService,
	}
}

func (c *complianceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/compliance/v1")
	h.Get("match", c.Match)
	h.Get("search", c.Search)
	h.Get("roles", c.ListRoles)
	h.Get("document-types", c.ListDocumentTypes)
	h.Get("audit-rules", c.ListAuditRules)
}

func (c *complianceController) Match(ctx *fiber.Ctx) error {
	var req dto.MatchRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.matcherService.Match(ctx.Context(), req.Role, req.DocumentType)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success match clauses", res))
}

func (c *complianceController) Search(ctx *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	if req.Limit == 0 {
		req.Limit = 20
	}

	res, err := c.matcherService.Search(ctx.Context(), req.Keyword, req.Limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search clauses", res))
}

func (c *complianceController) ListRoles(ctx *fiber.Ctx) error {
	res, err := c.matcherService.ListRoles(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list roles", res))
}

func (c *complianceController) ListDocumentTypes(ctx *fiber.Ctx) error {
	res, err := c.matcherService.ListDocumentTypes(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list document types", res))
}

func (c *complianceController) ListAuditRules(ctx *fiber.Ctx) error {
	res, err := c.matcherService.ListAuditRules(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list audit rules", res))
}

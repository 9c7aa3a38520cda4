package deliveries

import (
	"github.com/gofiber/fiber/v2"
	"github.com/servicehub/servicehub-core/internal/app/middlewares"
	"github.com/servicehub/servicehub-core/internal/app/models"
	"github.com/servicehub/servicehub-core/internal/app/pkg"
	"github.com/servicehub/servicehub-core/internal/app/services"
)

type ProposalHandler struct {
	proposalService *services.ProposalService
	authMiddleware  *middlewares.AuthMiddleware
}

func NewProposalHandler(proposalService *services.ProposalService, authMiddleware *middlewares.AuthMiddleware) *ProposalHandler {
	return &ProposalHandler{
		proposalService: proposalService,
		authMiddleware:  authMiddleware,
	}
}

func (h *ProposalHandler) RegisterRoutes(router fiber.Router) {
	proposalGroup := router.Group("/proposals")

	proposalGroup.Get("/", h.GetProposals)
	proposalGroup.Get("/:id", h.GetProposal)

	proposalGroup.Post("/", h.authMiddleware.RequireAuth, h.CreateProposal)
	proposalGroup.Patch("/:id", h.authMiddleware.RequireAuth, h.UpdateProposal)
	proposalGroup.Delete("/:id", h.authMiddleware.RequireAuth, h.DeleteProposal)
	proposalGroup.Post("/:id/restore", h.authMiddleware.RequireAuth, h.RestoreProposal)
}

func (h *ProposalHandler) CreateProposal(c *fiber.Ctx) error {
	var req models.ProposalCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	proposal, err := h.proposalService.CreateProposal(pkg.RequestInfoFromCtx(c), &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, proposal)
}

func (h *ProposalHandler) GetProposal(c *fiber.Ctx) error {
	id := c.Params("id")
	mode := models.ParseQueryMode(c.Query("mode"))

	proposal, err := h.proposalService.GetProposal(id, mode)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, proposal)
}

func (h *ProposalHandler) GetProposals(c *fiber.Ctx) error {
	pagination := parsePagination(c)
	mode := models.ParseQueryMode(c.Query("mode"))

	var status *models.ProposalStatus
	if statusStr := c.Query("status"); statusStr != "" {
		proposalStatus := models.ProposalStatus(statusStr)
		status = &proposalStatus
	}

	proposals, err := h.proposalService.GetProposals(pagination, mode, status)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, proposals)
}

func (h *ProposalHandler) UpdateProposal(c *fiber.Ctx) error {
	id := c.Params("id")

	var req models.ProposalUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	proposal, err := h.proposalService.UpdateProposal(pkg.RequestInfoFromCtx(c), id, &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, proposal)
}

func (h *ProposalHandler) DeleteProposal(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.proposalService.DeleteProposal(pkg.RequestInfoFromCtx(c), id); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse[any](c, nil)
}

func (h *ProposalHandler) RestoreProposal(c *fiber.Ctx) error {
	id := c.Params("id")

	proposal, err := h.proposalService.RestoreProposal(pkg.RequestInfoFromCtx(c), id)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, proposal)
}

package deliveries

import (
	"github.com/gofiber/fiber/v2"
	"github.com/servicehub/servicehub-core/internal/app/middlewares"
	"github.com/servicehub/servicehub-core/internal/app/models"
	"github.com/servicehub/servicehub-core/internal/app/pkg"
	"github.com/servicehub/servicehub-core/internal/app/services"
)

type QuoteHandler struct {
	quoteService   *services.QuoteService
	authMiddleware *middlewares.AuthMiddleware
}

func NewQuoteHandler(quoteService *services.QuoteService, authMiddleware *middlewares.AuthMiddleware) *QuoteHandler {
	return &QuoteHandler{
		quoteService:   quoteService,
		authMiddleware: authMiddleware,
	}
}

func (h *QuoteHandler) RegisterRoutes(router fiber.Router) {
	quoteGroup := router.Group("/quotes")

	quoteGroup.Get("/", h.GetQuotes)
	quoteGroup.Get("/:id", h.GetQuote)

	quoteGroup.Post("/", h.authMiddleware.RequireAuth, h.CreateQuote)
	quoteGroup.Patch("/:id", h.authMiddleware.RequireAuth, h.UpdateQuote)
	quoteGroup.Delete("/:id", h.authMiddleware.RequireAuth, h.DeleteQuote)
	quoteGroup.Post("/:id/restore", h.authMiddleware.RequireAuth, h.RestoreQuote)
	quoteGroup.Post("/:id/send", h.authMiddleware.RequireAuth, h.SendQuote)
	quoteGroup.Post("/:id/approve", h.authMiddleware.RequireAuth, h.ApproveQuote)
}

func (h *QuoteHandler) CreateQuote(c *fiber.Ctx) error {
	var req models.QuoteCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	quote, err := h.quoteService.CreateQuote(pkg.RequestInfoFromCtx(c), &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, quote)
}

func (h *QuoteHandler) GetQuote(c *fiber.Ctx) error {
	id := c.Params("id")
	mode := models.ParseQueryMode(c.Query("mode"))

	quote, err := h.quoteService.GetQuote(id, mode)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, quote)
}

func (h *QuoteHandler) GetQuotes(c *fiber.Ctx) error {
	pagination := parsePagination(c)
	mode := models.ParseQueryMode(c.Query("mode"))

	var status *models.QuoteStatus
	if statusStr := c.Query("status"); statusStr != "" {
		quoteStatus := models.QuoteStatus(statusStr)
		status = &quoteStatus
	}

	quotes, err := h.quoteService.GetQuotes(pagination, mode, status)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, quotes)
}

func (h *QuoteHandler) UpdateQuote(c *fiber.Ctx) error {
	id := c.Params("id")

	var req models.QuoteUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	quote, err := h.quoteService.UpdateQuote(pkg.RequestInfoFromCtx(c), id, &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, quote)
}

func (h *QuoteHandler) DeleteQuote(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.quoteService.DeleteQuote(pkg.RequestInfoFromCtx(c), id); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse[any](c, nil)
}

func (h *QuoteHandler) RestoreQuote(c *fiber.Ctx) error {
	id := c.Params("id")

	quote, err := h.quoteService.RestoreQuote(pkg.RequestInfoFromCtx(c), id)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, quote)
}

func (h *QuoteHandler) SendQuote(c *fiber.Ctx) error {
	id := c.Params("id")

	quote, err := h.quoteService.SendQuote(pkg.RequestInfoFromCtx(c), id)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, quote)
}

func (h *QuoteHandler) ApproveQuote(c *fiber.Ctx) error {
	id := c.Params("id")

	quote, err := h.quoteService.ApproveQuote(pkg.RequestInfoFromCtx(c), id)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, quote)
}

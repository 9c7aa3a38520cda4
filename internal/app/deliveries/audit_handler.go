package deliveries

import (
	"github.com/gofiber/fiber/v2"
	"github.com/servicehub/servicehub-core/internal/app/middlewares"
	"github.com/servicehub/servicehub-core/internal/app/pkg"
	"github.com/servicehub/servicehub-core/internal/app/services"
)

type AuditHandler struct {
	auditService   *services.AuditService
	authMiddleware *middlewares.AuthMiddleware
}

func NewAuditHandler(auditService *services.AuditService, authMiddleware *middlewares.AuthMiddleware) *AuditHandler {
	return &AuditHandler{
		auditService:   auditService,
		authMiddleware: authMiddleware,
	}
}

func (h *AuditHandler) RegisterRoutes(router fiber.Router) {
	auditGroup := router.Group("/audit-logs")

	auditGroup.Get("/", h.authMiddleware.RequireAuth, h.GetAuditLogs)
	auditGroup.Get("/:entityType/:objectId", h.authMiddleware.RequireAuth, h.GetHistory)
}

func (h *AuditHandler) GetAuditLogs(c *fiber.Ctx) error {
	pagination := parsePagination(c)

	logs, err := h.auditService.GetAuditLogs(pagination)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, logs)
}

func (h *AuditHandler) GetHistory(c *fiber.Ctx) error {
	entityType := c.Params("entityType")
	objectID := c.Params("objectId")

	entries, err := h.auditService.GetHistory(entityType, objectID)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, entries)
}

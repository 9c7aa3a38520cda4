package deliveries

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/servicehub/servicehub-core/internal/app/middlewares"
	"github.com/servicehub/servicehub-core/internal/app/models"
	"github.com/servicehub/servicehub-core/internal/app/pkg"
	"github.com/servicehub/servicehub-core/internal/app/services"
)

type ClientHandler struct {
	clientService  *services.ClientService
	authMiddleware *middlewares.AuthMiddleware
}

func NewClientHandler(clientService *services.ClientService, authMiddleware *middlewares.AuthMiddleware) *ClientHandler {
	return &ClientHandler{
		clientService:  clientService,
		authMiddleware: authMiddleware,
	}
}

func (h *ClientHandler) RegisterRoutes(router fiber.Router) {
	clientGroup := router.Group("/clients")

	clientGroup.Get("/", h.GetClients)
	clientGroup.Get("/:id", h.GetClient)
	clientGroup.Get("/:id/contacts", h.GetContacts)

	// Write endpoints require an authenticated actor
	clientGroup.Post("/", h.authMiddleware.RequireAuth, h.CreateClient)
	clientGroup.Patch("/:id", h.authMiddleware.RequireAuth, h.UpdateClient)
	clientGroup.Delete("/:id", h.authMiddleware.RequireAuth, h.DeleteClient)
	clientGroup.Post("/:id/restore", h.authMiddleware.RequireAuth, h.RestoreClient)
	clientGroup.Post("/:id/contacts", h.authMiddleware.RequireAuth, h.AddContact)
}

func (h *ClientHandler) CreateClient(c *fiber.Ctx) error {
	var req models.ClientCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	client, err := h.clientService.CreateClient(pkg.RequestInfoFromCtx(c), &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, client)
}

func (h *ClientHandler) GetClient(c *fiber.Ctx) error {
	id := c.Params("id")
	mode := models.ParseQueryMode(c.Query("mode"))

	client, err := h.clientService.GetClient(id, mode)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, client)
}

func (h *ClientHandler) GetClients(c *fiber.Ctx) error {
	pagination := parsePagination(c)
	mode := models.ParseQueryMode(c.Query("mode"))

	var status *models.ClientStatus
	if statusStr := c.Query("status"); statusStr != "" {
		clientStatus := models.ClientStatus(statusStr)
		status = &clientStatus
	}

	clients, err := h.clientService.GetClients(pagination, mode, status)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, clients)
}

func (h *ClientHandler) UpdateClient(c *fiber.Ctx) error {
	id := c.Params("id")

	var req models.ClientUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	client, err := h.clientService.UpdateClient(pkg.RequestInfoFromCtx(c), id, &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, client)
}

func (h *ClientHandler) DeleteClient(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.clientService.DeleteClient(pkg.RequestInfoFromCtx(c), id); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse[any](c, nil)
}

func (h *ClientHandler) RestoreClient(c *fiber.Ctx) error {
	id := c.Params("id")

	client, err := h.clientService.RestoreClient(pkg.RequestInfoFromCtx(c), id)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, client)
}

func (h *ClientHandler) AddContact(c *fiber.Ctx) error {
	id := c.Params("id")

	var req models.ClientContactCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	contact, err := h.clientService.AddContact(pkg.RequestInfoFromCtx(c), id, &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, contact)
}

func (h *ClientHandler) GetContacts(c *fiber.Ctx) error {
	id := c.Params("id")

	contacts, err := h.clientService.GetContacts(id)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, contacts)
}

func parsePagination(c *fiber.Ctx) *models.PaginationRequest {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil {
		page = 1
	}
	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil {
		limit = 10
	}
	return &models.PaginationRequest{Page: page, Limit: limit}
}

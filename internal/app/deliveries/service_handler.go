package deliveries

import (
	"github.com/gofiber/fiber/v2"
	"github.com/servicehub/servicehub-core/internal/app/middlewares"
	"github.com/servicehub/servicehub-core/internal/app/models"
	"github.com/servicehub/servicehub-core/internal/app/pkg"
	"github.com/servicehub/servicehub-core/internal/app/services"
)

type ServiceHandler struct {
	serviceService *services.ServiceService
	authMiddleware *middlewares.AuthMiddleware
}

func NewServiceHandler(serviceService *services.ServiceService, authMiddleware *middlewares.AuthMiddleware) *ServiceHandler {
	return &ServiceHandler{
		serviceService: serviceService,
		authMiddleware: authMiddleware,
	}
}

func (h *ServiceHandler) RegisterRoutes(router fiber.Router) {
	serviceGroup := router.Group("/services")

	serviceGroup.Get("/", h.GetServices)
	serviceGroup.Get("/categories", h.GetCategories)
	serviceGroup.Get("/:id", h.GetService)

	serviceGroup.Post("/", h.authMiddleware.RequireAuth, h.CreateService)
	serviceGroup.Post("/categories", h.authMiddleware.RequireAuth, h.CreateCategory)
	serviceGroup.Patch("/categories/:id", h.authMiddleware.RequireAuth, h.UpdateCategory)
	serviceGroup.Delete("/categories/:id", h.authMiddleware.RequireAuth, h.DeleteCategory)
	serviceGroup.Patch("/:id", h.authMiddleware.RequireAuth, h.UpdateService)
	serviceGroup.Delete("/:id", h.authMiddleware.RequireAuth, h.DeleteService)
}

func (h *ServiceHandler) CreateService(c *fiber.Ctx) error {
	var req models.ServiceCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	service, err := h.serviceService.CreateService(pkg.RequestInfoFromCtx(c), &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, service)
}

func (h *ServiceHandler) GetService(c *fiber.Ctx) error {
	id := c.Params("id")

	service, err := h.serviceService.GetService(id)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, service)
}

func (h *ServiceHandler) GetServices(c *fiber.Ctx) error {
	pagination := parsePagination(c)

	var status *models.ServiceStatus
	if statusStr := c.Query("status"); statusStr != "" {
		serviceStatus := models.ServiceStatus(statusStr)
		status = &serviceStatus
	}

	result, err := h.serviceService.GetServices(pagination, status)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, result)
}

func (h *ServiceHandler) UpdateService(c *fiber.Ctx) error {
	id := c.Params("id")

	var req models.ServiceUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	service, err := h.serviceService.UpdateService(pkg.RequestInfoFromCtx(c), id, &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, service)
}

func (h *ServiceHandler) DeleteService(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.serviceService.DeleteService(pkg.RequestInfoFromCtx(c), id); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse[any](c, nil)
}

func (h *ServiceHandler) CreateCategory(c *fiber.Ctx) error {
	var req models.ServiceCategoryCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	category, err := h.serviceService.CreateCategory(&req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, category)
}

func (h *ServiceHandler) UpdateCategory(c *fiber.Ctx) error {
	id := c.Params("id")

	var req models.ServiceCategoryUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	category, err := h.serviceService.UpdateCategory(id, &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, category)
}

func (h *ServiceHandler) DeleteCategory(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.serviceService.DeleteCategory(id); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse[any](c, nil)
}

func (h *ServiceHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.serviceService.GetCategories()
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, categories)
}

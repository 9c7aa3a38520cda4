package deliveries

import (
	"github.com/gofiber/fiber/v2"
	"github.com/servicehub/servicehub-core/internal/app/middlewares"
	"github.com/servicehub/servicehub-core/internal/app/models"
	"github.com/servicehub/servicehub-core/internal/app/pkg"
	"github.com/servicehub/servicehub-core/internal/app/services"
)

type ServiceOrderHandler struct {
	orderService   *services.ServiceOrderService
	authMiddleware *middlewares.AuthMiddleware
}

func NewServiceOrderHandler(orderService *services.ServiceOrderService, authMiddleware *middlewares.AuthMiddleware) *ServiceOrderHandler {
	return &ServiceOrderHandler{
		orderService:   orderService,
		authMiddleware: authMiddleware,
	}
}

func (h *ServiceOrderHandler) RegisterRoutes(router fiber.Router) {
	orderGroup := router.Group("/service-orders")

	orderGroup.Get("/", h.GetOrders)
	orderGroup.Get("/:id", h.GetOrder)

	orderGroup.Post("/", h.authMiddleware.RequireAuth, h.CreateOrder)
	orderGroup.Patch("/:id", h.authMiddleware.RequireAuth, h.UpdateOrder)
	orderGroup.Delete("/:id", h.authMiddleware.RequireAuth, h.DeleteOrder)
}

func (h *ServiceOrderHandler) CreateOrder(c *fiber.Ctx) error {
	var req models.ServiceOrderCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	order, err := h.orderService.CreateOrder(pkg.RequestInfoFromCtx(c), &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, order)
}

func (h *ServiceOrderHandler) GetOrder(c *fiber.Ctx) error {
	id := c.Params("id")

	order, err := h.orderService.GetOrder(id)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, order)
}

func (h *ServiceOrderHandler) GetOrders(c *fiber.Ctx) error {
	pagination := parsePagination(c)

	var status *models.ServiceOrderStatus
	if statusStr := c.Query("status"); statusStr != "" {
		orderStatus := models.ServiceOrderStatus(statusStr)
		status = &orderStatus
	}

	orders, err := h.orderService.GetOrders(pagination, status)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, orders)
}

func (h *ServiceOrderHandler) UpdateOrder(c *fiber.Ctx) error {
	id := c.Params("id")

	var req models.ServiceOrderUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	order, err := h.orderService.UpdateOrder(pkg.RequestInfoFromCtx(c), id, &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, order)
}

func (h *ServiceOrderHandler) DeleteOrder(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.orderService.DeleteOrder(pkg.RequestInfoFromCtx(c), id); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse[any](c, nil)
}

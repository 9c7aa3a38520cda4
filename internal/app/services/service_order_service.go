package services

import (
	"github.com/google/uuid"
	"github.com/servicehub/servicehub-core/internal/app/errors"
	"github.com/servicehub/servicehub-core/internal/app/models"
	"github.com/servicehub/servicehub-core/internal/app/pkg"
	"github.com/servicehub/servicehub-core/internal/infrastructures"
	"gorm.io/gorm"
)

const serviceOrderEntityType = "ServiceOrder"

type ServiceOrderService struct {
	db        *gorm.DB
	validator *infrastructures.Validator
	audit     *AuditService
	numbering *NumberingService
}

func NewServiceOrderService(db *gorm.DB, validator *infrastructures.Validator, audit *AuditService, numbering *NumberingService) *ServiceOrderService {
	return &ServiceOrderService{
		db:        db,
		validator: validator,
		audit:     audit,
		numbering: numbering,
	}
}

func (s *ServiceOrderService) CreateOrder(info models.RequestInfo, req *models.ServiceOrderCreateRequest) (*models.ServiceOrder, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	serviceUUID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		return nil, errors.NewBadRequestError("Invalid service ID format")
	}

	var service models.Service
	if err := s.db.Where("id = ?", serviceUUID).First(&service).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("Service not found")
		}
		return nil, errors.NewInternalServerError(err, "Failed to get service")
	}

	number := req.OrderNumber
	if number == "" {
		number, err = s.numbering.Generate(&models.ServiceOrder{}, "order_number", OrderNumberPrefix)
		if err != nil {
			return nil, err
		}
	}

	order := &models.ServiceOrder{
		OrderNumber:   number,
		ServiceID:     serviceUUID,
		AssignedTo:    req.AssignedTo,
		Status:        models.ServiceOrderStatusPending,
		ScheduledDate: req.ScheduledDate,
		Notes:         req.Notes,
		CreatedBy:     info.Actor,
		UpdatedBy:     info.Actor,
	}

	if err := s.db.Create(order).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to create service order")
	}

	s.audit.RecordSafe(info, models.AuditActionCreate, serviceOrderEntityType, order.ID.String(), nil, pkg.Snapshot(order))

	return order, nil
}

func (s *ServiceOrderService) GetOrder(orderId string) (*models.ServiceOrder, error) {
	orderUUID, err := uuid.Parse(orderId)
	if err != nil {
		return nil, errors.NewBadRequestError("Invalid service order ID format")
	}

	var order models.ServiceOrder
	err = s.db.Where("id = ?", orderUUID).First(&order).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("Service order not found")
		}
		return nil, errors.NewInternalServerError(err, "Failed to get service order")
	}

	return &order, nil
}

func (s *ServiceOrderService) GetOrders(pagination *models.PaginationRequest, status *models.ServiceOrderStatus) (*models.Pagination[[]models.ServiceOrder], error) {
	if pagination.Limit <= 0 {
		pagination.Limit = 10
	}
	if pagination.Page <= 0 {
		pagination.Page = 1
	}

	offset := (pagination.Page - 1) * pagination.Limit

	countQuery := s.db.Model(&models.ServiceOrder{})
	if status != nil {
		countQuery = countQuery.Where("status = ?", *status)
	}

	var totalItems int64
	if err := countQuery.Count(&totalItems).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to count service orders")
	}

	query := s.db.Order("created_at DESC")
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	if pagination.Limit > 0 {
		query = query.Limit(pagination.Limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var orders []models.ServiceOrder
	if err := query.Find(&orders).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to get service orders")
	}

	totalPages := int((totalItems + int64(pagination.Limit) - 1) / int64(pagination.Limit))

	return &models.Pagination[[]models.ServiceOrder]{
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: totalPages,
		TotalItems: int(totalItems),
		HasNext:    pagination.Page < totalPages,
		HasPrev:    pagination.Page > 1,
		Items:      orders,
	}, nil
}

func (s *ServiceOrderService) UpdateOrder(info models.RequestInfo, orderId string, req *models.ServiceOrderUpdateRequest) (*models.ServiceOrder, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	order, err := s.GetOrder(orderId)
	if err != nil {
		return nil, err
	}

	oldValues := pkg.Snapshot(order)

	if req.AssignedTo != nil {
		order.AssignedTo = *req.AssignedTo
	}
	if req.Status != nil {
		order.Status = *req.Status
	}
	if req.ScheduledDate != nil {
		order.ScheduledDate = *req.ScheduledDate
	}
	if req.CompletedDate != nil {
		order.CompletedDate = req.CompletedDate
	}
	if req.Notes != nil {
		order.Notes = *req.Notes
	}
	order.UpdatedBy = info.Actor

	if err := s.db.Save(order).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to update service order")
	}

	s.audit.RecordSafe(info, models.AuditActionUpdate, serviceOrderEntityType, order.ID.String(), oldValues, pkg.Snapshot(order))

	return order, nil
}

func (s *ServiceOrderService) DeleteOrder(info models.RequestInfo, orderId string) error {
	order, err := s.GetOrder(orderId)
	if err != nil {
		return err
	}

	oldValues := pkg.Snapshot(order)

	if err := s.db.Delete(order).Error; err != nil {
		return errors.NewInternalServerError(err, "Failed to delete service order")
	}

	s.audit.RecordSafe(info, models.AuditActionDelete, serviceOrderEntityType, order.ID.String(), oldValues, nil)

	return nil
}

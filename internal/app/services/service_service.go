package services

import (
	"github.com/google/uuid"
	"github.com/servicehub/servicehub-core/internal/app/errors"
	"github.com/servicehub/servicehub-core/internal/app/models"
	"github.com/servicehub/servicehub-core/internal/app/pkg"
	"github.com/servicehub/servicehub-core/internal/infrastructures"
	"gorm.io/gorm"
)

const serviceEntityType = "Service"

// ServiceService manages the service catalog. Catalog entries are audited but
// not soft-deletable: deletion removes the row and is logged as a delete.
type ServiceService struct {
	db        *gorm.DB
	validator *infrastructures.Validator
	audit     *AuditService
}

func NewServiceService(db *gorm.DB, validator *infrastructures.Validator, audit *AuditService) *ServiceService {
	return &ServiceService{
		db:        db,
		validator: validator,
		audit:     audit,
	}
}

func (s *ServiceService) CreateService(info models.RequestInfo, req *models.ServiceCreateRequest) (*models.Service, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	var existing models.Service
	if err := s.db.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		return nil, errors.NewBadRequestError("Service name already exists")
	}

	service := &models.Service{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		BasePrice:   req.BasePrice,
		Unit:        "hora",
		Status:      models.ServiceStatusActive,
		Notes:       req.Notes,
	}
	if req.Unit != "" {
		service.Unit = req.Unit
	}

	if err := s.db.Create(service).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to create service")
	}

	s.audit.RecordSafe(info, models.AuditActionCreate, serviceEntityType, service.ID.String(), nil, pkg.Snapshot(service))

	return service, nil
}

func (s *ServiceService) GetService(serviceId string) (*models.Service, error) {
	serviceUUID, err := uuid.Parse(serviceId)
	if err != nil {
		return nil, errors.NewBadRequestError("Invalid service ID format")
	}

	var service models.Service
	err = s.db.Where("id = ?", serviceUUID).First(&service).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("Service not found")
		}
		return nil, errors.NewInternalServerError(err, "Failed to get service")
	}

	return &service, nil
}

func (s *ServiceService) GetServices(pagination *models.PaginationRequest, status *models.ServiceStatus) (*models.Pagination[[]models.Service], error) {
	if pagination.Limit <= 0 {
		pagination.Limit = 10
	}
	if pagination.Page <= 0 {
		pagination.Page = 1
	}

	offset := (pagination.Page - 1) * pagination.Limit

	countQuery := s.db.Model(&models.Service{})
	if status != nil {
		countQuery = countQuery.Where("status = ?", *status)
	}

	var totalItems int64
	if err := countQuery.Count(&totalItems).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to count services")
	}

	query := s.db.Order("name ASC")
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	if pagination.Limit > 0 {
		query = query.Limit(pagination.Limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var services []models.Service
	if err := query.Find(&services).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to get services")
	}

	totalPages := int((totalItems + int64(pagination.Limit) - 1) / int64(pagination.Limit))

	return &models.Pagination[[]models.Service]{
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: totalPages,
		TotalItems: int(totalItems),
		HasNext:    pagination.Page < totalPages,
		HasPrev:    pagination.Page > 1,
		Items:      services,
	}, nil
}

func (s *ServiceService) UpdateService(info models.RequestInfo, serviceId string, req *models.ServiceUpdateRequest) (*models.Service, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	service, err := s.GetService(serviceId)
	if err != nil {
		return nil, err
	}

	oldValues := pkg.Snapshot(service)

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Category != nil {
		service.Category = *req.Category
	}
	if req.BasePrice != nil {
		service.BasePrice = *req.BasePrice
	}
	if req.Unit != nil {
		service.Unit = *req.Unit
	}
	if req.Status != nil {
		service.Status = *req.Status
	}
	if req.Notes != nil {
		service.Notes = *req.Notes
	}

	if err := s.db.Save(service).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to update service")
	}

	s.audit.RecordSafe(info, models.AuditActionUpdate, serviceEntityType, service.ID.String(), oldValues, pkg.Snapshot(service))

	return service, nil
}

func (s *ServiceService) DeleteService(info models.RequestInfo, serviceId string) error {
	service, err := s.GetService(serviceId)
	if err != nil {
		return err
	}

	oldValues := pkg.Snapshot(service)

	if err := s.db.Delete(service).Error; err != nil {
		return errors.NewInternalServerError(err, "Failed to delete service")
	}

	s.audit.RecordSafe(info, models.AuditActionDelete, serviceEntityType, service.ID.String(), oldValues, nil)

	return nil
}

func (s *ServiceService) CreateCategory(req *models.ServiceCategoryCreateRequest) (*models.ServiceCategory, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	category := &models.ServiceCategory{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
	}

	if err := s.db.Create(category).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to create service category")
	}

	return category, nil
}

func (s *ServiceService) GetCategories() ([]models.ServiceCategory, error) {
	var categories []models.ServiceCategory
	if err := s.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to get service categories")
	}
	return categories, nil
}

func (s *ServiceService) UpdateCategory(categoryId string, req *models.ServiceCategoryUpdateRequest) (*models.ServiceCategory, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	category, err := s.getCategory(categoryId)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}

	if err := s.db.Save(category).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to update service category")
	}

	return category, nil
}

func (s *ServiceService) DeleteCategory(categoryId string) error {
	category, err := s.getCategory(categoryId)
	if err != nil {
		return err
	}

	if err := s.db.Delete(category).Error; err != nil {
		return errors.NewInternalServerError(err, "Failed to delete service category")
	}

	return nil
}

func (s *ServiceService) getCategory(categoryId string) (*models.ServiceCategory, error) {
	categoryUUID, err := uuid.Parse(categoryId)
	if err != nil {
		return nil, errors.NewBadRequestError("Invalid service category ID format")
	}

	var category models.ServiceCategory
	err = s.db.Where("id = ?", categoryUUID).First(&category).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("Service category not found")
		}
		return nil, errors.NewInternalServerError(err, "Failed to get service category")
	}

	return &category, nil
}

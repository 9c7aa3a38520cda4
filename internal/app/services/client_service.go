package services

import (
	"github.com/google/uuid"
	"github.com/servicehub/servicehub-core/internal/app/errors"
	"github.com/servicehub/servicehub-core/internal/app/models"
	"github.com/servicehub/servicehub-core/internal/app/pkg"
	"github.com/servicehub/servicehub-core/internal/infrastructures"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const clientEntityType = "Client"
const clientContactEntityType = "ClientContact"

type ClientService struct {
	db        *gorm.DB
	validator *infrastructures.Validator
	audit     *AuditService
}

func NewClientService(db *gorm.DB, validator *infrastructures.Validator, audit *AuditService) *ClientService {
	return &ClientService{
		db:        db,
		validator: validator,
		audit:     audit,
	}
}

func (s *ClientService) CreateClient(info models.RequestInfo, req *models.ClientCreateRequest) (*models.Client, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	// Uniqueness check includes soft-deleted clients, matching the unique
	// indexes on both columns.
	var existing models.Client
	err := s.db.Unscoped().Where("email = ? OR document = ?", req.Email, req.Document).First(&existing).Error
	if err == nil {
		return nil, errors.NewBadRequestError("Client email or document already registered")
	}

	client := &models.Client{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Type:          models.ClientTypeIndividual,
		Document:      req.Document,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		ZipCode:       req.ZipCode,
		CompanyName:   req.CompanyName,
		ContactPerson: req.ContactPerson,
		Notes:         req.Notes,
		Status:        models.ClientStatusActive,
		CreatedBy:     info.Actor,
		UpdatedBy:     info.Actor,
	}
	if req.Type != "" {
		client.Type = req.Type
	}

	if err := s.db.Create(client).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to create client")
	}

	s.audit.RecordSafe(info, models.AuditActionCreate, clientEntityType, client.ID.String(), nil, pkg.Snapshot(client))

	return client, nil
}

func (s *ClientService) GetClient(clientId string, mode models.QueryMode) (*models.Client, error) {
	clientUUID, err := uuid.Parse(clientId)
	if err != nil {
		return nil, errors.NewBadRequestError("Invalid client ID format")
	}

	var client models.Client
	err = s.db.Scopes(mode.Scope()).Preload("Contacts").Where("id = ?", clientUUID).First(&client).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("Client not found")
		}
		return nil, errors.NewInternalServerError(err, "Failed to get client")
	}

	return &client, nil
}

func (s *ClientService) GetClients(pagination *models.PaginationRequest, mode models.QueryMode, status *models.ClientStatus) (*models.Pagination[[]models.Client], error) {
	if pagination.Limit <= 0 {
		pagination.Limit = 10
	}
	if pagination.Page <= 0 {
		pagination.Page = 1
	}

	offset := (pagination.Page - 1) * pagination.Limit

	countQuery := s.db.Model(&models.Client{}).Scopes(mode.Scope())
	if status != nil {
		countQuery = countQuery.Where("status = ?", *status)
	}

	var totalItems int64
	if err := countQuery.Count(&totalItems).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to count clients")
	}

	query := s.db.Scopes(mode.Scope()).Order("created_at DESC")
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	if pagination.Limit > 0 {
		query = query.Limit(pagination.Limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var clients []models.Client
	if err := query.Find(&clients).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to get clients")
	}

	totalPages := int((totalItems + int64(pagination.Limit) - 1) / int64(pagination.Limit))

	return &models.Pagination[[]models.Client]{
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: totalPages,
		TotalItems: int(totalItems),
		HasNext:    pagination.Page < totalPages,
		HasPrev:    pagination.Page > 1,
		Items:      clients,
	}, nil
}

func (s *ClientService) UpdateClient(info models.RequestInfo, clientId string, req *models.ClientUpdateRequest) (*models.Client, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	client, err := s.GetClient(clientId, models.QueryActive)
	if err != nil {
		return nil, err
	}

	// Pre-mutation snapshot, taken before any field is applied.
	oldValues := pkg.Snapshot(client)

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Type != nil {
		client.Type = *req.Type
	}
	if req.Document != nil {
		client.Document = *req.Document
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	if req.City != nil {
		client.City = *req.City
	}
	if req.State != nil {
		client.State = *req.State
	}
	if req.ZipCode != nil {
		client.ZipCode = *req.ZipCode
	}
	if req.CompanyName != nil {
		client.CompanyName = *req.CompanyName
	}
	if req.ContactPerson != nil {
		client.ContactPerson = *req.ContactPerson
	}
	if req.Notes != nil {
		client.Notes = *req.Notes
	}
	if req.Status != nil {
		client.Status = *req.Status
	}
	if req.LastContact != nil {
		client.LastContact = req.LastContact
	}
	client.UpdatedBy = info.Actor

	if err := s.db.Omit(clause.Associations).Save(client).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to update client")
	}

	s.audit.RecordSafe(info, models.AuditActionUpdate, clientEntityType, client.ID.String(), oldValues, pkg.Snapshot(client))

	return client, nil
}

// DeleteClient soft deletes: the row is stamped, not removed.
func (s *ClientService) DeleteClient(info models.RequestInfo, clientId string) error {
	client, err := s.GetClient(clientId, models.QueryActive)
	if err != nil {
		return err
	}

	oldValues := pkg.Snapshot(client)

	if err := s.db.Delete(client).Error; err != nil {
		return errors.NewInternalServerError(err, "Failed to delete client")
	}

	s.audit.RecordSafe(info, models.AuditActionDelete, clientEntityType, client.ID.String(), oldValues, nil)

	return nil
}

// RestoreClient clears the deletion stamp. Restoring an already-active client
// is a visibility no-op.
func (s *ClientService) RestoreClient(info models.RequestInfo, clientId string) (*models.Client, error) {
	client, err := s.GetClient(clientId, models.QueryAll)
	if err != nil {
		return nil, err
	}

	oldValues := pkg.Snapshot(client)

	err = s.db.Unscoped().Model(&models.Client{}).Where("id = ?", client.ID).
		Updates(map[string]any{"deleted_at": nil, "updated_by": info.Actor}).Error
	if err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to restore client")
	}

	client.DeletedAt = gorm.DeletedAt{}
	client.UpdatedBy = info.Actor

	s.audit.RecordSafe(info, models.AuditActionRestore, clientEntityType, client.ID.String(), oldValues, pkg.Snapshot(client))

	return client, nil
}

// HardDeleteClient permanently removes the row. Administrative use only; it
// has no HTTP route and bypasses the audit delete semantics.
func (s *ClientService) HardDeleteClient(clientId string) error {
	client, err := s.GetClient(clientId, models.QueryAll)
	if err != nil {
		return err
	}

	if err := s.db.Unscoped().Select(clause.Associations).Delete(client).Error; err != nil {
		return errors.NewInternalServerError(err, "Failed to hard delete client")
	}

	return nil
}

func (s *ClientService) AddContact(info models.RequestInfo, clientId string, req *models.ClientContactCreateRequest) (*models.ClientContact, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	client, err := s.GetClient(clientId, models.QueryActive)
	if err != nil {
		return nil, err
	}

	contact := &models.ClientContact{
		ClientID:  client.ID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Position:  req.Position,
		IsPrimary: req.IsPrimary,
	}

	if err := s.db.Create(contact).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to create client contact")
	}

	s.audit.RecordSafe(info, models.AuditActionCreate, clientContactEntityType, contact.ID.String(), nil, pkg.Snapshot(contact))

	return contact, nil
}

func (s *ClientService) GetContacts(clientId string) ([]models.ClientContact, error) {
	client, err := s.GetClient(clientId, models.QueryActive)
	if err != nil {
		return nil, err
	}

	var contacts []models.ClientContact
	if err := s.db.Where("client_id = ?", client.ID).Order("is_primary DESC, name ASC").Find(&contacts).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to get client contacts")
	}

	return contacts, nil
}

package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/servicehub/servicehub-core/internal/app/errors"
	"github.com/servicehub/servicehub-core/internal/app/models"
	"github.com/servicehub/servicehub-core/internal/app/pkg"
	"github.com/servicehub/servicehub-core/internal/infrastructures"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const quoteEntityType = "Quote"

type QuoteService struct {
	db        *gorm.DB
	validator *infrastructures.Validator
	audit     *AuditService
	numbering *NumberingService
}

func NewQuoteService(db *gorm.DB, validator *infrastructures.Validator, audit *AuditService, numbering *NumberingService) *QuoteService {
	return &QuoteService{
		db:        db,
		validator: validator,
		audit:     audit,
		numbering: numbering,
	}
}

func (s *QuoteService) CreateQuote(info models.RequestInfo, req *models.QuoteCreateRequest) (*models.Quote, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	clientUUID, err := uuid.Parse(req.ClientID)
	if err != nil {
		return nil, errors.NewBadRequestError("Invalid client ID format")
	}

	var client models.Client
	if err := s.db.Where("id = ?", clientUUID).First(&client).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("Client not found")
		}
		return nil, errors.NewInternalServerError(err, "Failed to get client")
	}

	// Pre-persist hooks run in a fixed order: identifier assignment, then
	// derived-field computation, then persist. A pre-assigned number is
	// never overwritten.
	number := req.QuoteNumber
	if number == "" {
		number, err = s.numbering.Generate(&models.Quote{}, "quote_number", QuoteNumberPrefix)
		if err != nil {
			return nil, err
		}
	}

	quote := &models.Quote{
		QuoteNumber: number,
		ClientID:    clientUUID,
		Title:       req.Title,
		Description: req.Description,
		Subtotal:    req.Subtotal,
		Discount:    req.Discount,
		Tax:         req.Tax,
		Status:      models.QuoteStatusDraft,
		ValidUntil:  req.ValidUntil,
		CreatedBy:   info.Actor,
		UpdatedBy:   info.Actor,
	}
	quote.Total = quote.ComputeTotal()

	for _, item := range req.Items {
		quote.Items = append(quote.Items, models.QuoteItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Quantity.Mul(item.UnitPrice),
			Order:       item.Order,
		})
	}

	if err := s.db.Create(quote).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to create quote")
	}

	s.audit.RecordSafe(info, models.AuditActionCreate, quoteEntityType, quote.ID.String(), nil, pkg.Snapshot(quote))

	return quote, nil
}

func (s *QuoteService) GetQuote(quoteId string, mode models.QueryMode) (*models.Quote, error) {
	quoteUUID, err := uuid.Parse(quoteId)
	if err != nil {
		return nil, errors.NewBadRequestError("Invalid quote ID format")
	}

	var quote models.Quote
	err = s.db.Scopes(mode.Scope()).Preload("Items").Where("id = ?", quoteUUID).First(&quote).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("Quote not found")
		}
		return nil, errors.NewInternalServerError(err, "Failed to get quote")
	}

	return &quote, nil
}

func (s *QuoteService) GetQuotes(pagination *models.PaginationRequest, mode models.QueryMode, status *models.QuoteStatus) (*models.Pagination[[]models.Quote], error) {
	if pagination.Limit <= 0 {
		pagination.Limit = 10
	}
	if pagination.Page <= 0 {
		pagination.Page = 1
	}

	offset := (pagination.Page - 1) * pagination.Limit

	countQuery := s.db.Model(&models.Quote{}).Scopes(mode.Scope())
	if status != nil {
		countQuery = countQuery.Where("status = ?", *status)
	}

	var totalItems int64
	if err := countQuery.Count(&totalItems).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to count quotes")
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

	var quotes []models.Quote
	if err := query.Find(&quotes).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to get quotes")
	}

	totalPages := int((totalItems + int64(pagination.Limit) - 1) / int64(pagination.Limit))

	return &models.Pagination[[]models.Quote]{
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: totalPages,
		TotalItems: int(totalItems),
		HasNext:    pagination.Page < totalPages,
		HasPrev:    pagination.Page > 1,
		Items:      quotes,
	}, nil
}

func (s *QuoteService) UpdateQuote(info models.RequestInfo, quoteId string, req *models.QuoteUpdateRequest) (*models.Quote, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	quote, err := s.GetQuote(quoteId, models.QueryActive)
	if err != nil {
		return nil, err
	}

	oldValues := pkg.Snapshot(quote)

	if req.Title != nil {
		quote.Title = *req.Title
	}
	if req.Description != nil {
		quote.Description = *req.Description
	}
	if req.Subtotal != nil {
		quote.Subtotal = *req.Subtotal
	}
	if req.Discount != nil {
		quote.Discount = *req.Discount
	}
	if req.Tax != nil {
		quote.Tax = *req.Tax
	}
	if req.Status != nil {
		quote.Status = *req.Status
	}
	if req.ValidUntil != nil {
		quote.ValidUntil = req.ValidUntil
	}
	quote.Total = quote.ComputeTotal()
	quote.UpdatedBy = info.Actor

	if err := s.db.Omit(clause.Associations).Save(quote).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to update quote")
	}

	s.audit.RecordSafe(info, models.AuditActionUpdate, quoteEntityType, quote.ID.String(), oldValues, pkg.Snapshot(quote))

	return quote, nil
}

func (s *QuoteService) DeleteQuote(info models.RequestInfo, quoteId string) error {
	quote, err := s.GetQuote(quoteId, models.QueryActive)
	if err != nil {
		return err
	}

	oldValues := pkg.Snapshot(quote)

	if err := s.db.Delete(quote).Error; err != nil {
		return errors.NewInternalServerError(err, "Failed to delete quote")
	}

	s.audit.RecordSafe(info, models.AuditActionDelete, quoteEntityType, quote.ID.String(), oldValues, nil)

	return nil
}

func (s *QuoteService) RestoreQuote(info models.RequestInfo, quoteId string) (*models.Quote, error) {
	quote, err := s.GetQuote(quoteId, models.QueryAll)
	if err != nil {
		return nil, err
	}

	oldValues := pkg.Snapshot(quote)

	err = s.db.Unscoped().Model(&models.Quote{}).Where("id = ?", quote.ID).
		Updates(map[string]any{"deleted_at": nil, "updated_by": info.Actor}).Error
	if err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to restore quote")
	}

	quote.DeletedAt = gorm.DeletedAt{}
	quote.UpdatedBy = info.Actor

	s.audit.RecordSafe(info, models.AuditActionRestore, quoteEntityType, quote.ID.String(), oldValues, pkg.Snapshot(quote))

	return quote, nil
}

// SendQuote marks the quote as sent to the client.
func (s *QuoteService) SendQuote(info models.RequestInfo, quoteId string) (*models.Quote, error) {
	return s.transition(info, quoteId, func(quote *models.Quote) {
		now := time.Now()
		quote.Status = models.QuoteStatusSent
		quote.SentAt = &now
	})
}

// ApproveQuote marks the quote as approved by the client.
func (s *QuoteService) ApproveQuote(info models.RequestInfo, quoteId string) (*models.Quote, error) {
	return s.transition(info, quoteId, func(quote *models.Quote) {
		now := time.Now()
		quote.Status = models.QuoteStatusApproved
		quote.ApprovedAt = &now
	})
}

func (s *QuoteService) transition(info models.RequestInfo, quoteId string, apply func(*models.Quote)) (*models.Quote, error) {
	quote, err := s.GetQuote(quoteId, models.QueryActive)
	if err != nil {
		return nil, err
	}

	oldValues := pkg.Snapshot(quote)

	apply(quote)
	quote.UpdatedBy = info.Actor

	if err := s.db.Omit(clause.Associations).Save(quote).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to update quote")
	}

	s.audit.RecordSafe(info, models.AuditActionUpdate, quoteEntityType, quote.ID.String(), oldValues, pkg.Snapshot(quote))

	return quote, nil
}

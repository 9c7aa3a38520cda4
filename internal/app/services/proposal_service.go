package services

import (
	"github.com/google/uuid"
	"github.com/servicehub/servicehub-core/internal/app/errors"
	"github.com/servicehub/servicehub-core/internal/app/models"
	"github.com/servicehub/servicehub-core/internal/app/pkg"
	"github.com/servicehub/servicehub-core/internal/infrastructures"
	"gorm.io/gorm"
)

const proposalEntityType = "Proposal"

type ProposalService struct {
	db        *gorm.DB
	validator *infrastructures.Validator
	audit     *AuditService
	numbering *NumberingService
}

func NewProposalService(db *gorm.DB, validator *infrastructures.Validator, audit *AuditService, numbering *NumberingService) *ProposalService {
	return &ProposalService{
		db:        db,
		validator: validator,
		audit:     audit,
		numbering: numbering,
	}
}

func (s *ProposalService) CreateProposal(info models.RequestInfo, req *models.ProposalCreateRequest) (*models.Proposal, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	quoteUUID, err := uuid.Parse(req.QuoteID)
	if err != nil {
		return nil, errors.NewBadRequestError("Invalid quote ID format")
	}

	var quote models.Quote
	if err := s.db.Where("id = ?", quoteUUID).First(&quote).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("Quote not found")
		}
		return nil, errors.NewInternalServerError(err, "Failed to get quote")
	}

	var existing models.Proposal
	if err := s.db.Unscoped().Where("quote_id = ?", quoteUUID).First(&existing).Error; err == nil {
		return nil, errors.NewBadRequestError("Quote already has a proposal")
	}

	number := req.ProposalNumber
	if number == "" {
		number, err = s.numbering.Generate(&models.Proposal{}, "proposal_number", ProposalNumberPrefix)
		if err != nil {
			return nil, err
		}
	}

	proposal := &models.Proposal{
		QuoteID:        quoteUUID,
		ProposalNumber: number,
		Status:         models.ProposalStatusDraft,
		Terms:          req.Terms,
		PaymentTerms:   req.PaymentTerms,
		Warranty:       req.Warranty,
		CreatedBy:      info.Actor,
		UpdatedBy:      info.Actor,
	}

	if err := s.db.Create(proposal).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to create proposal")
	}

	s.audit.RecordSafe(info, models.AuditActionCreate, proposalEntityType, proposal.ID.String(), nil, pkg.Snapshot(proposal))

	return proposal, nil
}

func (s *ProposalService) GetProposal(proposalId string, mode models.QueryMode) (*models.Proposal, error) {
	proposalUUID, err := uuid.Parse(proposalId)
	if err != nil {
		return nil, errors.NewBadRequestError("Invalid proposal ID format")
	}

	var proposal models.Proposal
	err = s.db.Scopes(mode.Scope()).Where("id = ?", proposalUUID).First(&proposal).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("Proposal not found")
		}
		return nil, errors.NewInternalServerError(err, "Failed to get proposal")
	}

	return &proposal, nil
}

func (s *ProposalService) GetProposals(pagination *models.PaginationRequest, mode models.QueryMode, status *models.ProposalStatus) (*models.Pagination[[]models.Proposal], error) {
	if pagination.Limit <= 0 {
		pagination.Limit = 10
	}
	if pagination.Page <= 0 {
		pagination.Page = 1
	}

	offset := (pagination.Page - 1) * pagination.Limit

	countQuery := s.db.Model(&models.Proposal{}).Scopes(mode.Scope())
	if status != nil {
		countQuery = countQuery.Where("status = ?", *status)
	}

	var totalItems int64
	if err := countQuery.Count(&totalItems).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to count proposals")
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

	var proposals []models.Proposal
	if err := query.Find(&proposals).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to get proposals")
	}

	totalPages := int((totalItems + int64(pagination.Limit) - 1) / int64(pagination.Limit))

	return &models.Pagination[[]models.Proposal]{
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: totalPages,
		TotalItems: int(totalItems),
		HasNext:    pagination.Page < totalPages,
		HasPrev:    pagination.Page > 1,
		Items:      proposals,
	}, nil
}

func (s *ProposalService) UpdateProposal(info models.RequestInfo, proposalId string, req *models.ProposalUpdateRequest) (*models.Proposal, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	proposal, err := s.GetProposal(proposalId, models.QueryActive)
	if err != nil {
		return nil, err
	}

	oldValues := pkg.Snapshot(proposal)

	if req.Status != nil {
		proposal.Status = *req.Status
	}
	if req.Terms != nil {
		proposal.Terms = *req.Terms
	}
	if req.PaymentTerms != nil {
		proposal.PaymentTerms = *req.PaymentTerms
	}
	if req.Warranty != nil {
		proposal.Warranty = *req.Warranty
	}
	proposal.UpdatedBy = info.Actor

	if err := s.db.Save(proposal).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to update proposal")
	}

	s.audit.RecordSafe(info, models.AuditActionUpdate, proposalEntityType, proposal.ID.String(), oldValues, pkg.Snapshot(proposal))

	return proposal, nil
}

func (s *ProposalService) DeleteProposal(info models.RequestInfo, proposalId string) error {
	proposal, err := s.GetProposal(proposalId, models.QueryActive)
	if err != nil {
		return err
	}

	oldValues := pkg.Snapshot(proposal)

	if err := s.db.Delete(proposal).Error; err != nil {
		return errors.NewInternalServerError(err, "Failed to delete proposal")
	}

	s.audit.RecordSafe(info, models.AuditActionDelete, proposalEntityType, proposal.ID.String(), oldValues, nil)

	return nil
}

func (s *ProposalService) RestoreProposal(info models.RequestInfo, proposalId string) (*models.Proposal, error) {
	proposal, err := s.GetProposal(proposalId, models.QueryAll)
	if err != nil {
		return nil, err
	}

	oldValues := pkg.Snapshot(proposal)

	err = s.db.Unscoped().Model(&models.Proposal{}).Where("id = ?", proposal.ID).
		Updates(map[string]any{"deleted_at": nil, "updated_by": info.Actor}).Error
	if err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to restore proposal")
	}

	proposal.DeletedAt = gorm.DeletedAt{}
	proposal.UpdatedBy = info.Actor

	s.audit.RecordSafe(info, models.AuditActionRestore, proposalEntityType, proposal.ID.String(), oldValues, pkg.Snapshot(proposal))

	return proposal, nil
}

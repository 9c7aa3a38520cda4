package services

import (
	"encoding/json"
	"fmt"

	"github.com/servicehub/servicehub-core/internal/app/errors"
	"github.com/servicehub/servicehub-core/internal/app/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditStore persists and reads audit entries. The gorm implementation is the
// only production one; tests substitute failing stores to exercise the
// best-effort append policy.
type AuditStore interface {
	Append(entry *models.AuditLog) error
	History(entityType, objectID string) ([]models.AuditLog, error)
	Count() (int64, error)
	Page(limit, offset int) ([]models.AuditLog, error)
}

type GormAuditStore struct {
	db *gorm.DB
}

func NewGormAuditStore(db *gorm.DB) *GormAuditStore {
	return &GormAuditStore{db: db}
}

func (s *GormAuditStore) Append(entry *models.AuditLog) error {
	return s.db.Create(entry).Error
}

func (s *GormAuditStore) History(entityType, objectID string) ([]models.AuditLog, error) {
	var entries []models.AuditLog
	err := s.db.Where("entity_type = ? AND object_id = ?", entityType, objectID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}

func (s *GormAuditStore) Count() (int64, error) {
	var totalItems int64
	err := s.db.Model(&models.AuditLog{}).Count(&totalItems).Error
	return totalItems, err
}

func (s *GormAuditStore) Page(limit, offset int) ([]models.AuditLog, error) {
	var entries []models.AuditLog
	query := s.db.Order("created_at DESC").Limit(limit)
	if offset > 0 {
		query = query.Offset(offset)
	}
	err := query.Find(&entries).Error
	return entries, err
}

type AuditService struct {
	store AuditStore
}

func NewAuditService(store AuditStore) *AuditService {
	return &AuditService{
		store: store,
	}
}

// Record appends one audit entry for one state transition of one entity
// instance. Empty actor identities are attributed to the system.
func (s *AuditService) Record(info models.RequestInfo, action models.AuditAction, entityType, objectID string, oldValues, newValues map[string]string) error {
	actor := info.Actor
	if actor == "" {
		actor = models.ActorSystem
	}

	oldJSON, err := marshalValues(oldValues)
	if err != nil {
		return fmt.Errorf("failed to marshal old values: %w", err)
	}
	newJSON, err := marshalValues(newValues)
	if err != nil {
		return fmt.Errorf("failed to marshal new values: %w", err)
	}

	entry := &models.AuditLog{
		Actor:      actor,
		Action:     action,
		EntityType: entityType,
		ObjectID:   objectID,
		OldValues:  oldJSON,
		NewValues:  newJSON,
		UserAgent:  info.UserAgent,
	}
	if info.IPAddress != "" {
		ip := info.IPAddress
		entry.IPAddress = &ip
	}

	if err := s.store.Append(entry); err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}

	return nil
}

// RecordSafe appends an audit entry best-effort: the business write already
// succeeded, so append failures only reach the operational log and are never
// propagated to the caller.
func (s *AuditService) RecordSafe(info models.RequestInfo, action models.AuditAction, entityType, objectID string, oldValues, newValues map[string]string) {
	if err := s.Record(info, action, entityType, objectID, oldValues, newValues); err != nil {
		logrus.WithError(err).Errorf("audit append failed for %s %s %s", action, entityType, objectID)
	}
}

// GetHistory returns every audit entry for one entity instance, newest first.
func (s *AuditService) GetHistory(entityType, objectID string) ([]models.AuditLog, error) {
	entries, err := s.store.History(entityType, objectID)
	if err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to get audit history")
	}
	return entries, nil
}

// GetAuditLogs retrieves audit logs with pagination, newest first.
func (s *AuditService) GetAuditLogs(pagination *models.PaginationRequest) (*models.Pagination[[]models.AuditLog], error) {
	if pagination.Limit <= 0 {
		pagination.Limit = 10
	}
	if pagination.Page <= 0 {
		pagination.Page = 1
	}

	offset := (pagination.Page - 1) * pagination.Limit

	totalItems, err := s.store.Count()
	if err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to count audit logs")
	}

	entries, err := s.store.Page(pagination.Limit, offset)
	if err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to get audit logs")
	}

	totalPages := int((totalItems + int64(pagination.Limit) - 1) / int64(pagination.Limit))

	result := &models.Pagination[[]models.AuditLog]{
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: totalPages,
		TotalItems: int(totalItems),
		HasNext:    pagination.Page < totalPages,
		HasPrev:    pagination.Page > 1,
		Items:      entries,
	}

	return result, nil
}

func marshalValues(values map[string]string) (*string, error) {
	if values == nil {
		values = map[string]string{}
	}
	jsonBytes, err := json.Marshal(values)
	if err != nil {
		return nil, err
	}
	strJSON := string(jsonBytes)
	return &strJSON, nil
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of action being audited
type AuditAction string

const (
	AuditActionCreate  AuditAction = "create"
	AuditActionUpdate  AuditAction = "update"
	AuditActionDelete  AuditAction = "delete"
	AuditActionRestore AuditAction = "restore"
)

// Actor fallbacks used when no authenticated identity is attached to a write.
const (
	ActorAnonymous = "anonymous"
	ActorSystem    = "system"
)

// AuditLog represents one immutable state transition of one entity instance.
// Entries are appended once per write operation and never mutated or deleted.
type AuditLog struct {
	ID         uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Actor      string      `json:"actor" gorm:"type:varchar(255);not null;index:idx_audit_logs_actor_created,priority:1"`
	Action     AuditAction `json:"action" gorm:"type:varchar(20);not null"`
	EntityType string      `json:"entity_type" gorm:"type:varchar(255);not null;index:idx_audit_logs_entity,priority:1"`
	ObjectID   string      `json:"object_id" gorm:"type:varchar(255);not null;index:idx_audit_logs_entity,priority:2"`
	OldValues  *string     `json:"old_values" gorm:"type:jsonb"`
	NewValues  *string     `json:"new_values" gorm:"type:jsonb"`
	IPAddress  *string     `json:"ip_address" gorm:"type:varchar(45)"`
	UserAgent  string      `json:"user_agent" gorm:"type:text"`
	CreatedAt  time.Time   `json:"created_at" gorm:"autoCreateTime;not null;index:idx_audit_logs_actor_created,priority:2"`
}

// RequestInfo carries the actor identity and request provenance the web layer
// resolved for a write operation.
type RequestInfo struct {
	Actor     string
	IPAddress string
	UserAgent string
}

// SystemRequestInfo attributes a write to the system itself, for background
// or seed changes that have no inbound request.
func SystemRequestInfo() RequestInfo {
	return RequestInfo{Actor: ActorSystem}
}

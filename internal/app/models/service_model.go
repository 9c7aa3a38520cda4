package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ServiceStatus string

const (
	ServiceStatusActive   ServiceStatus = "active"
	ServiceStatusInactive ServiceStatus = "inactive"
	ServiceStatusArchived ServiceStatus = "archived"
)

type Service struct {
	ID          uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string          `json:"name" gorm:"type:varchar(255);uniqueIndex;not null"`
	Description string          `json:"description" gorm:"type:text"`
	Category    string          `json:"category" gorm:"type:varchar(100)"`
	BasePrice   decimal.Decimal `json:"base_price" gorm:"type:decimal(10,2)"`
	Unit        string          `json:"unit" gorm:"type:varchar(50);default:hora"`
	Status      ServiceStatus   `json:"status" gorm:"type:varchar(20);default:active"`
	Notes       string          `json:"notes" gorm:"type:text"`
	CreatedAt   time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}

type ServiceCategory struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `json:"name" gorm:"type:varchar(100);uniqueIndex;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Icon        string    `json:"icon" gorm:"type:varchar(50)"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

type ServiceOrderStatus string

const (
	ServiceOrderStatusPending    ServiceOrderStatus = "pending"
	ServiceOrderStatusInProgress ServiceOrderStatus = "in_progress"
	ServiceOrderStatusCompleted  ServiceOrderStatus = "completed"
	ServiceOrderStatusCancelled  ServiceOrderStatus = "cancelled"
)

type ServiceOrder struct {
	ID            uuid.UUID          `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderNumber   string             `json:"order_number" gorm:"type:varchar(50);uniqueIndex;not null"`
	ServiceID     uuid.UUID          `json:"service_id" gorm:"type:uuid;not null;index"`
	AssignedTo    string             `json:"assigned_to" gorm:"type:varchar(255)"`
	Status        ServiceOrderStatus `json:"status" gorm:"type:varchar(20);default:pending;index"`
	ScheduledDate time.Time          `json:"scheduled_date" gorm:"not null"`
	CompletedDate *time.Time         `json:"completed_date,omitempty"`
	Notes         string             `json:"notes" gorm:"type:text"`
	CreatedBy     string             `json:"created_by" gorm:"type:varchar(255)"`
	UpdatedBy     string             `json:"updated_by" gorm:"type:varchar(255)"`
	CreatedAt     time.Time          `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time          `json:"updated_at" gorm:"autoUpdateTime"`
}

type ServiceCreateRequest struct {
	Name        string          `json:"name" validate:"required,max=255"`
	Description string          `json:"description" validate:"omitempty"`
	Category    string          `json:"category" validate:"omitempty,max=100"`
	BasePrice   decimal.Decimal `json:"base_price" validate:"required"`
	Unit        string          `json:"unit" validate:"omitempty,max=50"`
	Notes       string          `json:"notes" validate:"omitempty"`
}

type ServiceUpdateRequest struct {
	Name        *string          `json:"name,omitempty" validate:"omitempty,max=255"`
	Description *string          `json:"description,omitempty"`
	Category    *string          `json:"category,omitempty" validate:"omitempty,max=100"`
	BasePrice   *decimal.Decimal `json:"base_price,omitempty"`
	Unit        *string          `json:"unit,omitempty" validate:"omitempty,max=50"`
	Status      *ServiceStatus   `json:"status,omitempty" validate:"omitempty,oneof=active inactive archived"`
	Notes       *string          `json:"notes,omitempty"`
}

type ServiceCategoryCreateRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty"`
	Icon        string `json:"icon" validate:"omitempty,max=50"`
}

type ServiceCategoryUpdateRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty" validate:"omitempty,max=50"`
}

type ServiceOrderCreateRequest struct {
	OrderNumber   string    `json:"order_number" validate:"omitempty,max=50"`
	ServiceID     string    `json:"service_id" validate:"required,uuid"`
	AssignedTo    string    `json:"assigned_to" validate:"omitempty,max=255"`
	ScheduledDate time.Time `json:"scheduled_date" validate:"required"`
	Notes         string    `json:"notes" validate:"omitempty"`
}

type ServiceOrderUpdateRequest struct {
	AssignedTo    *string             `json:"assigned_to,omitempty" validate:"omitempty,max=255"`
	Status        *ServiceOrderStatus `json:"status,omitempty" validate:"omitempty,oneof=pending in_progress completed cancelled"`
	ScheduledDate *time.Time          `json:"scheduled_date,omitempty"`
	CompletedDate *time.Time          `json:"completed_date,omitempty"`
	Notes         *string             `json:"notes,omitempty"`
}

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusViewed   QuoteStatus = "viewed"
	QuoteStatusApproved QuoteStatus = "approved"
	QuoteStatusRejected QuoteStatus = "rejected"
	QuoteStatusExpired  QuoteStatus = "expired"
)

type Quote struct {
	ID          uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	QuoteNumber string          `json:"quote_number" gorm:"type:varchar(50);uniqueIndex;not null"`
	ClientID    uuid.UUID       `json:"client_id" gorm:"type:uuid;not null;index"`
	Title       string          `json:"title" gorm:"type:varchar(255);not null"`
	Description string          `json:"description" gorm:"type:text"`
	Subtotal    decimal.Decimal `json:"subtotal" gorm:"type:decimal(10,2)"`
	Discount    decimal.Decimal `json:"discount" gorm:"type:decimal(10,2);default:0"`
	Tax         decimal.Decimal `json:"tax" gorm:"type:decimal(10,2);default:0"`
	Total       decimal.Decimal `json:"total" gorm:"type:decimal(10,2)"`
	Status      QuoteStatus     `json:"status" gorm:"type:varchar(20);default:draft;index"`
	ValidUntil  *time.Time      `json:"valid_until,omitempty"`
	SentAt      *time.Time      `json:"sent_at,omitempty"`
	ViewedAt    *time.Time      `json:"viewed_at,omitempty"`
	ApprovedAt  *time.Time      `json:"approved_at,omitempty"`
	CreatedBy   string          `json:"created_by" gorm:"type:varchar(255)"`
	UpdatedBy   string          `json:"updated_by" gorm:"type:varchar(255)"`
	Items       []QuoteItem     `json:"items,omitempty" gorm:"foreignKey:QuoteID"`
	CreatedAt   time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt  `json:"deleted_at" gorm:"index"`
}

// ComputeTotal derives the quote total. A client-supplied total is always
// overwritten with this result before persist.
func (q *Quote) ComputeTotal() decimal.Decimal {
	return q.Subtotal.Sub(q.Discount).Add(q.Tax)
}

type QuoteItem struct {
	ID          uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	QuoteID     uuid.UUID       `json:"quote_id" gorm:"type:uuid;not null;index"`
	Description string          `json:"description" gorm:"type:varchar(255);not null"`
	Quantity    decimal.Decimal `json:"quantity" gorm:"type:decimal(10,2)"`
	UnitPrice   decimal.Decimal `json:"unit_price" gorm:"type:decimal(10,2)"`
	Total       decimal.Decimal `json:"total" gorm:"type:decimal(10,2)"`
	Order       int             `json:"order" gorm:"default:0"`
	CreatedAt   time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}

type QuoteItemRequest struct {
	Description string          `json:"description" validate:"required,max=255"`
	Quantity    decimal.Decimal `json:"quantity" validate:"required"`
	UnitPrice   decimal.Decimal `json:"unit_price" validate:"required"`
	Order       int             `json:"order" validate:"omitempty,min=0"`
}

type QuoteCreateRequest struct {
	QuoteNumber string             `json:"quote_number" validate:"omitempty,max=50"`
	ClientID    string             `json:"client_id" validate:"required,uuid"`
	Title       string             `json:"title" validate:"required,max=255"`
	Description string             `json:"description" validate:"omitempty"`
	Subtotal    decimal.Decimal    `json:"subtotal" validate:"required"`
	Discount    decimal.Decimal    `json:"discount"`
	Tax         decimal.Decimal    `json:"tax"`
	ValidUntil  *time.Time         `json:"valid_until,omitempty"`
	Items       []QuoteItemRequest `json:"items,omitempty" validate:"omitempty,dive"`
}

type QuoteUpdateRequest struct {
	Title       *string          `json:"title,omitempty" validate:"omitempty,max=255"`
	Description *string          `json:"description,omitempty"`
	Subtotal    *decimal.Decimal `json:"subtotal,omitempty"`
	Discount    *decimal.Decimal `json:"discount,omitempty"`
	Tax         *decimal.Decimal `json:"tax,omitempty"`
	Status      *QuoteStatus     `json:"status,omitempty" validate:"omitempty,oneof=draft sent viewed approved rejected expired"`
	ValidUntil  *time.Time       `json:"valid_until,omitempty"`
}

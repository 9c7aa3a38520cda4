package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProposalStatus string

const (
	ProposalStatusDraft    ProposalStatus = "draft"
	ProposalStatusSent     ProposalStatus = "sent"
	ProposalStatusViewed   ProposalStatus = "viewed"
	ProposalStatusAccepted ProposalStatus = "accepted"
	ProposalStatusRejected ProposalStatus = "rejected"
	ProposalStatusExpired  ProposalStatus = "expired"
)

type Proposal struct {
	ID             uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	QuoteID        uuid.UUID      `json:"quote_id" gorm:"type:uuid;uniqueIndex;not null"`
	ProposalNumber string         `json:"proposal_number" gorm:"type:varchar(50);uniqueIndex;not null"`
	Status         ProposalStatus `json:"status" gorm:"type:varchar(20);default:draft;index"`
	Terms          string         `json:"terms" gorm:"type:text"`
	PaymentTerms   string         `json:"payment_terms" gorm:"type:varchar(255)"`
	Warranty       string         `json:"warranty" gorm:"type:varchar(255)"`
	SentAt         *time.Time     `json:"sent_at,omitempty"`
	AcceptedAt     *time.Time     `json:"accepted_at,omitempty"`
	CreatedBy      string         `json:"created_by" gorm:"type:varchar(255)"`
	UpdatedBy      string         `json:"updated_by" gorm:"type:varchar(255)"`
	CreatedAt      time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt      gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type ProposalCreateRequest struct {
	ProposalNumber string `json:"proposal_number" validate:"omitempty,max=50"`
	QuoteID        string `json:"quote_id" validate:"required,uuid"`
	Terms          string `json:"terms" validate:"omitempty"`
	PaymentTerms   string `json:"payment_terms" validate:"omitempty,max=255"`
	Warranty       string `json:"warranty" validate:"omitempty,max=255"`
}

type ProposalUpdateRequest struct {
	Status       *ProposalStatus `json:"status,omitempty" validate:"omitempty,oneof=draft sent viewed accepted rejected expired"`
	Terms        *string         `json:"terms,omitempty"`
	PaymentTerms *string         `json:"payment_terms,omitempty" validate:"omitempty,max=255"`
	Warranty     *string         `json:"warranty,omitempty" validate:"omitempty,max=255"`
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientType string

const (
	ClientTypeIndividual ClientType = "individual"
	ClientTypeCompany    ClientType = "company"
)

type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "active"
	ClientStatusInactive ClientStatus = "inactive"
	ClientStatusBlocked  ClientStatus = "blocked"
)

type Client struct {
	ID            uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string          `json:"name" gorm:"type:varchar(255);not null"`
	Email         string          `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone         string          `json:"phone" gorm:"type:varchar(20)"`
	Type          ClientType      `json:"type" gorm:"type:varchar(20);default:individual"`
	Document      string          `json:"document" gorm:"type:varchar(20);uniqueIndex;not null"`
	Address       string          `json:"address" gorm:"type:varchar(255)"`
	City          string          `json:"city" gorm:"type:varchar(100)"`
	State         string          `json:"state" gorm:"type:varchar(2)"`
	ZipCode       string          `json:"zip_code" gorm:"type:varchar(10)"`
	CompanyName   string          `json:"company_name" gorm:"type:varchar(255)"`
	ContactPerson string          `json:"contact_person" gorm:"type:varchar(255)"`
	Notes         string          `json:"notes" gorm:"type:text"`
	Status        ClientStatus    `json:"status" gorm:"type:varchar(20);default:active;index"`
	CreatedBy     string          `json:"created_by" gorm:"type:varchar(255)"`
	UpdatedBy     string          `json:"updated_by" gorm:"type:varchar(255)"`
	LastContact   *time.Time      `json:"last_contact,omitempty"`
	Contacts      []ClientContact `json:"contacts,omitempty" gorm:"foreignKey:ClientID"`
	CreatedAt     time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt  `json:"deleted_at" gorm:"index"`
}

type ClientContact struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClientID  uuid.UUID `json:"client_id" gorm:"type:uuid;not null;index"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	Email     string    `json:"email" gorm:"type:varchar(255)"`
	Phone     string    `json:"phone" gorm:"type:varchar(20)"`
	Position  string    `json:"position" gorm:"type:varchar(100)"`
	IsPrimary bool      `json:"is_primary" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

type ClientCreateRequest struct {
	Name          string     `json:"name" validate:"required,min=3,max=255"`
	Email         string     `json:"email" validate:"required,email"`
	Phone         string     `json:"phone" validate:"required,min=10,max=20"`
	Type          ClientType `json:"type" validate:"omitempty,oneof=individual company"`
	Document      string     `json:"document" validate:"required,max=20"`
	Address       string     `json:"address" validate:"omitempty,max=255"`
	City          string     `json:"city" validate:"omitempty,max=100"`
	State         string     `json:"state" validate:"omitempty,len=2"`
	ZipCode       string     `json:"zip_code" validate:"omitempty,max=10"`
	CompanyName   string     `json:"company_name" validate:"omitempty,max=255"`
	ContactPerson string     `json:"contact_person" validate:"omitempty,max=255"`
	Notes         string     `json:"notes" validate:"omitempty"`
}

type ClientUpdateRequest struct {
	Name          *string       `json:"name,omitempty" validate:"omitempty,min=3,max=255"`
	Email         *string       `json:"email,omitempty" validate:"omitempty,email"`
	Phone         *string       `json:"phone,omitempty" validate:"omitempty,min=10,max=20"`
	Type          *ClientType   `json:"type,omitempty" validate:"omitempty,oneof=individual company"`
	Document      *string       `json:"document,omitempty" validate:"omitempty,max=20"`
	Address       *string       `json:"address,omitempty" validate:"omitempty,max=255"`
	City          *string       `json:"city,omitempty" validate:"omitempty,max=100"`
	State         *string       `json:"state,omitempty" validate:"omitempty,len=2"`
	ZipCode       *string       `json:"zip_code,omitempty" validate:"omitempty,max=10"`
	CompanyName   *string       `json:"company_name,omitempty" validate:"omitempty,max=255"`
	ContactPerson *string       `json:"contact_person,omitempty" validate:"omitempty,max=255"`
	Notes         *string       `json:"notes,omitempty"`
	Status        *ClientStatus `json:"status,omitempty" validate:"omitempty,oneof=active inactive blocked"`
	LastContact   *time.Time    `json:"last_contact,omitempty"`
}

type ClientContactCreateRequest struct {
	Name      string `json:"name" validate:"required,max=255"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone" validate:"omitempty,max=20"`
	Position  string `json:"position" validate:"omitempty,max=100"`
	IsPrimary bool   `json:"is_primary"`
}

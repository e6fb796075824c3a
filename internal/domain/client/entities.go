package client

import (
	"time"

	"tender-crm-backend/internal/domain/history"
)

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
	StatusProspect Status = "Prospect"
)

// Table: clients
type Client struct {
	ID            uint64      `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	ClientID      string      `gorm:"column:client_id;size:64;not null;uniqueIndex:ux_clients_client_id" json:"id"`
	Name          string      `gorm:"column:name;size:255;not null;uniqueIndex:ux_clients_name" json:"name"`
	Industry      string      `gorm:"column:industry;size:128" json:"industry,omitempty"`
	ContactPerson string      `gorm:"column:contact_person;size:255" json:"contactPerson,omitempty"`
	Email         string      `gorm:"column:email;size:255" json:"email,omitempty"`
	Phone         string      `gorm:"column:phone;size:64" json:"phone,omitempty"`
	Address       string      `gorm:"column:address" json:"address,omitempty"`
	Status        Status      `gorm:"column:status;size:32;not null" json:"status"`
	History       history.Log `gorm:"column:history;serializer:json" json:"history"`
	CreatedByID   string      `gorm:"column:created_by_id;size:64" json:"createdById"`
	CreatedAt     time.Time   `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time   `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Client) TableName() string { return "clients" }

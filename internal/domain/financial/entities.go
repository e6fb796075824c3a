package financial

import (
	"time"
)

type Type string

const (
	TypeEMD   Type = "EMD"
	TypePBG   Type = "PBG"
	TypeSD    Type = "SD"
	TypeOther Type = "Other"
)

func (t Type) Valid() bool {
	switch t {
	case TypeEMD, TypePBG, TypeSD, TypeOther:
		return true
	}
	return false
}

type Status string

const (
	StatusPendingApproval Status = "Pending Approval"
	StatusApproved        Status = "Approved"
	StatusRejected        Status = "Rejected"
	StatusProcessed       Status = "Processed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPendingApproval, StatusApproved, StatusRejected, StatusProcessed:
		return true
	}
	return false
}

// InstrumentDetails is stored verbatim when a request is processed.
// Amount is kept if the caller sent one but it never reaches the tender.
type InstrumentDetails struct {
	Mode          string  `json:"mode,omitempty"`
	ProcessedDate string  `json:"processedDate,omitempty"`
	ExpiryDate    string  `json:"expiryDate,omitempty"`
	IssuingBank   string  `json:"issuingBank,omitempty"`
	DocumentURL   string  `json:"documentUrl,omitempty"`
	Amount        float64 `json:"amount,omitempty"`
}

// Table: financial_requests
type Request struct {
	ID                uint64             `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	RequestID         string             `gorm:"column:request_id;size:64;not null;uniqueIndex:ux_financial_requests_request_id" json:"id"`
	TenderID          string             `gorm:"column:tender_id;size:64;not null;index" json:"tenderId"`
	Type              Type               `gorm:"column:type;size:16;not null" json:"type"`
	Amount            float64            `gorm:"column:amount;not null" json:"amount"`
	Status            Status             `gorm:"column:status;size:32;not null;index" json:"status"`
	RequestedByID     string             `gorm:"column:requested_by_id;size:64;not null" json:"requestedById"`
	RequestDate       time.Time          `gorm:"column:request_date;not null" json:"requestDate"`
	Notes             string             `gorm:"column:notes" json:"notes,omitempty"`
	ApproverID        *string            `gorm:"column:approver_id;size:64" json:"approverId,omitempty"`
	ApprovalDate      *time.Time         `gorm:"column:approval_date" json:"approvalDate,omitempty"`
	RejectionReason   string             `gorm:"column:rejection_reason" json:"rejectionReason,omitempty"`
	ExpiryDate        string             `gorm:"column:expiry_date;size:32" json:"expiryDate,omitempty"`
	InstrumentDetails *InstrumentDetails `gorm:"column:instrument_details;serializer:json" json:"instrumentDetails,omitempty"`
	CreatedAt         time.Time          `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time          `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Request) TableName() string { return "financial_requests" }

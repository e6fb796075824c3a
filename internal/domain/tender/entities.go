package tender

import (
	"time"

	"tender-crm-backend/internal/domain/history"
)

type Status string

const (
	StatusDraft           Status = "Draft"
	StatusSubmitted       Status = "Submitted"
	StatusUnderEvaluation Status = "Under Evaluation"
	StatusWon             Status = "Won"
	StatusLost            Status = "Lost"
	StatusCancelled       Status = "Cancelled"
)

// Modes accepted on a financial record.
const (
	ModeDD     = "DD"
	ModeBG     = "BG"
	ModeOnline = "Online"
	ModeCash   = "Cash"
	ModeNA     = "N/A"
)

// Slot names one of the three embedded financial records.
type Slot string

const (
	SlotEMD Slot = "emd"
	SlotPBG Slot = "pbg"
	SlotSD  Slot = "sd"
)

// FinancialRecord is the shape shared by emd, pbg and sd.
// RefundStatus is only used by emd; Status by pbg and sd; IssuingBank by pbg.
type FinancialRecord struct {
	Amount        float64 `json:"amount"`
	Mode          string  `json:"mode,omitempty"`
	SubmittedDate string  `json:"submittedDate,omitempty"`
	ProcessedDate string  `json:"processedDate,omitempty"`
	DocumentURL   string  `json:"documentUrl,omitempty"`
	ExpiryDate    string  `json:"expiryDate,omitempty"`
	IssuingBank   string  `json:"issuingBank,omitempty"`
	RefundStatus  string  `json:"refundStatus,omitempty"`
	Status        string  `json:"status,omitempty"`
}

type UserKey string

type AssignmentResponse struct {
	Response    string    `json:"response"`
	Comment     string    `json:"comment,omitempty"`
	RespondedAt time.Time `json:"respondedAt"`
}

type AssignmentResponses map[UserKey]AssignmentResponse

// Set creates the map on first write.
func (m *AssignmentResponses) Set(k UserKey, v AssignmentResponse) {
	if *m == nil {
		*m = AssignmentResponses{}
	}
	(*m)[k] = v
}

func (m AssignmentResponses) Get(k UserKey) (AssignmentResponse, bool) {
	v, ok := m[k]
	return v, ok
}

type StageKey string

type StageProgress struct {
	Status        string    `json:"status"`
	Notes         string    `json:"notes,omitempty"`
	CompletedDate string    `json:"completedDate,omitempty"`
	UpdatedByID   string    `json:"updatedById"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type PostAwardProcess map[StageKey]StageProgress

// Set creates the map on first write.
func (m *PostAwardProcess) Set(k StageKey, v StageProgress) {
	if *m == nil {
		*m = PostAwardProcess{}
	}
	(*m)[k] = v
}

func (m PostAwardProcess) Get(k StageKey) (StageProgress, bool) {
	v, ok := m[k]
	return v, ok
}

// Table: tenders
type Tender struct {
	ID                  uint64              `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	TenderID            string              `gorm:"column:tender_id;size:64;not null;uniqueIndex:ux_tenders_tender_id" json:"id"`
	ReferenceNo         string              `gorm:"column:reference_no;size:128;not null;uniqueIndex:ux_tenders_reference_no" json:"referenceNo"`
	Title               string              `gorm:"column:title;size:255;not null" json:"title"`
	ClientID            string              `gorm:"column:client_id;size:64;index" json:"clientId"`
	Status              Status              `gorm:"column:status;size:32;not null;index" json:"status"`
	Value               float64             `gorm:"column:value" json:"value"`
	DueDate             string              `gorm:"column:due_date;size:32" json:"dueDate,omitempty"`
	AssignedUserIDs     []string            `gorm:"column:assigned_user_ids;serializer:json" json:"assignedUserIds"`
	AssignmentResponses AssignmentResponses `gorm:"column:assignment_responses;serializer:json" json:"assignmentResponses"`
	PostAwardProcess    PostAwardProcess    `gorm:"column:post_award_process;serializer:json" json:"postAwardProcess"`
	EMD                 FinancialRecord     `gorm:"column:emd;serializer:json" json:"emd"`
	PBG                 FinancialRecord     `gorm:"column:pbg;serializer:json" json:"pbg"`
	SD                  FinancialRecord     `gorm:"column:sd;serializer:json" json:"sd"`
	History             history.Log         `gorm:"column:history;serializer:json" json:"history"`
	CreatedByID         string              `gorm:"column:created_by_id;size:64" json:"createdById"`
	CreatedAt           time.Time           `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt           time.Time           `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Tender) TableName() string { return "tenders" }

// Record returns a pointer to the slot's record so callers can replace it in place.
func (t *Tender) Record(s Slot) *FinancialRecord {
	switch s {
	case SlotEMD:
		return &t.EMD
	case SlotPBG:
		return &t.PBG
	case SlotSD:
		return &t.SD
	}
	return nil
}

func (t *Tender) IsAssigned(userID string) bool {
	for _, u := range t.AssignedUserIDs {
		if u == userID {
			return true
		}
	}
	return false
}

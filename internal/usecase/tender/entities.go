package tender

import (
	domain "tender-crm-backend/internal/domain/tender"
)

type CreateInput struct {
	ReferenceNo string
	Title       string
	ClientID    string
	Status      domain.Status
	Value       float64
	DueDate     string
}

// UpdateInput replaces the editable header fields. Empty Status keeps the current one.
type UpdateInput struct {
	ReferenceNo string
	Title       string
	ClientID    string
	Status      domain.Status
	Value       float64
	DueDate     string
}

type RespondInput struct {
	Response string
	Comment  string
}

type StageInput struct {
	Status        string
	Notes         string
	CompletedDate string
}

type HistoryInput struct {
	Action  string
	Details string
}

const (
	ResponseAccepted = "Accepted"
	ResponseDeclined = "Declined"
)

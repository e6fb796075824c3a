package financial

import (
	domain "tender-crm-backend/internal/domain/financial"
)

type CreateInput struct {
	TenderID   string
	Type       domain.Type
	Amount     float64
	Notes      string
	ExpiryDate string
}

// UpdateInput drives a status transition. Reason is required for Rejected,
// Instrument for Processed.
type UpdateInput struct {
	Status     domain.Status
	Reason     string
	Instrument *domain.InstrumentDetails
}

package client

import (
	domain "tender-crm-backend/internal/domain/client"
)

// Input is shared by create and update. Empty Status means Prospect on create
// and "unchanged" on update.
type Input struct {
	Name          string
	Industry      string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	Status        domain.Status
}

type HistoryInput struct {
	Action  string
	Details string
}

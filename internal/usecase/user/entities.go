package user

import (
	domain "tender-crm-backend/internal/domain/user"
)

// Input is shared by create and update. Active nil means true on create and
// "unchanged" on update.
type Input struct {
	Username      string
	FullName      string
	Email         string
	Role          domain.Role
	DepartmentID  string
	DesignationID string
	Active        *bool
}

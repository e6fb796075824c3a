// Package storeerr maps gorm errors onto the domain error taxonomy.
package storeerr

import (
	"errors"

	"tender-crm-backend/internal/domain/errs"

	"gorm.io/gorm"
)

// Translate turns record-not-found into errs.ErrNotFound and unique violations into
// errs.ErrConflict. Anything else is returned unchanged.
func Translate(err error, entity string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errs.NotFound(entity)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errs.Conflict(entity)
	}
	return err
}
